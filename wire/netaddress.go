// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"net"
	"strconv"
	"time"

	"github.com/brickchain/brickd/util/binaryserializer"
	"github.com/pkg/errors"
)

// NetAddressPayload is the payload size of a timestamped NetAddress.
// Timestamp 4 bytes + services 8 bytes + ip 16 bytes + port 2 bytes.
const NetAddressPayload = 30

// NetAddress defines information about a peer on the network including the time
// it was last seen, the services it supports, its IP address, and port.
type NetAddress struct {
	// Last time the address was seen. This is encoded as a uint32 on the
	// wire and therefore is limited to 2106.
	Timestamp time.Time

	// Bitfield which identifies the services supported by the address.
	Services ServiceFlag

	// IP address of the peer.
	IP net.IP

	// Port the peer is using. This is encoded in big endian on the wire
	// which differs from most everything else.
	Port uint16
}

// HasService returns whether the specified service is supported by the address.
func (na *NetAddress) HasService(service ServiceFlag) bool {
	return na.Services&service == service
}

// AddService adds service as a supported service by the peer generating the
// message.
func (na *NetAddress) AddService(service ServiceFlag) {
	na.Services |= service
}

// TCPAddress converts the NetAddress to *net.TCPAddr
func (na *NetAddress) TCPAddress() *net.TCPAddr {
	return &net.TCPAddr{
		IP:   na.IP,
		Port: int(na.Port),
	}
}

// String returns the address in host:port form.
func (na *NetAddress) String() string {
	return net.JoinHostPort(na.IP.String(), strconv.Itoa(int(na.Port)))
}

// NewNetAddressIPPort returns a new NetAddress using the provided IP, port, and
// supported services with defaults for the remaining fields.
func NewNetAddressIPPort(ip net.IP, port uint16, services ServiceFlag) *NetAddress {
	return NewNetAddressTimestamp(time.Now(), services, ip, port)
}

// NewNetAddressTimestamp returns a new NetAddress using the provided
// timestamp, IP, port, and supported services. The timestamp is rounded to
// single second precision.
func NewNetAddressTimestamp(
	timestamp time.Time, services ServiceFlag, ip net.IP, port uint16) *NetAddress {
	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &NetAddress{
		Timestamp: time.Unix(timestamp.Unix(), 0),
		Services:  services,
		IP:        ip,
		Port:      port,
	}
}

// NewNetAddress returns a new NetAddress using the provided TCP address and
// supported services with defaults for the remaining fields.
func NewNetAddress(addr *net.TCPAddr, services ServiceFlag) *NetAddress {
	return NewNetAddressIPPort(addr.IP, uint16(addr.Port), services)
}

// ReadNetAddress reads an encoded timestamped NetAddress from r.
func ReadNetAddress(r io.Reader, na *NetAddress) error {
	var ip [16]byte
	var timestamp uint32Time

	err := readElements(r, &timestamp, &na.Services, &ip)
	if err != nil {
		return err
	}
	// Sigh. Bitcoin protocol mixes little and big endian.
	port, err := binaryserializer.Uint16(r, bigEndian)
	if err != nil {
		return err
	}

	*na = NetAddress{
		Timestamp: time.Unix(int64(timestamp), 0),
		Services:  na.Services,
		IP:        net.IP(ip[:]),
		Port:      port,
	}
	return nil
}

// WriteNetAddress serializes a timestamped NetAddress to w.
func WriteNetAddress(w io.Writer, na *NetAddress) error {
	// Ensure to always write 16 bytes even if the ip is nil.
	var ip [16]byte
	if na.IP != nil {
		ip16 := na.IP.To16()
		if ip16 == nil {
			return errors.Errorf("invalid IP address %v", na.IP)
		}
		copy(ip[:], ip16)
	}
	err := writeElements(w, uint32Time(na.Timestamp.Unix()), na.Services, ip)
	if err != nil {
		return err
	}

	// Sigh. Bitcoin protocol mixes little and big endian.
	return binaryserializer.PutUint16(w, bigEndian, na.Port)
}
