// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"time"

	"github.com/brickchain/brickd/util/random"
	"github.com/brickchain/brickd/wire"
	"github.com/pkg/errors"
)

// oneWeek is the width of the window fixed seeds are backdated into.
const oneWeek = 7 * 24 * time.Hour

// SeedSpec6 is a compact description of a bootstrap peer: a 16-byte IPv6 or
// IPv4-mapped address and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// ConvertSeeds turns seed descriptors into network addresses of full nodes.
// Each address is given a random last seen time between one and two weeks
// before now, so that any address learned from a live peer looks fresher and
// is preferred. Only one or two seeds are expected to be contacted.
//
// The result has one address per seed, in the same order. The only possible
// error is a failure of the system random source.
func ConvertSeeds(seeds []SeedSpec6, now time.Time) ([]*wire.NetAddress, error) {
	addresses := make([]*wire.NetAddress, 0, len(seeds))
	for _, seed := range seeds {
		age, err := random.Duration(oneWeek)
		if err != nil {
			return nil, errors.Wrap(err, "failed to age seed address")
		}

		ip := make(net.IP, net.IPv6len)
		copy(ip, seed.Addr[:])
		timestamp := now.Add(-oneWeek - age)
		addresses = append(addresses,
			wire.NewNetAddressTimestamp(timestamp, wire.SFNodeNetwork, ip, seed.Port))
	}
	log.Tracef("Converted %d seed addresses", len(addresses))
	return addresses, nil
}

// mustConvertSeeds performs the same function as ConvertSeeds except it
// panics on an error. It must only be called while the network parameters
// are built.
func mustConvertSeeds(seeds []SeedSpec6, now time.Time) []*wire.NetAddress {
	addresses, err := ConvertSeeds(seeds, now)
	if err != nil {
		panic(err)
	}
	return addresses
}

// ipv4Seed returns the descriptor of an IPv4 peer as an IPv4-mapped IPv6
// address.
func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec6 {
	return SeedSpec6{
		Addr: [16]byte{10: 0xff, 11: 0xff, 12: a, 13: b, 14: c, 15: d},
		Port: port,
	}
}

// mainNetSeeds are the fixed bootstrap peers of the main network.
var mainNetSeeds = []SeedSpec6{
	ipv4Seed(198, 51, 100, 11, 60081),
	ipv4Seed(198, 51, 100, 27, 60081),
	ipv4Seed(198, 51, 100, 64, 60081),
	ipv4Seed(203, 0, 113, 5, 60081),
	ipv4Seed(203, 0, 113, 42, 60081),
	{
		Addr: [16]byte{0x20, 0x01, 0x0d, 0xb8, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x51},
		Port: 60081,
	},
}

// testNetSeeds are the fixed bootstrap peers of the test network.
var testNetSeeds = []SeedSpec6{
	ipv4Seed(198, 51, 100, 130, 33229),
	ipv4Seed(203, 0, 113, 130, 33229),
}
