// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// MessageMagic is the 4-byte sequence that starts every peer-to-peer message
// of a network. The values are chosen to be unlikely to occur in normal data:
// rarely used upper ASCII, not valid as UTF-8, and a large 4-byte integer at
// any alignment.
type MessageMagic [4]byte

// Constants used to indicate the message network.
var (
	// MainNet represents the main network and is shared with the test
	// network.
	MainNet = MessageMagic{0xa1, 0xb2, 0xe3, 0xf4}

	// TestNet represents the test network.
	TestNet = MainNet

	// RegTest represents the regression test network.
	RegTest = MessageMagic{0xf1, 0xe2, 0xa3, 0xb4}
)

// String returns the magic as lowercase hex, in wire order.
func (m MessageMagic) String() string {
	return hex.EncodeToString(m[:])
}

// ServiceFlag identifies services supported by a peer.
type ServiceFlag uint64

const (
	// SFNodeNetwork is a flag used to indicate a peer is a full node.
	SFNodeNetwork ServiceFlag = 1 << iota
)

// Map of service flags back to their constant names for pretty printing.
var sfStrings = map[ServiceFlag]string{
	SFNodeNetwork: "SFNodeNetwork",
}

// orderedSFStrings is an ordered list of service flags from highest to
// lowest.
var orderedSFStrings = []ServiceFlag{
	SFNodeNetwork,
}

// String returns the ServiceFlag in human-readable form.
func (f ServiceFlag) String() string {
	// No flags are set.
	if f == 0 {
		return "0x0"
	}

	// Add individual bit flags.
	s := ""
	for _, flag := range orderedSFStrings {
		if f&flag == flag {
			s += sfStrings[flag] + "|"
			f -= flag
		}
	}

	// Add any remaining flags which aren't accounted for as hex.
	s = strings.TrimRight(s, "|")
	if f != 0 {
		s += "|0x" + strconv.FormatUint(uint64(f), 16)
	}
	s = strings.TrimLeft(s, "|")
	return s
}

