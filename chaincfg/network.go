package chaincfg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// NetworkID identifies one of the networks known to this package.
type NetworkID uint8

// Identifiers of the built-in networks.
const (
	MainNet NetworkID = iota
	TestNet
	RegTest
)

var networkIDStrings = map[NetworkID]string{
	MainNet: "mainnet",
	TestNet: "testnet",
	RegTest: "regtest",
}

// String returns the NetworkID in human-readable form.
func (id NetworkID) String() string {
	if s, ok := networkIDStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("Unknown NetworkID (%d)", uint8(id))
}

// ParseNetworkID returns the NetworkID whose name is s, ignoring case.
func ParseNetworkID(s string) (NetworkID, error) {
	for id, name := range networkIDStrings {
		if strings.EqualFold(s, name) {
			return id, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownNetwork, "network %q", s)
}
