package network

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// NormalizeAddresses returns a new slice with all the passed peer addresses
// normalized with the given default port, and all duplicates removed.
func NormalizeAddresses(addrs []string, defaultPort uint16) ([]string, error) {
	normalized := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		normalizedAddr, err := NormalizeAddress(addr, defaultPort)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, normalizedAddr)
	}

	return removeDuplicateAddresses(normalized), nil
}

// NormalizeAddress returns addr with the passed default port appended if
// there is not already a port specified.
func NormalizeAddress(addr string, defaultPort uint16) (string, error) {
	_, _, err := net.SplitHostPort(addr)
	if err == nil {
		return addr, nil
	}

	// net.SplitHostPort returns an error if the given host is missing a
	// port, but theoretically it can return an error for other reasons,
	// and this is why we check addrWithPort for validity.
	addrWithPort := net.JoinHostPort(addr, strconv.Itoa(int(defaultPort)))
	if _, _, err := net.SplitHostPort(addrWithPort); err != nil {
		return "", errors.Wrapf(err, "invalid address %q", addr)
	}

	return addrWithPort, nil
}

// removeDuplicateAddresses returns a new slice with all duplicate entries in
// addrs removed.
func removeDuplicateAddresses(addrs []string) []string {
	result := make([]string, 0, len(addrs))
	seen := map[string]struct{}{}
	for _, val := range addrs {
		if _, ok := seen[val]; !ok {
			result = append(result, val)
			seen[val] = struct{}{}
		}
	}
	return result
}
