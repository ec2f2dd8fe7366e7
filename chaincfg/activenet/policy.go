package activenet

import (
	"github.com/brickchain/brickd/chaincfg"
	"github.com/pkg/errors"
)

// ErrConflictingNetworks describes an error where both the test network and
// the regression test network are requested at startup.
var ErrConflictingNetworks = errors.New("invalid combination of -regtest and -testnet")

// NetworkFromStartupFlags returns the network requested by the startup flags.
// The regression test network wins over the test network, and the main
// network is used when neither is set. Setting both is an error.
func NetworkFromStartupFlags(testNet, regTest bool) (chaincfg.NetworkID, error) {
	switch {
	case testNet && regTest:
		return 0, errors.WithStack(ErrConflictingNetworks)
	case regTest:
		return chaincfg.RegTest, nil
	case testNet:
		return chaincfg.TestNet, nil
	default:
		return chaincfg.MainNet, nil
	}
}

// SelectFromStartupFlags selects on r the network requested by the startup
// flags. On error the selection of r is left unchanged.
func SelectFromStartupFlags(r *Registry, testNet, regTest bool) error {
	id, err := NetworkFromStartupFlags(testNet, regTest)
	if err != nil {
		return err
	}
	return r.Select(id)
}
