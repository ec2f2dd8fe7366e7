// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"

	"github.com/brickchain/brickd/util/chainhash"
	"github.com/pkg/errors"
)

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNetwork describes an error where no parameters are
	// registered for a network.
	ErrUnknownNetwork = errors.New("unknown network")
)

var (
	registeredNetsMtx sync.RWMutex
	registeredNets    = make(map[NetworkID]*Params)
)

// Register registers the network parameters for a network. This may error
// with ErrDuplicateNet if the network is already registered (either due to a
// previous Register call, or the network being one of the default networks).
//
// Networks are keyed by their NetworkID rather than by their message magic,
// since the main and test networks share one.
func Register(params *Params) error {
	registeredNetsMtx.Lock()
	defer registeredNetsMtx.Unlock()

	if _, ok := registeredNets[params.Net]; ok {
		return errors.Wrapf(ErrDuplicateNet, "%s", params.Net)
	}
	registeredNets[params.Net] = params
	log.Debugf("Registered network %s", params.Name)

	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ParamsForNetwork returns the registered parameters of the network id.
func ParamsForNetwork(id NetworkID) (*Params, error) {
	registeredNetsMtx.RLock()
	defer registeredNetsMtx.RUnlock()

	params, ok := registeredNets[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "%s", id)
	}
	return params, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes. Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(MainNetParams)
	mustRegister(TestNetParams)
	mustRegister(RegressionNetParams)
}
