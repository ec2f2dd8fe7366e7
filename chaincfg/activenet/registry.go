package activenet

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/brickchain/brickd/chaincfg"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownNetwork is returned by Select for a network that has no
	// registered parameters.
	ErrUnknownNetwork = chaincfg.ErrUnknownNetwork

	// ErrFrozen is returned by Select once the registry is frozen.
	ErrFrozen = errors.New("active network is frozen")
)

// Registry holds the parameters of the network the process runs on. A new
// Registry starts on the main network. The selection may change during
// startup, until Freeze is called; from then on Current always returns the
// same parameters and is safe for concurrent use.
type Registry struct {
	mtx     sync.Mutex
	current atomic.Pointer[chaincfg.Params]
	frozen  atomic.Bool
}

// NewRegistry returns a Registry with the main network selected.
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(chaincfg.MainNetParams)
	return r
}

// Current returns the parameters of the selected network. It never returns
// nil.
func (r *Registry) Current() *chaincfg.Params {
	return r.current.Load()
}

// Select makes the network id the current one.
func (r *Registry) Select(id chaincfg.NetworkID) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.frozen.Load() {
		return errors.Wrapf(ErrFrozen, "cannot select %s", id)
	}

	params, err := chaincfg.ParamsForNetwork(id)
	if err != nil {
		return err
	}
	r.current.Store(params)
	log.Debugf("Selected network %s", params.Name)

	return nil
}

// MustSelect performs the same function as Select except it panics if there
// is an error.
func (r *Registry) MustSelect(id chaincfg.NetworkID) {
	if err := r.Select(id); err != nil {
		panic(fmt.Sprintf("failed to select network: %+v", err))
	}
}

// Freeze ends the startup phase. Further calls to Select fail with
// ErrFrozen. Calling Freeze more than once has no further effect.
func (r *Registry) Freeze() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if !r.frozen.Swap(true) {
		log.Infof("Active network is %s", r.Current().Name)
	}
}

// IsFrozen returns whether Freeze has been called.
func (r *Registry) IsFrozen() bool {
	return r.frozen.Load()
}
