package app

import (
	"sync/atomic"

	"github.com/brickchain/brickd/chaincfg"
	"github.com/brickchain/brickd/chaincfg/activenet"
	"github.com/brickchain/brickd/infrastructure/config"
	"github.com/brickchain/brickd/infrastructure/metrics"
	"github.com/pkg/errors"
)

// ComponentManager is a wrapper for all the brickd services
type ComponentManager struct {
	cfg           *config.Config
	registry      *activenet.Registry
	metricsServer *metrics.Server

	started, shutdown int32
}

// Start launches all the brickd services.
func (a *ComponentManager) Start() {
	// Already started?
	if atomic.AddInt32(&a.started, 1) != 1 {
		return
	}

	log.Tracef("Starting brickd services on %s", a.Params().Name)

	if a.metricsServer != nil {
		a.metricsServer.Start()
	}
}

// Stop gracefully shuts down all the brickd services.
func (a *ComponentManager) Stop() {
	// Make sure this only happens once.
	if atomic.AddInt32(&a.shutdown, 1) != 1 {
		log.Infof("Brickd is already in the process of shutting down")
		return
	}

	log.Warnf("Brickd shutting down")

	if a.metricsServer != nil {
		err := a.metricsServer.Stop()
		if err != nil {
			log.Errorf("Error stopping the metrics server: %+v", err)
		}
	}
}

// Params returns the parameters of the network the services run on.
func (a *ComponentManager) Params() *chaincfg.Params {
	return a.registry.Current()
}

// NewComponentManager returns a new ComponentManager instance.
// Use Start() to begin all services within this ComponentManager.
// registry must be frozen.
func NewComponentManager(cfg *config.Config, registry *activenet.Registry) (*ComponentManager, error) {
	if !registry.IsFrozen() {
		return nil, errors.New("the active network must be frozen before services are created")
	}

	a := &ComponentManager{
		cfg:      cfg,
		registry: registry,
	}

	if cfg.MetricsListen != "" {
		metricsServer, err := metrics.NewServer(cfg.MetricsListen, metrics.New(registry.Current()))
		if err != nil {
			return nil, err
		}
		a.metricsServer = metricsServer
	}

	return a, nil
}
