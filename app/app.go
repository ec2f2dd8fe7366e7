package app

import (
	"fmt"
	"os"

	"github.com/brickchain/brickd/chaincfg"
	"github.com/brickchain/brickd/chaincfg/activenet"
	"github.com/brickchain/brickd/infrastructure/config"
	"github.com/brickchain/brickd/infrastructure/logger"
	"github.com/brickchain/brickd/infrastructure/os/signal"
	"github.com/brickchain/brickd/util/panics"
	"github.com/brickchain/brickd/version"
)

type brickdApp struct {
	cfg *config.Config
}

// StartApp starts the brickd app, and blocks until it finishes running
func StartApp() error {
	// Load configuration and parse command line. This also selects the
	// active network.
	registry := activenet.NewRegistry()
	cfg, err := config.LoadConfig(registry)
	if err != nil {
		return err
	}

	logger.InitLog(cfg.LogFile, cfg.ErrLogFile)
	defer logger.BackendLog.Close()
	defer panics.HandlePanic(log, nil)

	err = logger.ParseAndSetLogLevels(cfg.DebugLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, logger.SubsystemsUsage())
		return err
	}

	// The active network is fixed from here on.
	registry.Freeze()
	params := registry.Current()
	onEnd := logger.LogAndMeasureExecutionTime(log, "VerifyGenesis")
	err = chaincfg.VerifyGenesis(params)
	onEnd()
	if err != nil {
		panics.Exit(log, fmt.Sprintf("Invalid parameters for %s: %+v", params.Name, err))
	}

	if cfg.ShowParams {
		return writeNetworkSummary(os.Stdout, params)
	}

	app := &brickdApp{cfg: cfg}
	return app.main()
}

func (app *brickdApp) main() error {
	// Get a channel that will be closed when a shutdown signal has been
	// triggered either from an OS signal such as SIGINT (Ctrl+C) or from
	// another subsystem.
	interrupt := signal.InterruptListener()
	defer log.Info("Shutdown complete")

	// Show version at startup.
	log.Infof("Version %s", version.UserAgent())

	componentManager, err := NewComponentManager(app.cfg, app.cfg.Registry())
	if err != nil {
		log.Errorf("Unable to start brickd: %+v", err)
		return err
	}

	params := componentManager.Params()
	log.Infof("Running on %s, genesis %s, peer port %d, RPC port %d",
		params.Name, params.GenesisHash, params.DefaultPort, params.RPCPort)

	defer func() {
		log.Infof("Gracefully shutting down brickd...")
		componentManager.Stop()
	}()

	componentManager.Start()

	// Wait until the interrupt signal is received from an OS signal or
	// shutdown is requested through one of the subsystems.
	<-interrupt
	return nil
}
