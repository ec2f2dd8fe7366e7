package config

import (
	"fmt"
	"os"

	"github.com/brickchain/brickd/chaincfg"
	"github.com/brickchain/brickd/chaincfg/activenet"
	"github.com/jessevdk/go-flags"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet bool `long:"testnet" description:"Use the test network" yaml:"testnet" envconfig:"TESTNET"`
	Regtest bool `long:"regtest" description:"Use the regression test network" yaml:"regtest" envconfig:"REGTEST"`

	registry *activenet.Registry
}

// ResolveNetwork selects on registry the network requested by the network
// flags. If both networks are requested, the usage help is written to stderr
// and activenet.ErrConflictingNetworks is returned, leaving registry as it
// was.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser, registry *activenet.Registry) error {
	err := activenet.SelectFromStartupFlags(registry, networkFlags.Testnet, networkFlags.Regtest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if parser != nil {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}
	networkFlags.registry = registry
	return nil
}

// NetParams returns the parameters of the resolved network. It returns the
// main network parameters if ResolveNetwork has not succeeded.
func (networkFlags *NetworkFlags) NetParams() *chaincfg.Params {
	if networkFlags.registry == nil {
		return chaincfg.MainNetParams
	}
	return networkFlags.registry.Current()
}

// Registry returns the registry the network was resolved on, or nil if
// ResolveNetwork has not succeeded.
func (networkFlags *NetworkFlags) Registry() *activenet.Registry {
	return networkFlags.registry
}
