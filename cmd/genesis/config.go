package main

import (
	"github.com/brickchain/brickd/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type configFlags struct {
	Solve    string `long:"solve" description:"Search for a genesis nonce of the given network {mainnet, testnet, regtest}"`
	MaxNonce uint32 `long:"maxnonce" description:"Highest nonce tried by --solve"`
}

func parseConfig(args []string) (*configFlags, []*chaincfg.Params, error) {
	cfg := &configFlags{
		MaxNonce: ^uint32(0),
	}
	parser := flags.NewParser(cfg, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Solve == "" {
		return cfg, []*chaincfg.Params{
			chaincfg.MainNetParams,
			chaincfg.TestNetParams,
			chaincfg.RegressionNetParams,
		}, nil
	}

	id, err := chaincfg.ParseNetworkID(cfg.Solve)
	if err != nil {
		return nil, nil, err
	}
	params, err := chaincfg.ParamsForNetwork(id)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "--solve")
	}
	return cfg, []*chaincfg.Params{params}, nil
}
