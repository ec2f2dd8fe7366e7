package app

import (
	"fmt"
	"io"

	"github.com/brickchain/brickd/chaincfg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type base58Summary struct {
	PubKeyAddress byte   `yaml:"pubKeyAddress"`
	ScriptAddress byte   `yaml:"scriptAddress"`
	SecretKey     byte   `yaml:"secretKey"`
	ExtPublicKey  string `yaml:"extPublicKey"`
	ExtSecretKey  string `yaml:"extSecretKey"`
}

// networkSummary is the form the parameters of a network are printed in by
// --showparams.
type networkSummary struct {
	Name               string        `yaml:"name"`
	MessageMagic       string        `yaml:"messageMagic"`
	DefaultPort        uint16        `yaml:"defaultPort"`
	RPCPort            uint16        `yaml:"rpcPort"`
	GenesisHash        string        `yaml:"genesisHash"`
	GenesisMerkleRoot  string        `yaml:"genesisMerkleRoot"`
	GenesisTime        int64         `yaml:"genesisTime"`
	PowLimitBits       string        `yaml:"powLimitBits"`
	PosLimit           string        `yaml:"posLimit"`
	TargetSpacing      string        `yaml:"targetSpacing"`
	TargetTimespan     string        `yaml:"targetTimespan"`
	LastPoWBlock       uint64        `yaml:"lastPoWBlock"`
	StartPoSBlock      uint64        `yaml:"startPoSBlock"`
	RequireRPCPassword bool          `yaml:"requireRPCPassword"`
	DataDirName        string        `yaml:"dataDirName"`
	DNSSeeds           []string      `yaml:"dnsSeeds"`
	FixedSeeds         []string      `yaml:"fixedSeeds"`
	Base58Prefixes     base58Summary `yaml:"base58Prefixes"`
}

func newNetworkSummary(params *chaincfg.Params) *networkSummary {
	fixedSeeds := make([]string, len(params.FixedSeeds))
	for i, seed := range params.FixedSeeds {
		fixedSeeds[i] = seed.String()
	}

	return &networkSummary{
		Name:               params.Name,
		MessageMagic:       params.MessageMagic.String(),
		DefaultPort:        params.DefaultPort,
		RPCPort:            params.RPCPort,
		GenesisHash:        params.GenesisHash.String(),
		GenesisMerkleRoot:  params.GenesisMerkleRoot.String(),
		GenesisTime:        params.GenesisBlock.Header.Timestamp.Unix(),
		PowLimitBits:       fmt.Sprintf("0x%08x", params.PowLimitBits),
		PosLimit:           fmt.Sprintf("0x%064x", params.PosLimit),
		TargetSpacing:      params.TargetSpacing.String(),
		TargetTimespan:     params.TargetTimespan.String(),
		LastPoWBlock:       params.LastPoWBlock,
		StartPoSBlock:      params.StartPoSBlock,
		RequireRPCPassword: params.RequireRPCPassword,
		DataDirName:        params.DataDirName,
		DNSSeeds:           append([]string{}, params.DNSSeeds...),
		FixedSeeds:         fixedSeeds,
		Base58Prefixes: base58Summary{
			PubKeyAddress: params.Base58Prefixes.PubKeyAddress,
			ScriptAddress: params.Base58Prefixes.ScriptAddress,
			SecretKey:     params.Base58Prefixes.SecretKey,
			ExtPublicKey:  fmt.Sprintf("%x", params.Base58Prefixes.ExtPublicKey),
			ExtSecretKey:  fmt.Sprintf("%x", params.Base58Prefixes.ExtSecretKey),
		},
	}
}

// writeNetworkSummary writes the parameters of params to w as YAML.
func writeNetworkSummary(w io.Writer, params *chaincfg.Params) error {
	out, err := yaml.Marshal(newNetworkSummary(params))
	if err != nil {
		return errors.Wrap(err, "failed to marshal the network summary")
	}
	_, err = w.Write(out)
	return errors.WithStack(err)
}
