// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"math/big"
	"net"
	"time"

	"github.com/brickchain/brickd/util/chainhash"
	bmath "github.com/brickchain/brickd/util/math"
	"github.com/brickchain/brickd/util/network"
	"github.com/brickchain/brickd/wire"
)

const (
	// targetSpacing is the block spacing until the proof-of-stake phase
	// starts.
	targetSpacing = 5 * time.Minute

	// posTargetSpacing is the block spacing once proof-of-work blocks are
	// no longer accepted.
	posTargetSpacing = 5 * time.Minute

	// twinPhaseTargetSpacing is the block spacing while proof-of-work and
	// proof-of-stake blocks are both accepted.
	twinPhaseTargetSpacing = 15 * time.Minute

	// targetTimespanMultiplier is the number of spacings in a difficulty
	// retarget timespan.
	targetTimespanMultiplier = 10

	// noLastPoWBlock disables the end of the proof-of-work phase.
	noLastPoWBlock = 0x7fffffff
)

// Base58Prefixes holds the version bytes prepended to base58check encoded
// payloads. They determine the leading characters of encoded addresses and
// keys, and therefore which network they are recognised on.
type Base58Prefixes struct {
	// PubKeyAddress is the version byte of pay-to-pubkey-hash addresses.
	PubKeyAddress byte

	// ScriptAddress is the version byte of pay-to-script-hash addresses.
	ScriptAddress byte

	// SecretKey is the version byte of WIF encoded private keys.
	SecretKey byte

	// ExtPublicKey and ExtSecretKey are the version bytes of BIP0032
	// extended keys.
	ExtPublicKey [4]byte
	ExtSecretKey [4]byte
}

// Params defines a brickchain network by its parameters. These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network within this package.
	Net NetworkID

	// MessageMagic starts every peer-to-peer message of the network.
	MessageMagic wire.MessageMagic

	// AlertPubKey is the public key alert messages must be signed with.
	AlertPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort uint16

	// RPCPort defines the rpc server port
	RPCPort uint16

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []string

	// FixedSeeds are the peers contacted when no other peer is known.
	FixedSeeds []*wire.NetAddress

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PosLimit defines the highest allowed proof of stake value for a
	// block as a uint256.
	PosLimit *big.Int

	// TargetSpacing is the desired amount of time to generate each block
	// at height zero, and TargetTimespan the matching retarget timespan.
	// TargetSpacingAt and TargetTimespanAt give the values for any height.
	TargetSpacing  time.Duration
	TargetTimespan time.Duration

	// TargetTimespanMultiplier is the number of target spacings in a
	// retarget timespan.
	TargetTimespanMultiplier int64

	// PoSTargetSpacing is the block spacing after LastPoWBlock.
	PoSTargetSpacing time.Duration

	// TwinPhaseTargetSpacing is the block spacing after StartPoSBlock and
	// up to LastPoWBlock.
	TwinPhaseTargetSpacing time.Duration

	// LastPoWBlock is the last height at which proof-of-work blocks are
	// accepted.
	LastPoWBlock uint64

	// StartPoSBlock is the height after which proof-of-stake blocks are
	// accepted.
	StartPoSBlock uint64

	// RequireRPCPassword reports whether the RPC server refuses to start
	// without credentials.
	RequireRPCPassword bool

	// DataDirName is the sub-directory of the data directory used by this
	// network. It is empty for the main network.
	DataDirName string

	// Address encoding magics
	Base58Prefixes Base58Prefixes
}

// NormalizeRPCServerAddress returns addr with the current network RPC port
// appended if there is not already a port specified.
func (p *Params) NormalizeRPCServerAddress(addr string) (string, error) {
	return network.NormalizeAddress(addr, p.RPCPort)
}

// NormalizePeerAddress returns addr with the current network peer-to-peer
// port appended if there is not already a port specified.
func (p *Params) NormalizePeerAddress(addr string) (string, error) {
	return network.NormalizeAddress(addr, p.DefaultPort)
}

// clone returns a deep copy of p. Nothing reachable from the copy is shared
// with p, so a derived network can override any field.
func (p *Params) clone() *Params {
	c := *p

	c.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	c.DNSSeeds = append([]string(nil), p.DNSSeeds...)
	c.FixedSeeds = make([]*wire.NetAddress, len(p.FixedSeeds))
	for i, seed := range p.FixedSeeds {
		seedCopy := *seed
		seedCopy.IP = append(net.IP(nil), seed.IP...)
		c.FixedSeeds[i] = &seedCopy
	}

	c.GenesisBlock = p.GenesisBlock.Copy()
	genesisHash := *p.GenesisHash
	c.GenesisHash = &genesisHash
	genesisMerkleRoot := *p.GenesisMerkleRoot
	c.GenesisMerkleRoot = &genesisMerkleRoot

	c.PowLimit = new(big.Int).Set(p.PowLimit)
	c.PosLimit = new(big.Int).Set(p.PosLimit)

	return &c
}

// setPowLimit sets the proof of work limit to the all-ones target shifted
// right by shift bits, along with its compact form.
func (p *Params) setPowLimit(shift uint) {
	p.PowLimit = bmath.ShiftedMaxTarget(shift)
	p.PowLimitBits = bmath.BigToCompact(p.PowLimit)
}

// setGenesis rewrites the header of the genesis block with the given
// timestamp and nonce, and the bits of the current proof of work limit, then
// checks the result against wantHash. The coinbase is kept as is.
func (p *Params) setGenesis(timestamp time.Time, nonce uint32, wantHash *chainhash.Hash) {
	header := &p.GenesisBlock.Header
	header.Timestamp = time.Unix(timestamp.Unix(), 0)
	header.Bits = p.PowLimitBits
	header.Nonce = nonce

	hash := *wantHash
	p.GenesisHash = &hash
	mustVerifyGenesisBlock(p.Name, p.GenesisBlock, p.GenesisHash, p.GenesisMerkleRoot)
}

// mustDecodeHex decodes a hard-coded hex string and panics if it is invalid.
func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// newMainNetParams builds the parameters of the main network, which every
// other network derives from.
func newMainNetParams() *Params {
	p := &Params{
		Name:         "mainnet",
		Net:          MainNet,
		MessageMagic: wire.MainNet,
		AlertPubKey: mustDecodeHex("1a53865b96e9056bc6b132a04b94acefeac5d5257fe028b80695c61f" +
			"7c2f81f85d251a296df3be497653f457862f2d08c6314abd6ca3cbe5616262ca3e7a6ceaf0"),
		DefaultPort: 60081,
		RPCPort:     4507, // 70043 truncated to 16 bits
		DNSSeeds:    []string{},
		FixedSeeds:  mustConvertSeeds(mainNetSeeds, time.Now()),

		PosLimit: bmath.ShiftedMaxTarget(16),

		TargetSpacing:            targetSpacing,
		TargetTimespan:           targetTimespanMultiplier * targetSpacing,
		TargetTimespanMultiplier: targetTimespanMultiplier,
		PoSTargetSpacing:         posTargetSpacing,
		TwinPhaseTargetSpacing:   twinPhaseTargetSpacing,
		LastPoWBlock:             50000,
		StartPoSBlock:            1,

		RequireRPCPassword: true,
		DataDirName:        "",

		Base58Prefixes: Base58Prefixes{
			PubKeyAddress: 68,
			ScriptAddress: 46,
			SecretKey:     28,
			ExtPublicKey:  [4]byte{0x04, 0x88, 0xb2, 0x1e},
			ExtSecretKey:  [4]byte{0x04, 0x88, 0xad, 0xe4},
		},
	}
	p.setPowLimit(18)

	merkleRoot := *genesisMerkleRoot
	p.GenesisMerkleRoot = &merkleRoot
	p.GenesisBlock = newGenesisBlock(newGenesisCoinbaseTx(), mainNetGenesisTime,
		p.PowLimitBits, mainNetGenesisNonce)
	p.setGenesis(mainNetGenesisTime, mainNetGenesisNonce, mainNetGenesisHash)

	return p
}

// newTestNetParams builds the parameters of the test network from a copy of
// parent, normally the main network.
func newTestNetParams(parent *Params) *Params {
	p := parent.clone()

	p.Name = "testnet"
	p.Net = TestNet
	p.MessageMagic = wire.TestNet
	p.AlertPubKey = mustDecodeHex("02a46815b96e9056bc6b132a04b94acefeac5d5257fe028e81695c62" +
		"f7c2f81e85d251a216df3af197653f454852a2d08c6314aad5ca3cde6716262ca2e8c6beef")
	p.DefaultPort = 33229 // 98765 truncated to 16 bits
	p.RPCPort = 54321
	p.DataDirName = "testnet"

	p.setPowLimit(15)
	p.PosLimit = bmath.ShiftedMaxTarget(15)

	// A later timestamp, valid for a later start.
	p.setGenesis(testNetGenesisTime, testNetGenesisNonce, testNetGenesisHash)

	p.DNSSeeds = []string{}
	p.FixedSeeds = mustConvertSeeds(testNetSeeds, time.Now())

	p.Base58Prefixes.PubKeyAddress = 130
	p.Base58Prefixes.ScriptAddress = 109
	p.Base58Prefixes.SecretKey = 88

	p.TargetSpacing = targetSpacing
	p.LastPoWBlock = noLastPoWBlock
	p.StartPoSBlock = 1

	return p
}

// newRegressionNetParams builds the parameters of the regression test network
// from a copy of parent, normally the test network.
func newRegressionNetParams(parent *Params) *Params {
	p := parent.clone()

	p.Name = "regtest"
	p.Net = RegTest
	p.MessageMagic = wire.RegTest
	p.DefaultPort = 28013 // 93549 truncated to 16 bits
	p.DataDirName = "regtest"

	p.setPowLimit(1)
	p.setGenesis(regTestGenesisTime, regTestGenesisNonce, regTestGenesisHash)

	// Regression test mode doesn't have any seeds.
	p.DNSSeeds = []string{}
	p.FixedSeeds = []*wire.NetAddress{}

	p.RequireRPCPassword = false

	return p
}

// Parameters of the built-in networks. They are built once while the package
// is initialized and must not be modified.
var (
	// MainNetParams defines the network parameters for the main network.
	MainNetParams = newMainNetParams()

	// TestNetParams defines the network parameters for the test network.
	TestNetParams = newTestNetParams(MainNetParams)

	// RegressionNetParams defines the network parameters for the regression
	// test network.
	RegressionNetParams = newRegressionNetParams(TestNetParams)
)
