// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/brickchain/brickd/txscript"
	"github.com/brickchain/brickd/util/chainhash"
	"github.com/brickchain/brickd/wire"
)

// genesisMessage is the text embedded in the signature script of the genesis
// coinbase transaction of every network.
const genesisMessage = "BY JORDAN VALINSKY - Microsoft's chip security fix is " +
	"turning some PCs into bricks - January 10, 2018"

// genesisTxTime is the timestamp of the genesis coinbase transaction. It is
// shared by all networks, so they all have the same genesis merkle root.
var genesisTxTime = time.Unix(1515623352, 0) // 2018-01-10 22:29:12 +0000 UTC

// Genesis block inputs of each network.
var (
	mainNetGenesisTime  = time.Unix(1515623352, 0)
	mainNetGenesisNonce = uint32(51748)

	testNetGenesisTime  = mainNetGenesisTime.Add(time.Minute)
	testNetGenesisNonce = uint32(36629)

	regTestGenesisTime  = time.Unix(1515623352, 0)
	regTestGenesisNonce = uint32(2)
)

// genesisMerkleRoot is the hash of the coinbase transaction, and therefore the
// merkle root, of the genesis block of every network.
var genesisMerkleRoot = newHashFromStr("48c5e8653b0eb2993a78487b5148c30da7113e68b40b7523c59a6dae6c81ffa2")

// Hashes of the first block in the block chain (genesis block) of each
// network. They are double SHA-256 of the headers built here and do not
// identify the genesis blocks of any earlier chain.
var (
	mainNetGenesisHash = newHashFromStr("00003230140d2c8d86439942d9f7bdfad3071ab7a699addd3790dd192833d9db")
	testNetGenesisHash = newHashFromStr("0001d245491ff0b423f5f317ea0eaf26de8e319a55efa70cf8937ae17148a2c6")
	regTestGenesisHash = newHashFromStr("2a52cc0a4a20812630efe974b38952b16f31ad3e0470d5234b588e2ebc9f3138")
)

// GenesisMismatchError is returned when a recomputed genesis hash differs
// from the hard-coded one.
type GenesisMismatchError struct {
	Network string
	Field   string // "hash", "merkle root" or "header merkle root"
	Got     chainhash.Hash
	Want    chainhash.Hash
}

func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("%s genesis block %s mismatch: computed %s, expected %s",
		e.Network, e.Field, e.Got, e.Want)
}

// genesisCoinbaseScript returns the signature script of the genesis coinbase:
// OP_0, the number 42 and the genesis message.
func genesisCoinbaseScript() []byte {
	script, err := txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(42).
		AddData([]byte(genesisMessage)).
		Script()
	if err != nil {
		// The inputs are constants, so this can only happen if they
		// are broken.
		panic(err)
	}
	return script
}

// newGenesisCoinbaseTx returns the coinbase transaction of the genesis
// blocks: a single input spending the null outpoint and a single empty
// output.
func newGenesisCoinbaseTx() *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion, genesisTxTime)
	prevOut := wire.NewOutPoint(&chainhash.ZeroHash, wire.MaxPrevOutIndex)
	tx.AddTxIn(wire.NewTxIn(prevOut, genesisCoinbaseScript()))
	tx.AddTxOut(wire.NewEmptyTxOut())
	return tx
}

// newGenesisBlock returns a version 1 block with no parent that holds only
// the given coinbase, with the header merkle root computed from it.
func newGenesisBlock(coinbase *wire.MsgTx, timestamp time.Time, bits, nonce uint32) *wire.MsgBlock {
	merkleRoot := coinbase.TxHash()
	header := wire.NewBlockHeader(1, &chainhash.ZeroHash, &merkleRoot, timestamp, bits, nonce)
	block := wire.NewMsgBlock(header)
	block.AddTransaction(coinbase)
	return block
}

// verifyGenesisBlock recomputes the merkle root and the hash of a genesis
// block and compares them with the expected values. The merkle root recorded
// in the header is checked as well as the one computed from the
// transactions.
func verifyGenesisBlock(network string, block *wire.MsgBlock, wantHash, wantMerkleRoot *chainhash.Hash) error {
	merkleRoot := block.MerkleRoot()
	if merkleRoot != *wantMerkleRoot {
		return &GenesisMismatchError{Network: network, Field: "merkle root",
			Got: merkleRoot, Want: *wantMerkleRoot}
	}
	if block.Header.MerkleRoot != merkleRoot {
		return &GenesisMismatchError{Network: network, Field: "header merkle root",
			Got: block.Header.MerkleRoot, Want: merkleRoot}
	}

	hash := block.BlockHash()
	if hash != *wantHash {
		return &GenesisMismatchError{Network: network, Field: "hash",
			Got: hash, Want: *wantHash}
	}
	return nil
}

// mustVerifyGenesisBlock performs the same function as verifyGenesisBlock
// except it panics on a mismatch. It must only be called while the network
// parameters are built, where a mismatch means the hard-coded genesis
// constants are broken.
func mustVerifyGenesisBlock(network string, block *wire.MsgBlock, wantHash, wantMerkleRoot *chainhash.Hash) {
	err := verifyGenesisBlock(network, block, wantHash, wantMerkleRoot)
	if err != nil {
		panic(err)
	}
}

// VerifyGenesis recomputes the genesis block hashes of p and checks them
// against p.GenesisHash and p.GenesisMerkleRoot.
func VerifyGenesis(p *Params) error {
	return verifyGenesisBlock(p.Name, p.GenesisBlock, p.GenesisHash, p.GenesisMerkleRoot)
}
