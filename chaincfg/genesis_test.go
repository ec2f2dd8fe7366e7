// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/brickchain/brickd/util/chainhash"
	bmath "github.com/brickchain/brickd/util/math"
	"github.com/davecgh/go-spew/spew"
)

// genesisCoinbaseBytes are the wire encoded bytes of the genesis coinbase
// transaction shared by every network.
var genesisCoinbaseBytes, _ = hex.DecodeString("01000000b893565a0100000000000000000000000000000000000000000000" +
	"00000000000000000000ffffffff6a00012a4c654259204a4f5244414e2056414c494e534b59" +
	"202d204d6963726f736f66742773206368697020736563757269747920666978206973207475" +
	"726e696e6720736f6d652050437320696e746f20627269636b73202d204a616e756172792031" +
	"302c2032303138ffffffff0100000000000000000000000000")

// TestGenesisBlock tests the genesis block of every network for validity by
// checking the encoded coinbase and the hashes.
func TestGenesisBlock(t *testing.T) {
	tests := []struct {
		name      string
		params    *Params
		timestamp int64
		bits      uint32
		nonce     uint32
		hash      chainhash.Hash
	}{
		{
			name:      "mainnet",
			params:    MainNetParams,
			timestamp: 1515623352,
			bits:      0x1e3fffff,
			nonce:     51748,
			hash: chainhash.Hash{
				0xdb, 0xd9, 0x33, 0x28, 0x19, 0xdd, 0x90, 0x37,
				0xdd, 0xad, 0x99, 0xa6, 0xb7, 0x1a, 0x07, 0xd3,
				0xfa, 0xbd, 0xf7, 0xd9, 0x42, 0x99, 0x43, 0x86,
				0x8d, 0x2c, 0x0d, 0x14, 0x30, 0x32, 0x00, 0x00,
			},
		},
		{
			name:      "testnet",
			params:    TestNetParams,
			timestamp: 1515623412,
			bits:      0x1f01ffff,
			nonce:     36629,
			hash: chainhash.Hash{
				0xc6, 0xa2, 0x48, 0x71, 0xe1, 0x7a, 0x93, 0xf8,
				0x0c, 0xa7, 0xef, 0x55, 0x9a, 0x31, 0x8e, 0xde,
				0x26, 0xaf, 0x0e, 0xea, 0x17, 0xf3, 0xf5, 0x23,
				0xb4, 0xf0, 0x1f, 0x49, 0x45, 0xd2, 0x01, 0x00,
			},
		},
		{
			name:      "regtest",
			params:    RegressionNetParams,
			timestamp: 1515623352,
			bits:      0x207fffff,
			nonce:     2,
			hash: chainhash.Hash{
				0x38, 0x31, 0x9f, 0xbc, 0x2e, 0x8e, 0x58, 0x4b,
				0x23, 0xd5, 0x70, 0x04, 0x3e, 0xad, 0x31, 0x6f,
				0xb1, 0x52, 0x89, 0xb3, 0x74, 0xe9, 0xef, 0x30,
				0x26, 0x81, 0x20, 0x4a, 0x0a, 0xcc, 0x52, 0x2a,
			},
		},
	}

	wantMerkleRoot := chainhash.Hash{
		0xa2, 0xff, 0x81, 0x6c, 0xae, 0x6d, 0x9a, 0xc5,
		0x23, 0x75, 0x0b, 0xb4, 0x68, 0x3e, 0x11, 0xa7,
		0x0d, 0xc3, 0x48, 0x51, 0x7b, 0x48, 0x78, 0x3a,
		0x99, 0xb2, 0x0e, 0x3b, 0x65, 0xe8, 0xc5, 0x48,
	}

	for _, test := range tests {
		block := test.params.GenesisBlock
		if len(block.Transactions) != 1 {
			t.Fatalf("%s: genesis block has %d transactions, want 1",
				test.name, len(block.Transactions))
		}

		coinbase := block.Transactions[0]
		if !coinbase.IsCoinBase() {
			t.Errorf("%s: genesis transaction is not a coinbase", test.name)
		}
		if !bytes.Equal(coinbase.Bytes(), genesisCoinbaseBytes) {
			t.Errorf("%s: genesis coinbase encoding mismatch\ngot: %s\nwant: %s",
				test.name, spew.Sdump(coinbase.Bytes()),
				spew.Sdump(genesisCoinbaseBytes))
		}

		header := block.Header
		if header.Version != 1 || !header.PrevBlock.IsEqual(&chainhash.ZeroHash) {
			t.Errorf("%s: unexpected genesis version or parent: %s",
				test.name, spew.Sdump(header))
		}
		if !header.Timestamp.Equal(time.Unix(test.timestamp, 0)) {
			t.Errorf("%s: genesis timestamp - got %v, want %v", test.name,
				header.Timestamp.Unix(), test.timestamp)
		}
		if header.Bits != test.bits || header.Bits != test.params.PowLimitBits {
			t.Errorf("%s: genesis bits - got %08x, want %08x", test.name,
				header.Bits, test.bits)
		}
		if header.Nonce != test.nonce {
			t.Errorf("%s: genesis nonce - got %d, want %d", test.name,
				header.Nonce, test.nonce)
		}

		if merkleRoot := block.MerkleRoot(); merkleRoot != wantMerkleRoot {
			t.Errorf("%s: genesis merkle root - got %v, want %v",
				test.name, merkleRoot, wantMerkleRoot)
		}
		if *test.params.GenesisMerkleRoot != wantMerkleRoot {
			t.Errorf("%s: GenesisMerkleRoot - got %v, want %v", test.name,
				test.params.GenesisMerkleRoot, wantMerkleRoot)
		}

		if hash := block.BlockHash(); hash != test.hash {
			t.Errorf("%s: genesis block hash - got %v, want %v", test.name,
				hash, test.hash)
		}
		if *test.params.GenesisHash != test.hash {
			t.Errorf("%s: GenesisHash - got %v, want %v", test.name,
				test.params.GenesisHash, test.hash)
		}

		if err := VerifyGenesis(test.params); err != nil {
			t.Errorf("%s: VerifyGenesis: %+v", test.name, err)
		}
	}
}

// TestGenesisBlockMeetsPowLimit ensures the genesis block of every network
// satisfies its own difficulty target, and that the target is within the
// network's proof-of-work limit.
func TestGenesisBlockMeetsPowLimit(t *testing.T) {
	for _, params := range []*Params{MainNetParams, TestNetParams, RegressionNetParams} {
		header := &params.GenesisBlock.Header
		target := bmath.CompactToBig(header.Bits)
		if target.Cmp(params.PowLimit) > 0 {
			t.Errorf("%s: genesis target %064x above pow limit %064x",
				params.Name, target, params.PowLimit)
		}

		hash := params.GenesisBlock.BlockHash()
		if chainhash.HashToBig(&hash).Cmp(target) > 0 {
			t.Errorf("%s: genesis hash %s above its target %064x",
				params.Name, hash, target)
		}
	}
}

// TestGenesisStringHashes ensures the genesis hashes print in the usual
// byte-reversed form.
func TestGenesisStringHashes(t *testing.T) {
	tests := []struct {
		params *Params
		want   string
	}{
		{MainNetParams, "00003230140d2c8d86439942d9f7bdfad3071ab7a699addd3790dd192833d9db"},
		{TestNetParams, "0001d245491ff0b423f5f317ea0eaf26de8e319a55efa70cf8937ae17148a2c6"},
		{RegressionNetParams, "2a52cc0a4a20812630efe974b38952b16f31ad3e0470d5234b588e2ebc9f3138"},
	}

	for _, test := range tests {
		if got := test.params.GenesisHash.String(); got != test.want {
			t.Errorf("%s: GenesisHash.String - got %s, want %s",
				test.params.Name, got, test.want)
		}
		if got := test.params.GenesisMerkleRoot.String(); got !=
			"48c5e8653b0eb2993a78487b5148c30da7113e68b40b7523c59a6dae6c81ffa2" {
			t.Errorf("%s: GenesisMerkleRoot.String - got %s", test.params.Name, got)
		}
	}
}

// TestGenesisCoinbaseScript ensures the genesis signature script pushes 0, 42
// and the message.
func TestGenesisCoinbaseScript(t *testing.T) {
	want := append([]byte{0x00, 0x01, 0x2a, 0x4c, 0x65}, genesisMessage...)
	if got := genesisCoinbaseScript(); !bytes.Equal(got, want) {
		t.Errorf("genesisCoinbaseScript: got %x, want %x", got, want)
	}
	if len(genesisMessage) != 101 {
		t.Errorf("genesisMessage is %d bytes, want 101", len(genesisMessage))
	}
}

// TestVerifyGenesisBlockMismatch ensures altered genesis blocks are detected.
func TestVerifyGenesisBlockMismatch(t *testing.T) {
	tests := []struct {
		name      string
		alter     func(p *Params)
		wantField string
	}{
		{
			name:      "nonce",
			alter:     func(p *Params) { p.GenesisBlock.Header.Nonce++ },
			wantField: "hash",
		},
		{
			name:      "bits",
			alter:     func(p *Params) { p.GenesisBlock.Header.Bits = 0x1d00ffff },
			wantField: "hash",
		},
		{
			name: "coinbase message",
			alter: func(p *Params) {
				p.GenesisBlock.Transactions[0].TxIn[0].SignatureScript[10] = 'X'
			},
			wantField: "merkle root",
		},
		{
			name: "header merkle root",
			alter: func(p *Params) {
				p.GenesisBlock.Header.MerkleRoot = chainhash.ZeroHash
			},
			wantField: "header merkle root",
		},
		{
			name:      "expected hash",
			alter:     func(p *Params) { p.GenesisHash = &chainhash.ZeroHash },
			wantField: "hash",
		},
	}

	for _, test := range tests {
		p := MainNetParams.clone()
		test.alter(p)

		err := VerifyGenesis(p)
		mismatch, ok := err.(*GenesisMismatchError)
		if !ok {
			t.Errorf("%s: VerifyGenesis - got %v, want *GenesisMismatchError",
				test.name, err)
			continue
		}
		if mismatch.Field != test.wantField || mismatch.Network != "mainnet" {
			t.Errorf("%s: VerifyGenesis - got mismatch of %s %s, want mainnet %s",
				test.name, mismatch.Network, mismatch.Field, test.wantField)
		}
		if mismatch.Error() == "" {
			t.Errorf("%s: empty error message", test.name)
		}
	}

	// The original parameters are untouched.
	if err := VerifyGenesis(MainNetParams); err != nil {
		t.Errorf("VerifyGenesis(MainNetParams) after altering clones: %v", err)
	}
}

// TestMustVerifyGenesisBlockPanic ensures a broken genesis constant panics.
func TestMustVerifyGenesisBlockPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("mustVerifyGenesisBlock did not panic")
		}
	}()

	block := newGenesisBlock(newGenesisCoinbaseTx(), mainNetGenesisTime,
		MainNetParams.PowLimitBits, mainNetGenesisNonce+1)
	mustVerifyGenesisBlock("mainnet", block, mainNetGenesisHash, genesisMerkleRoot)
}
