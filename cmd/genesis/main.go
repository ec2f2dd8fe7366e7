// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brickchain/brickd/chaincfg"
	"github.com/brickchain/brickd/util/chainhash"
	"github.com/brickchain/brickd/util/math"
	"github.com/brickchain/brickd/wire"
	"github.com/pkg/errors"
)

// errNoSolution is returned by solveGenesisBlock when no nonce up to the
// given maximum satisfies the proof of work limit.
var errNoSolution = errors.New("no solution found")

// solveGenesisBlock searches for a nonce which makes the header of block hash
// to a value no greater than its target difficulty. Only the nonce of the
// header is changed.
func solveGenesisBlock(block *wire.MsgBlock, maxNonce uint32) (chainhash.Hash, error) {
	header := &block.Header
	targetDifficulty := math.CompactToBig(header.Bits)

	for nonce := uint32(0); ; nonce++ {
		header.Nonce = nonce
		hash := header.BlockHash()

		// The block is solved when the new block hash is less than the
		// target difficulty.
		if chainhash.HashToBig(&hash).Cmp(targetDifficulty) <= 0 {
			return hash, nil
		}
		if nonce == maxNonce {
			return chainhash.Hash{}, errors.Wrapf(errNoSolution, "nonces 0 to %d", maxNonce)
		}
	}
}

func printGenesis(w io.Writer, params *chaincfg.Params) {
	header := &params.GenesisBlock.Header
	fmt.Fprintf(w, "Genesis block of %s:\n", params.Name)
	fmt.Fprintf(w, "timestamp: %d\n", header.Timestamp.Unix())
	fmt.Fprintf(w, "bits (difficulty): 0x%08x\n", header.Bits)
	fmt.Fprintf(w, "nonce: %d\n", header.Nonce)
	fmt.Fprintf(w, "merkle root: %s\n", params.GenesisBlock.MerkleRoot())
	fmt.Fprintf(w, "hash: %s\n\n", header.BlockHash())
}

func run(args []string, w io.Writer) error {
	cfg, networks, err := parseConfig(args)
	if err != nil {
		return err
	}

	for _, params := range networks {
		if cfg.Solve == "" {
			printGenesis(w, params)
			continue
		}

		block := params.GenesisBlock.Copy()
		hash, err := solveGenesisBlock(block, cfg.MaxNonce)
		if err != nil {
			return errors.Wrapf(err, "failed to solve the genesis block of %s", params.Name)
		}
		fmt.Fprintf(w, "Genesis block of %s is solved:\n", params.Name)
		fmt.Fprintf(w, "nonce: %d\n", block.Header.Nonce)
		fmt.Fprintf(w, "hash: %s\n", hash)
	}
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
