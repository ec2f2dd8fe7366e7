// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters.

In addition to the main brickchain network, which is intended for the transfer
of monetary value, there also exists a test network and a regression test
network. The test network shares the message magic of the main network but
uses its own ports, difficulty limits, genesis block and address prefixes. The
regression test network is derived from the test network and is intended for
local, automated testing: its difficulty limit is the easiest possible, it has
no seeds and its RPC server does not require authentication.

Every network is described by a Params value. The values are built once, while
the package is initialized, by copying the parent network and overriding the
fields that differ. Their genesis blocks are recomputed at that time and the
package panics if a result does not match its hard-coded hash, so an imported
chaincfg is always self-consistent.

For library packages, chaincfg provides the ability to lookup chain parameters
and encoding magics when passed a *Params. Callers pick the active network
through the activenet subpackage once, during startup:

	package main

	import (
		"flag"
		"fmt"
		"log"

		"github.com/brickchain/brickd/chaincfg"
		"github.com/brickchain/brickd/chaincfg/activenet"
	)

	var testnet = flag.Bool("testnet", false, "operate on the test network")
	var regtest = flag.Bool("regtest", false, "operate on the regression test network")

	func main() {
		flag.Parse()

		registry := activenet.NewRegistry()
		err := activenet.SelectFromStartupFlags(registry, *testnet, *regtest)
		if err != nil {
			log.Fatal(err)
		}
		registry.Freeze()

		params := registry.Current()
		address, err := params.EncodeBase58(chaincfg.PubKeyAddress, make([]byte, 20))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(params.Name, params.GenesisHash, address)
	}
*/
package chaincfg
