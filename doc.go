/*
Copyright (c) 2013-2018 The btcsuite developers
Use of this source code is governed by an ISC
license that can be found in the LICENSE file.

Brickd selects and publishes the chain parameters of a brickchain network.

Usage:

	brickd [OPTIONS]

For an up-to-date help message:

	brickd --help

Options may also be given in a YAML file named with --configfile, or through
BRICKD_* environment variables such as BRICKD_TESTNET=true. Command line
options take precedence over the environment, which takes precedence over the
file.

The main network is used unless --testnet or --regtest is given; giving both is
an error. --showparams prints the parameters of the selected network as YAML
and exits, and --metricslisten serves them as prometheus metrics.
*/
package main
