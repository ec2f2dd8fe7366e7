// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript assembles and disassembles the push-only scripts carried by
coinbase transactions.

Scripts are built with a ScriptBuilder, which always picks the canonical
opcode for a push: small integers become Op0 or Op1 through Op16, short data
uses OpData1 through OpData75, and longer data uses the smallest OpPushData#
opcode that can hold its length. DisasmString and PushedData parse a script
back into its pushes.
*/
package txscript
