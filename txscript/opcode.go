// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// These constants are the values of the push opcodes. Scripts assembled by
// this package only ever push data, so the remaining opcodes are left out.
const (
	Op0         = 0x00 // 0
	OpFalse     = 0x00 // 0 - AKA Op0
	OpData1     = 0x01 // 1
	OpData2     = 0x02 // 2
	OpData20    = 0x14 // 20
	OpData32    = 0x20 // 32
	OpData33    = 0x21 // 33
	OpData65    = 0x41 // 65
	OpData75    = 0x4b // 75
	OpPushData1 = 0x4c // 76
	OpPushData2 = 0x4d // 77
	OpPushData4 = 0x4e // 78
	Op1Negate   = 0x4f // 79
	OpReserved  = 0x50 // 80
	Op1         = 0x51 // 81 - AKA OpTrue
	OpTrue      = 0x51 // 81
	Op2         = 0x52 // 82
	Op3         = 0x53 // 83
	Op4         = 0x54 // 84
	Op5         = 0x55 // 85
	Op6         = 0x56 // 86
	Op7         = 0x57 // 87
	Op8         = 0x58 // 88
	Op9         = 0x59 // 89
	Op10        = 0x5a // 90
	Op11        = 0x5b // 91
	Op12        = 0x5c // 92
	Op13        = 0x5d // 93
	Op14        = 0x5e // 94
	Op15        = 0x5f // 95
	Op16        = 0x60 // 96
)

// OpcodeName returns the human-readable name of a push opcode, or
// "OP_UNKNOWN<n>" for any other value.
func OpcodeName(op byte) string {
	switch {
	case op == Op0:
		return "OP_0"
	case op >= OpData1 && op <= OpData75:
		return fmt.Sprintf("OP_DATA_%d", op)
	case op == OpPushData1:
		return "OP_PUSHDATA1"
	case op == OpPushData2:
		return "OP_PUSHDATA2"
	case op == OpPushData4:
		return "OP_PUSHDATA4"
	case op == Op1Negate:
		return "OP_1NEGATE"
	case op == OpReserved:
		return "OP_RESERVED"
	case op >= Op1 && op <= Op16:
		return fmt.Sprintf("OP_%d", op-(Op1-1))
	}
	return fmt.Sprintf("OP_UNKNOWN%d", op)
}

// isSmallInt returns whether or not the opcode is considered a small integer,
// which is an Op0, or Op1 through Op16.
func isSmallInt(op byte) bool {
	return op == Op0 || (op >= Op1 && op <= Op16)
}

// asSmallInt returns the passed opcode, which must be true according to
// isSmallInt(), as an integer.
func asSmallInt(op byte) int {
	if op == Op0 {
		return 0
	}

	return int(op - (Op1 - 1))
}
