// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// parsedOpcode represents an opcode that has been parsed and includes any
// potential data associated with it.
type parsedOpcode struct {
	opcode byte
	data   []byte
}

// parseScript preparses the script in bytes into a list of parsedOpcodes while
// applying a number of sanity checks.
func parseScript(script []byte) ([]parsedOpcode, error) {
	retScript := make([]parsedOpcode, 0, len(script))
	for i := 0; i < len(script); {
		op := script[i]
		pop := parsedOpcode{opcode: op}
		i++

		var dataLen int
		switch {
		case op >= OpData1 && op <= OpData75:
			dataLen = int(op)

		case op == OpPushData1:
			if len(script[i:]) < 1 {
				return retScript, scriptError(ErrMalformedPush,
					"OP_PUSHDATA1 requires 1 length byte")
			}
			dataLen = int(script[i])
			i++

		case op == OpPushData2:
			if len(script[i:]) < 2 {
				return retScript, scriptError(ErrMalformedPush,
					"OP_PUSHDATA2 requires 2 length bytes")
			}
			dataLen = int(binary.LittleEndian.Uint16(script[i:]))
			i += 2

		case op == OpPushData4:
			if len(script[i:]) < 4 {
				return retScript, scriptError(ErrMalformedPush,
					"OP_PUSHDATA4 requires 4 length bytes")
			}
			dataLen = int(binary.LittleEndian.Uint32(script[i:]))
			i += 4
		}

		if dataLen < 0 || len(script[i:]) < dataLen {
			str := fmt.Sprintf("opcode %s pushes %d bytes, but script "+
				"only has %d remaining", OpcodeName(op), dataLen,
				len(script[i:]))
			return retScript, scriptError(ErrMalformedPush, str)
		}
		if op >= OpData1 && op <= OpPushData4 {
			pop.data = script[i : i+dataLen]
			i += dataLen
		}

		retScript = append(retScript, pop)
	}

	return retScript, nil
}

// print returns a human-readable string representation of the opcode for use
// in script disassembly.
func (pop *parsedOpcode) print() string {
	switch {
	case isSmallInt(pop.opcode):
		return strconv.Itoa(asSmallInt(pop.opcode))
	case pop.opcode == Op1Negate:
		return "-1"
	case pop.opcode >= OpData1 && pop.opcode <= OpPushData4:
		return hex.EncodeToString(pop.data)
	}
	return OpcodeName(pop.opcode)
}

// DisasmString formats a disassembled script for one line printing. Small
// integers are shown as decimal numbers and data pushes as hex. When the
// script fails to parse, the returned string will contain the disassembled
// script up to the point the failure occurred along with the string '[error]'
// appended. In addition, the reason the script failed to parse is returned.
func DisasmString(buf []byte) (string, error) {
	var disbuf strings.Builder
	opcodes, err := parseScript(buf)
	for i := range opcodes {
		if i > 0 {
			disbuf.WriteByte(' ')
		}
		disbuf.WriteString(opcodes[i].print())
	}
	if err != nil {
		if len(opcodes) > 0 {
			disbuf.WriteByte(' ')
		}
		disbuf.WriteString("[error]")
	}
	return disbuf.String(), err
}

// PushedData returns an array of byte slices containing any pushed data found
// in the passed script. Small integer opcodes contribute a nil entry.
func PushedData(script []byte) ([][]byte, error) {
	pops, err := parseScript(script)
	if err != nil {
		return nil, err
	}

	var data [][]byte
	for _, pop := range pops {
		if pop.data != nil {
			data = append(data, pop.data)
		} else if isSmallInt(pop.opcode) {
			data = append(data, nil)
		}
	}
	return data, nil
}
