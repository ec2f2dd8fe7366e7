// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// scriptNum represents a numeric value used in scripts. Numbers are encoded
// as little endian with the sign in the high bit of the final byte, using the
// minimal number of bytes.
//
// Example encodings:
//        127 -> [0x7f]
//       -127 -> [0xff]
//        128 -> [0x80 0x00]
//       -128 -> [0x80 0x80]
//        129 -> [0x81 0x00]
//       -129 -> [0x81 0x80]
//        256 -> [0x00 0x01]
//       -256 -> [0x00 0x81]
//      32767 -> [0xff 0x7f]
//     -32767 -> [0xff 0xff]
//      32768 -> [0x00 0x80 0x00]
//     -32768 -> [0x00 0x80 0x80]
type scriptNum int64

// Bytes returns the number serialized as a little endian with a sign bit.
// Zero serializes to an empty slice.
func (n scriptNum) Bytes() []byte {
	// Zero encodes as an empty byte slice.
	if n == 0 {
		return nil
	}

	// Take the absolute value and keep track of whether it was originally
	// negative.
	isNegative := n < 0
	if isNegative {
		n = -n
	}

	// Encode to little endian. The maximum number of encoded bytes is 9
	// (8 bytes for max int64 plus a potential byte for sign extension).
	result := make([]byte, 0, 9)
	for n > 0 {
		result = append(result, byte(n&0xff))
		n >>= 8
	}

	// When the most significant byte already has the high bit set, an
	// additional high byte is required to indicate whether the number is
	// negative or positive. The additional byte is removed when converting
	// back to an integral and its high bit is used to denote the sign.
	//
	// Otherwise, when the most significant byte does not already have the
	// high bit set, use it to indicate the value is negative, if needed.
	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)

	} else if isNegative {
		result[len(result)-1] |= 0x80
	}

	return result
}
