// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"
)

// TestScriptBuilderAddOp tests that pushing opcodes to a script via the
// ScriptBuilder API works as expected.
func TestScriptBuilderAddOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opcodes  []byte
		expected []byte
	}{
		{
			name:     "push Op0",
			opcodes:  []byte{Op0},
			expected: []byte{Op0},
		},
		{
			name:     "push Op1 Op2",
			opcodes:  []byte{Op1, Op2},
			expected: []byte{Op1, Op2},
		},
		{
			name:     "push Op16 Op1Negate",
			opcodes:  []byte{Op16, Op1Negate},
			expected: []byte{Op16, Op1Negate},
		},
	}

	// Run tests and individually add each op via AddOp.
	builder := NewScriptBuilder()
	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		builder.Reset()
		for _, opcode := range test.opcodes {
			builder.AddOp(opcode)
		}
		result, err := builder.Script()
		if err != nil {
			t.Errorf("ScriptBuilder.AddOp #%d (%s) unexpected "+
				"error: %v", i, test.name, err)
			continue
		}
		if !bytes.Equal(result, test.expected) {
			t.Errorf("ScriptBuilder.AddOp #%d (%s) wrong result\n"+
				"got: %x\nwant: %x", i, test.name, result,
				test.expected)
			continue
		}
	}

	// Run tests and bulk add ops via AddOps.
	for i, test := range tests {
		builder.Reset()
		result, err := builder.AddOps(test.opcodes).Script()
		if err != nil {
			t.Errorf("ScriptBuilder.AddOps #%d (%s) unexpected "+
				"error: %v", i, test.name, err)
			continue
		}
		if !bytes.Equal(result, test.expected) {
			t.Errorf("ScriptBuilder.AddOps #%d (%s) wrong result\n"+
				"got: %x\nwant: %x", i, test.name, result,
				test.expected)
			continue
		}
	}
}

// TestScriptBuilderAddInt64 tests that pushing signed integers to a script via
// the ScriptBuilder API works as expected.
func TestScriptBuilderAddInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      int64
		expected []byte
	}{
		{name: "push -1", val: -1, expected: []byte{Op1Negate}},
		{name: "push small int 0", val: 0, expected: []byte{Op0}},
		{name: "push small int 1", val: 1, expected: []byte{Op1}},
		{name: "push small int 2", val: 2, expected: []byte{Op2}},
		{name: "push small int 16", val: 16, expected: []byte{Op16}},
		{name: "push 17", val: 17, expected: []byte{OpData1, 0x11}},
		{name: "push 42", val: 42, expected: []byte{OpData1, 0x2a}},
		{name: "push 127", val: 127, expected: []byte{OpData1, 0x7f}},
		{name: "push 128", val: 128, expected: []byte{OpData2, 0x80, 0}},
		{name: "push 255", val: 255, expected: []byte{OpData2, 0xff, 0}},
		{name: "push 256", val: 256, expected: []byte{OpData2, 0, 0x01}},
		{name: "push 32767", val: 32767, expected: []byte{OpData2, 0xff, 0x7f}},
		{name: "push 32768", val: 32768, expected: []byte{OpData1 + 2, 0, 0x80, 0}},
		{name: "push -2", val: -2, expected: []byte{OpData1, 0x82}},
		{name: "push -127", val: -127, expected: []byte{OpData1, 0xff}},
		{name: "push -128", val: -128, expected: []byte{OpData2, 0x80, 0x80}},
		{name: "push -256", val: -256, expected: []byte{OpData2, 0, 0x81}},
		{name: "push 2147483647", val: 2147483647, expected: []byte{OpData1 + 3, 0xff, 0xff, 0xff, 0x7f}},
		{name: "push -2147483648", val: -2147483648, expected: []byte{OpData1 + 4, 0, 0, 0, 0x80, 0x80}},
	}

	builder := NewScriptBuilder()
	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		builder.Reset().AddInt64(test.val)
		result, err := builder.Script()
		if err != nil {
			t.Errorf("ScriptBuilder.AddInt64 #%d (%s) unexpected "+
				"error: %v", i, test.name, err)
			continue
		}
		if !bytes.Equal(result, test.expected) {
			t.Errorf("ScriptBuilder.AddInt64 #%d (%s) wrong result\n"+
				"got: %x\nwant: %x", i, test.name, result,
				test.expected)
			continue
		}
	}
}

// TestScriptBuilderAddData tests that pushing data to a script via the
// ScriptBuilder API works as expected and conforms to canonical pushes.
func TestScriptBuilderAddData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []byte
		useFull  bool // use AddFullData instead of AddData.
	}{
		// BIP0062: Pushing an empty byte sequence must use Op0.
		{name: "push empty byte sequence", data: nil, expected: []byte{Op0}},
		{name: "push 1 byte 0x00", data: []byte{0x00}, expected: []byte{Op0}},

		// BIP0062: Pushing a 1-byte sequence of byte 0x01 through 0x10 must use OP_n.
		{name: "push 1 byte 0x01", data: []byte{0x01}, expected: []byte{Op1}},
		{name: "push 1 byte 0x10", data: []byte{0x10}, expected: []byte{Op16}},

		// BIP0062: Pushing the byte 0x81 must use Op1Negate.
		{name: "push 1 byte 0x81", data: []byte{0x81}, expected: []byte{Op1Negate}},

		// BIP0062: Pushing any other byte sequence up to 75 bytes must
		// use the normal data push (OpData1..OpData75).
		{name: "push 1 byte 0x11", data: []byte{0x11}, expected: []byte{OpData1, 0x11}},
		{name: "push data len 75", data: bytes.Repeat([]byte{0x49}, 75),
			expected: append([]byte{OpData75}, bytes.Repeat([]byte{0x49}, 75)...)},

		// BIP0062: Pushing 76 to 255 bytes must use OpPushData1.
		{name: "push data len 76", data: bytes.Repeat([]byte{0x49}, 76),
			expected: append([]byte{OpPushData1, 76}, bytes.Repeat([]byte{0x49}, 76)...)},
		{name: "push data len 255", data: bytes.Repeat([]byte{0x49}, 255),
			expected: append([]byte{OpPushData1, 255}, bytes.Repeat([]byte{0x49}, 255)...)},

		// BIP0062: Pushing 256 to 520 bytes must use OpPushData2.
		{name: "push data len 256", data: bytes.Repeat([]byte{0x49}, 256),
			expected: append([]byte{OpPushData2, 0, 1}, bytes.Repeat([]byte{0x49}, 256)...)},
		{name: "push data len 520", data: bytes.Repeat([]byte{0x49}, 520),
			expected: append([]byte{OpPushData2, 0x08, 0x02}, bytes.Repeat([]byte{0x49}, 520)...)},

		// Pushing more than the max element size is refused.
		{name: "push data len 521", data: bytes.Repeat([]byte{0x49}, 521),
			expected: nil},

		// AddFullData skips the element size limit.
		{name: "push data len 32767 (non-canonical)", data: bytes.Repeat([]byte{0x49}, 32767),
			expected: append([]byte{OpPushData2, 255, 127}, bytes.Repeat([]byte{0x49}, 32767)...),
			useFull:  true},
		{name: "push data len 65536 (non-canonical)", data: bytes.Repeat([]byte{0x49}, 65536),
			expected: append([]byte{OpPushData4, 0, 0, 1, 0}, bytes.Repeat([]byte{0x49}, 65536)...),
			useFull:  true},
	}

	builder := NewScriptBuilder()
	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		if !test.useFull {
			builder.Reset().AddData(test.data)
		} else {
			builder.Reset().AddFullData(test.data)
		}
		result, _ := builder.Script()
		if !bytes.Equal(result, test.expected) {
			t.Errorf("ScriptBuilder.AddData #%d (%s) wrong result\n"+
				"got: %x\nwant: %x", i, test.name, result,
				test.expected)
			continue
		}
	}
}

// TestScriptBuilderErrors ensures the script builder refuses to grow a script
// beyond MaxScriptSize and keeps reporting the first error.
func TestScriptBuilderErrors(t *testing.T) {
	t.Parallel()

	const maxScriptSize = MaxScriptSize

	// Start off by constructing a max size script.
	builder := NewScriptBuilder()
	builder.Reset().AddFullData(make([]byte, maxScriptSize-3))
	origScript, err := builder.Script()
	if err != nil {
		t.Fatalf("Unexpected error for max size script: %v", err)
	}
	if len(origScript) != maxScriptSize {
		t.Fatalf("Max size script is %d bytes, want %d", len(origScript),
			maxScriptSize)
	}

	// Ensure adding data that would exceed the maximum size of the script
	// does not add the data.
	script, err := builder.AddData([]byte{0x00}).Script()
	if _, ok := err.(ErrScriptNotCanonical); !ok || err == nil {
		t.Fatalf("ScriptBuilder.AddData allowed exceeding max script "+
			"size: %v", len(script))
	}
	if !bytes.Equal(script, origScript) {
		t.Fatalf("ScriptBuilder.AddData unexpected modified script - "+
			"got len %d, want len %d", len(script), len(origScript))
	}

	// Ensure adding an opcode, an integer or data after an error has
	// occurred does not modify the script.
	script, err = builder.AddOp(Op0).AddOps([]byte{Op1}).AddInt64(0).
		AddData([]byte{0x01}).AddFullData([]byte{0x02}).Script()
	if err == nil {
		t.Fatalf("ScriptBuilder: error was cleared by later pushes")
	}
	if !bytes.Equal(script, origScript) {
		t.Fatalf("ScriptBuilder: script modified after an error - got "+
			"len %d, want len %d", len(script), len(origScript))
	}

	// Each push on its own is refused on a full script.
	pushes := []func(b *ScriptBuilder) *ScriptBuilder{
		func(b *ScriptBuilder) *ScriptBuilder { return b.AddOp(Op0) },
		func(b *ScriptBuilder) *ScriptBuilder { return b.AddOps([]byte{Op0}) },
		func(b *ScriptBuilder) *ScriptBuilder { return b.AddInt64(0) },
	}
	for i, push := range pushes {
		builder.Reset().AddFullData(make([]byte, maxScriptSize-3))
		script, err := push(builder).Script()
		if _, ok := err.(ErrScriptNotCanonical); !ok {
			t.Errorf("push #%d: unexpected error %v", i, err)
		}
		if len(script) != maxScriptSize {
			t.Errorf("push #%d: script grew to %d bytes", i, len(script))
		}
	}
}
