// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"
	"time"

	"github.com/brickchain/brickd/util/chainhash"
	"github.com/davecgh/go-spew/spew"
)

const genesisMessage = "BY JORDAN VALINSKY - Microsoft's chip security fix is " +
	"turning some PCs into bricks - January 10, 2018"

// genesisCoinbaseHex is the serialized coinbase transaction shared by the
// genesis blocks of all networks.
const genesisCoinbaseHex = "01000000b893565a0100000000000000000000000000000000000000000000" +
	"00000000000000000000ffffffff6a00012a4c654259204a4f5244414e2056414c494e534b59" +
	"202d204d6963726f736f66742773206368697020736563757269747920666978206973207475" +
	"726e696e6720736f6d652050437320696e746f20627269636b73202d204a616e756172792031" +
	"302c2032303138ffffffff0100000000000000000000000000"

// genesisMerkleRoot is the hash of genesisCoinbaseHex.
var genesisMerkleRoot = chainhash.Hash{
	0xa2, 0xff, 0x81, 0x6c, 0xae, 0x6d, 0x9a, 0xc5,
	0x23, 0x75, 0x0b, 0xb4, 0x68, 0x3e, 0x11, 0xa7,
	0x0d, 0xc3, 0x48, 0x51, 0x7b, 0x48, 0x78, 0x3a,
	0x99, 0xb2, 0x0e, 0x3b, 0x65, 0xe8, 0xc5, 0x48,
}

// genesisCoinbase builds the genesis coinbase transaction by hand: OP_0,
// a one byte push of 42 and an OP_PUSHDATA1 push of the message.
func genesisCoinbase() *MsgTx {
	script := append([]byte{0x00, 0x01, 0x2a, 0x4c, byte(len(genesisMessage))},
		genesisMessage...)

	tx := NewMsgTx(TxVersion, time.Unix(1515623352, 0))
	tx.AddTxIn(NewTxIn(NewOutPoint(&chainhash.ZeroHash, MaxPrevOutIndex), script))
	tx.AddTxOut(NewEmptyTxOut())
	return tx
}

// TestTx tests the MsgTx API.
func TestTx(t *testing.T) {
	prevOutIndex := uint32(1)
	prevOut := NewOutPoint(&genesisMerkleRoot, prevOutIndex)
	if !prevOut.Hash.IsEqual(&genesisMerkleRoot) {
		t.Errorf("NewOutPoint: wrong hash - got %v, want %v",
			spew.Sprint(&prevOut.Hash), spew.Sprint(&genesisMerkleRoot))
	}
	if prevOut.Index != prevOutIndex {
		t.Errorf("NewOutPoint: wrong index - got %v, want %v",
			prevOut.Index, prevOutIndex)
	}
	prevOutStr := genesisMerkleRoot.String() + ":1"
	if s := prevOut.String(); s != prevOutStr {
		t.Errorf("OutPoint.String: unexpected result - got %v, want %v",
			s, prevOutStr)
	}
	if prevOut.IsNull() {
		t.Errorf("OutPoint.IsNull: outpoint %v reported as null", prevOut)
	}

	sigScript := []byte{0x04, 0x31, 0xdc, 0x00, 0x1b, 0x01, 0x62}
	txIn := NewTxIn(prevOut, sigScript)
	if !reflect.DeepEqual(&txIn.PreviousOutPoint, prevOut) {
		t.Errorf("NewTxIn: wrong prev outpoint - got %v, want %v",
			spew.Sprint(&txIn.PreviousOutPoint), spew.Sprint(prevOut))
	}
	if txIn.Sequence != MaxTxInSequenceNum {
		t.Errorf("NewTxIn: wrong sequence - got %d, want %d",
			txIn.Sequence, MaxTxInSequenceNum)
	}

	txValue := int64(5000000000)
	pkScript := []byte{0x76, 0xa9, 0x14, 0x88, 0xac}
	txOut := NewTxOut(txValue, pkScript)
	if txOut.Value != txValue {
		t.Errorf("NewTxOut: wrong value - got %v, want %v",
			txOut.Value, txValue)
	}
	if txOut.IsEmpty() {
		t.Errorf("TxOut.IsEmpty: output with value reported as empty")
	}
	if !NewEmptyTxOut().IsEmpty() {
		t.Errorf("NewEmptyTxOut: output is not empty")
	}

	msg := NewMsgTx(TxVersion, time.Unix(1515623352, 999))
	if msg.Timestamp.Nanosecond() != 0 {
		t.Errorf("NewMsgTx: timestamp not truncated to seconds - got %v",
			msg.Timestamp)
	}
	msg.AddTxIn(txIn)
	msg.AddTxOut(txOut)
	if msg.IsCoinBase() {
		t.Errorf("IsCoinBase: transaction spending %v reported as coinbase",
			prevOut)
	}
}

// TestGenesisCoinbaseSerialize ensures the genesis coinbase transaction
// serializes to the expected bytes and hashes to the expected merkle root.
func TestGenesisCoinbaseSerialize(t *testing.T) {
	want, err := hex.DecodeString(genesisCoinbaseHex)
	if err != nil {
		t.Fatalf("hex.DecodeString: %v", err)
	}

	tx := genesisCoinbase()
	if !tx.IsCoinBase() {
		t.Errorf("IsCoinBase: genesis coinbase not recognized")
	}

	var buf bytes.Buffer
	err = tx.Serialize(&buf)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Serialize: wrong bytes\ngot: %s\nwant: %s",
			spew.Sdump(buf.Bytes()), spew.Sdump(want))
	}
	if !bytes.Equal(tx.Bytes(), want) {
		t.Errorf("Bytes: result differs from Serialize")
	}
	if tx.SerializeSize() != len(want) {
		t.Errorf("SerializeSize: got %d, want %d", tx.SerializeSize(), len(want))
	}

	if hash := tx.TxHash(); hash != genesisMerkleRoot {
		t.Errorf("TxHash: got %v, want %v", hash, genesisMerkleRoot)
	}
}

// TestTxDeserialize ensures a serialized transaction decodes back to an
// equivalent transaction.
func TestTxDeserialize(t *testing.T) {
	raw, err := hex.DecodeString(genesisCoinbaseHex)
	if err != nil {
		t.Fatalf("hex.DecodeString: %v", err)
	}

	var tx MsgTx
	err = tx.Deserialize(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	want := genesisCoinbase()
	if tx.Version != want.Version || !tx.Timestamp.Equal(want.Timestamp) ||
		tx.LockTime != want.LockTime {
		t.Errorf("Deserialize: wrong scalar fields - got %v, want %v",
			spew.Sdump(&tx), spew.Sdump(want))
	}
	if !reflect.DeepEqual(tx.TxIn, want.TxIn) {
		t.Errorf("Deserialize: wrong inputs - got %v, want %v",
			spew.Sdump(tx.TxIn), spew.Sdump(want.TxIn))
	}
	if len(tx.TxOut) != 1 || !tx.TxOut[0].IsEmpty() {
		t.Errorf("Deserialize: wrong outputs - got %v", spew.Sdump(tx.TxOut))
	}

	// Every truncation must fail.
	for i := 0; i < len(raw); i++ {
		var short MsgTx
		if err := short.Deserialize(bytes.NewReader(raw[:i])); err == nil {
			t.Errorf("Deserialize: no error for input truncated to %d bytes", i)
		}
	}
}

// TestTxDeserializeTooManyInputs ensures the decoder refuses input counts
// that cannot fit in a message.
func TestTxDeserializeTooManyInputs(t *testing.T) {
	raw := []byte{
		0x01, 0x00, 0x00, 0x00, // Version
		0xb8, 0x93, 0x56, 0x5a, // Timestamp
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // Varint for number of inputs
	}

	var tx MsgTx
	err := tx.Deserialize(bytes.NewReader(raw))
	if _, ok := err.(*MessageError); !ok {
		t.Errorf("Deserialize: wrong error - got %T (%v), want *MessageError",
			err, err)
	}
}

// TestTxCopy ensures a copied transaction is independent of the original.
func TestTxCopy(t *testing.T) {
	tx := genesisCoinbase()
	txCopy := tx.Copy()
	if !reflect.DeepEqual(tx, txCopy) {
		t.Fatalf("Copy: copy differs from original - got %v, want %v",
			spew.Sdump(txCopy), spew.Sdump(tx))
	}

	txCopy.TxIn[0].SignatureScript[0] = 0x51
	txCopy.TxIn[0].Sequence = 0
	txCopy.AddTxOut(NewTxOut(1, nil))

	if tx.TxIn[0].SignatureScript[0] != 0x00 {
		t.Errorf("Copy: modifying the copy's script changed the original")
	}
	if tx.TxIn[0].Sequence != MaxTxInSequenceNum {
		t.Errorf("Copy: modifying the copy's input changed the original")
	}
	if len(tx.TxOut) != 1 {
		t.Errorf("Copy: adding an output to the copy changed the original")
	}
	if tx.TxHash() != genesisMerkleRoot {
		t.Errorf("Copy: original hash changed to %v", tx.TxHash())
	}
}
