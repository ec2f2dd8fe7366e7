package chaincfg

import (
	"bytes"
	"fmt"

	"github.com/brickchain/brickd/util/chainhash"
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// Base58Type identifies what a base58check encoded payload is.
type Base58Type int

// Kinds of base58check payloads.
const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey
)

var base58TypeStrings = map[Base58Type]string{
	PubKeyAddress: "PubKeyAddress",
	ScriptAddress: "ScriptAddress",
	SecretKey:     "SecretKey",
	ExtPublicKey:  "ExtPublicKey",
	ExtSecretKey:  "ExtSecretKey",
}

// String returns the Base58Type in human-readable form.
func (t Base58Type) String() string {
	if s, ok := base58TypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Base58Type (%d)", int(t))
}

// checksumSize is the number of double sha256 bytes appended to a
// base58check payload.
const checksumSize = 4

// ErrUnknownBase58Prefix describes an error where a base58check string
// decodes correctly but does not start with a version of the network.
var ErrUnknownBase58Prefix = errors.New("unknown base58 prefix for network")

// ErrUnknownBase58Type describes an error where a Base58Type has no prefix.
var ErrUnknownBase58Type = errors.New("unknown base58 type")

// Prefix returns the version bytes of kind.
func (b *Base58Prefixes) Prefix(kind Base58Type) ([]byte, error) {
	switch kind {
	case PubKeyAddress:
		return []byte{b.PubKeyAddress}, nil
	case ScriptAddress:
		return []byte{b.ScriptAddress}, nil
	case SecretKey:
		return []byte{b.SecretKey}, nil
	case ExtPublicKey:
		return append([]byte(nil), b.ExtPublicKey[:]...), nil
	case ExtSecretKey:
		return append([]byte(nil), b.ExtSecretKey[:]...), nil
	}
	return nil, errors.Wrapf(ErrUnknownBase58Type, "%s", kind)
}

// EncodeBase58 prepends the network version bytes of kind to payload and
// returns its base58check encoding.
func (p *Params) EncodeBase58(kind Base58Type, payload []byte) (string, error) {
	prefix, err := p.Base58Prefixes.Prefix(kind)
	if err != nil {
		return "", err
	}
	if len(prefix) == 1 {
		return base58.CheckEncode(payload, prefix[0]), nil
	}

	b := make([]byte, 0, len(prefix)+len(payload)+checksumSize)
	b = append(b, prefix...)
	b = append(b, payload...)
	b = append(b, chainhash.DoubleHashB(b)[:checksumSize]...)
	return base58.Encode(b), nil
}

// DecodeBase58 decodes a base58check string produced for this network and
// returns its kind and payload. The errors base58.ErrInvalidFormat and
// base58.ErrChecksum report malformed input, and ErrUnknownBase58Prefix input
// whose version bytes belong to no kind of this network.
func (p *Params) DecodeBase58(s string) (Base58Type, []byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) < 1+checksumSize {
		return 0, nil, errors.WithStack(base58.ErrInvalidFormat)
	}

	body := decoded[:len(decoded)-checksumSize]
	checksum := decoded[len(decoded)-checksumSize:]
	if !bytes.Equal(chainhash.DoubleHashB(body)[:checksumSize], checksum) {
		return 0, nil, errors.WithStack(base58.ErrChecksum)
	}

	prefixes := &p.Base58Prefixes
	if len(body) >= len(prefixes.ExtPublicKey) {
		switch {
		case bytes.Equal(body[:4], prefixes.ExtPublicKey[:]):
			return ExtPublicKey, body[4:], nil
		case bytes.Equal(body[:4], prefixes.ExtSecretKey[:]):
			return ExtSecretKey, body[4:], nil
		}
	}

	switch body[0] {
	case prefixes.PubKeyAddress:
		return PubKeyAddress, body[1:], nil
	case prefixes.ScriptAddress:
		return ScriptAddress, body[1:], nil
	case prefixes.SecretKey:
		return SecretKey, body[1:], nil
	}
	return 0, nil, errors.Wrapf(ErrUnknownBase58Prefix, "%s: version %d", p.Name, body[0])
}
