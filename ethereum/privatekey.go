// Package ethereum implements the single-level Ethereum secp256k1 key: a
// bare private scalar with hexadecimal encoding, no hierarchical derivation.
package ethereum

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/not-for-prod/hdkeys/internal/curve"
)

// PrivateKey is a bare secp256k1 private scalar, hex-encoded with no
// network or format tag — Ethereum has neither a hierarchical tree nor a
// base58check envelope at this layer.
type PrivateKey struct {
	scalar curve.Scalar
}

// New generates a private key by drawing 32 bytes from rng and rejecting
// values the curve adapter refuses (zero or >= n) by drawing again. rng is
// caller-supplied and never retained.
func New(rng io.Reader) (*PrivateKey, error) {
	for {
		var buf [32]byte
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return nil, fmt.Errorf("ethereum: reading randomness: %w", err)
		}
		scalar, err := curve.ScalarFromBytes(buf[:])
		if err != nil {
			continue
		}
		return &PrivateKey{scalar: scalar}, nil
	}
}

// FromHex parses a 32-byte hex-encoded private scalar.
func FromHex(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("ethereum: invalid hex private key: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("ethereum: private key must be 32 bytes, got %d", len(b))
	}
	scalar, err := curve.ScalarFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{scalar: scalar}, nil
}

// Hex renders the private key's 32-byte scalar as lowercase hex.
func (k *PrivateKey) Hex() string {
	b := k.scalar.Bytes()
	return hex.EncodeToString(b[:])
}

// String implements fmt.Stringer via Hex.
func (k *PrivateKey) String() string {
	return k.Hex()
}

// PublicKeyHex returns the 33-byte compressed public point k*G, hex-encoded.
// Uncompressed-point rendering and chain-specific address derivation are
// left to callers.
func (k *PrivateKey) PublicKeyHex() string {
	point := curve.PointFromScalar(k.scalar)
	return hex.EncodeToString(point[:])
}
