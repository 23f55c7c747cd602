package bip32

import (
	"errors"
	"fmt"

	"github.com/not-for-prod/hdkeys/internal/curve"
)

// InvalidScalarError reports a secp256k1 scalar rejection surfaced at the
// bip32 package boundary: the HMAC output (or a parsed private-key field)
// was zero or fell outside [1, n).
type InvalidScalarError struct {
	Reason string
}

func (e *InvalidScalarError) Error() string {
	return fmt.Sprintf("bip32: invalid scalar: %s", e.Reason)
}

// wrapScalarError rewraps a *curve.InvalidScalarError as a
// *bip32.InvalidScalarError so callers can errors.As against this package's
// own exported type rather than reaching into internal/curve. Any other
// error passes through unchanged.
func wrapScalarError(err error) error {
	var curveErr *curve.InvalidScalarError
	if errors.As(err, &curveErr) {
		return &InvalidScalarError{Reason: curveErr.Reason}
	}
	return err
}

// InvalidByteLengthError reports a base58-decoded extended key whose payload
// is not exactly 78 bytes (82 bytes including the base58check checksum).
type InvalidByteLengthError struct {
	Length int
}

func (e *InvalidByteLengthError) Error() string {
	return fmt.Sprintf("bip32: invalid serialized key length: %d", e.Length)
}

// InvalidVersionBytesError reports a 4-byte version prefix that the
// network/format registry does not recognize.
type InvalidVersionBytesError struct {
	Bytes [4]byte
}

func (e *InvalidVersionBytesError) Error() string {
	return fmt.Sprintf("bip32: invalid version bytes: %x", e.Bytes)
}

// MaximumChildDepthReachedError reports an attempt to derive a child from a
// node already at the maximum depth of 255.
type MaximumChildDepthReachedError struct {
	Depth uint8
}

func (e *MaximumChildDepthReachedError) Error() string {
	return fmt.Sprintf("bip32: maximum child depth reached at depth %d", e.Depth)
}

// ErrHardenedDerivationFromPublicKey is returned when CKDpub is attempted
// with a hardened child index; a public-only node cannot derive hardened
// children.
var ErrHardenedDerivationFromPublicKey = fmt.Errorf("bip32: cannot derive a hardened child from a public key")

// InvalidPathError reports a derivation-path string that failed to parse.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("bip32: invalid derivation path: %q", e.Path)
}
