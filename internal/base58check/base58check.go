// Package base58check implements the base58-with-checksum envelope used to
// render BIP32 extended keys as human-copyable strings: Base58(payload ||
// checksum(payload)[0:4]).
package base58check

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/not-for-prod/hdkeys/internal/hashset"
)

// ChecksumError reports a base58check decode whose trailing 4 bytes do not
// match the recomputed checksum. Both sides are rendered as base58 strings
// so the mismatch can be read directly off the error message.
type ChecksumError struct {
	Expected string
	Found    string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("base58check: invalid checksum, expected %q, found %q", e.Expected, e.Found)
}

// Encode appends the 4-byte double-SHA256 checksum to payload and base58
// encodes the result.
func Encode(payload []byte) string {
	checksum := hashset.DoubleSha256Checksum(payload)
	buf := make([]byte, 0, len(payload)+4)
	buf = append(buf, payload...)
	buf = append(buf, checksum[:]...)
	return base58.Encode(buf)
}

// Decode base58-decodes s and verifies its trailing 4-byte checksum,
// returning the payload with the checksum stripped.
func Decode(s string) ([]byte, error) {
	data := base58.Decode(s)
	if len(data) < 4 {
		return nil, fmt.Errorf("base58check: decoded data too short: %d bytes", len(data))
	}

	payload := data[:len(data)-4]
	trailer := data[len(data)-4:]
	expected := hashset.DoubleSha256Checksum(payload)
	if [4]byte(trailer) != expected {
		return nil, &ChecksumError{
			Expected: base58.Encode(expected[:]),
			Found:    base58.Encode(trailer),
		}
	}
	return payload, nil
}
