package base58check

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{0x04, 0x88, 0xad, 0xe4, 0x00, 0x01, 0x02, 0x03}
	encoded := Encode(payload)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestDecodeFlippedChecksumByteFails(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	encoded := Encode(payload)

	// Flip the last character, which lands in the checksum tail.
	runes := []rune(encoded)
	last := runes[len(runes)-1]
	for _, r := range "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz" {
		if r != last {
			runes[len(runes)-1] = r
			break
		}
	}
	mutated := string(runes)

	_, err := Decode(mutated)
	require.Error(t, err)
	var checksumErr *ChecksumError
	require.ErrorAs(t, err, &checksumErr)
}
