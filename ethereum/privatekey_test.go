package ethereum

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndHexRoundTrip(t *testing.T) {
	key, err := New(rand.Reader)
	require.NoError(t, err)
	require.Len(t, key.Hex(), 64)

	parsed, err := FromHex(key.Hex())
	require.NoError(t, err)
	require.Equal(t, key.Hex(), parsed.Hex())
}

func TestFromHexRejectsWrongLength(t *testing.T) {
	_, err := FromHex("abcd")
	require.Error(t, err)
}

func TestFromHexRejectsZeroScalar(t *testing.T) {
	_, err := FromHex(strings.Repeat("00", 32))
	require.Error(t, err)
}

func TestPublicKeyHexIsCompressedPoint(t *testing.T) {
	key, err := New(rand.Reader)
	require.NoError(t, err)

	pub := key.PublicKeyHex()
	require.Len(t, pub, 66)
	require.True(t, strings.HasPrefix(pub, "02") || strings.HasPrefix(pub, "03"))
}

func TestNewDrawsFromSuppliedReader(t *testing.T) {
	src := append(bytes.Repeat([]byte{0x00}, 31), 0x01)
	key, err := New(bytes.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000001", key.Hex())
}
