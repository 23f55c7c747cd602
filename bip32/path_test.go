package bip32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePathMasterIsEmpty(t *testing.T) {
	p, err := ParsePath("m")
	require.NoError(t, err)
	require.Empty(t, p)
}

func TestParsePathSegments(t *testing.T) {
	p, err := ParsePath("m/44'/0h/1")
	require.NoError(t, err)
	require.Len(t, p, 3)
	require.True(t, p[0].IsHardened())
	require.EqualValues(t, 44, p[0].Index())
	require.True(t, p[1].IsHardened())
	require.EqualValues(t, 0, p[1].Index())
	require.False(t, p[2].IsHardened())
	require.EqualValues(t, 1, p[2].Index())
}

func TestParsePathRejectsWhitespace(t *testing.T) {
	_, err := ParsePath(" m/0")
	require.Error(t, err)

	_, err = ParsePath("m/0 ")
	require.Error(t, err)
}

func TestParsePathRejectsNonNumeric(t *testing.T) {
	_, err := ParsePath("m/abc")
	require.Error(t, err)
}

func TestParsePathRejectsOutOfRange(t *testing.T) {
	_, err := ParsePath("m/2147483648")
	require.Error(t, err)
}

func TestParsePathStringRoundTrip(t *testing.T) {
	p, err := ParsePath("m/44'/0'/0'/0/1")
	require.NoError(t, err)
	require.Equal(t, "m/44'/0'/0'/0/1", p.String())
}

func TestBip44Path(t *testing.T) {
	p := Bip44Path(60, 0, 0, 5)
	require.Equal(t, "m/44'/60'/0'/0/5", p.String())
}

func TestChildIndexWireRoundTrip(t *testing.T) {
	n := Normal(7)
	require.Equal(t, uint32(7), n.Wire())
	require.Equal(t, n, ChildIndexFromWire(7))

	h := Hardened(7)
	require.Equal(t, HardenedOffset+7, h.Wire())
	require.Equal(t, h, ChildIndexFromWire(HardenedOffset+7))
}
