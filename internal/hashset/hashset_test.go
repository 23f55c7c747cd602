package hashset

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHmacSha512BIP32Vector1(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	sum := HmacSha512([]byte("Bitcoin seed"), seed)
	require.Equal(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35", hex.EncodeToString(sum[0:32]))
	require.Equal(t, "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508", hex.EncodeToString(sum[32:64]))
}

func TestDoubleSha256ChecksumDeterministic(t *testing.T) {
	a := DoubleSha256Checksum([]byte("hdkeys"))
	b := DoubleSha256Checksum([]byte("hdkeys"))
	require.Equal(t, a, b)

	c := DoubleSha256Checksum([]byte("hdkeyS"))
	require.NotEqual(t, a, c)
}

func TestHash160Length(t *testing.T) {
	out := Hash160([]byte{0x02, 0x01})
	require.Len(t, out, 20)
}
