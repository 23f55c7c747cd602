package bip32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrivateVersionBytesKnownMainnet(t *testing.T) {
	v, err := PrivateVersionBytes(Mainnet, P2PKH)
	require.NoError(t, err)
	require.Equal(t, [4]byte{0x04, 0x88, 0xad, 0xe4}, v)
}

func TestPublicVersionBytesKnownMainnet(t *testing.T) {
	v, err := PublicVersionBytes(Mainnet, P2PKH)
	require.NoError(t, err)
	require.Equal(t, [4]byte{0x04, 0x88, 0xb2, 0x1e}, v)
}

func TestVersionBytesInverseLookupRoundTrip(t *testing.T) {
	for network := range []Network{Mainnet, Testnet} {
		for format := range []Format{P2PKH, P2SHP2WPKH, Bech32} {
			v, err := PrivateVersionBytes(Network(network), Format(format))
			require.NoError(t, err)

			gotNetwork, gotFormat, err := NetworkFormatFromPrivateVersionBytes(v)
			require.NoError(t, err)
			require.Equal(t, Network(network), gotNetwork)
			require.Equal(t, Format(format), gotFormat)
		}
	}
}

func TestInvalidVersionBytesError(t *testing.T) {
	_, _, err := NetworkFormatFromPrivateVersionBytes([4]byte{0xde, 0xad, 0xbe, 0xef})
	require.Error(t, err)
	var verErr *InvalidVersionBytesError
	require.ErrorAs(t, err, &verErr)
}
