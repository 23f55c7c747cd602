package bip32

// Format names an address-script convention an extended key is scoped to.
// BIP49/84 script selection is named but not exercised by derivation (spec
// Non-goal); it exists so the registry can be extended without widening this
// type's call sites.
type Format int

const (
	// P2PKH is the legacy pay-to-pubkey-hash format (xprv/xpub).
	P2PKH Format = iota
	// P2SHP2WPKH is the wrapped-SegWit format (yprv/ypub).
	P2SHP2WPKH
	// Bech32 is the native-SegWit format (zprv/zpub).
	Bech32
)

// Network names a chain parameter set (mainnet vs. testnet) an extended key
// is scoped to.
type Network int

const (
	// Mainnet is Bitcoin mainnet.
	Mainnet Network = iota
	// Testnet is Bitcoin testnet/regtest.
	Testnet
)

type versionKey struct {
	network Network
	format  Format
}

// privateVersionBytes and publicVersionBytes are the finite bidirectional
// maps from network/format to their 4-byte version prefixes. Bitcoin
// mainnet/testnet xprv/xpub are the baseline pair; P2SH-P2WPKH and Bech32
// variants are included so the Format type is fully inhabited.
var privateVersionBytes = map[versionKey][4]byte{
	{Mainnet, P2PKH}:      {0x04, 0x88, 0xad, 0xe4}, // xprv
	{Mainnet, P2SHP2WPKH}: {0x04, 0x9d, 0x78, 0x78}, // yprv
	{Mainnet, Bech32}:     {0x04, 0xb2, 0x43, 0x0c}, // zprv
	{Testnet, P2PKH}:      {0x04, 0x35, 0x83, 0x94}, // tprv
	{Testnet, P2SHP2WPKH}: {0x04, 0x4a, 0x4e, 0x28}, // uprv
	{Testnet, Bech32}:     {0x04, 0x5f, 0x18, 0xbc}, // vprv
}

var publicVersionBytes = map[versionKey][4]byte{
	{Mainnet, P2PKH}:      {0x04, 0x88, 0xb2, 0x1e}, // xpub
	{Mainnet, P2SHP2WPKH}: {0x04, 0x9d, 0x7c, 0xb2}, // ypub
	{Mainnet, Bech32}:     {0x04, 0xb2, 0x47, 0x46}, // zpub
	{Testnet, P2PKH}:      {0x04, 0x35, 0x87, 0xcf}, // tpub
	{Testnet, P2SHP2WPKH}: {0x04, 0x4a, 0x52, 0x62}, // upub
	{Testnet, Bech32}:     {0x04, 0x5f, 0x1c, 0xf6}, // vpub
}

var privateVersionLookup = invert(privateVersionBytes)
var publicVersionLookup = invert(publicVersionBytes)

func invert(m map[versionKey][4]byte) map[[4]byte]versionKey {
	out := make(map[[4]byte]versionKey, len(m))
	for k, v := range m {
		if _, ambiguous := out[v]; ambiguous {
			panic("bip32: ambiguous version-byte registry configuration")
		}
		out[v] = k
	}
	return out
}

// PrivateVersionBytes resolves (network, format) to its 4-byte xprv-style
// version prefix.
func PrivateVersionBytes(network Network, format Format) ([4]byte, error) {
	v, ok := privateVersionBytes[versionKey{network, format}]
	if !ok {
		return [4]byte{}, &InvalidVersionBytesError{}
	}
	return v, nil
}

// PublicVersionBytes resolves (network, format) to its 4-byte xpub-style
// version prefix.
func PublicVersionBytes(network Network, format Format) ([4]byte, error) {
	v, ok := publicVersionBytes[versionKey{network, format}]
	if !ok {
		return [4]byte{}, &InvalidVersionBytesError{}
	}
	return v, nil
}

// NetworkFormatFromPrivateVersionBytes is the inverse lookup used when
// parsing a serialized extended private key.
func NetworkFormatFromPrivateVersionBytes(b [4]byte) (Network, Format, error) {
	k, ok := privateVersionLookup[b]
	if !ok {
		return 0, 0, &InvalidVersionBytesError{Bytes: b}
	}
	return k.network, k.format, nil
}

// NetworkFormatFromPublicVersionBytes is the inverse lookup used when
// parsing a serialized extended public key.
func NetworkFormatFromPublicVersionBytes(b [4]byte) (Network, Format, error) {
	k, ok := publicVersionLookup[b]
	if !ok {
		return 0, 0, &InvalidVersionBytesError{Bytes: b}
	}
	return k.network, k.format, nil
}
