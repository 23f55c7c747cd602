package monero

import "math/big"

// curveOrder is ℓ, the order of the Ed25519 base-point subgroup:
// 2^252 + 27742317777372353535851937790883648493.
var curveOrder = mustParseDecimal("7237005577332262213973186563042994240857116359379907606001950938285454250989")

func mustParseDecimal(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("monero: invalid curve order literal")
	}
	return n
}

// reduceScalarMod32LE reduces a 32-byte little-endian scalar mod ℓ and
// returns the result, also little-endian and zero-padded to 32 bytes.
//
// No third-party Ed25519 scalar-arithmetic primitive appears anywhere in the
// retrieval pack with a public "reduce mod group order" entry point narrow
// enough for this single operation (see DESIGN.md); math/big is exact and
// auditable against the literal ℓ above, so it is used directly here rather
// than pulling in a full Ed25519 signing library for one modular reduction.
func reduceScalarMod32LE(seed [32]byte) [32]byte {
	be := reverse(seed[:])
	n := new(big.Int).SetBytes(be)
	n.Mod(n, curveOrder)

	var out [32]byte
	nBytes := n.Bytes()
	// n.Bytes() is big-endian, right-aligned; place it at the tail of a
	// 32-byte big-endian buffer, then reverse to little-endian.
	var beOut [32]byte
	copy(beOut[32-len(nBytes):], nBytes)
	copy(out[:], reverse(beOut[:]))
	return out
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
