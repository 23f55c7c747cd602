// Package bip32 implements BIP32 hierarchical deterministic key derivation
// over secp256k1: master key generation from a seed, CKDpriv/CKDpub child
// derivation, and base58check serialization of extended keys.
package bip32

// HardenedOffset is the bit added to a child index to mark it Hardened on
// the wire: indices at or above this value are hardened, below it normal.
const HardenedOffset uint32 = 1 << 31

// ChildIndex tags a 31-bit child number with its derivation mode. A Normal
// index derives with only the parent's public key; a Hardened index
// requires the parent's private key.
type ChildIndex struct {
	index    uint32
	hardened bool
}

// Normal returns a non-hardened child index. i must be < 2^31.
func Normal(i uint32) ChildIndex {
	return ChildIndex{index: i & (HardenedOffset - 1)}
}

// Hardened returns a hardened child index. i must be < 2^31; the returned
// index's wire representation is i + 2^31.
func Hardened(i uint32) ChildIndex {
	return ChildIndex{index: i & (HardenedOffset - 1), hardened: true}
}

// IsHardened reports whether this index requires the parent private key to
// derive.
func (c ChildIndex) IsHardened() bool {
	return c.hardened
}

// Index returns the unbiased 31-bit child number (without the hardened bit).
func (c ChildIndex) Index() uint32 {
	return c.index
}

// Wire returns the canonical big-endian 32-bit wire representation: index
// for Normal, index+2^31 for Hardened.
func (c ChildIndex) Wire() uint32 {
	if c.hardened {
		return c.index + HardenedOffset
	}
	return c.index
}

// ChildIndexFromWire restores a ChildIndex from its 32-bit wire form by
// testing the high bit.
func ChildIndexFromWire(wire uint32) ChildIndex {
	if wire >= HardenedOffset {
		return Hardened(wire - HardenedOffset)
	}
	return Normal(wire)
}
