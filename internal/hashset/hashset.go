// Package hashset collects the hash primitives shared by the bip32 and
// base58check packages: HMAC-SHA512 for key-stretching, hash160 for fingerprints,
// and the double-SHA256 checksum used by base58check.
package hashset

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// HmacSha512 returns HMAC-SHA512(key, data), used both to derive a BIP32
// master node from a seed and to mix a parent chain code into a child node.
func HmacSha512(key, data []byte) [64]byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)
	var out [64]byte
	copy(out[:], sum)
	return out
}

// Hash160 returns RIPEMD160(SHA256(data)), used to compute extended-key
// fingerprints from a compressed public key.
func Hash160(data []byte) [20]byte {
	sha := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(sha[:])
	sum := r.Sum(nil)
	var out [20]byte
	copy(out[:], sum)
	return out
}

// DoubleSha256Checksum returns the first 4 bytes of SHA256(SHA256(data)), the
// trailing checksum appended by base58check.
func DoubleSha256Checksum(data []byte) [4]byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	var out [4]byte
	copy(out[:], second[:4])
	return out
}
