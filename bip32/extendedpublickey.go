package bip32

import (
	"encoding/binary"

	"github.com/not-for-prod/hdkeys/internal/base58check"
	"github.com/not-for-prod/hdkeys/internal/curve"
	"github.com/not-for-prod/hdkeys/internal/hashset"
)

// ExtendedPublicKey mirrors ExtendedPrivateKey with a compressed public
// point in place of the private scalar. It supports only Normal-index child
// derivation (CKDpub).
type ExtendedPublicKey struct {
	Network    Network
	Format     Format
	Depth      uint8
	ParentFP   [4]byte
	ChildIndex ChildIndex
	ChainCode  [32]byte
	Point      curve.CompressedPoint
}

// Fingerprint returns hash160(compressed public point)[0:4].
func (k *ExtendedPublicKey) Fingerprint() [4]byte {
	h := hashset.Hash160(k.Point[:])
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// Derive implements CKDpub for a single Normal child index. Any Hardened
// index fails with ErrHardenedDerivationFromPublicKey.
func (k *ExtendedPublicKey) Derive(index ChildIndex) (*ExtendedPublicKey, error) {
	if index.IsHardened() {
		return nil, ErrHardenedDerivationFromPublicKey
	}
	if k.Depth == 255 {
		return nil, &MaximumChildDepthReachedError{Depth: k.Depth}
	}

	data := make([]byte, 0, 37)
	data = append(data, k.Point[:]...)
	var indexBE [4]byte
	binary.BigEndian.PutUint32(indexBE[:], index.Wire())
	data = append(data, indexBE[:]...)

	h := hashset.HmacSha512(k.ChainCode[:], data)

	childPoint, err := curve.AddPoints(h[0:32], k.Point)
	if err != nil {
		return nil, wrapScalarError(err)
	}

	var chainCode [32]byte
	copy(chainCode[:], h[32:64])

	return &ExtendedPublicKey{
		Network:    k.Network,
		Format:     k.Format,
		Depth:      k.Depth + 1,
		ParentFP:   k.Fingerprint(),
		ChildIndex: index,
		ChainCode:  chainCode,
		Point:      childPoint,
	}, nil
}

// DerivePath walks every Normal index in path; it fails immediately on any
// Hardened index.
func (k *ExtendedPublicKey) DerivePath(path DerivationPath) (*ExtendedPublicKey, error) {
	current := k
	for _, index := range path {
		next, err := current.Derive(index)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Serialize renders the 82-byte base58check envelope, identical to
// ExtendedPrivateKey.Serialize except for the key-material field, which
// holds the 33-byte compressed point instead of 0x00 || scalar.
func (k *ExtendedPublicKey) Serialize() (string, error) {
	version, err := PublicVersionBytes(k.Network, k.Format)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, 78)
	payload = append(payload, version[:]...)
	payload = append(payload, k.Depth)
	payload = append(payload, k.ParentFP[:]...)

	var indexBE [4]byte
	binary.BigEndian.PutUint32(indexBE[:], k.ChildIndex.Wire())
	payload = append(payload, indexBE[:]...)

	payload = append(payload, k.ChainCode[:]...)
	payload = append(payload, k.Point[:]...)

	return base58check.Encode(payload), nil
}

// String renders the extended key via Serialize, returning an empty string
// if the version-byte lookup fails.
func (k *ExtendedPublicKey) String() string {
	s, err := k.Serialize()
	if err != nil {
		return ""
	}
	return s
}

// ParseExtendedPublicKey base58check-decodes s and reconstructs the
// extended public key, validating length, version bytes, and checksum.
func ParseExtendedPublicKey(s string, network Network) (*ExtendedPublicKey, error) {
	payload, err := base58check.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(payload) != 78 {
		return nil, &InvalidByteLengthError{Length: len(payload)}
	}

	var version [4]byte
	copy(version[:], payload[0:4])
	gotNetwork, format, err := NetworkFormatFromPublicVersionBytes(version)
	if err != nil {
		return nil, err
	}
	if gotNetwork != network {
		return nil, &InvalidVersionBytesError{Bytes: version}
	}

	depth := payload[4]

	var parentFP [4]byte
	copy(parentFP[:], payload[5:9])

	childIndex := ChildIndexFromWire(binary.BigEndian.Uint32(payload[9:13]))

	var chainCode [32]byte
	copy(chainCode[:], payload[13:45])

	point, err := curve.ParsePoint(payload[45:78])
	if err != nil {
		return nil, err
	}

	return &ExtendedPublicKey{
		Network:    gotNetwork,
		Format:     format,
		Depth:      depth,
		ParentFP:   parentFP,
		ChildIndex: childIndex,
		ChainCode:  chainCode,
		Point:      point,
	}, nil
}
