package bip32

import (
	"encoding/binary"

	"github.com/not-for-prod/hdkeys/internal/base58check"
	"github.com/not-for-prod/hdkeys/internal/curve"
	"github.com/not-for-prod/hdkeys/internal/hashset"
)

var masterSecretSalt = []byte("Bitcoin seed")

// ExtendedPrivateKey is a BIP32 extended private key node: the master or any
// of its descendants, identified by a chain code and a 32-byte secp256k1
// scalar.
type ExtendedPrivateKey struct {
	Network    Network
	Format     Format
	Depth      uint8
	ParentFP   [4]byte
	ChildIndex ChildIndex
	ChainCode  [32]byte
	Scalar     curve.Scalar
}

// NewMasterKey derives the master extended private key from a seed of 16-64
// bytes. The seed is not validated for length here; callers pick their own
// entropy source (commonly 128/256/512 bits).
func NewMasterKey(seed []byte, network Network, format Format) (*ExtendedPrivateKey, error) {
	h := hashset.HmacSha512(masterSecretSalt, seed)

	scalar, err := curve.ScalarFromBytes(h[0:32])
	if err != nil {
		return nil, wrapScalarError(err)
	}

	var chainCode [32]byte
	copy(chainCode[:], h[32:64])

	return &ExtendedPrivateKey{
		Network:    network,
		Format:     format,
		Depth:      0,
		ParentFP:   [4]byte{},
		ChildIndex: Normal(0),
		ChainCode:  chainCode,
		Scalar:     scalar,
	}, nil
}

// publicPoint returns the compressed public point k*G for this node.
func (k *ExtendedPrivateKey) publicPoint() curve.CompressedPoint {
	return curve.PointFromScalar(k.Scalar)
}

// Fingerprint returns hash160(compressed public point)[0:4], the identifier
// this node's children record as their parent fingerprint.
func (k *ExtendedPrivateKey) Fingerprint() [4]byte {
	h := hashset.Hash160(k.publicPoint()[:])
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// deriveChild implements CKDpriv for a single index.
func (k *ExtendedPrivateKey) deriveChild(index ChildIndex) (*ExtendedPrivateKey, error) {
	parentPoint := k.publicPoint()

	data := make([]byte, 0, 37)
	if index.IsHardened() {
		scalarBytes := k.Scalar.Bytes()
		data = append(data, 0x00)
		data = append(data, scalarBytes[:]...)
	} else {
		data = append(data, parentPoint[:]...)
	}
	var indexBE [4]byte
	binary.BigEndian.PutUint32(indexBE[:], index.Wire())
	data = append(data, indexBE[:]...)

	h := hashset.HmacSha512(k.ChainCode[:], data)

	ilScalar, err := curve.ScalarFromBytes(h[0:32])
	if err != nil {
		return nil, wrapScalarError(err)
	}
	childScalar, err := curve.Add(ilScalar, k.Scalar)
	if err != nil {
		return nil, wrapScalarError(err)
	}

	var chainCode [32]byte
	copy(chainCode[:], h[32:64])

	return &ExtendedPrivateKey{
		Network:    k.Network,
		Format:     k.Format,
		Depth:      k.Depth + 1,
		ParentFP:   k.Fingerprint(),
		ChildIndex: index,
		ChainCode:  chainCode,
		Scalar:     childScalar,
	}, nil
}

// Derive walks path from this node, producing a new extended private key.
// It fails fast with MaximumChildDepthReachedError if this node is already
// at depth 255 (checked once, before iterating — not per step).
func (k *ExtendedPrivateKey) Derive(path DerivationPath) (*ExtendedPrivateKey, error) {
	if k.Depth == 255 && len(path) > 0 {
		return nil, &MaximumChildDepthReachedError{Depth: k.Depth}
	}

	current := k
	for _, index := range path {
		next, err := current.deriveChild(index)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// ToExtendedPublicKey projects this private node to its extended public
// counterpart: depth, parent fingerprint, child index, chain code, network,
// and format carry over unchanged; only the key material changes.
func (k *ExtendedPrivateKey) ToExtendedPublicKey() *ExtendedPublicKey {
	return &ExtendedPublicKey{
		Network:    k.Network,
		Format:     k.Format,
		Depth:      k.Depth,
		ParentFP:   k.ParentFP,
		ChildIndex: k.ChildIndex,
		ChainCode:  k.ChainCode,
		Point:      k.publicPoint(),
	}
}

// Serialize renders the 82-byte base58check envelope:
// version(4) || depth(1) || parent_fingerprint(4) || child_index(4) ||
// chain_code(32) || 0x00 || scalar(32) || checksum(4).
func (k *ExtendedPrivateKey) Serialize() (string, error) {
	version, err := PrivateVersionBytes(k.Network, k.Format)
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
	payload = append(payload, 0x00)
	scalarBytes := k.Scalar.Bytes()
	payload = append(payload, scalarBytes[:]...)

	return base58check.Encode(payload), nil
}

// String renders the extended key via Serialize, returning an empty string
// if the version-byte lookup fails. Callers needing the error should use
// Serialize directly.
func (k *ExtendedPrivateKey) String() string {
	s, err := k.Serialize()
	if err != nil {
		return ""
	}
	return s
}

// ParseExtendedPrivateKey base58check-decodes s and reconstructs the
// extended private key, validating length, version bytes, and checksum.
func ParseExtendedPrivateKey(s string, network Network) (*ExtendedPrivateKey, error) {
	payload, err := base58check.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(payload) != 78 {
		return nil, &InvalidByteLengthError{Length: len(payload)}
	}

	var version [4]byte
	copy(version[:], payload[0:4])
	gotNetwork, format, err := NetworkFormatFromPrivateVersionBytes(version)
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

	// payload[45] is the 0x00 byte padding the scalar to 33 bytes on the
	// wire; its value is not checked.
	scalar, err := curve.ScalarFromBytes(payload[46:78])
	if err != nil {
		return nil, wrapScalarError(err)
	}

	return &ExtendedPrivateKey{
		Network:    gotNetwork,
		Format:     format,
		Depth:      depth,
		ParentFP:   parentFP,
		ChildIndex: childIndex,
		ChainCode:  chainCode,
		Scalar:     scalar,
	}, nil
}
