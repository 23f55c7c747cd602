// Package curve adapts github.com/decred/dcrd/dcrec/secp256k1/v4 to the
// narrow scalar/point operations BIP32 derivation needs: parse/validate a
// scalar, add two scalars mod n, and project a scalar to its compressed
// public point.
package curve

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is a secp256k1 private scalar reduced mod the curve order n.
type Scalar struct {
	inner secp256k1.ModNScalar
}

// InvalidScalarError reports a scalar that is zero or >= the curve order n.
type InvalidScalarError struct {
	Reason string
}

func (e *InvalidScalarError) Error() string {
	return fmt.Sprintf("curve: invalid scalar: %s", e.Reason)
}

// ScalarFromBytes parses a 32-byte big-endian scalar, rejecting zero and any
// value >= n.
func ScalarFromBytes(b []byte) (Scalar, error) {
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	if overflow {
		return Scalar{}, &InvalidScalarError{Reason: "value >= curve order"}
	}
	if s.IsZero() {
		return Scalar{}, &InvalidScalarError{Reason: "value is zero"}
	}
	return Scalar{inner: s}, nil
}

// Bytes returns the scalar's canonical 32-byte big-endian encoding.
func (s Scalar) Bytes() [32]byte {
	return s.inner.Bytes()
}

// Add returns (a + b) mod n, rejecting a zero result.
func Add(a, b Scalar) (Scalar, error) {
	sum := a.inner
	sum.Add(&b.inner)
	if sum.IsZero() {
		return Scalar{}, &InvalidScalarError{Reason: "sum is zero"}
	}
	return Scalar{inner: sum}, nil
}

// CompressedPoint is the 33-byte SEC1 compressed serialization of a
// secp256k1 point.
type CompressedPoint [33]byte

// PointFromScalar returns the compressed serialization of s*G.
func PointFromScalar(s Scalar) CompressedPoint {
	priv := secp256k1.NewPrivateKey(&s.inner)
	var out CompressedPoint
	copy(out[:], priv.PubKey().SerializeCompressed())
	return out
}

// ParsePoint parses a 33-byte compressed point, verifying it lies on the
// curve.
func ParsePoint(b []byte) (CompressedPoint, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return CompressedPoint{}, fmt.Errorf("curve: invalid point: %w", err)
	}
	var out CompressedPoint
	copy(out[:], pub.SerializeCompressed())
	return out, nil
}

// AddPoints returns the compressed serialization of scalarPoint(ilScalar) +
// parent, where ilScalar is a 32-byte left-HMAC output treated as a scalar
// (CKDpub's point_add(point_from_scalar(I[0..32]), P_parent)). It reports
// InvalidScalarError if ilScalar is out of range, and a generic error if the
// sum is the point at infinity.
func AddPoints(ilScalarBytes []byte, parent CompressedPoint) (CompressedPoint, error) {
	ilScalar, err := ScalarFromBytes(ilScalarBytes)
	if err != nil {
		return CompressedPoint{}, err
	}

	var ilPoint secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&ilScalar.inner, &ilPoint)

	parentKey, err := secp256k1.ParsePubKey(parent[:])
	if err != nil {
		return CompressedPoint{}, fmt.Errorf("curve: invalid parent point: %w", err)
	}
	var parentJ secp256k1.JacobianPoint
	parentKey.AsJacobian(&parentJ)

	var sumJ secp256k1.JacobianPoint
	secp256k1.AddNonConst(&ilPoint, &parentJ, &sumJ)
	sumJ.ToAffine()

	if sumJ.X.IsZero() && sumJ.Y.IsZero() {
		return CompressedPoint{}, fmt.Errorf("curve: derived point is the identity")
	}

	sumKey := secp256k1.NewPublicKey(&sumJ.X, &sumJ.Y)
	var out CompressedPoint
	copy(out[:], sumKey.SerializeCompressed())
	return out, nil
}
