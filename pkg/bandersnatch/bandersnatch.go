// Package bandersnatch instantiates the Bandersnatch twisted Edwards curve
// (prime-order subgroup "Banderwagon") as a concrete curveset.TEParams, and
// provides the quotient-group 32-byte point encoding the spec's wire formats
// use for VRF public keys, gamma outputs, and commitments on this suite.
//
// The arithmetic itself is curveset's generic TE implementation; this
// package only supplies Bandersnatch's constants and the encode/decode
// convention, generalized from the teacher's banderwagon.go (which hard-
// coded these same constants directly into its point type).
package bandersnatch

import (
	"errors"
	"math/big"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
)

var (
	// ErrEncodingOutOfRange is returned when a decoded Y coordinate is not
	// reduced modulo the field.
	ErrEncodingOutOfRange = errors.New("bandersnatch: encoded Y out of range")
	// ErrNoXCoordinate is returned when the curve equation has no solution
	// for X given the decoded Y.
	ErrNoXCoordinate = errors.New("bandersnatch: no valid X for given Y")
	// ErrNotInSubgroup is returned when neither point sharing an encoding
	// lies in the prime-order subgroup.
	ErrNotInSubgroup = errors.New("bandersnatch: point not in prime-order subgroup")
)

var (
	fieldP, _ = new(big.Int).SetString(
		"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	subgroupN, _ = new(big.Int).SetString(
		"1cfb69d4ca675f520cce760202687600ff8f87007419047174fd06b52876e7e1", 16)
	curveD, _ = new(big.Int).SetString(
		"6389c12633c267cbc66e3bf86be3b6d8cb66677177e54f92b369f2f5188d58e7", 16)
	genX, _ = new(big.Int).SetString(
		"29c132cc2c0b34c5743711777bbe42f32b79c022ad998465e1e71866a252ae18", 16)
	genY, _ = new(big.Int).SetString(
		"2a6c669eda123e0f157d8b50badcd586358cad81eee464605e3167b6cc974166", 16)
)

// Params returns the Bandersnatch/Banderwagon curve parameters: the
// twisted Edwards form -5x^2 + y^2 = 1 + d*x^2*y^2 over the BLS12-381
// scalar field, restricted to its prime-order-N subgroup (cofactor 4).
func Params() *curveset.TEParams {
	f := curveset.NewField(fieldP)
	a := f.Neg(big.NewInt(5))
	return &curveset.TEParams{Field: f, A: a, D: curveD, Gx: genX, Gy: genY, N: subgroupN}
}

// Curve returns the curveset.Curve capability wrapping Params, for
// registration with pkg/suite.
func Curve() *curveset.EdwardsCurve {
	return &curveset.EdwardsCurve{Params: Params()}
}

// Encode serializes a point to the 32-byte Banderwagon quotient-group
// encoding: the Y coordinate in little-endian, normalized to the
// "positive" (lower) half of the field, with the sign of X folded into the
// top bit. Because Banderwagon works in the quotient group by {±1}, (x, y)
// and (-x, -y) encode identically. The identity encodes as byte 31 set to
// 1 and every other byte zero.
func Encode(pt *curveset.TEPoint) [32]byte {
	var out [32]byte
	f := Params().Field

	if pt.IsIdentity() {
		out[31] = 1
		return out
	}

	x, y := pt.Affine()
	half := new(big.Int).Rsh(fieldP, 1)
	if y.Cmp(half) > 0 {
		x = f.Neg(x)
		y = f.Neg(y)
	}

	yBytes := y.Bytes()
	for i, b := range yBytes {
		out[len(yBytes)-1-i] = b
	}
	if x.Cmp(half) > 0 {
		out[31] |= 0x80
	}
	return out
}

// Decode recovers a point from its 32-byte Banderwagon encoding. Of the two
// points (x, y) and (-x, -y) sharing an encoding it returns the one in the
// prime-order subgroup, and rejects the encoding if neither is.
func Decode(data [32]byte) (*curveset.TEPoint, error) {
	params := Params()
	f := params.Field

	if data == ([32]byte{31: 1}) {
		return params.Identity(), nil
	}

	signBit := data[31] & 0x80
	data[31] &= 0x7f

	be := make([]byte, 32)
	for i := 0; i < 32; i++ {
		be[31-i] = data[i]
	}
	y := new(big.Int).SetBytes(be)
	if y.Cmp(fieldP) >= 0 {
		return nil, ErrEncodingOutOfRange
	}

	// -5x^2 + y^2 = 1 + d*x^2*y^2  =>  x^2 = (y^2 - 1) / (5 + d*y^2)
	y2 := f.Sqr(y)
	num := f.Sub(y2, big.NewInt(1))
	den := f.Add(big.NewInt(5), f.Mul(curveD, y2))
	denInv := f.Inv(den)
	if denInv == nil {
		return nil, ErrNoXCoordinate
	}
	x2 := f.Mul(num, denInv)

	x := f.Sqrt(x2)
	if x == nil {
		return nil, ErrNoXCoordinate
	}

	half := new(big.Int).Rsh(fieldP, 1)
	switch {
	case signBit != 0 && x.Cmp(half) <= 0:
		x = f.Neg(x)
	case signBit == 0 && x.Cmp(half) > 0:
		x = f.Neg(x)
	}

	nm1 := new(big.Int).Sub(subgroupN, big.NewInt(1))
	for _, c := range [][2]*big.Int{{x, y}, {f.Neg(x), f.Neg(y)}} {
		pt, err := params.FromAffine(c[0], c[1])
		if err == nil && pt.ScalarMul(nm1).Add(pt).IsIdentity() {
			return pt, nil
		}
	}
	return nil, ErrNotInSubgroup
}

// MapToScalarField maps a point to a BLS12-381 scalar field element X/Y,
// the convention used to fold a curve point into a transcript/challenge
// scalar elsewhere in this library.
func MapToScalarField(pt *curveset.TEPoint) *big.Int {
	if pt.IsIdentity() {
		return new(big.Int)
	}
	f := Params().Field
	x, y := pt.Affine()
	yInv := f.Inv(y)
	if yInv == nil {
		return new(big.Int)
	}
	return f.Mul(x, yInv)
}
