package curveset

import (
	"crypto/subtle"
	"math/big"
)

// teLadder computes k*pt using a fixed-iteration-count double-and-add-always
// ladder: every iteration performs both a doubling and an addition and then
// selects the result with a constant-time conditional move, so the sequence
// of field operations does not depend on the scalar's bit pattern. This is
// the discipline the spec calls for on any path that multiplies by a secret
// VRF scalar (§5), in contrast to the variable-time double-and-add used for
// public-input MSM accumulation above.
//
// bits fixes the iteration count so that scalars of different bit-lengths
// still take the same number of steps; callers pass the subgroup order's
// bit length.
func teLadder(pt *TEPoint, k *big.Int, bits int) *TEPoint {
	params := pt.p
	acc := params.Identity()
	base := pt

	for i := bits - 1; i >= 0; i-- {
		acc = acc.Double()
		sum := acc.Add(base)
		bit := k.Bit(i)
		acc = teSelect(bit, sum, acc)
	}
	return acc
}

// teSelect returns a if bit == 1, otherwise b, using a constant-time byte
// select over each coordinate's big-endian encoding (see ctSelectInt) rather
// than a Go if.
func teSelect(bit uint, a, b *TEPoint) *TEPoint {
	mask := byte(subtle.ConstantTimeEq(int32(bit), 1))
	return &TEPoint{
		X: ctSelectInt(mask, a.X, b.X),
		Y: ctSelectInt(mask, a.Y, b.Y),
		T: ctSelectInt(mask, a.T, b.T),
		Z: ctSelectInt(mask, a.Z, b.Z),
		p: a.p,
	}
}

// ctSelectInt returns a if mask == 1, else b, copying big-endian encodings
// with subtle.ConstantTimeCopy so the choice does not depend on bit value
// via a Go conditional on the big.Int itself. The encodings are as wide as
// the wider of the two values, so their width follows the values' sizes
// rather than a fixed field width.
func ctSelectInt(mask byte, a, b *big.Int) *big.Int {
	size := a.BitLen()
	if bl := b.BitLen(); bl > size {
		size = bl
	}
	nbytes := (size + 7) / 8
	if nbytes == 0 {
		nbytes = 1
	}
	ab := make([]byte, nbytes)
	bb := make([]byte, nbytes)
	a.FillBytes(ab)
	b.FillBytes(bb)
	out := make([]byte, nbytes)
	subtle.ConstantTimeCopy(int(mask), out, ab)
	subtle.ConstantTimeCopy(1-int(mask), out, bb)
	return new(big.Int).SetBytes(out)
}
