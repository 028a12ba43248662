package htc

import (
	"math/big"
	"testing"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
)

// bls12381FpParams mirrors the teacher's SSWU constants for the BLS12-381
// G1 isogenous curve, used here only to exercise the generalized SSWU map.
func bls12381FpParams(t *testing.T) *SSWUParams {
	t.Helper()
	p, _ := new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
	a, _ := new(big.Int).SetString(
		"144698a3b8e9433d693a02c96d4982b0ea985383ee66a8d8e8981aefd881ac98936f8da0e0f97f5cf428082d584c1d", 16)
	b, _ := new(big.Int).SetString(
		"12e2908d11688030018b12e8753eee3b2016c1f0f24f4070a0b9c14fcef35ef55a23215a316ceaa5d1cc48e98e172be0", 16)
	return &SSWUParams{Field: curveset.NewField(p), A: a, B: b, Z: big.NewInt(11)}
}

func TestSSWUProducesPointOnIsogenousCurve(t *testing.T) {
	params := bls12381FpParams(t)
	f := params.Field

	for u := int64(1); u < 6; u++ {
		x, y := params.Map(big.NewInt(u))
		lhs := f.Sqr(y)
		rhs := f.Add(f.Add(f.Mul(f.Sqr(x), x), f.Mul(params.A, x)), params.B)
		if lhs.Cmp(rhs) != 0 {
			t.Fatalf("u=%d: (x,y) not on isogenous curve", u)
		}
	}
}

func TestSSWUDeterministic(t *testing.T) {
	params := bls12381FpParams(t)
	x1, y1 := params.Map(big.NewInt(7))
	x2, y2 := params.Map(big.NewInt(7))
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 {
		t.Fatal("SSWU map is not deterministic")
	}
}
