package curveset

import (
	"math/big"
	"testing"
)

// testTEParams builds the Bandersnatch twisted Edwards instance over the
// BLS12-381 scalar field, the same constants the teacher's Banderwagon code
// hard-coded, used here purely to exercise the generalized TE arithmetic.
func testTEParams(t *testing.T) *TEParams {
	t.Helper()
	p, ok := new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	if !ok {
		t.Fatal("bad P")
	}
	n, ok := new(big.Int).SetString("1cfb69d4ca675f520cce760202687600ff8f87007419047174fd06b52876e7e1", 16)
	if !ok {
		t.Fatal("bad N")
	}
	d, ok := new(big.Int).SetString("6389c12633c267cbc66e3bf86be3b6d8cb66677177e54f92b369f2f5188d58e7", 16)
	if !ok {
		t.Fatal("bad D")
	}
	gx, ok := new(big.Int).SetString("29c132cc2c0b34c5743711777bbe42f32b79c022ad998465e1e71866a252ae18", 16)
	if !ok {
		t.Fatal("bad Gx")
	}
	gy, ok := new(big.Int).SetString("2a6c669eda123e0f157d8b50badcd586358cad81eee464605e3167b6cc974166", 16)
	if !ok {
		t.Fatal("bad Gy")
	}
	f := NewField(p)
	a := f.Neg(big.NewInt(5))
	return &TEParams{Field: f, A: a, D: d, Gx: gx, Gy: gy, N: n}
}

func TestTEGeneratorOnCurve(t *testing.T) {
	params := testTEParams(t)
	if !params.IsOnCurve(params.Gx, params.Gy) {
		t.Fatal("generator does not satisfy curve equation")
	}
}

func TestTEIdentityIsNeutral(t *testing.T) {
	params := testTEParams(t)
	g := params.Generator()
	id := params.Identity()

	sum := g.Add(id)
	if !sum.Equal(g) {
		t.Fatal("G + identity != G")
	}
}

func TestTEDoubleMatchesAdd(t *testing.T) {
	params := testTEParams(t)
	g := params.Generator()

	doubled := g.Double()
	added := g.Add(g)
	if !doubled.Equal(added) {
		t.Fatal("Double(G) != G + G")
	}
}

func TestTEScalarMulMatchesRepeatedAdd(t *testing.T) {
	params := testTEParams(t)
	g := params.Generator()

	acc := params.Identity()
	for i := 0; i < 9; i++ {
		acc = acc.Add(g)
	}
	viaLadder := g.ScalarMul(big.NewInt(9))
	if !viaLadder.Equal(acc) {
		t.Fatal("ScalarMul(9) != 9 additions")
	}
}

func TestTEScalarMulZeroIsIdentity(t *testing.T) {
	params := testTEParams(t)
	g := params.Generator()
	zero := g.ScalarMul(big.NewInt(0))
	if !zero.IsIdentity() {
		t.Fatal("0*G is not identity")
	}
}

func TestTENegCancels(t *testing.T) {
	params := testTEParams(t)
	g := params.Generator()
	sum := g.Add(g.Neg())
	if !sum.IsIdentity() {
		t.Fatal("G + (-G) != identity")
	}
}

func TestTEFromAffineRejectsOffCurve(t *testing.T) {
	params := testTEParams(t)
	_, err := params.FromAffine(big.NewInt(1), big.NewInt(1))
	if err != ErrNotOnCurve {
		t.Fatalf("got err %v, want ErrNotOnCurve", err)
	}
}

func TestMSMMatchesSequentialScalarMul(t *testing.T) {
	params := testTEParams(t)
	g := params.Generator()
	h := g.Double()

	scalars := []*big.Int{big.NewInt(3), big.NewInt(5)}
	points := []*TEPoint{g, h}

	got := MSM(points, scalars)
	want := g.ScalarMul(big.NewInt(3)).Add(h.ScalarMul(big.NewInt(5)))
	if !got.Equal(want) {
		t.Fatal("MSM != sum of individual scalar muls")
	}
}
