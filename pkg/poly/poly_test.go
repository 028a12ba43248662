package poly

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func feFromInt(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestEvaluateHorner(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2
	p := New([]fr.Element{feFromInt(1), feFromInt(2), feFromInt(3)})
	x := feFromInt(2)
	got := p.Evaluate(x)
	want := feFromInt(1 + 2*2 + 3*4)
	if !got.Equal(&want) {
		t.Fatalf("p(2) = %s, want %s", got.String(), want.String())
	}
}

func TestAddCommutative(t *testing.T) {
	p := New([]fr.Element{feFromInt(1), feFromInt(2)})
	q := New([]fr.Element{feFromInt(5), feFromInt(7), feFromInt(9)})

	a := p.Add(q)
	b := q.Add(p)
	for i := range a.Coeffs {
		if !a.Coeffs[i].Equal(&b.Coeffs[i]) {
			t.Fatalf("p+q != q+p at coeff %d", i)
		}
	}
}

func TestMulNaiveDegree(t *testing.T) {
	p := New([]fr.Element{feFromInt(1), feFromInt(1)}) // 1+x
	q := New([]fr.Element{feFromInt(1), feFromInt(1)}) // 1+x
	r := p.MulNaive(q)                                 // 1+2x+x^2

	want := []int64{1, 2, 1}
	for i, w := range want {
		got := feFromInt(w)
		if !r.Coeffs[i].Equal(&got) {
			t.Fatalf("coeff %d = %s, want %d", i, r.Coeffs[i].String(), w)
		}
	}
}

func TestNTTINTTRoundTrip(t *testing.T) {
	d := NewDomain(8)
	p := New([]fr.Element{feFromInt(1), feFromInt(2), feFromInt(3), feFromInt(4)})

	evals := d.NTT(p)
	back := d.INTT(evals)

	canon := p.ToCanonical(8)
	for i := range canon {
		if !back.Coeffs[i].Equal(&canon[i]) {
			t.Fatalf("round trip mismatch at %d: got %s, want %s", i, back.Coeffs[i].String(), canon[i].String())
		}
	}
}

func TestVanishingPolynomialRootsAreDomain(t *testing.T) {
	d := NewDomain(4)
	z := d.VanishingPolynomial()

	omega := d.Generator()
	x := fr.One()
	for i := 0; i < 4; i++ {
		v := z.Evaluate(x)
		if !v.IsZero() {
			t.Fatalf("Z_H(omega^%d) != 0", i)
		}
		x.Mul(&x, &omega)
	}
}

func TestLagrangeBasisIsIndicator(t *testing.T) {
	d := NewDomain(4)
	omega := d.Generator()

	var omega0 fr.Element = fr.One()
	var omega1 fr.Element
	omega1.Mul(&omega0, &omega)

	l0AtOmega0 := d.LagrangeBasisAt(0, omega0)
	one := fr.One()
	if !l0AtOmega0.Equal(&one) {
		t.Fatalf("L_0(omega^0) = %s, want 1", l0AtOmega0.String())
	}

	l0AtOmega1 := d.LagrangeBasisAt(0, omega1)
	if !l0AtOmega1.IsZero() {
		t.Fatalf("L_0(omega^1) = %s, want 0", l0AtOmega1.String())
	}
}
