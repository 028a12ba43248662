package htc

import (
	"math/big"
	"testing"
)

func TestHashToFieldReducesModP(t *testing.T) {
	p := big.NewInt(101)
	uniform := make([]byte, 64)
	for i := range uniform {
		uniform[i] = byte(i + 1)
	}

	elems := HashToField(uniform, p, 2, 32)
	if len(elems) != 2 {
		t.Fatalf("len = %d, want 2", len(elems))
	}
	for _, e := range elems {
		if e.Sign() < 0 || e.Cmp(p) >= 0 {
			t.Fatalf("element %s out of range [0, %s)", e, p)
		}
	}
}

func TestSgn0(t *testing.T) {
	p := big.NewInt(101)
	if Sgn0(big.NewInt(4), p) != 0 {
		t.Fatal("sgn0(4) should be 0")
	}
	if Sgn0(big.NewInt(5), p) != 1 {
		t.Fatal("sgn0(5) should be 1")
	}
}
