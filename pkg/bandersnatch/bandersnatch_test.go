package bandersnatch

import (
	"math/big"
	"testing"
)

func TestGeneratorOnCurve(t *testing.T) {
	params := Params()
	if !params.IsOnCurve(params.Gx, params.Gy) {
		t.Fatal("generator does not satisfy the curve equation")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	params := Params()
	g := params.Generator()

	for k := int64(0); k < 12; k++ {
		pt := g.ScalarMul(big.NewInt(k))
		enc := Encode(pt)
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("k=%d: decode: %v", k, err)
		}
		if !dec.Equal(pt) {
			t.Fatalf("k=%d: round trip mismatch", k)
		}
	}
}

func TestEncodeIdentity(t *testing.T) {
	params := Params()
	enc := Encode(params.Identity())
	var want [32]byte
	want[31] = 1
	if enc != want {
		t.Fatalf("identity encoding = %x, want %x", enc, want)
	}
}

func TestDecodeRejectsOutOfRangeY(t *testing.T) {
	var data [32]byte
	for i := range data {
		data[i] = 0xff
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected error decoding out-of-range Y")
	}
}

func TestQuotientEquivalenceEncodesIdentically(t *testing.T) {
	params := Params()
	g := params.Generator()
	equiv, err := params.FromAffine(params.Field.Neg(params.Gx), params.Field.Neg(params.Gy))
	if err != nil {
		t.Fatalf("FromAffine(-Gx, -Gy): %v", err)
	}

	if Encode(g) != Encode(equiv) {
		t.Fatal("(x, y) and (-x, -y) of G must share the same Banderwagon encoding")
	}
}
