package htc

import (
	"math/big"
	"testing"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
)

// p256TestParams mirrors NIST P-256's public curve constants, used here only
// to exercise HashToCurveSW/EncodeToCurveSW end to end (RFC 9380's
// P256_XMD:SHA-256_SSWU_RO_/NU_ suites, the short-Weierstrass case SSWU
// applies to directly with no isogeny -- unlike secp256k1 or BLS12-381 G1/G2,
// which this package's Field (a single prime-field big.Int backend, not an
// Fp2 extension) has no way to represent and so are not exercised here).
func p256TestParams(t *testing.T) (*SSWUParams, *curveset.SWParams) {
	t.Helper()
	p, _ := new(big.Int).SetString(
		"ffffffff00000001000000000000000000000000ffffffffffffffffffffff", 16)
	a, _ := new(big.Int).SetString(
		"ffffffff00000001000000000000000000000000fffffffffffffffffffffc", 16)
	b, _ := new(big.Int).SetString(
		"5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	z := new(big.Int).Mod(big.NewInt(-10), p)
	f := curveset.NewField(p)
	sswu := &SSWUParams{Field: f, A: a, B: b, Z: z}
	sw := &curveset.SWParams{Field: f, A: a, B: b}
	return sswu, sw
}

func TestHashToCurveSWDeterministic(t *testing.T) {
	sswu, sw := p256TestParams(t)
	dst := []byte("P256_XMD:SHA-256_SSWU_RO_test")

	p1, err := HashToCurveSW(XMDSha256(), sswu, sw, []byte("abc"), dst)
	if err != nil {
		t.Fatalf("HashToCurveSW 1: %v", err)
	}
	p2, err := HashToCurveSW(XMDSha256(), sswu, sw, []byte("abc"), dst)
	if err != nil {
		t.Fatalf("HashToCurveSW 2: %v", err)
	}
	if !p1.Equal(p2) {
		t.Fatal("expected identical hash_to_curve output for identical input")
	}

	p3, err := HashToCurveSW(XMDSha256(), sswu, sw, []byte("xyz"), dst)
	if err != nil {
		t.Fatalf("HashToCurveSW 3: %v", err)
	}
	if p1.Equal(p3) {
		t.Fatal("expected distinct hash_to_curve output for distinct input")
	}
}

func TestHashToCurveSWDistinctFromEncodeToCurveSW(t *testing.T) {
	sswu, sw := p256TestParams(t)
	msg := []byte("same message")

	hc, err := HashToCurveSW(XMDSha256(), sswu, sw, msg, []byte("RO_dst"))
	if err != nil {
		t.Fatalf("HashToCurveSW: %v", err)
	}
	ec, err := EncodeToCurveSW(XMDSha256(), sswu, sw, msg, []byte("NU_dst"))
	if err != nil {
		t.Fatalf("EncodeToCurveSW: %v", err)
	}
	// hash_to_curve combines two mapped field elements while encode_to_curve
	// maps only one, so even disregarding the differing DST these are not
	// expected to collide.
	if hc.Equal(ec) {
		t.Fatal("expected hash_to_curve and encode_to_curve to diverge")
	}
}

// curve25519TestParams mirrors Curve25519's public constants, used to
// exercise HashToCurveMont/EncodeToCurveMont (RFC 9380's
// curve25519_XMD:SHA-512_ELL2_RO_/NU_ suites via Elligator 2).
func curve25519TestParams(t *testing.T) (*Elligator2Params, *curveset.MontParams) {
	t.Helper()
	p, _ := new(big.Int).SetString(
		"7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	a := big.NewInt(486662)
	f := curveset.NewField(p)
	u0 := big.NewInt(9)
	rhs := f.Add(f.Add(f.Mul(f.Sqr(u0), u0), f.Mul(a, f.Sqr(u0))), u0)
	v0 := f.Sqrt(rhs)
	if v0 == nil {
		t.Fatal("curve25519 base point has no affine v")
	}
	ell2 := &Elligator2Params{Field: f, A: a, Z: big.NewInt(2)}
	mont := &curveset.MontParams{Field: f, A: a, B: big.NewInt(1), U0: u0, V0: v0}
	return ell2, mont
}

func TestHashToCurveMontDeterministic(t *testing.T) {
	ell2, mont := curve25519TestParams(t)
	dst := []byte("curve25519_XMD:SHA-512_ELL2_RO_test")

	p1, err := HashToCurveMont(XMDSha512(), ell2, mont, []byte("abc"), dst)
	if err != nil {
		t.Fatalf("HashToCurveMont 1: %v", err)
	}
	p2, err := HashToCurveMont(XMDSha512(), ell2, mont, []byte("abc"), dst)
	if err != nil {
		t.Fatalf("HashToCurveMont 2: %v", err)
	}
	if !p1.Equal(p2) {
		t.Fatal("expected identical hash_to_curve output for identical input")
	}

	p3, err := HashToCurveMont(XMDSha512(), ell2, mont, []byte("xyz"), dst)
	if err != nil {
		t.Fatalf("HashToCurveMont 3: %v", err)
	}
	if p1.Equal(p3) {
		t.Fatal("expected distinct hash_to_curve output for distinct input")
	}
}

func TestEncodeToCurveMontDeterministic(t *testing.T) {
	ell2, mont := curve25519TestParams(t)
	dst := []byte("curve25519_XMD:SHA-512_ELL2_NU_test")

	p1, err := EncodeToCurveMont(XMDSha512(), ell2, mont, []byte("abc"), dst)
	if err != nil {
		t.Fatalf("EncodeToCurveMont 1: %v", err)
	}
	p2, err := EncodeToCurveMont(XMDSha512(), ell2, mont, []byte("abc"), dst)
	if err != nil {
		t.Fatalf("EncodeToCurveMont 2: %v", err)
	}
	if !p1.Equal(p2) {
		t.Fatal("expected identical encode_to_curve output for identical input")
	}
}
