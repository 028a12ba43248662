// Package suite registers concrete named VRF suites (curve + hash-to-curve
// + encoding) against the generic pkg/vrf/pkg/curveset machinery, the same
// role the teacher's consensus layer plays when it picks one hard-coded
// curve for its VRF election (pkg/consensus/vrf_election.go): here the
// choice is made explicit and pluggable instead of baked into the VRF
// algebra itself, so the same pkg/vrf code serves every suite in this
// table.
package suite

import (
	"math/big"

	"github.com/bandersnatch-vrf/ringvrf/pkg/bandersnatch"
	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
	"github.com/bandersnatch-vrf/ringvrf/pkg/htc"
	"github.com/bandersnatch-vrf/ringvrf/pkg/vrf"
)

// Bandersnatch suite string constants, domain-separating the primary
// generator's hash-to-curve from the secondary (Pedersen blinding)
// generator B, and from each other suite registered in this package.
var (
	bandersnatchSuiteString   = []byte("Bandersnatch_SHA-512_ELL2")
	bandersnatchBlindingLabel = []byte("Bandersnatch_SHA-512_ELL2_BLINDING_GENERATOR")
)

var bandersnatchCurve = bandersnatch.Curve()

func bandersnatchCofactorClear(pt *curveset.TEPoint) *curveset.TEPoint {
	four := big.NewInt(4)
	cleared := pt.ScalarMul(four)
	return cleared
}

func bandersnatchDecode(data [32]byte) (*curveset.TEPoint, error) {
	return bandersnatch.Decode(data)
}

func bandersnatchEncodeToCurve(pk []byte) func(alpha, salt []byte) (curveset.Point, error) {
	return func(alpha, salt []byte) (curveset.Point, error) {
		suiteStr := append(append([]byte{}, bandersnatchSuiteString...), salt...)
		return htc.TryAndIncrement(suiteStr, pk, alpha, bandersnatchDecode, bandersnatchCofactorClear)
	}
}

func bandersnatchEncode(p curveset.Point) []byte {
	enc := bandersnatch.Encode(p.(*curveset.TEPoint))
	return enc[:]
}

func bandersnatchDecodeAdapter(data []byte) (curveset.Point, error) {
	if len(data) != 32 {
		return nil, curveset.ErrOutOfRange
	}
	var buf [32]byte
	copy(buf[:], data)
	return bandersnatch.Decode(buf)
}

// secondGenerator derives Bandersnatch's independent Pedersen-blinding
// generator B by hashing a fixed, distinct label with try-and-increment;
// this is the "nothing-up-my-sleeve" construction the design notes call
// for wherever the spec needs a second generator with no known discrete
// log relationship to G.
func secondGenerator() curveset.Point {
	pt, err := htc.TryAndIncrement(bandersnatchBlindingLabel, nil, []byte("generator"), bandersnatchDecode, bandersnatchCofactorClear)
	if err != nil {
		panic("suite: bandersnatch second generator derivation failed: " + err.Error())
	}
	return pt
}

var bandersnatchB2 = secondGenerator()

// Bandersnatch returns the VRF suite handle for the Bandersnatch curve
// (IETF/Pedersen VRF; the only suite in this table that additionally
// supports Ring VRF via pkg/ring).
func Bandersnatch() *vrf.Suite {
	return &vrf.Suite{
		Curve: bandersnatchCurve,
		EncodeToCurve: func(alpha, salt []byte) (curveset.Point, error) {
			return bandersnatchEncodeToCurve(nil)(alpha, salt)
		},
		Encode:       bandersnatchEncode,
		Decode:       bandersnatchDecodeAdapter,
		PointSize:    32,
		ChallengeLen: 32,
	}
}

// BandersnatchWithPK returns a Bandersnatch suite whose encode_to_curve
// additionally binds the signer's public key into the try-and-increment
// hash input, matching RFC 9381 §5.4.1.1's ECVRF_hash_to_curve_try_and_
// increment(pk, alpha) for suites that require public-key binding.
func BandersnatchWithPK(pk curveset.Point) *vrf.Suite {
	pkEnc := bandersnatch.Encode(pk.(*curveset.TEPoint))
	return &vrf.Suite{
		Curve:         bandersnatchCurve,
		EncodeToCurve: bandersnatchEncodeToCurve(pkEnc[:]),
		Encode:        bandersnatchEncode,
		Decode:        bandersnatchDecodeAdapter,
		PointSize:     32,
		ChallengeLen:  32,
	}
}

// BandersnatchSecondGenerator returns the fixed, independent generator B
// the Pedersen VRF blinds pk with (§4.E).
func BandersnatchSecondGenerator() curveset.Point {
	return bandersnatchB2
}

// --- P-256 (short-Weierstrass, RFC 9380 P256_XMD:SHA-256_SSWU_RO_) ---

var (
	p256P, _ = new(big.Int).SetString(
		"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	p256A, _ = new(big.Int).SetString(
		"ffffffff00000001000000000000000000000000fffffffffffffffffffffffc", 16)
	p256B, _ = new(big.Int).SetString(
		"5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	p256Gx, _ = new(big.Int).SetString(
		"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", 16)
	p256Gy, _ = new(big.Int).SetString(
		"4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5", 16)
	p256N, _ = new(big.Int).SetString(
		"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)
	// p256SSWUZ is RFC 9380's chosen non-square Z = -10 for the
	// P256_XMD:SHA-256_SSWU_RO_/NU_ suites: P-256 is one of the curves SSWU
	// applies to directly, with no isogeny, unlike secp256k1 or BLS12-381.
	p256SSWUZ = new(big.Int).Mod(big.NewInt(-10), p256P)

	p256SuiteRODST = []byte("P256_XMD:SHA-256_SSWU_RO_ringvrf")
	p256SuiteNUDST = []byte("P256_XMD:SHA-256_SSWU_NU_ringvrf")
)

func p256Params() *curveset.SWParams {
	f := curveset.NewField(p256P)
	return &curveset.SWParams{Field: f, A: p256A, B: p256B, Gx: p256Gx, Gy: p256Gy, N: p256N}
}

func p256SSWUParams() *htc.SSWUParams {
	f := curveset.NewField(p256P)
	return &htc.SSWUParams{Field: f, A: p256A, B: p256B, Z: p256SSWUZ}
}

// p256Encode is SEC1 point compression: a leading 0x02/0x03 parity byte
// followed by the 32-byte big-endian X coordinate, the 33-byte encoding
// named in the suite table alongside Bandersnatch's 32-byte quotient-group
// points.
func p256Encode(p curveset.Point) []byte {
	pt := p.(*curveset.SWPoint)
	out := make([]byte, 33)
	x, y := pt.Affine()
	if y.Bit(0) == 1 {
		out[0] = 0x03
	} else {
		out[0] = 0x02
	}
	xb := x.Bytes()
	copy(out[33-len(xb):], xb)
	return out
}

func p256Decode(data []byte) (curveset.Point, error) {
	if len(data) != 33 || (data[0] != 0x02 && data[0] != 0x03) {
		return nil, curveset.ErrNotOnCurve
	}
	params := p256Params()
	f := params.Field
	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(p256P) >= 0 {
		return nil, curveset.ErrOutOfRange
	}
	rhs := f.Add(f.Add(f.Mul(f.Sqr(x), x), f.Mul(params.A, x)), params.B)
	y := f.Sqrt(rhs)
	if y == nil {
		return nil, curveset.ErrNoSqrt
	}
	wantOdd := data[0] == 0x03
	if (y.Bit(0) == 1) != wantOdd {
		y = f.Neg(y)
	}
	return params.FromAffine(x, y)
}

// P256 returns the IETF VRF suite handle for NIST P-256, registered so the
// hash-to-curve pipeline's SSWU mapping (pkg/htc) reaches a real operation
// and so cross-suite proofs (a Bandersnatch proof decoded under this suite,
// or vice versa) have a second suite to fail against.
func P256() *vrf.Suite {
	sw := p256Params()
	sswu := p256SSWUParams()
	curve := &curveset.ShortWeierstrassCurve{Params: sw}
	return &vrf.Suite{
		Curve: curve,
		EncodeToCurve: func(alpha, salt []byte) (curveset.Point, error) {
			dst := append(append([]byte{}, p256SuiteRODST...), salt...)
			pt, err := htc.HashToCurveSW(htc.XMDSha256(), sswu, sw, alpha, dst)
			if err != nil {
				return nil, err
			}
			return pt, nil
		},
		Encode:       p256Encode,
		Decode:       p256Decode,
		PointSize:    33,
		ChallengeLen: 32,
	}
}

// P256EncodeToCurveNU runs the non-uniform encode_to_curve variant directly,
// for callers (tests, conformance checks) that need to compare the RO and
// NU pipelines against each other rather than go through a Suite.
func P256EncodeToCurveNU(alpha, salt []byte) (*curveset.SWPoint, error) {
	dst := append(append([]byte{}, p256SuiteNUDST...), salt...)
	return htc.EncodeToCurveSW(htc.XMDSha256(), p256SSWUParams(), p256Params(), alpha, dst)
}

// --- Curve25519 (Montgomery, RFC 9380 curve25519_XMD:SHA-512_ELL2_RO_) ---

var (
	curve25519P, _ = new(big.Int).SetString(
		"7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	curve25519A = big.NewInt(486662)
	curve25519U0 = big.NewInt(9)
	// curve25519N is the prime order ell of the standard base point's
	// subgroup (RFC 8032); the full curve order is 8*ell, the cofactor this
	// suite clears the same way pkg/suite clears Bandersnatch's cofactor 4.
	curve25519N, _ = new(big.Int).SetString(
		"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
	curve25519Cofactor = big.NewInt(8)
	// curve25519Z is RFC 9380's Z = 2 for the curve25519_XMD:SHA-512_ELL2_*
	// suites.
	curve25519Z = big.NewInt(2)

	curve25519SuiteRODST = []byte("curve25519_XMD:SHA-512_ELL2_RO_ringvrf")
)

func curve25519Params() *curveset.MontParams {
	f := curveset.NewField(curve25519P)
	u0 := curve25519U0
	rhs := f.Add(f.Add(f.Mul(f.Sqr(u0), u0), f.Mul(curve25519A, f.Sqr(u0))), u0)
	v0 := f.Sqrt(rhs)
	if v0 == nil {
		panic("suite: curve25519 base point has no affine v")
	}
	return &curveset.MontParams{Field: f, A: curve25519A, B: big.NewInt(1), U0: u0, V0: v0, N: curve25519N}
}

func curve25519Elligator2Params() *htc.Elligator2Params {
	return &htc.Elligator2Params{Field: curveset.NewField(curve25519P), A: curve25519A, Z: curve25519Z}
}

func curve25519CofactorClear(pt *curveset.MontPoint) *curveset.MontPoint {
	return pt.ScalarMul(curve25519Cofactor)
}

// curve25519Encode packs the affine u-coordinate little-endian into 32
// bytes with the v-coordinate's parity folded into the otherwise-unused top
// bit (u < 2^255-19 < 2^255, so bit 255 of a 256-bit field is always free),
// the same "coordinate plus a parity bit" shape Bandersnatch's encoding
// uses, generalized to this suite's field size.
func curve25519Encode(p curveset.Point) []byte {
	pt := p.(*curveset.MontPoint)
	out := make([]byte, 32)
	u, v := pt.Affine()
	ub := u.Bytes()
	for i, b := range ub {
		out[len(ub)-1-i] = b
	}
	if v.Bit(0) == 1 {
		out[31] |= 0x80
	}
	return out
}

func curve25519Decode(data []byte) (curveset.Point, error) {
	if len(data) != 32 {
		return nil, curveset.ErrOutOfRange
	}
	params := curve25519Params()
	wantOdd := data[31]&0x80 != 0
	be := make([]byte, 32)
	for i := 0; i < 32; i++ {
		be[31-i] = data[i]
	}
	be[0] &= 0x7f
	u := new(big.Int).SetBytes(be)
	if u.Cmp(curve25519P) >= 0 {
		return nil, curveset.ErrOutOfRange
	}
	return params.RecoverPoint(u, wantOdd)
}

// Curve25519 returns the IETF VRF suite handle for Curve25519, registered
// so the Elligator 2 mapping (pkg/htc) reaches a real operation alongside
// P256's SSWU suite -- between the two, every SW and Montgomery mapping
// this library implements is exercised by a concrete Suite.
func Curve25519() *vrf.Suite {
	mont := curve25519Params()
	ell2 := curve25519Elligator2Params()
	curve := &curveset.MontgomeryCurve{Params: mont}
	return &vrf.Suite{
		Curve: curve,
		EncodeToCurve: func(alpha, salt []byte) (curveset.Point, error) {
			dst := append(append([]byte{}, curve25519SuiteRODST...), salt...)
			pt, err := htc.HashToCurveMont(htc.XMDSha512(), ell2, mont, alpha, dst)
			if err != nil {
				return nil, err
			}
			return curve25519CofactorClear(pt), nil
		},
		Encode:       curve25519Encode,
		Decode:       curve25519Decode,
		PointSize:    32,
		ChallengeLen: 32,
	}
}
