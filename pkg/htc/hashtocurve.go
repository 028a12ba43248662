package htc

import "github.com/bandersnatch-vrf/ringvrf/pkg/curveset"

// securityBits is the target security parameter k RFC 9380 §5.1/Table 2
// uses to size hash_to_field's L for every suite this package wires: 128
// bits, matching P-256, Curve25519 and secp256k1's table entries (P-384/521
// would need a larger k, but no suite at that security level is registered
// here yet).
const securityBits = 128

// HashToCurveSW implements RFC 9380's random-oracle hash_to_curve (§3) for a
// short-Weierstrass curve whose SSWU map applies directly to the curve's own
// (A, B) -- the case RFC 9380's suite table covers without an isogeny
// (P-256/384/521). secp256k1 and BLS12-381's G1/G2 have A = 0 and instead
// need SSWU applied to an isogenous curve followed by an isogeny map, which
// this function does not perform.
func HashToCurveSW(expand ExpandFn, params *SSWUParams, sw *curveset.SWParams, msg, dst []byte) (*curveset.SWPoint, error) {
	l := FieldLengthL(params.Field.P, securityBits)
	uniform, err := expand(msg, dst, 2*l)
	if err != nil {
		return nil, err
	}
	fes := HashToField(uniform, params.Field.P, 2, l)

	x0, y0 := params.Map(fes[0])
	x1, y1 := params.Map(fes[1])

	p0, err := sw.FromAffine(x0, y0)
	if err != nil {
		return nil, err
	}
	p1, err := sw.FromAffine(x1, y1)
	if err != nil {
		return nil, err
	}
	return p0.Add(p1), nil
}

// EncodeToCurveSW implements RFC 9380's non-uniform encode_to_curve (§3): a
// single field element mapped through SSWU. Not indifferentiable from a
// random oracle, used only where a suite explicitly calls for the NU
// variant rather than RO.
func EncodeToCurveSW(expand ExpandFn, params *SSWUParams, sw *curveset.SWParams, msg, dst []byte) (*curveset.SWPoint, error) {
	l := FieldLengthL(params.Field.P, securityBits)
	uniform, err := expand(msg, dst, l)
	if err != nil {
		return nil, err
	}
	fes := HashToField(uniform, params.Field.P, 1, l)
	x, y := params.Map(fes[0])
	return sw.FromAffine(x, y)
}

// HashToCurveMont implements RFC 9380's random-oracle hash_to_curve for a
// Montgomery curve via Elligator 2 (§6.7), generalizing the teacher's
// BLS12-381-only SSWU pipeline to the Curve25519/Curve448 suites this
// library additionally registers. It returns the sum of the two mapped
// points without clearing the cofactor; the caller does that step (the
// Curve25519 suite in pkg/suite multiplies by 8).
func HashToCurveMont(expand ExpandFn, params *Elligator2Params, mont *curveset.MontParams, msg, dst []byte) (*curveset.MontPoint, error) {
	l := FieldLengthL(params.Field.P, securityBits)
	uniform, err := expand(msg, dst, 2*l)
	if err != nil {
		return nil, err
	}
	fes := HashToField(uniform, params.Field.P, 2, l)

	u0, v0 := params.Map(fes[0])
	u1, v1 := params.Map(fes[1])

	p0, err := mont.FromAffine(u0, v0)
	if err != nil {
		return nil, err
	}
	p1, err := mont.FromAffine(u1, v1)
	if err != nil {
		return nil, err
	}
	return p0.Add(p1), nil
}

// EncodeToCurveMont implements RFC 9380's non-uniform encode_to_curve for a
// Montgomery curve via Elligator 2. The mapped point is returned without
// clearing the cofactor.
func EncodeToCurveMont(expand ExpandFn, params *Elligator2Params, mont *curveset.MontParams, msg, dst []byte) (*curveset.MontPoint, error) {
	l := FieldLengthL(params.Field.P, securityBits)
	uniform, err := expand(msg, dst, l)
	if err != nil {
		return nil, err
	}
	fes := HashToField(uniform, params.Field.P, 1, l)
	u, v := params.Map(fes[0])
	return mont.FromAffine(u, v)
}
