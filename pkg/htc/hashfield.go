package htc

import "math/big"

// HashToField reduces uniform bytes (the output of an expand_message
// variant) into `count` field elements mod p, each consuming L bytes, per
// RFC 9380 §5.2. Generalizes the teacher's hashToFieldG1, which hard-coded
// count=2, L=64, p=BLS12-381 Fp.
func HashToField(uniform []byte, p *big.Int, count, l int) []*big.Int {
	out := make([]*big.Int, count)
	for i := 0; i < count; i++ {
		chunk := uniform[i*l : (i+1)*l]
		e := new(big.Int).SetBytes(chunk)
		out[i] = e.Mod(e, p)
	}
	return out
}

// FieldLengthL returns the recommended byte length L for hash_to_field
// target field elements, L = ceil((ceil(log2(p)) + k) / 8), where k is the
// suite's target security parameter in bits (RFC 9380 §5.1, Table 2 uses
// k=128 for most suites in this library, k=224 for P-521's 521-bit field).
func FieldLengthL(p *big.Int, securityBits int) int {
	logP := p.BitLen()
	return (logP + securityBits + 7) / 8
}

// Sgn0 implements RFC 9380's sgn0 for a field element of odd-characteristic
// prime fields (the only kind this library works with): the least
// significant bit of the canonical representative.
func Sgn0(a *big.Int, p *big.Int) int {
	r := new(big.Int).Mod(a, p)
	return int(r.Bit(0))
}
