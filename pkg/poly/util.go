package poly

import "math/big"

// newBig is a small convenience wrapper for constructing exponents passed
// to fr.Element.Exp, which takes a *big.Int.
func newBig(v int) *big.Int {
	return big.NewInt(int64(v))
}
