package ring

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/bandersnatch"
	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
)

// bitsOf returns sk's scalarBitLen-bit decomposition, MSB first, aligned to
// the scalar-mult trace's step order: bitsOf(sk)[0] is the bit consumed at
// trace row traceStart+1.
func bitsOf(sk *big.Int) []uint {
	bits := make([]uint, scalarBitLen)
	for step := 0; step < scalarBitLen; step++ {
		bits[step] = sk.Bit(scalarBitLen - 1 - step)
	}
	return bits
}

// accumulateTrace runs the double-and-add-always trace for sk*base over the
// reserved trace rows, given sk's bit decomposition and an arbitrary base
// point (baseX, baseY): row traceStart holds the identity, row
// traceStart+scalarBitLen holds sk*base. At each step the accumulator is
// unconditionally doubled, then an "addend" point -- (bit*baseX, bit*baseY
// + (1-bit)*1), i.e. base when bit=1 and the identity when bit=0 -- is
// unconditionally added, so no branch is taken on the bit value itself
// (only field multiplications by 0 or 1); this mirrors the branch-free
// discipline pkg/curveset/ladder.go uses for the core VRF scalar
// multiplications. Running this same bit decomposition against two
// different base points (G for the ring-selector trace, the VRF input h
// for the gamma trace) is what ties both traces to the same sk.
func accumulateTrace(rp *RingParams, f *curveset.Field, a, d, baseX, baseY *big.Int, bits []uint) (accX, accY, dblX, dblY []fr.Element) {
	accX = make([]fr.Element, rp.DomainSize)
	accY = make([]fr.Element, rp.DomainSize)
	dblX = make([]fr.Element, rp.DomainSize)
	dblY = make([]fr.Element, rp.DomainSize)

	curX, curY := big.NewInt(0), big.NewInt(1) // identity
	accX[rp.TraceStart] = feFromBig(curX)
	accY[rp.TraceStart] = feFromBig(curY)

	for step, bitVal := range bits {
		dx, dy := affineDouble(f, a, curX, curY)

		bitBig := new(big.Int).SetUint64(uint64(bitVal))
		oneMinusBit := new(big.Int).Sub(big.NewInt(1), bitBig)
		addX := f.Mul(bitBig, baseX)
		addY := f.Add(f.Mul(bitBig, baseY), oneMinusBit)
		nx, ny := affineAdd(f, a, d, dx, dy, addX, addY)

		row := rp.TraceStart + step
		dblX[row+1] = feFromBig(dx)
		dblY[row+1] = feFromBig(dy)
		accX[row+1] = feFromBig(nx)
		accY[row+1] = feFromBig(ny)

		curX, curY = nx, ny
	}

	return accX, accY, dblX, dblY
}

// scalarMulTrace builds the sk*G trace columns plus the shared bit column
// (§4.H's "reserved suffix accommodates the sk·G bit-trace"), pinned to
// equal the ring's selected row by the ring-selector gate.
func scalarMulTrace(rp *RingParams, sk *big.Int) (accX, accY, dblX, dblY, bit []fr.Element) {
	params := bandersnatch.Params()
	bits := bitsOf(sk)
	accX, accY, dblX, dblY = accumulateTrace(rp, params.Field, params.A, params.D, params.Gx, params.Gy, bits)

	bit = make([]fr.Element, rp.DomainSize)
	for step, b := range bits {
		bit[rp.TraceStart+step+1] = feFromBig(new(big.Int).SetUint64(uint64(b)))
	}
	return accX, accY, dblX, dblY, bit
}

// gammaMulTrace builds the sk*h trace columns, reusing sk's bit
// decomposition against the VRF input point h instead of G. Its terminal
// row is checked against the embedded Pedersen proof's gamma, binding that
// component's sk to the same sk the ring-selector trace uses.
func gammaMulTrace(rp *RingParams, sk *big.Int, hx, hy *big.Int) (accX, accY, dblX, dblY []fr.Element) {
	params := bandersnatch.Params()
	bits := bitsOf(sk)
	return accumulateTrace(rp, params.Field, params.A, params.D, hx, hy, bits)
}

// affineDouble implements the TE doubling formula x' = 2xy/(a*x^2+y^2),
// y' = (y^2-a*x^2)/(2-a*x^2-y^2).
func affineDouble(f *curveset.Field, a, x, y *big.Int) (*big.Int, *big.Int) {
	x2, y2 := f.Sqr(x), f.Sqr(y)
	ax2 := f.Mul(a, x2)

	xNum := f.Mul(big.NewInt(2), f.Mul(x, y))
	xDen := f.Add(ax2, y2)
	xp := f.Mul(xNum, f.Inv(xDen))

	yNum := f.Sub(y2, ax2)
	yDen := f.Sub(f.Sub(big.NewInt(2), ax2), y2)
	yp := f.Mul(yNum, f.Inv(yDen))

	return xp, yp
}

// affineAdd implements the TE addition formula
// x3 = (x1y2+y1x2)/(1+d*x1x2y1y2), y3 = (y1y2-a*x1x2)/(1-d*x1x2y1y2).
func affineAdd(f *curveset.Field, a, d, x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	x1y2 := f.Mul(x1, y2)
	y1x2 := f.Mul(y1, x2)
	y1y2 := f.Mul(y1, y2)
	x1x2 := f.Mul(x1, x2)
	dProd := f.Mul(d, f.Mul(x1x2, y1y2))

	x3Num := f.Add(x1y2, y1x2)
	x3Den := f.Add(big.NewInt(1), dProd)
	x3 := f.Mul(x3Num, f.Inv(x3Den))

	y3Num := f.Sub(y1y2, f.Mul(a, x1x2))
	y3Den := f.Sub(big.NewInt(1), dProd)
	y3 := f.Mul(y3Num, f.Inv(y3Den))

	return x3, y3
}
