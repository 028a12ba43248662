package ring

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/bandersnatch"
)

// witness bundles every column of the ring arithmetization's constraint
// system, in evaluation form over the size-DomainSize Lagrangian domain.
type witness struct {
	X, Y             []fr.Element // ring columns (public / part of RingRoot)
	AccX, AccY       []fr.Element // sk*G accumulator trace
	DblX, DblY       []fr.Element // intermediate doubled point per sk*G step
	GamAccX, GamAccY []fr.Element // sk*h accumulator trace, same bit column
	GamDblX, GamDblY []fr.Element // intermediate doubled point per sk*h step
	Bit              []fr.Element // bit decomposition of sk, shared by both traces
	Sel, RunSel      []fr.Element // ring-selector indicator and its running sum
}

// gateSet holds every named constraint gate's per-row evaluation. A
// satisfied witness makes every entry of every field zero.
type gateSet struct {
	Bit                  []fr.Element
	SelBoolean           []fr.Element
	DblX, DblY           []fr.Element
	AddX, AddY           []fr.Element
	GamDblX, GamDblY     []fr.Element
	GamAddX, GamAddY     []fr.Element
	RunSelRecurrence     []fr.Element
	SelX, SelY           []fr.Element
	StartX, StartY       []fr.Element
	GamStartX, GamStartY []fr.Element
	OneSelected          []fr.Element
}

// all returns the gate vectors in a fixed order, used both to assign
// Fiat-Shamir weights and to assemble the combined constraint polynomial.
// recombineConstraint's gates slice must list the matching point-evaluation
// terms in this exact order.
func (g *gateSet) all() [][]fr.Element {
	return [][]fr.Element{
		g.Bit, g.SelBoolean, g.DblX, g.DblY, g.AddX, g.AddY,
		g.GamDblX, g.GamDblY, g.GamAddX, g.GamAddY,
		g.RunSelRecurrence, g.SelX, g.SelY,
		g.StartX, g.StartY, g.GamStartX, g.GamStartY, g.OneSelected,
	}
}

// evaluateGates computes every constraint gate at each domain row:
//   - bit booleanity,
//   - the TE doubling-law pair,
//   - the TE addition-law pair (conditional add of bit*G),
//   - the running-selector-sum recurrence,
//   - the ring-selector tie between the trace's terminal accumulator and
//     the selected ring row (§4.H's "ring-selector polynomial"),
//   - the boundary pin of the accumulator's start to the identity,
//   - the boundary check that exactly one row was selected.
func evaluateGates(rp *RingParams, w *witness, hx, hy fr.Element) *gateSet {
	params := bandersnatch.Params()
	a := params.A
	d := params.D

	n := int(rp.DomainSize)
	g := &gateSet{
		Bit:              make([]fr.Element, n),
		SelBoolean:       make([]fr.Element, n),
		DblX:             make([]fr.Element, n),
		DblY:             make([]fr.Element, n),
		AddX:             make([]fr.Element, n),
		AddY:             make([]fr.Element, n),
		GamDblX:          make([]fr.Element, n),
		GamDblY:          make([]fr.Element, n),
		GamAddX:          make([]fr.Element, n),
		GamAddY:          make([]fr.Element, n),
		RunSelRecurrence: make([]fr.Element, n),
		SelX:             make([]fr.Element, n),
		SelY:             make([]fr.Element, n),
		StartX:           make([]fr.Element, n),
		StartY:           make([]fr.Element, n),
		GamStartX:        make([]fr.Element, n),
		GamStartY:        make([]fr.Element, n),
		OneSelected:      make([]fr.Element, n),
	}

	aFe := feFromBig(a)
	dFe := feFromBig(d)
	one := fr.One()
	two := feFromBig(big.NewInt(2))
	gxFe, gyFe := feFromBig(params.Gx), feFromBig(params.Gy)

	finalX, finalY := w.AccX[rp.TraceFinalRow], w.AccY[rp.TraceFinalRow]

	for i := 0; i < n; i++ {
		var bm1 fr.Element
		bm1.Sub(&w.Bit[i], &one)
		g.Bit[i].Mul(&w.Bit[i], &bm1)

		var selM1 fr.Element
		selM1.Sub(&w.Sel[i], &one)
		g.SelBoolean[i].Mul(&w.Sel[i], &selM1)

		var startMinusX, startMinusY fr.Element
		startMinusX.Set(&w.AccX[i])
		startMinusY.Sub(&w.AccY[i], &one)
		g.StartX[i].Mul(&rp.startSelector[i], &startMinusX)
		g.StartY[i].Mul(&rp.startSelector[i], &startMinusY)

		var gamStartMinusX, gamStartMinusY fr.Element
		gamStartMinusX.Set(&w.GamAccX[i])
		gamStartMinusY.Sub(&w.GamAccY[i], &one)
		g.GamStartX[i].Mul(&rp.startSelector[i], &gamStartMinusX)
		g.GamStartY[i].Mul(&rp.startSelector[i], &gamStartMinusY)

		var runSelMinus1 fr.Element
		runSelMinus1.Sub(&w.RunSel[i], &one)
		g.OneSelected[i].Mul(&rp.endSelector[i], &runSelMinus1)

		var selDiffX, selDiffY fr.Element
		selDiffX.Sub(&w.X[i], &finalX)
		selDiffY.Sub(&w.Y[i], &finalY)
		g.SelX[i].Mul(&w.Sel[i], &selDiffX)
		g.SelY[i].Mul(&w.Sel[i], &selDiffY)

		prev := (i - 1 + n) % n

		var rs fr.Element
		rs.Sub(&w.RunSel[i], &w.RunSel[prev])
		rs.Sub(&rs, &w.Sel[i])
		rs.Mul(&rs, &rp.notRowZeroMask[i])
		g.RunSelRecurrence[i] = rs

		mask := rp.stepMask[i]

		px, py := w.AccX[prev], w.AccY[prev]
		var x2, y2, ax2 fr.Element
		x2.Square(&px)
		y2.Square(&py)
		ax2.Mul(&aFe, &x2)

		var dxDen, dxLHS, dxRHS, dxGate fr.Element
		dxDen.Add(&ax2, &y2)
		dxLHS.Mul(&w.DblX[i], &dxDen)
		var twoXY fr.Element
		twoXY.Mul(&px, &py)
		dxRHS.Mul(&two, &twoXY)
		dxGate.Sub(&dxLHS, &dxRHS)
		dxGate.Mul(&dxGate, &mask)
		g.DblX[i] = dxGate

		var dyDen, dyLHS, dyRHS, dyGate fr.Element
		dyDen.Sub(&two, &ax2)
		dyDen.Sub(&dyDen, &y2)
		dyLHS.Mul(&w.DblY[i], &dyDen)
		dyRHS.Sub(&y2, &ax2)
		dyGate.Sub(&dyLHS, &dyRHS)
		dyGate.Mul(&dyGate, &mask)
		g.DblY[i] = dyGate

		var addX, addY, oneMinusBit fr.Element
		oneMinusBit.Sub(&one, &w.Bit[i])
		addX.Mul(&w.Bit[i], &gxFe)
		addY.Mul(&w.Bit[i], &gyFe)
		addY.Add(&addY, &oneMinusBit)

		x1, y1 := w.DblX[i], w.DblY[i]
		var x1y2, y1x2, y1y2, x1x2, prod, dProd fr.Element
		x1y2.Mul(&x1, &addY)
		y1x2.Mul(&y1, &addX)
		y1y2.Mul(&y1, &addY)
		x1x2.Mul(&x1, &addX)
		prod.Mul(&x1x2, &y1y2)
		dProd.Mul(&dFe, &prod)

		var x3Den, x3LHS, x3RHS, addXGate fr.Element
		x3Den.Add(&one, &dProd)
		x3LHS.Mul(&w.AccX[i], &x3Den)
		x3RHS.Add(&x1y2, &y1x2)
		addXGate.Sub(&x3LHS, &x3RHS)
		addXGate.Mul(&addXGate, &mask)
		g.AddX[i] = addXGate

		var y3Den, y3LHS, y3RHS, addYGate, aX1x2 fr.Element
		y3Den.Sub(&one, &dProd)
		y3LHS.Mul(&w.AccY[i], &y3Den)
		aX1x2.Mul(&aFe, &x1x2)
		y3RHS.Sub(&y1y2, &aX1x2)
		addYGate.Sub(&y3LHS, &y3RHS)
		addYGate.Mul(&addYGate, &mask)
		g.AddY[i] = addYGate

		gpx, gpy := w.GamAccX[prev], w.GamAccY[prev]
		var gx2, gy2, gax2 fr.Element
		gx2.Square(&gpx)
		gy2.Square(&gpy)
		gax2.Mul(&aFe, &gx2)

		var gdxDen, gdxLHS, gdxRHS, gdxGate fr.Element
		gdxDen.Add(&gax2, &gy2)
		gdxLHS.Mul(&w.GamDblX[i], &gdxDen)
		var gTwoXY fr.Element
		gTwoXY.Mul(&gpx, &gpy)
		gdxRHS.Mul(&two, &gTwoXY)
		gdxGate.Sub(&gdxLHS, &gdxRHS)
		gdxGate.Mul(&gdxGate, &mask)
		g.GamDblX[i] = gdxGate

		var gdyDen, gdyLHS, gdyRHS, gdyGate fr.Element
		gdyDen.Sub(&two, &gax2)
		gdyDen.Sub(&gdyDen, &gy2)
		gdyLHS.Mul(&w.GamDblY[i], &gdyDen)
		gdyRHS.Sub(&gy2, &gax2)
		gdyGate.Sub(&gdyLHS, &gdyRHS)
		gdyGate.Mul(&gdyGate, &mask)
		g.GamDblY[i] = gdyGate

		var gAddX, gAddY fr.Element
		gAddX.Mul(&w.Bit[i], &hx)
		gAddY.Mul(&w.Bit[i], &hy)
		gAddY.Add(&gAddY, &oneMinusBit)

		gx1, gy1 := w.GamDblX[i], w.GamDblY[i]
		var gx1y2, gy1x2, gy1y2, gx1x2, gProd, gdProd fr.Element
		gx1y2.Mul(&gx1, &gAddY)
		gy1x2.Mul(&gy1, &gAddX)
		gy1y2.Mul(&gy1, &gAddY)
		gx1x2.Mul(&gx1, &gAddX)
		gProd.Mul(&gx1x2, &gy1y2)
		gdProd.Mul(&dFe, &gProd)

		var gx3Den, gx3LHS, gx3RHS, gAddXGate fr.Element
		gx3Den.Add(&one, &gdProd)
		gx3LHS.Mul(&w.GamAccX[i], &gx3Den)
		gx3RHS.Add(&gx1y2, &gy1x2)
		gAddXGate.Sub(&gx3LHS, &gx3RHS)
		gAddXGate.Mul(&gAddXGate, &mask)
		g.GamAddX[i] = gAddXGate

		var gy3Den, gy3LHS, gy3RHS, gAddYGate, gaX1x2 fr.Element
		gy3Den.Sub(&one, &gdProd)
		gy3LHS.Mul(&w.GamAccY[i], &gy3Den)
		gaX1x2.Mul(&aFe, &gx1x2)
		gy3RHS.Sub(&gy1y2, &gaX1x2)
		gAddYGate.Sub(&gy3LHS, &gy3RHS)
		gAddYGate.Mul(&gAddYGate, &mask)
		g.GamAddY[i] = gAddYGate
	}

	return g
}
