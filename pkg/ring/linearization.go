package ring

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/bandersnatch"
	"github.com/bandersnatch-vrf/ringvrf/pkg/transcript"
)

// recombineConstraint recomputes the combined constraint polynomial's value
// at ζ directly from a proof's claimed openings, mirroring evaluateGates's
// per-row formulas but applied once, at a single point, using the shifted
// and pinned openings in place of array indexing. A verifier never sees the
// witness arrays; this is the point-evaluation analogue of evaluateGates
// that only Verify needs.
func recombineConstraint(rp *RingParams, tr *transcript.Transcript, proof *RingProof, zeta, hx, hy fr.Element) fr.Element {
	params := bandersnatch.Params()
	aFe := feFromBig(params.A)
	dFe := feFromBig(params.D)
	one := fr.One()
	two := feFromBig(big.NewInt(2))
	gxFe, gyFe := feFromBig(params.Gx), feFromBig(params.Gy)

	bit := proof.EvalBit
	sel := proof.EvalSel
	accX, accY := proof.EvalAccX, proof.EvalAccY
	dblX, dblY := proof.EvalDblX, proof.EvalDblY
	runSel := proof.EvalRunSel
	x, y := proof.EvalX, proof.EvalY

	accXPrev, accYPrev := proof.EvalAccXPrev, proof.EvalAccYPrev
	runSelPrev := proof.EvalRunSelPrev
	finalX, finalY := proof.EvalFinalAccX, proof.EvalFinalAccY

	gamAccX, gamAccY := proof.EvalGamAccX, proof.EvalGamAccY
	gamDblX, gamDblY := proof.EvalGamDblX, proof.EvalGamDblY
	gamAccXPrev, gamAccYPrev := proof.EvalGamAccXPrev, proof.EvalGamAccYPrev

	startSel := rp.domain.LagrangeBasisAt(rp.TraceStart, zeta)
	endSel := rp.domain.LagrangeBasisAt(int(rp.DomainSize)-1, zeta)
	notRowZero := rp.notRowZeroAt(zeta)
	mask := rp.stepMaskPoly.Evaluate(zeta)

	var bm1, bitGate fr.Element
	bm1.Sub(&bit, &one)
	bitGate.Mul(&bit, &bm1)

	var selM1, selBooleanGate fr.Element
	selM1.Sub(&sel, &one)
	selBooleanGate.Mul(&sel, &selM1)

	var x2, y2, ax2 fr.Element
	x2.Square(&accXPrev)
	y2.Square(&accYPrev)
	ax2.Mul(&aFe, &x2)

	var dxDen, dxLHS, dxRHS, dxGate, twoXY fr.Element
	dxDen.Add(&ax2, &y2)
	dxLHS.Mul(&dblX, &dxDen)
	twoXY.Mul(&accXPrev, &accYPrev)
	dxRHS.Mul(&two, &twoXY)
	dxGate.Sub(&dxLHS, &dxRHS)
	dxGate.Mul(&dxGate, &mask)

	var dyDen, dyLHS, dyRHS, dyGate fr.Element
	dyDen.Sub(&two, &ax2)
	dyDen.Sub(&dyDen, &y2)
	dyLHS.Mul(&dblY, &dyDen)
	dyRHS.Sub(&y2, &ax2)
	dyGate.Sub(&dyLHS, &dyRHS)
	dyGate.Mul(&dyGate, &mask)

	var addX, addY, oneMinusBit fr.Element
	oneMinusBit.Sub(&one, &bit)
	addX.Mul(&bit, &gxFe)
	addY.Mul(&bit, &gyFe)
	addY.Add(&addY, &oneMinusBit)

	var x1y2, y1x2, y1y2, x1x2, prod, dProd fr.Element
	x1y2.Mul(&dblX, &addY)
	y1x2.Mul(&dblY, &addX)
	y1y2.Mul(&dblY, &addY)
	x1x2.Mul(&dblX, &addX)
	prod.Mul(&x1x2, &y1y2)
	dProd.Mul(&dFe, &prod)

	var x3Den, x3LHS, x3RHS, addXGate fr.Element
	x3Den.Add(&one, &dProd)
	x3LHS.Mul(&accX, &x3Den)
	x3RHS.Add(&x1y2, &y1x2)
	addXGate.Sub(&x3LHS, &x3RHS)
	addXGate.Mul(&addXGate, &mask)

	var y3Den, y3LHS, y3RHS, addYGate, aX1x2 fr.Element
	y3Den.Sub(&one, &dProd)
	y3LHS.Mul(&accY, &y3Den)
	aX1x2.Mul(&aFe, &x1x2)
	y3RHS.Sub(&y1y2, &aX1x2)
	addYGate.Sub(&y3LHS, &y3RHS)
	addYGate.Mul(&addYGate, &mask)

	var rs, runSelGate fr.Element
	rs.Sub(&runSel, &runSelPrev)
	rs.Sub(&rs, &sel)
	runSelGate.Mul(&rs, &notRowZero)

	var selDiffX, selDiffY, selXGate, selYGate fr.Element
	selDiffX.Sub(&x, &finalX)
	selDiffY.Sub(&y, &finalY)
	selXGate.Mul(&sel, &selDiffX)
	selYGate.Mul(&sel, &selDiffY)

	var startMinusX, startMinusY, startXGate, startYGate fr.Element
	startMinusX.Set(&accX)
	startMinusY.Sub(&accY, &one)
	startXGate.Mul(&startSel, &startMinusX)
	startYGate.Mul(&startSel, &startMinusY)

	var gamStartMinusX, gamStartMinusY, gamStartXGate, gamStartYGate fr.Element
	gamStartMinusX.Set(&gamAccX)
	gamStartMinusY.Sub(&gamAccY, &one)
	gamStartXGate.Mul(&startSel, &gamStartMinusX)
	gamStartYGate.Mul(&startSel, &gamStartMinusY)

	var runSelMinus1, oneSelectedGate fr.Element
	runSelMinus1.Sub(&runSel, &one)
	oneSelectedGate.Mul(&endSel, &runSelMinus1)

	var gx2, gy2, gax2 fr.Element
	gx2.Square(&gamAccXPrev)
	gy2.Square(&gamAccYPrev)
	gax2.Mul(&aFe, &gx2)

	var gdxDen, gdxLHS, gdxRHS, gdxGate, gTwoXY fr.Element
	gdxDen.Add(&gax2, &gy2)
	gdxLHS.Mul(&gamDblX, &gdxDen)
	gTwoXY.Mul(&gamAccXPrev, &gamAccYPrev)
	gdxRHS.Mul(&two, &gTwoXY)
	gdxGate.Sub(&gdxLHS, &gdxRHS)
	gdxGate.Mul(&gdxGate, &mask)

	var gdyDen, gdyLHS, gdyRHS, gdyGate fr.Element
	gdyDen.Sub(&two, &gax2)
	gdyDen.Sub(&gdyDen, &gy2)
	gdyLHS.Mul(&gamDblY, &gdyDen)
	gdyRHS.Sub(&gy2, &gax2)
	gdyGate.Sub(&gdyLHS, &gdyRHS)
	gdyGate.Mul(&gdyGate, &mask)

	var gAddX, gAddY, gOneMinusBit fr.Element
	gOneMinusBit.Sub(&one, &bit)
	gAddX.Mul(&bit, &hx)
	gAddY.Mul(&bit, &hy)
	gAddY.Add(&gAddY, &gOneMinusBit)

	var gx1y2, gy1x2, gy1y2, gx1x2, gProd, gdProd fr.Element
	gx1y2.Mul(&gamDblX, &gAddY)
	gy1x2.Mul(&gamDblY, &gAddX)
	gy1y2.Mul(&gamDblY, &gAddY)
	gx1x2.Mul(&gamDblX, &gAddX)
	gProd.Mul(&gx1x2, &gy1y2)
	gdProd.Mul(&dFe, &gProd)

	var gx3Den, gx3LHS, gx3RHS, gAddXGate fr.Element
	gx3Den.Add(&one, &gdProd)
	gx3LHS.Mul(&gamAccX, &gx3Den)
	gx3RHS.Add(&gx1y2, &gy1x2)
	gAddXGate.Sub(&gx3LHS, &gx3RHS)
	gAddXGate.Mul(&gAddXGate, &mask)

	var gy3Den, gy3LHS, gy3RHS, gAddYGate, gaX1x2 fr.Element
	gy3Den.Sub(&one, &gdProd)
	gy3LHS.Mul(&gamAccY, &gy3Den)
	gaX1x2.Mul(&aFe, &gx1x2)
	gy3RHS.Sub(&gy1y2, &gaX1x2)
	gAddYGate.Sub(&gy3LHS, &gy3RHS)
	gAddYGate.Mul(&gAddYGate, &mask)

	gates := []fr.Element{
		bitGate, selBooleanGate, dxGate, dyGate, addXGate, addYGate,
		gdxGate, gdyGate, gAddXGate, gAddYGate,
		runSelGate, selXGate, selYGate,
		startXGate, startYGate, gamStartXGate, gamStartYGate, oneSelectedGate,
	}

	alpha := deriveGateChallenge(tr)
	var combined, power fr.Element
	power = fr.One()
	for _, gv := range gates {
		var term fr.Element
		term.Mul(&gv, &power)
		combined.Add(&combined, &term)
		power.Mul(&power, &alpha)
	}
	return combined
}
