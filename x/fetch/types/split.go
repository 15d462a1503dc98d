package types

import (
	"cosmossdk.io/math"
)

// SplitFormula decides how much of a deposit's token leg is bought from the
// sale treasury instead of swapped on the amm, as a function of the token
// pool's stable-quoted depth. Formulas are registered with the keeper at
// construction and selected by name through params.
type SplitFormula interface {
	Name() string
	SaleFraction(depth math.Int, p Params) math.LegacyDec
}

// LinearSplitFormula interpolates between the depth bounds: at or below
// MinReferenceDepth the full MaxSaleFraction routes through the sale, at or
// above MaxReferenceDepth nothing does. Deepening pressure fades as the pool
// grows.
type LinearSplitFormula struct{}

func (LinearSplitFormula) Name() string { return "linear" }

func (LinearSplitFormula) SaleFraction(depth math.Int, p Params) math.LegacyDec {
	if depth.IsNil() || depth.LTE(p.MinReferenceDepth) {
		return p.MaxSaleFraction
	}
	if depth.GTE(p.MaxReferenceDepth) {
		return math.LegacyZeroDec()
	}

	span := p.MaxReferenceDepth.Sub(p.MinReferenceDepth)
	remaining := p.MaxReferenceDepth.Sub(depth)
	return p.MaxSaleFraction.MulInt(remaining).QuoInt(span)
}

// FixedSplitFormula always routes MaxSaleFraction through the sale,
// regardless of depth.
type FixedSplitFormula struct{}

func (FixedSplitFormula) Name() string { return "fixed" }

func (FixedSplitFormula) SaleFraction(_ math.Int, p Params) math.LegacyDec {
	return p.MaxSaleFraction
}

var (
	_ SplitFormula = LinearSplitFormula{}
	_ SplitFormula = FixedSplitFormula{}
)
