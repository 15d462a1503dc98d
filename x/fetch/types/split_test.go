package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/fetch-protocol/fetch/x/fetch/types"
)

func splitParams() types.Params {
	p := types.DefaultParams()
	p.MinReferenceDepth = math.NewInt(1_000)
	p.MaxReferenceDepth = math.NewInt(2_000)
	p.MaxSaleFraction = math.LegacyNewDecWithPrec(5, 1)
	return p
}

// TestLinearFormula_Bounds tests the clamp at both depth bounds
func TestLinearFormula_Bounds(t *testing.T) {
	p := splitParams()
	formula := types.LinearSplitFormula{}

	require.True(t, formula.SaleFraction(math.NewInt(500), p).Equal(p.MaxSaleFraction))
	require.True(t, formula.SaleFraction(math.NewInt(1_000), p).Equal(p.MaxSaleFraction))
	require.True(t, formula.SaleFraction(math.NewInt(2_000), p).IsZero())
	require.True(t, formula.SaleFraction(math.NewInt(5_000), p).IsZero())
}

// TestLinearFormula_Interpolates tests the midpoint and quarter points
func TestLinearFormula_Interpolates(t *testing.T) {
	p := splitParams()
	formula := types.LinearSplitFormula{}

	// Midpoint: half of MaxSaleFraction
	require.True(t, formula.SaleFraction(math.NewInt(1_500), p).Equal(math.LegacyNewDecWithPrec(25, 2)))
	// Quarter in: three quarters of MaxSaleFraction
	require.True(t, formula.SaleFraction(math.NewInt(1_250), p).Equal(math.LegacyNewDecWithPrec(375, 3)))
}

// TestFixedFormula tests that depth never matters
func TestFixedFormula(t *testing.T) {
	p := splitParams()
	formula := types.FixedSplitFormula{}

	require.True(t, formula.SaleFraction(math.NewInt(1), p).Equal(p.MaxSaleFraction))
	require.True(t, formula.SaleFraction(math.NewInt(1_000_000), p).Equal(p.MaxSaleFraction))
}

// TestParamsValidate_BurnPercent tests the burn percent bounds in Validate
func TestParamsValidate_BurnPercent(t *testing.T) {
	p := types.DefaultParams()

	p.BurnPercent = 0
	require.Error(t, p.Validate())

	p.BurnPercent = 11
	require.Error(t, p.Validate())

	p.BurnPercent = 10
	require.NoError(t, p.Validate())
}
