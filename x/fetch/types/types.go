package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// Burn percent bounds, inclusive. A deposit always burns something and
// always stakes something.
const (
	MinBurnPercent = 1
	MaxBurnPercent = 10
)

// Params defines the parameters for the fetch module.
type Params struct {
	// NativeDenom is the denom depositors pay in.
	NativeDenom string `json:"native_denom"`
	// TokenDenom is the protocol token paired against the native denom.
	TokenDenom string `json:"token_denom"`
	// StableDenom quotes pool depth for the split formula.
	StableDenom string `json:"stable_denom"`
	// BurnPercent of minted LP shares goes to the burn address (1..10).
	BurnPercent uint32 `json:"burn_percent"`
	// BurnAddress receives the burned LP share split.
	BurnAddress string `json:"burn_address"`
	// StakePoolId is the stake pool new deposits are credited to.
	StakePoolId uint64 `json:"stake_pool_id"`
	// SplitFormula names the registered formula splitting the token leg
	// between the sale and the amm.
	SplitFormula string `json:"split_formula"`
	// MinReferenceDepth is the stable-quoted depth at or below which the
	// full MaxSaleFraction routes through the sale.
	MinReferenceDepth math.Int `json:"min_reference_depth"`
	// MaxReferenceDepth is the depth at or above which nothing routes
	// through the sale.
	MaxReferenceDepth math.Int `json:"max_reference_depth"`
	// MaxSaleFraction caps the share of the token leg bought from the sale.
	MaxSaleFraction math.LegacyDec `json:"max_sale_fraction"`
}

// DefaultParams returns the default fetch module parameters.
func DefaultParams() Params {
	return Params{
		NativeDenom:       "ubnb",
		TokenDenom:        "ufet",
		StableDenom:       "udai",
		BurnPercent:       10,
		BurnAddress:       authtypes.NewModuleAddress(BurnModuleName).String(),
		StakePoolId:       0,
		SplitFormula:      "linear",
		MinReferenceDepth: math.NewInt(1_000_000),
		MaxReferenceDepth: math.NewInt(100_000_000),
		MaxSaleFraction:   math.LegacyNewDecWithPrec(5, 1), // 0.5
	}
}

// Validate validates the fetch module parameters.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("invalid native denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.TokenDenom); err != nil {
		return fmt.Errorf("invalid token denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.StableDenom); err != nil {
		return fmt.Errorf("invalid stable denom: %w", err)
	}
	if p.NativeDenom == p.TokenDenom {
		return fmt.Errorf("native and token denoms must differ")
	}
	if p.BurnPercent < MinBurnPercent || p.BurnPercent > MaxBurnPercent {
		return fmt.Errorf("burn percent must be between %d and %d, got %d", MinBurnPercent, MaxBurnPercent, p.BurnPercent)
	}
	if _, err := sdk.AccAddressFromBech32(p.BurnAddress); err != nil {
		return fmt.Errorf("invalid burn address: %w", err)
	}
	if p.SplitFormula == "" {
		return fmt.Errorf("split formula must be set")
	}
	if p.MinReferenceDepth.IsNil() || p.MinReferenceDepth.IsNegative() {
		return fmt.Errorf("min reference depth must be non-negative")
	}
	if p.MaxReferenceDepth.IsNil() || !p.MaxReferenceDepth.GT(p.MinReferenceDepth) {
		return fmt.Errorf("max reference depth must exceed min reference depth")
	}
	if p.MaxSaleFraction.IsNil() || p.MaxSaleFraction.IsNegative() || p.MaxSaleFraction.GT(math.LegacyOneDec()) {
		return fmt.Errorf("max sale fraction must be between 0 and 1")
	}
	return nil
}
