package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Pool is a constant-product liquidity pool between two denoms.
// Token denoms are ordered lexicographically: TokenA < TokenB.
type Pool struct {
	Id          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	Creator     string   `json:"creator"`
}

// Position is a liquidity share position held by an address in a pool.
type Position struct {
	PoolId   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}

// Params defines the amm module parameters.
type Params struct {
	SwapFee      math.LegacyDec `json:"swap_fee"`
	MinLiquidity math.Int       `json:"min_liquidity"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		SwapFee:      math.LegacyNewDecWithPrec(3, 3), // 0.3%
		MinLiquidity: math.NewInt(1000),
	}
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.SwapFee.IsNil() || p.SwapFee.IsNegative() || p.SwapFee.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("swap fee must be in [0,1)")
	}
	if p.MinLiquidity.IsNil() || p.MinLiquidity.IsNegative() {
		return fmt.Errorf("min liquidity must be non-negative")
	}
	return nil
}
