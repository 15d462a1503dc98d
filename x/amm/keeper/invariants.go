package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/amm/types"
)

// CheckShareSupplyInvariant verifies that the sum of all share positions in a
// pool equals the pool's total shares.
func (k Keeper) CheckShareSupplyInvariant(ctx context.Context, poolID uint64) error {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	sum := math.ZeroInt()
	if err := k.IterateLiquidityByPool(ctx, poolID, func(_ sdk.AccAddress, shares math.Int) bool {
		sum = sum.Add(shares)
		return false
	}); err != nil {
		return err
	}

	if !sum.Equal(pool.TotalShares) {
		return types.ErrInvariantViolation.Wrapf(
			"share supply mismatch for pool %d: positions sum to %s, pool records %s",
			poolID, sum, pool.TotalShares,
		)
	}
	return nil
}

// CheckReserveInvariant verifies that the module account holds at least the
// recorded reserves of every pool.
func (k Keeper) CheckReserveInvariant(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	required := make(map[string]math.Int)
	if err := k.IteratePools(ctx, func(pool types.Pool) bool {
		for denom, amt := range map[string]math.Int{pool.TokenA: pool.ReserveA, pool.TokenB: pool.ReserveB} {
			if cur, ok := required[denom]; ok {
				required[denom] = cur.Add(amt)
			} else {
				required[denom] = amt
			}
		}
		return false
	}); err != nil {
		return err
	}

	for denom, amt := range required {
		balance := k.bankKeeper.GetBalance(sdkCtx, moduleAddr, denom)
		if balance.Amount.LT(amt) {
			return types.ErrInvariantViolation.Wrapf(
				"module balance %s %s below recorded reserves %s",
				balance.Amount, denom, amt,
			)
		}
	}
	return nil
}

// ValidatePoolState performs structural checks on a pool.
func (k Keeper) ValidatePoolState(pool *types.Pool) error {
	if pool.Id == 0 {
		return fmt.Errorf("pool ID cannot be zero")
	}
	if pool.TokenA == "" || pool.TokenB == "" {
		return fmt.Errorf("token denoms cannot be empty")
	}
	if pool.TokenA >= pool.TokenB {
		return fmt.Errorf("tokens must be ordered: tokenA < tokenB")
	}
	if pool.ReserveA.IsNegative() || pool.ReserveB.IsNegative() {
		return fmt.Errorf("reserves cannot be negative")
	}
	if pool.TotalShares.IsNegative() {
		return fmt.Errorf("total shares cannot be negative")
	}
	if !pool.ReserveA.IsZero() && !pool.ReserveB.IsZero() && pool.TotalShares.IsZero() {
		return fmt.Errorf("pool has reserves but no shares")
	}
	return nil
}
