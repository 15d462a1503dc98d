package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/sale/types"
)

// Deepen converts the accumulated deepening balance into amm liquidity: half
// of the payment tokens are swapped into sale tokens, then both sides are
// added to the reference pool. The LP shares stay at the ld module account,
// which has no withdrawal path, so the liquidity is effectively locked.
// Anyone may trigger it; the caller gains nothing beyond deeper markets.
func (k Keeper) Deepen(ctx sdk.Context) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	pool, err := k.referencePool(ctx, params)
	if err != nil {
		return math.ZeroInt(), err
	}

	ldAddr := k.GetLdAddress()
	balance := k.bankKeeper.GetBalance(ctx, ldAddr, params.PaymentDenom).Amount
	if balance.LT(math.NewInt(2)) {
		return math.ZeroInt(), types.ErrNothingToDeepen.Wrapf("deepening balance %s%s", balance.String(), params.PaymentDenom)
	}

	// Swap half into the sale token. Slippage protection is the amm's own
	// k-invariant; the ld account trades against the pool it is about to fund.
	swapIn := balance.QuoRaw(2)
	swapOut, err := k.ammKeeper.Swap(ctx, ldAddr, pool.PoolID, params.PaymentDenom, params.SaleDenom, swapIn, math.OneInt())
	if err != nil {
		return math.ZeroInt(), err
	}

	remaining := balance.Sub(swapIn)

	// Map the two sides onto the pool's token ordering.
	var amountA, amountB math.Int
	switch {
	case pool.TokenA == params.PaymentDenom:
		amountA, amountB = remaining, swapOut
	case pool.TokenB == params.PaymentDenom:
		amountA, amountB = swapOut, remaining
	default:
		return math.ZeroInt(), types.ErrNoReferencePool.Wrapf("pool %d does not hold %s", pool.PoolID, params.PaymentDenom)
	}

	shares, usedA, usedB, err := k.ammKeeper.AddLiquidity(ctx, ldAddr, pool.PoolID, amountA, amountB)
	if err != nil {
		return math.ZeroInt(), err
	}

	// Ratio mismatch leftovers stay at the ld account for the next round.
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeepen,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.PoolID)),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, balance.String()),
		),
	)

	k.Logger(ctx).Info("liquidity deepened",
		"pool_id", pool.PoolID,
		"shares", shares.String(),
		"used_a", usedA.String(),
		"used_b", usedB.String(),
	)

	return shares, nil
}

// GetDeepeningBalance returns the payment tokens waiting to be deepened.
func (k Keeper) GetDeepeningBalance(ctx sdk.Context) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return k.bankKeeper.GetBalance(ctx, k.GetLdAddress(), params.PaymentDenom).Amount, nil
}
