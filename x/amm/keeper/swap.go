package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/amm/types"
)

// Swap performs a token swap using the constant product AMM formula.
// Transfers happen before the pool state is written, so a failed transfer
// leaves the pool untouched.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) (math.Int, error) {
	if amountIn.IsZero() || amountIn.IsNegative() {
		return math.ZeroInt(), types.ErrInvalidSwapAmount.Wrap("swap amount must be positive")
	}

	if tokenIn == tokenOut {
		return math.ZeroInt(), types.ErrInvalidTokenPair.Wrap("cannot swap identical tokens")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := k.RequireNotPaused(sdkCtx); err != nil {
		return math.ZeroInt(), err
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	var reserveIn, reserveOut math.Int
	var isTokenAIn bool

	switch {
	case tokenIn == pool.TokenA && tokenOut == pool.TokenB:
		reserveIn = pool.ReserveA
		reserveOut = pool.ReserveB
		isTokenAIn = true
	case tokenIn == pool.TokenB && tokenOut == pool.TokenA:
		reserveIn = pool.ReserveB
		reserveOut = pool.ReserveA
		isTokenAIn = false
	default:
		return math.ZeroInt(), types.ErrInvalidTokenPair.Wrapf("invalid token pair for pool %d: expected %s/%s, got %s/%s",
			poolID, pool.TokenA, pool.TokenB, tokenIn, tokenOut)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	// Fee is charged on the input amount; the fee stays in the pool reserves
	// and accrues to liquidity providers.
	feeAmount := math.LegacyNewDecFromInt(amountIn).Mul(params.SwapFee).TruncateInt()
	amountInAfterFee := amountIn.Sub(feeAmount)
	if amountInAfterFee.IsZero() || amountInAfterFee.IsNegative() {
		return math.ZeroInt(), types.ErrInvalidSwapAmount.Wrap("swap amount too small after fees")
	}

	amountOut, err := k.CalculateSwapOutput(ctx, amountInAfterFee, reserveIn, reserveOut)
	if err != nil {
		return math.ZeroInt(), err
	}

	if amountOut.LT(minAmountOut) {
		return math.ZeroInt(), types.ErrSlippageTooHigh.Wrapf("expected at least %s, got %s", minAmountOut, amountOut)
	}

	moduleAddr := k.GetModuleAddress()

	// Transfer input tokens from trader to module first
	coinIn := sdk.NewCoin(tokenIn, amountIn)
	if err := k.bankKeeper.SendCoins(sdkCtx, trader, moduleAddr, sdk.NewCoins(coinIn)); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer input tokens: %v", err)
	}

	coinOut := sdk.NewCoin(tokenOut, amountOut)
	if err := k.bankKeeper.SendCoins(sdkCtx, moduleAddr, trader, sdk.NewCoins(coinOut)); err != nil {
		if revertErr := k.bankKeeper.SendCoins(sdkCtx, moduleAddr, trader, sdk.NewCoins(coinIn)); revertErr != nil {
			sdkCtx.Logger().Error("failed to revert input transfer after output transfer failure",
				"original_error", err,
				"revert_error", revertErr,
				"trader", trader.String(),
			)
		}
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer output tokens: %v", err)
	}

	// Update pool state only after all transfers succeeded. The fee stays in
	// the reserves, so the full input amount is added.
	oldK := pool.ReserveA.Mul(pool.ReserveB)

	if isTokenAIn {
		pool.ReserveA = pool.ReserveA.Add(amountIn)
		pool.ReserveB = pool.ReserveB.Sub(amountOut)
	} else {
		pool.ReserveB = pool.ReserveB.Add(amountIn)
		pool.ReserveA = pool.ReserveA.Sub(amountOut)
	}

	// The constant product must never decrease. Truncation always rounds the
	// output down, so a decrease indicates a calculation error.
	newK := pool.ReserveA.Mul(pool.ReserveB)
	if newK.LT(oldK) {
		return math.ZeroInt(), types.ErrInvariantViolation.Wrapf(
			"constant product invariant violated in swap: old_k=%s, new_k=%s",
			oldK.String(), newK.String(),
		)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, feeAmount.String()),
		),
	)

	return amountOut, nil
}

// CalculateSwapOutput calculates the output amount for a swap using the constant product formula
// Formula: amountOut = (amountIn * reserveOut) / (reserveIn + amountIn)
func (k Keeper) CalculateSwapOutput(ctx context.Context, amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountIn.IsZero() {
		return math.ZeroInt(), types.ErrInvalidSwapAmount.Wrap("input amount must be positive")
	}

	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	amountInDec := math.LegacyNewDecFromInt(amountIn)
	numerator := amountInDec.Mul(math.LegacyNewDecFromInt(reserveOut))
	denominator := math.LegacyNewDecFromInt(reserveIn).Add(amountInDec)

	amountOut := numerator.Quo(denominator).TruncateInt()

	if amountOut.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("output amount too small")
	}

	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("output %s >= reserve %s", amountOut, reserveOut)
	}

	return amountOut, nil
}

// SimulateSwap simulates a swap without executing it
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if amountIn.IsZero() || amountIn.IsNegative() {
		return math.ZeroInt(), types.ErrInvalidSwapAmount.Wrap("swap amount must be positive")
	}

	if tokenIn == tokenOut {
		return math.ZeroInt(), types.ErrInvalidTokenPair.Wrap("cannot swap identical tokens")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	var reserveIn, reserveOut math.Int

	switch {
	case tokenIn == pool.TokenA && tokenOut == pool.TokenB:
		reserveIn = pool.ReserveA
		reserveOut = pool.ReserveB
	case tokenIn == pool.TokenB && tokenOut == pool.TokenA:
		reserveIn = pool.ReserveB
		reserveOut = pool.ReserveA
	default:
		return math.ZeroInt(), types.ErrInvalidTokenPair.Wrapf("invalid token pair for pool %d: expected %s/%s, got %s/%s",
			poolID, pool.TokenA, pool.TokenB, tokenIn, tokenOut)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	feeAmount := math.LegacyNewDecFromInt(amountIn).Mul(params.SwapFee).TruncateInt()
	amountInAfterFee := amountIn.Sub(feeAmount)
	if amountInAfterFee.IsZero() || amountInAfterFee.IsNegative() {
		return math.ZeroInt(), types.ErrInvalidSwapAmount.Wrap("swap amount too small after fees")
	}

	return k.CalculateSwapOutput(ctx, amountInAfterFee, reserveIn, reserveOut)
}

// GetSpotPrice returns the spot price of tokenOut in terms of tokenIn
func (k Keeper) GetSpotPrice(ctx context.Context, poolID uint64, tokenIn, tokenOut string) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}

	var reserveIn, reserveOut math.Int

	switch {
	case tokenIn == pool.TokenA && tokenOut == pool.TokenB:
		reserveIn = pool.ReserveA
		reserveOut = pool.ReserveB
	case tokenIn == pool.TokenB && tokenOut == pool.TokenA:
		reserveIn = pool.ReserveB
		reserveOut = pool.ReserveA
	default:
		return math.LegacyZeroDec(), types.ErrInvalidTokenPair.Wrapf("invalid token pair for pool %d", poolID)
	}

	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.LegacyZeroDec(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}
