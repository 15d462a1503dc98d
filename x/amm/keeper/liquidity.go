package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/amm/types"
)

// GetLiquidity retrieves an address's liquidity position in a pool
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(LiquidityKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// SetLiquidity sets an address's liquidity position in a pool
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		// Remove the liquidity position if shares are zero
		store.Delete(LiquidityKey(poolID, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(LiquidityKey(poolID, provider), bz)
	return nil
}

// AddLiquidity adds liquidity to an existing pool. Amounts beyond the pool
// ratio are not taken; the consumed amounts are returned so callers can
// refund the remainder.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, math.Int, math.Int, error) {
	zero := math.ZeroInt()

	if amountA.IsZero() || amountB.IsZero() {
		return zero, zero, zero, types.ErrInvalidInput.Wrap("liquidity amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return zero, zero, zero, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	// First liquidity provision: geometric mean shares, Uniswap V2 style
	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		if !pool.TotalShares.IsZero() {
			return zero, zero, zero, types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
		}

		product, err := amountA.SafeMul(amountB)
		if err != nil {
			return zero, zero, zero, types.ErrOverflow.Wrapf("overflow calculating share product: %v", err)
		}
		sqrtShares, err := math.LegacyNewDecFromInt(product).ApproxSqrt()
		if err != nil {
			return zero, zero, zero, types.ErrOverflow.Wrapf("failed to calculate square root: %v", err)
		}
		newShares := sqrtShares.TruncateInt()
		if newShares.IsZero() {
			return zero, zero, zero, types.ErrInvalidInput.Wrap("initial liquidity amounts too small")
		}

		coinA := sdk.NewCoin(pool.TokenA, amountA)
		coinB := sdk.NewCoin(pool.TokenB, amountB)
		if err := k.bankKeeper.SendCoins(sdkCtx, provider, moduleAddr, sdk.NewCoins(coinA, coinB)); err != nil {
			return zero, zero, zero, types.ErrInsufficientLiquidity.Wrapf("failed to transfer tokens: %v", err)
		}

		pool.ReserveA = amountA
		pool.ReserveB = amountB
		pool.TotalShares = newShares

		if err := k.SetPool(ctx, pool); err != nil {
			return zero, zero, zero, err
		}
		if err := k.SetLiquidity(ctx, poolID, provider, newShares); err != nil {
			return zero, zero, zero, err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAddLiquidity,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
				sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
				sdk.NewAttribute(types.AttributeKeyShares, newShares.String()),
			),
		)

		return newShares, amountA, amountB, nil
	}

	if pool.TotalShares.IsZero() {
		return zero, zero, zero, types.ErrInvalidPoolState.Wrap("pool has reserves but zero shares")
	}

	// Proportional liquidity: amountA/reserveA = amountB/reserveB = shares/totalShares
	numeratorB, err := amountA.SafeMul(pool.ReserveB)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow calculating optimal amountB: %v", err)
	}
	optimalAmountB, err := numeratorB.SafeQuo(pool.ReserveA)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow in optimal amountB division: %v", err)
	}

	numeratorA, err := amountB.SafeMul(pool.ReserveA)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow calculating optimal amountA: %v", err)
	}
	optimalAmountA, err := numeratorA.SafeQuo(pool.ReserveB)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow in optimal amountA division: %v", err)
	}

	var finalAmountA, finalAmountB math.Int
	if optimalAmountB.LTE(amountB) {
		finalAmountA = amountA
		finalAmountB = optimalAmountB
	} else {
		finalAmountA = optimalAmountA
		finalAmountB = amountB
	}

	if finalAmountA.IsZero() || finalAmountB.IsZero() {
		return zero, zero, zero, types.ErrInvalidInput.Wrap("liquidity contribution too small")
	}

	// shares = totalShares * finalAmountA / reserveA
	sharesNumerator, err := finalAmountA.SafeMul(pool.TotalShares)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow calculating shares: %v", err)
	}
	newShares, err := sharesNumerator.SafeQuo(pool.ReserveA)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow in shares division: %v", err)
	}
	if newShares.IsZero() {
		return zero, zero, zero, types.ErrInvalidInput.Wrap("liquidity contribution too small")
	}

	// Transfer tokens FIRST (checks-effects-interactions)
	coinA := sdk.NewCoin(pool.TokenA, finalAmountA)
	coinB := sdk.NewCoin(pool.TokenB, finalAmountB)
	if err := k.bankKeeper.SendCoins(sdkCtx, provider, moduleAddr, sdk.NewCoins(coinA, coinB)); err != nil {
		return zero, zero, zero, types.ErrInsufficientLiquidity.Wrapf("failed to transfer tokens: %v", err)
	}

	newReserveA, err := pool.ReserveA.SafeAdd(finalAmountA)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow adding to reserveA: %v", err)
	}
	newReserveB, err := pool.ReserveB.SafeAdd(finalAmountB)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow adding to reserveB: %v", err)
	}
	newTotalShares, err := pool.TotalShares.SafeAdd(newShares)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow adding to total shares: %v", err)
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares

	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, zero, err
	}

	currentShares, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return zero, zero, zero, err
	}
	userTotalShares, err := currentShares.SafeAdd(newShares)
	if err != nil {
		return zero, zero, zero, types.ErrOverflow.Wrapf("overflow adding user shares: %v", err)
	}
	if err := k.SetLiquidity(ctx, poolID, provider, userTotalShares); err != nil {
		return zero, zero, zero, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, finalAmountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, finalAmountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, newShares.String()),
		),
	)

	return newShares, finalAmountA, finalAmountB, nil
}

// RemoveLiquidity removes liquidity from a pool
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error) {
	zero := math.ZeroInt()

	if shares.IsZero() || shares.IsNegative() {
		return zero, zero, types.ErrInsufficientShares.Wrap("shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return zero, zero, err
	}

	if pool.TotalShares.IsZero() {
		return zero, zero, types.ErrInvalidPoolState.Wrap("pool has zero total shares")
	}
	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return zero, zero, types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
	}

	userShares, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return zero, zero, err
	}

	if shares.GT(userShares) {
		return zero, zero, types.ErrInsufficientShares.Wrapf("have %s, need %s", userShares, shares)
	}

	// amountX = reserveX * shares / totalShares, truncated in the pool's favor
	numeratorA, err := pool.ReserveA.SafeMul(shares)
	if err != nil {
		return zero, zero, types.ErrOverflow.Wrapf("overflow calculating amountA: %v", err)
	}
	amountA, err := numeratorA.SafeQuo(pool.TotalShares)
	if err != nil {
		return zero, zero, types.ErrOverflow.Wrapf("overflow in amountA division: %v", err)
	}
	numeratorB, err := pool.ReserveB.SafeMul(shares)
	if err != nil {
		return zero, zero, types.ErrOverflow.Wrapf("overflow calculating amountB: %v", err)
	}
	amountB, err := numeratorB.SafeQuo(pool.TotalShares)
	if err != nil {
		return zero, zero, types.ErrOverflow.Wrapf("overflow in amountB division: %v", err)
	}

	if amountA.IsZero() || amountB.IsZero() {
		return zero, zero, types.ErrInvalidInput.Wrap("withdrawal amounts too small")
	}

	newReserveA, err := pool.ReserveA.SafeSub(amountA)
	if err != nil {
		return zero, zero, types.ErrOverflow.Wrapf("overflow subtracting from reserveA: %v", err)
	}
	newReserveB, err := pool.ReserveB.SafeSub(amountB)
	if err != nil {
		return zero, zero, types.ErrOverflow.Wrapf("overflow subtracting from reserveB: %v", err)
	}
	newTotalShares, err := pool.TotalShares.SafeSub(shares)
	if err != nil {
		return zero, zero, types.ErrOverflow.Wrapf("overflow subtracting from total shares: %v", err)
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares

	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, err
	}

	newUserShares, err := userShares.SafeSub(shares)
	if err != nil {
		return zero, zero, types.ErrOverflow.Wrapf("overflow subtracting user shares: %v", err)
	}
	if err := k.SetLiquidity(ctx, poolID, provider, newUserShares); err != nil {
		return zero, zero, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	coinA := sdk.NewCoin(pool.TokenA, amountA)
	coinB := sdk.NewCoin(pool.TokenB, amountB)

	if err := k.bankKeeper.SendCoins(sdkCtx, moduleAddr, provider, sdk.NewCoins(coinA, coinB)); err != nil {
		return zero, zero, types.ErrInsufficientLiquidity.Wrapf("failed to transfer tokens: %v", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return amountA, amountB, nil
}

// TransferLiquidity moves a share position between two addresses without
// touching the pool reserves. The receiving address may be an account no key
// controls, which permanently locks the shares.
func (k Keeper) TransferLiquidity(ctx context.Context, poolID uint64, from, to sdk.AccAddress, shares math.Int) error {
	if shares.IsNil() || !shares.IsPositive() {
		return types.ErrInsufficientShares.Wrap("shares must be positive")
	}
	if from.Equals(to) {
		return types.ErrInvalidInput.Wrap("cannot transfer shares to the same address")
	}

	if _, err := k.GetPool(ctx, poolID); err != nil {
		return err
	}

	fromShares, err := k.GetLiquidity(ctx, poolID, from)
	if err != nil {
		return err
	}
	if shares.GT(fromShares) {
		return types.ErrInsufficientShares.Wrapf("have %s, need %s", fromShares, shares)
	}

	toShares, err := k.GetLiquidity(ctx, poolID, to)
	if err != nil {
		return err
	}
	newToShares, err := toShares.SafeAdd(shares)
	if err != nil {
		return types.ErrOverflow.Wrapf("overflow adding recipient shares: %v", err)
	}

	if err := k.SetLiquidity(ctx, poolID, from, fromShares.Sub(shares)); err != nil {
		return err
	}
	if err := k.SetLiquidity(ctx, poolID, to, newToShares); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransferLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return nil
}

// IterateLiquidityByPool iterates over all liquidity positions in a pool
func (k Keeper) IterateLiquidityByPool(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LiquidityKeyByPoolPrefix(poolID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return err
		}

		key := iterator.Key()
		providerBytes := key[len(LiquidityKeyByPoolPrefix(poolID)):]
		provider := sdk.AccAddress(providerBytes)

		if cb(provider, shares) {
			break
		}
	}
	return nil
}
