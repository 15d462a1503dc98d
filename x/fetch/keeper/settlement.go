package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/fetch/types"
	sharedkeeper "github.com/fetch-protocol/fetch/x/shared/keeper"
)

// Deposit settles a single-sided deposit. Half the native amount is reserved
// for the liquidity's native leg; the other half converts to the token, with
// the split formula deciding how much routes through the sale treasury and
// how much swaps on the amm. The minted LP shares split between the stake
// ledger and the burn address by BurnPercent, residual dust refunds to the
// depositor, and the module account must end empty. Any failing leg fails
// the whole deposit.
func (k Keeper) Deposit(ctx sdk.Context, depositor sdk.AccAddress, nativeAmount math.Int) (math.Int, math.Int, error) {
	zero := math.ZeroInt()

	if nativeAmount.IsNil() || !nativeAmount.IsPositive() {
		return zero, zero, types.ErrInvalidInput.Wrap("native amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, zero, err
	}
	if params.StakePoolId == 0 {
		return zero, zero, types.ErrStakePoolNotSet
	}

	pool, found := k.ammKeeper.GetPoolInfo(ctx, params.NativeDenom, params.TokenDenom)
	if !found {
		return zero, zero, types.ErrNoTokenPool.Wrapf("no pool for %s/%s", params.NativeDenom, params.TokenDenom)
	}

	formula, ok := k.GetFormula(params.SplitFormula)
	if !ok {
		return zero, zero, types.ErrUnknownFormula.Wrapf("formula %q not registered", params.SplitFormula)
	}

	moduleAddr := k.GetModuleAddress()
	nativeCoin := sdk.NewCoin(params.NativeDenom, nativeAmount)
	if err := k.bankKeeper.SendCoins(ctx, depositor, moduleAddr, sdk.NewCoins(nativeCoin)); err != nil {
		return zero, zero, types.ErrSettlementFailed.Wrapf("failed to pull deposit: %v", err)
	}

	nativeLeg := nativeAmount.QuoRaw(2)
	convertAmount := nativeAmount.Sub(nativeLeg)

	depth := k.referenceDepth(ctx, params, pool)
	fraction := formula.SaleFraction(depth, params)
	saleSpend := fraction.MulInt(convertAmount).TruncateInt()
	swapSpend := convertAmount.Sub(saleSpend)

	tokenBought := zero
	if saleSpend.IsPositive() {
		tokenBought, err = k.saleKeeper.BuyFor(ctx, moduleAddr, saleSpend)
		if err != nil {
			return zero, zero, types.ErrSettlementFailed.Wrapf("sale leg: %v", err)
		}
	}

	tokenSwapped := zero
	if swapSpend.IsPositive() {
		tokenSwapped, err = k.ammKeeper.Swap(ctx, moduleAddr, pool.PoolID, params.NativeDenom, params.TokenDenom, swapSpend, math.OneInt())
		if err != nil {
			return zero, zero, types.ErrSettlementFailed.Wrapf("swap leg: %v", err)
		}
	}

	tokenTotal := tokenBought.Add(tokenSwapped)
	if tokenTotal.IsZero() {
		return zero, zero, types.ErrSettlementFailed.Wrap("deposit too small to convert")
	}

	staked, burned, err := k.settle(ctx, depositor, params, pool, nativeLeg, tokenTotal)
	if err != nil {
		return zero, zero, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyNativeIn, nativeAmount.String()),
			sdk.NewAttribute(types.AttributeKeyTokenBought, tokenBought.String()),
			sdk.NewAttribute(types.AttributeKeyTokenSwapped, tokenSwapped.String()),
			sdk.NewAttribute(types.AttributeKeyStakedShares, staked.String()),
			sdk.NewAttribute(types.AttributeKeyBurnedShares, burned.String()),
		),
	)

	k.Logger(ctx).Info("deposit settled",
		"depositor", depositor.String(),
		"native_in", nativeAmount.String(),
		"token_bought", tokenBought.String(),
		"token_swapped", tokenSwapped.String(),
		"staked_shares", staked.String(),
		"burned_shares", burned.String(),
	)

	return staked, burned, nil
}

// DepositPair settles a deposit where the depositor supplies both legs. No
// conversion happens; the split, refund, and zero-residue rules are the same
// as for Deposit.
func (k Keeper) DepositPair(ctx sdk.Context, depositor sdk.AccAddress, nativeAmount, tokenAmount math.Int) (math.Int, math.Int, error) {
	zero := math.ZeroInt()

	if nativeAmount.IsNil() || !nativeAmount.IsPositive() {
		return zero, zero, types.ErrInvalidInput.Wrap("native amount must be positive")
	}
	if tokenAmount.IsNil() || !tokenAmount.IsPositive() {
		return zero, zero, types.ErrInvalidInput.Wrap("token amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, zero, err
	}
	if params.StakePoolId == 0 {
		return zero, zero, types.ErrStakePoolNotSet
	}

	pool, found := k.ammKeeper.GetPoolInfo(ctx, params.NativeDenom, params.TokenDenom)
	if !found {
		return zero, zero, types.ErrNoTokenPool.Wrapf("no pool for %s/%s", params.NativeDenom, params.TokenDenom)
	}

	// Both legs move in one transfer, so a missing token balance fails the
	// deposit before any amm interaction.
	moduleAddr := k.GetModuleAddress()
	legs := sdk.NewCoins(
		sdk.NewCoin(params.NativeDenom, nativeAmount),
		sdk.NewCoin(params.TokenDenom, tokenAmount),
	)
	if err := k.bankKeeper.SendCoins(ctx, depositor, moduleAddr, legs); err != nil {
		return zero, zero, types.ErrSettlementFailed.Wrapf("failed to pull deposit legs: %v", err)
	}

	staked, burned, err := k.settle(ctx, depositor, params, pool, nativeAmount, tokenAmount)
	if err != nil {
		return zero, zero, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyNativeIn, nativeAmount.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenAmount.String()),
			sdk.NewAttribute(types.AttributeKeyStakedShares, staked.String()),
			sdk.NewAttribute(types.AttributeKeyBurnedShares, burned.String()),
		),
	)

	return staked, burned, nil
}

// settle provisions liquidity with the two legs held by the module account,
// splits the minted shares between the stake ledger and the burn address,
// refunds every residual unit, and asserts the module account ends empty.
func (k Keeper) settle(ctx sdk.Context, depositor sdk.AccAddress, params types.Params, pool sharedkeeper.PoolInfo, nativeLeg, tokenLeg math.Int) (math.Int, math.Int, error) {
	zero := math.ZeroInt()
	moduleAddr := k.GetModuleAddress()

	var amountA, amountB math.Int
	switch {
	case pool.TokenA == params.NativeDenom:
		amountA, amountB = nativeLeg, tokenLeg
	case pool.TokenB == params.NativeDenom:
		amountA, amountB = tokenLeg, nativeLeg
	default:
		return zero, zero, types.ErrNoTokenPool.Wrapf("pool %d does not hold %s", pool.PoolID, params.NativeDenom)
	}

	shares, _, _, err := k.ammKeeper.AddLiquidity(ctx, moduleAddr, pool.PoolID, amountA, amountB)
	if err != nil {
		return zero, zero, types.ErrSettlementFailed.Wrapf("provision leg: %v", err)
	}

	// burnShare = shares * BurnPercent / 100, truncated; the stake ledger
	// gets the exact remainder so no share is left behind.
	burnShares := shares.MulRaw(int64(params.BurnPercent)).QuoRaw(100)
	stakeShares := shares.Sub(burnShares)

	if burnShares.IsPositive() {
		burnAddr, err := sdk.AccAddressFromBech32(params.BurnAddress)
		if err != nil {
			return zero, zero, types.ErrInvalidParams.Wrapf("invalid burn address: %v", err)
		}
		if err := k.ammKeeper.TransferLiquidity(ctx, pool.PoolID, moduleAddr, burnAddr, burnShares); err != nil {
			return zero, zero, types.ErrSettlementFailed.Wrapf("burn leg: %v", err)
		}
	}

	if stakeShares.IsPositive() {
		if err := k.stakeKeeper.StakeFor(ctx, moduleAddr, params.StakePoolId, depositor, stakeShares); err != nil {
			return zero, zero, types.ErrSettlementFailed.Wrapf("stake leg: %v", err)
		}
	}

	// Refund dust from the ratio-mismatched liquidity provision.
	refund := k.bankKeeper.GetAllBalances(ctx, moduleAddr)
	if !refund.IsZero() {
		if err := k.bankKeeper.SendCoins(ctx, moduleAddr, depositor, refund); err != nil {
			return zero, zero, types.ErrSettlementFailed.Wrapf("refund leg: %v", err)
		}
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeDeposit,
				sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
			),
		)
	}

	if err := k.assertZeroResidue(ctx, pool.PoolID); err != nil {
		return zero, zero, err
	}

	return stakeShares, burnShares, nil
}

// assertZeroResidue verifies the module account holds no bank balances and
// no LP shares once settlement finishes.
func (k Keeper) assertZeroResidue(ctx sdk.Context, poolID uint64) error {
	moduleAddr := k.GetModuleAddress()

	if balances := k.bankKeeper.GetAllBalances(ctx, moduleAddr); !balances.IsZero() {
		return types.ErrResidueInvariant.Wrapf("residual balances: %s", balances)
	}

	shares, err := k.ammKeeper.GetLiquidity(ctx, poolID, moduleAddr)
	if err != nil {
		return fmt.Errorf("assertZeroResidue: %w", err)
	}
	if !shares.IsZero() {
		return types.ErrResidueInvariant.Wrapf("residual LP shares: %s", shares)
	}

	return nil
}
