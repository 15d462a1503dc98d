package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/stake/types"
)

// Stake locks a staker's own LP shares into a stake pool. The shares move to
// the module's position in the underlying amm pool; reward streaming starts
// immediately.
func (k Keeper) Stake(ctx context.Context, staker sdk.AccAddress, poolID uint64, shares math.Int) error {
	return k.stake(ctx, staker, staker, poolID, shares, false)
}

// StakeFor locks LP shares held by a whitelisted router on behalf of a
// beneficiary. Shares staked this way count toward NFT tier thresholds.
func (k Keeper) StakeFor(ctx context.Context, router sdk.AccAddress, poolID uint64, beneficiary sdk.AccAddress, shares math.Int) error {
	if !k.IsWhitelisted(ctx, router) {
		return types.ErrNotWhitelisted.Wrapf("router %s is not whitelisted", router)
	}
	return k.stake(ctx, router, beneficiary, poolID, shares, true)
}

func (k Keeper) stake(ctx context.Context, from, beneficiary sdk.AccAddress, poolID uint64, shares math.Int, viaRouter bool) error {
	if shares.IsNil() || !shares.IsPositive() {
		return types.ErrInvalidInput.Wrap("shares must be positive")
	}

	pool, err := k.GetStakePool(ctx, poolID)
	if err != nil {
		return err
	}

	acct, err := k.GetStakeAccount(ctx, poolID, beneficiary)
	if err != nil {
		return err
	}

	k.updateReward(ctx, pool, acct)

	// Custody first: pull the LP shares into the module's amm position
	if err := k.liquidityKeeper.TransferLiquidity(ctx, pool.LpPoolId, from, k.GetModuleAddress(), shares); err != nil {
		return types.ErrInsufficientStake.Wrapf("failed to take LP shares: %v", err)
	}

	newShares, err := acct.Shares.SafeAdd(shares)
	if err != nil {
		return types.ErrOverflow.Wrapf("overflow adding shares: %v", err)
	}
	acct.Shares = newShares
	if viaRouter {
		newRouterShares, err := acct.RouterShares.SafeAdd(shares)
		if err != nil {
			return types.ErrOverflow.Wrapf("overflow adding router shares: %v", err)
		}
		acct.RouterShares = newRouterShares
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	acct.LastStakeTime = sdkCtx.BlockTime().Unix()

	newTotal, err := pool.TotalShares.SafeAdd(shares)
	if err != nil {
		return types.ErrOverflow.Wrapf("overflow adding total shares: %v", err)
	}
	pool.TotalShares = newTotal

	if err := k.SetStakePool(ctx, pool); err != nil {
		return err
	}
	if err := k.SetStakeAccount(ctx, acct); err != nil {
		return err
	}

	event := sdk.NewEvent(
		types.EventTypeStaked,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyStaker, beneficiary.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	)
	if viaRouter {
		event = event.AppendAttributes(sdk.NewAttribute(types.AttributeKeyRouter, from.String()))
	}
	sdkCtx.EventManager().EmitEvent(event)

	return nil
}

// Withdraw returns staked LP shares to the staker. The pool's anti-dump
// delay must have elapsed since the staker's last stake.
func (k Keeper) Withdraw(ctx context.Context, staker sdk.AccAddress, poolID uint64, shares math.Int) error {
	if shares.IsNil() || !shares.IsPositive() {
		return types.ErrInvalidInput.Wrap("shares must be positive")
	}

	pool, err := k.GetStakePool(ctx, poolID)
	if err != nil {
		return err
	}

	acct, err := k.GetStakeAccount(ctx, poolID, staker)
	if err != nil {
		return err
	}

	if acct.Shares.IsZero() {
		return types.ErrNothingStaked.Wrapf("staker %s has no position in pool %d", staker, poolID)
	}
	if shares.GT(acct.Shares) {
		return types.ErrInsufficientStake.Wrapf("have %s, need %s", acct.Shares, shares)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	unlockAt := acct.LastStakeTime + pool.WithdrawDelaySeconds
	if now < unlockAt {
		return types.ErrWithdrawTooEarly.Wrapf("position unlocks at %d, now %d", unlockAt, now)
	}

	k.updateReward(ctx, pool, acct)

	acct.Shares = acct.Shares.Sub(shares)
	// Router-seeded shares leave first so tier progress cannot be kept by
	// cycling the freely staked remainder.
	if acct.RouterShares.GT(acct.Shares) {
		acct.RouterShares = acct.Shares
	}
	pool.TotalShares = pool.TotalShares.Sub(shares)

	if err := k.liquidityKeeper.TransferLiquidity(ctx, pool.LpPoolId, k.GetModuleAddress(), staker, shares); err != nil {
		return types.ErrInsufficientStake.Wrapf("failed to return LP shares: %v", err)
	}

	if err := k.SetStakePool(ctx, pool); err != nil {
		return err
	}
	if err := k.SetStakeAccount(ctx, acct); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawn,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return nil
}

// ClaimReward pays out all accrued streaming rewards to the staker.
func (k Keeper) ClaimReward(ctx context.Context, staker sdk.AccAddress, poolID uint64) (math.Int, error) {
	pool, err := k.GetStakePool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	acct, err := k.GetStakeAccount(ctx, poolID, staker)
	if err != nil {
		return math.ZeroInt(), err
	}

	k.updateReward(ctx, pool, acct)

	reward := acct.AccruedRewards
	if reward.IsZero() {
		return math.ZeroInt(), types.ErrNoReward.Wrapf("staker %s has no reward in pool %d", staker, poolID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coin := sdk.NewCoin(pool.RewardsDenom, reward)
	if err := k.bankKeeper.SendCoins(sdkCtx, k.GetModuleAddress(), staker, sdk.NewCoins(coin)); err != nil {
		return math.ZeroInt(), types.ErrInsufficientRewards.Wrapf("failed to pay reward: %v", err)
	}

	acct.AccruedRewards = math.ZeroInt()

	if err := k.SetStakePool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.SetStakeAccount(ctx, acct); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardClaimed,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
		),
	)

	return reward, nil
}

// Exit withdraws the staker's entire position and claims any accrued reward
// in one call. The withdraw delay applies to the share withdrawal.
func (k Keeper) Exit(ctx context.Context, staker sdk.AccAddress, poolID uint64) (math.Int, math.Int, error) {
	zero := math.ZeroInt()

	acct, err := k.GetStakeAccount(ctx, poolID, staker)
	if err != nil {
		return zero, zero, err
	}
	if acct.Shares.IsZero() {
		return zero, zero, types.ErrNothingStaked.Wrapf("staker %s has no position in pool %d", staker, poolID)
	}

	shares := acct.Shares
	if err := k.Withdraw(ctx, staker, poolID, shares); err != nil {
		return zero, zero, err
	}

	reward, err := k.ClaimReward(ctx, staker, poolID)
	if err != nil && !types.ErrNoReward.Is(err) {
		return zero, zero, err
	}
	if reward.IsNil() {
		reward = zero
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeExited,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
		),
	)

	return shares, reward, nil
}
