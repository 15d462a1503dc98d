package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/stake/types"
)

// lastTimeRewardApplicable caps the accrual clock at the end of the reward period.
func lastTimeRewardApplicable(pool *types.StakePool, now int64) int64 {
	if now < pool.PeriodFinish {
		return now
	}
	return pool.PeriodFinish
}

// rewardPerShare returns the accumulated reward per staked share up to now.
// With no stake the accumulator does not advance; rewards streamed over an
// empty pool stay in the module account.
func rewardPerShare(pool *types.StakePool, now int64) math.LegacyDec {
	if pool.TotalShares.IsZero() {
		return pool.RewardPerShareStored
	}

	elapsed := lastTimeRewardApplicable(pool, now) - pool.LastUpdateTime
	if elapsed <= 0 {
		return pool.RewardPerShareStored
	}

	accrued := pool.RewardRate.MulInt64(elapsed).QuoInt(pool.TotalShares)
	return pool.RewardPerShareStored.Add(accrued)
}

// earned returns the total claimable reward for a position at the given time.
func earned(pool *types.StakePool, acct *types.StakeAccount, now int64) math.Int {
	rps := rewardPerShare(pool, now)
	pending := rps.Sub(acct.RewardPerSharePaid).MulInt(acct.Shares).TruncateInt()
	return acct.AccruedRewards.Add(pending)
}

// updateReward settles the pool accumulator and, when acct is non-nil, folds
// the position's pending stream into its accrued balance. Every mutation of
// stake state must run through here first.
func (k Keeper) updateReward(ctx context.Context, pool *types.StakePool, acct *types.StakeAccount) {
	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()

	pool.RewardPerShareStored = rewardPerShare(pool, now)
	pool.LastUpdateTime = lastTimeRewardApplicable(pool, now)

	if acct != nil {
		acct.AccruedRewards = earned(pool, acct, now)
		acct.RewardPerSharePaid = pool.RewardPerShareStored
	}
}

// Earned returns the currently claimable reward for a staker.
func (k Keeper) Earned(ctx context.Context, poolID uint64, staker sdk.AccAddress) (math.Int, error) {
	pool, err := k.GetStakePool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	acct, err := k.GetStakeAccount(ctx, poolID, staker)
	if err != nil {
		return math.ZeroInt(), err
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	return earned(pool, acct, now), nil
}

// EarnedByShare returns the reward a hypothetical position of the given size
// would have accumulated over the pool's whole streaming history.
func (k Keeper) EarnedByShare(ctx context.Context, poolID uint64, shares math.Int) (math.Int, error) {
	if shares.IsNil() || shares.IsNegative() {
		return math.ZeroInt(), types.ErrInvalidInput.Wrap("shares cannot be negative")
	}

	pool, err := k.GetStakePool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	return rewardPerShare(pool, now).MulInt(shares).TruncateInt(), nil
}

// NotifyRewardAmount starts a new reward period. The caller transfers the
// reward tokens into the module account; any stream left over from an
// unfinished period is rolled into the new rate.
func (k Keeper) NotifyRewardAmount(ctx context.Context, sender sdk.AccAddress, poolID uint64, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidInput.Wrap("reward amount must be positive")
	}

	pool, err := k.GetStakePool(ctx, poolID)
	if err != nil {
		return err
	}

	if pool.RewardsDistribution != "" && pool.RewardsDistribution != sender.String() {
		return types.ErrUnauthorized.Wrapf(
			"only the rewards distribution address %s may notify rewards", pool.RewardsDistribution)
	}

	k.updateReward(ctx, pool, nil)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	coin := sdk.NewCoin(pool.RewardsDenom, amount)
	if err := k.bankKeeper.SendCoins(sdkCtx, sender, k.GetModuleAddress(), sdk.NewCoins(coin)); err != nil {
		return types.ErrInsufficientRewards.Wrapf("failed to fund reward period: %v", err)
	}

	rewardDec := math.LegacyNewDecFromInt(amount)
	if now >= pool.PeriodFinish {
		pool.RewardRate = rewardDec.QuoInt64(pool.DurationSeconds)
	} else {
		remaining := pool.PeriodFinish - now
		leftover := pool.RewardRate.MulInt64(remaining)
		pool.RewardRate = rewardDec.Add(leftover).QuoInt64(pool.DurationSeconds)
	}

	pool.LastUpdateTime = now
	pool.PeriodFinish = now + pool.DurationSeconds

	if err := k.SetStakePool(ctx, pool); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardNotified,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyReward, amount.String()),
			sdk.NewAttribute(types.AttributeKeyRate, pool.RewardRate.String()),
		),
	)

	return nil
}

// SetRewardsDistribution changes the address allowed to fund reward periods.
// Only the module authority may call this.
func (k Keeper) SetRewardsDistribution(ctx context.Context, authority string, poolID uint64, distributor sdk.AccAddress) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf(
			"invalid authority; expected %s, got %s", k.authority, authority)
	}

	pool, err := k.GetStakePool(ctx, poolID)
	if err != nil {
		return err
	}

	pool.RewardsDistribution = distributor.String()
	if err := k.SetStakePool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDistribution,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyDistributor, distributor.String()),
		),
	)

	return nil
}
