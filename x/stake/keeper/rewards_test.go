package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// TestRewards_LinearStreaming tests that rewards stream linearly over the period
func TestRewards_LinearStreaming(t *testing.T) {
	f, _, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))
	notify(t, f, poolID, 1_000)

	// 25% of the 100s period
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_025, 0))
	earned, err := f.Keeper.Earned(f.Ctx, poolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(250), earned)

	// 100%
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_100, 0))
	earned, err = f.Keeper.Earned(f.Ctx, poolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), earned)

	// Streaming stops at period finish
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(2_000, 0))
	earned, err = f.Keeper.Earned(f.Ctx, poolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), earned)
}

// TestRewards_SplitProRata tests that two stakers split the stream by share weight
func TestRewards_SplitProRata(t *testing.T) {
	f, lpPoolID, poolID, staker := setupStakeEnv(t)
	second := testAddr(2)

	// Give the second staker a quarter of the LP shares: 25/75 split
	require.NoError(t, f.Amm.TransferLiquidity(f.Ctx, lpPoolID, staker, second, math.NewInt(500_000)))

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(1_500_000)))
	require.NoError(t, f.Keeper.Stake(f.Ctx, second, poolID, math.NewInt(500_000)))
	notify(t, f, poolID, 1_000)

	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_100, 0))

	earnedFirst, err := f.Keeper.Earned(f.Ctx, poolID, staker)
	require.NoError(t, err)
	earnedSecond, err := f.Keeper.Earned(f.Ctx, poolID, second)
	require.NoError(t, err)

	require.Equal(t, math.NewInt(750), earnedFirst)
	require.Equal(t, math.NewInt(250), earnedSecond)
}

// TestRewards_EarnedByShare tests the hypothetical-position accumulator query
func TestRewards_EarnedByShare(t *testing.T) {
	f, _, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))
	notify(t, f, poolID, 1_000)

	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_050, 0))

	// rps after 50s at rate 10/s over 500k shares is 0.001 per share
	earned, err := f.Keeper.EarnedByShare(f.Ctx, poolID, math.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), earned)

	earned, err = f.Keeper.EarnedByShare(f.Ctx, poolID, math.ZeroInt())
	require.NoError(t, err)
	require.True(t, earned.IsZero())
}

// TestRewards_ClaimPaysOut tests that claiming transfers the reward and resets accrual
func TestRewards_ClaimPaysOut(t *testing.T) {
	f, _, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))
	notify(t, f, poolID, 1_000)

	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_050, 0))
	reward, err := f.Keeper.ClaimReward(f.Ctx, staker, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), reward)
	require.Equal(t, math.NewInt(500), f.Bank.GetBalance(f.Ctx, staker, "udai").Amount)

	// Nothing more to claim at the same instant
	_, err = f.Keeper.ClaimReward(f.Ctx, staker, poolID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no reward")

	// The stream keeps running afterwards
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_100, 0))
	reward, err = f.Keeper.ClaimReward(f.Ctx, staker, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), reward)
}

// TestRewards_NotifyRollsOverLeftover tests mid-period refunding
func TestRewards_NotifyRollsOverLeftover(t *testing.T) {
	f, _, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))
	notify(t, f, poolID, 1_000)

	// Halfway through, 500 is still unstreamed; adding 700 restarts a full
	// 100s period at rate (700+500)/100 = 12/s
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_050, 0))
	notify(t, f, poolID, 700)

	pool, err := f.Keeper.GetStakePool(f.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(12), pool.RewardRate)
	require.Equal(t, int64(1_150), pool.PeriodFinish)

	// Earned so far (500) plus the full new period (1200)
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_150, 0))
	earned, err := f.Keeper.Earned(f.Ctx, poolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_700), earned)
}

// TestRewards_OnlyDistributorMayNotify tests the rewards distribution gate
func TestRewards_OnlyDistributorMayNotify(t *testing.T) {
	f, lpPoolID, _, _ := setupStakeEnv(t)

	distributor := testAddr(9)
	pool, err := f.Keeper.CreateStakePool(f.Ctx, f.Authority, lpPoolID, "udai", 100, 0, distributor.String())
	require.NoError(t, err)

	outsider := testAddr(8)
	fund(t, f, outsider, sdk.NewCoin("udai", math.NewInt(1_000)))
	err = f.Keeper.NotifyRewardAmount(f.Ctx, outsider, pool.Id, math.NewInt(1_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "rewards distribution")

	fund(t, f, distributor, sdk.NewCoin("udai", math.NewInt(1_000)))
	require.NoError(t, f.Keeper.NotifyRewardAmount(f.Ctx, distributor, pool.Id, math.NewInt(1_000)))
}

// TestRewards_SetRewardsDistribution tests changing the distributor via authority
func TestRewards_SetRewardsDistribution(t *testing.T) {
	f, _, poolID, _ := setupStakeEnv(t)
	distributor := testAddr(9)

	err := f.Keeper.SetRewardsDistribution(f.Ctx, testAddr(1).String(), poolID, distributor)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid authority")

	require.NoError(t, f.Keeper.SetRewardsDistribution(f.Ctx, f.Authority, poolID, distributor))

	pool, err := f.Keeper.GetStakePool(f.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, distributor.String(), pool.RewardsDistribution)
}

// TestRewards_NoStakeNoAccrual tests that the accumulator halts with zero stake
func TestRewards_NoStakeNoAccrual(t *testing.T) {
	f, _, poolID, staker := setupStakeEnv(t)

	notify(t, f, poolID, 1_000)

	// Nobody staked for the first 50 seconds; those rewards are not assigned
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_050, 0))
	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))

	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_100, 0))
	earned, err := f.Keeper.Earned(f.Ctx, poolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), earned)
}
