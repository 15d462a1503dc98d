package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fetch-protocol/fetch/testutil/keeper"
	staketypes "github.com/fetch-protocol/fetch/x/stake/types"
)

// Helper functions shared across stake keeper tests

func testAddr(index int) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, []byte("test_stake_account_"))
	addr[19] = byte(index)
	return sdk.AccAddress(addr)
}

func fund(t *testing.T, f keepertest.StakeFixture, addr sdk.AccAddress, coins ...sdk.Coin) {
	require.NoError(t, f.Bank.MintCoins(f.Ctx, minttypes.ModuleName, sdk.NewCoins(coins...)))
	require.NoError(t, f.Bank.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, sdk.NewCoins(coins...)))
}

// setupStakeEnv creates an amm pool whose creator holds 2M LP shares, and a
// stake pool over it with a 100s reward period and no withdraw delay.
func setupStakeEnv(t *testing.T) (keepertest.StakeFixture, uint64, uint64, sdk.AccAddress) {
	f := keepertest.StakeKeeper(t)
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_000, 0))

	staker := testAddr(1)
	fund(t, f, staker,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)

	lpPool, err := f.Amm.CreatePool(f.Ctx, staker, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	// Zero delay so withdraw tests control timing explicitly
	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	params.DefaultWithdrawDelaySeconds = 0
	require.NoError(t, f.Keeper.SetParams(f.Ctx, params))

	pool, err := f.Keeper.CreateStakePool(f.Ctx, f.Authority, lpPool.Id, "udai", 100, 0, "")
	require.NoError(t, err)

	return f, lpPool.Id, pool.Id, staker
}

// notify funds the distributor and starts a reward period.
func notify(t *testing.T, f keepertest.StakeFixture, poolID uint64, amount int64) sdk.AccAddress {
	distributor := testAddr(9)
	fund(t, f, distributor, sdk.NewCoin("udai", math.NewInt(amount)))
	require.NoError(t, f.Keeper.NotifyRewardAmount(f.Ctx, distributor, poolID, math.NewInt(amount)))
	return distributor
}

// TestCreateStakePool_Valid tests stake pool creation by the authority
func TestCreateStakePool_Valid(t *testing.T) {
	f := keepertest.StakeKeeper(t)

	pool, err := f.Keeper.CreateStakePool(f.Ctx, f.Authority, 1, "udai", 100, 50, "")
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.Id)
	require.Equal(t, uint64(1), pool.LpPoolId)
	require.Equal(t, "udai", pool.RewardsDenom)
	require.Equal(t, int64(100), pool.DurationSeconds)
	require.Equal(t, int64(50), pool.WithdrawDelaySeconds)
	require.True(t, pool.TotalShares.IsZero())
	require.True(t, pool.RewardRate.IsZero())
}

// TestCreateStakePool_Unauthorized tests rejection of a non-authority creator
func TestCreateStakePool_Unauthorized(t *testing.T) {
	f := keepertest.StakeKeeper(t)

	_, err := f.Keeper.CreateStakePool(f.Ctx, testAddr(1).String(), 1, "udai", 100, 0, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid authority")
}

// TestCreateStakePool_DefaultsApplied tests that zero duration and delay use params
func TestCreateStakePool_DefaultsApplied(t *testing.T) {
	f := keepertest.StakeKeeper(t)

	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)

	pool, err := f.Keeper.CreateStakePool(f.Ctx, f.Authority, 1, "udai", 0, 0, "")
	require.NoError(t, err)
	require.Equal(t, params.DefaultDurationSeconds, pool.DurationSeconds)
	require.Equal(t, params.DefaultWithdrawDelaySeconds, pool.WithdrawDelaySeconds)
}

// TestStake_Valid tests direct staking of LP shares
func TestStake_Valid(t *testing.T) {
	f, lpPoolID, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))

	pool, err := f.Keeper.GetStakePool(f.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), pool.TotalShares)

	acct, err := f.Keeper.GetStakeAccount(f.Ctx, poolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), acct.Shares)
	require.True(t, acct.RouterShares.IsZero(), "direct stakes must not count toward NFT tiers")

	// LP custody moved to the stake module's amm position
	moduleShares, err := f.Amm.GetLiquidity(f.Ctx, lpPoolID, f.Keeper.GetModuleAddress())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), moduleShares)

	stakerShares, err := f.Amm.GetLiquidity(f.Ctx, lpPoolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_500_000), stakerShares)
}

// TestStake_InsufficientLpShares tests rejection when the staker lacks LP shares
func TestStake_InsufficientLpShares(t *testing.T) {
	f, _, poolID, staker := setupStakeEnv(t)

	err := f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(5_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to take LP shares")
}

// TestStakeFor_RequiresWhitelist tests that only whitelisted routers can StakeFor
func TestStakeFor_RequiresWhitelist(t *testing.T) {
	f, lpPoolID, poolID, staker := setupStakeEnv(t)
	router := testAddr(2)
	beneficiary := testAddr(3)

	// Move some LP shares to the router first
	require.NoError(t, f.Amm.TransferLiquidity(f.Ctx, lpPoolID, staker, router, math.NewInt(1_500_000)))

	err := f.Keeper.StakeFor(f.Ctx, router, poolID, beneficiary, math.NewInt(1_500_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not whitelisted")

	require.NoError(t, f.Keeper.SetWhitelist(f.Ctx, f.Authority, router, true))
	require.NoError(t, f.Keeper.StakeFor(f.Ctx, router, poolID, beneficiary, math.NewInt(1_500_000)))

	acct, err := f.Keeper.GetStakeAccount(f.Ctx, poolID, beneficiary)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_500_000), acct.Shares)
	require.Equal(t, math.NewInt(1_500_000), acct.RouterShares)
}

// TestSetWhitelist_Unauthorized tests that only the authority can change the whitelist
func TestSetWhitelist_Unauthorized(t *testing.T) {
	f := keepertest.StakeKeeper(t)

	err := f.Keeper.SetWhitelist(f.Ctx, testAddr(1).String(), testAddr(2), true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid authority")
}

// TestWithdraw_Valid tests withdrawing staked shares after the delay
func TestWithdraw_Valid(t *testing.T) {
	f, lpPoolID, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))
	require.NoError(t, f.Keeper.Withdraw(f.Ctx, staker, poolID, math.NewInt(200_000)))

	acct, err := f.Keeper.GetStakeAccount(f.Ctx, poolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(300_000), acct.Shares)

	stakerShares, err := f.Amm.GetLiquidity(f.Ctx, lpPoolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_700_000), stakerShares)
}

// TestWithdraw_AntiDumpDelay tests that the withdraw delay is enforced
func TestWithdraw_AntiDumpDelay(t *testing.T) {
	f := keepertest.StakeKeeper(t)
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_000, 0))

	staker := testAddr(1)
	fund(t, f, staker,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)
	lpPool, err := f.Amm.CreatePool(f.Ctx, staker, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	// One hour anti-dump delay
	pool, err := f.Keeper.CreateStakePool(f.Ctx, f.Authority, lpPool.Id, "udai", 100, 3_600, "")
	require.NoError(t, err)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, pool.Id, math.NewInt(500_000)))

	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_100, 0))
	err = f.Keeper.Withdraw(f.Ctx, staker, pool.Id, math.NewInt(500_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unlocks at")

	f.Ctx = f.Ctx.WithBlockTime(time.Unix(4_700, 0))
	require.NoError(t, f.Keeper.Withdraw(f.Ctx, staker, pool.Id, math.NewInt(500_000)))
}

// TestWithdraw_DelayResetsOnRestake tests that a new stake restarts the delay clock
func TestWithdraw_DelayResetsOnRestake(t *testing.T) {
	f := keepertest.StakeKeeper(t)
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_000, 0))

	staker := testAddr(1)
	fund(t, f, staker,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)
	lpPool, err := f.Amm.CreatePool(f.Ctx, staker, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	pool, err := f.Keeper.CreateStakePool(f.Ctx, f.Authority, lpPool.Id, "udai", 100, 3_600, "")
	require.NoError(t, err)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, pool.Id, math.NewInt(100_000)))

	// A second stake just before the first unlock pushes the clock forward
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(4_500, 0))
	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, pool.Id, math.NewInt(100_000)))

	f.Ctx = f.Ctx.WithBlockTime(time.Unix(4_700, 0))
	err = f.Keeper.Withdraw(f.Ctx, staker, pool.Id, math.NewInt(200_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unlocks at")
}

// TestWithdraw_MoreThanStaked tests rejection of over-withdrawal
func TestWithdraw_MoreThanStaked(t *testing.T) {
	f, _, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(100_000)))

	err := f.Keeper.Withdraw(f.Ctx, staker, poolID, math.NewInt(200_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "have")
}

// TestExit_WithdrawsAllAndClaims tests the combined exit path
func TestExit_WithdrawsAllAndClaims(t *testing.T) {
	f, lpPoolID, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))
	notify(t, f, poolID, 1_000)

	// Half the 100s period passes: 500 udai accrued
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_050, 0))

	shares, reward, err := f.Keeper.Exit(f.Ctx, staker, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), shares)
	require.Equal(t, math.NewInt(500), reward)

	// Everything returned: LP shares back, reward paid, position gone
	stakerShares, err := f.Amm.GetLiquidity(f.Ctx, lpPoolID, staker)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_000_000), stakerShares)
	require.Equal(t, math.NewInt(500), f.Bank.GetBalance(f.Ctx, staker, "udai").Amount)

	acct, err := f.Keeper.GetStakeAccount(f.Ctx, poolID, staker)
	require.NoError(t, err)
	require.True(t, acct.Shares.IsZero())
	require.True(t, acct.AccruedRewards.IsZero())
}

// TestExit_ZeroBalanceAccountPersists tests that a fully exited position
// stays in the store as a zero-balance record
func TestExit_ZeroBalanceAccountPersists(t *testing.T) {
	f, _, poolID, staker := setupStakeEnv(t)

	require.NoError(t, f.Keeper.Stake(f.Ctx, staker, poolID, math.NewInt(500_000)))

	_, _, err := f.Keeper.Exit(f.Ctx, staker, poolID)
	require.NoError(t, err)

	found := false
	require.NoError(t, f.Keeper.IterateStakeAccounts(f.Ctx, poolID, func(acct staketypes.StakeAccount) bool {
		if acct.Staker == staker.String() {
			found = true
			require.True(t, acct.Shares.IsZero())
			require.True(t, acct.AccruedRewards.IsZero())
		}
		return false
	}))
	require.True(t, found, "exited account must persist with zero balances")
}

// TestExit_NothingStaked tests rejection when there is no position
func TestExit_NothingStaked(t *testing.T) {
	f, _, poolID, _ := setupStakeEnv(t)

	_, _, err := f.Keeper.Exit(f.Ctx, testAddr(8), poolID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no position")
}
