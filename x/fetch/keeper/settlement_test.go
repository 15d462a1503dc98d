package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fetch-protocol/fetch/testutil/keeper"
)

// Helper functions shared across fetch keeper tests

func testAddr(index int) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, []byte("test_fetch_account_"))
	addr[19] = byte(index)
	return sdk.AccAddress(addr)
}

func fund(t *testing.T, f keepertest.FetchFixture, addr sdk.AccAddress, coins ...sdk.Coin) {
	require.NoError(t, f.Bank.MintCoins(f.Ctx, minttypes.ModuleName, sdk.NewCoins(coins...)))
	require.NoError(t, f.Bank.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, sdk.NewCoins(coins...)))
}

// setupFetchEnv builds the full settlement environment: a 10M ubnb / 40M
// ufet amm pool (20M LP shares), a stake pool over it, the router
// whitelisted, a funded sale reserve with a beneficiary, and the router
// pointed at the stake pool.
func setupFetchEnv(t *testing.T) (keepertest.FetchFixture, uint64, uint64) {
	f := keepertest.FetchKeeper(t)
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(1_000, 0))

	creator := testAddr(1)
	fund(t, f, creator,
		sdk.NewCoin("ubnb", math.NewInt(10_000_000)),
		sdk.NewCoin("ufet", math.NewInt(40_000_000)),
	)
	lpPool, err := f.Amm.CreatePool(f.Ctx, creator, "ubnb", "ufet", math.NewInt(10_000_000), math.NewInt(40_000_000))
	require.NoError(t, err)

	stakePool, err := f.Stake.CreateStakePool(f.Ctx, f.Authority, lpPool.Id, "udai", 100, 0, "")
	require.NoError(t, err)

	require.NoError(t, f.Stake.SetWhitelist(f.Ctx, f.Authority, f.Keeper.GetModuleAddress(), true))
	require.NoError(t, f.Keeper.SetStakePool(f.Ctx, f.Authority, stakePool.Id))

	funder := testAddr(2)
	fund(t, f, funder, sdk.NewCoin("ufet", math.NewInt(10_000_000)))
	require.NoError(t, f.Sale.FundReserve(f.Ctx, funder, math.NewInt(10_000_000)))
	require.NoError(t, f.Sale.UpdateBeneficiary(f.Ctx, f.Authority, testAddr(7).String()))

	return f, lpPool.Id, stakePool.Id
}

// requireZeroResidue asserts the router module account ends a settlement
// with no bank balances and no LP shares.
func requireZeroResidue(t *testing.T, f keepertest.FetchFixture, lpPoolID uint64) {
	t.Helper()
	moduleAddr := f.Keeper.GetModuleAddress()
	require.True(t, f.Bank.GetAllBalances(f.Ctx, moduleAddr).IsZero(), "router holds residual balances")
	shares, err := f.Amm.GetLiquidity(f.Ctx, lpPoolID, moduleAddr)
	require.NoError(t, err)
	require.True(t, shares.IsZero(), "router holds residual LP shares")
}

// TestDepositPair_SplitsNineToOne tests the default 10 percent burn split
func TestDepositPair_SplitsNineToOne(t *testing.T) {
	f, lpPoolID, stakePoolID := setupFetchEnv(t)

	depositor := testAddr(3)
	fund(t, f, depositor,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)

	// Exact pool ratio: 1M ubnb / 4M ufet against 10M/40M mints 2M shares
	staked, burned, err := f.Keeper.DepositPair(f.Ctx, depositor, math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_800_000), staked)
	require.Equal(t, math.NewInt(200_000), burned)

	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	burnAddr, err := sdk.AccAddressFromBech32(params.BurnAddress)
	require.NoError(t, err)

	burnShares, err := f.Amm.GetLiquidity(f.Ctx, lpPoolID, burnAddr)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200_000), burnShares)

	acct, err := f.Stake.GetStakeAccount(f.Ctx, stakePoolID, depositor)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_800_000), acct.Shares)
	require.Equal(t, math.NewInt(1_800_000), acct.RouterShares, "router deposits must seed NFT eligibility")

	requireZeroResidue(t, f, lpPoolID)
}

// TestDepositPair_BurnPercentFive tests the 19:1 split at 5 percent burn
func TestDepositPair_BurnPercentFive(t *testing.T) {
	f, lpPoolID, _ := setupFetchEnv(t)

	require.NoError(t, f.Keeper.SetBurnPercent(f.Ctx, f.Authority, 5))

	depositor := testAddr(3)
	fund(t, f, depositor,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)

	staked, burned, err := f.Keeper.DepositPair(f.Ctx, depositor, math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_900_000), staked)
	require.Equal(t, math.NewInt(100_000), burned)

	requireZeroResidue(t, f, lpPoolID)
}

// TestDepositPair_RefundsDust tests that ratio-mismatch leftovers return to
// the depositor
func TestDepositPair_RefundsDust(t *testing.T) {
	f, lpPoolID, _ := setupFetchEnv(t)

	depositor := testAddr(3)
	fund(t, f, depositor,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(5_000_000)),
	)

	// 1M ufet beyond the 4:1 pool ratio must come back
	_, _, err := f.Keeper.DepositPair(f.Ctx, depositor, math.NewInt(1_000_000), math.NewInt(5_000_000))
	require.NoError(t, err)

	require.Equal(t, math.NewInt(1_000_000), f.Bank.GetBalance(f.Ctx, depositor, "ufet").Amount)
	requireZeroResidue(t, f, lpPoolID)
}

// TestDepositPair_InsufficientTokenLeg tests failure before any amm interaction
func TestDepositPair_InsufficientTokenLeg(t *testing.T) {
	f, _, _ := setupFetchEnv(t)

	depositor := testAddr(3)
	fund(t, f, depositor, sdk.NewCoin("ubnb", math.NewInt(1_000_000)))

	// Run under a cache context, the way the tx runtime does: the failed
	// settlement's partial writes are discarded instead of committed
	cacheCtx, _ := f.Ctx.CacheContext()
	_, _, err := f.Keeper.DepositPair(cacheCtx, depositor, math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to pull deposit legs")

	// Nothing moved on the committed state
	require.Equal(t, math.NewInt(1_000_000), f.Bank.GetBalance(f.Ctx, depositor, "ubnb").Amount)
}

// TestDeposit_SingleSided tests the full conversion path: sale leg, swap
// leg, provision, split, refund, zero residue
func TestDeposit_SingleSided(t *testing.T) {
	f, lpPoolID, stakePoolID := setupFetchEnv(t)

	// Fixed formula: half the conversion budget routes through the sale
	require.NoError(t, f.Keeper.SetSplitFormula(f.Ctx, f.Authority, "fixed"))

	depositor := testAddr(3)
	fund(t, f, depositor, sdk.NewCoin("ubnb", math.NewInt(1_000_000)))

	staked, burned, err := f.Keeper.Deposit(f.Ctx, depositor, math.NewInt(1_000_000))
	require.NoError(t, err)
	require.True(t, staked.IsPositive())
	require.True(t, burned.IsPositive())

	// Exactly one tenth of the minted shares burned
	total := staked.Add(burned)
	require.Equal(t, total.MulRaw(10).QuoRaw(100), burned)

	// Sale leg spent 250k ubnb: 20 percent accumulated for deepening, the
	// rest went to the beneficiary
	require.Equal(t, math.NewInt(50_000), f.Bank.GetBalance(f.Ctx, f.Sale.GetLdAddress(), "ubnb").Amount)
	require.Equal(t, math.NewInt(200_000), f.Bank.GetBalance(f.Ctx, testAddr(7), "ubnb").Amount)

	// Deposit landed in the stake ledger under the depositor
	acct, err := f.Stake.GetStakeAccount(f.Ctx, stakePoolID, depositor)
	require.NoError(t, err)
	require.Equal(t, staked, acct.Shares)
	require.Equal(t, staked, acct.RouterShares)

	requireZeroResidue(t, f, lpPoolID)
}

// TestDeposit_SalePausedFailsWhole tests all-or-nothing settlement: a
// paused sale fails the entire deposit
func TestDeposit_SalePausedFailsWhole(t *testing.T) {
	f, _, _ := setupFetchEnv(t)

	require.NoError(t, f.Keeper.SetSplitFormula(f.Ctx, f.Authority, "fixed"))
	require.NoError(t, f.Sale.PauseSale(f.Ctx, f.Authority))

	depositor := testAddr(3)
	fund(t, f, depositor, sdk.NewCoin("ubnb", math.NewInt(1_000_000)))

	_, _, err := f.Keeper.Deposit(f.Ctx, depositor, math.NewInt(1_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "sale leg")
}

// TestDeposit_NoStakePool tests rejection when no stake pool is configured
func TestDeposit_NoStakePool(t *testing.T) {
	f := keepertest.FetchKeeper(t)

	depositor := testAddr(3)
	fund(t, f, depositor, sdk.NewCoin("ubnb", math.NewInt(1_000_000)))

	_, _, err := f.Keeper.Deposit(f.Ctx, depositor, math.NewInt(1_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no stake pool")
}

// TestDeposit_RouterNotWhitelisted tests that settlement fails when the
// stake module does not trust the router
func TestDeposit_RouterNotWhitelisted(t *testing.T) {
	f, _, _ := setupFetchEnv(t)

	require.NoError(t, f.Stake.SetWhitelist(f.Ctx, f.Authority, f.Keeper.GetModuleAddress(), false))

	depositor := testAddr(3)
	fund(t, f, depositor,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)

	_, _, err := f.Keeper.DepositPair(f.Ctx, depositor, math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not whitelisted")
}

// TestDeposit_SeedsNftEligibility tests the end-to-end tier claim after a
// router deposit
func TestDeposit_SeedsNftEligibility(t *testing.T) {
	f, _, stakePoolID := setupFetchEnv(t)

	depositor := testAddr(3)
	fund(t, f, depositor,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)

	_, _, err := f.Keeper.DepositPair(f.Ctx, depositor, math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	// 1.8M router-seeded shares clear the 1M threshold of tier 0
	require.NoError(t, f.Stake.ClaimNFT(f.Ctx, depositor, stakePoolID, 0))
	require.Len(t, f.Nft.Minted, 1)
	require.Equal(t, depositor.String(), f.Nft.Minted[0].Recipient.String())
}
