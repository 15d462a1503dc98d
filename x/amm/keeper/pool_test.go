package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fetch-protocol/fetch/testutil/keeper"
	"github.com/fetch-protocol/fetch/x/amm/keeper"
)

// Helper functions shared across amm keeper tests

func testAddr(index int) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, []byte("test_amm_account_"))
	addr[19] = byte(index)
	return sdk.AccAddress(addr)
}

func newFundedAccount(t *testing.T, bk bankkeeper.Keeper, ctx sdk.Context, index int, coins ...sdk.Coin) sdk.AccAddress {
	addr := testAddr(index)
	keepertest.FundAccount(t, bk, ctx, addr, sdk.NewCoins(coins...))
	return addr
}

func setupPool(t *testing.T, k keeper.Keeper, bk bankkeeper.Keeper, ctx sdk.Context) (uint64, sdk.AccAddress) {
	creator := newFundedAccount(t, bk, ctx, 1,
		sdk.NewCoin("ubnb", math.NewInt(10_000_000)),
		sdk.NewCoin("ufet", math.NewInt(10_000_000)),
	)
	pool, err := k.CreatePool(ctx, creator, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)
	return pool.Id, creator
}

// TestCreatePool_Valid tests successful pool creation
func TestCreatePool_Valid(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	creator := newFundedAccount(t, bk, ctx, 1,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)

	pool, err := k.CreatePool(ctx, creator, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)
	require.NotNil(t, pool)
	require.Greater(t, pool.Id, uint64(0))
	require.Equal(t, "ubnb", pool.TokenA)
	require.Equal(t, "ufet", pool.TokenB)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(4_000_000), pool.ReserveB)
	// Geometric mean of 1e6 and 4e6 is 2e6
	require.Equal(t, math.NewInt(2_000_000), pool.TotalShares)
	require.Equal(t, creator.String(), pool.Creator)

	// Creator holds the full initial position
	shares, err := k.GetLiquidity(ctx, pool.Id, creator)
	require.NoError(t, err)
	require.Equal(t, pool.TotalShares, shares)

	// Tokens moved to the module account
	require.True(t, bk.GetBalance(ctx, creator, "ubnb").Amount.IsZero())
	require.True(t, bk.GetBalance(ctx, creator, "ufet").Amount.IsZero())
}

// TestCreatePool_OrdersTokens tests lexicographic ordering of the pair
func TestCreatePool_OrdersTokens(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	creator := newFundedAccount(t, bk, ctx, 1,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)

	// Pass the pair in reverse order; the pool must store ubnb < ufet
	pool, err := k.CreatePool(ctx, creator, "ufet", "ubnb", math.NewInt(4_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, "ubnb", pool.TokenA)
	require.Equal(t, "ufet", pool.TokenB)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(4_000_000), pool.ReserveB)

	// Lookup works regardless of argument order
	found, err := k.GetPoolByTokens(ctx, "ufet", "ubnb")
	require.NoError(t, err)
	require.Equal(t, pool.Id, found.Id)
}

// TestCreatePool_DuplicateTokenPair tests rejection of duplicate pools
func TestCreatePool_DuplicateTokenPair(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	creator := newFundedAccount(t, bk, ctx, 1,
		sdk.NewCoin("ubnb", math.NewInt(10_000_000)),
		sdk.NewCoin("ufet", math.NewInt(10_000_000)),
	)

	_, err := k.CreatePool(ctx, creator, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	_, err = k.CreatePool(ctx, creator, "ufet", "ubnb", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

// TestCreatePool_SameToken tests rejection of pools with identical tokens
func TestCreatePool_SameToken(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, err := k.CreatePool(ctx, testAddr(1), "ubnb", "ubnb", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "identical tokens")
}

// TestCreatePool_ZeroAmount tests rejection of zero initial liquidity
func TestCreatePool_ZeroAmount(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, err := k.CreatePool(ctx, testAddr(1), "ubnb", "ufet", math.NewInt(0), math.NewInt(1_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")

	_, err = k.CreatePool(ctx, testAddr(1), "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(0))
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")
}

// TestCreatePool_BelowMinimumLiquidity tests rejection of dust pools
func TestCreatePool_BelowMinimumLiquidity(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	creator := newFundedAccount(t, bk, ctx, 1,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(1_000_000)),
	)

	// Default MinLiquidity is 1000 per token
	_, err := k.CreatePool(ctx, creator, "ubnb", "ufet", math.NewInt(10), math.NewInt(1_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "minimum")
}

// TestCreatePool_InsufficientBalance tests that the transfer failure aborts creation
func TestCreatePool_InsufficientBalance(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	// Unfunded creator
	_, err := k.CreatePool(ctx, testAddr(9), "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.Error(t, err)

	// No pool state left behind
	_, err = k.GetPoolByTokens(ctx, "ubnb", "ufet")
	require.Error(t, err)
}

// TestGetPool_NotFound tests the not-found error path
func TestGetPool_NotFound(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, err := k.GetPool(ctx, 42)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

// TestGetPoolInfo tests the cross-module pool snapshot
func TestGetPoolInfo(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, _ := setupPool(t, k, bk, ctx)

	info, found := k.GetPoolInfo(ctx, "ufet", "ubnb")
	require.True(t, found)
	require.Equal(t, poolID, info.PoolID)
	require.Equal(t, "ubnb", info.TokenA)
	require.Equal(t, math.NewInt(1_000_000), info.ReserveA)
	require.Equal(t, math.NewInt(4_000_000), info.ReserveB)

	_, found = k.GetPoolInfo(ctx, "ubnb", "udai")
	require.False(t, found)
}

// TestPoolIDsIncrement tests that pool IDs are sequential
func TestPoolIDsIncrement(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	creator := newFundedAccount(t, bk, ctx, 1,
		sdk.NewCoin("ubnb", math.NewInt(10_000_000)),
		sdk.NewCoin("ufet", math.NewInt(10_000_000)),
		sdk.NewCoin("udai", math.NewInt(10_000_000)),
	)

	first, err := k.CreatePool(ctx, creator, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	second, err := k.CreatePool(ctx, creator, "ubnb", "udai", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	require.Equal(t, first.Id+1, second.Id)
}

// TestShareSupplyInvariant tests that position sums always match pool total shares
func TestShareSupplyInvariant(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, _ := setupPool(t, k, bk, ctx)

	provider := newFundedAccount(t, bk, ctx, 2,
		sdk.NewCoin("ubnb", math.NewInt(500_000)),
		sdk.NewCoin("ufet", math.NewInt(2_000_000)),
	)
	_, _, _, err := k.AddLiquidity(ctx, provider, poolID, math.NewInt(500_000), math.NewInt(2_000_000))
	require.NoError(t, err)

	require.NoError(t, k.CheckShareSupplyInvariant(ctx, poolID))
	require.NoError(t, k.CheckReserveInvariant(ctx))
}
