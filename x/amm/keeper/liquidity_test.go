package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fetch-protocol/fetch/testutil/keeper"
)

// TestAddLiquidity_Proportional tests a proportional second deposit
func TestAddLiquidity_Proportional(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, _ := setupPool(t, k, bk, ctx)

	provider := newFundedAccount(t, bk, ctx, 2,
		sdk.NewCoin("ubnb", math.NewInt(500_000)),
		sdk.NewCoin("ufet", math.NewInt(2_000_000)),
	)

	// Pool is 1M/4M with 2M shares; adding half the reserves mints 1M shares
	shares, usedA, usedB, err := k.AddLiquidity(ctx, provider, poolID, math.NewInt(500_000), math.NewInt(2_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), shares)
	require.Equal(t, math.NewInt(500_000), usedA)
	require.Equal(t, math.NewInt(2_000_000), usedB)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_500_000), pool.ReserveA)
	require.Equal(t, math.NewInt(6_000_000), pool.ReserveB)
	require.Equal(t, math.NewInt(3_000_000), pool.TotalShares)
}

// TestAddLiquidity_ExcessNotTaken tests that amounts beyond the pool ratio stay with the provider
func TestAddLiquidity_ExcessNotTaken(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, _ := setupPool(t, k, bk, ctx)

	provider := newFundedAccount(t, bk, ctx, 2,
		sdk.NewCoin("ubnb", math.NewInt(500_000)),
		sdk.NewCoin("ufet", math.NewInt(3_000_000)),
	)

	// Pool ratio needs only 2M ufet against 500k ubnb; the extra 1M is not pulled
	shares, usedA, usedB, err := k.AddLiquidity(ctx, provider, poolID, math.NewInt(500_000), math.NewInt(3_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), shares)
	require.Equal(t, math.NewInt(500_000), usedA)
	require.Equal(t, math.NewInt(2_000_000), usedB)

	require.Equal(t, math.NewInt(1_000_000), bk.GetBalance(ctx, provider, "ufet").Amount)
	require.True(t, bk.GetBalance(ctx, provider, "ubnb").Amount.IsZero())
}

// TestAddLiquidity_ZeroAmounts tests rejection of zero amounts
func TestAddLiquidity_ZeroAmounts(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, _ := setupPool(t, k, bk, ctx)

	_, _, _, err := k.AddLiquidity(ctx, testAddr(2), poolID, math.NewInt(0), math.NewInt(1000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")
}

// TestAddLiquidity_PoolNotFound tests the missing-pool error path
func TestAddLiquidity_PoolNotFound(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, _, _, err := k.AddLiquidity(ctx, testAddr(2), 99, math.NewInt(1000), math.NewInt(1000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

// TestRemoveLiquidity_ProRata tests a pro-rata withdrawal
func TestRemoveLiquidity_ProRata(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, creator := setupPool(t, k, bk, ctx)

	// Withdraw a quarter of the 2M total shares
	amountA, amountB, err := k.RemoveLiquidity(ctx, creator, poolID, math.NewInt(500_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(250_000), amountA)
	require.Equal(t, math.NewInt(1_000_000), amountB)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(750_000), pool.ReserveA)
	require.Equal(t, math.NewInt(3_000_000), pool.ReserveB)
	require.Equal(t, math.NewInt(1_500_000), pool.TotalShares)

	shares, err := k.GetLiquidity(ctx, poolID, creator)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_500_000), shares)
}

// TestRemoveLiquidity_MoreThanOwned tests rejection when shares exceed the position
func TestRemoveLiquidity_MoreThanOwned(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, creator := setupPool(t, k, bk, ctx)

	_, _, err := k.RemoveLiquidity(ctx, creator, poolID, math.NewInt(3_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "have")
}

// TestRemoveLiquidity_ZeroShares tests rejection of a zero-share withdrawal
func TestRemoveLiquidity_ZeroShares(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, creator := setupPool(t, k, bk, ctx)

	_, _, err := k.RemoveLiquidity(ctx, creator, poolID, math.NewInt(0))
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")
}

// TestTransferLiquidity_Valid tests moving a share position between addresses
func TestTransferLiquidity_Valid(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, creator := setupPool(t, k, bk, ctx)
	recipient := testAddr(3)

	poolBefore, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)

	require.NoError(t, k.TransferLiquidity(ctx, poolID, creator, recipient, math.NewInt(800_000)))

	creatorShares, err := k.GetLiquidity(ctx, poolID, creator)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_200_000), creatorShares)

	recipientShares, err := k.GetLiquidity(ctx, poolID, recipient)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(800_000), recipientShares)

	// Reserves and total shares are untouched
	poolAfter, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, poolBefore.ReserveA, poolAfter.ReserveA)
	require.Equal(t, poolBefore.ReserveB, poolAfter.ReserveB)
	require.Equal(t, poolBefore.TotalShares, poolAfter.TotalShares)

	require.NoError(t, k.CheckShareSupplyInvariant(ctx, poolID))
}

// TestTransferLiquidity_ToUnspendableAddress tests locking shares at a module-style address
func TestTransferLiquidity_ToUnspendableAddress(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, creator := setupPool(t, k, bk, ctx)

	// A module-derived address no key controls
	burnAddr := authtypes.NewModuleAddress("liquidity_burn")

	require.NoError(t, k.TransferLiquidity(ctx, poolID, creator, burnAddr, math.NewInt(500_000)))

	burned, err := k.GetLiquidity(ctx, poolID, burnAddr)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), burned)
}

// TestTransferLiquidity_SameAddress tests rejection of a self-transfer
func TestTransferLiquidity_SameAddress(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, creator := setupPool(t, k, bk, ctx)

	err := k.TransferLiquidity(ctx, poolID, creator, creator, math.NewInt(100))
	require.Error(t, err)
	require.Contains(t, err.Error(), "same address")
}

// TestTransferLiquidity_InsufficientShares tests rejection when the sender lacks shares
func TestTransferLiquidity_InsufficientShares(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, _ := setupPool(t, k, bk, ctx)

	err := k.TransferLiquidity(ctx, poolID, testAddr(4), testAddr(5), math.NewInt(100))
	require.Error(t, err)
	require.Contains(t, err.Error(), "have")
}

// TestSetLiquidity_ZeroDeletesPosition tests that zero shares remove the store entry
func TestSetLiquidity_ZeroDeletesPosition(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, creator := setupPool(t, k, bk, ctx)

	require.NoError(t, k.SetLiquidity(ctx, poolID, creator, math.ZeroInt()))

	shares, err := k.GetLiquidity(ctx, poolID, creator)
	require.NoError(t, err)
	require.True(t, shares.IsZero())

	count := 0
	require.NoError(t, k.IterateLiquidityByPool(ctx, poolID, func(_ sdk.AccAddress, _ math.Int) bool {
		count++
		return false
	}))
	require.Equal(t, 0, count)
}
