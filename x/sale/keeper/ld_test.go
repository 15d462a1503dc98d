package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

// TestDeepen_LocksLiquidity tests converting the accumulated deepening
// balance into a locked amm position
func TestDeepen_LocksLiquidity(t *testing.T) {
	f, buyer, _ := setupSaleEnv(t)

	// A 100k purchase accumulates 20k ubnb for deepening
	_, err := f.Keeper.BuyFor(f.Ctx, buyer, math.NewInt(100_000))
	require.NoError(t, err)

	balance, err := f.Keeper.GetDeepeningBalance(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(20_000), balance)

	shares, err := f.Keeper.Deepen(f.Ctx)
	require.NoError(t, err)
	// Half swapped (10k -> 39,486 ufet against 1M/4M), then both sides added
	// at the post-swap ratio: shares = 10,000 * 2,000,000 / 1,010,000
	require.Equal(t, math.NewInt(19_801), shares)

	// LP position sits at the ld account, which nothing can withdraw from
	info, found := f.Amm.GetPoolInfo(f.Ctx, "ubnb", "ufet")
	require.True(t, found)
	ldShares, err := f.Amm.GetLiquidity(f.Ctx, info.PoolID, f.Keeper.GetLdAddress())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(19_801), ldShares)

	// Payment side fully consumed; the ratio-mismatch remainder of the sale
	// token stays for the next round
	balance, err = f.Keeper.GetDeepeningBalance(f.Ctx)
	require.NoError(t, err)
	require.True(t, balance.IsZero())
	require.Equal(t, math.NewInt(273), f.Bank.GetBalance(f.Ctx, f.Keeper.GetLdAddress(), "ufet").Amount)
}

// TestDeepen_DeepensReserves tests that deepening grows the reference pool
func TestDeepen_DeepensReserves(t *testing.T) {
	f, buyer, _ := setupSaleEnv(t)

	_, err := f.Keeper.BuyFor(f.Ctx, buyer, math.NewInt(100_000))
	require.NoError(t, err)

	before, found := f.Amm.GetPoolInfo(f.Ctx, "ubnb", "ufet")
	require.True(t, found)

	_, err = f.Keeper.Deepen(f.Ctx)
	require.NoError(t, err)

	after, found := f.Amm.GetPoolInfo(f.Ctx, "ubnb", "ufet")
	require.True(t, found)
	require.True(t, after.ReserveA.GT(before.ReserveA))
	require.True(t, after.TotalShares.GT(before.TotalShares))
}

// TestDeepen_NothingAccumulated tests rejection when there is nothing to deepen
func TestDeepen_NothingAccumulated(t *testing.T) {
	f, _, _ := setupSaleEnv(t)

	_, err := f.Keeper.Deepen(f.Ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "deepening balance")
}
