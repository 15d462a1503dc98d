package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fetch-protocol/fetch/testutil/keeper"
	"github.com/fetch-protocol/fetch/x/amm/types"
)

// TestGenesis_RoundTrip tests that exported state re-imports identically
func TestGenesis_RoundTrip(t *testing.T) {
	k, bk, ctx := keepertest.AmmKeeper(t)
	poolID, creator := setupPool(t, k, bk, ctx)

	recipient := testAddr(3)
	require.NoError(t, k.TransferLiquidity(ctx, poolID, creator, recipient, math.NewInt(300_000)))

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Len(t, exported.Pools, 1)
	require.Len(t, exported.Positions, 2)
	require.NoError(t, exported.Validate())

	// Import into a fresh keeper and compare
	k2, _, ctx2 := keepertest.AmmKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	pool, err := k2.GetPool(ctx2, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(4_000_000), pool.ReserveB)

	shares, err := k2.GetLiquidity(ctx2, poolID, recipient)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(300_000), shares)

	// Token index restored as well
	found, err := k2.GetPoolByTokens(ctx2, "ufet", "ubnb")
	require.NoError(t, err)
	require.Equal(t, poolID, found.Id)

	reExported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported.Pools, reExported.Pools)
	require.Equal(t, exported.NextPoolId, reExported.NextPoolId)
}

// TestGenesisState_Validate tests genesis validation rules
func TestGenesisState_Validate(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())

	gs = types.DefaultGenesis()
	gs.NextPoolId = 0
	require.Error(t, gs.Validate())

	gs = types.DefaultGenesis()
	gs.Pools = []types.Pool{{
		Id: 1, TokenA: "ufet", TokenB: "ubnb",
		ReserveA: math.NewInt(1), ReserveB: math.NewInt(1), TotalShares: math.NewInt(1),
	}}
	require.Error(t, gs.Validate(), "unordered token pair must be rejected")

	gs = types.DefaultGenesis()
	gs.Positions = []types.Position{{PoolId: 7, Provider: testAddr(1).String(), Shares: math.NewInt(1)}}
	require.Error(t, gs.Validate(), "position referencing unknown pool must be rejected")
}
