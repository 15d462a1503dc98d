package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if genState.NextPoolId > 0 {
		k.SetNextPoolId(ctx, genState.NextPoolId)
	}

	for _, pool := range genState.Pools {
		pool := pool
		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("failed to set pool %d: %w", pool.Id, err)
		}
		if err := k.SetPoolByTokens(ctx, pool.TokenA, pool.TokenB, pool.Id); err != nil {
			return fmt.Errorf("failed to index pool %d: %w", pool.Id, err)
		}
	}

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return fmt.Errorf("invalid liquidity provider address %s: %w", pos.Provider, err)
		}
		if err := k.SetLiquidity(ctx, pos.PoolId, provider, pos.Shares); err != nil {
			return fmt.Errorf("failed to set liquidity position for pool %d: %w", pos.PoolId, err)
		}
	}

	return nil
}

// ExportGenesis exports the amm module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pools: %w", err)
	}

	var positions []types.Position
	for _, pool := range pools {
		if err := k.IterateLiquidityByPool(ctx, pool.Id, func(provider sdk.AccAddress, shares math.Int) bool {
			positions = append(positions, types.Position{
				PoolId:   pool.Id,
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		}); err != nil {
			return nil, fmt.Errorf("failed to iterate liquidity positions for pool %d: %w", pool.Id, err)
		}
	}

	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)
	nextPoolID := uint64(1)
	if bz != nil {
		nextPoolID = bigEndianUint64(bz)
	}

	return &types.GenesisState{
		Params:     params,
		Pools:      pools,
		Positions:  positions,
		NextPoolId: nextPoolID,
	}, nil
}

func bigEndianUint64(bz []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(bz[7-i]) << (8 * i)
	}
	return v
}
