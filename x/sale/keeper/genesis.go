package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/sale/types"
)

// InitGenesis initializes the sale module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	k.SetPaused(sdkCtx, genState.Paused)

	return nil
}

// ExportGenesis exports the sale module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	return &types.GenesisState{
		Params: params,
		Paused: k.IsPaused(sdkCtx),
	}, nil
}
