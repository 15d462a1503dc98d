package keeper

import (
	"context"
	"fmt"

	"github.com/fetch-protocol/fetch/x/fetch/types"
)

// InitGenesis initializes the fetch module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}
	return nil
}

// ExportGenesis exports the fetch module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	return &types.GenesisState{
		Params: params,
	}, nil
}
