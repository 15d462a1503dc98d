package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fetch-protocol/fetch/x/amm/types"
)

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(&params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	store.Set(ParamsKey, bz)
	return nil
}
