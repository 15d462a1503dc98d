package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/sale/types"
	sharedkeeper "github.com/fetch-protocol/fetch/x/shared/keeper"
)

// IsPaused checks if sales are currently paused
func (k Keeper) IsPaused(ctx sdk.Context) bool {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(PausedKey)
	if bz == nil {
		return false
	}
	return bz[0] == 1
}

// SetPaused sets the paused state of the sale
func (k Keeper) SetPaused(ctx sdk.Context, paused bool) {
	store := ctx.KVStore(k.storeKey)
	if paused {
		store.Set(PausedKey, []byte{1})

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				"module_paused",
				sdk.NewAttribute("module", types.ModuleName),
				sdk.NewAttribute("paused_at", fmt.Sprintf("%d", ctx.BlockHeight())),
			),
		)
	} else {
		store.Set(PausedKey, []byte{0})

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				"module_unpaused",
				sdk.NewAttribute("module", types.ModuleName),
				sdk.NewAttribute("unpaused_at", fmt.Sprintf("%d", ctx.BlockHeight())),
			),
		)
	}
}

// PauseSale pauses purchases (governance only)
func (k Keeper) PauseSale(ctx sdk.Context, authority string) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	if k.IsPaused(ctx) {
		return types.ErrSalePaused.Wrap("sale is already paused")
	}

	k.SetPaused(ctx, true)
	k.Logger(ctx).Info("sale paused", "height", ctx.BlockHeight())

	return nil
}

// UnpauseSale resumes purchases (governance only)
func (k Keeper) UnpauseSale(ctx sdk.Context, authority string) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	if !k.IsPaused(ctx) {
		return types.ErrInvalidParams.Wrap("sale is not paused")
	}

	k.SetPaused(ctx, false)
	k.Logger(ctx).Info("sale unpaused", "height", ctx.BlockHeight())

	return nil
}

// RequireNotPaused returns an error if sales are paused
func (k Keeper) RequireNotPaused(ctx sdk.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrSalePaused.Wrap("sale purchases are currently paused")
	}
	return nil
}
