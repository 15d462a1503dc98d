package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/fetch/types"
	sharedkeeper "github.com/fetch-protocol/fetch/x/shared/keeper"
)

// SetBurnPercent changes the LP burn split. Governance only; bounds are
// inclusive 1..10 so a deposit always both stakes and burns.
func (k Keeper) SetBurnPercent(ctx sdk.Context, authority string, percent uint32) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	if percent < types.MinBurnPercent || percent > types.MaxBurnPercent {
		return types.ErrInvalidPercentage.Wrapf("must be between %d and %d, got %d",
			types.MinBurnPercent, types.MaxBurnPercent, percent)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	params.BurnPercent = percent
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurnPercentUpdated,
			sdk.NewAttribute(types.AttributeKeyPercent, fmt.Sprintf("%d", percent)),
		),
	)

	return nil
}

// SetStakePool points new deposits at a different stake pool. Prior pools
// keep their stake and reward state untouched.
func (k Keeper) SetStakePool(ctx sdk.Context, authority string, poolID uint64) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	if poolID == 0 {
		return types.ErrInvalidInput.Wrap("stake pool id must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	params.StakePoolId = poolID
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeStakePoolUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		),
	)

	k.Logger(ctx).Info("stake pool updated", "pool_id", poolID)

	return nil
}

// SetSplitFormula selects a registered split formula. Governance only.
func (k Keeper) SetSplitFormula(ctx sdk.Context, authority, name string) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	if _, ok := k.GetFormula(name); !ok {
		return types.ErrUnknownFormula.Wrapf("formula %q not registered", name)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	params.SplitFormula = name
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFormulaUpdated,
			sdk.NewAttribute(types.AttributeKeyFormula, name),
		),
	)

	return nil
}
