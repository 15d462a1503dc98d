package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/sale/types"
	sharedkeeper "github.com/fetch-protocol/fetch/x/shared/keeper"
)

// WithdrawUnused sends part of the sale token reserve to the beneficiary,
// for decommissioning or rebalancing. A nil or zero amount drains the whole
// reserve. Governance only.
func (k Keeper) WithdrawUnused(ctx sdk.Context, authority string, amount math.Int) (math.Int, error) {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return math.ZeroInt(), err
	}

	if !amount.IsNil() && amount.IsNegative() {
		return math.ZeroInt(), types.ErrInvalidInput.Wrap("withdraw amount must not be negative")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	if params.Beneficiary == "" {
		return math.ZeroInt(), types.ErrInvalidParams.Wrap("no beneficiary configured")
	}

	beneficiary, err := sdk.AccAddressFromBech32(params.Beneficiary)
	if err != nil {
		return math.ZeroInt(), types.ErrInvalidParams.Wrapf("invalid beneficiary: %v", err)
	}

	moduleAddr := k.GetModuleAddress()
	reserve := k.bankKeeper.GetBalance(ctx, moduleAddr, params.SaleDenom)
	if reserve.Amount.IsZero() {
		return math.ZeroInt(), types.ErrNothingToWithdraw.Wrap("sale reserve is empty")
	}

	withdraw := amount
	if withdraw.IsNil() || withdraw.IsZero() {
		withdraw = reserve.Amount
	}
	if withdraw.GT(reserve.Amount) {
		return math.ZeroInt(), types.ErrNothingToWithdraw.Wrapf("reserve holds %s, requested %s", reserve.Amount, withdraw)
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.SaleDenom, withdraw))
	if err := k.bankKeeper.SendCoins(ctx, moduleAddr, beneficiary, coins); err != nil {
		return math.ZeroInt(), types.ErrNothingToWithdraw.Wrapf("failed to withdraw reserve: %v", err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnusedWithdrawn,
			sdk.NewAttribute(types.AttributeKeyBeneficiary, params.Beneficiary),
			sdk.NewAttribute(types.AttributeKeyAmount, withdraw.String()),
		),
	)

	k.Logger(ctx).Info("unused reserve withdrawn",
		"beneficiary", params.Beneficiary,
		"amount", withdraw.String(),
	)

	return withdraw, nil
}

// UpdateBeneficiary changes the proceeds recipient. Governance only.
func (k Keeper) UpdateBeneficiary(ctx sdk.Context, authority, beneficiary string) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	if _, err := sdk.AccAddressFromBech32(beneficiary); err != nil {
		return types.ErrInvalidInput.Wrapf("invalid beneficiary address: %v", err)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	params.Beneficiary = beneficiary
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBeneficiaryUpdate,
			sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary),
		),
	)

	return nil
}
