package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/sale/types"
	sharedkeeper "github.com/fetch-protocol/fetch/x/shared/keeper"
)

// referencePool finds the amm pool for the payment/sale token pair. The pool
// is the pricing oracle for every purchase.
func (k Keeper) referencePool(ctx context.Context, params types.Params) (sharedkeeper.PoolInfo, error) {
	info, found := k.ammKeeper.GetPoolInfo(ctx, params.PaymentDenom, params.SaleDenom)
	if !found {
		return sharedkeeper.PoolInfo{}, types.ErrNoReferencePool.Wrapf("no pool for %s/%s", params.PaymentDenom, params.SaleDenom)
	}
	return info, nil
}

// GetSalePrice quotes how many sale tokens a payment of amountIn buys. The
// quote is the amm swap output for the same trade, so sale purchases track
// the market price including depth impact.
func (k Keeper) GetSalePrice(ctx context.Context, amountIn math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidInput.Wrap("amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	pool, err := k.referencePool(ctx, params)
	if err != nil {
		return math.ZeroInt(), err
	}

	return k.ammKeeper.SimulateSwap(ctx, pool.PoolID, params.PaymentDenom, params.SaleDenom, amountIn)
}

// BuyFor executes a purchase on behalf of buyer: the payment is split between
// the liquidity deepening account and the beneficiary, and sale tokens leave
// the module reserve at the amm quote. All transfers happen against the
// current block state, so a failed purchase leaves every balance unchanged
// once the surrounding message reverts.
func (k Keeper) BuyFor(ctx sdk.Context, buyer sdk.AccAddress, amountIn math.Int) (math.Int, error) {
	if err := k.RequireNotPaused(ctx); err != nil {
		return math.ZeroInt(), err
	}

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidInput.Wrap("amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	pool, err := k.referencePool(ctx, params)
	if err != nil {
		return math.ZeroInt(), err
	}

	amountOut, err := k.ammKeeper.SimulateSwap(ctx, pool.PoolID, params.PaymentDenom, params.SaleDenom, amountIn)
	if err != nil {
		return math.ZeroInt(), err
	}

	moduleAddr := k.GetModuleAddress()
	reserve := k.bankKeeper.GetBalance(ctx, moduleAddr, params.SaleDenom)
	if reserve.Amount.LT(amountOut) {
		return math.ZeroInt(), types.ErrReserveShortfall.Wrapf("reserve %s, purchase needs %s%s",
			reserve.String(), amountOut.String(), params.SaleDenom)
	}

	// Split the payment. The deepening share accumulates at the ld account
	// until someone triggers Deepen; the rest goes to the beneficiary, or
	// stays in the reserve account when no beneficiary is configured.
	ldAmount := amountIn.MulRaw(int64(params.LdPercent)).QuoRaw(100)
	beneficiaryAmount := amountIn.Sub(ldAmount)

	if ldAmount.IsPositive() {
		ldCoin := sdk.NewCoin(params.PaymentDenom, ldAmount)
		if err := k.bankKeeper.SendCoins(ctx, buyer, k.GetLdAddress(), sdk.NewCoins(ldCoin)); err != nil {
			return math.ZeroInt(), types.ErrInvalidInput.Wrapf("failed to transfer deepening share: %v", err)
		}
	}

	if beneficiaryAmount.IsPositive() {
		recipient := moduleAddr
		if params.Beneficiary != "" {
			recipient, err = sdk.AccAddressFromBech32(params.Beneficiary)
			if err != nil {
				return math.ZeroInt(), types.ErrInvalidParams.Wrapf("invalid beneficiary: %v", err)
			}
		}
		proceedsCoin := sdk.NewCoin(params.PaymentDenom, beneficiaryAmount)
		if err := k.bankKeeper.SendCoins(ctx, buyer, recipient, sdk.NewCoins(proceedsCoin)); err != nil {
			return math.ZeroInt(), types.ErrInvalidInput.Wrapf("failed to transfer proceeds: %v", err)
		}
	}

	outCoin := sdk.NewCoin(params.SaleDenom, amountOut)
	if err := k.bankKeeper.SendCoins(ctx, moduleAddr, buyer, sdk.NewCoins(outCoin)); err != nil {
		return math.ZeroInt(), types.ErrReserveShortfall.Wrapf("failed to transfer sale tokens: %v", err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBuy,
			sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyLdAmount, ldAmount.String()),
		),
	)

	k.Logger(ctx).Info("sale purchase",
		"buyer", buyer.String(),
		"amount_in", amountIn.String(),
		"amount_out", amountOut.String(),
		"ld_amount", ldAmount.String(),
	)

	return amountOut, nil
}

// FundReserve moves sale tokens from sender into the module reserve. Anyone
// may top up the reserve.
func (k Keeper) FundReserve(ctx sdk.Context, sender sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidInput.Wrap("amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	coin := sdk.NewCoin(params.SaleDenom, amount)
	if err := k.bankKeeper.SendCoins(ctx, sender, k.GetModuleAddress(), sdk.NewCoins(coin)); err != nil {
		return types.ErrInvalidInput.Wrapf("failed to fund reserve: %v", err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReserveFunded,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// GetReserve returns the remaining sale token reserve.
func (k Keeper) GetReserve(ctx context.Context) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), params.SaleDenom).Amount, nil
}
