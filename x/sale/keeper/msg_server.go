package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/sale/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the sale MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Buy handles a sale purchase
func (ms msgServer) Buy(goCtx context.Context, msg *types.MsgBuy) (*types.MsgBuyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Buy: validate: %w", err)
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, fmt.Errorf("Buy: invalid buyer address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	amountOut, err := ms.Keeper.BuyFor(ctx, buyer, msg.AmountIn)
	if err != nil {
		return nil, fmt.Errorf("Buy: %w", err)
	}

	return &types.MsgBuyResponse{
		AmountOut: amountOut,
	}, nil
}

// FundReserve handles topping up the sale reserve
func (ms msgServer) FundReserve(goCtx context.Context, msg *types.MsgFundReserve) (*types.MsgFundReserveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("FundReserve: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("FundReserve: invalid sender address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.FundReserve(ctx, sender, msg.Amount); err != nil {
		return nil, fmt.Errorf("FundReserve: %w", err)
	}

	return &types.MsgFundReserveResponse{}, nil
}

// Deepen handles converting accumulated deepening funds into amm liquidity
func (ms msgServer) Deepen(goCtx context.Context, msg *types.MsgDeepen) (*types.MsgDeepenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deepen: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	shares, err := ms.Keeper.Deepen(ctx)
	if err != nil {
		return nil, fmt.Errorf("Deepen: %w", err)
	}

	return &types.MsgDeepenResponse{
		Shares: shares,
	}, nil
}

// Pause handles pausing purchases
func (ms msgServer) Pause(goCtx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Pause: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.PauseSale(ctx, msg.Authority); err != nil {
		return nil, fmt.Errorf("Pause: %w", err)
	}

	return &types.MsgPauseResponse{}, nil
}

// Unpause handles resuming purchases
func (ms msgServer) Unpause(goCtx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Unpause: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.UnpauseSale(ctx, msg.Authority); err != nil {
		return nil, fmt.Errorf("Unpause: %w", err)
	}

	return &types.MsgUnpauseResponse{}, nil
}

// WithdrawUnused handles sending the remaining reserve to the beneficiary
func (ms msgServer) WithdrawUnused(goCtx context.Context, msg *types.MsgWithdrawUnused) (*types.MsgWithdrawUnusedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawUnused: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	amount, err := ms.Keeper.WithdrawUnused(ctx, msg.Authority, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("WithdrawUnused: %w", err)
	}

	return &types.MsgWithdrawUnusedResponse{
		Amount: amount,
	}, nil
}

// UpdateBeneficiary handles changing the proceeds recipient
func (ms msgServer) UpdateBeneficiary(goCtx context.Context, msg *types.MsgUpdateBeneficiary) (*types.MsgUpdateBeneficiaryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateBeneficiary: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.UpdateBeneficiary(ctx, msg.Authority, msg.Beneficiary); err != nil {
		return nil, fmt.Errorf("UpdateBeneficiary: %w", err)
	}

	return &types.MsgUpdateBeneficiaryResponse{}, nil
}
