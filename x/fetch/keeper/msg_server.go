package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/fetch/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the fetch MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Deposit handles a single-sided deposit
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deposit: validate: %w", err)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("Deposit: invalid depositor address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	staked, burned, err := ms.Keeper.Deposit(ctx, depositor, msg.NativeAmount)
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}

	return &types.MsgDepositResponse{
		StakedShares: staked,
		BurnedShares: burned,
	}, nil
}

// DepositPair handles a two-sided deposit
func (ms msgServer) DepositPair(goCtx context.Context, msg *types.MsgDepositPair) (*types.MsgDepositPairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DepositPair: validate: %w", err)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("DepositPair: invalid depositor address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	staked, burned, err := ms.Keeper.DepositPair(ctx, depositor, msg.NativeAmount, msg.TokenAmount)
	if err != nil {
		return nil, fmt.Errorf("DepositPair: %w", err)
	}

	return &types.MsgDepositPairResponse{
		StakedShares: staked,
		BurnedShares: burned,
	}, nil
}

// SetBurnPercent handles changing the LP burn split
func (ms msgServer) SetBurnPercent(goCtx context.Context, msg *types.MsgSetBurnPercent) (*types.MsgSetBurnPercentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetBurnPercent: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetBurnPercent(ctx, msg.Authority, msg.Percent); err != nil {
		return nil, fmt.Errorf("SetBurnPercent: %w", err)
	}

	return &types.MsgSetBurnPercentResponse{}, nil
}

// SetStakePool handles pointing new deposits at a different stake pool
func (ms msgServer) SetStakePool(goCtx context.Context, msg *types.MsgSetStakePool) (*types.MsgSetStakePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetStakePool: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetStakePool(ctx, msg.Authority, msg.PoolId); err != nil {
		return nil, fmt.Errorf("SetStakePool: %w", err)
	}

	return &types.MsgSetStakePoolResponse{}, nil
}

// SetSplitFormula handles selecting a registered split formula
func (ms msgServer) SetSplitFormula(goCtx context.Context, msg *types.MsgSetSplitFormula) (*types.MsgSetSplitFormulaResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetSplitFormula: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetSplitFormula(ctx, msg.Authority, msg.Name); err != nil {
		return nil, fmt.Errorf("SetSplitFormula: %w", err)
	}

	return &types.MsgSetSplitFormulaResponse{}, nil
}
