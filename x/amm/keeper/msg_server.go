package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles the creation of a new liquidity pool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: invalid creator address: %w", err)
	}

	pool, err := ms.Keeper.CreatePool(goCtx, creator, msg.TokenA, msg.TokenB, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{
		PoolId: pool.Id,
		Shares: pool.TotalShares,
	}, nil
}

// AddLiquidity handles adding liquidity to an existing pool
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	shares, usedA, usedB, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.PoolId, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		Shares:  shares,
		AmountA: usedA,
		AmountB: usedB,
	}, nil
}

// RemoveLiquidity handles removing liquidity from a pool
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	amountA, amountB, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// Swap handles token swaps
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	// Deadline check protects against stale transactions
	ctx := sdk.UnwrapSDKContext(goCtx)
	if ctx.BlockTime().Unix() > msg.Deadline {
		return nil, types.ErrDeadlineExceeded
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	amountOut, err := ms.Keeper.Swap(goCtx, trader, msg.PoolId, msg.TokenIn, msg.TokenOut, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{
		AmountOut: amountOut,
	}, nil
}

// Pause handles pausing all pool operations
func (ms msgServer) Pause(goCtx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Pause: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.PauseModule(ctx, msg.Authority); err != nil {
		return nil, fmt.Errorf("Pause: %w", err)
	}

	return &types.MsgPauseResponse{}, nil
}

// Unpause handles resuming pool operations
func (ms msgServer) Unpause(goCtx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Unpause: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.UnpauseModule(ctx, msg.Authority); err != nil {
		return nil, fmt.Errorf("Unpause: %w", err)
	}

	return &types.MsgUnpauseResponse{}, nil
}
