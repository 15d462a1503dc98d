package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
}

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	PoolId uint64   `json:"pool_id"`
	Shares math.Int `json:"shares"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares  math.Int `json:"shares"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgPauseResponse defines the response for Pause
type MsgPauseResponse struct{}

// MsgUnpauseResponse defines the response for Unpause
type MsgUnpauseResponse struct{}
