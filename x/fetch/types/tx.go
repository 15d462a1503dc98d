package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the fetch module's Msg service.
type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	DepositPair(context.Context, *MsgDepositPair) (*MsgDepositPairResponse, error)
	SetBurnPercent(context.Context, *MsgSetBurnPercent) (*MsgSetBurnPercentResponse, error)
	SetStakePool(context.Context, *MsgSetStakePool) (*MsgSetStakePoolResponse, error)
	SetSplitFormula(context.Context, *MsgSetSplitFormula) (*MsgSetSplitFormulaResponse, error)
}

// MsgDepositResponse is the response for MsgDeposit
type MsgDepositResponse struct {
	StakedShares math.Int `json:"staked_shares"`
	BurnedShares math.Int `json:"burned_shares"`
}

// MsgDepositPairResponse is the response for MsgDepositPair
type MsgDepositPairResponse struct {
	StakedShares math.Int `json:"staked_shares"`
	BurnedShares math.Int `json:"burned_shares"`
}

// MsgSetBurnPercentResponse is the response for MsgSetBurnPercent
type MsgSetBurnPercentResponse struct{}

// MsgSetStakePoolResponse is the response for MsgSetStakePool
type MsgSetStakePoolResponse struct{}

// MsgSetSplitFormulaResponse is the response for MsgSetSplitFormula
type MsgSetSplitFormulaResponse struct{}
