package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the sale module's Msg service.
type MsgServer interface {
	Buy(context.Context, *MsgBuy) (*MsgBuyResponse, error)
	FundReserve(context.Context, *MsgFundReserve) (*MsgFundReserveResponse, error)
	Deepen(context.Context, *MsgDeepen) (*MsgDeepenResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
	WithdrawUnused(context.Context, *MsgWithdrawUnused) (*MsgWithdrawUnusedResponse, error)
	UpdateBeneficiary(context.Context, *MsgUpdateBeneficiary) (*MsgUpdateBeneficiaryResponse, error)
}

// MsgBuyResponse is the response for MsgBuy
type MsgBuyResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgFundReserveResponse is the response for MsgFundReserve
type MsgFundReserveResponse struct{}

// MsgDeepenResponse is the response for MsgDeepen
type MsgDeepenResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgPauseResponse is the response for MsgPause
type MsgPauseResponse struct{}

// MsgUnpauseResponse is the response for MsgUnpause
type MsgUnpauseResponse struct{}

// MsgWithdrawUnusedResponse is the response for MsgWithdrawUnused
type MsgWithdrawUnusedResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgUpdateBeneficiaryResponse is the response for MsgUpdateBeneficiary
type MsgUpdateBeneficiaryResponse struct{}
