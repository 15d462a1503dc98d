package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/sale module sentinel errors
var (
	ErrInvalidInput      = errorsmod.Register(ModuleName, 2, "invalid input")
	ErrSalePaused        = errorsmod.Register(ModuleName, 3, "sale is paused")
	ErrReserveShortfall  = errorsmod.Register(ModuleName, 4, "sale reserve cannot cover purchase")
	ErrNoReferencePool   = errorsmod.Register(ModuleName, 5, "no amm pool for sale token pair")
	ErrUnauthorized      = errorsmod.Register(ModuleName, 6, "unauthorized")
	ErrInvalidParams     = errorsmod.Register(ModuleName, 7, "invalid module parameters")
	ErrNothingToWithdraw = errorsmod.Register(ModuleName, 8, "nothing to withdraw")
	ErrNothingToDeepen   = errorsmod.Register(ModuleName, 9, "no accumulated deepening funds")
	ErrOverflow          = errorsmod.Register(ModuleName, 10, "arithmetic overflow")
)
