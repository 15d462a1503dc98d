package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/fetch module sentinel errors
var (
	ErrInvalidInput      = errorsmod.Register(ModuleName, 2, "invalid input")
	ErrInvalidParams     = errorsmod.Register(ModuleName, 3, "invalid module parameters")
	ErrNoTokenPool       = errorsmod.Register(ModuleName, 4, "no amm pool for native/token pair")
	ErrStakePoolNotSet   = errorsmod.Register(ModuleName, 5, "no stake pool configured")
	ErrUnknownFormula    = errorsmod.Register(ModuleName, 6, "unknown split formula")
	ErrSettlementFailed  = errorsmod.Register(ModuleName, 7, "deposit settlement failed")
	ErrResidueInvariant  = errorsmod.Register(ModuleName, 8, "module account not empty after settlement")
	ErrOverflow          = errorsmod.Register(ModuleName, 9, "arithmetic overflow")
	ErrInvalidPercentage = errorsmod.Register(ModuleName, 10, "burn percent out of bounds")
)
