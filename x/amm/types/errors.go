package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 3, "pool already exists")
	ErrInvalidTokenPair      = errors.Register(ModuleName, 4, "invalid token pair")
	ErrInvalidInput          = errors.Register(ModuleName, 5, "invalid input")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 6, "insufficient liquidity in pool")
	ErrInvalidSwapAmount     = errors.Register(ModuleName, 7, "invalid swap amount")
	ErrSlippageTooHigh       = errors.Register(ModuleName, 8, "slippage exceeded maximum")
	ErrInsufficientShares    = errors.Register(ModuleName, 9, "insufficient liquidity shares")
	ErrInvalidPoolState      = errors.Register(ModuleName, 10, "invalid pool state")
	ErrOverflow              = errors.Register(ModuleName, 11, "arithmetic overflow")
	ErrInvariantViolation    = errors.Register(ModuleName, 12, "invariant violation")
	ErrUnauthorized          = errors.Register(ModuleName, 13, "unauthorized")
	ErrModulePaused          = errors.Register(ModuleName, 14, "module is paused")
	ErrDeadlineExceeded      = errors.Register(ModuleName, 15, "deadline exceeded")
	ErrInvalidParams         = errors.Register(ModuleName, 16, "invalid params")
)
