package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/stake module sentinel errors
var (
	ErrPoolNotFound        = errorsmod.Register(ModuleName, 2, "stake pool not found")
	ErrPoolAlreadyExists   = errorsmod.Register(ModuleName, 3, "stake pool already exists")
	ErrInvalidInput        = errorsmod.Register(ModuleName, 4, "invalid input")
	ErrNotWhitelisted      = errorsmod.Register(ModuleName, 5, "router not whitelisted")
	ErrInsufficientStake   = errorsmod.Register(ModuleName, 6, "insufficient staked shares")
	ErrNothingStaked       = errorsmod.Register(ModuleName, 7, "nothing staked")
	ErrWithdrawTooEarly    = errorsmod.Register(ModuleName, 8, "withdraw delay has not elapsed")
	ErrNoReward            = errorsmod.Register(ModuleName, 9, "no reward to claim")
	ErrRewardPeriodActive  = errorsmod.Register(ModuleName, 10, "reward period still active")
	ErrUnauthorized        = errorsmod.Register(ModuleName, 11, "unauthorized")
	ErrTierNotReached      = errorsmod.Register(ModuleName, 12, "tier threshold not reached")
	ErrTierAlreadyClaimed  = errorsmod.Register(ModuleName, 13, "tier already claimed")
	ErrOverflow            = errorsmod.Register(ModuleName, 14, "arithmetic overflow")
	ErrInvalidParams       = errorsmod.Register(ModuleName, 15, "invalid module parameters")
	ErrInsufficientRewards = errorsmod.Register(ModuleName, 16, "reward pool underfunded")
)
