package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the stake module's Msg service.
type MsgServer interface {
	CreateStakePool(context.Context, *MsgCreateStakePool) (*MsgCreateStakePoolResponse, error)
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	ClaimReward(context.Context, *MsgClaimReward) (*MsgClaimRewardResponse, error)
	Exit(context.Context, *MsgExit) (*MsgExitResponse, error)
	ClaimNft(context.Context, *MsgClaimNft) (*MsgClaimNftResponse, error)
	NotifyReward(context.Context, *MsgNotifyReward) (*MsgNotifyRewardResponse, error)
	SetWhitelist(context.Context, *MsgSetWhitelist) (*MsgSetWhitelistResponse, error)
	SetRewardsDistribution(context.Context, *MsgSetRewardsDistribution) (*MsgSetRewardsDistributionResponse, error)
}

// MsgCreateStakePoolResponse is the response for MsgCreateStakePool
type MsgCreateStakePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgStakeResponse is the response for MsgStake
type MsgStakeResponse struct{}

// MsgWithdrawResponse is the response for MsgWithdraw
type MsgWithdrawResponse struct{}

// MsgClaimRewardResponse is the response for MsgClaimReward
type MsgClaimRewardResponse struct {
	Reward math.Int `json:"reward"`
}

// MsgExitResponse is the response for MsgExit
type MsgExitResponse struct {
	Shares math.Int `json:"shares"`
	Reward math.Int `json:"reward"`
}

// MsgClaimNftResponse is the response for MsgClaimNft
type MsgClaimNftResponse struct {
	Tier uint32 `json:"tier"`
}

// MsgNotifyRewardResponse is the response for MsgNotifyReward
type MsgNotifyRewardResponse struct{}

// MsgSetWhitelistResponse is the response for MsgSetWhitelist
type MsgSetWhitelistResponse struct{}

// MsgSetRewardsDistributionResponse is the response for MsgSetRewardsDistribution
type MsgSetRewardsDistributionResponse struct{}
