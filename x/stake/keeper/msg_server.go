package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/stake/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the stake MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateStakePool handles stake pool creation (governance only)
func (ms msgServer) CreateStakePool(goCtx context.Context, msg *types.MsgCreateStakePool) (*types.MsgCreateStakePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateStakePool: validate: %w", err)
	}

	pool, err := ms.Keeper.CreateStakePool(goCtx, msg.Authority, msg.LpPoolId, msg.RewardsDenom, msg.DurationSeconds, msg.WithdrawDelaySeconds, msg.RewardsDistribution)
	if err != nil {
		return nil, fmt.Errorf("CreateStakePool: %w", err)
	}

	return &types.MsgCreateStakePoolResponse{PoolId: pool.Id}, nil
}

// Stake handles direct staking of LP shares
func (ms msgServer) Stake(goCtx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Stake: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("Stake: invalid staker address: %w", err)
	}

	if err := ms.Keeper.Stake(goCtx, staker, msg.PoolId, msg.Shares); err != nil {
		return nil, fmt.Errorf("Stake: %w", err)
	}

	return &types.MsgStakeResponse{}, nil
}

// Withdraw handles withdrawing staked LP shares
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid staker address: %w", err)
	}

	if err := ms.Keeper.Withdraw(goCtx, staker, msg.PoolId, msg.Shares); err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	return &types.MsgWithdrawResponse{}, nil
}

// ClaimReward handles reward claims
func (ms msgServer) ClaimReward(goCtx context.Context, msg *types.MsgClaimReward) (*types.MsgClaimRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimReward: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("ClaimReward: invalid staker address: %w", err)
	}

	reward, err := ms.Keeper.ClaimReward(goCtx, staker, msg.PoolId)
	if err != nil {
		return nil, fmt.Errorf("ClaimReward: %w", err)
	}

	return &types.MsgClaimRewardResponse{Reward: reward}, nil
}

// Exit handles full withdrawal plus reward claim
func (ms msgServer) Exit(goCtx context.Context, msg *types.MsgExit) (*types.MsgExitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Exit: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("Exit: invalid staker address: %w", err)
	}

	shares, reward, err := ms.Keeper.Exit(goCtx, staker, msg.PoolId)
	if err != nil {
		return nil, fmt.Errorf("Exit: %w", err)
	}

	return &types.MsgExitResponse{Shares: shares, Reward: reward}, nil
}

// ClaimNft handles tier NFT claims
func (ms msgServer) ClaimNft(goCtx context.Context, msg *types.MsgClaimNft) (*types.MsgClaimNftResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimNft: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("ClaimNft: invalid staker address: %w", err)
	}

	if err := ms.Keeper.ClaimNFT(goCtx, staker, msg.PoolId, msg.Tier); err != nil {
		return nil, fmt.Errorf("ClaimNft: %w", err)
	}

	return &types.MsgClaimNftResponse{Tier: msg.Tier}, nil
}

// NotifyReward handles funding a new reward period
func (ms msgServer) NotifyReward(goCtx context.Context, msg *types.MsgNotifyReward) (*types.MsgNotifyRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("NotifyReward: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("NotifyReward: invalid sender address: %w", err)
	}

	if err := ms.Keeper.NotifyRewardAmount(goCtx, sender, msg.PoolId, msg.Amount); err != nil {
		return nil, fmt.Errorf("NotifyReward: %w", err)
	}

	return &types.MsgNotifyRewardResponse{}, nil
}

// SetWhitelist handles router whitelist changes (governance only)
func (ms msgServer) SetWhitelist(goCtx context.Context, msg *types.MsgSetWhitelist) (*types.MsgSetWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetWhitelist: validate: %w", err)
	}

	router, err := sdk.AccAddressFromBech32(msg.Router)
	if err != nil {
		return nil, fmt.Errorf("SetWhitelist: invalid router address: %w", err)
	}

	if err := ms.Keeper.SetWhitelist(goCtx, msg.Authority, router, msg.Enabled); err != nil {
		return nil, fmt.Errorf("SetWhitelist: %w", err)
	}

	return &types.MsgSetWhitelistResponse{}, nil
}

// SetRewardsDistribution handles distributor changes (governance only)
func (ms msgServer) SetRewardsDistribution(goCtx context.Context, msg *types.MsgSetRewardsDistribution) (*types.MsgSetRewardsDistributionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetRewardsDistribution: validate: %w", err)
	}

	distributor, err := sdk.AccAddressFromBech32(msg.Distributor)
	if err != nil {
		return nil, fmt.Errorf("SetRewardsDistribution: invalid distributor address: %w", err)
	}

	if err := ms.Keeper.SetRewardsDistribution(goCtx, msg.Authority, msg.PoolId, distributor); err != nil {
		return nil, fmt.Errorf("SetRewardsDistribution: %w", err)
	}

	return &types.MsgSetRewardsDistributionResponse{}, nil
}
