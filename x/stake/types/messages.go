package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreateStakePool        = "create_stake_pool"
	TypeMsgStake                  = "stake"
	TypeMsgWithdraw               = "withdraw"
	TypeMsgClaimReward            = "claim_reward"
	TypeMsgExit                   = "exit"
	TypeMsgClaimNft               = "claim_nft"
	TypeMsgNotifyReward           = "notify_reward"
	TypeMsgSetWhitelist           = "set_whitelist"
	TypeMsgSetRewardsDistribution = "set_rewards_distribution"
)

var (
	_ sdk.Msg = &MsgCreateStakePool{}
	_ sdk.Msg = &MsgStake{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgClaimReward{}
	_ sdk.Msg = &MsgExit{}
	_ sdk.Msg = &MsgClaimNft{}
	_ sdk.Msg = &MsgNotifyReward{}
	_ sdk.Msg = &MsgSetWhitelist{}
	_ sdk.Msg = &MsgSetRewardsDistribution{}
)

// MsgCreateStakePool defines a governance message to create a stake pool
type MsgCreateStakePool struct {
	Authority            string `json:"authority"`
	LpPoolId             uint64 `json:"lp_pool_id"`
	RewardsDenom         string `json:"rewards_denom"`
	DurationSeconds      int64  `json:"duration_seconds"`
	WithdrawDelaySeconds int64  `json:"withdraw_delay_seconds"`
	RewardsDistribution  string `json:"rewards_distribution"`
}

func (m *MsgCreateStakePool) Reset()         { *m = MsgCreateStakePool{} }
func (m *MsgCreateStakePool) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgCreateStakePool) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgCreateStakePool
func (m *MsgCreateStakePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if m.LpPoolId == 0 {
		return fmt.Errorf("lp_pool_id must be positive")
	}

	if err := sdk.ValidateDenom(m.RewardsDenom); err != nil {
		return fmt.Errorf("invalid rewards denom: %w", err)
	}

	if m.DurationSeconds < 0 {
		return fmt.Errorf("duration_seconds cannot be negative")
	}

	if m.WithdrawDelaySeconds < 0 {
		return fmt.Errorf("withdraw_delay_seconds cannot be negative")
	}

	if m.RewardsDistribution != "" {
		if _, err := sdk.AccAddressFromBech32(m.RewardsDistribution); err != nil {
			return fmt.Errorf("invalid rewards_distribution address: %w", err)
		}
	}

	return nil
}

// GetSigners returns the expected signers for MsgCreateStakePool
func (m *MsgCreateStakePool) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}

// MsgStake defines a message to stake LP shares directly
type MsgStake struct {
	Staker string   `json:"staker"`
	PoolId uint64   `json:"pool_id"`
	Shares math.Int `json:"shares"`
}

func (m *MsgStake) Reset()         { *m = MsgStake{} }
func (m *MsgStake) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgStake) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgStake
func (m *MsgStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Staker); err != nil {
		return fmt.Errorf("invalid staker address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	if m.Shares.IsNil() || !m.Shares.IsPositive() {
		return fmt.Errorf("shares must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgStake
func (m *MsgStake) GetSigners() []sdk.AccAddress {
	staker, _ := sdk.AccAddressFromBech32(m.Staker)
	return []sdk.AccAddress{staker}
}

// MsgWithdraw defines a message to withdraw staked LP shares
type MsgWithdraw struct {
	Staker string   `json:"staker"`
	PoolId uint64   `json:"pool_id"`
	Shares math.Int `json:"shares"`
}

func (m *MsgWithdraw) Reset()         { *m = MsgWithdraw{} }
func (m *MsgWithdraw) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgWithdraw) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgWithdraw
func (m *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Staker); err != nil {
		return fmt.Errorf("invalid staker address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	if m.Shares.IsNil() || !m.Shares.IsPositive() {
		return fmt.Errorf("shares must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgWithdraw
func (m *MsgWithdraw) GetSigners() []sdk.AccAddress {
	staker, _ := sdk.AccAddressFromBech32(m.Staker)
	return []sdk.AccAddress{staker}
}

// MsgClaimReward defines a message to claim accrued streaming rewards
type MsgClaimReward struct {
	Staker string `json:"staker"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgClaimReward) Reset()         { *m = MsgClaimReward{} }
func (m *MsgClaimReward) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimReward) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgClaimReward
func (m *MsgClaimReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Staker); err != nil {
		return fmt.Errorf("invalid staker address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgClaimReward
func (m *MsgClaimReward) GetSigners() []sdk.AccAddress {
	staker, _ := sdk.AccAddressFromBech32(m.Staker)
	return []sdk.AccAddress{staker}
}

// MsgExit defines a message to withdraw everything and claim all rewards
type MsgExit struct {
	Staker string `json:"staker"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgExit) Reset()         { *m = MsgExit{} }
func (m *MsgExit) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgExit) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgExit
func (m *MsgExit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Staker); err != nil {
		return fmt.Errorf("invalid staker address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgExit
func (m *MsgExit) GetSigners() []sdk.AccAddress {
	staker, _ := sdk.AccAddressFromBech32(m.Staker)
	return []sdk.AccAddress{staker}
}

// MsgClaimNft defines a message to claim a tier achievement NFT
type MsgClaimNft struct {
	Staker string `json:"staker"`
	PoolId uint64 `json:"pool_id"`
	Tier   uint32 `json:"tier"`
}

func (m *MsgClaimNft) Reset()         { *m = MsgClaimNft{} }
func (m *MsgClaimNft) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimNft) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgClaimNft
func (m *MsgClaimNft) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Staker); err != nil {
		return fmt.Errorf("invalid staker address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgClaimNft
func (m *MsgClaimNft) GetSigners() []sdk.AccAddress {
	staker, _ := sdk.AccAddressFromBech32(m.Staker)
	return []sdk.AccAddress{staker}
}

// MsgNotifyReward defines a message funding a new reward period
type MsgNotifyReward struct {
	Sender string   `json:"sender"`
	PoolId uint64   `json:"pool_id"`
	Amount math.Int `json:"amount"`
}

func (m *MsgNotifyReward) Reset()         { *m = MsgNotifyReward{} }
func (m *MsgNotifyReward) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgNotifyReward) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgNotifyReward
func (m *MsgNotifyReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgNotifyReward
func (m *MsgNotifyReward) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgSetWhitelist defines a governance message toggling a router address
type MsgSetWhitelist struct {
	Authority string `json:"authority"`
	Router    string `json:"router"`
	Enabled   bool   `json:"enabled"`
}

func (m *MsgSetWhitelist) Reset()         { *m = MsgSetWhitelist{} }
func (m *MsgSetWhitelist) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSetWhitelist) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgSetWhitelist
func (m *MsgSetWhitelist) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if _, err := sdk.AccAddressFromBech32(m.Router); err != nil {
		return fmt.Errorf("invalid router address: %w", err)
	}

	return nil
}

// GetSigners returns the expected signers for MsgSetWhitelist
func (m *MsgSetWhitelist) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}

// MsgSetRewardsDistribution defines a governance message changing the address
// allowed to fund reward periods for a pool
type MsgSetRewardsDistribution struct {
	Authority   string `json:"authority"`
	PoolId      uint64 `json:"pool_id"`
	Distributor string `json:"distributor"`
}

func (m *MsgSetRewardsDistribution) Reset()         { *m = MsgSetRewardsDistribution{} }
func (m *MsgSetRewardsDistribution) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSetRewardsDistribution) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgSetRewardsDistribution
func (m *MsgSetRewardsDistribution) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	if _, err := sdk.AccAddressFromBech32(m.Distributor); err != nil {
		return fmt.Errorf("invalid distributor address: %w", err)
	}

	return nil
}

// GetSigners returns the expected signers for MsgSetRewardsDistribution
func (m *MsgSetRewardsDistribution) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}
