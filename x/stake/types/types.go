package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// StakePool is a reward-streaming pool over LP shares of one amm pool.
// Rewards stream linearly from LastUpdateTime to PeriodFinish at RewardRate
// per second, split pro rata across all staked shares.
type StakePool struct {
	Id                   uint64         `json:"id"`
	LpPoolId             uint64         `json:"lp_pool_id"`
	RewardsDenom         string         `json:"rewards_denom"`
	RewardRate           math.LegacyDec `json:"reward_rate"`
	PeriodFinish         int64          `json:"period_finish"`
	LastUpdateTime       int64          `json:"last_update_time"`
	RewardPerShareStored math.LegacyDec `json:"reward_per_share_stored"`
	TotalShares          math.Int       `json:"total_shares"`
	DurationSeconds      int64          `json:"duration_seconds"`
	WithdrawDelaySeconds int64          `json:"withdraw_delay_seconds"`
	RewardsDistribution  string         `json:"rewards_distribution"`
}

// Validate performs structural checks on a stake pool.
func (p StakePool) Validate() error {
	if p.Id == 0 {
		return fmt.Errorf("stake pool id cannot be zero")
	}
	if p.LpPoolId == 0 {
		return fmt.Errorf("lp pool id cannot be zero")
	}
	if p.RewardsDenom == "" {
		return fmt.Errorf("rewards denom cannot be empty")
	}
	if p.RewardRate.IsNil() || p.RewardRate.IsNegative() {
		return fmt.Errorf("reward rate cannot be negative")
	}
	if p.RewardPerShareStored.IsNil() || p.RewardPerShareStored.IsNegative() {
		return fmt.Errorf("reward per share cannot be negative")
	}
	if p.TotalShares.IsNil() || p.TotalShares.IsNegative() {
		return fmt.Errorf("total shares cannot be negative")
	}
	if p.DurationSeconds <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if p.WithdrawDelaySeconds < 0 {
		return fmt.Errorf("withdraw delay cannot be negative")
	}
	return nil
}

// StakeAccount is one staker's position in a stake pool. RouterShares counts
// the subset of Shares that arrived through a whitelisted router; NFT tiers
// are granted against RouterShares only.
type StakeAccount struct {
	PoolId             uint64         `json:"pool_id"`
	Staker             string         `json:"staker"`
	Shares             math.Int       `json:"shares"`
	RouterShares       math.Int       `json:"router_shares"`
	RewardPerSharePaid math.LegacyDec `json:"reward_per_share_paid"`
	AccruedRewards     math.Int       `json:"accrued_rewards"`
	LastStakeTime      int64          `json:"last_stake_time"`
	ClaimedTiers       []uint32       `json:"claimed_tiers,omitempty"`
}

// NewStakeAccount returns an empty position for a staker.
func NewStakeAccount(poolID uint64, staker string) *StakeAccount {
	return &StakeAccount{
		PoolId:             poolID,
		Staker:             staker,
		Shares:             math.ZeroInt(),
		RouterShares:       math.ZeroInt(),
		RewardPerSharePaid: math.LegacyZeroDec(),
		AccruedRewards:     math.ZeroInt(),
	}
}

// HasClaimedTier reports whether the given tier was already claimed.
func (a StakeAccount) HasClaimedTier(tier uint32) bool {
	for _, claimed := range a.ClaimedTiers {
		if claimed == tier {
			return true
		}
	}
	return false
}

// Params defines the parameters for the stake module.
type Params struct {
	// DefaultDurationSeconds is the reward period length used when a pool is
	// created without an explicit duration.
	DefaultDurationSeconds int64 `json:"default_duration_seconds"`
	// DefaultWithdrawDelaySeconds is the anti-dump delay applied to new pools.
	DefaultWithdrawDelaySeconds int64 `json:"default_withdraw_delay_seconds"`
	// TierThresholds are the router-seeded share amounts that unlock NFT
	// tiers, in ascending order. Tier N is reached at TierThresholds[N].
	TierThresholds []math.Int `json:"tier_thresholds"`
}

// DefaultParams returns the default stake module parameters.
func DefaultParams() Params {
	return Params{
		DefaultDurationSeconds:      60 * 60 * 24 * 30, // 30 days
		DefaultWithdrawDelaySeconds: 60 * 60 * 24,      // 24 hours
		TierThresholds: []math.Int{
			math.NewInt(1_000_000),
			math.NewInt(10_000_000),
			math.NewInt(100_000_000),
		},
	}
}

// Validate validates the stake module parameters.
func (p Params) Validate() error {
	if p.DefaultDurationSeconds <= 0 {
		return fmt.Errorf("default duration must be positive, got %d", p.DefaultDurationSeconds)
	}
	if p.DefaultWithdrawDelaySeconds < 0 {
		return fmt.Errorf("default withdraw delay cannot be negative, got %d", p.DefaultWithdrawDelaySeconds)
	}
	prev := math.ZeroInt()
	for i, threshold := range p.TierThresholds {
		if threshold.IsNil() || !threshold.IsPositive() {
			return fmt.Errorf("tier threshold %d must be positive", i)
		}
		if threshold.LTE(prev) {
			return fmt.Errorf("tier thresholds must be strictly ascending")
		}
		prev = threshold
	}
	return nil
}
