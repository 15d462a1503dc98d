package types

const (
	// ModuleName defines the module name
	ModuleName = "stake"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Event types emitted by the stake module
const (
	EventTypePoolCreated    = "stake_pool_created"
	EventTypeStaked         = "staked"
	EventTypeWithdrawn      = "withdrawn"
	EventTypeRewardClaimed  = "reward_claimed"
	EventTypeRewardNotified = "reward_notified"
	EventTypeExited         = "exited"
	EventTypeNftClaimed     = "nft_claimed"
	EventTypeWhitelist      = "whitelist_updated"
	EventTypeDistribution   = "rewards_distribution_updated"
)

// Event attribute keys
const (
	AttributeKeyPoolID      = "pool_id"
	AttributeKeyLpPoolID    = "lp_pool_id"
	AttributeKeyStaker      = "staker"
	AttributeKeyRouter      = "router"
	AttributeKeyShares      = "shares"
	AttributeKeyReward      = "reward"
	AttributeKeyRate        = "rate"
	AttributeKeyDuration    = "duration"
	AttributeKeyTier        = "tier"
	AttributeKeyEnabled     = "enabled"
	AttributeKeyDistributor = "distributor"
)
