package types

const (
	// ModuleName defines the module name
	ModuleName = "fetch"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// BurnModuleName is the module account receiving the burned LP share
	// split. No key controls it, so shares sent there are gone for good.
	BurnModuleName = "fetch_burn"
)

// Event types emitted by the fetch module
const (
	EventTypeDeposit            = "fetch_deposit"
	EventTypeBurnPercentUpdated = "burn_percent_updated"
	EventTypeStakePoolUpdated   = "stake_pool_updated"
	EventTypeFormulaUpdated     = "split_formula_updated"
)

// Event attribute keys
const (
	AttributeKeyDepositor    = "depositor"
	AttributeKeyNativeIn     = "native_in"
	AttributeKeyTokenIn      = "token_in"
	AttributeKeyTokenBought  = "token_bought"
	AttributeKeyTokenSwapped = "token_swapped"
	AttributeKeyStakedShares = "staked_shares"
	AttributeKeyBurnedShares = "burned_shares"
	AttributeKeyRefund       = "refund"
	AttributeKeyPercent      = "percent"
	AttributeKeyPoolID       = "pool_id"
	AttributeKeyFormula      = "formula"
)
