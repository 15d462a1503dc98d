package types

const (
	// ModuleName defines the module name
	ModuleName = "sale"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// LdModuleName is the module account accumulating the liquidity
	// deepening share of sale proceeds.
	LdModuleName = "sale_ld"
)

// Event types emitted by the sale module
const (
	EventTypeBuy               = "sale_buy"
	EventTypeDeepen            = "liquidity_deepened"
	EventTypeReserveFunded     = "reserve_funded"
	EventTypeUnusedWithdrawn   = "unused_withdrawn"
	EventTypeBeneficiaryUpdate = "beneficiary_updated"
)

// Event attribute keys
const (
	AttributeKeyBuyer       = "buyer"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeyLdAmount    = "ld_amount"
	AttributeKeyBeneficiary = "beneficiary"
	AttributeKeyAmount      = "amount"
	AttributeKeyPoolID      = "pool_id"
	AttributeKeyShares      = "shares"
	AttributeKeySender      = "sender"
)
