package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// PausedKey is the store key for the module pause flag
var PausedKey = []byte{0x06}

// Event types for the amm module
const (
	EventTypePoolCreated       = "pool_created"
	EventTypeSwap              = "swap"
	EventTypeAddLiquidity      = "add_liquidity"
	EventTypeRemoveLiquidity   = "remove_liquidity"
	EventTypeTransferLiquidity = "transfer_liquidity"

	AttributeKeyPoolID    = "pool_id"
	AttributeKeyCreator   = "creator"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyShares    = "shares"
	AttributeKeyTrader    = "trader"
	AttributeKeyProvider  = "provider"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyFee       = "fee"
	AttributeKeyFrom      = "from"
	AttributeKeyTo        = "to"
)
