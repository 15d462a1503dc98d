package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreatePool      = "create_pool"
	TypeMsgAddLiquidity    = "add_liquidity"
	TypeMsgRemoveLiquidity = "remove_liquidity"
	TypeMsgSwap            = "swap"
	TypeMsgPause           = "pause"
	TypeMsgUnpause         = "unpause"
)

var (
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgSwap{}
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgUnpause{}
)

// MsgCreatePool defines a message to create a new liquidity pool
type MsgCreatePool struct {
	Creator string   `json:"creator"`
	TokenA  string   `json:"token_a"`
	TokenB  string   `json:"token_b"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

func (m *MsgCreatePool) Reset()         { *m = MsgCreatePool{} }
func (m *MsgCreatePool) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgCreatePool) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgCreatePool
func (m *MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return fmt.Errorf("invalid creator address: %w", err)
	}

	if m.TokenA == "" {
		return fmt.Errorf("token_a cannot be empty")
	}

	if m.TokenB == "" {
		return fmt.Errorf("token_b cannot be empty")
	}

	if m.TokenA == m.TokenB {
		return fmt.Errorf("tokens must be different")
	}

	if err := sdk.ValidateDenom(m.TokenA); err != nil {
		return fmt.Errorf("invalid denom for token_a: %w", err)
	}

	if err := sdk.ValidateDenom(m.TokenB); err != nil {
		return fmt.Errorf("invalid denom for token_b: %w", err)
	}

	if m.AmountA.IsNil() || !m.AmountA.IsPositive() {
		return fmt.Errorf("amount_a must be positive")
	}

	if m.AmountB.IsNil() || !m.AmountB.IsPositive() {
		return fmt.Errorf("amount_b must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgCreatePool
// Assumes address is valid (validated in ValidateBasic)
func (m *MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(m.Creator)
	return []sdk.AccAddress{creator}
}

// MsgAddLiquidity defines a message to add liquidity to an existing pool
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

func (m *MsgAddLiquidity) Reset()         { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgAddLiquidity) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgAddLiquidity
func (m *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	if m.AmountA.IsNil() || !m.AmountA.IsPositive() {
		return fmt.Errorf("amount_a must be positive")
	}

	if m.AmountB.IsNil() || !m.AmountB.IsPositive() {
		return fmt.Errorf("amount_b must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgAddLiquidity
func (m *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(m.Provider)
	return []sdk.AccAddress{provider}
}

// MsgRemoveLiquidity defines a message to remove liquidity from a pool
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
}

func (m *MsgRemoveLiquidity) Reset()         { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgRemoveLiquidity) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgRemoveLiquidity
func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	if m.Shares.IsNil() || !m.Shares.IsPositive() {
		return fmt.Errorf("shares must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgRemoveLiquidity
func (m *MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(m.Provider)
	return []sdk.AccAddress{provider}
}

// MsgSwap defines a message to swap tokens through a pool
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	TokenOut     string   `json:"token_out"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Deadline     int64    `json:"deadline"`
}

func (m *MsgSwap) Reset()         { *m = MsgSwap{} }
func (m *MsgSwap) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSwap) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgSwap
func (m *MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return fmt.Errorf("invalid trader address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	if err := sdk.ValidateDenom(m.TokenIn); err != nil {
		return fmt.Errorf("invalid denom for token_in: %w", err)
	}

	if err := sdk.ValidateDenom(m.TokenOut); err != nil {
		return fmt.Errorf("invalid denom for token_out: %w", err)
	}

	if m.TokenIn == m.TokenOut {
		return fmt.Errorf("cannot swap the same token denomination")
	}

	if m.AmountIn.IsNil() || !m.AmountIn.IsPositive() {
		return fmt.Errorf("amount_in must be positive")
	}

	if m.MinAmountOut.IsNil() || !m.MinAmountOut.IsPositive() {
		return fmt.Errorf("min_amount_out must be positive for slippage protection")
	}

	if m.Deadline <= 0 {
		return fmt.Errorf("deadline must be a positive unix timestamp")
	}

	return nil
}

// GetSigners returns the expected signers for MsgSwap
func (m *MsgSwap) GetSigners() []sdk.AccAddress {
	trader, _ := sdk.AccAddressFromBech32(m.Trader)
	return []sdk.AccAddress{trader}
}

// MsgPause defines a governance message pausing all pool operations
type MsgPause struct {
	Authority string `json:"authority"`
}

func (m *MsgPause) Reset()         { *m = MsgPause{} }
func (m *MsgPause) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgPause) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgPause
func (m *MsgPause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgPause
func (m *MsgPause) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}

// MsgUnpause defines a governance message resuming pool operations
type MsgUnpause struct {
	Authority string `json:"authority"`
}

func (m *MsgUnpause) Reset()         { *m = MsgUnpause{} }
func (m *MsgUnpause) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUnpause) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgUnpause
func (m *MsgUnpause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgUnpause
func (m *MsgUnpause) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}
