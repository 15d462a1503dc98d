package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgDeposit         = "deposit"
	TypeMsgDepositPair     = "deposit_pair"
	TypeMsgSetBurnPercent  = "set_burn_percent"
	TypeMsgSetStakePool    = "set_stake_pool"
	TypeMsgSetSplitFormula = "set_split_formula"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgDepositPair{}
	_ sdk.Msg = &MsgSetBurnPercent{}
	_ sdk.Msg = &MsgSetStakePool{}
	_ sdk.Msg = &MsgSetSplitFormula{}
)

// MsgDeposit defines a single-sided deposit settled by the router
type MsgDeposit struct {
	Depositor    string   `json:"depositor"`
	NativeAmount math.Int `json:"native_amount"`
}

func (m *MsgDeposit) Reset()         { *m = MsgDeposit{} }
func (m *MsgDeposit) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgDeposit) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgDeposit
func (m *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return fmt.Errorf("invalid depositor address: %w", err)
	}

	if m.NativeAmount.IsNil() || !m.NativeAmount.IsPositive() {
		return fmt.Errorf("native_amount must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgDeposit
func (m *MsgDeposit) GetSigners() []sdk.AccAddress {
	depositor, _ := sdk.AccAddressFromBech32(m.Depositor)
	return []sdk.AccAddress{depositor}
}

// MsgDepositPair defines a two-sided deposit where the depositor supplies
// both legs
type MsgDepositPair struct {
	Depositor    string   `json:"depositor"`
	NativeAmount math.Int `json:"native_amount"`
	TokenAmount  math.Int `json:"token_amount"`
}

func (m *MsgDepositPair) Reset()         { *m = MsgDepositPair{} }
func (m *MsgDepositPair) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgDepositPair) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgDepositPair
func (m *MsgDepositPair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return fmt.Errorf("invalid depositor address: %w", err)
	}

	if m.NativeAmount.IsNil() || !m.NativeAmount.IsPositive() {
		return fmt.Errorf("native_amount must be positive")
	}

	if m.TokenAmount.IsNil() || !m.TokenAmount.IsPositive() {
		return fmt.Errorf("token_amount must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgDepositPair
func (m *MsgDepositPair) GetSigners() []sdk.AccAddress {
	depositor, _ := sdk.AccAddressFromBech32(m.Depositor)
	return []sdk.AccAddress{depositor}
}

// MsgSetBurnPercent defines a governance message changing the LP burn split
type MsgSetBurnPercent struct {
	Authority string `json:"authority"`
	Percent   uint32 `json:"percent"`
}

func (m *MsgSetBurnPercent) Reset()         { *m = MsgSetBurnPercent{} }
func (m *MsgSetBurnPercent) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSetBurnPercent) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgSetBurnPercent
func (m *MsgSetBurnPercent) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if m.Percent < MinBurnPercent || m.Percent > MaxBurnPercent {
		return fmt.Errorf("percent must be between %d and %d, got %d", MinBurnPercent, MaxBurnPercent, m.Percent)
	}

	return nil
}

// GetSigners returns the expected signers for MsgSetBurnPercent
func (m *MsgSetBurnPercent) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}

// MsgSetStakePool defines a governance message pointing new deposits at a
// different stake pool
type MsgSetStakePool struct {
	Authority string `json:"authority"`
	PoolId    uint64 `json:"pool_id"`
}

func (m *MsgSetStakePool) Reset()         { *m = MsgSetStakePool{} }
func (m *MsgSetStakePool) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSetStakePool) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgSetStakePool
func (m *MsgSetStakePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if m.PoolId == 0 {
		return fmt.Errorf("pool_id must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgSetStakePool
func (m *MsgSetStakePool) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}

// MsgSetSplitFormula defines a governance message selecting a registered
// split formula
type MsgSetSplitFormula struct {
	Authority string `json:"authority"`
	Name      string `json:"name"`
}

func (m *MsgSetSplitFormula) Reset()         { *m = MsgSetSplitFormula{} }
func (m *MsgSetSplitFormula) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSetSplitFormula) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgSetSplitFormula
func (m *MsgSetSplitFormula) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if m.Name == "" {
		return fmt.Errorf("formula name must not be empty")
	}

	return nil
}

// GetSigners returns the expected signers for MsgSetSplitFormula
func (m *MsgSetSplitFormula) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}
