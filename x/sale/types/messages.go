package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgBuy               = "buy"
	TypeMsgFundReserve       = "fund_reserve"
	TypeMsgDeepen            = "deepen"
	TypeMsgPause             = "pause"
	TypeMsgUnpause           = "unpause"
	TypeMsgWithdrawUnused    = "withdraw_unused"
	TypeMsgUpdateBeneficiary = "update_beneficiary"
)

var (
	_ sdk.Msg = &MsgBuy{}
	_ sdk.Msg = &MsgFundReserve{}
	_ sdk.Msg = &MsgDeepen{}
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgUnpause{}
	_ sdk.Msg = &MsgWithdrawUnused{}
	_ sdk.Msg = &MsgUpdateBeneficiary{}
)

// MsgBuy defines a message buying sale tokens at the amm quote
type MsgBuy struct {
	Buyer    string   `json:"buyer"`
	AmountIn math.Int `json:"amount_in"`
}

func (m *MsgBuy) Reset()         { *m = MsgBuy{} }
func (m *MsgBuy) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgBuy) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgBuy
func (m *MsgBuy) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Buyer); err != nil {
		return fmt.Errorf("invalid buyer address: %w", err)
	}

	if m.AmountIn.IsNil() || !m.AmountIn.IsPositive() {
		return fmt.Errorf("amount_in must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgBuy
func (m *MsgBuy) GetSigners() []sdk.AccAddress {
	buyer, _ := sdk.AccAddressFromBech32(m.Buyer)
	return []sdk.AccAddress{buyer}
}

// MsgFundReserve defines a message topping up the sale reserve
type MsgFundReserve struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

func (m *MsgFundReserve) Reset()         { *m = MsgFundReserve{} }
func (m *MsgFundReserve) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgFundReserve) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgFundReserve
func (m *MsgFundReserve) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgFundReserve
func (m *MsgFundReserve) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgDeepen defines a message converting accumulated deepening funds into
// locked amm liquidity. Anyone may trigger it.
type MsgDeepen struct {
	Sender string `json:"sender"`
}

func (m *MsgDeepen) Reset()         { *m = MsgDeepen{} }
func (m *MsgDeepen) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgDeepen) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgDeepen
func (m *MsgDeepen) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgDeepen
func (m *MsgDeepen) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgPause defines a governance message pausing sales
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

// MsgUnpause defines a governance message resuming sales
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

// MsgWithdrawUnused defines a governance message sending part of the sale
// reserve to the beneficiary. A zero amount drains the whole reserve.
type MsgWithdrawUnused struct {
	Authority string   `json:"authority"`
	Amount    math.Int `json:"amount"`
}

func (m *MsgWithdrawUnused) Reset()         { *m = MsgWithdrawUnused{} }
func (m *MsgWithdrawUnused) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgWithdrawUnused) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgWithdrawUnused
func (m *MsgWithdrawUnused) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if !m.Amount.IsNil() && m.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdrawUnused
func (m *MsgWithdrawUnused) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}

// MsgUpdateBeneficiary defines a governance message changing the proceeds
// recipient
type MsgUpdateBeneficiary struct {
	Authority   string `json:"authority"`
	Beneficiary string `json:"beneficiary"`
}

func (m *MsgUpdateBeneficiary) Reset()         { *m = MsgUpdateBeneficiary{} }
func (m *MsgUpdateBeneficiary) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUpdateBeneficiary) ProtoMessage()    {}

// ValidateBasic performs basic validation of MsgUpdateBeneficiary
func (m *MsgUpdateBeneficiary) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	if _, err := sdk.AccAddressFromBech32(m.Beneficiary); err != nil {
		return fmt.Errorf("invalid beneficiary address: %w", err)
	}

	return nil
}

// GetSigners returns the expected signers for MsgUpdateBeneficiary
func (m *MsgUpdateBeneficiary) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}
