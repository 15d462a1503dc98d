package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the parameters for the sale module.
type Params struct {
	// SaleDenom is the token sold out of the module reserve.
	SaleDenom string `json:"sale_denom"`
	// PaymentDenom is the token buyers pay with.
	PaymentDenom string `json:"payment_denom"`
	// Beneficiary receives the non-deepening share of sale proceeds.
	Beneficiary string `json:"beneficiary"`
	// LdPercent is the share of each payment (0..100) accumulated for
	// liquidity deepening instead of going to the beneficiary.
	LdPercent uint32 `json:"ld_percent"`
}

// DefaultParams returns the default sale module parameters.
func DefaultParams() Params {
	return Params{
		SaleDenom:    "ufet",
		PaymentDenom: "ubnb",
		Beneficiary:  "",
		LdPercent:    20,
	}
}

// Validate validates the sale module parameters.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.SaleDenom); err != nil {
		return fmt.Errorf("invalid sale denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.PaymentDenom); err != nil {
		return fmt.Errorf("invalid payment denom: %w", err)
	}
	if p.SaleDenom == p.PaymentDenom {
		return fmt.Errorf("sale and payment denoms must differ")
	}
	if p.Beneficiary != "" {
		if _, err := sdk.AccAddressFromBech32(p.Beneficiary); err != nil {
			return fmt.Errorf("invalid beneficiary address: %w", err)
		}
	}
	if p.LdPercent > 100 {
		return fmt.Errorf("ld percent must be at most 100, got %d", p.LdPercent)
	}
	return nil
}
