package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the stake module's genesis state.
type GenesisState struct {
	Params     Params         `json:"params"`
	Pools      []StakePool    `json:"pools"`
	Accounts   []StakeAccount `json:"accounts"`
	Whitelist  []string       `json:"whitelist"`
	NextPoolId uint64         `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state for the stake module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []StakePool{},
		Accounts:   []StakeAccount{},
		Whitelist:  []string{},
		NextPoolId: 1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	seen := make(map[uint64]bool, len(gs.Pools))
	for _, pool := range gs.Pools {
		if seen[pool.Id] {
			return fmt.Errorf("duplicate stake pool id %d", pool.Id)
		}
		seen[pool.Id] = true
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("stake pool %d: %w", pool.Id, err)
		}
		if pool.RewardsDistribution != "" {
			if _, err := sdk.AccAddressFromBech32(pool.RewardsDistribution); err != nil {
				return fmt.Errorf("stake pool %d: invalid rewards distribution address: %w", pool.Id, err)
			}
		}
	}

	for _, acct := range gs.Accounts {
		if !seen[acct.PoolId] {
			return fmt.Errorf("stake account references unknown pool %d", acct.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(acct.Staker); err != nil {
			return fmt.Errorf("invalid staker address %s: %w", acct.Staker, err)
		}
		if acct.Shares.IsNil() || acct.Shares.IsNegative() {
			return fmt.Errorf("stake account shares cannot be negative")
		}
		if acct.RouterShares.IsNil() || acct.RouterShares.IsNegative() {
			return fmt.Errorf("stake account router shares cannot be negative")
		}
		if acct.RouterShares.GT(acct.Shares) {
			return fmt.Errorf("router shares cannot exceed total shares")
		}
	}

	for _, router := range gs.Whitelist {
		if _, err := sdk.AccAddressFromBech32(router); err != nil {
			return fmt.Errorf("invalid whitelisted router address %s: %w", router, err)
		}
	}

	return nil
}
