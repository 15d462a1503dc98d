package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the amm module's genesis state.
type GenesisState struct {
	Params     Params     `json:"params"`
	Pools      []Pool     `json:"pools"`
	Positions  []Position `json:"positions"`
	NextPoolId uint64     `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state for the amm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Positions:  []Position{},
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
		if pool.Id == 0 {
			return fmt.Errorf("pool id cannot be zero")
		}
		if seen[pool.Id] {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		seen[pool.Id] = true

		if pool.TokenA == "" || pool.TokenB == "" {
			return fmt.Errorf("pool %d: token denoms cannot be empty", pool.Id)
		}
		if pool.TokenA >= pool.TokenB {
			return fmt.Errorf("pool %d: tokens must be ordered tokenA < tokenB", pool.Id)
		}
		if pool.ReserveA.IsNegative() || pool.ReserveB.IsNegative() {
			return fmt.Errorf("pool %d: reserves cannot be negative", pool.Id)
		}
		if pool.TotalShares.IsNegative() {
			return fmt.Errorf("pool %d: total shares cannot be negative", pool.Id)
		}
		if !pool.ReserveA.IsZero() && !pool.ReserveB.IsZero() && pool.TotalShares.IsZero() {
			return fmt.Errorf("pool %d: pool has reserves but no shares", pool.Id)
		}
	}

	for _, pos := range gs.Positions {
		if !seen[pos.PoolId] {
			return fmt.Errorf("position references unknown pool %d", pos.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(pos.Provider); err != nil {
			return fmt.Errorf("position has invalid provider address %s: %w", pos.Provider, err)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("position shares must be positive")
		}
	}

	return nil
}
