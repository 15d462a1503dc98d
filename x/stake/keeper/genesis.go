package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/stake/types"
)

// InitGenesis initializes the stake module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: invalid genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: set params: %w", err)
	}

	k.SetNextPoolId(ctx, genState.NextPoolId)

	for _, pool := range genState.Pools {
		p := pool
		if err := k.SetStakePool(ctx, &p); err != nil {
			return fmt.Errorf("InitGenesis: set stake pool %d: %w", pool.Id, err)
		}
	}

	for _, acct := range genState.Accounts {
		a := acct
		if err := k.SetStakeAccount(ctx, &a); err != nil {
			return fmt.Errorf("InitGenesis: set stake account: %w", err)
		}
	}

	store := k.getStore(ctx)
	for _, router := range genState.Whitelist {
		addr, err := sdk.AccAddressFromBech32(router)
		if err != nil {
			return fmt.Errorf("InitGenesis: invalid router address %s: %w", router, err)
		}
		store.Set(WhitelistKey(addr), []byte{1})
	}

	return nil
}

// ExportGenesis exports the stake module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: get params: %w", err)
	}

	genState := &types.GenesisState{
		Params:     params,
		Pools:      []types.StakePool{},
		Accounts:   []types.StakeAccount{},
		Whitelist:  []string{},
		NextPoolId: 1,
	}

	store := k.getStore(ctx)
	if bz := store.Get(StakePoolCountKey); bz != nil {
		genState.NextPoolId = binary.BigEndian.Uint64(bz)
	}

	if err := k.IterateStakePools(ctx, func(pool types.StakePool) bool {
		genState.Pools = append(genState.Pools, pool)
		return false
	}); err != nil {
		return nil, fmt.Errorf("ExportGenesis: iterate pools: %w", err)
	}

	for _, pool := range genState.Pools {
		if err := k.IterateStakeAccounts(ctx, pool.Id, func(acct types.StakeAccount) bool {
			genState.Accounts = append(genState.Accounts, acct)
			return false
		}); err != nil {
			return nil, fmt.Errorf("ExportGenesis: iterate accounts: %w", err)
		}
	}

	k.IterateWhitelist(ctx, func(router sdk.AccAddress) bool {
		genState.Whitelist = append(genState.Whitelist, router.String())
		return false
	})

	return genState, nil
}
