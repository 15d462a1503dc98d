package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/fetch-protocol/fetch/x/fetch/types"
)

// Keeper of the fetch store
type Keeper struct {
	storeKey    storetypes.StoreKey
	cdc         codec.BinaryCodec
	bankKeeper  types.BankKeeper
	ammKeeper   types.AmmKeeper
	stakeKeeper types.StakeKeeper
	saleKeeper  types.SaleKeeper
	authority   string

	// formulas holds the registered split formulas, selected by params
	formulas map[string]types.SplitFormula

	// moduleAddressCache avoids recomputing the module address in hot paths
	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new fetch Keeper instance. The linear and fixed split
// formulas are registered out of the box.
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	ammKeeper types.AmmKeeper,
	stakeKeeper types.StakeKeeper,
	saleKeeper types.SaleKeeper,
	authority string,
) Keeper {
	formulas := map[string]types.SplitFormula{}
	for _, f := range []types.SplitFormula{
		types.LinearSplitFormula{},
		types.FixedSplitFormula{},
	} {
		formulas[f.Name()] = f
	}

	return Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		ammKeeper:          ammKeeper,
		stakeKeeper:        stakeKeeper,
		saleKeeper:         saleKeeper,
		authority:          authority,
		formulas:           formulas,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the fetch module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// GetFormula returns a registered split formula by name.
func (k Keeper) GetFormula(name string) (types.SplitFormula, bool) {
	f, ok := k.formulas[name]
	return f, ok
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}
