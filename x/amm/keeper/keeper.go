package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/fetch-protocol/fetch/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        codec.BinaryCodec
	bankKeeper types.BankKeeper
	authority  string

	// moduleAddressCache avoids recomputing the module address in hot paths
	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		authority:          authority,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the amm module
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

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}
