package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/fetch-protocol/fetch/x/sale/types"
)

// Keeper of the sale store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        codec.BinaryCodec
	bankKeeper types.BankKeeper
	ammKeeper  types.AmmKeeper
	authority  string

	// moduleAddressCache avoids recomputing the reserve address in hot paths
	moduleAddressCache sdk.AccAddress
	// ldAddressCache is the module account holding deepening funds
	ldAddressCache sdk.AccAddress
}

// NewKeeper creates a new sale Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	ammKeeper types.AmmKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		ammKeeper:          ammKeeper,
		authority:          authority,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
		ldAddressCache:     authtypes.NewModuleAddress(types.LdModuleName),
	}
}

// getStore returns the KVStore for the sale module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the reserve module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// GetLdAddress returns the liquidity deepening module account address.
func (k Keeper) GetLdAddress() sdk.AccAddress {
	return k.ldAddressCache
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}
