package keeper

import (
	"context"
	"strconv"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/stake/types"
)

// IsWhitelisted reports whether a router address may call StakeFor.
func (k Keeper) IsWhitelisted(ctx context.Context, router sdk.AccAddress) bool {
	store := k.getStore(ctx)
	bz := store.Get(WhitelistKey(router))
	return bz != nil && bz[0] == 1
}

// SetWhitelist toggles a router address on or off the StakeFor whitelist.
// Only the module authority may change the whitelist.
func (k Keeper) SetWhitelist(ctx context.Context, authority string, router sdk.AccAddress, enabled bool) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf(
			"invalid authority; expected %s, got %s", k.authority, authority)
	}

	store := k.getStore(ctx)
	if enabled {
		store.Set(WhitelistKey(router), []byte{1})
	} else {
		store.Delete(WhitelistKey(router))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWhitelist,
			sdk.NewAttribute(types.AttributeKeyRouter, router.String()),
			sdk.NewAttribute(types.AttributeKeyEnabled, strconv.FormatBool(enabled)),
		),
	)

	return nil
}

// IterateWhitelist iterates over all whitelisted router addresses.
func (k Keeper) IterateWhitelist(ctx context.Context, cb func(router sdk.AccAddress) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, WhitelistKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		router := sdk.AccAddress(iterator.Key()[len(WhitelistKeyPrefix):])
		if cb(router) {
			break
		}
	}
}
