package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/fetch-protocol/fetch/x/fetch/types"
	sharedkeeper "github.com/fetch-protocol/fetch/x/shared/keeper"
)

// referenceDepth measures how deep the native/token pool is, quoted into the
// stable denom through the native/stable pool. Without a stable pool (or
// when the quote cannot be served) the raw native reserve stands in.
func (k Keeper) referenceDepth(ctx context.Context, params types.Params, tokenPool sharedkeeper.PoolInfo) math.Int {
	nativeReserve := tokenPool.ReserveA
	if tokenPool.TokenB == params.NativeDenom {
		nativeReserve = tokenPool.ReserveB
	}

	stablePool, found := k.ammKeeper.GetPoolInfo(ctx, params.NativeDenom, params.StableDenom)
	if !found {
		return nativeReserve
	}

	quoted, err := k.ammKeeper.SimulateSwap(ctx, stablePool.PoolID, params.NativeDenom, params.StableDenom, nativeReserve)
	if err != nil {
		k.Logger(ctx).Debug("stable depth quote failed, using raw reserve",
			"pool_id", stablePool.PoolID,
			"error", err,
		)
		return nativeReserve
	}

	return quoted
}
