package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/amm/types"
	sharedkeeper "github.com/fetch-protocol/fetch/x/shared/keeper"
)

// MaxIterationLimit is the maximum number of items to return in unbounded queries
const MaxIterationLimit = 100

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(PoolCountKey, nextBz)

	return poolID, nil
}

// SetNextPoolId sets the next pool ID counter
func (k Keeper) SetNextPoolId(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// CreatePool creates a new liquidity pool.
// Tokens are ordered lexicographically. Returns ErrPoolAlreadyExists if the pair exists,
// ErrInsufficientLiquidity if amounts are below minimum.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) (*types.Pool, error) {
	// 1. Input validation
	if tokenA == tokenB {
		return nil, types.ErrInvalidTokenPair.Wrap("cannot create pool with identical tokens")
	}

	if tokenA == "" || tokenB == "" {
		return nil, types.ErrInvalidInput.Wrap("token denoms cannot be empty")
	}

	if amountA.IsZero() || amountA.IsNegative() {
		return nil, types.ErrInvalidInput.Wrap("amount A must be positive")
	}

	if amountB.IsZero() || amountB.IsNegative() {
		return nil, types.ErrInvalidInput.Wrap("amount B must be positive")
	}

	// 2. Ensure consistent token ordering (lexicographic)
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
		amountA, amountB = amountB, amountA
	}

	// 3. Check if pool already exists
	existingPool, err := k.GetPoolByTokens(ctx, tokenA, tokenB)
	if err == nil && existingPool != nil {
		return nil, types.ErrPoolAlreadyExists.Wrapf("pool already exists for token pair %s/%s", tokenA, tokenB)
	}

	// 4. Get and validate parameters
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: get params: %w", err)
	}

	// 5. Enforce minimum initial liquidity per token
	// This prevents dust pools that are vulnerable to manipulation
	if amountA.LT(params.MinLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrapf(
			"amount A %s below minimum initial liquidity %s",
			amountA, params.MinLiquidity,
		)
	}
	if amountB.LT(params.MinLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrapf(
			"amount B %s below minimum initial liquidity %s",
			amountB, params.MinLiquidity,
		)
	}

	// 6. Calculate initial shares using geometric mean (sqrt(x * y))
	// This prevents initial liquidity manipulation
	product, err := amountA.SafeMul(amountB)
	if err != nil {
		return nil, types.ErrOverflow.Wrapf("overflow calculating share product: %v", err)
	}

	sqrtShares, err := math.LegacyNewDecFromInt(product).ApproxSqrt()
	if err != nil {
		return nil, types.ErrOverflow.Wrapf("failed to calculate square root: %v", err)
	}

	initialShares := sqrtShares.TruncateInt()

	// 7. Check minimum liquidity requirement
	if initialShares.LT(params.MinLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrapf(
			"initial liquidity too low: %s < %s",
			initialShares, params.MinLiquidity,
		)
	}

	// 8. Get next pool ID
	poolID, err := k.GetNextPoolID(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: get next pool ID: %w", err)
	}

	// 9. Create pool structure
	pool := &types.Pool{
		Id:          poolID,
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    amountA,
		ReserveB:    amountB,
		TotalShares: initialShares,
		Creator:     creator.String(),
	}

	// 10. Transfer tokens FIRST (checks-effects-interactions)
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	coinA := sdk.NewCoin(tokenA, amountA)
	coinB := sdk.NewCoin(tokenB, amountB)

	if err := k.bankKeeper.SendCoins(sdkCtx, creator, moduleAddr, sdk.NewCoins(coinA, coinB)); err != nil {
		return nil, types.ErrInsufficientLiquidity.Wrapf("failed to transfer tokens: %v", err)
	}

	// 11. Save pool to store AFTER receiving tokens
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, fmt.Errorf("CreatePool: save pool: %w", err)
	}

	// 12. Index pool by tokens
	if err := k.SetPoolByTokens(ctx, tokenA, tokenB, poolID); err != nil {
		return nil, fmt.Errorf("CreatePool: set pool by tokens index: %w", err)
	}

	// 13. Set initial liquidity position for creator
	if err := k.SetLiquidity(ctx, poolID, creator, initialShares); err != nil {
		return nil, fmt.Errorf("CreatePool: set creator liquidity: %w", err)
	}

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, initialShares.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, creator.String()),
		),
	})

	return pool, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByTokens retrieves a pool by its token pair (order-independent).
// Tokens are internally sorted for consistent lookup. Returns ErrPoolNotFound if not found.
func (k Keeper) GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (*types.Pool, error) {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}

	store := k.getStore(ctx)
	bz := store.Get(PoolByTokensKey(tokenA, tokenB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool not found for token pair %s/%s", tokenA, tokenB)
	}

	poolID := binary.BigEndian.Uint64(bz)
	return k.GetPool(ctx, poolID)
}

// SetPoolByTokens indexes a pool by its token pair
func (k Keeper) SetPoolByTokens(ctx context.Context, tokenA, tokenB string, poolID uint64) error {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}

	store := k.getStore(ctx)
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	store.Set(PoolByTokensKey(tokenA, tokenB), poolIDBytes)
	return nil
}

// GetPoolInfo returns a pool snapshot for cross-module consumers, keyed by token pair.
func (k Keeper) GetPoolInfo(ctx context.Context, tokenA, tokenB string) (sharedkeeper.PoolInfo, bool) {
	pool, err := k.GetPoolByTokens(ctx, tokenA, tokenB)
	if err != nil {
		return sharedkeeper.PoolInfo{}, false
	}
	return sharedkeeper.PoolInfo{
		PoolID:      pool.Id,
		TokenA:      pool.TokenA,
		TokenB:      pool.TokenB,
		ReserveA:    pool.ReserveA,
		ReserveB:    pool.ReserveB,
		TotalShares: pool.TotalShares,
	}, true
}

// IteratePools iterates over all pools
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools with a maximum limit to prevent DoS
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	pools := make([]types.Pool, 0, MaxIterationLimit)
	count := 0
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		if count >= MaxIterationLimit {
			return true
		}
		pools = append(pools, pool)
		count++
		return false
	})
	return pools, err
}

// DeletePool removes a pool (governance only - emergency use).
// Only empty pools may be deleted.
func (k Keeper) DeletePool(ctx context.Context, poolID uint64, authority string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf(
			"invalid authority; expected %s, got %s", k.authority, authority)
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	if !pool.ReserveA.IsZero() || !pool.ReserveB.IsZero() || !pool.TotalShares.IsZero() {
		return types.ErrInvalidPoolState.Wrap("cannot delete pool with active liquidity")
	}

	store := k.getStore(ctx)
	store.Delete(PoolKey(poolID))
	store.Delete(PoolByTokensKey(pool.TokenA, pool.TokenB))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"pool_deleted",
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute("authority", authority),
		),
	)

	return nil
}
