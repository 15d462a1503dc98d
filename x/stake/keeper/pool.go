package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/stake/types"
)

// GetNextPoolID returns the next stake pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	bz := store.Get(StakePoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(StakePoolCountKey, nextBz)

	return poolID, nil
}

// SetNextPoolId sets the next stake pool ID counter
func (k Keeper) SetNextPoolId(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(StakePoolCountKey, bz)
}

// CreateStakePool creates a reward-streaming pool over the LP shares of one
// amm pool. Only the module authority may create pools. Zero duration or
// delay fall back to the module parameters.
func (k Keeper) CreateStakePool(ctx context.Context, authority string, lpPoolID uint64, rewardsDenom string, durationSeconds, withdrawDelaySeconds int64, rewardsDistribution string) (*types.StakePool, error) {
	if authority != k.authority {
		return nil, types.ErrUnauthorized.Wrapf(
			"invalid authority; expected %s, got %s", k.authority, authority)
	}

	if lpPoolID == 0 {
		return nil, types.ErrInvalidInput.Wrap("lp pool id must be positive")
	}
	if err := sdk.ValidateDenom(rewardsDenom); err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid rewards denom: %v", err)
	}
	if durationSeconds < 0 || withdrawDelaySeconds < 0 {
		return nil, types.ErrInvalidInput.Wrap("duration and withdraw delay cannot be negative")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateStakePool: get params: %w", err)
	}
	if durationSeconds == 0 {
		durationSeconds = params.DefaultDurationSeconds
	}
	if withdrawDelaySeconds == 0 {
		withdrawDelaySeconds = params.DefaultWithdrawDelaySeconds
	}

	poolID, err := k.GetNextPoolID(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateStakePool: get next pool ID: %w", err)
	}

	pool := &types.StakePool{
		Id:                   poolID,
		LpPoolId:             lpPoolID,
		RewardsDenom:         rewardsDenom,
		RewardRate:           math.LegacyZeroDec(),
		PeriodFinish:         0,
		LastUpdateTime:       0,
		RewardPerShareStored: math.LegacyZeroDec(),
		TotalShares:          math.ZeroInt(),
		DurationSeconds:      durationSeconds,
		WithdrawDelaySeconds: withdrawDelaySeconds,
		RewardsDistribution:  rewardsDistribution,
	}

	if err := k.SetStakePool(ctx, pool); err != nil {
		return nil, fmt.Errorf("CreateStakePool: save pool: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyLpPoolID, fmt.Sprintf("%d", lpPoolID)),
			sdk.NewAttribute(types.AttributeKeyDuration, fmt.Sprintf("%d", durationSeconds)),
		),
	)

	return pool, nil
}

// GetStakePool retrieves a stake pool by ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetStakePool(ctx context.Context, poolID uint64) (*types.StakePool, error) {
	store := k.getStore(ctx)
	bz := store.Get(StakePoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("stake pool %d not found", poolID)
	}

	var pool types.StakePool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetStakePool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetStakePool saves a stake pool to the store
func (k Keeper) SetStakePool(ctx context.Context, pool *types.StakePool) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetStakePool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(StakePoolKey(pool.Id), bz)
	return nil
}

// IterateStakePools iterates over all stake pools
func (k Keeper) IterateStakePools(ctx context.Context, cb func(pool types.StakePool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, StakePoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.StakePool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IterateStakePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetStakeAccount retrieves a staker's position, or an empty position if none exists.
func (k Keeper) GetStakeAccount(ctx context.Context, poolID uint64, staker sdk.AccAddress) (*types.StakeAccount, error) {
	store := k.getStore(ctx)
	bz := store.Get(StakeAccountKey(poolID, staker))
	if bz == nil {
		return types.NewStakeAccount(poolID, staker.String()), nil
	}

	var acct types.StakeAccount
	if err := json.Unmarshal(bz, &acct); err != nil {
		return nil, fmt.Errorf("GetStakeAccount: unmarshal: %w", err)
	}
	return &acct, nil
}

// SetStakeAccount saves a staker's position. Zero-balance positions persist
// so the ledger keeps a full history of every account that ever staked.
func (k Keeper) SetStakeAccount(ctx context.Context, acct *types.StakeAccount) error {
	store := k.getStore(ctx)
	staker, err := sdk.AccAddressFromBech32(acct.Staker)
	if err != nil {
		return types.ErrInvalidInput.Wrapf("invalid staker address: %v", err)
	}

	bz, err := json.Marshal(acct)
	if err != nil {
		return fmt.Errorf("SetStakeAccount: marshal: %w", err)
	}
	store.Set(StakeAccountKey(acct.PoolId, staker), bz)
	return nil
}

// IterateStakeAccounts iterates over all positions in a stake pool
func (k Keeper) IterateStakeAccounts(ctx context.Context, poolID uint64, cb func(acct types.StakeAccount) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, StakeAccountKeyByPoolPrefix(poolID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var acct types.StakeAccount
		if err := json.Unmarshal(iterator.Value(), &acct); err != nil {
			return fmt.Errorf("IterateStakeAccounts: unmarshal: %w", err)
		}
		if cb(acct) {
			break
		}
	}
	return nil
}
