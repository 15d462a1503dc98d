package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fetch-protocol/fetch/x/stake/types"
)

// ClaimNFT mints the tier achievement NFT for a staker. Tiers are measured
// against router-seeded shares only and each tier can be claimed once.
func (k Keeper) ClaimNFT(ctx context.Context, staker sdk.AccAddress, poolID uint64, tier uint32) error {
	if k.nftMinter == nil {
		return types.ErrInvalidInput.Wrap("no NFT minter configured")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("ClaimNFT: get params: %w", err)
	}
	if int(tier) >= len(params.TierThresholds) {
		return types.ErrInvalidInput.Wrapf("tier %d does not exist, highest tier is %d", tier, len(params.TierThresholds)-1)
	}

	acct, err := k.GetStakeAccount(ctx, poolID, staker)
	if err != nil {
		return err
	}

	if acct.HasClaimedTier(tier) {
		return types.ErrTierAlreadyClaimed.Wrapf("tier %d already claimed in pool %d", tier, poolID)
	}

	threshold := params.TierThresholds[tier]
	if acct.RouterShares.LT(threshold) {
		return types.ErrTierNotReached.Wrapf(
			"tier %d requires %s router-seeded shares, have %s", tier, threshold, acct.RouterShares)
	}

	if err := k.nftMinter.MintTierNFT(ctx, staker, poolID, tier); err != nil {
		return fmt.Errorf("ClaimNFT: mint: %w", err)
	}

	acct.ClaimedTiers = append(acct.ClaimedTiers, tier)
	if err := k.SetStakeAccount(ctx, acct); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNftClaimed,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyTier, fmt.Sprintf("%d", tier)),
		),
	)

	return nil
}

// HighestReachableTier returns the highest tier index the staker's
// router-seeded shares currently qualify for, or -1 if none.
func (k Keeper) HighestReachableTier(ctx context.Context, poolID uint64, staker sdk.AccAddress) (int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return -1, err
	}

	acct, err := k.GetStakeAccount(ctx, poolID, staker)
	if err != nil {
		return -1, err
	}

	highest := -1
	for i, threshold := range params.TierThresholds {
		if acct.RouterShares.GTE(threshold) {
			highest = i
		}
	}
	return highest, nil
}
