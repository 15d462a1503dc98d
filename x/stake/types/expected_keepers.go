package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected bank keeper interface
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// LiquidityKeeper defines the amm keeper surface the stake module needs:
// moving LP share positions into and out of custody.
type LiquidityKeeper interface {
	TransferLiquidity(ctx context.Context, poolID uint64, from, to sdk.AccAddress, shares math.Int) error
	GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error)
}

// NFTMinter mints tier achievement NFTs for stakers. The concrete minter
// lives outside this module; tests use a recording mock.
type NFTMinter interface {
	MintTierNFT(ctx context.Context, recipient sdk.AccAddress, stakePoolID uint64, tier uint32) error
}
