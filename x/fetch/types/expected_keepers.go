package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/fetch-protocol/fetch/x/shared/keeper"
)

// BankKeeper defines the expected bank keeper interface
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// AmmKeeper defines the amm keeper surface the router settles against.
type AmmKeeper interface {
	GetPoolInfo(ctx context.Context, tokenA, tokenB string) (sharedkeeper.PoolInfo, bool)
	SimulateSwap(ctx context.Context, poolID uint64, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error)
	Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) (math.Int, error)
	AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, math.Int, math.Int, error)
	TransferLiquidity(ctx context.Context, poolID uint64, from, to sdk.AccAddress, shares math.Int) error
	GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error)
}

// StakeKeeper defines the stake keeper surface the router credits deposits
// through. The router must be whitelisted for StakeFor to succeed.
type StakeKeeper interface {
	StakeFor(ctx context.Context, router sdk.AccAddress, poolID uint64, beneficiary sdk.AccAddress, shares math.Int) error
}

// SaleKeeper defines the sale keeper surface serving the deposit's sale leg.
type SaleKeeper interface {
	GetSalePrice(ctx context.Context, amountIn math.Int) (math.Int, error)
	BuyFor(ctx sdk.Context, buyer sdk.AccAddress, amountIn math.Int) (math.Int, error)
}
