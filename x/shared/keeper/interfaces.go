// Package keeper provides shared keeper interfaces for cross-module communication.
// Versioned interfaces allow stable API contracts between modules.
package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// =============================================================================
// AMM Keeper Interfaces (Versioned)
// =============================================================================

// AmmKeeperV1 defines the minimal amm keeper interface for cross-module use.
// Version 1.0 - Initial release for testnet
// Modules should depend on this interface rather than the concrete keeper.
type AmmKeeperV1 interface {
	// GetPoolInfo returns a pool snapshot by token pair.
	GetPoolInfo(ctx context.Context, tokenA, tokenB string) (PoolInfo, bool)

	// SimulateSwap calculates expected output without executing.
	SimulateSwap(ctx context.Context, poolID uint64, tokenIn, tokenOut string, amountIn sdkmath.Int) (sdkmath.Int, error)
}

// AmmKeeperV1Extended extends V1 with the mutating operations the router and
// sale modules settle through. Use this when the consumer moves funds.
type AmmKeeperV1Extended interface {
	AmmKeeperV1

	// Swap executes a trade against a pool on the trader's balance.
	Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn, tokenOut string, amountIn, minAmountOut sdkmath.Int) (sdkmath.Int, error)

	// AddLiquidity provisions both legs and mints LP shares.
	// Returns shares minted and the amounts actually consumed.
	AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB sdkmath.Int) (sdkmath.Int, sdkmath.Int, sdkmath.Int, error)

	// TransferLiquidity moves an LP position without touching reserves.
	TransferLiquidity(ctx context.Context, poolID uint64, from, to sdk.AccAddress, shares sdkmath.Int) error

	// GetLiquidity returns a provider's LP share balance in a pool.
	GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (sdkmath.Int, error)
}

// PoolInfo holds pool data returned by amm queries.
type PoolInfo struct {
	PoolID      uint64
	TokenA      string
	TokenB      string
	ReserveA    sdkmath.Int
	ReserveB    sdkmath.Int
	TotalShares sdkmath.Int
}

// =============================================================================
// Stake Keeper Interfaces (Versioned)
// =============================================================================

// StakeKeeperV1 defines the minimal stake keeper interface for cross-module use.
// Version 1.0 - Initial release for testnet
type StakeKeeperV1 interface {
	// StakeFor credits LP shares pulled from a whitelisted router to a
	// beneficiary's stake account.
	StakeFor(ctx context.Context, router sdk.AccAddress, poolID uint64, beneficiary sdk.AccAddress, shares sdkmath.Int) error
}

// =============================================================================
// Sale Keeper Interfaces (Versioned)
// =============================================================================

// SaleKeeperV1 defines the minimal sale keeper interface for cross-module use.
// Version 1.0 - Initial release for testnet
type SaleKeeperV1 interface {
	// GetSalePrice quotes the sale output for a payment amount.
	GetSalePrice(ctx context.Context, amountIn sdkmath.Int) (sdkmath.Int, error)

	// BuyFor executes a treasury purchase on the buyer's balance.
	BuyFor(ctx sdk.Context, buyer sdk.AccAddress, amountIn sdkmath.Int) (sdkmath.Int, error)
}

// =============================================================================
// Version Constants
// =============================================================================

const (
	// AmmKeeperVersion is the current amm keeper interface version.
	AmmKeeperVersion = "v1.0.0"

	// StakeKeeperVersion is the current stake keeper interface version.
	StakeKeeperVersion = "v1.0.0"

	// SaleKeeperVersion is the current sale keeper interface version.
	SaleKeeperVersion = "v1.0.0"
)

// =============================================================================
// Interface Compatibility Notes
// =============================================================================

/*
API Versioning Guidelines:

1. MINOR VERSION BUMP (v1.0 -> v1.1):
   - Add new methods to Extended interfaces
   - Never remove or change existing method signatures
   - Existing code continues to work

2. MAJOR VERSION BUMP (v1 -> v2):
   - Create new interface (e.g., AmmKeeperV2)
   - May change method signatures
   - Old interfaces remain for backwards compatibility
   - Deprecate old versions with timeline

3. DEPRECATION:
   - Add "Deprecated: use XxxV2 instead" comment
   - Keep deprecated interfaces for at least 2 minor releases
   - Remove in next major version

4. EMBEDDING:
   - V2 can embed V1 to inherit methods
   - Example: type AmmKeeperV2 interface { AmmKeeperV1; NewMethod() }

5. ADAPTER PATTERN:
   - If keeper doesn't match interface exactly, create an adapter
   - Adapters live in the module using the interface
*/
