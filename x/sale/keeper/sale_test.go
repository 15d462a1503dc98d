package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/fetch-protocol/fetch/testutil/keeper"
)

// Helper functions shared across sale keeper tests

func testAddr(index int) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, []byte("test_sale_account__"))
	addr[19] = byte(index)
	return sdk.AccAddress(addr)
}

func fund(t *testing.T, f keepertest.SaleFixture, addr sdk.AccAddress, coins ...sdk.Coin) {
	require.NoError(t, f.Bank.MintCoins(f.Ctx, minttypes.ModuleName, sdk.NewCoins(coins...)))
	require.NoError(t, f.Bank.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, sdk.NewCoins(coins...)))
}

// setupSaleEnv creates a 1M ubnb / 4M ufet reference pool, funds the sale
// reserve with 1M ufet, and configures a beneficiary. The returned buyer
// holds 200k ubnb.
func setupSaleEnv(t *testing.T) (keepertest.SaleFixture, sdk.AccAddress, sdk.AccAddress) {
	f := keepertest.SaleKeeper(t)

	creator := testAddr(1)
	fund(t, f, creator,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)
	_, err := f.Amm.CreatePool(f.Ctx, creator, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	funder := testAddr(2)
	fund(t, f, funder, sdk.NewCoin("ufet", math.NewInt(1_000_000)))
	require.NoError(t, f.Keeper.FundReserve(f.Ctx, funder, math.NewInt(1_000_000)))

	beneficiary := testAddr(7)
	require.NoError(t, f.Keeper.UpdateBeneficiary(f.Ctx, f.Authority, beneficiary.String()))

	buyer := testAddr(3)
	fund(t, f, buyer, sdk.NewCoin("ubnb", math.NewInt(200_000)))

	return f, buyer, beneficiary
}

// TestGetSalePrice_MatchesAmmQuote tests that the sale price is the amm swap quote
func TestGetSalePrice_MatchesAmmQuote(t *testing.T) {
	f, _, _ := setupSaleEnv(t)

	quote, err := f.Keeper.GetSalePrice(f.Ctx, math.NewInt(100_000))
	require.NoError(t, err)

	// Same trade simulated directly against the pool
	info, found := f.Amm.GetPoolInfo(f.Ctx, "ubnb", "ufet")
	require.True(t, found)
	ammQuote, err := f.Amm.SimulateSwap(f.Ctx, info.PoolID, "ubnb", "ufet", math.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, ammQuote, quote)

	// 100k in against 1M/4M reserves at 0.3% fee
	require.Equal(t, math.NewInt(362_644), quote)
}

// TestGetSalePrice_NoPool tests rejection when no reference pool exists
func TestGetSalePrice_NoPool(t *testing.T) {
	f := keepertest.SaleKeeper(t)

	_, err := f.Keeper.GetSalePrice(f.Ctx, math.NewInt(100_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no pool")
}

// TestBuy_SplitsPayment tests a purchase: quote paid out, payment split
// between the deepening account and the beneficiary
func TestBuy_SplitsPayment(t *testing.T) {
	f, buyer, beneficiary := setupSaleEnv(t)

	amountOut, err := f.Keeper.BuyFor(f.Ctx, buyer, math.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(362_644), amountOut)

	// Buyer paid 100k ubnb and received the quote in ufet
	require.Equal(t, math.NewInt(100_000), f.Bank.GetBalance(f.Ctx, buyer, "ubnb").Amount)
	require.Equal(t, math.NewInt(362_644), f.Bank.GetBalance(f.Ctx, buyer, "ufet").Amount)

	// Default ld percent is 20: 20k accumulates for deepening, 80k to the beneficiary
	require.Equal(t, math.NewInt(20_000), f.Bank.GetBalance(f.Ctx, f.Keeper.GetLdAddress(), "ubnb").Amount)
	require.Equal(t, math.NewInt(80_000), f.Bank.GetBalance(f.Ctx, beneficiary, "ubnb").Amount)

	// Reserve shrank by exactly the payout
	reserve, err := f.Keeper.GetReserve(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(637_356), reserve)
}

// TestBuy_PoolUntouched tests that purchases do not move the reference pool
func TestBuy_PoolUntouched(t *testing.T) {
	f, buyer, _ := setupSaleEnv(t)

	_, err := f.Keeper.BuyFor(f.Ctx, buyer, math.NewInt(100_000))
	require.NoError(t, err)

	info, found := f.Amm.GetPoolInfo(f.Ctx, "ubnb", "ufet")
	require.True(t, found)
	require.Equal(t, math.NewInt(1_000_000), info.ReserveA)
	require.Equal(t, math.NewInt(4_000_000), info.ReserveB)
}

// TestBuy_NoBeneficiary tests that proceeds stay in the reserve account when
// no beneficiary is configured
func TestBuy_NoBeneficiary(t *testing.T) {
	f := keepertest.SaleKeeper(t)

	creator := testAddr(1)
	fund(t, f, creator,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)
	_, err := f.Amm.CreatePool(f.Ctx, creator, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	funder := testAddr(2)
	fund(t, f, funder, sdk.NewCoin("ufet", math.NewInt(1_000_000)))
	require.NoError(t, f.Keeper.FundReserve(f.Ctx, funder, math.NewInt(1_000_000)))

	buyer := testAddr(3)
	fund(t, f, buyer, sdk.NewCoin("ubnb", math.NewInt(100_000)))

	_, err = f.Keeper.BuyFor(f.Ctx, buyer, math.NewInt(100_000))
	require.NoError(t, err)

	moduleAddr := f.Keeper.GetModuleAddress()
	require.Equal(t, math.NewInt(80_000), f.Bank.GetBalance(f.Ctx, moduleAddr, "ubnb").Amount)
}

// TestBuy_ReserveShortfall tests rejection when the reserve cannot cover the quote
func TestBuy_ReserveShortfall(t *testing.T) {
	f := keepertest.SaleKeeper(t)

	creator := testAddr(1)
	fund(t, f, creator,
		sdk.NewCoin("ubnb", math.NewInt(1_000_000)),
		sdk.NewCoin("ufet", math.NewInt(4_000_000)),
	)
	_, err := f.Amm.CreatePool(f.Ctx, creator, "ubnb", "ufet", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	buyer := testAddr(3)
	fund(t, f, buyer, sdk.NewCoin("ubnb", math.NewInt(100_000)))

	// Reserve never funded
	_, err = f.Keeper.BuyFor(f.Ctx, buyer, math.NewInt(100_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reserve")
}

// TestBuy_Paused tests that purchases are rejected while paused
func TestBuy_Paused(t *testing.T) {
	f, buyer, _ := setupSaleEnv(t)

	require.NoError(t, f.Keeper.PauseSale(f.Ctx, f.Authority))

	_, err := f.Keeper.BuyFor(f.Ctx, buyer, math.NewInt(100_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "paused")

	require.NoError(t, f.Keeper.UnpauseSale(f.Ctx, f.Authority))

	_, err = f.Keeper.BuyFor(f.Ctx, buyer, math.NewInt(100_000))
	require.NoError(t, err)
}

// TestPauseSale_Unauthorized tests that only the authority can pause
func TestPauseSale_Unauthorized(t *testing.T) {
	f := keepertest.SaleKeeper(t)

	err := f.Keeper.PauseSale(f.Ctx, testAddr(1).String())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid authority")
}

// TestFundReserve_InvalidAmount tests rejection of non-positive funding
func TestFundReserve_InvalidAmount(t *testing.T) {
	f := keepertest.SaleKeeper(t)

	err := f.Keeper.FundReserve(f.Ctx, testAddr(1), math.ZeroInt())
	require.Error(t, err)
	require.Contains(t, err.Error(), "positive")
}
