package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdkstd "github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	ammkeeper "github.com/fetch-protocol/fetch/x/amm/keeper"
	ammtypes "github.com/fetch-protocol/fetch/x/amm/types"
	salekeeper "github.com/fetch-protocol/fetch/x/sale/keeper"
	saletypes "github.com/fetch-protocol/fetch/x/sale/types"
)

// SaleFixture bundles the sale keeper with the real amm and bank keepers it
// prices against.
type SaleFixture struct {
	Keeper    salekeeper.Keeper
	Amm       ammkeeper.Keeper
	Bank      bankkeeper.Keeper
	Ctx       sdk.Context
	Authority string
}

// SaleKeeper creates a test fixture for the sale module. Pricing runs through
// a real amm keeper so quotes reflect actual pool state.
func SaleKeeper(t testing.TB) SaleFixture {
	ammStoreKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)
	saleStoreKey := storetypes.NewKVStoreKey(saletypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(ammStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(saleStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	sdkstd.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		ammtypes.ModuleName:        nil,
		saletypes.ModuleName:       nil,
		saletypes.LdModuleName:     nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	ammKeeper := ammkeeper.NewKeeper(cdc, ammStoreKey, bankKeeper, authority.String())
	saleKeeper := salekeeper.NewKeeper(cdc, saleStoreKey, bankKeeper, ammKeeper, authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, ammKeeper.InitGenesis(ctx, *ammtypes.DefaultGenesis()))
	require.NoError(t, saleKeeper.InitGenesis(ctx, *saletypes.DefaultGenesis()))

	return SaleFixture{
		Keeper:    saleKeeper,
		Amm:       ammKeeper,
		Bank:      bankKeeper,
		Ctx:       ctx,
		Authority: authority.String(),
	}
}
