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
	fetchkeeper "github.com/fetch-protocol/fetch/x/fetch/keeper"
	fetchtypes "github.com/fetch-protocol/fetch/x/fetch/types"
	salekeeper "github.com/fetch-protocol/fetch/x/sale/keeper"
	saletypes "github.com/fetch-protocol/fetch/x/sale/types"
	stakekeeper "github.com/fetch-protocol/fetch/x/stake/keeper"
	staketypes "github.com/fetch-protocol/fetch/x/stake/types"
)

// FetchFixture bundles the fetch router with the full keeper stack it
// settles against.
type FetchFixture struct {
	Keeper    fetchkeeper.Keeper
	Amm       ammkeeper.Keeper
	Stake     stakekeeper.Keeper
	Sale      salekeeper.Keeper
	Bank      bankkeeper.Keeper
	Nft       *MockNFTMinter
	Ctx       sdk.Context
	Authority string
}

// FetchKeeper creates a test fixture for the fetch module with real amm,
// stake, sale, and bank keepers underneath, so settlement runs against the
// same code paths as production.
func FetchKeeper(t testing.TB) FetchFixture {
	ammStoreKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)
	stakeStoreKey := storetypes.NewKVStoreKey(staketypes.StoreKey)
	saleStoreKey := storetypes.NewKVStoreKey(saletypes.StoreKey)
	fetchStoreKey := storetypes.NewKVStoreKey(fetchtypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(ammStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(stakeStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(saleStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(fetchStoreKey, storetypes.StoreTypeIAVL, db)
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
		staketypes.ModuleName:      nil,
		saletypes.ModuleName:       nil,
		saletypes.LdModuleName:     nil,
		fetchtypes.ModuleName:      nil,
		fetchtypes.BurnModuleName:  nil,
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

	nft := &MockNFTMinter{}
	stakeKeeper := stakekeeper.NewKeeper(cdc, stakeStoreKey, bankKeeper, ammKeeper, nft, authority.String())
	saleKeeper := salekeeper.NewKeeper(cdc, saleStoreKey, bankKeeper, ammKeeper, authority.String())
	fetchKeeper := fetchkeeper.NewKeeper(cdc, fetchStoreKey, bankKeeper, ammKeeper, stakeKeeper, saleKeeper, authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, ammKeeper.InitGenesis(ctx, *ammtypes.DefaultGenesis()))
	require.NoError(t, stakeKeeper.InitGenesis(ctx, *staketypes.DefaultGenesis()))
	require.NoError(t, saleKeeper.InitGenesis(ctx, *saletypes.DefaultGenesis()))
	require.NoError(t, fetchKeeper.InitGenesis(ctx, *fetchtypes.DefaultGenesis()))

	return FetchFixture{
		Keeper:    fetchKeeper,
		Amm:       ammKeeper,
		Stake:     stakeKeeper,
		Sale:      saleKeeper,
		Bank:      bankKeeper,
		Nft:       nft,
		Ctx:       ctx,
		Authority: authority.String(),
	}
}
