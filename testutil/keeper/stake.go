package keeper

import (
	"context"
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
	stakekeeper "github.com/fetch-protocol/fetch/x/stake/keeper"
	staketypes "github.com/fetch-protocol/fetch/x/stake/types"
)

// MintedNFT records one tier NFT minted through the mock minter.
type MintedNFT struct {
	Recipient sdk.AccAddress
	PoolID    uint64
	Tier      uint32
}

// MockNFTMinter records tier NFT mints for assertions.
type MockNFTMinter struct {
	Minted []MintedNFT
}

// MintTierNFT implements the stake module's NFTMinter interface.
func (m *MockNFTMinter) MintTierNFT(_ context.Context, recipient sdk.AccAddress, stakePoolID uint64, tier uint32) error {
	m.Minted = append(m.Minted, MintedNFT{Recipient: recipient, PoolID: stakePoolID, Tier: tier})
	return nil
}

// StakeFixture bundles the stake keeper with the real amm and bank keepers
// it depends on.
type StakeFixture struct {
	Keeper    stakekeeper.Keeper
	Amm       ammkeeper.Keeper
	Bank      bankkeeper.Keeper
	Nft       *MockNFTMinter
	Ctx       sdk.Context
	Authority string
}

// StakeKeeper creates a test fixture for the stake module. LP custody runs
// through a real amm keeper so share transfers are exercised for real.
func StakeKeeper(t testing.TB) StakeFixture {
	ammStoreKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)
	stakeStoreKey := storetypes.NewKVStoreKey(staketypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(ammStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(stakeStoreKey, storetypes.StoreTypeIAVL, db)
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

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, ammKeeper.InitGenesis(ctx, *ammtypes.DefaultGenesis()))
	require.NoError(t, stakeKeeper.InitGenesis(ctx, *staketypes.DefaultGenesis()))

	return StakeFixture{
		Keeper:    stakeKeeper,
		Amm:       ammKeeper,
		Bank:      bankKeeper,
		Nft:       nft,
		Ctx:       ctx,
		Authority: authority.String(),
	}
}
