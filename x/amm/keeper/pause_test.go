package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/fetch-protocol/fetch/testutil/keeper"
)

// TestPauseModule_AuthorityGated tests that only the authority can pause and unpause
func TestPauseModule_AuthorityGated(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	err := k.PauseModule(ctx, testAddr(1).String())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid authority")
	require.False(t, k.IsPaused(ctx))

	require.NoError(t, k.PauseModule(ctx, k.GetAuthority()))
	require.True(t, k.IsPaused(ctx))

	err = k.UnpauseModule(ctx, testAddr(1).String())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid authority")
	require.True(t, k.IsPaused(ctx))

	require.NoError(t, k.UnpauseModule(ctx, k.GetAuthority()))
	require.False(t, k.IsPaused(ctx))
}

// TestPauseModule_StateChecks tests the already-paused and not-paused rejections
func TestPauseModule_StateChecks(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	err := k.UnpauseModule(ctx, k.GetAuthority())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not paused")

	require.NoError(t, k.PauseModule(ctx, k.GetAuthority()))

	err = k.PauseModule(ctx, k.GetAuthority())
	require.Error(t, err)
	require.Contains(t, err.Error(), "already paused")
}
