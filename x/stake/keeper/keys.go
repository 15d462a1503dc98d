package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key prefixes for the stake module
var (
	StakePoolKeyPrefix    = []byte{0x01}
	StakePoolCountKey     = []byte{0x02}
	StakeAccountKeyPrefix = []byte{0x03}
	ParamsKey             = []byte{0x04}
	WhitelistKeyPrefix    = []byte{0x05}
)

// StakePoolKey returns the store key for a stake pool
func StakePoolKey(poolID uint64) []byte {
	key := make([]byte, 1+8)
	copy(key, StakePoolKeyPrefix)
	binary.BigEndian.PutUint64(key[1:], poolID)
	return key
}

// StakeAccountKey returns the store key for a staker's position in a pool
func StakeAccountKey(poolID uint64, staker sdk.AccAddress) []byte {
	key := make([]byte, 1+8+len(staker))
	copy(key, StakeAccountKeyPrefix)
	binary.BigEndian.PutUint64(key[1:], poolID)
	copy(key[9:], staker)
	return key
}

// StakeAccountKeyByPoolPrefix returns the iteration prefix for all positions in a pool
func StakeAccountKeyByPoolPrefix(poolID uint64) []byte {
	key := make([]byte, 1+8)
	copy(key, StakeAccountKeyPrefix)
	binary.BigEndian.PutUint64(key[1:], poolID)
	return key
}

// WhitelistKey returns the store key for a whitelisted router address
func WhitelistKey(router sdk.AccAddress) []byte {
	key := make([]byte, 1+len(router))
	copy(key, WhitelistKeyPrefix)
	copy(key[1:], router)
	return key
}
