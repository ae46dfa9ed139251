package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "tierstaking"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// prefix bytes for the tier-staking persistent store.
const (
	prefixConfig = iota + 1
	prefixUserInfo
	prefixUserTotalDelegated
	prefixWithdrawals
	prefixUnbondQueueEntry
	prefixUnbondQueueHead
	prefixUnbondQueueTail
	prefixNextWithdrawalId
)

// KVStore key prefixes
var (
	KeyConfig                   = []byte{prefixConfig}
	KeyPrefixUserInfo           = []byte{prefixUserInfo}
	KeyPrefixUserTotalDelegated = []byte{prefixUserTotalDelegated}
	KeyPrefixWithdrawals        = []byte{prefixWithdrawals}
	KeyPrefixUnbondQueueEntry   = []byte{prefixUnbondQueueEntry}
	KeyUnbondQueueHead          = []byte{prefixUnbondQueueHead}
	KeyUnbondQueueTail          = []byte{prefixUnbondQueueTail}
	KeyNextWithdrawalId         = []byte{prefixNextWithdrawalId}
)

func UserInfoKey(accAddr sdk.AccAddress) []byte {
	return append(KeyPrefixUserInfo, accAddr.Bytes()...)
}

func UserTotalDelegatedKey(accAddr sdk.AccAddress) []byte {
	return append(KeyPrefixUserTotalDelegated, accAddr.Bytes()...)
}

func WithdrawalsKey(accAddr sdk.AccAddress) []byte {
	return append(KeyPrefixWithdrawals, accAddr.Bytes()...)
}

func UnbondQueueEntryKey(index uint64) []byte {
	key := make([]byte, 0, len(KeyPrefixUnbondQueueEntry)+8)
	key = append(key, KeyPrefixUnbondQueueEntry...)
	key = append(key, sdk.Uint64ToBigEndian(index)...)
	return key
}
