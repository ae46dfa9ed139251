package types

import (
	sdkmath "cosmossdk.io/math"
)

// UnbondEntry is a queued withdrawal awaiting the next batch unbonding.
type UnbondEntry struct {
	WithdrawalId uint64      `json:"withdrawal_id"`
	Address      string      `json:"address"`
	Amount       sdkmath.Int `json:"amount"`
	Timestamp    int64       `json:"timestamp"`
}
