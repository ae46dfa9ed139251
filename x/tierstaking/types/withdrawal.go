package types

import (
	sdkmath "cosmossdk.io/math"
)

// WithdrawalRecord is a pending payout of an address. ClaimTime is ClaimTimeUnscheduled
// until the matching unbond entry is drained.
type WithdrawalRecord struct {
	Id        uint64      `json:"id"`
	Amount    sdkmath.Int `json:"amount"`
	Timestamp int64       `json:"timestamp"`
	ClaimTime int64       `json:"claim_time"`
}

func (r WithdrawalRecord) IsScheduled() bool {
	return r.ClaimTime != ClaimTimeUnscheduled
}

// IsMatured reports whether the record can be claimed at the given time.
func (r WithdrawalRecord) IsMatured(now int64) bool {
	return r.ClaimTime <= now
}
