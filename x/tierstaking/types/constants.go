package types

const (
	// BatchPeriod is the minimum age, in seconds, of the oldest queued withdrawal before the queue can be drained.
	BatchPeriod int64 = 5 * 24 * 60 * 60

	// UnbondingPeriod is the delay, in seconds, between draining a withdrawal and the time it can be claimed.
	UnbondingPeriod int64 = 21 * 24 * 60 * 60

	// ClaimTimeUnscheduled marks a withdrawal record which has not been drained from the unbond queue yet.
	ClaimTimeUnscheduled int64 = 2147483647

	// DefaultClaimLimit is the page size used by claim and withdrawals query when no limit is given.
	DefaultClaimLimit uint32 = 50

	// TotalWeight is the sum every validator weight table must add up to.
	TotalWeight uint64 = 100

	// MaxRedelegateRatio is the upper bound of the redelegate ratio, in percent.
	MaxRedelegateRatio uint64 = 100
)
