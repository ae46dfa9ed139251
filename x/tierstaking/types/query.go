package types

import (
	sdkmath "cosmossdk.io/math"

	"github.com/EscanBE/tierstaking/utils"
)

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

type QueryUserInfoRequest struct {
	Address string `json:"address"`
}

type QueryUserInfoResponse struct {
	UserInfo UserInfo `json:"user_info"`
}

type QueryUserTotalDelegatedRequest struct {
	Address string `json:"address"`
}

type QueryUserTotalDelegatedResponse struct {
	Amount sdkmath.Int `json:"amount"`
}

type QueryWithdrawalsRequest struct {
	Address string  `json:"address"`
	Start   *uint32 `json:"start,omitempty"`
	Limit   *uint32 `json:"limit,omitempty"`
}

type QueryWithdrawalsResponse struct {
	Withdrawals []WithdrawalRecord `json:"withdrawals"`
}

type QueryUnbondsRequest struct{}

type QueryUnbondsResponse struct {
	Unbonds []UnbondEntry `json:"unbonds"`
}

// QueryTierRequest is consumed by the token sale module to look up the tier of a buyer.
type QueryTierRequest struct {
	Address string `json:"address"`
}

type QueryTierResponse struct {
	Tier uint32 `json:"tier"`
}

// PageWindow resolves optional paging arguments, defaulting to the first DefaultClaimLimit records.
func PageWindow(start, limit *uint32) (uint32, uint32) {
	return *utils.Coalesce(start, utils.Ptr(uint32(0))), *utils.Coalesce(limit, utils.Ptr(DefaultClaimLimit))
}

// Paginate returns the sub-slice [start, start+limit) clamped to the slice bounds.
func Paginate[T any](items []T, start, limit uint32) []T {
	from := uint64(start)
	if from >= uint64(len(items)) {
		return nil
	}
	to := from + uint64(limit)
	if to > uint64(len(items)) {
		to = uint64(len(items))
	}
	return items[from:to]
}
