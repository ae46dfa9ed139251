package types

import (
	sdkmath "cosmossdk.io/math"
)

// UserInfo is the deposit position of an address.
// UsdDeposit always equals the threshold of Tier.
type UserInfo struct {
	Tier        uint32      `json:"tier"`
	Timestamp   int64       `json:"timestamp"`
	UsdDeposit  sdkmath.Int `json:"usd_deposit"`
	OraiDeposit sdkmath.Int `json:"orai_deposit"`
}

// DefaultUserInfo is the position of an address which never deposited.
func DefaultUserInfo(cfg Config) UserInfo {
	return UserInfo{
		Tier:        cfg.MinTier(),
		UsdDeposit:  sdkmath.ZeroInt(),
		OraiDeposit: sdkmath.ZeroInt(),
	}
}
