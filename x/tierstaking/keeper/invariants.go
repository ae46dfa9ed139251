package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// RegisterInvariants registers the tier staking invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(tstypes.ModuleName, "config", ConfigInvariant(k))
	ir.RegisterRoute(tstypes.ModuleName, "unbond-queue", UnbondQueueInvariant(k))
	ir.RegisterRoute(tstypes.ModuleName, "user-info", UserInfoInvariant(k))
}

// ConfigInvariant checks that the stored config, weight table included, is valid.
func ConfigInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if !k.HasConfig(ctx) {
			// not set up yet, a valid state of a fresh chain
			return sdk.FormatInvariant(tstypes.ModuleName, "config", "config not set, check skipped"), false
		}
		cfg, err := k.GetConfig(ctx)
		if err == nil {
			err = cfg.Validate()
		}
		broken := err != nil
		msg := "config is valid"
		if broken {
			msg = err.Error()
		}
		return sdk.FormatInvariant(tstypes.ModuleName, "config", msg), broken
	}
}

// UnbondQueueInvariant checks that every queued entry references an unscheduled withdrawal of the same address
// and that every unscheduled withdrawal is queued.
func UnbondQueueInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pending := make(map[uint64]string)
		k.IterateWithdrawals(ctx, func(accAddr sdk.AccAddress, records []tstypes.WithdrawalRecord) bool {
			for _, record := range records {
				if !record.IsScheduled() {
					pending[record.Id] = accAddr.String()
				}
			}
			return false
		})

		var msg string
		for _, entry := range k.GetUnbondEntries(ctx) {
			owner, found := pending[entry.WithdrawalId]
			if !found || owner != entry.Address {
				msg += fmt.Sprintf("\tunbond entry of withdrawal %d (%s) has no matching unscheduled withdrawal\n", entry.WithdrawalId, entry.Address)
				continue
			}
			delete(pending, entry.WithdrawalId)
		}
		for id, owner := range pending {
			msg += fmt.Sprintf("\twithdrawal %d of %s is unscheduled but not queued\n", id, owner)
		}

		return sdk.FormatInvariant(tstypes.ModuleName, "unbond-queue", msg), msg != ""
	}
}

// UserInfoInvariant checks that the USD deposit of every position equals the threshold of its tier.
func UserInfoInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if !k.HasConfig(ctx) {
			var count int
			k.IterateUserInfos(ctx, func(_ sdk.AccAddress, _ tstypes.UserInfo) bool {
				count++
				return false
			})
			if count > 0 {
				return sdk.FormatInvariant(tstypes.ModuleName, "user-info", fmt.Sprintf("%d positions exist without config", count)), true
			}
			return sdk.FormatInvariant(tstypes.ModuleName, "user-info", "config not set, check skipped"), false
		}
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return sdk.FormatInvariant(tstypes.ModuleName, "user-info", err.Error()), true
		}

		var msg string
		k.IterateUserInfos(ctx, func(accAddr sdk.AccAddress, userInfo tstypes.UserInfo) bool {
			threshold, err := cfg.DepositByTier(userInfo.Tier)
			if err != nil {
				msg += fmt.Sprintf("\t%s: %s\n", accAddr, err)
			} else if !userInfo.UsdDeposit.Equal(threshold) {
				msg += fmt.Sprintf("\t%s: usd deposit %s does not match tier %d threshold %s\n", accAddr, userInfo.UsdDeposit, userInfo.Tier, threshold)
			}
			return false
		})

		return sdk.FormatInvariant(tstypes.ModuleName, "user-info", msg), msg != ""
	}
}
