package keeper

import (
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EscanBE/tierstaking/utils"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// GetUserTotalDelegated returns the native amount attributed to the address, zero if none.
func (k Keeper) GetUserTotalDelegated(ctx sdk.Context, accAddr sdk.AccAddress) sdkmath.Int {
	bz := ctx.KVStore(k.storeKey).Get(tstypes.UserTotalDelegatedKey(accAddr))
	if len(bz) == 0 {
		return sdkmath.ZeroInt()
	}

	var amount sdkmath.Int
	utils.MustUnmarshalJson(bz, &amount)
	return amount
}

// SetUserTotalDelegated persists the amount, a zero amount removes the record.
func (k Keeper) SetUserTotalDelegated(ctx sdk.Context, accAddr sdk.AccAddress, amount sdkmath.Int) {
	store := ctx.KVStore(k.storeKey)
	key := tstypes.UserTotalDelegatedKey(accAddr)
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	store.Set(key, utils.MustMarshalJson(amount))
}

func (k Keeper) IterateUserTotalDelegated(ctx sdk.Context, cb func(accAddr sdk.AccAddress, amount sdkmath.Int) (stop bool)) {
	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), tstypes.KeyPrefixUserTotalDelegated)
	defer func() {
		_ = iterator.Close()
	}()

	for ; iterator.Valid(); iterator.Next() {
		var amount sdkmath.Int
		utils.MustUnmarshalJson(iterator.Value(), &amount)

		accAddr := sdk.AccAddress(iterator.Key()[len(tstypes.KeyPrefixUserTotalDelegated):])
		if cb(accAddr, amount) {
			break
		}
	}
}

// GetTotalStaked sums the total-delegated ledger of every address.
// The result is not affected by slashing.
func (k Keeper) GetTotalStaked(ctx sdk.Context) (sdkmath.Int, error) {
	total := sdkmath.ZeroInt()
	var err error
	k.IterateUserTotalDelegated(ctx, func(_ sdk.AccAddress, amount sdkmath.Int) bool {
		total, err = tstypes.CheckedAdd(total, amount)
		return err != nil
	})
	if err != nil {
		return sdkmath.Int{}, err
	}
	return total, nil
}
