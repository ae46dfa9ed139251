package keeper

import (
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EscanBE/tierstaking/utils"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// GetWithdrawals returns the withdrawal list of the address, in creation order.
func (k Keeper) GetWithdrawals(ctx sdk.Context, accAddr sdk.AccAddress) []tstypes.WithdrawalRecord {
	bz := ctx.KVStore(k.storeKey).Get(tstypes.WithdrawalsKey(accAddr))
	if len(bz) == 0 {
		return nil
	}

	var records []tstypes.WithdrawalRecord
	utils.MustUnmarshalJson(bz, &records)
	return records
}

// SetWithdrawals persists the list, an empty list removes the record.
func (k Keeper) SetWithdrawals(ctx sdk.Context, accAddr sdk.AccAddress, records []tstypes.WithdrawalRecord) {
	store := ctx.KVStore(k.storeKey)
	key := tstypes.WithdrawalsKey(accAddr)
	if len(records) == 0 {
		store.Delete(key)
		return
	}
	store.Set(key, utils.MustMarshalJson(records))
}

func (k Keeper) IterateWithdrawals(ctx sdk.Context, cb func(accAddr sdk.AccAddress, records []tstypes.WithdrawalRecord) (stop bool)) {
	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), tstypes.KeyPrefixWithdrawals)
	defer func() {
		_ = iterator.Close()
	}()

	for ; iterator.Valid(); iterator.Next() {
		var records []tstypes.WithdrawalRecord
		utils.MustUnmarshalJson(iterator.Value(), &records)

		accAddr := sdk.AccAddress(iterator.Key()[len(tstypes.KeyPrefixWithdrawals):])
		if cb(accAddr, records) {
			break
		}
	}
}

// GetNextWithdrawalId returns the id the next withdrawal record will get.
func (k Keeper) GetNextWithdrawalId(ctx sdk.Context) uint64 {
	id := sdk.BigEndianToUint64(ctx.KVStore(k.storeKey).Get(tstypes.KeyNextWithdrawalId))
	if id == 0 {
		return 1
	}
	return id
}

func (k Keeper) SetNextWithdrawalId(ctx sdk.Context, id uint64) {
	ctx.KVStore(k.storeKey).Set(tstypes.KeyNextWithdrawalId, sdk.Uint64ToBigEndian(id))
}

// appendWithdrawal issues a new id and appends an unscheduled record to the list of the address.
func (k Keeper) appendWithdrawal(ctx sdk.Context, accAddr sdk.AccAddress, amount sdkmath.Int, timestamp int64) tstypes.WithdrawalRecord {
	id := k.GetNextWithdrawalId(ctx)
	k.SetNextWithdrawalId(ctx, id+1)

	record := tstypes.WithdrawalRecord{
		Id:        id,
		Amount:    amount,
		Timestamp: timestamp,
		ClaimTime: tstypes.ClaimTimeUnscheduled,
	}
	k.SetWithdrawals(ctx, accAddr, append(k.GetWithdrawals(ctx, accAddr), record))
	return record
}
