package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EscanBE/tierstaking/utils"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// The unbond queue holds entries at indices [head, tail).

func (k Keeper) getUnbondQueueHead(ctx sdk.Context) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(k.storeKey).Get(tstypes.KeyUnbondQueueHead))
}

func (k Keeper) getUnbondQueueTail(ctx sdk.Context) uint64 {
	return sdk.BigEndianToUint64(ctx.KVStore(k.storeKey).Get(tstypes.KeyUnbondQueueTail))
}

// UnbondQueueLen returns number of entries waiting for the next batch unbonding.
func (k Keeper) UnbondQueueLen(ctx sdk.Context) uint64 {
	return k.getUnbondQueueTail(ctx) - k.getUnbondQueueHead(ctx)
}

// PushUnbondEntry appends the entry to the tail of the queue.
func (k Keeper) PushUnbondEntry(ctx sdk.Context, entry tstypes.UnbondEntry) {
	store := ctx.KVStore(k.storeKey)
	tail := k.getUnbondQueueTail(ctx)
	store.Set(tstypes.UnbondQueueEntryKey(tail), utils.MustMarshalJson(entry))
	store.Set(tstypes.KeyUnbondQueueTail, sdk.Uint64ToBigEndian(tail+1))
}

// PeekUnbondEntry returns the head of the queue without removing it.
func (k Keeper) PeekUnbondEntry(ctx sdk.Context) (tstypes.UnbondEntry, bool) {
	if k.UnbondQueueLen(ctx) == 0 {
		return tstypes.UnbondEntry{}, false
	}

	bz := ctx.KVStore(k.storeKey).Get(tstypes.UnbondQueueEntryKey(k.getUnbondQueueHead(ctx)))
	if len(bz) == 0 {
		panic("unbond queue head entry is missing")
	}

	var entry tstypes.UnbondEntry
	utils.MustUnmarshalJson(bz, &entry)
	return entry, true
}

// PopUnbondEntry removes and returns the head of the queue.
func (k Keeper) PopUnbondEntry(ctx sdk.Context) (tstypes.UnbondEntry, bool) {
	entry, found := k.PeekUnbondEntry(ctx)
	if !found {
		return entry, false
	}

	store := ctx.KVStore(k.storeKey)
	head := k.getUnbondQueueHead(ctx)
	store.Delete(tstypes.UnbondQueueEntryKey(head))
	store.Set(tstypes.KeyUnbondQueueHead, sdk.Uint64ToBigEndian(head+1))
	return entry, true
}

// GetUnbondEntries returns every queued entry in FIFO order.
func (k Keeper) GetUnbondEntries(ctx sdk.Context) []tstypes.UnbondEntry {
	store := ctx.KVStore(k.storeKey)
	head, tail := k.getUnbondQueueHead(ctx), k.getUnbondQueueTail(ctx)

	entries := make([]tstypes.UnbondEntry, 0, tail-head)
	for index := head; index < tail; index++ {
		var entry tstypes.UnbondEntry
		utils.MustUnmarshalJson(store.Get(tstypes.UnbondQueueEntryKey(index)), &entry)
		entries = append(entries, entry)
	}
	return entries
}
