package keeper

import (
	"slices"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// BatchUnbond drains the unbond queue once its head is at least BatchPeriod old.
func (k Keeper) BatchUnbond(ctx sdk.Context) (*tstypes.MsgBatchUnbondResponse, []sdk.Msg, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.AssertActive(); err != nil {
		return nil, nil, err
	}

	head, found := k.PeekUnbondEntry(ctx)
	if !found {
		return nil, nil, tstypes.ErrQueueEmpty
	}

	if age := ctx.BlockTime().Unix() - head.Timestamp; age < tstypes.BatchPeriod {
		return nil, nil, errorsmod.Wrapf(tstypes.ErrTooEarly, "oldest withdrawal is %d seconds old, require %d", age, tstypes.BatchPeriod)
	}

	return k.batchUnbond(ctx, cfg)
}

// batchUnbond drains the entire queue in FIFO order, schedules the claim time of every drained withdrawal
// and undelegates the drained total from the validators by weight.
func (k Keeper) batchUnbond(ctx sdk.Context, cfg tstypes.Config) (*tstypes.MsgBatchUnbondResponse, []sdk.Msg, error) {
	now := ctx.BlockTime().Unix()
	claimTime := now + tstypes.UnbondingPeriod

	total := sdkmath.ZeroInt()
	var drained uint64
	for {
		entry, found := k.PopUnbondEntry(ctx)
		if !found {
			break
		}
		drained++

		accAddr, err := sdk.AccAddressFromBech32(entry.Address)
		if err != nil {
			return nil, nil, err
		}

		total, err = tstypes.CheckedAdd(total, entry.Amount)
		if err != nil {
			return nil, nil, err
		}

		totalDelegated, err := tstypes.CheckedSub(k.GetUserTotalDelegated(ctx, accAddr), entry.Amount)
		if err != nil {
			return nil, nil, errorsmod.Wrapf(err, "total delegated of %s", entry.Address)
		}
		k.SetUserTotalDelegated(ctx, accAddr, totalDelegated)

		records := k.GetWithdrawals(ctx, accAddr)
		idx := slices.IndexFunc(records, func(r tstypes.WithdrawalRecord) bool {
			return r.Id == entry.WithdrawalId
		})
		if idx < 0 {
			panic("withdrawal of unbond entry not found: " + strconv.FormatUint(entry.WithdrawalId, 10))
		}
		records[idx].ClaimTime = claimTime
		k.SetWithdrawals(ctx, accAddr, records)
	}

	if drained == 0 {
		return nil, nil, tstypes.ErrQueueEmpty
	}

	// floor rounding of the split loses at most one unit per validator
	dustCorrection := sdkmath.NewInt(int64(len(cfg.Validators)))
	undelegateTotal, err := tstypes.CheckedSub(total, dustCorrection)
	if err != nil {
		return nil, nil, errorsmod.Wrapf(err, "batch total is lower than the dust correction")
	}

	bondDenom, err := k.bondDenom(ctx)
	if err != nil {
		return nil, nil, err
	}

	msgs, err := k.buildWeightedMsgs(ctx, cfg.Validators, undelegateTotal, bondDenom, newUndelegateMsg)
	if err != nil {
		return nil, nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			tstypes.EventTypeBatchUnbond,
			sdk.NewAttribute(tstypes.AttributeKeyEntries, strconv.FormatUint(drained, 10)),
			sdk.NewAttribute(tstypes.AttributeKeyAmount, undelegateTotal.String()),
			sdk.NewAttribute(tstypes.AttributeKeyClaimTime, strconv.FormatInt(claimTime, 10)),
		),
	)

	k.Logger(ctx).Info("unbond queue drained", "entries", drained, "total", total.String(), "undelegate", undelegateTotal.String())

	return &tstypes.MsgBatchUnbondResponse{
		Entries:          drained,
		TotalUndelegated: undelegateTotal,
		ClaimTime:        claimTime,
	}, msgs, nil
}
