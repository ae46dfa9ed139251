package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// Withdraw liquidates the whole position of the sender.
// The payout is the native deposit scaled by the ratio between tokens actually bonded and the ledger total,
// so slashing is shared by every staker.
// The payout is queued and the queue is drained right away when its head is old enough.
func (k Keeper) Withdraw(ctx sdk.Context, sender sdk.AccAddress) (*tstypes.MsgWithdrawResponse, []sdk.Msg, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.AssertActive(); err != nil {
		return nil, nil, err
	}

	userInfo, found := k.GetUserInfo(ctx, sender)
	if !found {
		return nil, nil, errorsmod.Wrap(tstypes.ErrNoDeposit, sender.String())
	}

	totalStaked, err := k.GetTotalStaked(ctx)
	if err != nil {
		return nil, nil, err
	}

	delegatedWithSlashing, err := k.getTotalBonded(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	payout, err := tstypes.CheckedMulDiv(userInfo.OraiDeposit, delegatedWithSlashing, totalStaked)
	if err != nil {
		return nil, nil, err
	}

	now := ctx.BlockTime().Unix()

	k.DeleteUserInfo(ctx, sender)
	record := k.appendWithdrawal(ctx, sender, payout, now)
	k.PushUnbondEntry(ctx, tstypes.UnbondEntry{
		WithdrawalId: record.Id,
		Address:      sender.String(),
		Amount:       payout,
		Timestamp:    now,
	})

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			tstypes.EventTypeWithdraw,
			sdk.NewAttribute(tstypes.AttributeKeyAddress, sender.String()),
			sdk.NewAttribute(tstypes.AttributeKeyWithdrawalId, strconv.FormatUint(record.Id, 10)),
			sdk.NewAttribute(tstypes.AttributeKeyAmount, payout.String()),
		),
	)

	k.Logger(ctx).Info("withdrawal queued", "address", sender.String(), "id", record.Id, "amount", payout.String())

	res := &tstypes.MsgWithdrawResponse{
		WithdrawalId: record.Id,
		Amount:       payout,
	}

	head, _ := k.PeekUnbondEntry(ctx)
	if now-head.Timestamp < tstypes.BatchPeriod {
		return res, nil, nil
	}

	_, msgs, err := k.batchUnbond(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	res.Batched = true

	return res, msgs, nil
}

// getTotalBonded sums the tokens currently bonded to every configured validator.
// Every configured validator must hold a delegation of the module account.
func (k Keeper) getTotalBonded(ctx sdk.Context, cfg tstypes.Config) (sdkmath.Int, error) {
	total := sdkmath.ZeroInt()
	for _, v := range cfg.Validators {
		valAddr, err := parseValAddr(v.Address)
		if err != nil {
			return sdkmath.Int{}, err
		}

		amount, found, err := k.GetDelegatedAmount(ctx, valAddr)
		if err != nil {
			return sdkmath.Int{}, err
		}
		if !found {
			return sdkmath.Int{}, errorsmod.Wrapf(tstypes.ErrMissingDelegation, "validator %s", v.Address)
		}

		total, err = tstypes.CheckedAdd(total, amount)
		if err != nil {
			return sdkmath.Int{}, err
		}
	}
	return total, nil
}
