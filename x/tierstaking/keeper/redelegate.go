package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	disttypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// Redelegate moves ratio percent of the old validator's weight and delegation to the new validator.
// Without any delegation on the old validator, only the weight table is updated.
// Rewards accumulated on the old validator are withdrawn to the recipient, admin if empty, before redelegating.
func (k Keeper) Redelegate(
	ctx sdk.Context,
	sender sdk.AccAddress,
	newValidator, oldValidator string,
	ratio uint64,
	recipient sdk.AccAddress,
) (*tstypes.MsgRedelegateResponse, []sdk.Msg, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := tstypes.AssertAdmin(cfg, sender); err != nil {
		return nil, nil, err
	}

	if cfg.ValidatorIndex(oldValidator) < 0 {
		return nil, nil, errorsmod.Wrap(tstypes.ErrValidatorNotFound, oldValidator)
	}
	if ratio < 1 || ratio > tstypes.MaxRedelegateRatio {
		return nil, nil, errorsmod.Wrapf(tstypes.ErrInvalidRatio, "got %d", ratio)
	}
	if oldValidator == newValidator {
		return nil, nil, tstypes.ErrSameValidator
	}

	oldValAddr, err := parseValAddr(oldValidator)
	if err != nil {
		return nil, nil, err
	}
	if _, err := parseValAddr(newValidator); err != nil {
		return nil, nil, err
	}

	delegatedAmount, found, err := k.GetDelegatedAmount(ctx, oldValAddr)
	if err != nil {
		return nil, nil, err
	}

	if !found {
		changedWeight, err := cfg.ShiftWeight(oldValidator, newValidator, ratio)
		if err != nil {
			return nil, nil, err
		}
		if err := k.SetConfig(ctx, cfg); err != nil {
			return nil, nil, err
		}
		k.emitConfigUpdatedEvent(ctx, tstypes.AttributeValueWeightTable)

		k.emitRedelegateEvent(ctx, oldValidator, newValidator, ratio, sdkmath.ZeroInt())

		return &tstypes.MsgRedelegateResponse{
			Amount:        sdkmath.ZeroInt(),
			ChangedWeight: changedWeight,
		}, nil, nil
	}

	ratioInt := sdkmath.NewIntFromUint64(ratio)
	hundred := sdkmath.NewIntFromUint64(tstypes.MaxRedelegateRatio)

	canRedelegate, err := k.getRedelegatableAmount(ctx, oldValAddr, delegatedAmount)
	if err != nil {
		return nil, nil, err
	}
	required, err := tstypes.CheckedMulDiv(delegatedAmount, ratioInt, hundred)
	if err != nil {
		return nil, nil, err
	}
	if canRedelegate.LT(required) {
		return nil, nil, errorsmod.Wrapf(tstypes.ErrInsufficientRedelegatable, "can redelegate %s, require %s", canRedelegate, required)
	}

	changedWeight, err := cfg.ShiftWeight(oldValidator, newValidator, ratio)
	if err != nil {
		return nil, nil, err
	}
	if err := k.SetConfig(ctx, cfg); err != nil {
		return nil, nil, err
	}
	k.emitConfigUpdatedEvent(ctx, tstypes.AttributeValueWeightTable)

	bondDenom, err := k.bondDenom(ctx)
	if err != nil {
		return nil, nil, err
	}

	var msgs []sdk.Msg

	rewards, err := k.getAccumulatedRewards(ctx, oldValAddr, bondDenom)
	if err != nil {
		return nil, nil, err
	}
	if rewards.IsPositive() {
		withdrawAddr, err := rewardRecipient(cfg, recipient)
		if err != nil {
			return nil, nil, err
		}
		msgs = append(msgs,
			disttypes.NewMsgSetWithdrawAddress(k.ModuleAddress(), withdrawAddr),
			disttypes.NewMsgWithdrawDelegatorReward(k.ModuleAddress().String(), oldValidator),
		)
	}

	redelegateAmount, err := tstypes.CheckedMulDiv(canRedelegate, ratioInt, hundred)
	if err != nil {
		return nil, nil, err
	}
	if redelegateAmount.IsPositive() {
		msgs = append(msgs, stakingtypes.NewMsgBeginRedelegate(
			k.ModuleAddress().String(),
			oldValidator,
			newValidator,
			sdk.NewCoin(bondDenom, redelegateAmount),
		))
	}

	k.emitRedelegateEvent(ctx, oldValidator, newValidator, ratio, redelegateAmount)

	k.Logger(ctx).Info("redelegated", "from", oldValidator, "to", newValidator, "ratio", ratio, "amount", redelegateAmount.String())

	return &tstypes.MsgRedelegateResponse{
		Amount:        redelegateAmount,
		ChangedWeight: changedWeight,
	}, msgs, nil
}

func (k Keeper) emitRedelegateEvent(ctx sdk.Context, oldValidator, newValidator string, ratio uint64, amount sdkmath.Int) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			tstypes.EventTypeRedelegate,
			sdk.NewAttribute(tstypes.AttributeKeySrcValidator, oldValidator),
			sdk.NewAttribute(tstypes.AttributeKeyDstValidator, newValidator),
			sdk.NewAttribute(tstypes.AttributeKeyRatio, strconv.FormatUint(ratio, 10)),
			sdk.NewAttribute(tstypes.AttributeKeyAmount, amount.String()),
		),
	)
}

// rewardRecipient returns the recipient, or the admin when empty.
func rewardRecipient(cfg tstypes.Config, recipient sdk.AccAddress) (sdk.AccAddress, error) {
	if len(recipient) > 0 {
		return recipient, nil
	}
	return sdk.AccAddressFromBech32(cfg.Admin)
}
