package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// Deposit prices the received funds in USD and moves the sender to the best tier the accumulated deposit satisfies.
// The funds must already be held by the module account.
// The USD deposit is snapped to the tier threshold and the excess is refunded.
// Returns the instructions to settle: refund first, then one delegation per validator.
func (k Keeper) Deposit(ctx sdk.Context, sender sdk.AccAddress, funds sdk.Coins) (*tstypes.MsgDepositResponse, []sdk.Msg, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.AssertActive(); err != nil {
		return nil, nil, err
	}

	if len(funds) != 1 {
		return nil, nil, errorsmod.Wrapf(tstypes.ErrInvalidFunds, "got %d coins", len(funds))
	}
	received := funds[0]
	if received.Amount.IsNil() || !received.Amount.IsPositive() {
		return nil, nil, tstypes.ErrZeroAmount
	}

	bondDenom, err := k.bondDenom(ctx)
	if err != nil {
		return nil, nil, err
	}

	isNative := received.Denom == bondDenom
	if !isNative && !cfg.IsStableDenom(received.Denom) {
		return nil, nil, errorsmod.Wrap(tstypes.ErrUnsupportedDenom, received.Denom)
	}

	var usdReceived sdkmath.Int
	if isNative {
		usdReceived, err = k.usdAmount(ctx, cfg, received.Amount)
		if err != nil {
			return nil, nil, err
		}
	} else {
		usdReceived = received.Amount
	}

	userInfo, found := k.GetUserInfo(ctx, sender)
	if !found {
		userInfo = tstypes.DefaultUserInfo(cfg)
	}

	newUsdDeposit, err := tstypes.CheckedAdd(userInfo.UsdDeposit, usdReceived)
	if err != nil {
		return nil, nil, err
	}

	newTier := cfg.TierByDeposit(newUsdDeposit)
	if newTier >= userInfo.Tier {
		return nil, nil, k.notEnoughForNextTierError(ctx, cfg, userInfo)
	}

	newTierDeposit, err := cfg.DepositByTier(newTier)
	if err != nil {
		return nil, nil, err
	}

	// part of the received funds which is needed to reach the new tier, the rest is refunded
	usdRequired, err := tstypes.CheckedSub(newTierDeposit, userInfo.UsdDeposit)
	if err != nil {
		return nil, nil, err
	}
	var required sdkmath.Int
	if isNative {
		required, err = k.nativeAmount(ctx, cfg, usdRequired)
		if err != nil {
			return nil, nil, err
		}
	} else {
		required = usdRequired
	}
	refundAmount, err := tstypes.CheckedSub(received.Amount, required)
	if err != nil {
		return nil, nil, err
	}

	newOraiDeposit, err := k.nativeAmount(ctx, cfg, newTierDeposit)
	if err != nil {
		return nil, nil, err
	}
	// fails when re-pricing made the native deposit lower than before
	delegateAmount, err := tstypes.CheckedSub(newOraiDeposit, userInfo.OraiDeposit)
	if err != nil {
		return nil, nil, err
	}

	totalDelegated, err := tstypes.CheckedAdd(k.GetUserTotalDelegated(ctx, sender), delegateAmount)
	if err != nil {
		return nil, nil, err
	}
	k.SetUserTotalDelegated(ctx, sender, totalDelegated)

	oldTier := userInfo.Tier
	userInfo = tstypes.UserInfo{
		Tier:        newTier,
		Timestamp:   ctx.BlockTime().Unix(),
		UsdDeposit:  newTierDeposit,
		OraiDeposit: newOraiDeposit,
	}
	k.SetUserInfo(ctx, sender, userInfo)

	var msgs []sdk.Msg
	refund := sdk.NewCoins()
	if refundAmount.IsPositive() {
		refund = sdk.NewCoins(sdk.NewCoin(received.Denom, refundAmount))
		msgs = append(msgs, k.newTransferMsg(sender, refund))
	}

	delegateMsgs, err := k.buildWeightedMsgs(ctx, cfg.Validators, delegateAmount, bondDenom, newDelegateMsg)
	if err != nil {
		return nil, nil, err
	}
	msgs = append(msgs, delegateMsgs...)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			tstypes.EventTypeDeposit,
			sdk.NewAttribute(tstypes.AttributeKeyAddress, sender.String()),
			sdk.NewAttribute(tstypes.AttributeKeyAmount, received.String()),
			sdk.NewAttribute(tstypes.AttributeKeyTier, strconv.FormatUint(uint64(newTier), 10)),
			sdk.NewAttribute(tstypes.AttributeKeyUsdDeposit, newTierDeposit.String()),
			sdk.NewAttribute(tstypes.AttributeKeyOraiDeposit, newOraiDeposit.String()),
			sdk.NewAttribute(tstypes.AttributeKeyRefund, refund.String()),
		),
	)

	k.Logger(ctx).Info("tier changed", "address", sender.String(), "from", oldTier, "to", newTier, "usd", newTierDeposit.String())

	return &tstypes.MsgDepositResponse{
		Tier:        newTier,
		UsdDeposit:  newTierDeposit,
		OraiDeposit: newOraiDeposit,
		Refund:      refund,
	}, msgs, nil
}

// notEnoughForNextTierError reports how much more the user must deposit to reach the next tier.
func (k Keeper) notEnoughForNextTierError(ctx sdk.Context, cfg tstypes.Config, userInfo tstypes.UserInfo) error {
	if userInfo.Tier <= cfg.MaxTier() {
		return tstypes.ErrAlreadyMaxTier
	}

	nextTierDeposit, err := cfg.DepositByTier(userInfo.Tier - 1)
	if err != nil {
		return err
	}
	expectedUsd, err := tstypes.CheckedSub(nextTierDeposit, userInfo.UsdDeposit)
	if err != nil {
		return err
	}
	expectedNative, err := k.nativeAmount(ctx, cfg, expectedUsd)
	if err != nil {
		return err
	}

	return errorsmod.Wrapf(tstypes.ErrInsufficientForNextTier, "you should deposit at least %s USD (%s native)", expectedUsd, expectedNative)
}

func (k Keeper) usdAmount(ctx sdk.Context, cfg tstypes.Config, nativeAmount sdkmath.Int) (sdkmath.Int, error) {
	usd, err := k.oracle.UsdAmount(ctx, cfg, nativeAmount)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(tstypes.ErrOracle, "usd amount of %s: %s", nativeAmount, err)
	}
	return usd, nil
}

func (k Keeper) nativeAmount(ctx sdk.Context, cfg tstypes.Config, usdAmount sdkmath.Int) (sdkmath.Int, error) {
	native, err := k.oracle.NativeAmount(ctx, cfg, usdAmount)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(tstypes.ErrOracle, "native amount of %s USD: %s", usdAmount, err)
	}
	return native, nil
}
