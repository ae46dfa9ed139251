package keeper

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	disttypes "github.com/cosmos/cosmos-sdk/x/distribution/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// WithdrawRewards harvests the rewards of every configured validator to the recipient, admin if empty.
func (k Keeper) WithdrawRewards(ctx sdk.Context, sender, recipient sdk.AccAddress) (*tstypes.MsgWithdrawRewardsResponse, []sdk.Msg, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := tstypes.AssertAdmin(cfg, sender); err != nil {
		return nil, nil, err
	}

	withdrawAddr, err := rewardRecipient(cfg, recipient)
	if err != nil {
		return nil, nil, err
	}

	bondDenom, err := k.bondDenom(ctx)
	if err != nil {
		return nil, nil, err
	}

	msgs := []sdk.Msg{
		disttypes.NewMsgSetWithdrawAddress(k.ModuleAddress(), withdrawAddr),
	}

	total := sdkmath.ZeroInt()
	for _, v := range cfg.Validators {
		valAddr, err := parseValAddr(v.Address)
		if err != nil {
			return nil, nil, err
		}

		_, found, err := k.GetDelegatedAmount(ctx, valAddr)
		if err != nil {
			return nil, nil, err
		}
		if !found {
			continue
		}

		rewards, err := k.getAccumulatedRewards(ctx, valAddr, bondDenom)
		if err != nil {
			return nil, nil, err
		}
		total, err = tstypes.CheckedAdd(total, rewards)
		if err != nil {
			return nil, nil, err
		}

		msgs = append(msgs, disttypes.NewMsgWithdrawDelegatorReward(k.ModuleAddress().String(), v.Address))
	}

	if !total.IsPositive() {
		return nil, nil, tstypes.ErrNothingToWithdraw
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			tstypes.EventTypeWithdrawRewards,
			sdk.NewAttribute(tstypes.AttributeKeyRecipient, withdrawAddr.String()),
			sdk.NewAttribute(tstypes.AttributeKeyAmount, total.String()),
		),
	)

	k.Logger(ctx).Info("rewards harvested", "recipient", withdrawAddr.String(), "amount", total.String())

	return &tstypes.MsgWithdrawRewardsResponse{
		Amount: total,
	}, msgs, nil
}
