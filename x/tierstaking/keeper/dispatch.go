package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	disttypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// newTransferMsg builds a payout from the module account.
func (k Keeper) newTransferMsg(recipient sdk.AccAddress, amount sdk.Coins) sdk.Msg {
	return banktypes.NewMsgSend(k.ModuleAddress(), recipient, amount)
}

// dispatchMsgs settles the instructions, in emission order, on behalf of the module account.
func (k Keeper) dispatchMsgs(ctx sdk.Context, msgs []sdk.Msg) error {
	moduleAddr := k.ModuleAddress().String()

	requireModuleSigner := func(signer string) error {
		if signer != moduleAddr {
			return errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "instruction signer %s is not the module account", signer)
		}
		return nil
	}

	for i, msg := range msgs {
		var err error

		switch m := msg.(type) {
		case *banktypes.MsgSend:
			if err = requireModuleSigner(m.FromAddress); err == nil {
				var recipient sdk.AccAddress
				recipient, err = sdk.AccAddressFromBech32(m.ToAddress)
				if err == nil {
					err = k.bankKeeper.SendCoinsFromModuleToAccount(ctx, tstypes.ModuleName, recipient, m.Amount)
				}
			}
		case *stakingtypes.MsgDelegate:
			if err = requireModuleSigner(m.DelegatorAddress); err == nil {
				_, err = k.stakingMsgServer.Delegate(ctx, m)
			}
		case *stakingtypes.MsgUndelegate:
			if err = requireModuleSigner(m.DelegatorAddress); err == nil {
				_, err = k.stakingMsgServer.Undelegate(ctx, m)
			}
		case *stakingtypes.MsgBeginRedelegate:
			if err = requireModuleSigner(m.DelegatorAddress); err == nil {
				_, err = k.stakingMsgServer.BeginRedelegate(ctx, m)
			}
		case *disttypes.MsgSetWithdrawAddress:
			if err = requireModuleSigner(m.DelegatorAddress); err == nil {
				_, err = k.distMsgServer.SetWithdrawAddress(ctx, m)
			}
		case *disttypes.MsgWithdrawDelegatorReward:
			if err = requireModuleSigner(m.DelegatorAddress); err == nil {
				_, err = k.distMsgServer.WithdrawDelegatorReward(ctx, m)
			}
		default:
			err = errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unsupported instruction %T", msg)
		}

		if err != nil {
			return errorsmod.Wrapf(err, "failed to settle instruction %d %s", i, sdk.MsgTypeURL(msg))
		}
	}

	return nil
}
