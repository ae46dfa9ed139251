package keeper

import (
	"slices"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// Claim pays out, in a single transfer to the recipient, every matured withdrawal
// inside the page [start, start+limit) of the sender's withdrawal list.
// Records outside the page are not considered, even when matured.
func (k Keeper) Claim(ctx sdk.Context, sender, recipient sdk.AccAddress, start, limit uint32) (*tstypes.MsgClaimResponse, []sdk.Msg, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.AssertActive(); err != nil {
		return nil, nil, err
	}

	records := k.GetWithdrawals(ctx, sender)
	if len(records) == 0 {
		return nil, nil, tstypes.ErrNothingToClaim
	}

	now := ctx.BlockTime().Unix()

	amount := sdkmath.ZeroInt()
	claimed := make(map[uint64]bool)
	var claimedIds []uint64
	for _, record := range tstypes.Paginate(records, start, limit) {
		if !record.IsMatured(now) {
			continue
		}
		amount, err = tstypes.CheckedAdd(amount, record.Amount)
		if err != nil {
			return nil, nil, err
		}
		claimed[record.Id] = true
		claimedIds = append(claimedIds, record.Id)
	}

	if len(claimedIds) == 0 {
		return nil, nil, errorsmod.Wrapf(tstypes.ErrNothingToClaim, "no matured withdrawal in range [%d, %d)", start, uint64(start)+uint64(limit))
	}

	records = slices.DeleteFunc(records, func(r tstypes.WithdrawalRecord) bool {
		return claimed[r.Id]
	})
	k.SetWithdrawals(ctx, sender, records)

	bondDenom, err := k.bondDenom(ctx)
	if err != nil {
		return nil, nil, err
	}

	var msgs []sdk.Msg
	if amount.IsPositive() {
		msgs = append(msgs, k.newTransferMsg(recipient, sdk.NewCoins(sdk.NewCoin(bondDenom, amount))))
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			tstypes.EventTypeClaim,
			sdk.NewAttribute(tstypes.AttributeKeyAddress, sender.String()),
			sdk.NewAttribute(tstypes.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(tstypes.AttributeKeyAmount, amount.String()),
		),
	)

	return &tstypes.MsgClaimResponse{
		Amount:  amount,
		Claimed: claimedIds,
	}, msgs, nil
}
