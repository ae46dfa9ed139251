package keeper

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	disttypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

func parseValAddr(valoper string) (sdk.ValAddress, error) {
	valAddr, err := sdk.ValAddressFromBech32(valoper)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid validator address %s: %s", valoper, err)
	}
	return valAddr, nil
}

// GetDelegatedAmount returns the tokens currently bonded by the module account to the validator,
// slashing included. It returns false if there is no delegation.
func (k Keeper) GetDelegatedAmount(ctx sdk.Context, valAddr sdk.ValAddress) (sdkmath.Int, bool, error) {
	delegation, err := k.stakingKeeper.GetDelegation(ctx, k.ModuleAddress(), valAddr)
	if err != nil {
		if errors.Is(err, stakingtypes.ErrNoDelegation) {
			return sdkmath.ZeroInt(), false, nil
		}
		return sdkmath.Int{}, false, err
	}

	validator, err := k.stakingKeeper.GetValidator(ctx, valAddr)
	if err != nil {
		return sdkmath.Int{}, false, err
	}

	return validator.TokensFromShares(delegation.Shares).TruncateInt(), true, nil
}

// getRedelegatableAmount returns the part of the delegation that can be redelegated now.
// A delegation that is itself the destination of an in-progress redelegation cannot be moved again.
func (k Keeper) getRedelegatableAmount(ctx sdk.Context, valAddr sdk.ValAddress, delegatedAmount sdkmath.Int) (sdkmath.Int, error) {
	receiving, err := k.stakingKeeper.HasReceivingRedelegation(ctx, k.ModuleAddress(), valAddr)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if receiving {
		return sdkmath.ZeroInt(), nil
	}
	return delegatedAmount, nil
}

// getAccumulatedRewards returns the bond-denom rewards accumulated by the delegation to the validator.
func (k Keeper) getAccumulatedRewards(ctx sdk.Context, valAddr sdk.ValAddress, bondDenom string) (sdkmath.Int, error) {
	res, err := k.distQuerier.DelegationRewards(ctx, &disttypes.QueryDelegationRewardsRequest{
		DelegatorAddress: k.ModuleAddress().String(),
		ValidatorAddress: valAddr.String(),
	})
	if err != nil {
		if errors.Is(err, stakingtypes.ErrNoDelegation) || errors.Is(err, disttypes.ErrNoDelegationExists) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return res.Rewards.AmountOf(bondDenom).TruncateInt(), nil
}

// buildWeightedMsgs splits the amount by weight and builds one instruction per validator.
// Zero parts are skipped since the chain rejects zero-value delegations.
func (k Keeper) buildWeightedMsgs(
	ctx sdk.Context,
	validators []tstypes.ValidatorWeight,
	amount sdkmath.Int,
	bondDenom string,
	newMsg func(delegator, validator string, coin sdk.Coin) sdk.Msg,
) ([]sdk.Msg, error) {
	parts, err := tstypes.SplitByWeight(amount, validators)
	if err != nil {
		return nil, err
	}

	delegator := k.ModuleAddress().String()
	msgs := make([]sdk.Msg, 0, len(validators))
	for i, v := range validators {
		if !parts[i].IsPositive() {
			k.Logger(ctx).Debug("skip zero amount instruction", "validator", v.Address, "weight", v.Weight)
			continue
		}
		msgs = append(msgs, newMsg(delegator, v.Address, sdk.NewCoin(bondDenom, parts[i])))
	}
	return msgs, nil
}

func newDelegateMsg(delegator, validator string, coin sdk.Coin) sdk.Msg {
	return stakingtypes.NewMsgDelegate(delegator, validator, coin)
}

func newUndelegateMsg(delegator, validator string, coin sdk.Coin) sdk.Msg {
	return stakingtypes.NewMsgUndelegate(delegator, validator, coin)
}
