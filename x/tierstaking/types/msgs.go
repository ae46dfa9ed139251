package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgDeposit         = "deposit"
	TypeMsgWithdraw        = "withdraw"
	TypeMsgBatchUnbond     = "batch_unbond"
	TypeMsgClaim           = "claim"
	TypeMsgWithdrawRewards = "withdraw_rewards"
	TypeMsgRedelegate      = "redelegate"
	TypeMsgChangeAdmin     = "change_admin"
	TypeMsgChangeStatus    = "change_status"
	TypeMsgChangeOraiswap  = "change_oraiswap"
)

func validateSender(sender string) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "sender is not a valid bech32 account address: %s", sender)
	}
	return nil
}

func validateOptionalRecipient(recipient string) error {
	if recipient == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(recipient); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "recipient is not a valid bech32 account address: %s", recipient)
	}
	return nil
}

func validateValidatorAddress(name, valoper string) error {
	if _, err := sdk.ValAddressFromBech32(valoper); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "%s is not a valid bech32 validator address: %s", name, valoper)
	}
	return nil
}

// MsgDeposit deposits the attached funds and moves the sender to a better tier.
type MsgDeposit struct {
	Sender string    `json:"sender"`
	Amount sdk.Coins `json:"amount"`
}

type MsgDepositResponse struct {
	Tier        uint32      `json:"tier"`
	UsdDeposit  sdkmath.Int `json:"usd_deposit"`
	OraiDeposit sdkmath.Int `json:"orai_deposit"`
	Refund      sdk.Coins   `json:"refund"`
}

func (m *MsgDeposit) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if len(m.Amount) != 1 {
		return errorsmod.Wrapf(ErrInvalidFunds, "got %d coins", len(m.Amount))
	}
	coin := m.Amount[0]
	if err := sdk.ValidateDenom(coin.Denom); err != nil {
		return errorsmod.Wrap(ErrUnsupportedDenom, err.Error())
	}
	if coin.Amount.IsNil() || !coin.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

// MsgWithdraw liquidates the entire position of the sender.
type MsgWithdraw struct {
	Sender string `json:"sender"`
}

type MsgWithdrawResponse struct {
	WithdrawalId uint64      `json:"withdrawal_id"`
	Amount       sdkmath.Int `json:"amount"`
	Batched      bool        `json:"batched"`
}

func (m *MsgWithdraw) ValidateBasic() error {
	return validateSender(m.Sender)
}

// MsgBatchUnbond drains the unbond queue. Anyone can trigger it.
type MsgBatchUnbond struct {
	Sender string `json:"sender"`
}

type MsgBatchUnbondResponse struct {
	Entries          uint64      `json:"entries"`
	TotalUndelegated sdkmath.Int `json:"total_undelegated"`
	ClaimTime        int64       `json:"claim_time"`
}

func (m *MsgBatchUnbond) ValidateBasic() error {
	return validateSender(m.Sender)
}

// MsgClaim pays out the matured withdrawals found in the page [Start, Start+Limit)
// of the sender's withdrawal list.
type MsgClaim struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient,omitempty"`
	Start     *uint32 `json:"start,omitempty"`
	Limit     *uint32 `json:"limit,omitempty"`
}

type MsgClaimResponse struct {
	Amount  sdkmath.Int `json:"amount"`
	Claimed []uint64    `json:"claimed"`
}

func (m *MsgClaim) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if err := validateOptionalRecipient(m.Recipient); err != nil {
		return err
	}
	if m.Limit != nil && *m.Limit == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "limit must be positive")
	}
	return nil
}

// MsgWithdrawRewards harvests the staking rewards of every configured validator.
type MsgWithdrawRewards struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient,omitempty"`
}

type MsgWithdrawRewardsResponse struct {
	Amount sdkmath.Int `json:"amount"`
}

func (m *MsgWithdrawRewards) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	return validateOptionalRecipient(m.Recipient)
}

// MsgRedelegate moves DelegateRatio percent of the old validator's stake and weight to the new validator.
type MsgRedelegate struct {
	Sender        string `json:"sender"`
	NewValidator  string `json:"new_validator"`
	OldValidator  string `json:"old_validator"`
	DelegateRatio uint64 `json:"delegate_ratio"`
	Recipient     string `json:"recipient,omitempty"`
}

type MsgRedelegateResponse struct {
	Amount        sdkmath.Int `json:"amount"`
	ChangedWeight uint64      `json:"changed_weight"`
}

func (m *MsgRedelegate) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if err := validateValidatorAddress("new validator", m.NewValidator); err != nil {
		return err
	}
	if err := validateValidatorAddress("old validator", m.OldValidator); err != nil {
		return err
	}
	if m.DelegateRatio < 1 || m.DelegateRatio > MaxRedelegateRatio {
		return errorsmod.Wrapf(ErrInvalidRatio, "got %d", m.DelegateRatio)
	}
	if m.NewValidator == m.OldValidator {
		return ErrSameValidator
	}
	return validateOptionalRecipient(m.Recipient)
}

type MsgChangeAdmin struct {
	Sender   string `json:"sender"`
	NewAdmin string `json:"new_admin"`
}

type MsgChangeAdminResponse struct{}

func (m *MsgChangeAdmin) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(m.NewAdmin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "new admin is not a valid bech32 account address: %s", m.NewAdmin)
	}
	return nil
}

type MsgChangeStatus struct {
	Sender string         `json:"sender"`
	Status ContractStatus `json:"status"`
}

type MsgChangeStatusResponse struct{}

func (m *MsgChangeStatus) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	return m.Status.Validate()
}

type MsgChangeOraiswap struct {
	Sender         string `json:"sender"`
	RouterContract string `json:"router_contract"`
	UsdtContract   string `json:"usdt_contract"`
}

type MsgChangeOraiswapResponse struct{}

func (m *MsgChangeOraiswap) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(m.RouterContract); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "router contract is not a valid bech32 address: %s", m.RouterContract)
	}
	if _, err := sdk.AccAddressFromBech32(m.UsdtContract); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "usdt contract is not a valid bech32 address: %s", m.UsdtContract)
	}
	return nil
}
