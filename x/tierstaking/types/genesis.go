package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the config plus a snapshot of every ledger of the module.
// A nil Config means the program is not set up yet and every operation is rejected.
type GenesisState struct {
	Config           *Config                 `json:"config,omitempty"`
	UserInfos        []GenesisUserInfo       `json:"user_infos"`
	TotalDelegated   []GenesisTotalDelegated `json:"total_delegated"`
	Withdrawals      []GenesisWithdrawals    `json:"withdrawals"`
	UnbondQueue      []UnbondEntry           `json:"unbond_queue"`
	NextWithdrawalId uint64                  `json:"next_withdrawal_id"`
}

type GenesisUserInfo struct {
	Address  string   `json:"address"`
	UserInfo UserInfo `json:"user_info"`
}

type GenesisTotalDelegated struct {
	Address string      `json:"address"`
	Amount  sdkmath.Int `json:"amount"`
}

type GenesisWithdrawals struct {
	Address string             `json:"address"`
	Records []WithdrawalRecord `json:"records"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Config:           nil,
		UserInfos:        []GenesisUserInfo{},
		TotalDelegated:   []GenesisTotalDelegated{},
		Withdrawals:      []GenesisWithdrawals{},
		UnbondQueue:      []UnbondEntry{},
		NextWithdrawalId: 1,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return err
		}
	} else if len(gs.UserInfos) > 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "user infos require config")
	}

	if err := gs.validateUserInfos(); err != nil {
		return err
	}

	seenTotal := make(map[string]bool)
	for _, td := range gs.TotalDelegated {
		if err := validateGenesisAddress(td.Address, seenTotal); err != nil {
			return errorsmod.Wrap(err, "total delegated")
		}
		if td.Amount.IsNil() || td.Amount.IsNegative() {
			return fmt.Errorf("total delegated of %s must not be negative", td.Address)
		}
	}

	// pending withdrawal id -> owner
	pending := make(map[uint64]string)
	seenIds := make(map[uint64]bool)
	seenWithdrawals := make(map[string]bool)
	for _, w := range gs.Withdrawals {
		if err := validateGenesisAddress(w.Address, seenWithdrawals); err != nil {
			return errorsmod.Wrap(err, "withdrawals")
		}
		for _, record := range w.Records {
			if record.Id == 0 || record.Id >= gs.NextWithdrawalId {
				return fmt.Errorf("withdrawal id %d of %s must be in range [1, %d)", record.Id, w.Address, gs.NextWithdrawalId)
			}
			if seenIds[record.Id] {
				return fmt.Errorf("duplicated withdrawal id %d", record.Id)
			}
			seenIds[record.Id] = true
			if record.Amount.IsNil() || record.Amount.IsNegative() {
				return fmt.Errorf("amount of withdrawal %d must not be negative", record.Id)
			}
			if !record.IsScheduled() {
				pending[record.Id] = w.Address
			}
		}
	}

	for i, entry := range gs.UnbondQueue {
		owner, found := pending[entry.WithdrawalId]
		if !found {
			return fmt.Errorf("unbond entry %d references unknown or scheduled withdrawal %d", i, entry.WithdrawalId)
		}
		if owner != entry.Address {
			return fmt.Errorf("unbond entry %d belongs to %s but withdrawal %d belongs to %s", i, entry.Address, entry.WithdrawalId, owner)
		}
		if i > 0 && entry.Timestamp < gs.UnbondQueue[i-1].Timestamp {
			return fmt.Errorf("unbond queue is not in FIFO order at entry %d", i)
		}
		delete(pending, entry.WithdrawalId)
	}

	if len(pending) > 0 {
		return fmt.Errorf("%d unscheduled withdrawals are not queued", len(pending))
	}

	return nil
}

func (gs GenesisState) validateUserInfos() error {
	seen := make(map[string]bool)
	for _, ui := range gs.UserInfos {
		if err := validateGenesisAddress(ui.Address, seen); err != nil {
			return errorsmod.Wrap(err, "user infos")
		}
		threshold, err := gs.Config.DepositByTier(ui.UserInfo.Tier)
		if err != nil {
			return errorsmod.Wrapf(err, "user info of %s", ui.Address)
		}
		if ui.UserInfo.UsdDeposit.IsNil() || !ui.UserInfo.UsdDeposit.Equal(threshold) {
			return fmt.Errorf("usd deposit of %s must be %s, got %s", ui.Address, threshold, ui.UserInfo.UsdDeposit)
		}
		if ui.UserInfo.OraiDeposit.IsNil() || ui.UserInfo.OraiDeposit.IsNegative() {
			return fmt.Errorf("orai deposit of %s must not be negative", ui.Address)
		}
	}
	return nil
}

func validateGenesisAddress(address string, seen map[string]bool) error {
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		return fmt.Errorf("invalid address %q: %w", address, err)
	}
	if seen[address] {
		return fmt.Errorf("duplicated address %s", address)
	}
	seen[address] = true
	return nil
}
