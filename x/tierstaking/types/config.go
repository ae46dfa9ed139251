package types

import (
	"fmt"
	"slices"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ContractStatus is the lifecycle status of the tier staking program.
type ContractStatus string

const (
	StatusActive  ContractStatus = "active"
	StatusStopped ContractStatus = "stopped"
)

func (s ContractStatus) Validate() error {
	switch s {
	case StatusActive, StatusStopped:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidConfig, "unknown status %q", string(s))
	}
}

// ParseContractStatus accepts the status name, case-insensitive.
func ParseContractStatus(s string) (ContractStatus, error) {
	status := ContractStatus(strings.ToLower(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// ValidatorWeight is the share, in percent, of every delegation that goes to the validator.
type ValidatorWeight struct {
	Address string `json:"address"`
	Weight  uint64 `json:"weight"`
}

// OraiswapContract holds the addresses consulted by the Oraiswap price oracle.
type OraiswapContract struct {
	RouterContract string `json:"router_contract"`
	UsdtContract   string `json:"usdt_contract"`
}

// Config is the singleton configuration of the tier staking program.
type Config struct {
	Admin                string            `json:"admin"`
	Validators           []ValidatorWeight `json:"validators"`
	UsdDepositThresholds []sdkmath.Int     `json:"usd_deposit_thresholds"`
	Status               ContractStatus    `json:"status"`
	Oraiswap             OraiswapContract  `json:"oraiswap_contract"`
	StableDenoms         []string          `json:"stable_denoms,omitempty"`
}

// MaxTier is the best tier, the one requiring the biggest deposit.
func (c Config) MaxTier() uint32 {
	return 1
}

// MinTier is the tier of an address without any deposit.
func (c Config) MinTier() uint32 {
	return uint32(len(c.UsdDepositThresholds)) + 1
}

// TierByDeposit returns the best tier whose threshold is satisfied by the given USD amount,
// or MinTier if none.
func (c Config) TierByDeposit(usdDeposit sdkmath.Int) uint32 {
	for i, threshold := range c.UsdDepositThresholds {
		if usdDeposit.GTE(threshold) {
			return uint32(i) + 1
		}
	}
	return c.MinTier()
}

// DepositByTier returns the USD threshold of the tier, which must be in range [1, N].
func (c Config) DepositByTier(tier uint32) (sdkmath.Int, error) {
	if tier < 1 || int(tier) > len(c.UsdDepositThresholds) {
		return sdkmath.Int{}, errorsmod.Wrapf(ErrInvalidConfig, "tier %d is out of range [1, %d]", tier, len(c.UsdDepositThresholds))
	}
	return c.UsdDepositThresholds[tier-1], nil
}

func (c Config) AssertActive() error {
	if c.Status != StatusActive {
		return ErrNotActive
	}
	return nil
}

// AssertAdmin returns ErrUnauthorized unless the caller is the configured admin.
func AssertAdmin(c Config, caller sdk.AccAddress) error {
	admin, err := sdk.AccAddressFromBech32(c.Admin)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid admin address: %s", err)
	}
	if !admin.Equals(caller) {
		return errorsmod.Wrapf(ErrUnauthorized, "%s is not the admin", caller)
	}
	return nil
}

func (c Config) IsStableDenom(denom string) bool {
	return slices.Contains(c.StableDenoms, denom)
}

// ValidatorIndex returns index of the validator in the weight table, or -1.
func (c Config) ValidatorIndex(valAddr string) int {
	return slices.IndexFunc(c.Validators, func(v ValidatorWeight) bool {
		return v.Address == valAddr
	})
}

// ShiftWeight moves ratio percent of the old validator's weight to the new validator,
// appending the new validator if not configured yet. With ratio 100, the old validator is removed.
// Returns the moved weight.
func (c *Config) ShiftWeight(oldValAddr, newValAddr string, ratio uint64) (uint64, error) {
	if ratio < 1 || ratio > MaxRedelegateRatio {
		return 0, errorsmod.Wrapf(ErrInvalidRatio, "got %d", ratio)
	}
	if oldValAddr == newValAddr {
		return 0, ErrSameValidator
	}
	oldIdx := c.ValidatorIndex(oldValAddr)
	if oldIdx < 0 {
		return 0, errorsmod.Wrap(ErrValidatorNotFound, oldValAddr)
	}

	changedWeight := c.Validators[oldIdx].Weight * ratio / MaxRedelegateRatio
	if changedWeight == 0 {
		return 0, errorsmod.Wrapf(ErrInvalidRatio, "ratio %d of weight %d moves nothing", ratio, c.Validators[oldIdx].Weight)
	}

	if newIdx := c.ValidatorIndex(newValAddr); newIdx >= 0 {
		c.Validators[newIdx].Weight += changedWeight
	} else {
		c.Validators = append(c.Validators, ValidatorWeight{
			Address: newValAddr,
			Weight:  changedWeight,
		})
	}

	if ratio == MaxRedelegateRatio {
		c.Validators = slices.Delete(c.Validators, oldIdx, oldIdx+1)
	} else {
		c.Validators[oldIdx].Weight -= changedWeight
	}

	return changedWeight, nil
}

func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Admin); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid admin address %q: %s", c.Admin, err)
	}
	if err := ValidateValidatorWeights(c.Validators); err != nil {
		return err
	}
	if err := ValidateThresholds(c.UsdDepositThresholds); err != nil {
		return err
	}
	if err := c.Status.Validate(); err != nil {
		return err
	}
	if err := c.Oraiswap.Validate(); err != nil {
		return err
	}
	return ValidateStableDenoms(c.StableDenoms)
}

// ValidateValidatorWeights requires unique operator addresses with positive weights summing to 100.
func ValidateValidatorWeights(validators []ValidatorWeight) error {
	if len(validators) == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "validators cannot be empty")
	}

	seen := make(map[string]bool, len(validators))
	var sum uint64
	for _, v := range validators {
		if _, err := sdk.ValAddressFromBech32(v.Address); err != nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "invalid validator address %q: %s", v.Address, err)
		}
		if seen[v.Address] {
			return errorsmod.Wrapf(ErrInvalidConfig, "duplicated validator %s", v.Address)
		}
		seen[v.Address] = true
		if v.Weight == 0 {
			return errorsmod.Wrapf(ErrInvalidConfig, "weight of validator %s must be positive", v.Address)
		}
		sum += v.Weight
	}

	if sum != TotalWeight {
		return errorsmod.Wrapf(ErrInvalidConfig, "sum of weights must be %d, got %d", TotalWeight, sum)
	}
	return nil
}

// ValidateThresholds requires a non-empty, strictly descending list of positive amounts.
func ValidateThresholds(thresholds []sdkmath.Int) error {
	if len(thresholds) == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "usd deposit thresholds cannot be empty")
	}
	for i, threshold := range thresholds {
		if threshold.IsNil() || !threshold.IsPositive() {
			return errorsmod.Wrapf(ErrInvalidConfig, "threshold of tier %d must be positive", i+1)
		}
		if i > 0 && threshold.GTE(thresholds[i-1]) {
			return errorsmod.Wrapf(ErrInvalidConfig, "threshold of tier %d must be less than tier %d", i+1, i)
		}
	}
	return nil
}

func ValidateStableDenoms(denoms []string) error {
	seen := make(map[string]bool, len(denoms))
	for _, denom := range denoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "invalid stable denom %q: %s", denom, err)
		}
		if seen[denom] {
			return errorsmod.Wrapf(ErrInvalidConfig, "duplicated stable denom %s", denom)
		}
		seen[denom] = true
	}
	return nil
}

// Validate accepts an empty pair, which means the Oraiswap oracle is not used.
func (o OraiswapContract) Validate() error {
	if o.RouterContract == "" && o.UsdtContract == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(o.RouterContract); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid router contract %q: %s", o.RouterContract, err)
	}
	if _, err := sdk.AccAddressFromBech32(o.UsdtContract); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid usdt contract %q: %s", o.UsdtContract, err)
	}
	return nil
}

func (o OraiswapContract) String() string {
	return fmt.Sprintf("router=%s usdt=%s", o.RouterContract, o.UsdtContract)
}
