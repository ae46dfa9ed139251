package types

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	codeErrInvalidFunds = uint32(iota) + 2
	codeErrZeroAmount
	codeErrUnsupportedDenom
	codeErrInvalidRatio
	codeErrInvalidConfig
	codeErrSameValidator
	codeErrUnauthorized
	codeErrNotActive
	codeErrAlreadyMaxTier
	codeErrInsufficientForNextTier
	codeErrNothingToClaim
	codeErrQueueEmpty
	codeErrTooEarly
	codeErrSameStatus
	codeErrSameOraiswap
	codeErrNoDeposit
	codeErrValidatorNotFound
	codeErrInsufficientRedelegatable
	codeErrNothingToWithdraw
	codeErrMissingDelegation
	codeErrOracle
	codeErrArithmetic
)

var (
	// ErrInvalidFunds returns an error if a deposit does not carry exactly one coin
	ErrInvalidFunds = errorsmod.Register(ModuleName, codeErrInvalidFunds, "exactly one coin must be sent")

	// ErrZeroAmount returns an error if the deposited amount is zero
	ErrZeroAmount = errorsmod.Register(ModuleName, codeErrZeroAmount, "zero amount is not allowed")

	// ErrUnsupportedDenom returns an error if the deposited denom is neither native nor an allowed stable denom
	ErrUnsupportedDenom = errorsmod.Register(ModuleName, codeErrUnsupportedDenom, "unsupported token")

	ErrInvalidRatio = errorsmod.Register(ModuleName, codeErrInvalidRatio, "redelegate ratio has to be from 1 to 100")

	ErrInvalidConfig = errorsmod.Register(ModuleName, codeErrInvalidConfig, "invalid config")

	ErrSameValidator = errorsmod.Register(ModuleName, codeErrSameValidator, "redelegation to the same validator")

	// ErrUnauthorized returns an error if the caller is not the admin
	ErrUnauthorized = errorsmod.Register(ModuleName, codeErrUnauthorized, "unauthorized")

	// ErrNotActive returns an error if the program is stopped
	ErrNotActive = errorsmod.Register(ModuleName, codeErrNotActive, "tier staking is not active")

	ErrAlreadyMaxTier = errorsmod.Register(ModuleName, codeErrAlreadyMaxTier, "reached max tier")

	// ErrInsufficientForNextTier returns an error if the deposit does not move the user to a better tier
	ErrInsufficientForNextTier = errorsmod.Register(ModuleName, codeErrInsufficientForNextTier, "insufficient deposit for next tier")

	ErrNothingToClaim = errorsmod.Register(ModuleName, codeErrNothingToClaim, "nothing to claim")

	ErrQueueEmpty = errorsmod.Register(ModuleName, codeErrQueueEmpty, "unbond queue is empty")

	// ErrTooEarly returns an error if the oldest queued withdrawal is younger than the batch period
	ErrTooEarly = errorsmod.Register(ModuleName, codeErrTooEarly, "too early to batch unbond")

	ErrSameStatus = errorsmod.Register(ModuleName, codeErrSameStatus, "trying to change the status to the same value")

	ErrSameOraiswap = errorsmod.Register(ModuleName, codeErrSameOraiswap, "trying to change to the same oraiswap addresses")

	ErrNoDeposit = errorsmod.Register(ModuleName, codeErrNoDeposit, "no deposit to withdraw")

	ErrValidatorNotFound = errorsmod.Register(ModuleName, codeErrValidatorNotFound, "validator is not part of the weight table")

	ErrInsufficientRedelegatable = errorsmod.Register(ModuleName, codeErrInsufficientRedelegatable, "cannot redelegate delegation amount")

	ErrNothingToWithdraw = errorsmod.Register(ModuleName, codeErrNothingToWithdraw, "there is nothing to withdraw from validators")

	// ErrMissingDelegation returns an error if a configured validator holds no delegation of the module.
	// This is an invariant violation, not a retryable condition.
	ErrMissingDelegation = errorsmod.Register(ModuleName, codeErrMissingDelegation, "no delegation was found")

	// ErrOracle returns an error if the price oracle could not convert an amount
	ErrOracle = errorsmod.Register(ModuleName, codeErrOracle, "price oracle query failed")

	// ErrArithmetic returns an error on overflow, underflow or division by zero
	ErrArithmetic = errorsmod.Register(ModuleName, codeErrArithmetic, "arithmetic error")
)
