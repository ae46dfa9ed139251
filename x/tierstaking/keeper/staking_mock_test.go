package keeper_test

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	disttypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/EscanBE/tierstaking/utils"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

var (
	_ tstypes.StakingKeeper         = &mockStaking{}
	_ tstypes.StakingMsgServer      = &mockStaking{}
	_ tstypes.DistributionMsgServer = &mockStaking{}
	_ tstypes.DistributionQuerier   = &mockStaking{}
)

// mockStaking is a minimal staking and distribution chain.
// Its state lives in its own store so that it is branched and discarded together with the module state.
// Undelegated tokens are released right away.
type mockStaking struct {
	storeKey   storetypes.StoreKey
	bankKeeper bankkeeper.Keeper
	bondDenom  string

	// failures injected by tests
	delegateErr   error
	undelegateErr error

	// instructions settled so far, in order
	settled []sdk.Msg
}

type mockValidator struct {
	Tokens sdkmath.Int       `json:"tokens"`
	Shares sdkmath.LegacyDec `json:"shares"`
}

type mockStakingState struct {
	Validators     map[string]mockValidator     `json:"validators"`
	Delegations    map[string]sdkmath.LegacyDec `json:"delegations"`
	Rewards        map[string]sdkmath.Int       `json:"rewards"`
	Receiving      map[string]bool              `json:"receiving"`
	WithdrawAddrOf map[string]string            `json:"withdraw_addr_of"`
}

var mockStakingStateKey = []byte{0x01}

func newMockStaking(storeKey storetypes.StoreKey, bk bankkeeper.Keeper, bondDenom string) *mockStaking {
	return &mockStaking{
		storeKey:   storeKey,
		bankKeeper: bk,
		bondDenom:  bondDenom,
	}
}

func delegationKey(delegator, validator string) string {
	return delegator + "/" + validator
}

func (m *mockStaking) load(goCtx context.Context) mockStakingState {
	state := mockStakingState{
		Validators:     map[string]mockValidator{},
		Delegations:    map[string]sdkmath.LegacyDec{},
		Rewards:        map[string]sdkmath.Int{},
		Receiving:      map[string]bool{},
		WithdrawAddrOf: map[string]string{},
	}
	bz := sdk.UnwrapSDKContext(goCtx).KVStore(m.storeKey).Get(mockStakingStateKey)
	if len(bz) > 0 {
		utils.MustUnmarshalJson(bz, &state)
	}
	return state
}

func (m *mockStaking) save(goCtx context.Context, state mockStakingState) {
	sdk.UnwrapSDKContext(goCtx).KVStore(m.storeKey).Set(mockStakingStateKey, utils.MustMarshalJson(state))
}

// addValidator registers a bonded validator without any delegation.
func (m *mockStaking) addValidator(ctx sdk.Context, valoper string) {
	state := m.load(ctx)
	state.Validators[valoper] = mockValidator{
		Tokens: sdkmath.ZeroInt(),
		Shares: sdkmath.LegacyZeroDec(),
	}
	m.save(ctx, state)
}

// slash burns percent of the tokens bonded to the validator.
func (m *mockStaking) slash(ctx sdk.Context, valoper string, percent int64) {
	state := m.load(ctx)
	validator := state.Validators[valoper]
	burned := validator.Tokens.MulRaw(percent).QuoRaw(100)
	validator.Tokens = validator.Tokens.Sub(burned)
	state.Validators[valoper] = validator
	m.save(ctx, state)

	if burned.IsPositive() {
		err := m.bankKeeper.BurnCoins(ctx, stakingtypes.BondedPoolName, sdk.NewCoins(sdk.NewCoin(m.bondDenom, burned)))
		if err != nil {
			panic(err)
		}
	}
}

// setRewards sets the rewards accumulated by the delegations to the validator.
func (m *mockStaking) setRewards(ctx sdk.Context, valoper string, amount int64) {
	state := m.load(ctx)
	state.Rewards[valoper] = sdkmath.NewInt(amount)
	m.save(ctx, state)
}

func (m *mockStaking) setReceivingRedelegation(ctx sdk.Context, valoper string) {
	state := m.load(ctx)
	state.Receiving[valoper] = true
	m.save(ctx, state)
}

// tokensOf returns the tokens bonded by the delegator to the validator.
func (m *mockStaking) tokensOf(ctx sdk.Context, delegator sdk.AccAddress, valoper string) sdkmath.Int {
	state := m.load(ctx)
	shares, found := state.Delegations[delegationKey(delegator.String(), valoper)]
	if !found {
		return sdkmath.ZeroInt()
	}
	validator := state.Validators[valoper]
	return shares.MulInt(validator.Tokens).Quo(validator.Shares).TruncateInt()
}

func (m *mockStaking) withdrawAddrOf(ctx sdk.Context, delegator sdk.AccAddress) string {
	return m.load(ctx).WithdrawAddrOf[delegator.String()]
}

func sharesFromTokens(validator mockValidator, amount sdkmath.Int) sdkmath.LegacyDec {
	if validator.Tokens.IsZero() {
		return sdkmath.LegacyNewDecFromInt(amount)
	}
	return validator.Shares.MulInt(amount).QuoInt(validator.Tokens)
}

func (m *mockStaking) BondDenom(_ context.Context) (string, error) {
	return m.bondDenom, nil
}

func (m *mockStaking) GetDelegation(ctx context.Context, delAddr sdk.AccAddress, valAddr sdk.ValAddress) (stakingtypes.Delegation, error) {
	shares, found := m.load(ctx).Delegations[delegationKey(delAddr.String(), valAddr.String())]
	if !found {
		return stakingtypes.Delegation{}, stakingtypes.ErrNoDelegation
	}
	return stakingtypes.NewDelegation(delAddr.String(), valAddr.String(), shares), nil
}

func (m *mockStaking) GetValidator(ctx context.Context, addr sdk.ValAddress) (stakingtypes.Validator, error) {
	validator, found := m.load(ctx).Validators[addr.String()]
	if !found {
		return stakingtypes.Validator{}, stakingtypes.ErrNoValidatorFound
	}
	return stakingtypes.Validator{
		OperatorAddress: addr.String(),
		Tokens:          validator.Tokens,
		DelegatorShares: validator.Shares,
		Status:          stakingtypes.Bonded,
	}, nil
}

func (m *mockStaking) HasReceivingRedelegation(ctx context.Context, _ sdk.AccAddress, valDstAddr sdk.ValAddress) (bool, error) {
	return m.load(ctx).Receiving[valDstAddr.String()], nil
}

func (m *mockStaking) Delegate(ctx context.Context, msg *stakingtypes.MsgDelegate) (*stakingtypes.MsgDelegateResponse, error) {
	if m.delegateErr != nil {
		return nil, m.delegateErr
	}
	if !msg.Amount.Amount.IsPositive() {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid delegation amount %s", msg.Amount)
	}

	state := m.load(ctx)
	validator, found := state.Validators[msg.ValidatorAddress]
	if !found {
		return nil, stakingtypes.ErrNoValidatorFound
	}

	delegator := sdk.MustAccAddressFromBech32(msg.DelegatorAddress)
	if err := m.bankKeeper.SendCoinsFromAccountToModule(ctx, delegator, stakingtypes.BondedPoolName, sdk.NewCoins(msg.Amount)); err != nil {
		return nil, err
	}

	shares := sharesFromTokens(validator, msg.Amount.Amount)
	validator.Tokens = validator.Tokens.Add(msg.Amount.Amount)
	validator.Shares = validator.Shares.Add(shares)
	state.Validators[msg.ValidatorAddress] = validator

	key := delegationKey(msg.DelegatorAddress, msg.ValidatorAddress)
	if existing, found := state.Delegations[key]; found {
		shares = shares.Add(existing)
	}
	state.Delegations[key] = shares

	m.save(ctx, state)
	m.settled = append(m.settled, msg)
	return &stakingtypes.MsgDelegateResponse{}, nil
}

func (m *mockStaking) Undelegate(ctx context.Context, msg *stakingtypes.MsgUndelegate) (*stakingtypes.MsgUndelegateResponse, error) {
	if m.undelegateErr != nil {
		return nil, m.undelegateErr
	}

	state := m.load(ctx)
	key := delegationKey(msg.DelegatorAddress, msg.ValidatorAddress)
	delegated, found := state.Delegations[key]
	if !found {
		return nil, stakingtypes.ErrNoDelegation
	}

	validator := state.Validators[msg.ValidatorAddress]
	shares := sharesFromTokens(validator, msg.Amount.Amount)
	if shares.GT(delegated) {
		return nil, errorsmod.Wrapf(stakingtypes.ErrNotEnoughDelegationShares, "%s > %s", shares, delegated)
	}

	validator.Tokens = validator.Tokens.Sub(msg.Amount.Amount)
	validator.Shares = validator.Shares.Sub(shares)
	state.Validators[msg.ValidatorAddress] = validator

	if remaining := delegated.Sub(shares); remaining.IsPositive() {
		state.Delegations[key] = remaining
	} else {
		delete(state.Delegations, key)
	}
	m.save(ctx, state)

	delegator := sdk.MustAccAddressFromBech32(msg.DelegatorAddress)
	if err := m.bankKeeper.SendCoinsFromModuleToAccount(ctx, stakingtypes.BondedPoolName, delegator, sdk.NewCoins(msg.Amount)); err != nil {
		return nil, err
	}

	m.settled = append(m.settled, msg)
	return &stakingtypes.MsgUndelegateResponse{Amount: msg.Amount}, nil
}

func (m *mockStaking) BeginRedelegate(ctx context.Context, msg *stakingtypes.MsgBeginRedelegate) (*stakingtypes.MsgBeginRedelegateResponse, error) {
	state := m.load(ctx)
	srcKey := delegationKey(msg.DelegatorAddress, msg.ValidatorSrcAddress)
	delegated, found := state.Delegations[srcKey]
	if !found {
		return nil, stakingtypes.ErrNoDelegation
	}
	if state.Receiving[msg.ValidatorSrcAddress] {
		return nil, stakingtypes.ErrTransitiveRedelegation
	}
	dst, found := state.Validators[msg.ValidatorDstAddress]
	if !found {
		return nil, stakingtypes.ErrBadRedelegationDst
	}

	src := state.Validators[msg.ValidatorSrcAddress]
	srcShares := sharesFromTokens(src, msg.Amount.Amount)
	if srcShares.GT(delegated) {
		return nil, errorsmod.Wrapf(stakingtypes.ErrNotEnoughDelegationShares, "%s > %s", srcShares, delegated)
	}
	src.Tokens = src.Tokens.Sub(msg.Amount.Amount)
	src.Shares = src.Shares.Sub(srcShares)
	state.Validators[msg.ValidatorSrcAddress] = src
	if remaining := delegated.Sub(srcShares); remaining.IsPositive() {
		state.Delegations[srcKey] = remaining
	} else {
		delete(state.Delegations, srcKey)
	}

	dstShares := sharesFromTokens(dst, msg.Amount.Amount)
	dst.Tokens = dst.Tokens.Add(msg.Amount.Amount)
	dst.Shares = dst.Shares.Add(dstShares)
	state.Validators[msg.ValidatorDstAddress] = dst
	dstKey := delegationKey(msg.DelegatorAddress, msg.ValidatorDstAddress)
	if existing, found := state.Delegations[dstKey]; found {
		dstShares = dstShares.Add(existing)
	}
	state.Delegations[dstKey] = dstShares
	state.Receiving[msg.ValidatorDstAddress] = true

	m.save(ctx, state)
	m.settled = append(m.settled, msg)
	return &stakingtypes.MsgBeginRedelegateResponse{}, nil
}

func (m *mockStaking) SetWithdrawAddress(ctx context.Context, msg *disttypes.MsgSetWithdrawAddress) (*disttypes.MsgSetWithdrawAddressResponse, error) {
	state := m.load(ctx)
	state.WithdrawAddrOf[msg.DelegatorAddress] = msg.WithdrawAddress
	m.save(ctx, state)
	m.settled = append(m.settled, msg)
	return &disttypes.MsgSetWithdrawAddressResponse{}, nil
}

func (m *mockStaking) WithdrawDelegatorReward(ctx context.Context, msg *disttypes.MsgWithdrawDelegatorReward) (*disttypes.MsgWithdrawDelegatorRewardResponse, error) {
	state := m.load(ctx)
	if _, found := state.Delegations[delegationKey(msg.DelegatorAddress, msg.ValidatorAddress)]; !found {
		return nil, disttypes.ErrEmptyDelegationDistInfo
	}

	recipient := msg.DelegatorAddress
	if withdrawAddr, found := state.WithdrawAddrOf[msg.DelegatorAddress]; found {
		recipient = withdrawAddr
	}

	rewards := sdk.NewCoins()
	if amount, found := state.Rewards[msg.ValidatorAddress]; found && amount.IsPositive() {
		rewards = sdk.NewCoins(sdk.NewCoin(m.bondDenom, amount))
		if err := m.bankKeeper.MintCoins(ctx, banktypes.ModuleName, rewards); err != nil {
			return nil, err
		}
		if err := m.bankKeeper.SendCoinsFromModuleToAccount(ctx, banktypes.ModuleName, sdk.MustAccAddressFromBech32(recipient), rewards); err != nil {
			return nil, err
		}
		delete(state.Rewards, msg.ValidatorAddress)
	}

	m.save(ctx, state)
	m.settled = append(m.settled, msg)
	return &disttypes.MsgWithdrawDelegatorRewardResponse{Amount: rewards}, nil
}

func (m *mockStaking) DelegationRewards(ctx context.Context, req *disttypes.QueryDelegationRewardsRequest) (*disttypes.QueryDelegationRewardsResponse, error) {
	state := m.load(ctx)
	if _, found := state.Delegations[delegationKey(req.DelegatorAddress, req.ValidatorAddress)]; !found {
		return nil, errorsmod.Wrap(stakingtypes.ErrNoDelegation, fmt.Sprintf("%s to %s", req.DelegatorAddress, req.ValidatorAddress))
	}

	rewards := sdk.DecCoins{}
	if amount, found := state.Rewards[req.ValidatorAddress]; found && amount.IsPositive() {
		rewards = sdk.NewDecCoins(sdk.NewDecCoin(m.bondDenom, amount))
	}
	return &disttypes.QueryDelegationRewardsResponse{Rewards: rewards}, nil
}
