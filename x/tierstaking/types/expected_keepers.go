package types

import (
	"context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	disttypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
)

// AccountKeeper defines the expected interface needed to retrieve the module account.
type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
	GetModuleAccount(ctx context.Context, moduleName string) sdk.ModuleAccountI
}

// BankKeeper defines the expected interface needed to take deposits and pay out refunds and claims.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// StakingKeeper defines the expected interface needed to read delegations of the module account.
type StakingKeeper interface {
	BondDenom(ctx context.Context) (string, error)
	GetDelegation(ctx context.Context, delAddr sdk.AccAddress, valAddr sdk.ValAddress) (stakingtypes.Delegation, error)
	GetValidator(ctx context.Context, addr sdk.ValAddress) (stakingtypes.Validator, error)
	HasReceivingRedelegation(ctx context.Context, delAddr sdk.AccAddress, valDstAddr sdk.ValAddress) (bool, error)
}

// StakingMsgServer is the subset of the x/staking msg server used to settle delegation instructions.
type StakingMsgServer interface {
	Delegate(ctx context.Context, msg *stakingtypes.MsgDelegate) (*stakingtypes.MsgDelegateResponse, error)
	Undelegate(ctx context.Context, msg *stakingtypes.MsgUndelegate) (*stakingtypes.MsgUndelegateResponse, error)
	BeginRedelegate(ctx context.Context, msg *stakingtypes.MsgBeginRedelegate) (*stakingtypes.MsgBeginRedelegateResponse, error)
}

// DistributionMsgServer is the subset of the x/distribution msg server used to settle reward instructions.
type DistributionMsgServer interface {
	SetWithdrawAddress(ctx context.Context, msg *disttypes.MsgSetWithdrawAddress) (*disttypes.MsgSetWithdrawAddressResponse, error)
	WithdrawDelegatorReward(ctx context.Context, msg *disttypes.MsgWithdrawDelegatorReward) (*disttypes.MsgWithdrawDelegatorRewardResponse, error)
}

type DistributionQuerier interface {
	DelegationRewards(ctx context.Context, req *disttypes.QueryDelegationRewardsRequest) (*disttypes.QueryDelegationRewardsResponse, error)
}

// PriceOracle converts between the native token and USD, both in base units.
type PriceOracle interface {
	UsdAmount(ctx sdk.Context, cfg Config, nativeAmount sdkmath.Int) (sdkmath.Int, error)
	NativeAmount(ctx sdk.Context, cfg Config, usdAmount sdkmath.Int) (sdkmath.Int, error)
}
