package types

import "context"

// MsgServer is the set of state-changing operations of the module.
type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	BatchUnbond(context.Context, *MsgBatchUnbond) (*MsgBatchUnbondResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	WithdrawRewards(context.Context, *MsgWithdrawRewards) (*MsgWithdrawRewardsResponse, error)
	Redelegate(context.Context, *MsgRedelegate) (*MsgRedelegateResponse, error)
	ChangeAdmin(context.Context, *MsgChangeAdmin) (*MsgChangeAdminResponse, error)
	ChangeStatus(context.Context, *MsgChangeStatus) (*MsgChangeStatusResponse, error)
	ChangeOraiswap(context.Context, *MsgChangeOraiswap) (*MsgChangeOraiswapResponse, error)
}

// QueryServer is the set of read-only queries of the module.
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	UserInfo(context.Context, *QueryUserInfoRequest) (*QueryUserInfoResponse, error)
	UserTotalDelegated(context.Context, *QueryUserTotalDelegatedRequest) (*QueryUserTotalDelegatedResponse, error)
	Withdrawals(context.Context, *QueryWithdrawalsRequest) (*QueryWithdrawalsResponse, error)
	Unbonds(context.Context, *QueryUnbondsRequest) (*QueryUnbondsResponse, error)
	Tier(context.Context, *QueryTierRequest) (*QueryTierResponse, error)
}
