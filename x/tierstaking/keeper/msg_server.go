package keeper

import (
	"context"
	"strconv"

	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

var _ tstypes.MsgServer = &msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the entry points of the tier staking operations for the provided Keeper.
// Every operation is atomic: funds intake, state changes and settlement of the emitted instructions
// are committed together or not at all.
func NewMsgServerImpl(keeper Keeper) tstypes.MsgServer {
	return &msgServer{Keeper: keeper}
}

// execute runs the operation on a branch of the state.
// The attached funds are moved into the module account first, then the operation runs
// and its instructions are settled in emission order.
func (k msgServer) execute(
	ctx sdk.Context,
	msgType string,
	sender sdk.AccAddress,
	funds sdk.Coins,
	op func(ctx sdk.Context) ([]sdk.Msg, error),
	labels ...metrics.Label,
) error {
	cacheCtx, write := ctx.CacheContext()

	if !funds.IsZero() {
		if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, sender, tstypes.ModuleName, funds); err != nil {
			return err
		}
	}

	msgs, err := op(cacheCtx)
	if err != nil {
		return err
	}

	if err := k.dispatchMsgs(cacheCtx, msgs); err != nil {
		return err
	}

	write()

	telemetry.IncrCounterWithLabels(
		[]string{"tx", "msg", tstypes.ModuleName, msgType, "total"},
		1,
		labels,
	)
	if len(msgs) > 0 {
		telemetry.IncrCounterWithLabels(
			[]string{"tx", "msg", tstypes.ModuleName, msgType, "instructions"},
			float32(len(msgs)),
			labels,
		)
	}

	return nil
}

func (k msgServer) Deposit(goCtx context.Context, msg *tstypes.MsgDeposit) (*tstypes.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	var res *tstypes.MsgDepositResponse
	err := k.execute(ctx, tstypes.TypeMsgDeposit, sender, msg.Amount, func(ctx sdk.Context) (msgs []sdk.Msg, err error) {
		res, msgs, err = k.Keeper.Deposit(ctx, sender, msg.Amount)
		return
	}, telemetry.NewLabel("denom", msg.Amount[0].Denom))
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounterWithLabels(
		[]string{tstypes.ModuleName, "tier", "reached"},
		1,
		[]metrics.Label{telemetry.NewLabel("tier", strconv.FormatUint(uint64(res.Tier), 10))},
	)

	return res, nil
}

func (k msgServer) Withdraw(goCtx context.Context, msg *tstypes.MsgWithdraw) (*tstypes.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	var res *tstypes.MsgWithdrawResponse
	err := k.execute(ctx, tstypes.TypeMsgWithdraw, sender, nil, func(ctx sdk.Context) (msgs []sdk.Msg, err error) {
		res, msgs, err = k.Keeper.Withdraw(ctx, sender)
		return
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (k msgServer) BatchUnbond(goCtx context.Context, msg *tstypes.MsgBatchUnbond) (*tstypes.MsgBatchUnbondResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	var res *tstypes.MsgBatchUnbondResponse
	err := k.execute(ctx, tstypes.TypeMsgBatchUnbond, sender, nil, func(ctx sdk.Context) (msgs []sdk.Msg, err error) {
		res, msgs, err = k.Keeper.BatchUnbond(ctx)
		return
	})
	if err != nil {
		return nil, err
	}

	telemetry.SetGauge(float32(res.Entries), tstypes.ModuleName, "batch_unbond", "entries")

	return res, nil
}

func (k msgServer) Claim(goCtx context.Context, msg *tstypes.MsgClaim) (*tstypes.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)
	recipient := sender
	if msg.Recipient != "" {
		recipient = sdk.MustAccAddressFromBech32(msg.Recipient)
	}
	start, limit := tstypes.PageWindow(msg.Start, msg.Limit)

	var res *tstypes.MsgClaimResponse
	err := k.execute(ctx, tstypes.TypeMsgClaim, sender, nil, func(ctx sdk.Context) (msgs []sdk.Msg, err error) {
		res, msgs, err = k.Keeper.Claim(ctx, sender, recipient, start, limit)
		return
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (k msgServer) WithdrawRewards(goCtx context.Context, msg *tstypes.MsgWithdrawRewards) (*tstypes.MsgWithdrawRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)
	var recipient sdk.AccAddress
	if msg.Recipient != "" {
		recipient = sdk.MustAccAddressFromBech32(msg.Recipient)
	}

	var res *tstypes.MsgWithdrawRewardsResponse
	err := k.execute(ctx, tstypes.TypeMsgWithdrawRewards, sender, nil, func(ctx sdk.Context) (msgs []sdk.Msg, err error) {
		res, msgs, err = k.Keeper.WithdrawRewards(ctx, sender, recipient)
		return
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (k msgServer) Redelegate(goCtx context.Context, msg *tstypes.MsgRedelegate) (*tstypes.MsgRedelegateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)
	var recipient sdk.AccAddress
	if msg.Recipient != "" {
		recipient = sdk.MustAccAddressFromBech32(msg.Recipient)
	}

	var res *tstypes.MsgRedelegateResponse
	err := k.execute(ctx, tstypes.TypeMsgRedelegate, sender, nil, func(ctx sdk.Context) (msgs []sdk.Msg, err error) {
		res, msgs, err = k.Keeper.Redelegate(ctx, sender, msg.NewValidator, msg.OldValidator, msg.DelegateRatio, recipient)
		return
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (k msgServer) ChangeAdmin(goCtx context.Context, msg *tstypes.MsgChangeAdmin) (*tstypes.MsgChangeAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	err := k.execute(ctx, tstypes.TypeMsgChangeAdmin, sender, nil, func(ctx sdk.Context) ([]sdk.Msg, error) {
		return nil, k.Keeper.ChangeAdmin(ctx, sender, sdk.MustAccAddressFromBech32(msg.NewAdmin))
	})
	if err != nil {
		return nil, err
	}

	return &tstypes.MsgChangeAdminResponse{}, nil
}

func (k msgServer) ChangeStatus(goCtx context.Context, msg *tstypes.MsgChangeStatus) (*tstypes.MsgChangeStatusResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	err := k.execute(ctx, tstypes.TypeMsgChangeStatus, sender, nil, func(ctx sdk.Context) ([]sdk.Msg, error) {
		return nil, k.Keeper.ChangeStatus(ctx, sender, msg.Status)
	}, telemetry.NewLabel("status", string(msg.Status)))
	if err != nil {
		return nil, err
	}

	return &tstypes.MsgChangeStatusResponse{}, nil
}

func (k msgServer) ChangeOraiswap(goCtx context.Context, msg *tstypes.MsgChangeOraiswap) (*tstypes.MsgChangeOraiswapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	err := k.execute(ctx, tstypes.TypeMsgChangeOraiswap, sender, nil, func(ctx sdk.Context) ([]sdk.Msg, error) {
		return nil, k.Keeper.ChangeOraiswap(ctx, sender, tstypes.OraiswapContract{
			RouterContract: msg.RouterContract,
			UsdtContract:   msg.UsdtContract,
		})
	})
	if err != nil {
		return nil, err
	}

	return &tstypes.MsgChangeOraiswapResponse{}, nil
}
