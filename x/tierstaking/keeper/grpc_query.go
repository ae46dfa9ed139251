package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

var _ tstypes.QueryServer = queryServer{}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) tstypes.QueryServer {
	return &queryServer{Keeper: keeper}
}

func parseQueryAddress(address string) (sdk.AccAddress, error) {
	if address == "" {
		return nil, status.Error(codes.InvalidArgument, "empty address")
	}
	accAddr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address %s: %s", address, err)
	}
	return accAddr, nil
}

// Config implements the Query/Config method
func (k queryServer) Config(goCtx context.Context, req *tstypes.QueryConfigRequest) (*tstypes.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return &tstypes.QueryConfigResponse{
		Config: cfg,
	}, nil
}

// UserInfo implements the Query/UserInfo method.
// An address without deposit gets the default position.
func (k queryServer) UserInfo(goCtx context.Context, req *tstypes.QueryUserInfoRequest) (*tstypes.QueryUserInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	accAddr, err := parseQueryAddress(req.Address)
	if err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	userInfo, found := k.GetUserInfo(ctx, accAddr)
	if !found {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		userInfo = tstypes.DefaultUserInfo(cfg)
	}

	return &tstypes.QueryUserInfoResponse{
		UserInfo: userInfo,
	}, nil
}

func (k queryServer) UserTotalDelegated(goCtx context.Context, req *tstypes.QueryUserTotalDelegatedRequest) (*tstypes.QueryUserTotalDelegatedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	accAddr, err := parseQueryAddress(req.Address)
	if err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &tstypes.QueryUserTotalDelegatedResponse{
		Amount: k.GetUserTotalDelegated(ctx, accAddr),
	}, nil
}

// Withdrawals implements the Query/Withdrawals method, paged the same way as claim.
func (k queryServer) Withdrawals(goCtx context.Context, req *tstypes.QueryWithdrawalsRequest) (*tstypes.QueryWithdrawalsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	accAddr, err := parseQueryAddress(req.Address)
	if err != nil {
		return nil, err
	}
	if req.Limit != nil && *req.Limit == 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must be positive")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	start, limit := tstypes.PageWindow(req.Start, req.Limit)
	withdrawals := tstypes.Paginate(k.GetWithdrawals(ctx, accAddr), start, limit)

	return &tstypes.QueryWithdrawalsResponse{
		Withdrawals: append([]tstypes.WithdrawalRecord{}, withdrawals...),
	}, nil
}

func (k queryServer) Unbonds(goCtx context.Context, req *tstypes.QueryUnbondsRequest) (*tstypes.QueryUnbondsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &tstypes.QueryUnbondsResponse{
		Unbonds: k.GetUnbondEntries(ctx),
	}, nil
}

// Tier implements the Query/Tier method, used by the token sale to look up the tier of a buyer.
func (k queryServer) Tier(goCtx context.Context, req *tstypes.QueryTierRequest) (*tstypes.QueryTierResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	res, err := k.UserInfo(goCtx, &tstypes.QueryUserInfoRequest{Address: req.Address})
	if err != nil {
		return nil, err
	}

	return &tstypes.QueryTierResponse{
		Tier: res.UserInfo.Tier,
	}, nil
}
