package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/EscanBE/tierstaking/utils"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

func (s *KeeperTestSuite) Test_queryServer_Config() {
	s.Run("pass - returns the stored config", func() {
		s.RefreshContext()

		resp, err := s.queryServer.Config(s.ctx, &tstypes.QueryConfigRequest{})
		s.Require().NoError(err)
		s.Require().NotNil(resp)
		s.Equal(s.defaultConfig(), resp.Config)
	})

	s.Run("fail - nil request", func() {
		s.RefreshContext()

		_, err := s.queryServer.Config(s.ctx, nil)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *KeeperTestSuite) Test_queryServer_UserInfo_Tier() {
	s.RefreshContext()

	s.seedPosition(s.user1, 2, 200)

	s.Run("pass - address with a position", func() {
		resp, err := s.queryServer.UserInfo(s.ctx, &tstypes.QueryUserInfoRequest{Address: s.user1.String()})
		s.Require().NoError(err)
		s.Equal(uint32(2), resp.UserInfo.Tier)
		s.Equal(sdkmath.NewInt(100), resp.UserInfo.UsdDeposit)
		s.Equal(sdkmath.NewInt(200), resp.UserInfo.OraiDeposit)

		tierResp, err := s.queryServer.Tier(s.ctx, &tstypes.QueryTierRequest{Address: s.user1.String()})
		s.Require().NoError(err)
		s.Equal(uint32(2), tierResp.Tier)
	})

	s.Run("pass - address without position gets the lowest tier", func() {
		resp, err := s.queryServer.UserInfo(s.ctx, &tstypes.QueryUserInfoRequest{Address: s.user2.String()})
		s.Require().NoError(err)
		s.Equal(uint32(3), resp.UserInfo.Tier)
		s.True(resp.UserInfo.UsdDeposit.IsZero())
		s.True(resp.UserInfo.OraiDeposit.IsZero())

		tierResp, err := s.queryServer.Tier(s.ctx, &tstypes.QueryTierRequest{Address: s.user2.String()})
		s.Require().NoError(err)
		s.Equal(uint32(3), tierResp.Tier)
	})

	s.Run("fail - empty address", func() {
		_, err := s.queryServer.UserInfo(s.ctx, &tstypes.QueryUserInfoRequest{})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("fail - invalid address", func() {
		_, err := s.queryServer.Tier(s.ctx, &tstypes.QueryTierRequest{Address: "invalid"})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *KeeperTestSuite) Test_queryServer_UserTotalDelegated() {
	s.RefreshContext()

	s.seedPosition(s.user1, 2, 200)

	resp, err := s.queryServer.UserTotalDelegated(s.ctx, &tstypes.QueryUserTotalDelegatedRequest{Address: s.user1.String()})
	s.Require().NoError(err)
	s.Equal(sdkmath.NewInt(200), resp.Amount)

	resp, err = s.queryServer.UserTotalDelegated(s.ctx, &tstypes.QueryUserTotalDelegatedRequest{Address: s.user2.String()})
	s.Require().NoError(err)
	s.True(resp.Amount.IsZero())
}

func (s *KeeperTestSuite) Test_queryServer_Withdrawals_Unbonds() {
	s.RefreshContext()

	s.seedWithdrawals()
	s.keeper.PushUnbondEntry(s.ctx, tstypes.UnbondEntry{
		WithdrawalId: 2,
		Address:      s.user1.String(),
		Amount:       sdkmath.NewInt(20),
		Timestamp:    s.now.Unix() - 1,
	})

	s.Run("pass - default page", func() {
		resp, err := s.queryServer.Withdrawals(s.ctx, &tstypes.QueryWithdrawalsRequest{Address: s.user1.String()})
		s.Require().NoError(err)
		s.Equal([]uint64{1, 2, 3, 4, 5}, recordIds(resp.Withdrawals))
	})

	s.Run("pass - page window", func() {
		resp, err := s.queryServer.Withdrawals(s.ctx, &tstypes.QueryWithdrawalsRequest{
			Address: s.user1.String(),
			Start:   utils.Ptr(uint32(1)),
			Limit:   utils.Ptr(uint32(2)),
		})
		s.Require().NoError(err)
		s.Equal([]uint64{2, 3}, recordIds(resp.Withdrawals))
	})

	s.Run("pass - page past the end is empty", func() {
		resp, err := s.queryServer.Withdrawals(s.ctx, &tstypes.QueryWithdrawalsRequest{
			Address: s.user1.String(),
			Start:   utils.Ptr(uint32(10)),
		})
		s.Require().NoError(err)
		s.Empty(resp.Withdrawals)
	})

	s.Run("fail - zero limit", func() {
		_, err := s.queryServer.Withdrawals(s.ctx, &tstypes.QueryWithdrawalsRequest{
			Address: s.user1.String(),
			Limit:   utils.Ptr(uint32(0)),
		})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("pass - unbond queue", func() {
		resp, err := s.queryServer.Unbonds(s.ctx, &tstypes.QueryUnbondsRequest{})
		s.Require().NoError(err)
		s.Require().Len(resp.Unbonds, 1)
		s.Equal(uint64(2), resp.Unbonds[0].WithdrawalId)
	})
}
