package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

func (s *KeeperTestSuite) Test_msgServer_Withdraw() {
	tests := []struct {
		name            string
		sender          sdk.AccAddress
		preRunFunc      func(s *KeeperTestSuite)
		wantErr         bool
		wantErrContains string
		wantAmount      sdkmath.Int
		wantBatched     bool
		postRunFunc     func(s *KeeperTestSuite)
	}{
		{
			name:   "pass - payout is shared with slashing",
			sender: s.user1,
			preRunFunc: func(s *KeeperTestSuite) {
				s.seedPosition(s.user1, 2, 100)
				s.seedPosition(s.user2, 1, 300)
				for _, valoper := range s.validators {
					s.staking.slash(s.ctx, valoper, 10)
				}
			},
			// 100 * 360 / 400
			wantAmount: sdkmath.NewInt(90),
			postRunFunc: func(s *KeeperTestSuite) {
				_, found := s.keeper.GetUserInfo(s.ctx, s.user1)
				s.False(found)

				// released by the next batch only
				s.Equal(sdkmath.NewInt(100), s.keeper.GetUserTotalDelegated(s.ctx, s.user1))

				s.Equal([]tstypes.WithdrawalRecord{{
					Id:        1,
					Amount:    sdkmath.NewInt(90),
					Timestamp: s.now.Unix(),
					ClaimTime: tstypes.ClaimTimeUnscheduled,
				}}, s.keeper.GetWithdrawals(s.ctx, s.user1))

				s.Equal([]tstypes.UnbondEntry{{
					WithdrawalId: 1,
					Address:      s.user1.String(),
					Amount:       sdkmath.NewInt(90),
					Timestamp:    s.now.Unix(),
				}}, s.keeper.GetUnbondEntries(s.ctx))

				s.Empty(s.staking.settled)

				event, found := s.findEvent(tstypes.EventTypeWithdraw)
				s.Require().True(found)
				s.Equal("1", s.eventAttribute(event, tstypes.AttributeKeyWithdrawalId))
				s.Equal("90", s.eventAttribute(event, tstypes.AttributeKeyAmount))
			},
		},
		{
			name:   "pass - withdrawal ids are global",
			sender: s.user2,
			preRunFunc: func(s *KeeperTestSuite) {
				s.seedPosition(s.user1, 2, 100)
				s.seedPosition(s.user2, 1, 300)
				_, err := s.withdraw(s.user1)
				s.Require().NoError(err)
			},
			wantAmount: sdkmath.NewInt(300),
			postRunFunc: func(s *KeeperTestSuite) {
				records := s.keeper.GetWithdrawals(s.ctx, s.user2)
				s.Require().Len(records, 1)
				s.Equal(uint64(2), records[0].Id)
				s.Equal(uint64(2), s.keeper.UnbondQueueLen(s.ctx))
				s.Equal(uint64(3), s.keeper.GetNextWithdrawalId(s.ctx))
			},
		},
		{
			name:   "pass - queue older than the batch period is drained right away",
			sender: s.user2,
			preRunFunc: func(s *KeeperTestSuite) {
				s.seedPosition(s.user1, 2, 100)
				s.seedPosition(s.user2, 1, 300)
				_, err := s.withdraw(s.user1)
				s.Require().NoError(err)
				s.advanceTime(tstypes.BatchPeriod)
			},
			wantAmount:  sdkmath.NewInt(300),
			wantBatched: true,
			postRunFunc: func(s *KeeperTestSuite) {
				s.Zero(s.keeper.UnbondQueueLen(s.ctx))

				claimTime := s.now.Unix() + tstypes.BatchPeriod + tstypes.UnbondingPeriod
				for _, accAddr := range []sdk.AccAddress{s.user1, s.user2} {
					records := s.keeper.GetWithdrawals(s.ctx, accAddr)
					s.Require().Len(records, 1)
					s.Equal(claimTime, records[0].ClaimTime)
					s.True(s.keeper.GetUserTotalDelegated(s.ctx, accAddr).IsZero())
				}

				// 400 minus dust correction of 4 validators
				s.Require().Len(s.staking.settled, 4)
				for _, msg := range s.staking.settled {
					s.IsType(&stakingtypes.MsgUndelegate{}, msg)
				}
				for _, valoper := range s.validators {
					s.Equal(sdkmath.NewInt(1), s.delegatedTo(valoper))
				}
				s.Equal(sdkmath.NewInt(396), s.moduleBalance())
			},
		},
		{
			name:   "fail - inline batch smaller than the dust correction fails the whole withdraw",
			sender: s.user2,
			preRunFunc: func(s *KeeperTestSuite) {
				// one unit bonded to each of the 4 validators
				s.delegateFromModule(4)
				for accAddr, oraiDeposit := range map[string]int64{
					s.user1.String(): 1,
					s.user2.String(): 1,
					s.admin.String(): 2,
				} {
					s.keeper.SetUserInfo(s.ctx, sdk.MustAccAddressFromBech32(accAddr), tstypes.UserInfo{
						Tier:        2,
						UsdDeposit:  sdkmath.NewInt(100),
						OraiDeposit: sdkmath.NewInt(oraiDeposit),
					})
					s.keeper.SetUserTotalDelegated(s.ctx, sdk.MustAccAddressFromBech32(accAddr), sdkmath.NewInt(oraiDeposit))
				}

				_, err := s.withdraw(s.user1)
				s.Require().NoError(err)
				s.advanceTime(tstypes.BatchPeriod)
			},
			// queue total of 2 is lower than 4
			wantErr:         true,
			wantErrContains: "batch total is lower than the dust correction",
			postRunFunc: func(s *KeeperTestSuite) {
				_, found := s.keeper.GetUserInfo(s.ctx, s.user2)
				s.True(found)
				s.Empty(s.keeper.GetWithdrawals(s.ctx, s.user2))
				s.Equal(uint64(1), s.keeper.UnbondQueueLen(s.ctx))
				s.Empty(s.staking.settled)
			},
		},
		{
			name:            "fail - no deposit",
			sender:          s.user1,
			wantErr:         true,
			wantErrContains: tstypes.ErrNoDeposit.Error(),
		},
		{
			name:   "fail - a configured validator has no delegation",
			sender: s.user1,
			preRunFunc: func(s *KeeperTestSuite) {
				s.keeper.SetUserInfo(s.ctx, s.user1, tstypes.UserInfo{
					Tier:        2,
					UsdDeposit:  sdkmath.NewInt(100),
					OraiDeposit: sdkmath.NewInt(200),
				})
				s.keeper.SetUserTotalDelegated(s.ctx, s.user1, sdkmath.NewInt(200))
			},
			wantErr:         true,
			wantErrContains: tstypes.ErrMissingDelegation.Error(),
			postRunFunc: func(s *KeeperTestSuite) {
				_, found := s.keeper.GetUserInfo(s.ctx, s.user1)
				s.True(found)
				s.Empty(s.keeper.GetWithdrawals(s.ctx, s.user1))
			},
		},
		{
			name:   "fail - program is stopped",
			sender: s.user1,
			preRunFunc: func(s *KeeperTestSuite) {
				s.seedPosition(s.user1, 2, 100)
				s.setStatus(tstypes.StatusStopped)
			},
			wantErr:         true,
			wantErrContains: tstypes.ErrNotActive.Error(),
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.RefreshContext()
			s.staking.settled = nil

			if tt.preRunFunc != nil {
				tt.preRunFunc(s)
			}
			s.staking.settled = nil

			resp, err := s.withdraw(tt.sender)

			defer func() {
				if tt.postRunFunc != nil {
					tt.postRunFunc(s)
				}
			}()

			if tt.wantErr {
				s.Require().ErrorContains(err, tt.wantErrContains)
				s.Nil(resp)
				return
			}

			s.Require().NoError(err)
			s.Require().NotNil(resp)
			s.Equal(tt.wantAmount, resp.Amount)
			s.Equal(tt.wantBatched, resp.Batched)
		})
	}
}
