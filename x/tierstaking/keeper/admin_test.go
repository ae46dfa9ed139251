package keeper_test

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

func (s *KeeperTestSuite) Test_msgServer_ChangeAdmin() {
	s.Run("pass - new admin takes over", func() {
		s.RefreshContext()

		_, err := s.msgServer.ChangeAdmin(s.ctx, &tstypes.MsgChangeAdmin{
			Sender:   s.admin.String(),
			NewAdmin: s.user1.String(),
		})
		s.Require().NoError(err)

		cfg, err := s.keeper.GetConfig(s.ctx)
		s.Require().NoError(err)
		s.Equal(s.user1.String(), cfg.Admin)

		event, found := s.findEvent(tstypes.EventTypeConfigUpdated)
		s.Require().True(found)
		s.Equal(tstypes.AttributeValueAdmin, s.eventAttribute(event, tstypes.AttributeKeyAction))

		// previous admin lost the privilege
		_, err = s.msgServer.ChangeAdmin(s.ctx, &tstypes.MsgChangeAdmin{
			Sender:   s.admin.String(),
			NewAdmin: s.admin.String(),
		})
		s.Require().ErrorIs(err, tstypes.ErrUnauthorized)
	})

	s.Run("fail - sender is not the admin", func() {
		s.RefreshContext()

		_, err := s.msgServer.ChangeAdmin(s.ctx, &tstypes.MsgChangeAdmin{
			Sender:   s.user1.String(),
			NewAdmin: s.user1.String(),
		})
		s.Require().ErrorIs(err, tstypes.ErrUnauthorized)
	})

	s.Run("fail - reject bad new admin", func() {
		s.RefreshContext()

		_, err := s.msgServer.ChangeAdmin(s.ctx, &tstypes.MsgChangeAdmin{
			Sender:   s.admin.String(),
			NewAdmin: "invalid",
		})
		s.Require().ErrorIs(err, sdkerrors.ErrInvalidAddress)
	})
}

func (s *KeeperTestSuite) Test_msgServer_ChangeStatus() {
	changeStatus := func(sender sdk.AccAddress, status tstypes.ContractStatus) error {
		_, err := s.msgServer.ChangeStatus(s.ctx, &tstypes.MsgChangeStatus{
			Sender: sender.String(),
			Status: status,
		})
		return err
	}

	s.Run("pass - stopped program rejects user operations and can be resumed", func() {
		s.RefreshContext()

		s.Require().NoError(changeStatus(s.admin, tstypes.StatusStopped))

		s.mintToAccount(s.user1, sdk.NewCoins(sdk.NewInt64Coin(testBondDenom, 300)))
		_, err := s.deposit(s.user1, sdk.NewInt64Coin(testBondDenom, 300))
		s.Require().ErrorIs(err, tstypes.ErrNotActive)

		// admin operations still work
		_, err = s.msgServer.ChangeOraiswap(s.ctx, &tstypes.MsgChangeOraiswap{
			Sender:         s.admin.String(),
			RouterContract: s.user1.String(),
			UsdtContract:   s.user2.String(),
		})
		s.Require().NoError(err)

		s.Require().NoError(changeStatus(s.admin, tstypes.StatusActive))
		_, err = s.deposit(s.user1, sdk.NewInt64Coin(testBondDenom, 300))
		s.Require().NoError(err)
	})

	s.Run("fail - same status", func() {
		s.RefreshContext()

		s.Require().ErrorIs(changeStatus(s.admin, tstypes.StatusActive), tstypes.ErrSameStatus)
	})

	s.Run("fail - sender is not the admin", func() {
		s.RefreshContext()

		s.Require().ErrorIs(changeStatus(s.user1, tstypes.StatusStopped), tstypes.ErrUnauthorized)
	})

	s.Run("fail - unknown status", func() {
		s.RefreshContext()

		s.Require().ErrorIs(changeStatus(s.admin, "paused"), tstypes.ErrInvalidConfig)
	})
}

func (s *KeeperTestSuite) Test_msgServer_ChangeOraiswap() {
	router := sdk.AccAddress(bytes.Repeat([]byte{0xe1}, 32))
	usdt := sdk.AccAddress(bytes.Repeat([]byte{0xe2}, 32))

	changeOraiswap := func(sender sdk.AccAddress) error {
		_, err := s.msgServer.ChangeOraiswap(s.ctx, &tstypes.MsgChangeOraiswap{
			Sender:         sender.String(),
			RouterContract: router.String(),
			UsdtContract:   usdt.String(),
		})
		return err
	}

	s.Run("pass - contracts are updated", func() {
		s.RefreshContext()

		s.Require().NoError(changeOraiswap(s.admin))

		cfg, err := s.keeper.GetConfig(s.ctx)
		s.Require().NoError(err)
		s.Equal(tstypes.OraiswapContract{
			RouterContract: router.String(),
			UsdtContract:   usdt.String(),
		}, cfg.Oraiswap)

		s.Require().ErrorIs(changeOraiswap(s.admin), tstypes.ErrSameOraiswap)
	})

	s.Run("fail - sender is not the admin", func() {
		s.RefreshContext()

		s.Require().ErrorIs(changeOraiswap(s.user2), tstypes.ErrUnauthorized)
	})
}
