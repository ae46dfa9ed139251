package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// Admin operations do not require the program to be active, so a stopped program can be resumed.

func (k Keeper) ChangeAdmin(ctx sdk.Context, sender, newAdmin sdk.AccAddress) error {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if err := tstypes.AssertAdmin(cfg, sender); err != nil {
		return err
	}

	cfg.Admin = newAdmin.String()
	if err := k.SetConfig(ctx, cfg); err != nil {
		return err
	}

	k.emitConfigUpdatedEvent(ctx, tstypes.AttributeValueAdmin)
	return nil
}

func (k Keeper) ChangeStatus(ctx sdk.Context, sender sdk.AccAddress, status tstypes.ContractStatus) error {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if err := tstypes.AssertAdmin(cfg, sender); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if cfg.Status == status {
		return errorsmod.Wrapf(tstypes.ErrSameStatus, "status is already %s", status)
	}

	cfg.Status = status
	if err := k.SetConfig(ctx, cfg); err != nil {
		return err
	}

	k.emitConfigUpdatedEvent(ctx, tstypes.AttributeValueStatus)
	k.Logger(ctx).Info("status changed", "status", string(status))
	return nil
}

func (k Keeper) ChangeOraiswap(ctx sdk.Context, sender sdk.AccAddress, oraiswap tstypes.OraiswapContract) error {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if err := tstypes.AssertAdmin(cfg, sender); err != nil {
		return err
	}
	if cfg.Oraiswap == oraiswap {
		return tstypes.ErrSameOraiswap
	}

	cfg.Oraiswap = oraiswap
	if err := k.SetConfig(ctx, cfg); err != nil {
		return err
	}

	k.emitConfigUpdatedEvent(ctx, tstypes.AttributeValueOraiswap)
	return nil
}

func (k Keeper) emitConfigUpdatedEvent(ctx sdk.Context, action string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			tstypes.EventTypeConfigUpdated,
			sdk.NewAttribute(tstypes.AttributeKeyAction, action),
		),
	)
}
