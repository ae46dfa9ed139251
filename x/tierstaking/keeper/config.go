package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EscanBE/tierstaking/utils"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// GetConfig loads the config from the store, a fresh copy on every call.
func (k Keeper) GetConfig(ctx sdk.Context) (tstypes.Config, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(tstypes.KeyConfig)
	if len(bz) == 0 {
		return tstypes.Config{}, errorsmod.Wrap(tstypes.ErrInvalidConfig, "config has not been set")
	}

	var cfg tstypes.Config
	utils.MustUnmarshalJson(bz, &cfg)
	return cfg, nil
}

func (k Keeper) HasConfig(ctx sdk.Context) bool {
	return ctx.KVStore(k.storeKey).Has(tstypes.KeyConfig)
}

// SetConfig persists the config after validating it.
func (k Keeper) SetConfig(ctx sdk.Context, cfg tstypes.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(tstypes.KeyConfig, utils.MustMarshalJson(cfg))
	return nil
}
