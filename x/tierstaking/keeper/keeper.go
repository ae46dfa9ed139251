package keeper

import (
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// Keeper of the tier staking store
type Keeper struct {
	storeKey storetypes.StoreKey

	accountKeeper    tstypes.AccountKeeper
	bankKeeper       tstypes.BankKeeper
	stakingKeeper    tstypes.StakingKeeper
	stakingMsgServer tstypes.StakingMsgServer
	distMsgServer    tstypes.DistributionMsgServer
	distQuerier      tstypes.DistributionQuerier
	oracle           tstypes.PriceOracle
}

// NewKeeper returns a new instance of the tier staking keeper.
// On a chain, sms and dms are the msg servers of x/staking and x/distribution
// and dq is the x/distribution querier.
func NewKeeper(
	key storetypes.StoreKey,
	ak tstypes.AccountKeeper,
	bk tstypes.BankKeeper,
	sk tstypes.StakingKeeper,
	sms tstypes.StakingMsgServer,
	dms tstypes.DistributionMsgServer,
	dq tstypes.DistributionQuerier,
	oracle tstypes.PriceOracle,
) Keeper {
	// ensure the module account is set
	if addr := ak.GetModuleAddress(tstypes.ModuleName); addr == nil {
		panic(fmt.Sprintf("the %s module account has not been set", tstypes.ModuleName))
	}

	return Keeper{
		storeKey:         key,
		accountKeeper:    ak,
		bankKeeper:       bk,
		stakingKeeper:    sk,
		stakingMsgServer: sms,
		distMsgServer:    dms,
		distQuerier:      dq,
		oracle:           oracle,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", tstypes.ModuleName))
}

// ModuleAddress is the delegator of every delegation and the holder of every deposit.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(tstypes.ModuleName)
}

func (k Keeper) bondDenom(ctx sdk.Context) (string, error) {
	return k.stakingKeeper.BondDenom(ctx)
}
