package tierstaking

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tskeeper "github.com/EscanBE/tierstaking/x/tierstaking/keeper"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// InitGenesis initializes genesis state based on exported genesis
func InitGenesis(
	ctx sdk.Context,
	k tskeeper.Keeper,
	accountKeeper tstypes.AccountKeeper,
	data tstypes.GenesisState,
) {
	if err := data.Validate(); err != nil {
		panic(fmt.Errorf("invalid %s genesis state: %s", tstypes.ModuleName, err))
	}

	// ensure the module account exists
	if acc := accountKeeper.GetModuleAccount(ctx, tstypes.ModuleName); acc == nil {
		panic(fmt.Sprintf("the %s module account has not been set", tstypes.ModuleName))
	}

	if data.Config != nil {
		if err := k.SetConfig(ctx, *data.Config); err != nil {
			panic(err)
		}
	}

	for _, ui := range data.UserInfos {
		k.SetUserInfo(ctx, sdk.MustAccAddressFromBech32(ui.Address), ui.UserInfo)
	}

	for _, td := range data.TotalDelegated {
		k.SetUserTotalDelegated(ctx, sdk.MustAccAddressFromBech32(td.Address), td.Amount)
	}

	for _, w := range data.Withdrawals {
		k.SetWithdrawals(ctx, sdk.MustAccAddressFromBech32(w.Address), w.Records)
	}

	for _, entry := range data.UnbondQueue {
		k.PushUnbondEntry(ctx, entry)
	}

	k.SetNextWithdrawalId(ctx, data.NextWithdrawalId)
}

// ExportGenesis export genesis state for tier staking, the unbond queue in FIFO order.
func ExportGenesis(ctx sdk.Context, k tskeeper.Keeper) *tstypes.GenesisState {
	genesis := tstypes.DefaultGenesis()

	if k.HasConfig(ctx) {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			panic(err)
		}
		genesis.Config = &cfg
	}

	k.IterateUserInfos(ctx, func(accAddr sdk.AccAddress, userInfo tstypes.UserInfo) bool {
		genesis.UserInfos = append(genesis.UserInfos, tstypes.GenesisUserInfo{
			Address:  accAddr.String(),
			UserInfo: userInfo,
		})
		return false
	})

	k.IterateUserTotalDelegated(ctx, func(accAddr sdk.AccAddress, amount sdkmath.Int) bool {
		genesis.TotalDelegated = append(genesis.TotalDelegated, tstypes.GenesisTotalDelegated{
			Address: accAddr.String(),
			Amount:  amount,
		})
		return false
	})

	k.IterateWithdrawals(ctx, func(accAddr sdk.AccAddress, records []tstypes.WithdrawalRecord) bool {
		genesis.Withdrawals = append(genesis.Withdrawals, tstypes.GenesisWithdrawals{
			Address: accAddr.String(),
			Records: records,
		})
		return false
	})

	genesis.UnbondQueue = k.GetUnbondEntries(ctx)
	genesis.NextWithdrawalId = k.GetNextWithdrawalId(ctx)

	return genesis
}
