package keeper

import (
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/EscanBE/tierstaking/utils"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// GetUserInfo retrieves the deposit position of the address.
// It returns false if the address has no position.
func (k Keeper) GetUserInfo(ctx sdk.Context, accAddr sdk.AccAddress) (tstypes.UserInfo, bool) {
	bz := ctx.KVStore(k.storeKey).Get(tstypes.UserInfoKey(accAddr))
	if len(bz) == 0 {
		return tstypes.UserInfo{}, false
	}

	var userInfo tstypes.UserInfo
	utils.MustUnmarshalJson(bz, &userInfo)
	return userInfo, true
}

func (k Keeper) SetUserInfo(ctx sdk.Context, accAddr sdk.AccAddress, userInfo tstypes.UserInfo) {
	ctx.KVStore(k.storeKey).Set(tstypes.UserInfoKey(accAddr), utils.MustMarshalJson(userInfo))
}

func (k Keeper) DeleteUserInfo(ctx sdk.Context, accAddr sdk.AccAddress) {
	ctx.KVStore(k.storeKey).Delete(tstypes.UserInfoKey(accAddr))
}

// IterateUserInfos iterates over every position, stopping when cb returns true.
func (k Keeper) IterateUserInfos(ctx sdk.Context, cb func(accAddr sdk.AccAddress, userInfo tstypes.UserInfo) (stop bool)) {
	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), tstypes.KeyPrefixUserInfo)
	defer func() {
		_ = iterator.Close()
	}()

	for ; iterator.Valid(); iterator.Next() {
		var userInfo tstypes.UserInfo
		utils.MustUnmarshalJson(iterator.Value(), &userInfo)

		accAddr := sdk.AccAddress(iterator.Key()[len(tstypes.KeyPrefixUserInfo):])
		if cb(accAddr, userInfo) {
			break
		}
	}
}
