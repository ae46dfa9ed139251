package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the messages of the module on the legacy amino codec
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeposit{}, "tierstaking/Deposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "tierstaking/Withdraw", nil)
	cdc.RegisterConcrete(&MsgBatchUnbond{}, "tierstaking/BatchUnbond", nil)
	cdc.RegisterConcrete(&MsgClaim{}, "tierstaking/Claim", nil)
	cdc.RegisterConcrete(&MsgWithdrawRewards{}, "tierstaking/WithdrawRewards", nil)
	cdc.RegisterConcrete(&MsgRedelegate{}, "tierstaking/Redelegate", nil)
	cdc.RegisterConcrete(&MsgChangeAdmin{}, "tierstaking/ChangeAdmin", nil)
	cdc.RegisterConcrete(&MsgChangeStatus{}, "tierstaking/ChangeStatus", nil)
	cdc.RegisterConcrete(&MsgChangeOraiswap{}, "tierstaking/ChangeOraiswap", nil)
}
