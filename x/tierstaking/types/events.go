package types

// Tier staking module events
const (
	EventTypeDeposit         = "tierstaking_deposit"
	EventTypeWithdraw        = "tierstaking_withdraw"
	EventTypeBatchUnbond     = "tierstaking_batch_unbond"
	EventTypeClaim           = "tierstaking_claim"
	EventTypeRedelegate      = "tierstaking_redelegate"
	EventTypeWithdrawRewards = "tierstaking_withdraw_rewards"
	EventTypeConfigUpdated   = "tierstaking_config_updated"

	AttributeKeyAddress       = "address"
	AttributeKeyRecipient     = "recipient"
	AttributeKeyTier          = "tier"
	AttributeKeyUsdDeposit    = "usd_deposit"
	AttributeKeyOraiDeposit   = "orai_deposit"
	AttributeKeyRefund        = "refund"
	AttributeKeyAmount        = "amount"
	AttributeKeyWithdrawalId  = "withdrawal_id"
	AttributeKeyEntries       = "entries"
	AttributeKeyClaimTime     = "claim_time"
	AttributeKeySrcValidator  = "source_validator"
	AttributeKeyDstValidator  = "destination_validator"
	AttributeKeyRatio         = "ratio"
	AttributeKeyAction        = "action"
	AttributeValueAdmin       = "admin"
	AttributeValueStatus      = "status"
	AttributeValueOraiswap    = "oraiswap"
	AttributeValueWeightTable = "weight_table"
)
