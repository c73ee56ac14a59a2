package types

// Event types for the fund module
const (
	EventTypeFundCreated       = "fund_created"
	EventTypeSubscribed        = "fund_subscribed"
	EventTypeDeposit           = "fund_deposit"
	EventTypeWithdraw          = "fund_withdraw"
	EventTypeSwap              = "fund_swap"
	EventTypeMintPosition      = "fund_mint_position"
	EventTypeIncreaseLiquidity = "fund_increase_liquidity"
	EventTypeCollectFee        = "fund_collect_position_fee"
	EventTypeDecreaseLiquidity = "fund_decrease_liquidity"
	EventTypeWithdrawFee       = "fund_withdraw_fee"
	EventTypeTokenAdmitted     = "fund_token_admitted"
	EventTypeTokenRevoked      = "fund_token_revoked"
	EventTypeOwnerUpdated      = "fund_owner_updated"
)

// Event attribute keys
const (
	AttributeKeyFundID      = "fund_id"
	AttributeKeyManager     = "manager"
	AttributeKeyInvestor    = "investor"
	AttributeKeyToken       = "token"
	AttributeKeyTokenIn     = "token_in"
	AttributeKeyTokenOut    = "token_out"
	AttributeKeyAmount      = "amount"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeyAmount0     = "amount0"
	AttributeKeyAmount1     = "amount1"
	AttributeKeyFee         = "fee"
	AttributeKeyPayout      = "payout"
	AttributeKeyPositionID  = "position_id"
	AttributeKeyOwner       = "owner"
	AttributeKeyTradeCount  = "trade_count"
)
