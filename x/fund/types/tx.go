package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreateFund(context.Context, *MsgCreateFund) (*MsgCreateFundResponse, error)
	Subscribe(context.Context, *MsgSubscribe) (*MsgSubscribeResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	MintPosition(context.Context, *MsgMintPosition) (*MsgMintPositionResponse, error)
	IncreaseLiquidity(context.Context, *MsgIncreaseLiquidity) (*MsgIncreaseLiquidityResponse, error)
	CollectPositionFee(context.Context, *MsgCollectPositionFee) (*MsgCollectPositionFeeResponse, error)
	DecreaseLiquidity(context.Context, *MsgDecreaseLiquidity) (*MsgDecreaseLiquidityResponse, error)
	WithdrawFee(context.Context, *MsgWithdrawFee) (*MsgWithdrawFeeResponse, error)
	SetOwner(context.Context, *MsgSetOwner) (*MsgSetOwnerResponse, error)
	SetManagerFee(context.Context, *MsgSetManagerFee) (*MsgSetManagerFeeResponse, error)
	SetMinPoolAmount(context.Context, *MsgSetMinPoolAmount) (*MsgSetMinPoolAmountResponse, error)
	AdmitToken(context.Context, *MsgAdmitToken) (*MsgAdmitTokenResponse, error)
	RevokeToken(context.Context, *MsgRevokeToken) (*MsgRevokeTokenResponse, error)
}

// Response types

// MsgCreateFundResponse defines the response for CreateFund
type MsgCreateFundResponse struct {
	FundId uint64 `json:"fund_id"`
}

// MsgSubscribeResponse defines the response for Subscribe
type MsgSubscribeResponse struct{}

// MsgDepositResponse defines the response for Deposit
type MsgDepositResponse struct{}

// MsgWithdrawResponse defines the response for Withdraw
type MsgWithdrawResponse struct {
	Payout math.Int `json:"payout"`
	Fee    math.Int `json:"fee"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	Results []SwapResult `json:"results"`
}

// MsgMintPositionResponse defines the response for MintPosition
type MsgMintPositionResponse struct {
	PositionId uint64   `json:"position_id"`
	Amount0    math.Int `json:"amount0"`
	Amount1    math.Int `json:"amount1"`
}

// MsgIncreaseLiquidityResponse defines the response for IncreaseLiquidity
type MsgIncreaseLiquidityResponse struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
}

// MsgCollectPositionFeeResponse defines the response for CollectPositionFee
type MsgCollectPositionFeeResponse struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
}

// MsgDecreaseLiquidityResponse defines the response for DecreaseLiquidity
type MsgDecreaseLiquidityResponse struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
}

// MsgWithdrawFeeResponse defines the response for WithdrawFee
type MsgWithdrawFeeResponse struct{}

// MsgSetOwnerResponse defines the response for SetOwner
type MsgSetOwnerResponse struct{}

// MsgSetManagerFeeResponse defines the response for SetManagerFee
type MsgSetManagerFeeResponse struct{}

// MsgSetMinPoolAmountResponse defines the response for SetMinPoolAmount
type MsgSetMinPoolAmountResponse struct{}

// MsgAdmitTokenResponse defines the response for AdmitToken
type MsgAdmitTokenResponse struct{}

// MsgRevokeTokenResponse defines the response for RevokeToken
type MsgRevokeTokenResponse struct{}
