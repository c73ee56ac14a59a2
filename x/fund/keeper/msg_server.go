package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the fund MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateFund handles opening a new fund
func (ms msgServer) CreateFund(goCtx context.Context, msg *types.MsgCreateFund) (*types.MsgCreateFundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateFund: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreateFund: invalid creator address: %w", err)
	}

	fundID, err := ms.Keeper.CreateFund(goCtx, creator)
	if err != nil {
		return nil, fmt.Errorf("CreateFund: %w", err)
	}

	return &types.MsgCreateFundResponse{FundId: fundID}, nil
}

// Subscribe handles registering an investor with a fund
func (ms msgServer) Subscribe(goCtx context.Context, msg *types.MsgSubscribe) (*types.MsgSubscribeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Subscribe: validate: %w", err)
	}

	investor, err := sdk.AccAddressFromBech32(msg.Investor)
	if err != nil {
		return nil, fmt.Errorf("Subscribe: invalid investor address: %w", err)
	}

	if err := ms.Keeper.Subscribe(goCtx, investor, msg.FundId); err != nil {
		return nil, fmt.Errorf("Subscribe: %w", err)
	}

	return &types.MsgSubscribeResponse{}, nil
}

// Deposit handles moving tokens into fund custody
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deposit: validate: %w", err)
	}

	investor, err := sdk.AccAddressFromBech32(msg.Investor)
	if err != nil {
		return nil, fmt.Errorf("Deposit: invalid investor address: %w", err)
	}

	if err := ms.Keeper.Deposit(goCtx, investor, msg.FundId, msg.Token, msg.Amount); err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}

	return &types.MsgDepositResponse{}, nil
}

// Withdraw handles returning an investor's claim net of the fee skim
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	investor, err := sdk.AccAddressFromBech32(msg.Investor)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid investor address: %w", err)
	}

	payout, fee, err := ms.Keeper.Withdraw(goCtx, investor, msg.FundId, msg.Token, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	return &types.MsgWithdrawResponse{Payout: payout, Fee: fee}, nil
}

// Swap handles manager-directed trades against an investor's sub-ledger
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	manager, err := sdk.AccAddressFromBech32(msg.Manager)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid manager address: %w", err)
	}
	investor, err := sdk.AccAddressFromBech32(msg.Investor)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid investor address: %w", err)
	}

	results, err := ms.Keeper.Swap(goCtx, manager, msg.FundId, investor, msg.Trades)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{Results: results}, nil
}

// MintPosition handles opening a liquidity position
func (ms msgServer) MintPosition(goCtx context.Context, msg *types.MsgMintPosition) (*types.MsgMintPositionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MintPosition: validate: %w", err)
	}

	manager, err := sdk.AccAddressFromBech32(msg.Manager)
	if err != nil {
		return nil, fmt.Errorf("MintPosition: invalid manager address: %w", err)
	}
	investor, err := sdk.AccAddressFromBech32(msg.Investor)
	if err != nil {
		return nil, fmt.Errorf("MintPosition: invalid investor address: %w", err)
	}

	positionID, amount0, amount1, err := ms.Keeper.MintPosition(goCtx, manager, msg.FundId, investor, msg.Params)
	if err != nil {
		return nil, fmt.Errorf("MintPosition: %w", err)
	}

	return &types.MsgMintPositionResponse{
		PositionId: positionID,
		Amount0:    amount0,
		Amount1:    amount1,
	}, nil
}

// IncreaseLiquidity handles adding liquidity to an open position
func (ms msgServer) IncreaseLiquidity(goCtx context.Context, msg *types.MsgIncreaseLiquidity) (*types.MsgIncreaseLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("IncreaseLiquidity: validate: %w", err)
	}

	manager, err := sdk.AccAddressFromBech32(msg.Manager)
	if err != nil {
		return nil, fmt.Errorf("IncreaseLiquidity: invalid manager address: %w", err)
	}
	investor, err := sdk.AccAddressFromBech32(msg.Investor)
	if err != nil {
		return nil, fmt.Errorf("IncreaseLiquidity: invalid investor address: %w", err)
	}

	amount0, amount1, err := ms.Keeper.IncreaseLiquidity(goCtx, manager, msg.FundId, investor, msg.Params)
	if err != nil {
		return nil, fmt.Errorf("IncreaseLiquidity: %w", err)
	}

	return &types.MsgIncreaseLiquidityResponse{Amount0: amount0, Amount1: amount1}, nil
}

// CollectPositionFee handles collecting accumulated position fees
func (ms msgServer) CollectPositionFee(goCtx context.Context, msg *types.MsgCollectPositionFee) (*types.MsgCollectPositionFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CollectPositionFee: validate: %w", err)
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, fmt.Errorf("CollectPositionFee: invalid caller address: %w", err)
	}
	investor, err := sdk.AccAddressFromBech32(msg.Investor)
	if err != nil {
		return nil, fmt.Errorf("CollectPositionFee: invalid investor address: %w", err)
	}

	amount0, amount1, err := ms.Keeper.CollectPositionFee(goCtx, caller, msg.FundId, investor, msg.Params)
	if err != nil {
		return nil, fmt.Errorf("CollectPositionFee: %w", err)
	}

	return &types.MsgCollectPositionFeeResponse{Amount0: amount0, Amount1: amount1}, nil
}

// DecreaseLiquidity handles removing liquidity from a position
func (ms msgServer) DecreaseLiquidity(goCtx context.Context, msg *types.MsgDecreaseLiquidity) (*types.MsgDecreaseLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DecreaseLiquidity: validate: %w", err)
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, fmt.Errorf("DecreaseLiquidity: invalid caller address: %w", err)
	}
	investor, err := sdk.AccAddressFromBech32(msg.Investor)
	if err != nil {
		return nil, fmt.Errorf("DecreaseLiquidity: invalid investor address: %w", err)
	}

	amount0, amount1, err := ms.Keeper.DecreaseLiquidity(goCtx, caller, msg.FundId, investor, msg.Params)
	if err != nil {
		return nil, fmt.Errorf("DecreaseLiquidity: %w", err)
	}

	return &types.MsgDecreaseLiquidityResponse{Amount0: amount0, Amount1: amount1}, nil
}

// WithdrawFee handles claiming accrued manager fees
func (ms msgServer) WithdrawFee(goCtx context.Context, msg *types.MsgWithdrawFee) (*types.MsgWithdrawFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawFee: validate: %w", err)
	}

	manager, err := sdk.AccAddressFromBech32(msg.Manager)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFee: invalid manager address: %w", err)
	}

	if err := ms.Keeper.WithdrawFee(goCtx, manager, msg.FundId, msg.Token, msg.Amount); err != nil {
		return nil, fmt.Errorf("WithdrawFee: %w", err)
	}

	return &types.MsgWithdrawFeeResponse{}, nil
}

// SetOwner handles governance ownership transfer
func (ms msgServer) SetOwner(goCtx context.Context, msg *types.MsgSetOwner) (*types.MsgSetOwnerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetOwner: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("SetOwner: invalid owner address: %w", err)
	}
	newOwner, err := sdk.AccAddressFromBech32(msg.NewOwner)
	if err != nil {
		return nil, fmt.Errorf("SetOwner: invalid new owner address: %w", err)
	}

	if err := ms.Keeper.SetOwner(goCtx, owner, newOwner); err != nil {
		return nil, fmt.Errorf("SetOwner: %w", err)
	}

	return &types.MsgSetOwnerResponse{}, nil
}

// SetManagerFee handles overwriting the withdrawal skim rate
func (ms msgServer) SetManagerFee(goCtx context.Context, msg *types.MsgSetManagerFee) (*types.MsgSetManagerFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetManagerFee: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("SetManagerFee: invalid owner address: %w", err)
	}

	if err := ms.Keeper.SetManagerFee(goCtx, owner, msg.Fee); err != nil {
		return nil, fmt.Errorf("SetManagerFee: %w", err)
	}

	return &types.MsgSetManagerFeeResponse{}, nil
}

// SetMinPoolAmount handles overwriting the admission depth threshold
func (ms msgServer) SetMinPoolAmount(goCtx context.Context, msg *types.MsgSetMinPoolAmount) (*types.MsgSetMinPoolAmountResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetMinPoolAmount: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("SetMinPoolAmount: invalid owner address: %w", err)
	}

	if err := ms.Keeper.SetMinPoolAmount(goCtx, owner, msg.Amount); err != nil {
		return nil, fmt.Errorf("SetMinPoolAmount: %w", err)
	}

	return &types.MsgSetMinPoolAmountResponse{}, nil
}

// AdmitToken handles whitelisting a token
func (ms msgServer) AdmitToken(goCtx context.Context, msg *types.MsgAdmitToken) (*types.MsgAdmitTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AdmitToken: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("AdmitToken: invalid owner address: %w", err)
	}

	if err := ms.Keeper.AdmitToken(goCtx, owner, msg.Token); err != nil {
		return nil, fmt.Errorf("AdmitToken: %w", err)
	}

	return &types.MsgAdmitTokenResponse{}, nil
}

// RevokeToken handles removing a token from the whitelist
func (ms msgServer) RevokeToken(goCtx context.Context, msg *types.MsgRevokeToken) (*types.MsgRevokeTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RevokeToken: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("RevokeToken: invalid owner address: %w", err)
	}

	if err := ms.Keeper.RevokeToken(goCtx, owner, msg.Token); err != nil {
		return nil, fmt.Errorf("RevokeToken: %w", err)
	}

	return &types.MsgRevokeTokenResponse{}, nil
}
