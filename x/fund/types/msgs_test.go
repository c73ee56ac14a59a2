package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

func addr(b byte) string {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20)).String()
}

func TestMsgCreateFundValidateBasic(t *testing.T) {
	msg := &types.MsgCreateFund{Creator: addr(0x01)}
	require.NoError(t, msg.ValidateBasic())
	require.Len(t, msg.GetSigners(), 1)

	msg.Creator = "nope"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgSubscribeValidateBasic(t *testing.T) {
	msg := &types.MsgSubscribe{Investor: addr(0x01), FundId: 1}
	require.NoError(t, msg.ValidateBasic())

	msg.FundId = 0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrFundNotFound)

	msg = &types.MsgSubscribe{Investor: "nope", FundId: 1}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgDepositValidateBasic(t *testing.T) {
	valid := types.MsgDeposit{
		Investor: addr(0x01),
		FundId:   1,
		Token:    "uweth",
		Amount:   math.NewInt(100),
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.Token = "1bad!"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = valid
	msg.Amount = math.NewInt(0)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = valid
	msg.Amount = math.Int{}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgWithdrawValidateBasic(t *testing.T) {
	msg := types.MsgWithdraw{
		Investor: addr(0x01),
		FundId:   1,
		Token:    "uweth",
		Amount:   math.NewInt(-10),
	}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg.Amount = math.NewInt(10)
	require.NoError(t, msg.ValidateBasic())
}

func TestMsgSwapValidateBasic(t *testing.T) {
	valid := types.MsgSwap{
		Manager:  addr(0x01),
		FundId:   1,
		Investor: addr(0x02),
		Trades: []types.Trade{{
			Kind:        types.TradeExactInputSingle,
			TokenIn:     "uweth",
			TokenOut:    "uatom",
			Amount:      math.NewInt(100),
			LimitAmount: math.NewInt(1),
		}},
	}
	require.NoError(t, valid.ValidateBasic())
	require.Equal(t, valid.Manager, valid.GetSigners()[0].String())

	msg := valid
	msg.Trades = nil
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidTrade)

	msg = valid
	msg.Trades = []types.Trade{{Kind: types.TradeExactInputSingle}}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidTrade)
}

func TestMsgMintPositionValidateBasic(t *testing.T) {
	valid := types.MsgMintPosition{
		Manager:  addr(0x01),
		FundId:   1,
		Investor: addr(0x02),
		Params: types.MintPositionParams{
			Token0:         "uweth",
			Token1:         "udtl",
			TickLower:      -10,
			TickUpper:      10,
			Amount0Desired: math.NewInt(1),
			Amount1Desired: math.NewInt(1),
			Amount0Min:     math.NewInt(0),
			Amount1Min:     math.NewInt(0),
		},
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.Params.TickLower = 10
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = valid
	msg.Params.Token1 = msg.Params.Token0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgCollectPositionFeeValidateBasic(t *testing.T) {
	valid := types.MsgCollectPositionFee{
		Caller:   addr(0x01),
		FundId:   1,
		Investor: addr(0x02),
		Params: types.CollectParams{
			PositionID: 1,
			Amount0Max: math.NewInt(10),
			Amount1Max: math.NewInt(0),
		},
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.Params.PositionID = 0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = valid
	msg.Params.Amount0Max = math.NewInt(0)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgDecreaseLiquidityValidateBasic(t *testing.T) {
	valid := types.MsgDecreaseLiquidity{
		Caller:   addr(0x01),
		FundId:   1,
		Investor: addr(0x02),
		Params: types.DecreaseLiquidityParams{
			PositionID: 3,
			Liquidity:  math.NewInt(100),
			Amount0Min: math.NewInt(0),
			Amount1Min: math.NewInt(0),
		},
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.Params.Liquidity = math.NewInt(0)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
}

func TestGovMsgsValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgSetOwner{Owner: addr(0x01), NewOwner: addr(0x02)}).ValidateBasic())
	require.Error(t, (&types.MsgSetOwner{Owner: addr(0x01), NewOwner: "nope"}).ValidateBasic())

	require.NoError(t, (&types.MsgSetManagerFee{Owner: addr(0x01), Fee: math.NewInt(10_000)}).ValidateBasic())
	require.Error(t, (&types.MsgSetManagerFee{Owner: addr(0x01), Fee: math.NewInt(-1)}).ValidateBasic())

	require.NoError(t, (&types.MsgSetMinPoolAmount{Owner: addr(0x01), Amount: math.NewInt(1)}).ValidateBasic())
	require.Error(t, (&types.MsgSetMinPoolAmount{Owner: addr(0x01), Amount: math.Int{}}).ValidateBasic())

	require.NoError(t, (&types.MsgAdmitToken{Owner: addr(0x01), Token: "uatom"}).ValidateBasic())
	require.Error(t, (&types.MsgAdmitToken{Owner: addr(0x01), Token: ""}).ValidateBasic())

	require.NoError(t, (&types.MsgRevokeToken{Owner: addr(0x01), Token: "uatom"}).ValidateBasic())
	require.Error(t, (&types.MsgRevokeToken{Owner: "nope", Token: "uatom"}).ValidateBasic())
}
