package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgCreateFund         = "create_fund"
	TypeMsgSubscribe          = "subscribe"
	TypeMsgDeposit            = "deposit"
	TypeMsgWithdraw           = "withdraw"
	TypeMsgSwap               = "swap"
	TypeMsgMintPosition       = "mint_position"
	TypeMsgIncreaseLiquidity  = "increase_liquidity"
	TypeMsgCollectPositionFee = "collect_position_fee"
	TypeMsgDecreaseLiquidity  = "decrease_liquidity"
	TypeMsgWithdrawFee        = "withdraw_fee"
)

// MsgCreateFund opens a new fund managed by the creator.
type MsgCreateFund struct {
	Creator string `json:"creator"`
}

// ValidateBasic performs basic validation of MsgCreateFund
func (m *MsgCreateFund) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgCreateFund
func (m *MsgCreateFund) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(m.Creator)
	return []sdk.AccAddress{creator}
}

// MsgSubscribe registers the investor with an existing fund.
type MsgSubscribe struct {
	Investor string `json:"investor"`
	FundId   uint64 `json:"fund_id"`
}

// ValidateBasic performs basic validation of MsgSubscribe
func (m *MsgSubscribe) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Investor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid investor address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgSubscribe
func (m *MsgSubscribe) GetSigners() []sdk.AccAddress {
	investor, _ := sdk.AccAddressFromBech32(m.Investor)
	return []sdk.AccAddress{investor}
}

// MsgDeposit moves tokens from the investor's external balance into fund
// custody and credits the investor's sub-ledger.
type MsgDeposit struct {
	Investor string   `json:"investor"`
	FundId   uint64   `json:"fund_id"`
	Token    string   `json:"token"`
	Amount   math.Int `json:"amount"`
}

// ValidateBasic performs basic validation of MsgDeposit
func (m *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Investor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid investor address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	if err := sdk.ValidateDenom(m.Token); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid token denom: %s", err)
	}
	return validatePositiveAmount(m.Amount)
}

// GetSigners returns the expected signers for MsgDeposit
func (m *MsgDeposit) GetSigners() []sdk.AccAddress {
	investor, _ := sdk.AccAddressFromBech32(m.Investor)
	return []sdk.AccAddress{investor}
}

// MsgWithdraw returns the investor's tokens net of the manager fee skim.
type MsgWithdraw struct {
	Investor string   `json:"investor"`
	FundId   uint64   `json:"fund_id"`
	Token    string   `json:"token"`
	Amount   math.Int `json:"amount"`
}

// ValidateBasic performs basic validation of MsgWithdraw
func (m *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Investor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid investor address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	if err := sdk.ValidateDenom(m.Token); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid token denom: %s", err)
	}
	return validatePositiveAmount(m.Amount)
}

// GetSigners returns the expected signers for MsgWithdraw
func (m *MsgWithdraw) GetSigners() []sdk.AccAddress {
	investor, _ := sdk.AccAddressFromBech32(m.Investor)
	return []sdk.AccAddress{investor}
}

// MsgSwap executes one or more trades against an investor's sub-ledger.
// Only the fund manager may sign it.
type MsgSwap struct {
	Manager  string  `json:"manager"`
	FundId   uint64  `json:"fund_id"`
	Investor string  `json:"investor"`
	Trades   []Trade `json:"trades"`
}

// ValidateBasic performs basic validation of MsgSwap
func (m *MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Manager); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid manager address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Investor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid investor address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	if len(m.Trades) == 0 {
		return sdkerrors.Wrap(ErrInvalidTrade, "at least one trade required")
	}
	for i, trade := range m.Trades {
		if err := trade.Validate(); err != nil {
			return sdkerrors.Wrapf(err, "trade %d", i)
		}
	}
	return nil
}

// GetSigners returns the expected signers for MsgSwap
func (m *MsgSwap) GetSigners() []sdk.AccAddress {
	manager, _ := sdk.AccAddressFromBech32(m.Manager)
	return []sdk.AccAddress{manager}
}

// MsgMintPosition opens a liquidity position on an investor's behalf.
type MsgMintPosition struct {
	Manager  string             `json:"manager"`
	FundId   uint64             `json:"fund_id"`
	Investor string             `json:"investor"`
	Params   MintPositionParams `json:"params"`
}

// ValidateBasic performs basic validation of MsgMintPosition
func (m *MsgMintPosition) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Manager); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid manager address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Investor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid investor address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	return m.Params.Validate()
}

// GetSigners returns the expected signers for MsgMintPosition
func (m *MsgMintPosition) GetSigners() []sdk.AccAddress {
	manager, _ := sdk.AccAddressFromBech32(m.Manager)
	return []sdk.AccAddress{manager}
}

// MsgIncreaseLiquidity adds liquidity to an investor's open position.
type MsgIncreaseLiquidity struct {
	Manager  string                  `json:"manager"`
	FundId   uint64                  `json:"fund_id"`
	Investor string                  `json:"investor"`
	Params   IncreaseLiquidityParams `json:"params"`
}

// ValidateBasic performs basic validation of MsgIncreaseLiquidity
func (m *MsgIncreaseLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Manager); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid manager address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Investor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid investor address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	return m.Params.Validate()
}

// GetSigners returns the expected signers for MsgIncreaseLiquidity
func (m *MsgIncreaseLiquidity) GetSigners() []sdk.AccAddress {
	manager, _ := sdk.AccAddressFromBech32(m.Manager)
	return []sdk.AccAddress{manager}
}

// MsgCollectPositionFee collects accumulated position fees. Signed by the
// fund manager or by the position-owning investor.
type MsgCollectPositionFee struct {
	Caller   string        `json:"caller"`
	FundId   uint64        `json:"fund_id"`
	Investor string        `json:"investor"`
	Params   CollectParams `json:"params"`
}

// ValidateBasic performs basic validation of MsgCollectPositionFee
func (m *MsgCollectPositionFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Investor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid investor address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	return m.Params.Validate()
}

// GetSigners returns the expected signers for MsgCollectPositionFee
func (m *MsgCollectPositionFee) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(m.Caller)
	return []sdk.AccAddress{caller}
}

// MsgDecreaseLiquidity removes liquidity from a position. Signed by the fund
// manager or by the position-owning investor.
type MsgDecreaseLiquidity struct {
	Caller   string                  `json:"caller"`
	FundId   uint64                  `json:"fund_id"`
	Investor string                  `json:"investor"`
	Params   DecreaseLiquidityParams `json:"params"`
}

// ValidateBasic performs basic validation of MsgDecreaseLiquidity
func (m *MsgDecreaseLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Investor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid investor address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	return m.Params.Validate()
}

// GetSigners returns the expected signers for MsgDecreaseLiquidity
func (m *MsgDecreaseLiquidity) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(m.Caller)
	return []sdk.AccAddress{caller}
}

// MsgWithdrawFee claims accrued manager fees out of fund custody.
type MsgWithdrawFee struct {
	Manager string   `json:"manager"`
	FundId  uint64   `json:"fund_id"`
	Token   string   `json:"token"`
	Amount  math.Int `json:"amount"`
}

// ValidateBasic performs basic validation of MsgWithdrawFee
func (m *MsgWithdrawFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Manager); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid manager address: %s", err)
	}
	if m.FundId == 0 {
		return sdkerrors.Wrap(ErrFundNotFound, "fund id must be positive")
	}
	if err := sdk.ValidateDenom(m.Token); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid token denom: %s", err)
	}
	return validatePositiveAmount(m.Amount)
}

// GetSigners returns the expected signers for MsgWithdrawFee
func (m *MsgWithdrawFee) GetSigners() []sdk.AccAddress {
	manager, _ := sdk.AccAddressFromBech32(m.Manager)
	return []sdk.AccAddress{manager}
}

func validatePositiveAmount(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount must be positive")
	}
	return nil
}
