package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Governance message type names
const (
	TypeMsgSetOwner         = "set_owner"
	TypeMsgSetManagerFee    = "set_manager_fee"
	TypeMsgSetMinPoolAmount = "set_min_pool_amount"
	TypeMsgAdmitToken       = "admit_token"
	TypeMsgRevokeToken      = "revoke_token"
)

// MsgSetOwner hands module governance to a new owner identity.
type MsgSetOwner struct {
	Owner    string `json:"owner"`
	NewOwner string `json:"new_owner"`
}

// ValidateBasic performs basic validation of MsgSetOwner
func (m *MsgSetOwner) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.NewOwner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid new owner address: %s", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgSetOwner
func (m *MsgSetOwner) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgSetManagerFee overwrites the withdrawal skim rate (millionths).
type MsgSetManagerFee struct {
	Owner string   `json:"owner"`
	Fee   math.Int `json:"fee"`
}

// ValidateBasic performs basic validation of MsgSetManagerFee
func (m *MsgSetManagerFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if m.Fee.IsNil() || m.Fee.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "fee must be non-negative")
	}
	if m.Fee.GTE(math.NewInt(FeeDenominator)) {
		return sdkerrors.Wrapf(ErrInvalidAmount, "fee must be below %d", FeeDenominator)
	}
	return nil
}

// GetSigners returns the expected signers for MsgSetManagerFee
func (m *MsgSetManagerFee) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgSetMinPoolAmount overwrites the whitelist admission depth threshold.
type MsgSetMinPoolAmount struct {
	Owner  string   `json:"owner"`
	Amount math.Int `json:"amount"`
}

// ValidateBasic performs basic validation of MsgSetMinPoolAmount
func (m *MsgSetMinPoolAmount) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if m.Amount.IsNil() || m.Amount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount must be non-negative")
	}
	return nil
}

// GetSigners returns the expected signers for MsgSetMinPoolAmount
func (m *MsgSetMinPoolAmount) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgAdmitToken adds a token to the whitelist, subject to the pool-depth gate.
type MsgAdmitToken struct {
	Owner string `json:"owner"`
	Token string `json:"token"`
}

// ValidateBasic performs basic validation of MsgAdmitToken
func (m *MsgAdmitToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if err := sdk.ValidateDenom(m.Token); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid token denom: %s", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgAdmitToken
func (m *MsgAdmitToken) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgRevokeToken removes a non-protected token from the whitelist.
type MsgRevokeToken struct {
	Owner string `json:"owner"`
	Token string `json:"token"`
}

// ValidateBasic performs basic validation of MsgRevokeToken
func (m *MsgRevokeToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if err := sdk.ValidateDenom(m.Token); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid token denom: %s", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgRevokeToken
func (m *MsgRevokeToken) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}
