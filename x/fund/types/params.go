package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FeeDenominator is the fixed-point base for the manager fee rate: a rate of
// 10_000 over this denominator is 1%.
const FeeDenominator = 1_000_000

// Params holds the module's governance-controlled policy.
type Params struct {
	// Owner is the identity allowed to mutate policy and the whitelist.
	Owner string `json:"owner"`

	// ManagerFee is the withdrawal skim rate in millionths.
	ManagerFee math.Int `json:"manager_fee"`

	// MinPoolAmount is the reference-denominated pool depth an unlisted
	// token must exceed before it can be admitted.
	MinPoolAmount math.Int `json:"min_pool_amount"`

	// NativeDenom is the bare chain asset. Deposits of it are credited as
	// the wrapped reference denom.
	NativeDenom string `json:"native_denom"`

	// ReferenceDenom is the wrapped reference asset. Permanently whitelisted.
	ReferenceDenom string `json:"reference_denom"`

	// PlatformDenom is the platform token. Permanently whitelisted.
	PlatformDenom string `json:"platform_denom"`
}

// DefaultParams returns default parameters for the fund module
func DefaultParams() Params {
	return Params{
		Owner:          "",
		ManagerFee:     math.NewInt(10_000), // 1%
		MinPoolAmount:  math.NewInt(1_000_000),
		NativeDenom:    "ueth",
		ReferenceDenom: "uweth",
		PlatformDenom:  "udtl",
	}
}

// Validate checks the parameter set for well-formedness.
func (p Params) Validate() error {
	if p.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(p.Owner); err != nil {
			return fmt.Errorf("invalid owner address: %w", err)
		}
	}
	if p.ManagerFee.IsNil() || p.ManagerFee.IsNegative() {
		return fmt.Errorf("manager fee must be non-negative")
	}
	if p.ManagerFee.GTE(math.NewInt(FeeDenominator)) {
		return fmt.Errorf("manager fee must be below %d", FeeDenominator)
	}
	if p.MinPoolAmount.IsNil() || p.MinPoolAmount.IsNegative() {
		return fmt.Errorf("min pool amount must be non-negative")
	}
	if strings.TrimSpace(p.NativeDenom) == "" {
		return fmt.Errorf("native denom cannot be empty")
	}
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("invalid native denom: %w", err)
	}
	if strings.TrimSpace(p.ReferenceDenom) == "" {
		return fmt.Errorf("reference denom cannot be empty")
	}
	if err := sdk.ValidateDenom(p.ReferenceDenom); err != nil {
		return fmt.Errorf("invalid reference denom: %w", err)
	}
	if strings.TrimSpace(p.PlatformDenom) == "" {
		return fmt.Errorf("platform denom cannot be empty")
	}
	if err := sdk.ValidateDenom(p.PlatformDenom); err != nil {
		return fmt.Errorf("invalid platform denom: %w", err)
	}
	if p.ReferenceDenom == p.PlatformDenom {
		return fmt.Errorf("reference and platform denoms must differ")
	}
	if p.NativeDenom == p.ReferenceDenom {
		return fmt.Errorf("native and reference denoms must differ")
	}
	return nil
}

// IsProtected reports whether a denom is one of the two permanently
// whitelisted tokens that can never be revoked.
func (p Params) IsProtected(token string) bool {
	return token == p.ReferenceDenom || token == p.PlatformDenom
}
