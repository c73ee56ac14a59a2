package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MintPositionParams describes a new concentrated-liquidity position.
type MintPositionParams struct {
	Token0         string   `json:"token0"`
	Token1         string   `json:"token1"`
	Fee            uint32   `json:"fee"`
	TickLower      int32    `json:"tick_lower"`
	TickUpper      int32    `json:"tick_upper"`
	Amount0Desired math.Int `json:"amount0_desired"`
	Amount1Desired math.Int `json:"amount1_desired"`
	Amount0Min     math.Int `json:"amount0_min"`
	Amount1Min     math.Int `json:"amount1_min"`
}

// Validate checks the mint parameters.
func (p MintPositionParams) Validate() error {
	if err := sdk.ValidateDenom(p.Token0); err != nil {
		return ErrInvalidAmount.Wrapf("invalid token0: %v", err)
	}
	if err := sdk.ValidateDenom(p.Token1); err != nil {
		return ErrInvalidAmount.Wrapf("invalid token1: %v", err)
	}
	if p.Token0 == p.Token1 {
		return ErrInvalidAmount.Wrap("position tokens must differ")
	}
	if p.TickLower >= p.TickUpper {
		return ErrInvalidAmount.Wrap("tick_lower must be below tick_upper")
	}
	return validateDesiredAmounts(p.Amount0Desired, p.Amount1Desired)
}

// IncreaseLiquidityParams adds liquidity to an existing position.
type IncreaseLiquidityParams struct {
	PositionID     uint64   `json:"position_id"`
	Amount0Desired math.Int `json:"amount0_desired"`
	Amount1Desired math.Int `json:"amount1_desired"`
	Amount0Min     math.Int `json:"amount0_min"`
	Amount1Min     math.Int `json:"amount1_min"`
}

// Validate checks the increase parameters.
func (p IncreaseLiquidityParams) Validate() error {
	if p.PositionID == 0 {
		return ErrInvalidAmount.Wrap("position id must be positive")
	}
	return validateDesiredAmounts(p.Amount0Desired, p.Amount1Desired)
}

// CollectParams collects accumulated swap fees from a position.
// The max amounts cap how much of each token is collected.
type CollectParams struct {
	PositionID uint64   `json:"position_id"`
	Amount0Max math.Int `json:"amount0_max"`
	Amount1Max math.Int `json:"amount1_max"`
}

// Validate checks the collect parameters.
func (p CollectParams) Validate() error {
	if p.PositionID == 0 {
		return ErrInvalidAmount.Wrap("position id must be positive")
	}
	if p.Amount0Max.IsNil() || p.Amount1Max.IsNil() {
		return ErrInvalidAmount.Wrap("max amounts must be set")
	}
	if p.Amount0Max.IsNegative() || p.Amount1Max.IsNegative() {
		return ErrInvalidAmount.Wrap("max amounts must be non-negative")
	}
	if p.Amount0Max.IsZero() && p.Amount1Max.IsZero() {
		return ErrInvalidAmount.Wrap("at least one max amount must be positive")
	}
	return nil
}

// DecreaseLiquidityParams removes liquidity from a position. The min amounts
// are pass-through lower bounds enforced by the venue.
type DecreaseLiquidityParams struct {
	PositionID uint64   `json:"position_id"`
	Liquidity  math.Int `json:"liquidity"`
	Amount0Min math.Int `json:"amount0_min"`
	Amount1Min math.Int `json:"amount1_min"`
}

// Validate checks the decrease parameters.
func (p DecreaseLiquidityParams) Validate() error {
	if p.PositionID == 0 {
		return ErrInvalidAmount.Wrap("position id must be positive")
	}
	if p.Liquidity.IsNil() || !p.Liquidity.IsPositive() {
		return ErrInvalidAmount.Wrap("liquidity must be positive")
	}
	return nil
}

// PositionInfo is the venue-reported summary of one open position.
type PositionInfo struct {
	PositionID uint64   `json:"position_id"`
	Token0     string   `json:"token0"`
	Token1     string   `json:"token1"`
	Liquidity  math.Int `json:"liquidity"`
	Amount0    math.Int `json:"amount0"`
	Amount1    math.Int `json:"amount1"`
}

func validateDesiredAmounts(amount0, amount1 math.Int) error {
	if amount0.IsNil() || amount1.IsNil() {
		return ErrInvalidAmount.Wrap("desired amounts must be set")
	}
	if amount0.IsNegative() || amount1.IsNegative() {
		return ErrInvalidAmount.Wrap("desired amounts must be non-negative")
	}
	if amount0.IsZero() && amount1.IsZero() {
		return ErrInvalidAmount.Wrap("at least one desired amount must be positive")
	}
	return nil
}
