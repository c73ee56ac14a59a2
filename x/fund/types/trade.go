package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TradeKind selects one (hop, direction) combination of a swap descriptor.
type TradeKind int32

const (
	// TradeExactInputSingle swaps an exact input amount through one pool.
	TradeExactInputSingle TradeKind = iota
	// TradeExactOutputSingle swaps up to a maximum input for an exact output
	// through one pool.
	TradeExactOutputSingle
	// TradeExactInput swaps an exact input amount along a multi-hop path.
	TradeExactInput
	// TradeExactOutput swaps up to a maximum input for an exact output along
	// a multi-hop path.
	TradeExactOutput
)

func (k TradeKind) String() string {
	switch k {
	case TradeExactInputSingle:
		return "exact_input_single"
	case TradeExactOutputSingle:
		return "exact_output_single"
	case TradeExactInput:
		return "exact_input"
	case TradeExactOutput:
		return "exact_output"
	default:
		return "unknown"
	}
}

// IsExactInput reports whether the descriptor fixes the input side.
func (k TradeKind) IsExactInput() bool {
	return k == TradeExactInputSingle || k == TradeExactInput
}

// IsMultiHop reports whether the descriptor routes through multiple pools.
func (k TradeKind) IsMultiHop() bool {
	return k == TradeExactInput || k == TradeExactOutput
}

// Trade is one swap descriptor. Single-hop kinds use TokenIn/TokenOut;
// multi-hop kinds use Path, ordered from input token to output token.
// Amount is the exact side (input for exact-in, output for exact-out).
// LimitAmount bounds the other side (minimum output for exact-in, maximum
// input for exact-out). PriceLimit is passed through to the venue untouched.
type Trade struct {
	Kind        TradeKind `json:"kind"`
	TokenIn     string    `json:"token_in,omitempty"`
	TokenOut    string    `json:"token_out,omitempty"`
	Path        []string  `json:"path,omitempty"`
	Amount      math.Int  `json:"amount"`
	LimitAmount math.Int  `json:"limit_amount"`
	PriceLimit  math.Int  `json:"price_limit,omitempty"`
}

// SourceToken returns the token consumed by the trade.
func (t Trade) SourceToken() string {
	if t.Kind.IsMultiHop() {
		if len(t.Path) == 0 {
			return ""
		}
		return t.Path[0]
	}
	return t.TokenIn
}

// DestinationToken returns the token produced by the trade.
func (t Trade) DestinationToken() string {
	if t.Kind.IsMultiHop() {
		if len(t.Path) == 0 {
			return ""
		}
		return t.Path[len(t.Path)-1]
	}
	return t.TokenOut
}

// RequiredInput returns the largest input amount the trade may consume:
// the exact input for exact-in kinds, the input ceiling for exact-out kinds.
func (t Trade) RequiredInput() math.Int {
	if t.Kind.IsExactInput() {
		return t.Amount
	}
	return t.LimitAmount
}

// Validate checks the descriptor shape for its kind.
func (t Trade) Validate() error {
	switch t.Kind {
	case TradeExactInputSingle, TradeExactOutputSingle:
		if t.TokenIn == "" || t.TokenOut == "" {
			return ErrInvalidTrade.Wrap("single-hop trade requires token_in and token_out")
		}
		if t.TokenIn == t.TokenOut {
			return ErrInvalidTrade.Wrap("token_in and token_out must differ")
		}
		if err := sdk.ValidateDenom(t.TokenIn); err != nil {
			return ErrInvalidTrade.Wrapf("invalid token_in: %v", err)
		}
		if err := sdk.ValidateDenom(t.TokenOut); err != nil {
			return ErrInvalidTrade.Wrapf("invalid token_out: %v", err)
		}
	case TradeExactInput, TradeExactOutput:
		if len(t.Path) < 2 {
			return ErrInvalidTrade.Wrap("multi-hop trade requires a path of at least two tokens")
		}
		for _, token := range t.Path {
			if err := sdk.ValidateDenom(token); err != nil {
				return ErrInvalidTrade.Wrapf("invalid path token %q: %v", token, err)
			}
		}
		if t.Path[0] == t.Path[len(t.Path)-1] {
			return ErrInvalidTrade.Wrap("path must start and end on different tokens")
		}
	default:
		return ErrInvalidTrade.Wrapf("unknown trade kind %d", t.Kind)
	}

	if t.Amount.IsNil() || !t.Amount.IsPositive() {
		return ErrInvalidTrade.Wrap("amount must be positive")
	}
	if t.LimitAmount.IsNil() || t.LimitAmount.IsNegative() {
		return ErrInvalidTrade.Wrap("limit amount must be non-negative")
	}
	if !t.Kind.IsExactInput() && t.LimitAmount.IsZero() {
		return ErrInvalidTrade.Wrap("exact-output trade requires a positive input ceiling")
	}
	return nil
}

// SwapResult carries the venue-realized amounts of one executed trade.
type SwapResult struct {
	AmountIn  math.Int `json:"amount_in"`
	AmountOut math.Int `json:"amount_out"`
}
