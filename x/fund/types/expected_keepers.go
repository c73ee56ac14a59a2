package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the fungible-token transfer primitive. The module account is
// the custody address for all pooled assets.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error

	// WrapCoins converts coin held by addr into wrappedDenom at par, so a
	// bare-native deposit becomes the fungible form custody accounts in.
	WrapCoins(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin, wrappedDenom string) error
}

// SwapRouter is the external swap execution venue. It consumes the input
// token from the custody account, credits the output token back to it, and
// reports the realized amounts.
type SwapRouter interface {
	ExecuteSwap(ctx context.Context, custody sdk.AccAddress, trade Trade) (SwapResult, error)
}

// PositionManager is the external concentrated-liquidity venue operating on
// tokenized position ids held by the custody account.
type PositionManager interface {
	// Mint opens a new position and returns its id with the consumed amounts.
	Mint(ctx context.Context, custody sdk.AccAddress, params MintPositionParams) (positionID uint64, amount0, amount1 sdkmath.Int, err error)

	// IncreaseLiquidity adds liquidity to an existing position and returns
	// the consumed amounts.
	IncreaseLiquidity(ctx context.Context, custody sdk.AccAddress, params IncreaseLiquidityParams) (amount0, amount1 sdkmath.Int, err error)

	// Collect withdraws accumulated swap fees up to the given maxima and
	// returns the collected amounts.
	Collect(ctx context.Context, custody sdk.AccAddress, params CollectParams) (amount0, amount1 sdkmath.Int, err error)

	// DecreaseLiquidity burns liquidity and returns the withdrawn amounts.
	// The venue enforces the min-amount bounds and the liquidity ceiling.
	DecreaseLiquidity(ctx context.Context, custody sdk.AccAddress, params DecreaseLiquidityParams) (amount0, amount1 sdkmath.Int, err error)

	// Position reports the current pair and size of a position.
	Position(ctx context.Context, positionID uint64) (PositionInfo, error)
}

// PoolOracle reports the reference-denominated liquidity depth backing a
// candidate token, used as the whitelist admission gate.
type PoolOracle interface {
	PoolDepth(ctx context.Context, token string) (sdkmath.Int, error)
}
