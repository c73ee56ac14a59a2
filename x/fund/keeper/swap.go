package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// Swap executes one or more trades against an investor's sub-ledger using
// pooled custody assets. Manager-only. The destination token of every trade
// must be whitelisted; the source token need not be, so a fund can dispose
// of a legacy holding. The batch is all-or-nothing: trades run on a cached
// store branch that is written back only after every trade succeeds.
func (k Keeper) Swap(ctx context.Context, caller sdk.AccAddress, fundID uint64, investor sdk.AccAddress, trades []types.Trade) ([]types.SwapResult, error) {
	if len(trades) == 0 {
		return nil, types.ErrInvalidTrade.Wrap("at least one trade required")
	}

	if err := k.requireManager(ctx, fundID, caller); err != nil {
		return nil, err
	}
	if !k.IsSubscribed(ctx, fundID, investor) {
		return nil, types.ErrNotSubscribed.Wrapf("investor %s fund %d", investor, fundID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	results := make([]types.SwapResult, 0, len(trades))
	for i, trade := range trades {
		result, err := k.executeTrade(cacheCtx, fundID, investor, trade)
		if err != nil {
			return nil, fmt.Errorf("trade %d: %w", i, err)
		}
		results = append(results, result)
	}
	write()
	// the branch keeps its own event manager, so the per-trade events must
	// be carried over by hand
	sdkCtx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
			sdk.NewAttribute(types.AttributeKeyTradeCount, fmt.Sprintf("%d", len(trades))),
		),
	)

	return results, nil
}

// executeTrade runs a single trade descriptor: admission check on the
// destination, cover check on the source, venue delegation, then lockstep
// ledger application of the realized amounts.
func (k Keeper) executeTrade(ctx sdk.Context, fundID uint64, investor sdk.AccAddress, trade types.Trade) (types.SwapResult, error) {
	if err := trade.Validate(); err != nil {
		return types.SwapResult{}, err
	}

	source := trade.SourceToken()
	destination := trade.DestinationToken()

	if !k.IsWhitelisted(ctx, destination) {
		return types.SwapResult{}, types.ErrTokenNotWhitelisted.Wrapf("destination token %s", destination)
	}

	required := trade.RequiredInput()
	held := k.InvestorTokenAmount(ctx, fundID, investor, source)
	if held.LT(required) {
		return types.SwapResult{}, types.ErrInsufficientBalance.Wrapf(
			"investor %s token %s: have %s, need %s", investor, source, held, required)
	}

	result, err := k.swapRouter.ExecuteSwap(ctx, k.GetModuleAddress(), trade)
	if err != nil {
		return types.SwapResult{}, fmt.Errorf("venue: %w", err)
	}

	if err := k.decreaseInvestorToken(ctx, fundID, investor, source, result.AmountIn); err != nil {
		return types.SwapResult{}, err
	}
	if err := k.decreaseFundToken(ctx, fundID, source, result.AmountIn); err != nil {
		return types.SwapResult{}, err
	}
	if err := k.increaseInvestorToken(ctx, fundID, investor, destination, result.AmountOut); err != nil {
		return types.SwapResult{}, err
	}
	if err := k.increaseFundToken(ctx, fundID, destination, result.AmountOut); err != nil {
		return types.SwapResult{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, source),
			sdk.NewAttribute(types.AttributeKeyTokenOut, destination),
			sdk.NewAttribute(types.AttributeKeyAmountIn, result.AmountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, result.AmountOut.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.SwapsTotal.WithLabelValues(trade.Kind.String()).Inc()
		k.metrics.SwapVolume.WithLabelValues(source).Add(float64(result.AmountIn.Int64()))
	}

	return result, nil
}
