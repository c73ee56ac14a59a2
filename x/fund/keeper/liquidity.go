package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// MintPosition opens a concentrated-liquidity position on an investor's
// behalf. Manager-only. Both pair tokens must be whitelisted and the desired
// amounts covered by the investor's balances. On success the venue-issued
// position id is registered to (fund, investor) and the consumed amounts are
// debited from both ledgers.
func (k Keeper) MintPosition(ctx context.Context, caller sdk.AccAddress, fundID uint64, investor sdk.AccAddress, params types.MintPositionParams) (uint64, math.Int, math.Int, error) {
	if err := params.Validate(); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}
	if err := k.requireManager(ctx, fundID, caller); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}
	if !k.IsSubscribed(ctx, fundID, investor) {
		return 0, math.Int{}, math.Int{}, types.ErrNotSubscribed.Wrapf("investor %s fund %d", investor, fundID)
	}

	if err := k.requirePairWhitelisted(ctx, params.Token0, params.Token1); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}
	if err := k.requireCover(ctx, fundID, investor, params.Token0, params.Amount0Desired); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}
	if err := k.requireCover(ctx, fundID, investor, params.Token1, params.Amount1Desired); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}

	positionID, amount0, amount1, err := k.positionManager.Mint(ctx, k.GetModuleAddress(), params)
	if err != nil {
		return 0, math.Int{}, math.Int{}, fmt.Errorf("MintPosition: venue: %w", err)
	}

	if err := k.debitPair(ctx, fundID, investor, params.Token0, params.Token1, amount0, amount1); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}
	k.addPosition(ctx, fundID, investor, positionID)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMintPosition,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
			sdk.NewAttribute(types.AttributeKeyPositionID, fmt.Sprintf("%d", positionID)),
			sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
			sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.PositionsMinted.Inc()
		k.metrics.LiquidityAdded.WithLabelValues(params.Token0).Add(float64(amount0.Int64()))
		k.metrics.LiquidityAdded.WithLabelValues(params.Token1).Add(float64(amount1.Int64()))
	}

	return positionID, amount0, amount1, nil
}

// IncreaseLiquidity adds liquidity to an investor's open position.
// Manager-only; the position must be registered to the named investor.
func (k Keeper) IncreaseLiquidity(ctx context.Context, caller sdk.AccAddress, fundID uint64, investor sdk.AccAddress, params types.IncreaseLiquidityParams) (math.Int, math.Int, error) {
	if err := params.Validate(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.requireManager(ctx, fundID, caller); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !k.HasPosition(ctx, fundID, investor, params.PositionID) {
		return math.Int{}, math.Int{}, types.ErrWrongPosition.Wrapf(
			"position %d investor %s fund %d", params.PositionID, investor, fundID)
	}

	info, err := k.positionManager.Position(ctx, params.PositionID)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrPositionNotFound.Wrapf("position %d: %v", params.PositionID, err)
	}
	if err := k.requirePairWhitelisted(ctx, info.Token0, info.Token1); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.requireCover(ctx, fundID, investor, info.Token0, params.Amount0Desired); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.requireCover(ctx, fundID, investor, info.Token1, params.Amount1Desired); err != nil {
		return math.Int{}, math.Int{}, err
	}

	amount0, amount1, err := k.positionManager.IncreaseLiquidity(ctx, k.GetModuleAddress(), params)
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("IncreaseLiquidity: venue: %w", err)
	}

	if err := k.debitPair(ctx, fundID, investor, info.Token0, info.Token1, amount0, amount1); err != nil {
		return math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIncreaseLiquidity,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
			sdk.NewAttribute(types.AttributeKeyPositionID, fmt.Sprintf("%d", params.PositionID)),
			sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
			sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(info.Token0).Add(float64(amount0.Int64()))
		k.metrics.LiquidityAdded.WithLabelValues(info.Token1).Add(float64(amount1.Int64()))
	}

	return amount0, amount1, nil
}

// CollectPositionFee collects accumulated swap fees from a position into the
// investor's sub-ledger. Callable by the fund manager or the position-owning
// investor.
func (k Keeper) CollectPositionFee(ctx context.Context, caller sdk.AccAddress, fundID uint64, investor sdk.AccAddress, params types.CollectParams) (math.Int, math.Int, error) {
	if err := params.Validate(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.requireManagerOrInvestor(ctx, fundID, caller, investor); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !k.HasPosition(ctx, fundID, investor, params.PositionID) {
		return math.Int{}, math.Int{}, types.ErrWrongPosition.Wrapf(
			"position %d investor %s fund %d", params.PositionID, investor, fundID)
	}

	info, err := k.positionManager.Position(ctx, params.PositionID)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrPositionNotFound.Wrapf("position %d: %v", params.PositionID, err)
	}

	amount0, amount1, err := k.positionManager.Collect(ctx, k.GetModuleAddress(), params)
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("CollectPositionFee: venue: %w", err)
	}

	if err := k.creditPair(ctx, fundID, investor, info.Token0, info.Token1, amount0, amount1); err != nil {
		return math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollectFee,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
			sdk.NewAttribute(types.AttributeKeyPositionID, fmt.Sprintf("%d", params.PositionID)),
			sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
			sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
		),
	)

	return amount0, amount1, nil
}

// DecreaseLiquidity burns liquidity from a position and credits the
// withdrawn amounts to the investor's sub-ledger. Callable by the fund
// manager or the position-owning investor. Min-amount bounds and the
// liquidity ceiling are enforced by the venue; a position decreased to zero
// liquidity stays registered but inert.
func (k Keeper) DecreaseLiquidity(ctx context.Context, caller sdk.AccAddress, fundID uint64, investor sdk.AccAddress, params types.DecreaseLiquidityParams) (math.Int, math.Int, error) {
	if err := params.Validate(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.requireManagerOrInvestor(ctx, fundID, caller, investor); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !k.HasPosition(ctx, fundID, investor, params.PositionID) {
		return math.Int{}, math.Int{}, types.ErrWrongPosition.Wrapf(
			"position %d investor %s fund %d", params.PositionID, investor, fundID)
	}

	info, err := k.positionManager.Position(ctx, params.PositionID)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrPositionNotFound.Wrapf("position %d: %v", params.PositionID, err)
	}

	amount0, amount1, err := k.positionManager.DecreaseLiquidity(ctx, k.GetModuleAddress(), params)
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("DecreaseLiquidity: venue: %w", err)
	}

	if err := k.creditPair(ctx, fundID, investor, info.Token0, info.Token1, amount0, amount1); err != nil {
		return math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDecreaseLiquidity,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
			sdk.NewAttribute(types.AttributeKeyPositionID, fmt.Sprintf("%d", params.PositionID)),
			sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
			sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(info.Token0).Add(float64(amount0.Int64()))
		k.metrics.LiquidityRemoved.WithLabelValues(info.Token1).Add(float64(amount1.Int64()))
	}

	return amount0, amount1, nil
}

// requireManagerOrInvestor authorizes position fee/decrease calls.
func (k Keeper) requireManagerOrInvestor(ctx context.Context, fundID uint64, caller, investor sdk.AccAddress) error {
	manager, found := k.FundManager(ctx, fundID)
	if !found {
		return types.ErrFundNotFound.Wrapf("fund %d", fundID)
	}
	if !manager.Equals(caller) && !investor.Equals(caller) {
		return types.ErrNotAuthorized.Wrapf("caller %s fund %d investor %s", caller, fundID, investor)
	}
	return nil
}

// requirePairWhitelisted checks pair admission for position operations,
// with an error code distinct from the swap destination check.
func (k Keeper) requirePairWhitelisted(ctx context.Context, token0, token1 string) error {
	if !k.IsWhitelisted(ctx, token0) {
		return types.ErrPairNotWhitelisted.Wrapf("token %s", token0)
	}
	if !k.IsWhitelisted(ctx, token1) {
		return types.ErrPairNotWhitelisted.Wrapf("token %s", token1)
	}
	return nil
}

// requireCover checks that a desired amount is backed by the investor's balance.
func (k Keeper) requireCover(ctx context.Context, fundID uint64, investor sdk.AccAddress, token string, desired math.Int) error {
	held := k.InvestorTokenAmount(ctx, fundID, investor, token)
	if held.LT(desired) {
		return types.ErrInsufficientBalance.Wrapf(
			"investor %s token %s: have %s, need %s", investor, token, held, desired)
	}
	return nil
}

// debitPair removes consumed pair amounts from both ledgers in lockstep.
func (k Keeper) debitPair(ctx context.Context, fundID uint64, investor sdk.AccAddress, token0, token1 string, amount0, amount1 math.Int) error {
	if err := k.decreaseInvestorToken(ctx, fundID, investor, token0, amount0); err != nil {
		return err
	}
	if err := k.decreaseFundToken(ctx, fundID, token0, amount0); err != nil {
		return err
	}
	if err := k.decreaseInvestorToken(ctx, fundID, investor, token1, amount1); err != nil {
		return err
	}
	return k.decreaseFundToken(ctx, fundID, token1, amount1)
}

// creditPair adds realized pair amounts to both ledgers in lockstep.
func (k Keeper) creditPair(ctx context.Context, fundID uint64, investor sdk.AccAddress, token0, token1 string, amount0, amount1 math.Int) error {
	if err := k.increaseInvestorToken(ctx, fundID, investor, token0, amount0); err != nil {
		return err
	}
	if err := k.increaseFundToken(ctx, fundID, token0, amount0); err != nil {
		return err
	}
	if err := k.increaseInvestorToken(ctx, fundID, investor, token1, amount1); err != nil {
		return err
	}
	return k.increaseFundToken(ctx, fundID, token1, amount1)
}
