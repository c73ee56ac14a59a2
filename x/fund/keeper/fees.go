package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// requireManager fails unless the caller manages the fund.
func (k Keeper) requireManager(ctx context.Context, fundID uint64, caller sdk.AccAddress) error {
	manager, found := k.FundManager(ctx, fundID)
	if !found {
		return types.ErrFundNotFound.Wrapf("fund %d", fundID)
	}
	if !manager.Equals(caller) {
		return types.ErrNotManager.Wrapf("caller %s fund %d", caller, fundID)
	}
	return nil
}

// WithdrawFee pays accrued manager fees out of fund custody. Manager-only.
func (k Keeper) WithdrawFee(ctx context.Context, caller sdk.AccAddress, fundID uint64, token string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("fee withdrawal amount must be positive")
	}

	if err := k.requireManager(ctx, fundID, caller); err != nil {
		return err
	}

	if err := k.decreaseFeeToken(ctx, fundID, token, amount); err != nil {
		return err
	}
	if err := k.decreaseFundToken(ctx, fundID, token, amount); err != nil {
		return err
	}

	coin := sdk.NewCoin(token, amount)
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), caller, sdk.NewCoins(coin)); err != nil {
		return types.ErrTransferFailed.Wrapf("fee payout of %s: %v", coin, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawFee,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyManager, caller.String()),
			sdk.NewAttribute(types.AttributeKeyToken, token),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.FeesClaimed.WithLabelValues(token).Add(float64(amount.Int64()))
	}

	return nil
}
