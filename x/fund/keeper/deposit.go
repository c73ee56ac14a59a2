package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// Deposit pulls tokens from the investor's external balance into fund
// custody and credits the investor's sub-ledger. The investor must be
// subscribed and the token whitelisted. Depositing the bare native asset
// wraps it into the reference denom at par before crediting, so the custody
// balance always matches the denom the ledger records.
func (k Keeper) Deposit(ctx context.Context, investor sdk.AccAddress, fundID uint64, token string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("deposit amount must be positive")
	}

	store := k.getStore(ctx)
	if !store.Has(types.FundKey(fundID)) {
		return types.ErrFundNotFound.Wrapf("fund %d", fundID)
	}
	if !k.IsSubscribed(ctx, fundID, investor) {
		return types.ErrNotSubscribed.Wrapf("investor %s fund %d", investor, fundID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("Deposit: %w", err)
	}

	credited := token
	if token == params.NativeDenom {
		credited = params.ReferenceDenom
	}
	if !k.IsWhitelisted(ctx, credited) {
		return types.ErrTokenNotWhitelisted.Wrapf("token %s", credited)
	}

	coin := sdk.NewCoin(token, amount)
	if err := k.bankKeeper.SendCoins(ctx, investor, k.GetModuleAddress(), sdk.NewCoins(coin)); err != nil {
		return types.ErrTransferFailed.Wrapf("deposit of %s: %v", coin, err)
	}
	if credited != token {
		if err := k.bankKeeper.WrapCoins(ctx, k.GetModuleAddress(), coin, credited); err != nil {
			return types.ErrTransferFailed.Wrapf("wrap of %s: %v", coin, err)
		}
	}

	if err := k.increaseInvestorToken(ctx, fundID, investor, credited, amount); err != nil {
		return err
	}
	if err := k.increaseFundToken(ctx, fundID, credited, amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
			sdk.NewAttribute(types.AttributeKeyToken, credited),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.DepositsTotal.WithLabelValues(credited).Inc()
	}

	return nil
}
