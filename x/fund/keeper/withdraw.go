package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// Withdraw returns part of the investor's claim, net of the manager fee
// skim. The whitelist is not consulted: a fund may always return a token it
// holds. The skim stays in custody, reclassified into the fee balance, so
// only the payout leaves the fund's pooled balance.
func (k Keeper) Withdraw(ctx context.Context, investor sdk.AccAddress, fundID uint64, token string, amount math.Int) (payout, fee math.Int, err error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("withdraw amount must be positive")
	}

	if !k.IsSubscribed(ctx, fundID, investor) {
		return math.Int{}, math.Int{}, types.ErrNotSubscribed.Wrapf("investor %s fund %d", investor, fundID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("Withdraw: %w", err)
	}

	fee = amount.Mul(params.ManagerFee).Quo(math.NewInt(types.FeeDenominator))
	payout = amount.Sub(fee)

	// Ledger debits are committed before the external transfer so reentrant
	// callers can never observe stale balances.
	if err := k.decreaseInvestorToken(ctx, fundID, investor, token, amount); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.decreaseFundToken(ctx, fundID, token, payout); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.increaseFeeToken(ctx, fundID, token, fee); err != nil {
		return math.Int{}, math.Int{}, err
	}

	coin := sdk.NewCoin(token, payout)
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), investor, sdk.NewCoins(coin)); err != nil {
		return math.Int{}, math.Int{}, types.ErrTransferFailed.Wrapf("payout of %s: %v", coin, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
			sdk.NewAttribute(types.AttributeKeyToken, token),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyPayout, payout.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.WithdrawalsTotal.WithLabelValues(token).Inc()
		k.metrics.FeesAccrued.WithLabelValues(token).Add(float64(fee.Int64()))
	}

	return payout, fee, nil
}
