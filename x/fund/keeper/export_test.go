package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// IncreaseInvestorTokenForTest exposes the investor sub-ledger credit helper for white-box tests.
func IncreaseInvestorTokenForTest(k Keeper, ctx context.Context, fundID uint64, investor sdk.AccAddress, token string, amount math.Int) error {
	return k.increaseInvestorToken(ctx, fundID, investor, token, amount)
}

// IncreaseFundTokenForTest exposes the fund-level credit helper for white-box tests.
func IncreaseFundTokenForTest(k Keeper, ctx context.Context, fundID uint64, token string, amount math.Int) error {
	return k.increaseFundToken(ctx, fundID, token, amount)
}

// IncreaseFeeTokenForTest exposes the fee-balance credit helper for white-box tests.
func IncreaseFeeTokenForTest(k Keeper, ctx context.Context, fundID uint64, token string, amount math.Int) error {
	return k.increaseFeeToken(ctx, fundID, token, amount)
}

// AddPositionForTest seeds a position ownership entry without calling the liquidity venue.
func AddPositionForTest(k Keeper, ctx context.Context, fundID uint64, investor sdk.AccAddress, positionID uint64) {
	k.addPosition(ctx, fundID, investor, positionID)
}
