package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/DotoliFund/core-sub000/testutil/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// TestWithdraw_SkimsManagerFee tests the 1% default skim: withdrawing 500
// yields a 5 fee and a 495 payout
func TestWithdraw_SkimsManagerFee(t *testing.T) {
	k, ctx, m := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)
	seedBalance(t, k, ctx, m, fundID, investor, "uweth", math.NewInt(1_000))

	payout, fee, err := k.Withdraw(ctx, investor, fundID, "uweth", math.NewInt(500))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(495), payout)
	require.Equal(t, math.NewInt(5), fee)

	// investor debited the full amount, fund only the payout
	require.Equal(t, math.NewInt(500), k.InvestorTokenAmount(ctx, fundID, investor, "uweth"))
	require.Equal(t, math.NewInt(505), k.FundTokenAmount(ctx, fundID, "uweth"))
	require.Equal(t, math.NewInt(5), k.FeeTokenAmount(ctx, fundID, "uweth"))

	// only the payout left custody
	require.Equal(t, math.NewInt(495), m.Bank.GetBalance(ctx, investor, "uweth").Amount)
	require.Equal(t, math.NewInt(505), m.Bank.GetBalance(ctx, m.Custody, "uweth").Amount)
}

// TestWithdraw_FeeFloors tests that the skim rounds down
func TestWithdraw_FeeFloors(t *testing.T) {
	k, ctx, m := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)
	seedBalance(t, k, ctx, m, fundID, investor, "uweth", math.NewInt(1_000))

	// 1% of 99 floors to 0
	payout, fee, err := k.Withdraw(ctx, investor, fundID, "uweth", math.NewInt(99))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(99), payout)
	require.True(t, fee.IsZero())
	require.True(t, k.FeeTokenAmount(ctx, fundID, "uweth").IsZero())
}

// TestWithdraw_ZeroFeeRate tests withdrawals with the skim disabled
func TestWithdraw_ZeroFeeRate(t *testing.T) {
	k, ctx, m := keepertest.FundKeeper(t)
	owner := setOwner(t, k, ctx)
	require.NoError(t, k.SetManagerFee(ctx, owner, math.ZeroInt()))

	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)
	seedBalance(t, k, ctx, m, fundID, investor, "uweth", math.NewInt(1_000))

	payout, fee, err := k.Withdraw(ctx, investor, fundID, "uweth", math.NewInt(500))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), payout)
	require.True(t, fee.IsZero())
}

// TestWithdraw_InsufficientClaim tests overdrawing the investor claim
func TestWithdraw_InsufficientClaim(t *testing.T) {
	k, ctx, m := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)
	seedBalance(t, k, ctx, m, fundID, investor, "uweth", math.NewInt(100))

	_, _, err := k.Withdraw(ctx, investor, fundID, "uweth", math.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	require.Equal(t, math.NewInt(100), k.InvestorTokenAmount(ctx, fundID, investor, "uweth"))
}

// TestWithdraw_NotSubscribed tests withdrawal by a non-member
func TestWithdraw_NotSubscribed(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)

	_, _, err := k.Withdraw(ctx, testAddr(0x09), fundID, "uweth", math.NewInt(1))
	require.ErrorIs(t, err, types.ErrNotSubscribed)
}

// TestWithdraw_NonWhitelistedToken tests that the whitelist is not consulted
// on the way out
func TestWithdraw_NonWhitelistedToken(t *testing.T) {
	k, ctx, m := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)

	// a legacy holding of a token that was never admitted
	seedBalance(t, k, ctx, m, fundID, investor, "ulegacy", math.NewInt(200))
	require.False(t, k.IsWhitelisted(ctx, "ulegacy"))

	payout, fee, err := k.Withdraw(ctx, investor, fundID, "ulegacy", math.NewInt(200))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(198), payout)
	require.Equal(t, math.NewInt(2), fee)
}

// TestWithdraw_RejectsNonPositive tests amount validation
func TestWithdraw_RejectsNonPositive(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)

	_, _, err := k.Withdraw(ctx, investor, fundID, "uweth", math.NewInt(0))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
