package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/DotoliFund/core-sub000/testutil/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// TestConservationInvariant_HoldsAfterOperations tests the conservation law
// across the full deposit/swap/withdraw/fee lifecycle
func TestConservationInvariant_HoldsAfterOperations(t *testing.T) {
	k, ctx, m := keepertest.FundKeeper(t)
	fundID, manager := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)

	m.Bank.Fund(investor, sdk.NewCoin("uweth", math.NewInt(10_000)))
	require.NoError(t, k.Deposit(ctx, investor, fundID, "uweth", math.NewInt(10_000)))

	_, err := k.Swap(ctx, manager, fundID, investor, []types.Trade{{
		Kind:        types.TradeExactInputSingle,
		TokenIn:     "uweth",
		TokenOut:    "udtl",
		Amount:      math.NewInt(4_000),
		LimitAmount: math.NewInt(1),
	}})
	require.NoError(t, err)

	_, fee, err := k.Withdraw(ctx, investor, fundID, "uweth", math.NewInt(3_000))
	require.NoError(t, err)
	require.NoError(t, k.WithdrawFee(ctx, manager, fundID, "uweth", fee))

	msg, broken := keeper.ConservationInvariant(k)(ctx)
	require.False(t, broken, msg)
	msg, broken = keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

// TestConservationInvariant_DetectsImbalance tests that a one-sided credit
// trips the invariant
func TestConservationInvariant_DetectsImbalance(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)

	// investor credit with no pooled counterpart
	require.NoError(t, keeper.IncreaseInvestorTokenForTest(k, ctx, fundID, investor, "uweth", math.NewInt(100)))

	msg, broken := keeper.ConservationInvariant(k)(ctx)
	require.True(t, broken, msg)
}

// TestConservationInvariant_DetectsUnbackedPool tests a pooled balance with
// no investor or fee backing
func TestConservationInvariant_DetectsUnbackedPool(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)

	require.NoError(t, keeper.IncreaseFundTokenForTest(k, ctx, fundID, "uweth", math.NewInt(100)))

	msg, broken := keeper.ConservationInvariant(k)(ctx)
	require.True(t, broken, msg)
}

// TestConservationInvariant_FeeCountsAsBacking tests that fee balances back
// the pooled balance
func TestConservationInvariant_FeeCountsAsBacking(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)

	require.NoError(t, keeper.IncreaseFundTokenForTest(k, ctx, fundID, "uweth", math.NewInt(100)))
	require.NoError(t, keeper.IncreaseFeeTokenForTest(k, ctx, fundID, "uweth", math.NewInt(100)))

	msg, broken := keeper.ConservationInvariant(k)(ctx)
	require.False(t, broken, msg)
}

// TestManagerRegistryInvariant_Holds tests the registry bijection on a
// healthy state
func TestManagerRegistryInvariant_Holds(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	setupFund(t, k, ctx)
	_, err := k.CreateFund(ctx, testAddr(0x07))
	require.NoError(t, err)

	msg, broken := keeper.ManagerRegistryInvariant(k)(ctx)
	require.False(t, broken, msg)
}

// TestNonNegativeBalancesInvariant_Holds tests the sign check on a healthy
// state
func TestNonNegativeBalancesInvariant_Holds(t *testing.T) {
	k, ctx, m := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)
	seedBalance(t, k, ctx, m, fundID, investor, "uweth", math.NewInt(1))

	msg, broken := keeper.NonNegativeBalancesInvariant(k)(ctx)
	require.False(t, broken, msg)
}
