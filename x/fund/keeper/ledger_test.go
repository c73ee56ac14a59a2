package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/DotoliFund/core-sub000/testutil/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// TestCreateFund_AssignsSequentialIds tests fund id assignment
func TestCreateFund_AssignsSequentialIds(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)

	id1, err := k.CreateFund(ctx, testAddr(0x01))
	require.NoError(t, err)
	require.Equal(t, uint64(1), id1)

	id2, err := k.CreateFund(ctx, testAddr(0x02))
	require.NoError(t, err)
	require.Equal(t, uint64(2), id2)

	require.Equal(t, uint64(2), k.FundCount(ctx))
}

// TestCreateFund_OnePerManager tests the one-fund-per-manager rule
func TestCreateFund_OnePerManager(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	manager := testAddr(0x01)

	_, err := k.CreateFund(ctx, manager)
	require.NoError(t, err)

	_, err = k.CreateFund(ctx, manager)
	require.ErrorIs(t, err, types.ErrAlreadyManaging)
	require.Equal(t, uint64(1), k.FundCount(ctx))
}

// TestCreateFund_ManagerAutoSubscribed tests the implicit self-subscription
func TestCreateFund_ManagerAutoSubscribed(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, manager := setupFund(t, k, ctx)

	require.True(t, k.IsSubscribed(ctx, fundID, manager))

	got, found := k.FundManager(ctx, fundID)
	require.True(t, found)
	require.Equal(t, manager, got)

	id, found := k.FundOf(ctx, manager)
	require.True(t, found)
	require.Equal(t, fundID, id)
}

// TestSubscribe_UnknownFund tests subscription to a missing fund
func TestSubscribe_UnknownFund(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)

	err := k.Subscribe(ctx, testAddr(0x02), 99)
	require.ErrorIs(t, err, types.ErrFundNotFound)
}

// TestSubscribe_Duplicate tests double subscription rejection
func TestSubscribe_Duplicate(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)

	err := k.Subscribe(ctx, investor, fundID)
	require.ErrorIs(t, err, types.ErrAlreadySubscribed)
}

// TestSubscribe_ManagerToOwnFund tests that the implicit edge blocks a
// second explicit subscribe
func TestSubscribe_ManagerToOwnFund(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, manager := setupFund(t, k, ctx)

	err := k.Subscribe(ctx, manager, fundID)
	require.ErrorIs(t, err, types.ErrAlreadySubscribed)
}

// TestBalances_ZeroWhenAbsent tests the zero default of all balance reads
func TestBalances_ZeroWhenAbsent(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := testAddr(0x02)

	require.True(t, k.InvestorTokenAmount(ctx, fundID, investor, "uweth").IsZero())
	require.True(t, k.FundTokenAmount(ctx, fundID, "uweth").IsZero())
	require.True(t, k.FeeTokenAmount(ctx, fundID, "uweth").IsZero())
	require.Empty(t, k.FundTokens(ctx, fundID))
	require.Empty(t, k.FeeBalances(ctx, fundID))
}

// TestBalances_PerFundIsolation tests that balances never leak across funds
// or investors
func TestBalances_PerFundIsolation(t *testing.T) {
	k, ctx, m := keepertest.FundKeeper(t)
	fund1, _ := setupFund(t, k, ctx)
	fund2, err := k.CreateFund(ctx, testAddr(0x03))
	require.NoError(t, err)
	investor := setupSubscriber(t, k, ctx, fund1)

	seedBalance(t, k, ctx, m, fund1, investor, "uweth", math.NewInt(700))

	require.Equal(t, math.NewInt(700), k.InvestorTokenAmount(ctx, fund1, investor, "uweth"))
	require.True(t, k.InvestorTokenAmount(ctx, fund2, investor, "uweth").IsZero())
	require.True(t, k.InvestorTokenAmount(ctx, fund1, testAddr(0x09), "uweth").IsZero())
	require.True(t, k.InvestorTokenAmount(ctx, fund1, investor, "udtl").IsZero())
	require.Equal(t, []string{"uweth"}, k.FundTokens(ctx, fund1))
}

// TestPositions_Registry tests the position ownership set
func TestPositions_Registry(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)
	fundID, _ := setupFund(t, k, ctx)
	investor := setupSubscriber(t, k, ctx, fundID)

	require.Empty(t, k.PositionIDs(ctx, fundID, investor))
	require.False(t, k.HasPosition(ctx, fundID, investor, 7))

	keeper.AddPositionForTest(k, ctx, fundID, investor, 7)
	keeper.AddPositionForTest(k, ctx, fundID, investor, 3)

	require.True(t, k.HasPosition(ctx, fundID, investor, 7))
	require.False(t, k.HasPosition(ctx, fundID, testAddr(0x09), 7))
	require.ElementsMatch(t, []uint64{3, 7}, k.PositionIDs(ctx, fundID, investor))
}
