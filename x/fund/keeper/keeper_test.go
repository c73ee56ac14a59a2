package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/DotoliFund/core-sub000/testutil/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// testAddr returns a deterministic 20-byte account address.
func testAddr(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20))
}

// setOwner installs an owner into params and returns its address.
func setOwner(t *testing.T, k keeper.Keeper, ctx sdk.Context) sdk.AccAddress {
	t.Helper()
	owner := testAddr(0xAA)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.Owner = owner.String()
	require.NoError(t, k.SetParams(ctx, params))
	return owner
}

// setupFund creates one fund and returns its id and manager address.
func setupFund(t *testing.T, k keeper.Keeper, ctx sdk.Context) (uint64, sdk.AccAddress) {
	t.Helper()
	manager := testAddr(0x01)
	fundID, err := k.CreateFund(ctx, manager)
	require.NoError(t, err)
	return fundID, manager
}

// setupSubscriber subscribes a fresh investor to the fund.
func setupSubscriber(t *testing.T, k keeper.Keeper, ctx sdk.Context, fundID uint64) sdk.AccAddress {
	t.Helper()
	investor := testAddr(0x02)
	require.NoError(t, k.Subscribe(ctx, investor, fundID))
	return investor
}

// seedBalance writes an investor claim with its matching pooled balance so the
// conservation law holds, and puts the coins in custody for payouts.
func seedBalance(t *testing.T, k keeper.Keeper, ctx sdk.Context, m *keepertest.FundMocks, fundID uint64, investor sdk.AccAddress, token string, amount math.Int) {
	t.Helper()
	require.NoError(t, keeper.IncreaseInvestorTokenForTest(k, ctx, fundID, investor, token, amount))
	require.NoError(t, keeper.IncreaseFundTokenForTest(k, ctx, fundID, token, amount))
	m.Bank.Fund(m.Custody, sdk.NewCoin(token, amount))
}

// admitTokens whitelists denoms directly through the owner path.
func admitTokens(t *testing.T, k keeper.Keeper, ctx sdk.Context, m *keepertest.FundMocks, owner sdk.AccAddress, tokens ...string) {
	t.Helper()
	for _, token := range tokens {
		m.Oracle.Depths[token] = math.NewInt(100_000_000)
		require.NoError(t, k.AdmitToken(ctx, owner, token))
	}
}

func TestModuleAddressIsStable(t *testing.T) {
	k, _, _ := keepertest.FundKeeper(t)
	k2, _, _ := keepertest.FundKeeper(t)
	require.Equal(t, k.GetModuleAddress(), k2.GetModuleAddress())
	require.NotEmpty(t, k.GetModuleAddress())
}

func TestDefaultGenesisParams(t *testing.T) {
	k, ctx, _ := keepertest.FundKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)
	require.Equal(t, uint64(0), k.FundCount(ctx))
}
