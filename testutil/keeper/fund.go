package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/DotoliFund/core-sub000/x/fund/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// MockBankKeeper tracks account balances in memory and moves them on
// SendCoins. Set FailSend to force transfer failures.
type MockBankKeeper struct {
	Balances map[string]sdk.Coins
	FailSend bool
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{Balances: make(map[string]sdk.Coins)}
}

// Fund credits an account with coins, bypassing transfer checks.
func (m *MockBankKeeper) Fund(addr sdk.AccAddress, coins ...sdk.Coin) {
	m.Balances[addr.String()] = m.Balances[addr.String()].Add(coins...)
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.Balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if m.FailSend {
		return fmt.Errorf("send disabled")
	}
	from := m.Balances[fromAddr.String()]
	if !amt.IsAllLTE(from) {
		return fmt.Errorf("insufficient funds: %s has %s, want %s", fromAddr, from, amt)
	}
	m.Balances[fromAddr.String()] = from.Sub(amt...)
	m.Balances[toAddr.String()] = m.Balances[toAddr.String()].Add(amt...)
	return nil
}

// WrapCoins swaps coin for wrappedDenom at par within addr's balance.
func (m *MockBankKeeper) WrapCoins(_ context.Context, addr sdk.AccAddress, coin sdk.Coin, wrappedDenom string) error {
	held := m.Balances[addr.String()]
	if held.AmountOf(coin.Denom).LT(coin.Amount) {
		return fmt.Errorf("insufficient funds: %s has %s, want %s", addr, held, coin)
	}
	m.Balances[addr.String()] = held.Sub(coin).Add(sdk.NewCoin(wrappedDenom, coin.Amount))
	return nil
}

// MockSwapRouter fills every trade at a fixed output-per-input rate unless
// ExecuteFn overrides it. Err forces a venue failure.
type MockSwapRouter struct {
	Rate      int64
	Err       error
	ExecuteFn func(trade types.Trade) (types.SwapResult, error)
	Executed  []types.Trade
}

func NewMockSwapRouter() *MockSwapRouter {
	return &MockSwapRouter{Rate: 1}
}

func (m *MockSwapRouter) ExecuteSwap(_ context.Context, _ sdk.AccAddress, trade types.Trade) (types.SwapResult, error) {
	m.Executed = append(m.Executed, trade)
	if m.Err != nil {
		return types.SwapResult{}, m.Err
	}
	if m.ExecuteFn != nil {
		return m.ExecuteFn(trade)
	}
	rate := math.NewInt(m.Rate)
	if trade.Kind.IsExactInput() {
		return types.SwapResult{AmountIn: trade.Amount, AmountOut: trade.Amount.Mul(rate)}, nil
	}
	return types.SwapResult{AmountIn: trade.Amount.Quo(rate), AmountOut: trade.Amount}, nil
}

// MockPositionManager hands out sequential position ids and consumes the
// desired amounts verbatim. Positions records the pair of every minted id.
type MockPositionManager struct {
	NextID    uint64
	Positions map[uint64]types.PositionInfo
	Err       error

	// CollectAmounts are returned from Collect when set, capped by the
	// request maxima otherwise.
	CollectAmount0 math.Int
	CollectAmount1 math.Int
}

func NewMockPositionManager() *MockPositionManager {
	return &MockPositionManager{NextID: 1, Positions: make(map[uint64]types.PositionInfo)}
}

func (m *MockPositionManager) Mint(_ context.Context, _ sdk.AccAddress, params types.MintPositionParams) (uint64, math.Int, math.Int, error) {
	if m.Err != nil {
		return 0, math.ZeroInt(), math.ZeroInt(), m.Err
	}
	id := m.NextID
	m.NextID++
	m.Positions[id] = types.PositionInfo{
		PositionID: id,
		Token0:     params.Token0,
		Token1:     params.Token1,
		Liquidity:  params.Amount0Desired.Add(params.Amount1Desired),
		Amount0:    params.Amount0Desired,
		Amount1:    params.Amount1Desired,
	}
	return id, params.Amount0Desired, params.Amount1Desired, nil
}

func (m *MockPositionManager) IncreaseLiquidity(_ context.Context, _ sdk.AccAddress, params types.IncreaseLiquidityParams) (math.Int, math.Int, error) {
	if m.Err != nil {
		return math.ZeroInt(), math.ZeroInt(), m.Err
	}
	info, ok := m.Positions[params.PositionID]
	if !ok {
		return math.ZeroInt(), math.ZeroInt(), fmt.Errorf("unknown position %d", params.PositionID)
	}
	info.Liquidity = info.Liquidity.Add(params.Amount0Desired).Add(params.Amount1Desired)
	m.Positions[params.PositionID] = info
	return params.Amount0Desired, params.Amount1Desired, nil
}

func (m *MockPositionManager) Collect(_ context.Context, _ sdk.AccAddress, params types.CollectParams) (math.Int, math.Int, error) {
	if m.Err != nil {
		return math.ZeroInt(), math.ZeroInt(), m.Err
	}
	if _, ok := m.Positions[params.PositionID]; !ok {
		return math.ZeroInt(), math.ZeroInt(), fmt.Errorf("unknown position %d", params.PositionID)
	}
	amount0, amount1 := params.Amount0Max, params.Amount1Max
	if !m.CollectAmount0.IsNil() {
		amount0 = m.CollectAmount0
	}
	if !m.CollectAmount1.IsNil() {
		amount1 = m.CollectAmount1
	}
	return amount0, amount1, nil
}

func (m *MockPositionManager) DecreaseLiquidity(_ context.Context, _ sdk.AccAddress, params types.DecreaseLiquidityParams) (math.Int, math.Int, error) {
	if m.Err != nil {
		return math.ZeroInt(), math.ZeroInt(), m.Err
	}
	info, ok := m.Positions[params.PositionID]
	if !ok {
		return math.ZeroInt(), math.ZeroInt(), fmt.Errorf("unknown position %d", params.PositionID)
	}
	info.Liquidity = info.Liquidity.Sub(params.Liquidity)
	m.Positions[params.PositionID] = info
	return params.Amount0Min, params.Amount1Min, nil
}

func (m *MockPositionManager) Position(_ context.Context, positionID uint64) (types.PositionInfo, error) {
	info, ok := m.Positions[positionID]
	if !ok {
		return types.PositionInfo{}, fmt.Errorf("unknown position %d", positionID)
	}
	return info, nil
}

// MockPoolOracle reports configured per-token depths, zero for unknown tokens.
type MockPoolOracle struct {
	Depths map[string]math.Int
	Err    error
}

func NewMockPoolOracle() *MockPoolOracle {
	return &MockPoolOracle{Depths: make(map[string]math.Int)}
}

func (m *MockPoolOracle) PoolDepth(_ context.Context, token string) (math.Int, error) {
	if m.Err != nil {
		return math.ZeroInt(), m.Err
	}
	depth, ok := m.Depths[token]
	if !ok {
		return math.ZeroInt(), nil
	}
	return depth, nil
}

// FundMocks bundles the external collaborators of a test keeper.
type FundMocks struct {
	Bank    *MockBankKeeper
	Router  *MockSwapRouter
	PosMgr  *MockPositionManager
	Oracle  *MockPoolOracle
	Custody sdk.AccAddress
}

// FundKeeper creates a test keeper for the fund module with mock dependencies
func FundKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *FundMocks) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	mocks := &FundMocks{
		Bank:   NewMockBankKeeper(),
		Router: NewMockSwapRouter(),
		PosMgr: NewMockPositionManager(),
		Oracle: NewMockPoolOracle(),
	}

	k := keeper.NewKeeper(
		storeKey,
		mocks.Bank,
		mocks.Router,
		mocks.PosMgr,
		mocks.Oracle,
	)
	mocks.Custody = k.GetModuleAddress()

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, mocks
}
