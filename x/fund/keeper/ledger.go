package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// CreateFund assigns the next fund id to the manager. A manager owns at most
// one fund; the id is immutable and funds are never destroyed. The manager is
// subscribed to its own fund on creation.
func (k Keeper) CreateFund(ctx context.Context, manager sdk.AccAddress) (uint64, error) {
	store := k.getStore(ctx)

	if store.Has(types.FundByManagerKey(manager)) {
		return 0, types.ErrAlreadyManaging.Wrapf("manager %s", manager)
	}

	fundID := k.FundCount(ctx) + 1
	store.Set(types.FundKey(fundID), manager.Bytes())
	store.Set(types.FundByManagerKey(manager), sdk.Uint64ToBigEndian(fundID))
	store.Set(types.FundCountKey, sdk.Uint64ToBigEndian(fundID))
	store.Set(types.SubscriptionKey(fundID, manager), []byte{0x01})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundCreated,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyManager, manager.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.FundsTotal.Inc()
	}

	return fundID, nil
}

// Subscribe registers the investor with an existing fund. The edge is never
// removed; there is no unsubscribe.
func (k Keeper) Subscribe(ctx context.Context, investor sdk.AccAddress, fundID uint64) error {
	store := k.getStore(ctx)

	if !store.Has(types.FundKey(fundID)) {
		return types.ErrFundNotFound.Wrapf("fund %d", fundID)
	}
	if store.Has(types.SubscriptionKey(fundID, investor)) {
		return types.ErrAlreadySubscribed.Wrapf("investor %s fund %d", investor, fundID)
	}

	store.Set(types.SubscriptionKey(fundID, investor), []byte{0x01})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubscribed,
			sdk.NewAttribute(types.AttributeKeyFundID, fmt.Sprintf("%d", fundID)),
			sdk.NewAttribute(types.AttributeKeyInvestor, investor.String()),
		),
	)
	return nil
}

// FundCount returns the number of funds created so far.
func (k Keeper) FundCount(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.FundCountKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// FundManager returns the manager owning a fund.
func (k Keeper) FundManager(ctx context.Context, fundID uint64) (sdk.AccAddress, bool) {
	bz := k.getStore(ctx).Get(types.FundKey(fundID))
	if bz == nil {
		return nil, false
	}
	return sdk.AccAddress(bz), true
}

// FundOf returns the fund id owned by a manager, if any.
func (k Keeper) FundOf(ctx context.Context, manager sdk.AccAddress) (uint64, bool) {
	bz := k.getStore(ctx).Get(types.FundByManagerKey(manager))
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

// IsSubscribed reports whether the investor holds a subscription edge.
func (k Keeper) IsSubscribed(ctx context.Context, fundID uint64, investor sdk.AccAddress) bool {
	return k.getStore(ctx).Has(types.SubscriptionKey(fundID, investor))
}

// InvestorTokenAmount returns an investor's claim on one token in one fund.
func (k Keeper) InvestorTokenAmount(ctx context.Context, fundID uint64, investor sdk.AccAddress, token string) math.Int {
	return k.getAmount(ctx, types.InvestorBalanceKey(fundID, token, investor))
}

// FundTokenAmount returns a fund's pooled balance of one token.
func (k Keeper) FundTokenAmount(ctx context.Context, fundID uint64, token string) math.Int {
	return k.getAmount(ctx, types.FundBalanceKey(fundID, token))
}

// FeeTokenAmount returns the accrued, unclaimed manager fee for one token.
func (k Keeper) FeeTokenAmount(ctx context.Context, fundID uint64, token string) math.Int {
	return k.getAmount(ctx, types.FeeBalanceKey(fundID, token))
}

// FeeBalances returns every accrued fee balance of a fund.
func (k Keeper) FeeBalances(ctx context.Context, fundID uint64) []types.TokenBalance {
	var balances []types.TokenBalance
	prefix := types.FeeBalancePrefix(fundID)
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			continue
		}
		balances = append(balances, types.TokenBalance{
			FundId: fundID,
			Token:  string(iterator.Key()[len(prefix):]),
			Amount: amount,
		})
	}
	return balances
}

// FundTokens returns every token denom a fund currently holds.
func (k Keeper) FundTokens(ctx context.Context, fundID uint64) []string {
	var tokens []string
	prefix := types.FundBalancePrefix(fundID)
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		tokens = append(tokens, string(iterator.Key()[len(prefix):]))
	}
	return tokens
}

// PositionIDs returns the position ids registered to an investor in a fund.
func (k Keeper) PositionIDs(ctx context.Context, fundID uint64, investor sdk.AccAddress) []uint64 {
	var ids []uint64
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PositionPrefix(fundID, investor))
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		ids = append(ids, types.PositionIDFromKey(iterator.Key()))
	}
	return ids
}

// HasPosition reports whether a position id is registered to the investor.
func (k Keeper) HasPosition(ctx context.Context, fundID uint64, investor sdk.AccAddress, positionID uint64) bool {
	return k.getStore(ctx).Has(types.PositionKey(fundID, investor, positionID))
}

// InvestorPositions returns the venue-reported pair and size summary for
// every position registered to an investor in a fund.
func (k Keeper) InvestorPositions(ctx context.Context, fundID uint64, investor sdk.AccAddress) ([]types.PositionInfo, error) {
	var infos []types.PositionInfo
	for _, id := range k.PositionIDs(ctx, fundID, investor) {
		info, err := k.positionManager.Position(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("InvestorPositions: position %d: %w", id, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// addPosition registers a venue-issued position id to the investor.
// Deduplication is the caller's responsibility.
func (k Keeper) addPosition(ctx context.Context, fundID uint64, investor sdk.AccAddress, positionID uint64) {
	k.getStore(ctx).Set(types.PositionKey(fundID, investor, positionID), []byte{0x01})
}

// getAmount reads a math.Int balance, zero when absent.
func (k Keeper) getAmount(ctx context.Context, key []byte) math.Int {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return amount
}

// setAmount writes a math.Int balance, deleting on zero.
func (k Keeper) setAmount(ctx context.Context, key []byte, amount math.Int) error {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	store.Set(key, bz)
	return nil
}

// increaseAmount adds to a stored balance.
func (k Keeper) increaseAmount(ctx context.Context, key []byte, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	return k.setAmount(ctx, key, k.getAmount(ctx, key).Add(amount))
}

// decreaseAmount subtracts from a stored balance, failing on shortfall.
func (k Keeper) decreaseAmount(ctx context.Context, key []byte, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	current := k.getAmount(ctx, key)
	if current.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("have %s, need %s", current, amount)
	}
	return k.setAmount(ctx, key, current.Sub(amount))
}

// Raw ledger mutators. Each pair of investor/fund writes must be performed in
// lockstep by the calling operation to preserve the conservation law.

func (k Keeper) increaseInvestorToken(ctx context.Context, fundID uint64, investor sdk.AccAddress, token string, amount math.Int) error {
	return k.increaseAmount(ctx, types.InvestorBalanceKey(fundID, token, investor), amount)
}

func (k Keeper) decreaseInvestorToken(ctx context.Context, fundID uint64, investor sdk.AccAddress, token string, amount math.Int) error {
	if err := k.decreaseAmount(ctx, types.InvestorBalanceKey(fundID, token, investor), amount); err != nil {
		return types.ErrInsufficientBalance.Wrapf("investor %s token %s in fund %d: %v", investor, token, fundID, err)
	}
	return nil
}

func (k Keeper) increaseFundToken(ctx context.Context, fundID uint64, token string, amount math.Int) error {
	return k.increaseAmount(ctx, types.FundBalanceKey(fundID, token), amount)
}

func (k Keeper) decreaseFundToken(ctx context.Context, fundID uint64, token string, amount math.Int) error {
	if err := k.decreaseAmount(ctx, types.FundBalanceKey(fundID, token), amount); err != nil {
		return types.ErrInsufficientBalance.Wrapf("fund %d token %s: %v", fundID, token, err)
	}
	return nil
}

func (k Keeper) increaseFeeToken(ctx context.Context, fundID uint64, token string, amount math.Int) error {
	return k.increaseAmount(ctx, types.FeeBalanceKey(fundID, token), amount)
}

func (k Keeper) decreaseFeeToken(ctx context.Context, fundID uint64, token string, amount math.Int) error {
	if err := k.decreaseAmount(ctx, types.FeeBalanceKey(fundID, token), amount); err != nil {
		return types.ErrInsufficientBalance.Wrapf("fee balance fund %d token %s: %v", fundID, token, err)
	}
	return nil
}
