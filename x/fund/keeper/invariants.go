package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// RegisterInvariants registers all fund module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "conservation", ConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "non-negative-balances", NonNegativeBalancesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "manager-registry", ManagerRegistryInvariant(k))
}

// AllInvariants runs all invariants of the fund module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ConservationInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = NonNegativeBalancesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ManagerRegistryInvariant(k)(ctx)
	}
}

// ConservationInvariant checks that for every fund and token the pooled
// balance equals the sum of investor balances plus the accrued fee.
func ConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for fundID := uint64(1); fundID <= k.FundCount(ctx); fundID++ {
			totals := make(map[string]math.Int)

			k.iterateInvestorBalances(ctx, fundID, func(token string, _ sdk.AccAddress, amount math.Int) bool {
				total, ok := totals[token]
				if !ok {
					total = math.ZeroInt()
				}
				totals[token] = total.Add(amount)
				return false
			})
			for _, fee := range k.FeeBalances(ctx, fundID) {
				total, ok := totals[fee.Token]
				if !ok {
					total = math.ZeroInt()
				}
				totals[fee.Token] = total.Add(fee.Amount)
			}

			seen := make(map[string]bool)
			for _, token := range k.FundTokens(ctx, fundID) {
				seen[token] = true
				pooled := k.FundTokenAmount(ctx, fundID, token)
				total, ok := totals[token]
				if !ok {
					total = math.ZeroInt()
				}
				if !pooled.Equal(total) {
					count++
					msg += fmt.Sprintf("\tfund %d token %s: pooled %s != investor+fee %s\n",
						fundID, token, pooled, total)
				}
			}
			for token, total := range totals {
				if !seen[token] && !total.IsZero() {
					count++
					msg += fmt.Sprintf("\tfund %d token %s: investor+fee total %s has no pooled balance\n",
						fundID, token, total)
				}
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "conservation",
			fmt.Sprintf("%d fund/token conservation violations\n%s", count, msg)), broken
	}
}

// NonNegativeBalancesInvariant checks that no stored balance is negative.
func NonNegativeBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		check := func(prefix []byte, kind string) {
			store := k.getStore(ctx)
			iterator := storetypes.KVStorePrefixIterator(store, prefix)
			defer iterator.Close()
			for ; iterator.Valid(); iterator.Next() {
				var amount math.Int
				if err := amount.Unmarshal(iterator.Value()); err != nil {
					count++
					msg += fmt.Sprintf("\t%s key %x: corrupt amount: %v\n", kind, iterator.Key(), err)
					continue
				}
				if amount.IsNegative() {
					count++
					msg += fmt.Sprintf("\t%s key %x: negative amount %s\n", kind, iterator.Key(), amount)
				}
			}
		}

		check(types.InvestorBalanceKeyPrefix, "investor balance")
		check(types.FundBalanceKeyPrefix, "fund balance")
		check(types.FeeBalanceKeyPrefix, "fee balance")

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "non-negative-balances",
			fmt.Sprintf("%d negative or corrupt balances\n%s", count, msg)), broken
	}
}

// ManagerRegistryInvariant checks that the fund registry and its by-manager
// index stay a bijection.
func ManagerRegistryInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for fundID := uint64(1); fundID <= k.FundCount(ctx); fundID++ {
			manager, found := k.FundManager(ctx, fundID)
			if !found {
				count++
				msg += fmt.Sprintf("\tfund %d: missing manager record\n", fundID)
				continue
			}
			indexed, found := k.FundOf(ctx, manager)
			if !found || indexed != fundID {
				count++
				msg += fmt.Sprintf("\tfund %d: manager %s index points to %d\n", fundID, manager, indexed)
			}
			if !k.IsSubscribed(ctx, fundID, manager) {
				count++
				msg += fmt.Sprintf("\tfund %d: manager %s not subscribed to own fund\n", fundID, manager)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "manager-registry",
			fmt.Sprintf("%d fund registry violations\n%s", count, msg)), broken
	}
}

// iterateInvestorBalances walks every investor balance entry of one fund.
// The callback returning true stops the iteration.
func (k Keeper) iterateInvestorBalances(ctx context.Context, fundID uint64, cb func(token string, investor sdk.AccAddress, amount math.Int) (stop bool)) {
	prefix := append(types.InvestorBalanceKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		remainder := iterator.Key()[len(prefix):]
		tokenLen := int(remainder[0])
		token := string(remainder[1 : 1+tokenLen])
		investor := sdk.AccAddress(remainder[1+tokenLen:])

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			continue
		}
		if cb(token, investor, amount) {
			break
		}
	}
}
