package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/DotoliFund/core-sub000/testutil/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/keeper"
	"github.com/DotoliFund/core-sub000/x/fund/types"
)

func errorsIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// TestConservationProperty runs random deposit/withdraw/swap/fee sequences
// and checks that every fund/token pooled balance stays equal to the investor
// balances plus the accrued fee.
func TestConservationProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, ctx, m := keepertest.FundKeeper(t)
		fundID, manager := setupFund(t, k, ctx)

		investors := []sdk.AccAddress{testAddr(0x02), testAddr(0x03), testAddr(0x04)}
		for _, inv := range investors {
			require.NoError(t, k.Subscribe(ctx, inv, fundID))
			m.Bank.Fund(inv, sdk.NewCoin("uweth", math.NewInt(1_000_000)))
		}
		tokens := []string{"uweth", "udtl"}

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			inv := investors[rapid.IntRange(0, len(investors)-1).Draw(rt, "investor")]
			amount := math.NewInt(rapid.Int64Range(1, 10_000).Draw(rt, "amount"))

			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				err := k.Deposit(ctx, inv, fundID, "uweth", amount)
				if err != nil {
					require.ErrorIs(t, err, types.ErrTransferFailed)
				}
			case 1:
				token := tokens[rapid.IntRange(0, len(tokens)-1).Draw(rt, "wtoken")]
				// a payout can also fail at the bank when custody never
				// received matching coins; the ledger debits still conserve
				_, _, err := k.Withdraw(ctx, inv, fundID, token, amount)
				if err != nil && !errorsIsAny(err, types.ErrInsufficientBalance, types.ErrTransferFailed) {
					rt.Fatalf("unexpected withdraw error: %v", err)
				}
			case 2:
				_, err := k.Swap(ctx, manager, fundID, inv, []types.Trade{{
					Kind:        types.TradeExactInputSingle,
					TokenIn:     "uweth",
					TokenOut:    "udtl",
					Amount:      amount,
					LimitAmount: math.NewInt(1),
				}})
				if err != nil {
					require.ErrorIs(t, err, types.ErrInsufficientBalance)
				}
			case 3:
				token := tokens[rapid.IntRange(0, len(tokens)-1).Draw(rt, "ftoken")]
				err := k.WithdrawFee(ctx, manager, fundID, token, amount)
				if err != nil && !errorsIsAny(err, types.ErrInsufficientBalance, types.ErrTransferFailed) {
					rt.Fatalf("unexpected fee withdrawal error: %v", err)
				}
			}

			msg, broken := keeper.ConservationInvariant(k)(ctx)
			if broken {
				rt.Fatalf("conservation broken after step %d: %s", i, msg)
			}
		}

		msg, broken := keeper.AllInvariants(k)(ctx)
		if broken {
			rt.Fatalf("invariants broken at end: %s", msg)
		}
	})
}
