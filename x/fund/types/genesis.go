package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Fund pairs a fund id with its manager.
type Fund struct {
	Id      uint64 `json:"id"`
	Manager string `json:"manager"`
}

// Subscription is one (investor, fund) membership edge.
type Subscription struct {
	FundId   uint64 `json:"fund_id"`
	Investor string `json:"investor"`
}

// InvestorBalance is one (fund, investor, token) ledger entry.
type InvestorBalance struct {
	FundId   uint64      `json:"fund_id"`
	Investor string      `json:"investor"`
	Token    string      `json:"token"`
	Amount   sdkmath.Int `json:"amount"`
}

// TokenBalance is one (fund, token) ledger entry, used for both pooled fund
// balances and accrued fee balances.
type TokenBalance struct {
	FundId uint64      `json:"fund_id"`
	Token  string      `json:"token"`
	Amount sdkmath.Int `json:"amount"`
}

// Position is one (fund, investor, position id) ownership record.
type Position struct {
	FundId     uint64 `json:"fund_id"`
	Investor   string `json:"investor"`
	PositionId uint64 `json:"position_id"`
}

// GenesisState is the fund module's exported state.
type GenesisState struct {
	Params            Params            `json:"params"`
	FundCount         uint64            `json:"fund_count"`
	Funds             []Fund            `json:"funds"`
	Subscriptions     []Subscription    `json:"subscriptions"`
	InvestorBalances  []InvestorBalance `json:"investor_balances"`
	FundBalances      []TokenBalance    `json:"fund_balances"`
	FeeBalances       []TokenBalance    `json:"fee_balances"`
	Positions         []Position        `json:"positions"`
	WhitelistedTokens []string          `json:"whitelisted_tokens"`
}

// DefaultGenesis returns the default genesis state for the fund module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate ensures the genesis state is well-formed and that the pooled
// balances obey the conservation law: for every fund and token, the fund
// balance equals the investor balances plus the accrued fee.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	managers := make(map[string]bool, len(gs.Funds))
	fundIDs := make(map[uint64]bool, len(gs.Funds))
	for _, fund := range gs.Funds {
		if fund.Id == 0 || fund.Id > gs.FundCount {
			return fmt.Errorf("fund id %d outside [1, %d]", fund.Id, gs.FundCount)
		}
		if fundIDs[fund.Id] {
			return fmt.Errorf("duplicate fund id %d", fund.Id)
		}
		fundIDs[fund.Id] = true
		if _, err := sdk.AccAddressFromBech32(fund.Manager); err != nil {
			return fmt.Errorf("fund %d: invalid manager address: %w", fund.Id, err)
		}
		if managers[fund.Manager] {
			return fmt.Errorf("manager %s owns more than one fund", fund.Manager)
		}
		managers[fund.Manager] = true
	}

	subscribed := make(map[string]bool, len(gs.Subscriptions))
	for _, sub := range gs.Subscriptions {
		if !fundIDs[sub.FundId] {
			return fmt.Errorf("subscription references unknown fund %d", sub.FundId)
		}
		if _, err := sdk.AccAddressFromBech32(sub.Investor); err != nil {
			return fmt.Errorf("subscription fund %d: invalid investor: %w", sub.FundId, err)
		}
		edge := fmt.Sprintf("%d/%s", sub.FundId, sub.Investor)
		if subscribed[edge] {
			return fmt.Errorf("duplicate subscription %s", edge)
		}
		subscribed[edge] = true
	}

	type fundToken struct {
		fundID uint64
		token  string
	}
	sums := make(map[fundToken]sdkmath.Int)

	for _, bal := range gs.InvestorBalances {
		if !fundIDs[bal.FundId] {
			return fmt.Errorf("investor balance references unknown fund %d", bal.FundId)
		}
		if _, err := sdk.AccAddressFromBech32(bal.Investor); err != nil {
			return fmt.Errorf("investor balance fund %d: invalid investor: %w", bal.FundId, err)
		}
		if err := sdk.ValidateDenom(bal.Token); err != nil {
			return fmt.Errorf("investor balance fund %d: invalid token: %w", bal.FundId, err)
		}
		if bal.Amount.IsNil() || bal.Amount.IsNegative() {
			return fmt.Errorf("investor balance fund %d token %s: negative amount", bal.FundId, bal.Token)
		}
		key := fundToken{bal.FundId, bal.Token}
		sum, ok := sums[key]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		sums[key] = sum.Add(bal.Amount)
	}

	for _, fee := range gs.FeeBalances {
		if !fundIDs[fee.FundId] {
			return fmt.Errorf("fee balance references unknown fund %d", fee.FundId)
		}
		if fee.Amount.IsNil() || fee.Amount.IsNegative() {
			return fmt.Errorf("fee balance fund %d token %s: negative amount", fee.FundId, fee.Token)
		}
		key := fundToken{fee.FundId, fee.Token}
		sum, ok := sums[key]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		sums[key] = sum.Add(fee.Amount)
	}

	pooled := make(map[fundToken]sdkmath.Int, len(gs.FundBalances))
	for _, bal := range gs.FundBalances {
		if !fundIDs[bal.FundId] {
			return fmt.Errorf("fund balance references unknown fund %d", bal.FundId)
		}
		if bal.Amount.IsNil() || bal.Amount.IsNegative() {
			return fmt.Errorf("fund balance fund %d token %s: negative amount", bal.FundId, bal.Token)
		}
		pooled[fundToken{bal.FundId, bal.Token}] = bal.Amount
	}

	for key, sum := range sums {
		have, ok := pooled[key]
		if !ok {
			have = sdkmath.ZeroInt()
		}
		if !have.Equal(sum) {
			return fmt.Errorf("fund %d token %s: pooled balance %s does not equal investor+fee total %s",
				key.fundID, key.token, have, sum)
		}
	}
	for key, have := range pooled {
		if _, ok := sums[key]; !ok && !have.IsZero() {
			return fmt.Errorf("fund %d token %s: pooled balance %s has no backing entries",
				key.fundID, key.token, have)
		}
	}

	for _, pos := range gs.Positions {
		if !fundIDs[pos.FundId] {
			return fmt.Errorf("position references unknown fund %d", pos.FundId)
		}
		if _, err := sdk.AccAddressFromBech32(pos.Investor); err != nil {
			return fmt.Errorf("position fund %d: invalid investor: %w", pos.FundId, err)
		}
		if pos.PositionId == 0 {
			return fmt.Errorf("position fund %d: position id must be positive", pos.FundId)
		}
	}

	seen := make(map[string]bool, len(gs.WhitelistedTokens))
	for _, token := range gs.WhitelistedTokens {
		if err := sdk.ValidateDenom(token); err != nil {
			return fmt.Errorf("invalid whitelisted token %q: %w", token, err)
		}
		if seen[token] {
			return fmt.Errorf("duplicate whitelisted token %s", token)
		}
		seen[token] = true
	}

	return nil
}
