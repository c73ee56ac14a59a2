package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// InitGenesis initializes the fund module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)
	if genState.FundCount > 0 {
		store.Set(types.FundCountKey, sdk.Uint64ToBigEndian(genState.FundCount))
	}

	for _, fund := range genState.Funds {
		manager, err := sdk.AccAddressFromBech32(fund.Manager)
		if err != nil {
			return fmt.Errorf("invalid manager for fund %d: %w", fund.Id, err)
		}
		store.Set(types.FundKey(fund.Id), manager.Bytes())
		store.Set(types.FundByManagerKey(manager), sdk.Uint64ToBigEndian(fund.Id))
		// Managers are implicitly subscribed to their own fund.
		store.Set(types.SubscriptionKey(fund.Id, manager), []byte{0x01})
	}

	for _, sub := range genState.Subscriptions {
		investor, err := sdk.AccAddressFromBech32(sub.Investor)
		if err != nil {
			return fmt.Errorf("invalid investor for fund %d: %w", sub.FundId, err)
		}
		store.Set(types.SubscriptionKey(sub.FundId, investor), []byte{0x01})
	}

	for _, bal := range genState.InvestorBalances {
		investor, err := sdk.AccAddressFromBech32(bal.Investor)
		if err != nil {
			return fmt.Errorf("invalid investor balance for fund %d: %w", bal.FundId, err)
		}
		if err := k.setAmount(ctx, types.InvestorBalanceKey(bal.FundId, bal.Token, investor), bal.Amount); err != nil {
			return fmt.Errorf("failed to set investor balance: %w", err)
		}
	}

	for _, bal := range genState.FundBalances {
		if err := k.setAmount(ctx, types.FundBalanceKey(bal.FundId, bal.Token), bal.Amount); err != nil {
			return fmt.Errorf("failed to set fund balance: %w", err)
		}
	}

	for _, fee := range genState.FeeBalances {
		if err := k.setAmount(ctx, types.FeeBalanceKey(fee.FundId, fee.Token), fee.Amount); err != nil {
			return fmt.Errorf("failed to set fee balance: %w", err)
		}
	}

	for _, pos := range genState.Positions {
		investor, err := sdk.AccAddressFromBech32(pos.Investor)
		if err != nil {
			return fmt.Errorf("invalid position investor for fund %d: %w", pos.FundId, err)
		}
		k.addPosition(ctx, pos.FundId, investor, pos.PositionId)
	}

	for _, token := range genState.WhitelistedTokens {
		store.Set(types.WhitelistKey(token), []byte{0x01})
	}

	return nil
}

// ExportGenesis returns the fund module's exported state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	genState := &types.GenesisState{
		Params:    params,
		FundCount: k.FundCount(ctx),
	}

	store := k.getStore(ctx)
	for fundID := uint64(1); fundID <= genState.FundCount; fundID++ {
		manager, found := k.FundManager(ctx, fundID)
		if !found {
			return nil, fmt.Errorf("fund %d has no manager record", fundID)
		}
		genState.Funds = append(genState.Funds, types.Fund{
			Id:      fundID,
			Manager: manager.String(),
		})

		subPrefix := append(types.SubscriptionKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
		subIter := storetypes.KVStorePrefixIterator(store, subPrefix)
		for ; subIter.Valid(); subIter.Next() {
			investor := sdk.AccAddress(subIter.Key()[len(subPrefix):])
			if investor.Equals(manager) {
				// Re-created implicitly on import.
				continue
			}
			genState.Subscriptions = append(genState.Subscriptions, types.Subscription{
				FundId:   fundID,
				Investor: investor.String(),
			})
		}
		subIter.Close()

		k.iterateInvestorBalances(ctx, fundID, func(token string, investor sdk.AccAddress, amount math.Int) bool {
			genState.InvestorBalances = append(genState.InvestorBalances, types.InvestorBalance{
				FundId:   fundID,
				Investor: investor.String(),
				Token:    token,
				Amount:   amount,
			})
			return false
		})

		for _, token := range k.FundTokens(ctx, fundID) {
			genState.FundBalances = append(genState.FundBalances, types.TokenBalance{
				FundId: fundID,
				Token:  token,
				Amount: k.FundTokenAmount(ctx, fundID, token),
			})
		}
		genState.FeeBalances = append(genState.FeeBalances, k.FeeBalances(ctx, fundID)...)

		posPrefix := append(types.PositionKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
		posIter := storetypes.KVStorePrefixIterator(store, posPrefix)
		for ; posIter.Valid(); posIter.Next() {
			remainder := posIter.Key()[len(posPrefix):]
			investorLen := int(remainder[0])
			investor := sdk.AccAddress(remainder[1 : 1+investorLen])
			genState.Positions = append(genState.Positions, types.Position{
				FundId:     fundID,
				Investor:   investor.String(),
				PositionId: types.PositionIDFromKey(posIter.Key()),
			})
		}
		posIter.Close()
	}

	wlIter := storetypes.KVStorePrefixIterator(store, types.WhitelistKeyPrefix)
	defer wlIter.Close()
	for ; wlIter.Valid(); wlIter.Next() {
		genState.WhitelistedTokens = append(genState.WhitelistedTokens,
			string(wlIter.Key()[len(types.WhitelistKeyPrefix):]))
	}

	return genState, nil
}
