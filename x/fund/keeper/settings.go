package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("SetParams: %w", err)
	}
	store := k.getStore(ctx)
	bz, err := json.Marshal(&params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	store.Set(types.ParamsKey, bz)
	return nil
}

// Owner returns the current governance owner identity.
func (k Keeper) Owner(ctx context.Context) (string, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return "", err
	}
	return params.Owner, nil
}

// ManagerFee returns the current withdrawal skim rate in millionths.
func (k Keeper) ManagerFee(ctx context.Context) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return params.ManagerFee, nil
}

// MinPoolAmount returns the whitelist admission depth threshold.
func (k Keeper) MinPoolAmount(ctx context.Context) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return params.MinPoolAmount, nil
}

// requireOwner loads params and fails unless the caller is the owner.
func (k Keeper) requireOwner(ctx context.Context, caller sdk.AccAddress) (types.Params, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Params{}, err
	}
	if params.Owner == "" || params.Owner != caller.String() {
		return types.Params{}, types.ErrNotOwner.Wrapf("caller %s", caller)
	}
	return params, nil
}

// SetOwner hands governance to a new owner. Owner-gated, direct overwrite.
func (k Keeper) SetOwner(ctx context.Context, caller, newOwner sdk.AccAddress) error {
	params, err := k.requireOwner(ctx, caller)
	if err != nil {
		return err
	}

	params.Owner = newOwner.String()
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOwnerUpdated,
			sdk.NewAttribute(types.AttributeKeyOwner, newOwner.String()),
		),
	)
	return nil
}

// SetManagerFee overwrites the withdrawal skim rate. Owner-gated.
func (k Keeper) SetManagerFee(ctx context.Context, caller sdk.AccAddress, fee math.Int) error {
	params, err := k.requireOwner(ctx, caller)
	if err != nil {
		return err
	}

	params.ManagerFee = fee
	return k.SetParams(ctx, params)
}

// SetMinPoolAmount overwrites the admission depth threshold. Owner-gated.
func (k Keeper) SetMinPoolAmount(ctx context.Context, caller sdk.AccAddress, amount math.Int) error {
	params, err := k.requireOwner(ctx, caller)
	if err != nil {
		return err
	}

	params.MinPoolAmount = amount
	return k.SetParams(ctx, params)
}

// AdmitToken whitelists a token if the depth oracle reports enough
// reference-denominated liquidity behind it. Admitting an already
// whitelisted token is a no-op success and does not re-check depth.
func (k Keeper) AdmitToken(ctx context.Context, caller sdk.AccAddress, token string) error {
	params, err := k.requireOwner(ctx, caller)
	if err != nil {
		return err
	}

	if params.IsProtected(token) || k.isListed(ctx, token) {
		return nil
	}

	depth, err := k.poolOracle.PoolDepth(ctx, token)
	if err != nil {
		return fmt.Errorf("AdmitToken: pool depth query: %w", err)
	}
	if depth.LT(params.MinPoolAmount) {
		return types.ErrInsufficientPoolDepth.Wrapf(
			"token %s: depth %s below threshold %s", token, depth, params.MinPoolAmount)
	}

	store := k.getStore(ctx)
	store.Set(types.WhitelistKey(token), []byte{0x01})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokenAdmitted,
			sdk.NewAttribute(types.AttributeKeyToken, token),
			sdk.NewAttribute(types.AttributeKeyAmount, depth.String()),
		),
	)
	return nil
}

// RevokeToken removes a token from the whitelist. The reference asset and
// the platform token can never be revoked.
func (k Keeper) RevokeToken(ctx context.Context, caller sdk.AccAddress, token string) error {
	params, err := k.requireOwner(ctx, caller)
	if err != nil {
		return err
	}

	if params.IsProtected(token) {
		return types.ErrProtectedToken.Wrapf("token %s", token)
	}

	store := k.getStore(ctx)
	store.Delete(types.WhitelistKey(token))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokenRevoked,
			sdk.NewAttribute(types.AttributeKeyToken, token),
		),
	)
	return nil
}

// IsWhitelisted reports whether a token may be acquired by funds. The two
// protected denoms are always whitelisted.
func (k Keeper) IsWhitelisted(ctx context.Context, token string) bool {
	params, err := k.GetParams(ctx)
	if err == nil && params.IsProtected(token) {
		return true
	}
	return k.isListed(ctx, token)
}

// isListed reports store-level whitelist membership, protected denoms aside.
func (k Keeper) isListed(ctx context.Context, token string) bool {
	return k.getStore(ctx).Has(types.WhitelistKey(token))
}

// WhitelistedTokens returns every whitelisted denom, protected denoms first.
func (k Keeper) WhitelistedTokens(ctx context.Context) []string {
	var tokens []string
	if params, err := k.GetParams(ctx); err == nil {
		tokens = append(tokens, params.ReferenceDenom, params.PlatformDenom)
	}

	var listed []string
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.WhitelistKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		token := string(iterator.Key()[len(types.WhitelistKeyPrefix):])
		seen := false
		for _, t := range tokens {
			if t == token {
				seen = true
				break
			}
		}
		if !seen {
			listed = append(listed, token)
		}
	}
	sort.Strings(listed)
	return append(tokens, listed...)
}
