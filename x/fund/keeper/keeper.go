package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

// Keeper of the fund store. It is the ledger's single privileged mutator:
// possession of the store key at construction time is the capability that
// gates every balance write.
type Keeper struct {
	storeKey        storetypes.StoreKey
	bankKeeper      types.BankKeeper
	swapRouter      types.SwapRouter
	positionManager types.PositionManager
	poolOracle      types.PoolOracle
	metrics         *FundMetrics
}

// NewKeeper creates a new fund Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	swapRouter types.SwapRouter,
	positionManager types.PositionManager,
	poolOracle types.PoolOracle,
) Keeper {
	return Keeper{
		storeKey:        key,
		bankKeeper:      bankKeeper,
		swapRouter:      swapRouter,
		positionManager: positionManager,
		poolOracle:      poolOracle,
		metrics:         NewFundMetrics(),
	}
}

// getStore returns the KVStore for the fund module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the custody account holding all pooled assets.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
