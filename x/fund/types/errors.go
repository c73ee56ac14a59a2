package types

import (
	"cosmossdk.io/errors"
)

// Fund module sentinel errors
var (
	ErrNotOwner              = errors.Register(ModuleName, 1, "caller is not the owner")
	ErrAlreadyManaging       = errors.Register(ModuleName, 2, "manager already owns a fund")
	ErrAlreadySubscribed     = errors.Register(ModuleName, 3, "investor already subscribed")
	ErrNotSubscribed         = errors.Register(ModuleName, 4, "investor not subscribed to fund")
	ErrNotManager            = errors.Register(ModuleName, 5, "caller is not the fund manager")
	ErrNotAuthorized         = errors.Register(ModuleName, 6, "caller is neither manager nor position owner")
	ErrWrongPosition         = errors.Register(ModuleName, 7, "position does not belong to investor")
	ErrTokenNotWhitelisted   = errors.Register(ModuleName, 8, "token not whitelisted")
	ErrPairNotWhitelisted    = errors.Register(ModuleName, 9, "position pair token not whitelisted")
	ErrInsufficientPoolDepth = errors.Register(ModuleName, 10, "pool depth below admission threshold")
	ErrProtectedToken        = errors.Register(ModuleName, 11, "token is permanently whitelisted")
	ErrInsufficientBalance   = errors.Register(ModuleName, 12, "insufficient balance")
	ErrTransferFailed        = errors.Register(ModuleName, 13, "token transfer failed")
	ErrFundNotFound          = errors.Register(ModuleName, 14, "fund not found")
	ErrPositionNotFound      = errors.Register(ModuleName, 15, "position not found")
	ErrInvalidAmount         = errors.Register(ModuleName, 16, "invalid amount")
	ErrInvalidAddress        = errors.Register(ModuleName, 17, "invalid address")
	ErrInvalidTrade          = errors.Register(ModuleName, 18, "invalid trade descriptor")
)
