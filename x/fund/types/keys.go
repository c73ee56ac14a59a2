package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "fund"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// FundCountKey is the key for the number of funds created so far
	FundCountKey = []byte{0x02}

	// FundKeyPrefix indexes fund id -> manager address
	FundKeyPrefix = []byte{0x03}

	// FundByManagerKeyPrefix indexes manager address -> fund id
	FundByManagerKeyPrefix = []byte{0x04}

	// SubscriptionKeyPrefix marks (fund id, investor) subscription edges
	SubscriptionKeyPrefix = []byte{0x05}

	// InvestorBalanceKeyPrefix stores per (fund id, token, investor) amounts
	InvestorBalanceKeyPrefix = []byte{0x06}

	// FundBalanceKeyPrefix stores per (fund id, token) pooled amounts
	FundBalanceKeyPrefix = []byte{0x07}

	// FeeBalanceKeyPrefix stores per (fund id, token) accrued manager fees
	FeeBalanceKeyPrefix = []byte{0x08}

	// PositionKeyPrefix marks (fund id, investor, position id) ownership
	PositionKeyPrefix = []byte{0x09}

	// WhitelistKeyPrefix marks admitted token denoms
	WhitelistKeyPrefix = []byte{0x0A}
)

// FundKey returns the store key for a fund's manager by fund id
func FundKey(fundID uint64) []byte {
	return append(FundKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
}

// FundByManagerKey returns the store key for the fund id owned by a manager
func FundByManagerKey(manager sdk.AccAddress) []byte {
	return append(FundByManagerKeyPrefix, manager.Bytes()...)
}

// SubscriptionKey returns the store key marking an investor's subscription
func SubscriptionKey(fundID uint64, investor sdk.AccAddress) []byte {
	key := append(SubscriptionKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
	return append(key, investor.Bytes()...)
}

// InvestorBalanceKey returns the store key for an investor's token balance
// inside a fund. The token denom is length-prefixed so that iteration by
// (fund id, token) yields one entry per investor.
func InvestorBalanceKey(fundID uint64, token string, investor sdk.AccAddress) []byte {
	key := InvestorBalanceTokenPrefix(fundID, token)
	return append(key, investor.Bytes()...)
}

// InvestorBalanceTokenPrefix returns the iteration prefix covering every
// investor balance of one token inside one fund.
func InvestorBalanceTokenPrefix(fundID uint64, token string) []byte {
	key := append(InvestorBalanceKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
	key = append(key, byte(len(token)))
	return append(key, []byte(token)...)
}

// FundBalanceKey returns the store key for a fund's pooled token balance
func FundBalanceKey(fundID uint64, token string) []byte {
	key := append(FundBalanceKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
	return append(key, []byte(token)...)
}

// FundBalancePrefix returns the iteration prefix covering every token held
// by one fund. The remainder of each key is the token denom.
func FundBalancePrefix(fundID uint64) []byte {
	return append(FundBalanceKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
}

// FeeBalanceKey returns the store key for a fund's accrued fee balance
func FeeBalanceKey(fundID uint64, token string) []byte {
	key := append(FeeBalanceKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
	return append(key, []byte(token)...)
}

// FeeBalancePrefix returns the iteration prefix covering every fee token
// accrued in one fund.
func FeeBalancePrefix(fundID uint64) []byte {
	return append(FeeBalanceKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
}

// PositionKey returns the store key marking position ownership
func PositionKey(fundID uint64, investor sdk.AccAddress, positionID uint64) []byte {
	key := PositionPrefix(fundID, investor)
	return append(key, sdk.Uint64ToBigEndian(positionID)...)
}

// PositionPrefix returns the iteration prefix covering every position owned
// by one investor inside one fund. The trailing 8 bytes of each key are the
// big-endian position id.
func PositionPrefix(fundID uint64, investor sdk.AccAddress) []byte {
	key := append(PositionKeyPrefix, sdk.Uint64ToBigEndian(fundID)...)
	key = append(key, byte(len(investor)))
	return append(key, investor.Bytes()...)
}

// PositionIDFromKey extracts the position id from a full position store key.
func PositionIDFromKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(key)-8:])
}

// WhitelistKey returns the store key marking an admitted token
func WhitelistKey(token string) []byte {
	return append(WhitelistKeyPrefix, []byte(token)...)
}
