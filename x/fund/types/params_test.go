package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/DotoliFund/core-sub000/x/fund/types"
)

func TestDefaultParams(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.Equal(t, math.NewInt(10_000), params.ManagerFee) // 1%
	require.Empty(t, params.Owner)
}

func TestParamsValidate(t *testing.T) {
	valid := types.DefaultParams()

	tests := []struct {
		name    string
		mutate  func(p *types.Params)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(p *types.Params) {},
		},
		{
			name:   "owner may be set",
			mutate: func(p *types.Params) { p.Owner = sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20)).String() },
		},
		{
			name:    "bad owner address",
			mutate:  func(p *types.Params) { p.Owner = "banana" },
			wantErr: "invalid owner address",
		},
		{
			name:    "negative fee",
			mutate:  func(p *types.Params) { p.ManagerFee = math.NewInt(-1) },
			wantErr: "manager fee must be non-negative",
		},
		{
			name:    "fee at denominator",
			mutate:  func(p *types.Params) { p.ManagerFee = math.NewInt(types.FeeDenominator) },
			wantErr: "manager fee must be below",
		},
		{
			name:    "negative min pool amount",
			mutate:  func(p *types.Params) { p.MinPoolAmount = math.NewInt(-5) },
			wantErr: "min pool amount must be non-negative",
		},
		{
			name:    "empty reference denom",
			mutate:  func(p *types.Params) { p.ReferenceDenom = "" },
			wantErr: "reference denom cannot be empty",
		},
		{
			name:    "empty platform denom",
			mutate:  func(p *types.Params) { p.PlatformDenom = "" },
			wantErr: "platform denom cannot be empty",
		},
		{
			name:    "reference equals platform",
			mutate:  func(p *types.Params) { p.PlatformDenom = p.ReferenceDenom },
			wantErr: "reference and platform denoms must differ",
		},
		{
			name:    "native equals reference",
			mutate:  func(p *types.Params) { p.NativeDenom = p.ReferenceDenom },
			wantErr: "native and reference denoms must differ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := valid
			tc.mutate(&params)

			err := params.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParamsIsProtected(t *testing.T) {
	params := types.DefaultParams()

	require.True(t, params.IsProtected(params.ReferenceDenom))
	require.True(t, params.IsProtected(params.PlatformDenom))
	require.False(t, params.IsProtected(params.NativeDenom))
	require.False(t, params.IsProtected("uatom"))
}
