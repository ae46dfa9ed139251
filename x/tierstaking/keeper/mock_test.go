package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/mock"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

var _ tstypes.PriceOracle = &MockPriceOracle{}

type MockPriceOracle struct {
	mock.Mock
}

func (m *MockPriceOracle) UsdAmount(_ sdk.Context, _ tstypes.Config, nativeAmount sdkmath.Int) (sdkmath.Int, error) {
	args := m.Called(mock.Anything, mock.Anything, nativeAmount)
	return args.Get(0).(sdkmath.Int), args.Error(1)
}

func (m *MockPriceOracle) NativeAmount(_ sdk.Context, _ tstypes.Config, usdAmount sdkmath.Int) (sdkmath.Int, error) {
	args := m.Called(mock.Anything, mock.Anything, usdAmount)
	return args.Get(0).(sdkmath.Int), args.Error(1)
}
