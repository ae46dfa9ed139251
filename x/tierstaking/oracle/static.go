package oracle

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

var _ tstypes.PriceOracle = StaticOracle{}

// StaticOracle prices the native token at a fixed USD price per base unit.
type StaticOracle struct {
	price sdkmath.LegacyDec
}

// NewStaticOracle panics if price is not positive.
func NewStaticOracle(price sdkmath.LegacyDec) StaticOracle {
	if price.IsNil() || !price.IsPositive() {
		panic(fmt.Sprintf("price must be positive: %s", price))
	}
	return StaticOracle{price: price}
}

// UsdAmount returns floor(nativeAmount * price).
func (o StaticOracle) UsdAmount(_ sdk.Context, _ tstypes.Config, nativeAmount sdkmath.Int) (sdkmath.Int, error) {
	if nativeAmount.IsNegative() {
		return sdkmath.Int{}, errorsmod.Wrapf(tstypes.ErrOracle, "negative amount %s", nativeAmount)
	}
	return o.price.MulInt(nativeAmount).TruncateInt(), nil
}

// NativeAmount returns floor(usdAmount / price).
func (o StaticOracle) NativeAmount(_ sdk.Context, _ tstypes.Config, usdAmount sdkmath.Int) (sdkmath.Int, error) {
	if usdAmount.IsNegative() {
		return sdkmath.Int{}, errorsmod.Wrapf(tstypes.ErrOracle, "negative amount %s", usdAmount)
	}
	return sdkmath.LegacyNewDecFromInt(usdAmount).Quo(o.price).TruncateInt(), nil
}
