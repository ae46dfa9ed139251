package oracle

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// SmartQuerier runs a read-only query against a CosmWasm contract,
// the wasmd keeper satisfies it.
type SmartQuerier interface {
	QuerySmart(ctx context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)
}

var _ tstypes.PriceOracle = OraiswapOracle{}

// OraiswapOracle prices the native token against USDT by simulating a swap on the Oraiswap router
// configured in the module config.
type OraiswapOracle struct {
	querier     SmartQuerier
	nativeDenom string
}

func NewOraiswapOracle(querier SmartQuerier, nativeDenom string) OraiswapOracle {
	return OraiswapOracle{
		querier:     querier,
		nativeDenom: nativeDenom,
	}
}

// UsdAmount simulates selling the native amount for USDT.
func (o OraiswapOracle) UsdAmount(ctx sdk.Context, cfg tstypes.Config, nativeAmount sdkmath.Int) (sdkmath.Int, error) {
	offer := nativeAssetInfo(o.nativeDenom)
	ask := tokenAssetInfo(cfg.Oraiswap.UsdtContract)
	return o.simulate(ctx, cfg, nativeAmount, offer, ask)
}

// NativeAmount simulates selling the USDT amount for the native token.
func (o OraiswapOracle) NativeAmount(ctx sdk.Context, cfg tstypes.Config, usdAmount sdkmath.Int) (sdkmath.Int, error) {
	offer := tokenAssetInfo(cfg.Oraiswap.UsdtContract)
	ask := nativeAssetInfo(o.nativeDenom)
	return o.simulate(ctx, cfg, usdAmount, offer, ask)
}

type assetInfo struct {
	path  string
	value string
}

func nativeAssetInfo(denom string) assetInfo {
	return assetInfo{path: "native_token.denom", value: denom}
}

func tokenAssetInfo(contractAddr string) assetInfo {
	return assetInfo{path: "token.contract_addr", value: contractAddr}
}

func (o OraiswapOracle) simulate(ctx sdk.Context, cfg tstypes.Config, offerAmount sdkmath.Int, offer, ask assetInfo) (sdkmath.Int, error) {
	if offerAmount.IsZero() {
		return sdkmath.ZeroInt(), nil
	}

	router, err := sdk.AccAddressFromBech32(cfg.Oraiswap.RouterContract)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(tstypes.ErrOracle, "invalid router contract %q", cfg.Oraiswap.RouterContract)
	}
	if cfg.Oraiswap.UsdtContract == "" {
		return sdkmath.Int{}, errorsmod.Wrap(tstypes.ErrOracle, "usdt contract is not set")
	}

	req, err := buildSimulateSwapQuery(offerAmount, offer, ask)
	if err != nil {
		return sdkmath.Int{}, err
	}

	res, err := o.querier.QuerySmart(ctx, router, req)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(tstypes.ErrOracle, "simulate swap: %s", err)
	}

	return parseSimulateSwapResponse(res)
}

// buildSimulateSwapQuery builds the single-hop simulate_swap_operations query of the Oraiswap router.
func buildSimulateSwapQuery(offerAmount sdkmath.Int, offer, ask assetInfo) ([]byte, error) {
	const operation = "simulate_swap_operations.operations.0.orai_swap."

	req := []byte("{}")
	var err error
	for _, set := range []struct {
		path  string
		value string
	}{
		{path: "simulate_swap_operations.offer_amount", value: offerAmount.String()},
		{path: operation + "offer_asset_info." + offer.path, value: offer.value},
		{path: operation + "ask_asset_info." + ask.path, value: ask.value},
	} {
		req, err = sjson.SetBytes(req, set.path, set.value)
		if err != nil {
			return nil, errorsmod.Wrapf(tstypes.ErrOracle, "build query: %s", err)
		}
	}
	return req, nil
}

// parseSimulateSwapResponse reads the amount of {"amount":"123"}.
func parseSimulateSwapResponse(res []byte) (sdkmath.Int, error) {
	if !gjson.ValidBytes(res) {
		return sdkmath.Int{}, errorsmod.Wrap(tstypes.ErrOracle, "malformed simulate swap response")
	}

	amount := gjson.GetBytes(res, "amount")
	if !amount.Exists() {
		return sdkmath.Int{}, errorsmod.Wrap(tstypes.ErrOracle, "missing amount in simulate swap response")
	}

	value, ok := sdkmath.NewIntFromString(amount.String())
	if !ok || value.IsNegative() {
		return sdkmath.Int{}, errorsmod.Wrap(tstypes.ErrOracle, fmt.Sprintf("invalid amount %q in simulate swap response", amount.String()))
	}
	return value, nil
}
