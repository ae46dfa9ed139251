package tierstaking

import (
	"encoding/json"
	"fmt"

	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"

	tscli "github.com/EscanBE/tierstaking/x/tierstaking/client/cli"
	tskeeper "github.com/EscanBE/tierstaking/x/tierstaking/keeper"
	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

var (
	_ module.AppModuleBasic   = AppModuleBasic{}
	_ module.HasGenesisBasics = AppModuleBasic{}
	_ module.AppModule        = AppModule{}
	_ module.HasGenesis       = AppModule{}
	_ module.HasInvariants    = AppModule{}
)

// ----------------------------------------------------------------------------
// AppModuleBasic
// ----------------------------------------------------------------------------

// AppModuleBasic implements the AppModuleBasic interface that defines the independent methods a Cosmos SDK module needs to implement.
type AppModuleBasic struct{}

// Name returns the name of the module as a string
func (AppModuleBasic) Name() string {
	return tstypes.ModuleName
}

// RegisterLegacyAminoCodec registers the amino codec for the module
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	tstypes.RegisterCodec(cdc)
}

// RegisterInterfaces does nothing, the messages of the module are not proto messages.
func (AppModuleBasic) RegisterInterfaces(_ codectypes.InterfaceRegistry) {
}

// DefaultGenesis returns the default GenesisState of the module, marshalled to json.RawMessage.
func (AppModuleBasic) DefaultGenesis(_ codec.JSONCodec) json.RawMessage {
	bz, err := json.Marshal(tstypes.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis used to validate the GenesisState, given in its json.RawMessage form
func (AppModuleBasic) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	genesisState, err := UnmarshalGenesis(bz)
	if err != nil {
		return err
	}
	return genesisState.Validate()
}

// RegisterGRPCGatewayRoutes does nothing, the module has no gateway routes.
func (AppModuleBasic) RegisterGRPCGatewayRoutes(_ client.Context, _ *runtime.ServeMux) {
}

// GetGenesisCmd returns the commands editing the genesis section of the module.
func (AppModuleBasic) GetGenesisCmd() *cobra.Command {
	return tscli.GetGenesisCmd()
}

// UnmarshalGenesis decodes the genesis section of the module.
func UnmarshalGenesis(bz json.RawMessage) (*tstypes.GenesisState, error) {
	var genesisState tstypes.GenesisState
	if err := json.Unmarshal(bz, &genesisState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", tstypes.ModuleName, err)
	}
	return &genesisState, nil
}

// ----------------------------------------------------------------------------
// AppModule
// ----------------------------------------------------------------------------

// AppModule implements the AppModule interface that defines the inter-dependent methods that modules need to implement
type AppModule struct {
	AppModuleBasic

	keeper        tskeeper.Keeper
	accountKeeper tstypes.AccountKeeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(
	keeper tskeeper.Keeper,
	ak tstypes.AccountKeeper,
) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{},
		keeper:         keeper,
		accountKeeper:  ak,
	}
}

// MsgServer returns the atomic entry points of the module operations.
func (am AppModule) MsgServer() tstypes.MsgServer {
	return tskeeper.NewMsgServerImpl(am.keeper)
}

// QueryServer returns the read-only queries of the module.
func (am AppModule) QueryServer() tstypes.QueryServer {
	return tskeeper.NewQueryServerImpl(am.keeper)
}

// RegisterInvariants registers the module's invariants.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	tskeeper.RegisterInvariants(ir, am.keeper)
}

// InitGenesis performs genesis initialization for the tier staking module.
func (am AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, data json.RawMessage) {
	genesisState, err := UnmarshalGenesis(data)
	if err != nil {
		panic(err)
	}
	InitGenesis(ctx, am.keeper, am.accountKeeper, *genesisState)
}

// ExportGenesis returns the exported genesis state as raw bytes for the tier staking module.
func (am AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	bz, err := json.Marshal(ExportGenesis(ctx, am.keeper))
	if err != nil {
		panic(err)
	}
	return bz
}

// ConsensusVersion is a sequence number for state-breaking change of the module. It should be incremented on each consensus-breaking change introduced by the module. To avoid wrong/empty versions, the initial version should be set to 1
func (AppModule) ConsensusVersion() uint64 { return 1 }

func (am AppModule) IsOnePerModuleType() {
}

func (am AppModule) IsAppModule() {
}
