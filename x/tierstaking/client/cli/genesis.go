package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	tstypes "github.com/EscanBE/tierstaking/x/tierstaking/types"
)

// GetGenesisCmd returns the commands editing the tier staking section of genesis.json
func GetGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "genesis",
		Short:                      "Edit the tier staking genesis",
		DisableFlagParsing:         false,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		NewSetThresholdsCmd(),
		NewSetValidatorsCmd(),
		NewSetAdminCmd(),
		NewSetStatusCmd(),
		NewSetOraiswapCmd(),
		NewAddStableDenomCmd(),
		NewValidateGenesisCmd(),
	)

	return cmd
}

func NewSetThresholdsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set-thresholds [usd-tier-1] [usd-tier-2]...",
		Short:   "Set the USD deposit thresholds, tier 1 first, strictly descending",
		Example: "set-thresholds 25000000000 7500000000 1500000000 250000000",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thresholds := make([]sdkmath.Int, len(args))
			for i, arg := range args {
				threshold, ok := sdkmath.NewIntFromString(arg)
				if !ok {
					return fmt.Errorf("invalid threshold %q", arg)
				}
				thresholds[i] = threshold
			}
			if err := tstypes.ValidateThresholds(thresholds); err != nil {
				return err
			}

			return updateConfig(cmd, func(cfg *tstypes.Config) error {
				cfg.UsdDepositThresholds = thresholds
				return nil
			})
		},
	}
}

func NewSetValidatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-validators [valoper=weight]...",
		Short: "Set the validator weight table, weights sum to 100",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validators := make([]tstypes.ValidatorWeight, len(args))
			for i, arg := range args {
				valoper, rawWeight, found := strings.Cut(arg, "=")
				if !found {
					return fmt.Errorf("expected valoper=weight, got %q", arg)
				}
				weight, err := cast.ToUint64E(rawWeight)
				if err != nil {
					return fmt.Errorf("invalid weight of %s: %w", valoper, err)
				}
				validators[i] = tstypes.ValidatorWeight{
					Address: valoper,
					Weight:  weight,
				}
			}
			if err := tstypes.ValidateValidatorWeights(validators); err != nil {
				return err
			}

			return updateConfig(cmd, func(cfg *tstypes.Config) error {
				cfg.Validators = validators
				return nil
			})
		},
	}
}

func NewSetAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-admin [address]",
		Short: "Set the admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return fmt.Errorf("invalid admin address: %w", err)
			}

			return updateConfig(cmd, func(cfg *tstypes.Config) error {
				cfg.Admin = admin.String()
				return nil
			})
		},
	}
}

func NewSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status [active|stopped]",
		Short: "Set the status of the program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := tstypes.ParseContractStatus(args[0])
			if err != nil {
				return err
			}

			return updateConfig(cmd, func(cfg *tstypes.Config) error {
				cfg.Status = status
				return nil
			})
		},
	}
}

func NewSetOraiswapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-oraiswap [router-contract] [usdt-contract]",
		Short: "Set the Oraiswap contracts used for pricing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oraiswap := tstypes.OraiswapContract{
				RouterContract: args[0],
				UsdtContract:   args[1],
			}
			if err := oraiswap.Validate(); err != nil {
				return err
			}

			return updateConfig(cmd, func(cfg *tstypes.Config) error {
				cfg.Oraiswap = oraiswap
				return nil
			})
		},
	}
}

func NewAddStableDenomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-stable-denom [denom]",
		Short: "Allow deposits of the stable denom, valued 1:1 in USD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(cmd, func(cfg *tstypes.Config) error {
				denoms := append(append([]string{}, cfg.StableDenoms...), args[0])
				if err := tstypes.ValidateStableDenoms(denoms); err != nil {
					return err
				}
				cfg.StableDenoms = denoms
				return nil
			})
		},
	}
}

func NewValidateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the tier staking genesis, config must be complete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			genesisFile, err := genesisFilePath(cmd)
			if err != nil {
				return err
			}

			genesis, _, err := readGenesis(genesisFile)
			if err != nil {
				return err
			}
			if genesis.Config == nil {
				return fmt.Errorf("%s config is not set", tstypes.ModuleName)
			}
			if err := genesis.Validate(); err != nil {
				return err
			}

			cmd.Println("genesis is valid")
			return nil
		},
	}
}

// updateConfig edits the config of the genesis file, creating an active config if none.
func updateConfig(cmd *cobra.Command, updater func(cfg *tstypes.Config) error) error {
	return generalGenesisUpdateFunc(cmd, func(genesis *tstypes.GenesisState) error {
		if genesis.Config == nil {
			genesis.Config = &tstypes.Config{
				Status: tstypes.StatusActive,
			}
		}
		return updater(genesis.Config)
	})
}

func genesisFilePath(cmd *cobra.Command) (string, error) {
	homeDir, _ := cmd.Flags().GetString(flags.FlagHome)
	if homeDir == "" {
		homeDir = client.GetClientContextFromCmd(cmd).HomeDir
	}
	if homeDir == "" {
		return "", fmt.Errorf("home dir not set")
	}
	return filepath.Join(homeDir, "config", "genesis.json"), nil
}

// readGenesis returns the tier staking section of the genesis file, the default one if absent,
// and the whole genesis file.
func readGenesis(genesisFile string) (*tstypes.GenesisState, map[string]json.RawMessage, error) {
	genesisData, err := os.ReadFile(genesisFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read genesis file: %w", err)
	}

	var genesis map[string]json.RawMessage
	if err := json.Unmarshal(genesisData, &genesis); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal genesis file: %w", err)
	}

	var appState map[string]json.RawMessage
	if raw, found := genesis["app_state"]; found {
		if err := json.Unmarshal(raw, &appState); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal app state: %w", err)
		}
	}

	tsGenesis := tstypes.DefaultGenesis()
	if raw, found := appState[tstypes.ModuleName]; found && len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, tsGenesis); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal %s genesis: %w", tstypes.ModuleName, err)
		}
	}

	return tsGenesis, genesis, nil
}

func generalGenesisUpdateFunc(cmd *cobra.Command, updater func(genesis *tstypes.GenesisState) error) error {
	genesisFile, err := genesisFilePath(cmd)
	if err != nil {
		return err
	}

	tsGenesis, genesis, err := readGenesis(genesisFile)
	if err != nil {
		return err
	}

	// Update
	if err := updater(tsGenesis); err != nil {
		return fmt.Errorf("failed to update genesis: %w", err)
	}

	var appState map[string]json.RawMessage
	if raw, found := genesis["app_state"]; found {
		if err := json.Unmarshal(raw, &appState); err != nil {
			return fmt.Errorf("failed to unmarshal app state: %w", err)
		}
	}
	if appState == nil {
		appState = make(map[string]json.RawMessage)
	}

	appState[tstypes.ModuleName], err = json.Marshal(tsGenesis)
	if err != nil {
		return fmt.Errorf("failed to marshal %s genesis: %w", tstypes.ModuleName, err)
	}

	// Marshal the updated app state back to genesis
	genesis["app_state"], err = json.Marshal(appState)
	if err != nil {
		return fmt.Errorf("failed to marshal updated app state: %w", err)
	}

	updatedGenesisData, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal updated genesis: %w", err)
	}

	// Write the updated genesis back to the file
	if err := os.WriteFile(genesisFile, updatedGenesisData, 0o644); err != nil {
		return fmt.Errorf("failed to write updated genesis file: %w", err)
	}

	return nil
}
