package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"

	tscli "github.com/EscanBE/tierstaking/x/tierstaking/client/cli"
)

const (
	ApplicationBinaryName = "tierstakingd"
	EnvPrefix             = "TIERSTAKING"

	Bech32Prefix = "orai"
)

var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	DefaultNodeHome = filepath.Join(userHomeDir, "."+ApplicationBinaryName)
}

// NewRootCmd creates a new root command for the binary.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   ApplicationBinaryName,
		Short: "Tier staking operator tools",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			return client.SetCmdClientContextHandler(client.Context{}.WithHomeDir(DefaultNodeHome), cmd)
		},
	}

	rootCmd.AddCommand(
		tscli.GetGenesisCmd(),
	)

	return rootCmd
}

// SetBech32Prefixes sets the global prefixes to be used when serializing addresses and public keys to Bech32 strings.
func SetBech32Prefixes(config *sdk.Config) {
	config.SetBech32PrefixForAccount(Bech32Prefix, Bech32Prefix+sdk.PrefixPublic)
	config.SetBech32PrefixForValidator(Bech32Prefix+sdk.PrefixValidator+sdk.PrefixOperator, Bech32Prefix+sdk.PrefixValidator+sdk.PrefixOperator+sdk.PrefixPublic)
	config.SetBech32PrefixForConsensusNode(Bech32Prefix+sdk.PrefixValidator+sdk.PrefixConsensus, Bech32Prefix+sdk.PrefixValidator+sdk.PrefixConsensus+sdk.PrefixPublic)
}
