package main

import (
	"fmt"
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func main() {
	setupConfig()

	rootCmd := NewRootCmd()

	if err := svrcmd.Execute(rootCmd, EnvPrefix, DefaultNodeHome); err != nil {
		_, _ = fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}

func setupConfig() {
	// set the address prefixes
	cfg := sdk.GetConfig()
	SetBech32Prefixes(cfg)
	cfg.Seal()
}
