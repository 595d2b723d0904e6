package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luckchain/dice/commands"
)

var rootCmd = &cobra.Command{
	Use:   "dice",
	Short: "dice betting settlement engine",
}

func init() {
	rootCmd.PersistentFlags().String("conf", "dice.toml", "configuration file")
	rootCmd.AddCommand(
		commands.InitCmd(),
		commands.PlayCmd(),
		commands.ResultCmd(),
		commands.WithdrawCmd(),
		commands.SetCmd(),
		commands.RotateCmd(),
		commands.DepositCmd(),
		commands.QueryCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
