package commands

import (
	"github.com/spf13/cobra"

	"github.com/luckchain/dice/executor"
)

// DepositCmd credit balance into an account ledger
func DepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit coins into an account (genesis funding)",
		Run:   runDeposit,
	}
	cmd.Flags().StringP("addr", "d", "", "account address to credit")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Float64P("amount", "a", 0, "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func runDeposit(cmd *cobra.Command, args []string) {
	dice, _, err := loadEngine(cmd)
	if err != nil {
		printErr(err, "deposit")
		return
	}
	addr, _ := cmd.Flags().GetString("addr")
	amount, _ := cmd.Flags().GetFloat64("amount")
	units, err := amountToUnits(amount)
	if err != nil {
		printErr(err, "deposit")
		return
	}
	receipt, err := dice.Deposit(addr, units)
	if err != nil {
		printErr(err, "deposit")
		return
	}
	printResult(receipt)
}

// QueryCmd read-only state queries
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query game state",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		queryGlobalCmd(),
		queryRoundCmd(),
		queryRoundsCmd(),
		queryBalanceCmd(),
		queryVaultCmd(),
	)
	return cmd
}

func queryGlobalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "global",
		Short: "Show the global pool configuration",
		Run: func(cmd *cobra.Command, args []string) {
			dice, _, err := loadEngine(cmd)
			if err != nil {
				printErr(err, "query global")
				return
			}
			global, err := dice.QueryGlobalPool()
			if err != nil {
				printErr(err, "query global")
				return
			}
			printResult(global)
		},
	}
}

func queryRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Show one round",
		Run: func(cmd *cobra.Command, args []string) {
			dice, _, err := loadEngine(cmd)
			if err != nil {
				printErr(err, "query round")
				return
			}
			addr, _ := cmd.Flags().GetString("addr")
			session, _ := cmd.Flags().GetUint64("session")
			round, err := dice.QueryRound(addr, session)
			if err != nil {
				printErr(err, "query round")
				return
			}
			printResult(round)
		},
	}
	cmd.Flags().StringP("addr", "d", "", "player account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Uint64P("session", "s", 0, "round session id")
	cmd.MarkFlagRequired("session")
	return cmd
}

func queryRoundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "List a player's rounds, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			dice, _, err := loadEngine(cmd)
			if err != nil {
				printErr(err, "query rounds")
				return
			}
			addr, _ := cmd.Flags().GetString("addr")
			count, _ := cmd.Flags().GetInt32("count")
			rounds, err := dice.QueryRoundsByAddr(addr, count)
			if err != nil {
				printErr(err, "query rounds")
				return
			}
			printResult(rounds)
		},
	}
	cmd.Flags().StringP("addr", "d", "", "player account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int32P("count", "c", 10, "max rounds to return")
	return cmd
}

func queryBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show account balances",
		Run: func(cmd *cobra.Command, args []string) {
			dice, _, err := loadEngine(cmd)
			if err != nil {
				printErr(err, "query balance")
				return
			}
			addrs, _ := cmd.Flags().GetStringArray("addr")
			accs, err := dice.QueryBalance(addrs)
			if err != nil {
				printErr(err, "query balance")
				return
			}
			type balance struct {
				Addr    string `json:"addr"`
				Balance string `json:"balance"`
			}
			var result []balance
			for _, acc := range accs {
				result = append(result, balance{Addr: acc.Addr, Balance: formatUnits(acc.Balance)})
			}
			printResult(result)
		},
	}
	cmd.Flags().StringArrayP("addr", "d", nil, "account address, repeatable")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func queryVaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vault",
		Short: "Show the casino vault address and balance",
		Run: func(cmd *cobra.Command, args []string) {
			dice, _, err := loadEngine(cmd)
			if err != nil {
				printErr(err, "query vault")
				return
			}
			vault := executor.CasinoVaultAddress()
			accs, err := dice.QueryBalance([]string{vault})
			if err != nil {
				printErr(err, "query vault")
				return
			}
			printResult(map[string]string{
				"addr":    vault,
				"balance": formatUnits(accs[0].Balance),
			})
		},
	}
}
