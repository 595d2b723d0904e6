package commands

import (
	"github.com/spf13/cobra"

	"github.com/luckchain/dice/types"
)

// InitCmd bootstrap the global pool from the config file
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the global pool with the authorities from the config file",
		Run:   runInit,
	}
	return cmd
}

func runInit(cmd *cobra.Command, args []string) {
	dice, cfg, err := loadEngine(cmd)
	if err != nil {
		printErr(err, "init")
		return
	}
	payload := types.Encode(&types.DiceAction{
		Ty: types.DiceActionInitialize,
		Initialize: &types.DiceInitialize{
			OperationAuthority: cfg.Dice.OperationAuthority,
			FinanceAuthority:   cfg.Dice.FinanceAuthority,
			UpdateAuthority:    cfg.Dice.UpdateAuthority,
			Rtp:                cfg.Dice.Rtp,
			MaxWinAmount:       cfg.Dice.MaxWinAmount,
			MinBetAmount:       cfg.Dice.MinBetAmount,
			MinNum:             cfg.Dice.MinNum,
			MaxNum:             cfg.Dice.MaxNum,
		},
	})
	tx := &types.Transaction{Execer: types.DiceX, Payload: payload, From: cfg.Dice.SuperAdmin}
	receipt, err := dice.Exec(tx)
	if err != nil {
		printErr(err, "init")
		return
	}
	printResult(receipt)
}

// PlayCmd place a bet
func PlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Place a bet on a number draw",
		Run:   runPlay,
	}
	addPlayFlags(cmd)
	return cmd
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "player account address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().Int32P("target", "t", 50, "target number the draw is bet against")
	cmd.Flags().BoolP("under", "u", true, "bet the draw lands under the target (false: over)")
	cmd.Flags().Float64P("amount", "a", 0, "bet amount in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().Uint64P("session", "s", 0, "round session id")
	cmd.MarkFlagRequired("session")
	cmd.Flags().StringP("operator", "o", "", "operation authority co-signer (defaults to config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	dice, cfg, err := loadEngine(cmd)
	if err != nil {
		printErr(err, "play")
		return
	}
	from, _ := cmd.Flags().GetString("from")
	target, _ := cmd.Flags().GetInt32("target")
	under, _ := cmd.Flags().GetBool("under")
	amount, _ := cmd.Flags().GetFloat64("amount")
	session, _ := cmd.Flags().GetUint64("session")
	operator, _ := cmd.Flags().GetString("operator")
	if operator == "" {
		operator = cfg.Dice.OperationAuthority
	}
	bet, err := amountToUnits(amount)
	if err != nil {
		printErr(err, "play")
		return
	}
	payload := types.Encode(&types.DiceAction{
		Ty: types.DiceActionPlay,
		Play: &types.DicePlay{
			TargetNum: target,
			IsUnder:   under,
			BetAmount: bet,
			SessionID: session,
		},
	})
	tx := &types.Transaction{Execer: types.DiceX, Payload: payload, From: from, CoSigner: operator}
	receipt, err := dice.Exec(tx)
	if err != nil {
		printErr(err, "play")
		return
	}
	printResult(receipt)
}

// ResultCmd settle a round with the oracle outcome
func ResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result",
		Short: "Settle a round with the reported outcome",
		Run:   runResult,
	}
	addResultFlags(cmd)
	return cmd
}

func addResultFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("owner", "f", "", "player account the round belongs to")
	cmd.MarkFlagRequired("owner")
	cmd.Flags().Uint64P("session", "s", 0, "round session id")
	cmd.MarkFlagRequired("session")
	cmd.Flags().BoolP("win", "w", false, "whether the player won")
	cmd.Flags().StringP("operator", "o", "", "operation authority signer (defaults to config)")
}

func runResult(cmd *cobra.Command, args []string) {
	dice, cfg, err := loadEngine(cmd)
	if err != nil {
		printErr(err, "result")
		return
	}
	owner, _ := cmd.Flags().GetString("owner")
	session, _ := cmd.Flags().GetUint64("session")
	win, _ := cmd.Flags().GetBool("win")
	operator, _ := cmd.Flags().GetString("operator")
	if operator == "" {
		operator = cfg.Dice.OperationAuthority
	}
	payload := types.Encode(&types.DiceAction{
		Ty: types.DiceActionSetResult,
		SetResult: &types.DiceSetResult{
			IsWin:     win,
			SessionID: session,
			Owner:     owner,
		},
	})
	tx := &types.Transaction{Execer: types.DiceX, Payload: payload, From: operator}
	receipt, err := dice.Exec(tx)
	if err != nil {
		printErr(err, "result")
		return
	}
	printResult(receipt)
}

// WithdrawCmd sweep funds from the casino vault
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from the casino vault (finance authority only)",
		Run:   runWithdraw,
	}
	cmd.Flags().StringP("from", "f", "", "finance authority signer (defaults to config)")
	cmd.Flags().StringP("recipient", "r", "", "recipient account address")
	cmd.MarkFlagRequired("recipient")
	cmd.Flags().Float64P("amount", "a", 0, "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func runWithdraw(cmd *cobra.Command, args []string) {
	dice, cfg, err := loadEngine(cmd)
	if err != nil {
		printErr(err, "withdraw")
		return
	}
	from, _ := cmd.Flags().GetString("from")
	if from == "" {
		from = cfg.Dice.FinanceAuthority
	}
	recipient, _ := cmd.Flags().GetString("recipient")
	amount, _ := cmd.Flags().GetFloat64("amount")
	units, err := amountToUnits(amount)
	if err != nil {
		printErr(err, "withdraw")
		return
	}
	payload := types.Encode(&types.DiceAction{
		Ty:       types.DiceActionWithdraw,
		Withdraw: &types.DiceWithdraw{Amount: units, Recipient: recipient},
	})
	tx := &types.Transaction{Execer: types.DiceX, Payload: payload, From: from}
	receipt, err := dice.Exec(tx)
	if err != nil {
		printErr(err, "withdraw")
		return
	}
	printResult(receipt)
}
