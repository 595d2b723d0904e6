package commands

import (
	"github.com/spf13/cobra"

	"github.com/luckchain/dice/types"
)

// SetCmd global parameter setters, update authority only
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update global game parameters (update authority only)",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		setRtpCmd(),
		setMaxWinCmd(),
		setMinBetCmd(),
	)
	return cmd
}

func setRtpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rtp",
		Short: "Set the return-to-player ratio in percent, must be below 100",
		Run: func(cmd *cobra.Command, args []string) {
			value, _ := cmd.Flags().GetInt64("value")
			runSetParam(cmd, types.DiceActionSetRtp, value)
		},
	}
	cmd.Flags().Int64P("value", "v", 0, "new rtp percentage")
	cmd.MarkFlagRequired("value")
	cmd.Flags().StringP("from", "f", "", "update authority signer (defaults to config)")
	return cmd
}

func setMaxWinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maxwin",
		Short: "Set the max net win per round",
		Run: func(cmd *cobra.Command, args []string) {
			amount, _ := cmd.Flags().GetFloat64("amount")
			units, err := amountToUnits(amount)
			if err != nil {
				printErr(err, "set maxwin")
				return
			}
			runSetParam(cmd, types.DiceActionSetMaxWinAmount, units)
		},
	}
	cmd.Flags().Float64P("amount", "a", 0, "new max win amount in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("from", "f", "", "update authority signer (defaults to config)")
	return cmd
}

func setMinBetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minbet",
		Short: "Set the min bet per round",
		Run: func(cmd *cobra.Command, args []string) {
			amount, _ := cmd.Flags().GetFloat64("amount")
			units, err := amountToUnits(amount)
			if err != nil {
				printErr(err, "set minbet")
				return
			}
			runSetParam(cmd, types.DiceActionSetMinBetAmount, units)
		},
	}
	cmd.Flags().Float64P("amount", "a", 0, "new min bet amount in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("from", "f", "", "update authority signer (defaults to config)")
	return cmd
}

func runSetParam(cmd *cobra.Command, ty int32, value int64) {
	dice, cfg, err := loadEngine(cmd)
	if err != nil {
		printErr(err, "set")
		return
	}
	from, _ := cmd.Flags().GetString("from")
	if from == "" {
		from = cfg.Dice.UpdateAuthority
	}
	payload := types.Encode(&types.DiceAction{
		Ty:       ty,
		SetParam: &types.DiceSetParam{Value: value},
	})
	tx := &types.Transaction{Execer: types.DiceX, Payload: payload, From: from}
	receipt, err := dice.Exec(tx)
	if err != nil {
		printErr(err, "set")
		return
	}
	printResult(receipt)
}

// RotateCmd authority rotations, super admin only
func RotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate an authority key (super admin only)",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		rotateCmd("operation", "Rotate the operation authority", types.DiceActionSetOperationAuthority),
		rotateCmd("finance", "Rotate the finance authority", types.DiceActionSetFinanceAuthority),
		rotateCmd("update", "Rotate the update authority", types.DiceActionSetUpdateAuthority),
	)
	return cmd
}

func rotateCmd(use, short string, ty int32) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			dice, cfg, err := loadEngine(cmd)
			if err != nil {
				printErr(err, "rotate")
				return
			}
			from, _ := cmd.Flags().GetString("from")
			if from == "" {
				from = cfg.Dice.SuperAdmin
			}
			to, _ := cmd.Flags().GetString("to")
			payload := types.Encode(&types.DiceAction{
				Ty:           ty,
				SetAuthority: &types.DiceSetAuthority{Authority: to},
			})
			tx := &types.Transaction{Execer: types.DiceX, Payload: payload, From: from}
			receipt, err := dice.Exec(tx)
			if err != nil {
				printErr(err, "rotate")
				return
			}
			printResult(receipt)
		},
	}
	cmd.Flags().StringP("from", "f", "", "super admin signer (defaults to config)")
	cmd.Flags().StringP("to", "t", "", "new authority address")
	cmd.MarkFlagRequired("to")
	return cmd
}
