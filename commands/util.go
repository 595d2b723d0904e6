package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	dbm "github.com/luckchain/dice/common/db"
	"github.com/luckchain/dice/executor"
	"github.com/luckchain/dice/types"
)

func loadEngine(cmd *cobra.Command) (*executor.Dice, *types.Config, error) {
	conf, _ := cmd.Flags().GetString("conf")
	cfg, err := types.InitCfg(conf)
	if err != nil {
		return nil, nil, err
	}
	db := dbm.NewDB(types.DiceX, cfg.DB.Driver, cfg.DB.DbPath, cfg.DB.DbCache)
	return executor.NewDice(db), cfg, nil
}

// amountToUnits 把 coin 浮点数精确换算成最小单位，1 coin = 1e8
func amountToUnits(amount float64) (int64, error) {
	d := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(types.Coin))
	if !d.IsInteger() {
		return 0, errors.Errorf("amount %v precision exceeds 1e-8", amount)
	}
	return d.IntPart(), nil
}

func formatUnits(n int64) string {
	return strconv.FormatFloat(float64(n)/float64(types.Coin), 'f', 4, 64)
}

func printResult(v interface{}) {
	buf, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(buf))
}

func printErr(err error, msg string) {
	fmt.Fprintln(os.Stderr, errors.Wrap(err, msg))
}
