package executor

import (
	log "github.com/inconshreveable/log15"

	"github.com/luckchain/dice/account"
	dbm "github.com/luckchain/dice/common/db"
	"github.com/luckchain/dice/types"
)

var glog = log.New("module", "execs.dice")

//Dice 骰子结算引擎：所有指令顺序执行，单条指令内的全部效果
//要么全部可见要么全部丢弃。
type Dice struct {
	statedb      *StateDB
	coinsAccount *account.DB
	db           dbm.DB
}

//NewDice 在给定存储后端上创建引擎
func NewDice(db dbm.DB) *Dice {
	statedb := NewStateDB(db)
	coins := account.NewCoinsAccount()
	coins.SetDB(statedb)
	return &Dice{statedb: statedb, coinsAccount: coins, db: db}
}

//GetName 执行器名称
func (d *Dice) GetName() string {
	return types.DiceX
}

//GetCoinsAccount 资金账本
func (d *Dice) GetCoinsAccount() *account.DB {
	return d.coinsAccount
}

//GetStateDB 状态数据库
func (d *Dice) GetStateDB() dbm.KV {
	return d.statedb
}

//Exec 执行一条指令。校验或转账失败时回滚本条指令的全部写入。
func (d *Dice) Exec(tx *types.Transaction) (*types.Receipt, error) {
	var action types.DiceAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	glog.Debug("exec dice tx", "ty", action.Ty, "from", tx.From)
	actiondb := NewAction(d, tx)
	d.statedb.Begin()
	receipt, err := dispatch(actiondb, &action)
	if err != nil {
		d.statedb.Rollback()
		return nil, err
	}
	d.statedb.Commit()
	if err := d.statedb.Flush(true); err != nil {
		return nil, err
	}
	return receipt, nil
}

func dispatch(actiondb *Action, action *types.DiceAction) (*types.Receipt, error) {
	if action.Ty == types.DiceActionInitialize && action.Initialize != nil {
		return actiondb.Initialize(action.Initialize)
	} else if action.Ty == types.DiceActionPlay && action.Play != nil {
		return actiondb.PlayGame(action.Play)
	} else if action.Ty == types.DiceActionSetResult && action.SetResult != nil {
		return actiondb.SetResult(action.SetResult)
	} else if action.Ty == types.DiceActionWithdraw && action.Withdraw != nil {
		return actiondb.Withdraw(action.Withdraw)
	} else if action.Ty == types.DiceActionSetRtp && action.SetParam != nil {
		return actiondb.SetRtp(action.SetParam)
	} else if action.Ty == types.DiceActionSetMaxWinAmount && action.SetParam != nil {
		return actiondb.SetMaxWinAmount(action.SetParam)
	} else if action.Ty == types.DiceActionSetMinBetAmount && action.SetParam != nil {
		return actiondb.SetMinBetAmount(action.SetParam)
	} else if action.Ty == types.DiceActionSetOperationAuthority && action.SetAuthority != nil {
		return actiondb.SetOperationAuthority(action.SetAuthority)
	} else if action.Ty == types.DiceActionSetFinanceAuthority && action.SetAuthority != nil {
		return actiondb.SetFinanceAuthority(action.SetAuthority)
	} else if action.Ty == types.DiceActionSetUpdateAuthority && action.SetAuthority != nil {
		return actiondb.SetUpdateAuthority(action.SetAuthority)
	}
	return nil, types.ErrActionNotSupport
}

//Deposit 注入余额（创世与测试入金），同样按指令原子落盘
func (d *Dice) Deposit(addr string, amount int64) (*types.Receipt, error) {
	d.statedb.Begin()
	receipt, err := d.coinsAccount.Deposit(addr, amount)
	if err != nil {
		d.statedb.Rollback()
		return nil, err
	}
	d.statedb.Commit()
	if err := d.statedb.Flush(true); err != nil {
		return nil, err
	}
	return receipt, nil
}

//QueryGlobalPool 查询全局配置
func (d *Dice) QueryGlobalPool() (*types.GlobalPool, error) {
	data, err := d.statedb.Get(GlobalKey())
	if err != nil {
		return nil, types.ErrGlobalPoolNotFound
	}
	var global types.GlobalPool
	err = types.Decode(data, &global)
	if err != nil {
		return nil, err
	}
	return &global, nil
}

//QueryRound 查询一局
func (d *Dice) QueryRound(player string, sessionID uint64) (*types.RoundPool, error) {
	data, err := d.statedb.Get(RoundKey(player, sessionID))
	if err != nil {
		return nil, types.ErrRoundNotFound
	}
	var round types.RoundPool
	err = types.Decode(data, &round)
	if err != nil {
		return nil, err
	}
	return &round, nil
}

//QueryRoundsByAddr 按玩家地址倒序列出局记录
func (d *Dice) QueryRoundsByAddr(addr string, count int32) ([]*types.RoundPool, error) {
	values, err := d.db.List(calcRoundAddrIndexPrefix(addr), nil, count, dbm.ListDESC)
	if err != nil {
		return nil, err
	}
	var rounds []*types.RoundPool
	for _, value := range values {
		var record types.RoundRecord
		if err := types.Decode(value, &record); err != nil {
			continue //脏数据不让查询接口奔溃
		}
		round, err := d.QueryRound(addr, record.SessionID)
		if err != nil {
			continue
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

//QueryBalance 查询余额
func (d *Dice) QueryBalance(addrs []string) ([]*types.Account, error) {
	return d.coinsAccount.LoadAccountsDB(addrs)
}
