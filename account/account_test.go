package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/luckchain/dice/common/db"
	"github.com/luckchain/dice/types"
)

var (
	addr1 = "1PUiGcbsccfxW3zuvHXZBJfznziph5miAo"
	addr2 = "1EbDHAXpoiewjPLX9uqSz38mkqtzrf5ji3"
)

func newCoins(t *testing.T) *DB {
	memdb, err := dbm.NewGoMemDB("accounttest", "", 128)
	require.NoError(t, err)
	return NewCoinsAccount().SetDB(memdb)
}

func TestLoadAccountZero(t *testing.T) {
	coins := newCoins(t)
	acc := coins.LoadAccount(addr1)
	assert.Equal(t, addr1, acc.Addr)
	assert.Equal(t, int64(0), acc.GetBalance())
}

func TestDeposit(t *testing.T) {
	coins := newCoins(t)
	receipt, err := coins.Deposit(addr1, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, types.ExecOk, receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, types.TyLogDeposit, receipt.Logs[0].Ty)
	assert.Equal(t, 10*types.Coin, coins.LoadAccount(addr1).GetBalance())

	_, err = coins.Deposit(addr1, -1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestCheckTransfer(t *testing.T) {
	coins := newCoins(t)
	_, err := coins.Deposit(addr1, 10*types.Coin)
	require.NoError(t, err)

	assert.NoError(t, coins.CheckTransfer(addr1, addr2, 10*types.Coin))
	assert.Equal(t, types.ErrNoBalance, coins.CheckTransfer(addr1, addr2, 11*types.Coin))
	assert.Equal(t, types.ErrAmount, coins.CheckTransfer(addr1, addr2, 0))
	assert.Equal(t, types.ErrAmount, coins.CheckTransfer(addr1, addr2, types.MaxCoin))
}

func TestTransfer(t *testing.T) {
	coins := newCoins(t)
	_, err := coins.Deposit(addr1, 10*types.Coin)
	require.NoError(t, err)

	receipt, err := coins.Transfer(addr1, addr2, 4*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, types.ExecOk, receipt.Ty)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, types.TyLogTransfer, receipt.Logs[0].Ty)
	assert.Equal(t, 6*types.Coin, coins.LoadAccount(addr1).GetBalance())
	assert.Equal(t, 4*types.Coin, coins.LoadAccount(addr2).GetBalance())

	//余额不足时无任何写入
	_, err = coins.Transfer(addr1, addr2, 7*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, 6*types.Coin, coins.LoadAccount(addr1).GetBalance())
	assert.Equal(t, 4*types.Coin, coins.LoadAccount(addr2).GetBalance())

	_, err = coins.Transfer(addr1, addr1, types.Coin)
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestTransferReceiptBalances(t *testing.T) {
	coins := newCoins(t)
	_, err := coins.Deposit(addr1, 10*types.Coin)
	require.NoError(t, err)

	receipt, err := coins.Transfer(addr1, addr2, types.Coin)
	require.NoError(t, err)

	var from types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &from))
	assert.Equal(t, 10*types.Coin, from.Prev.GetBalance())
	assert.Equal(t, 9*types.Coin, from.Current.GetBalance())

	var to types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[1].Log, &to))
	assert.Equal(t, int64(0), to.Prev.GetBalance())
	assert.Equal(t, types.Coin, to.Current.GetBalance())
}

func TestLoadAccountsDB(t *testing.T) {
	coins := newCoins(t)
	_, err := coins.Deposit(addr1, types.Coin)
	require.NoError(t, err)

	accs, err := coins.LoadAccountsDB([]string{addr1, addr2})
	require.NoError(t, err)
	require.Len(t, accs, 2)
	assert.Equal(t, types.Coin, accs[0].GetBalance())
	assert.Equal(t, int64(0), accs[1].GetBalance())
}
