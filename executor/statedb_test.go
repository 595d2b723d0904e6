package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/luckchain/dice/common/db"
)

func newStateDB(t *testing.T) (*StateDB, dbm.DB) {
	memdb, err := dbm.NewGoMemDB("statedbtest", "", 128)
	require.NoError(t, err)
	return NewStateDB(memdb), memdb
}

func TestStateDBRollback(t *testing.T) {
	statedb, _ := newStateDB(t)

	statedb.Begin()
	statedb.Set([]byte("k1"), []byte("v1"))
	value, err := statedb.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	statedb.Rollback()
	_, err = statedb.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestStateDBCommitFlush(t *testing.T) {
	statedb, memdb := newStateDB(t)

	statedb.Begin()
	statedb.Set([]byte("k1"), []byte("v1"))
	statedb.Commit()

	//已提交但未落盘：只在缓存可见
	value, err := statedb.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)
	_, err = memdb.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	require.NoError(t, statedb.Flush(true))
	value, err = memdb.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	//Flush 之后缓存已清空，读穿透到后端
	value, err = statedb.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)
}

func TestStateDBNilValueDeletes(t *testing.T) {
	statedb, memdb := newStateDB(t)
	require.NoError(t, memdb.Set([]byte("k1"), []byte("v1")))

	statedb.Begin()
	statedb.Set([]byte("k1"), nil)
	//事务内 nil 视为删除标记
	_, err := statedb.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	statedb.Commit()

	require.NoError(t, statedb.Flush(true))
	_, err = memdb.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestStateDBTxIsolation(t *testing.T) {
	statedb, _ := newStateDB(t)

	statedb.Begin()
	statedb.Set([]byte("k1"), []byte("v1"))
	statedb.Commit()

	statedb.Begin()
	statedb.Set([]byte("k1"), []byte("v2"))
	statedb.Rollback()

	//回滚的事务不影响之前提交的值
	value, err := statedb.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)
}
