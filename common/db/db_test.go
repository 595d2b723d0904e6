package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackend(t *testing.T, db DB) {
	_, err := db.Get([]byte("missing"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Set([]byte("k1"), []byte("v1")))
	value, err := db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	require.NoError(t, db.Delete([]byte("k1")))
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func testBackendBatch(t *testing.T, db DB) {
	batch := db.NewBatch(true)
	batch.Set([]byte("b1"), []byte("v1"))
	batch.Set([]byte("b2"), []byte("v2"))
	batch.Delete([]byte("b1"))
	require.NoError(t, batch.Write())

	_, err := db.Get([]byte("b1"))
	assert.Equal(t, ErrNotFoundInDb, err)
	value, err := db.Get([]byte("b2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
}

func testBackendList(t *testing.T, db DB) {
	for i := 1; i <= 5; i++ {
		require.NoError(t, db.Set([]byte(fmt.Sprintf("list-%03d", i)), []byte(fmt.Sprintf("v%d", i))))
	}
	require.NoError(t, db.Set([]byte("other-001"), []byte("x")))

	values, err := db.List([]byte("list-"), nil, 0, ListASC)
	require.NoError(t, err)
	require.Len(t, values, 5)
	assert.Equal(t, []byte("v1"), values[0])
	assert.Equal(t, []byte("v5"), values[4])

	values, err = db.List([]byte("list-"), nil, 2, ListDESC)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, []byte("v5"), values[0])
	assert.Equal(t, []byte("v4"), values[1])

	//从指定 key 之后继续遍历
	values, err = db.List([]byte("list-"), []byte("list-003"), 0, ListASC)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, []byte("v4"), values[0])
	assert.Equal(t, []byte("v5"), values[1])
}

func TestGoMemDB(t *testing.T) {
	memdb, err := NewGoMemDB("dbtest", "", 128)
	require.NoError(t, err)
	defer memdb.Close()

	testBackend(t, memdb)
	testBackendBatch(t, memdb)
	testBackendList(t, memdb)
}

func TestGoLevelDB(t *testing.T) {
	leveldb, err := NewGoLevelDB("dbtest", t.TempDir(), 16)
	require.NoError(t, err)
	defer leveldb.Close()

	testBackend(t, leveldb)
	testBackendBatch(t, leveldb)
	testBackendList(t, leveldb)
}

func TestNewDBBackendRegistry(t *testing.T) {
	memdb := NewDB("dbtest", MemDBBackendStr, "", 128)
	require.NotNil(t, memdb)
	testBackend(t, memdb)

	leveldb := NewDB("dbtest", LevelDBBackendStr, t.TempDir(), 16)
	require.NotNil(t, leveldb)
	defer leveldb.Close()
	testBackend(t, leveldb)
}
