package db

import (
	"fmt"

	"github.com/luckchain/dice/types"
)

//KV 状态数据库的最小能力
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

//Lister 前缀遍历能力
type Lister interface {
	List(prefix, key []byte, count, direction int32) (values [][]byte, err error)
}

//DB 存储后端
type DB interface {
	KV
	Lister
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	Close()
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

const (
	//ListDESC 降序
	ListDESC = int32(0)
	//ListASC 升序
	ListASC = int32(1)
)

const (
	LevelDBBackendStr   = "leveldb"
	GoLevelDBBackendStr = "goleveldb"
	MemDBBackendStr     = "memdb"
)

type dbCreator func(name string, dir string, cache int32) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 创建数据库
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}

//ErrNotFoundInDb 数据不存在
var ErrNotFoundInDb = types.ErrNotFound
