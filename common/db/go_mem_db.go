package db

import (
	"sort"
	"strings"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB 内存数据库，测试与一次性工具使用
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

//NewGoMemDB 创建内存数据库
func NewGoMemDB(name string, dir string, cache int32) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

//CopyBytes 复制字节
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

//Get 获取
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return CopyBytes(entry), nil
	}
	return nil, ErrNotFoundInDb
}

//Set 设置
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = CopyBytes(value)
	if db.db[string(key)] == nil {
		mlog.Error("Set", "error have no mem")
	}
	return nil
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

//List 按前缀遍历，key 为空时从头(尾)开始
func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var keys []string
	for k := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if direction == ListDESC {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	var values [][]byte
	started := len(key) == 0
	for _, k := range keys {
		if !started {
			if k == string(key) {
				started = true
			}
			continue
		}
		values = append(values, CopyBytes(db.db[k]))
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	return values, nil
}

//NewBatch 批量写
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

//Close 关闭
func (db *GoMemDB) Close() {
}

type memBatch struct {
	db     *GoMemDB
	writes []kvpair
}

type kvpair struct {
	key, value []byte
	deleted    bool
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kvpair{CopyBytes(key), CopyBytes(value), false})
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kvpair{CopyBytes(key), nil, true})
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.writes {
		if kv.deleted {
			delete(b.db.db, string(kv.key))
		} else {
			b.db.db[string(kv.key)] = kv.value
		}
	}
	b.writes = nil
	return nil
}
