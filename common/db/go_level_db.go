package db

import (
	"path"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var llog = log.New("module", "db.goleveldb")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator(LevelDBBackendStr, dbCreator, false)
	registerDBCreator(GoLevelDBBackendStr, dbCreator, false)
}

//GoLevelDB leveldb 后端
type GoLevelDB struct {
	db *leveldb.DB
}

//NewGoLevelDB 打开(或创建)leveldb
func NewGoLevelDB(name string, dir string, cache int32) (*GoLevelDB, error) {
	dbPath := path.Join(dir, name+".db")
	if cache <= 0 {
		cache = 64
	}
	handles := int(cache)
	// Open the db and recover any potential corruptions
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     int(cache) / 2 * opt.MiB,
		WriteBuffer:            int(cache) / 4 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(dbPath, nil)
	}
	if err != nil {
		return nil, err
	}
	return &GoLevelDB{db: db}, nil
}

//Get 获取
func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	res, err := db.db.Get(key, nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		llog.Error("Get", "error", err)
		return nil, err
	}
	return res, nil
}

//Set 设置
func (db *GoLevelDB) Set(key []byte, value []byte) error {
	err := db.db.Put(key, value, nil)
	if err != nil {
		llog.Error("Set", "error", err)
		return err
	}
	return nil
}

//Delete 删除
func (db *GoLevelDB) Delete(key []byte) error {
	err := db.db.Delete(key, nil)
	if err != nil {
		llog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//List 按前缀遍历，key 非空时从 key 之后继续
func (db *GoLevelDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	iter := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	var values [][]byte
	var ok bool
	if direction == ListASC {
		if len(key) == 0 {
			ok = iter.First()
		} else {
			ok = iter.Seek(key)
			if ok && string(iter.Key()) == string(key) {
				ok = iter.Next()
			}
		}
	} else {
		if len(key) == 0 {
			ok = iter.Last()
		} else {
			ok = iter.Seek(key)
			if ok {
				ok = iter.Prev()
			} else {
				ok = iter.Last()
			}
		}
	}
	for ; ok; ok = next(iter, direction) {
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		values = append(values, value)
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return values, nil
}

func next(iter interface {
	Next() bool
	Prev() bool
}, direction int32) bool {
	if direction == ListASC {
		return iter.Next()
	}
	return iter.Prev()
}

//NewBatch 批量写
func (db *GoLevelDB) NewBatch(sync bool) Batch {
	batch := new(leveldb.Batch)
	wop := &opt.WriteOptions{Sync: sync}
	return &goLevelDBBatch{db, batch, wop}
}

//Close 关闭
func (db *GoLevelDB) Close() {
	db.db.Close()
}

type goLevelDBBatch struct {
	db    *GoLevelDB
	batch *leveldb.Batch
	wop   *opt.WriteOptions
}

func (mBatch *goLevelDBBatch) Set(key, value []byte) {
	mBatch.batch.Put(key, value)
}

func (mBatch *goLevelDBBatch) Delete(key []byte) {
	mBatch.batch.Delete(key)
}

func (mBatch *goLevelDBBatch) Write() error {
	err := mBatch.db.db.Write(mBatch.batch, mBatch.wop)
	if err != nil {
		llog.Error("Write", "error", err)
		return err
	}
	mBatch.batch.Reset()
	return nil
}
