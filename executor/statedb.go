package executor

import (
	dbm "github.com/luckchain/dice/common/db"
)

// StateDB 指令级状态缓存：Begin/Rollback/Commit 保证单条指令的原子性，
// Flush 将已提交的写集合批量落盘。value 为 nil 表示删除。
type StateDB struct {
	db      dbm.DB
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		db:      db,
		cache:   make(map[string][]byte),
		txcache: make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.txcache = make(map[string][]byte)
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit cache tx
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = make(map[string][]byte)
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx {
		if value, ok := s.txcache[skey]; ok {
			if value == nil {
				return nil, dbm.ErrNotFoundInDb
			}
			return value, nil
		}
	}
	if value, ok := s.cache[skey]; ok {
		if value == nil {
			return nil, dbm.ErrNotFoundInDb
		}
		return value, nil
	}
	return s.db.Get(key)
}

// Set set value to state db
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// Flush 将已提交缓存批量写入后端并清空缓存
func (s *StateDB) Flush(sync bool) error {
	batch := s.db.NewBatch(sync)
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}
