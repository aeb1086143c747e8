// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/types"
)

// StateDB 状态数据库. 一笔交易内的修改先写入 txcache,
// Commit 时批量落盘, Rollback 时整体丢弃
type StateDB struct {
	db      dbm.DB
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{db: db}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = make(map[string][]byte)
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 把事务内的修改写入后端数据库
func (s *StateDB) Commit() error {
	if !s.intx {
		return nil
	}
	batch := s.db.NewBatch(true)
	for k, v := range s.txcache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	s.resetTx()
	return batch.Write()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	if s.intx {
		if value, ok := s.txcache[string(key)]; ok {
			if value == nil {
				return nil, types.ErrNotFound
			}
			return value, nil
		}
	}
	value, err := s.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	return value, err
}

// Set 只允许在事务内修改, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	if !s.intx {
		elog.Error("StateDB Set out of tx", "key", string(key))
		return types.ErrNotAllowMemSetKey
	}
	skey := string(key)
	s.keys = append(s.keys, skey)
	s.txcache[skey] = value
	return nil
}

// StartTx reset state db keys
func (s *StateDB) StartTx() {
	s.keys = nil
}

// GetSetKeys  get state db set keys
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}
