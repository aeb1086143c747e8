// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 存储后端: leveldb, badger, memdb, pegasus
package db

import (
	"errors"
	"fmt"

	log "github.com/inconshreveable/log15"
)

var dlog = log.New("module", "db")

//ErrNotFoundInDb key not present
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 带事务缓存的读写接口, 执行器通过它读写状态
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit() error
}

//KVDB 在 KV 的基础上支持列表查询 (localdb)
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

//IteratorDB 可迭代的数据库
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//DB 存储后端
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	SetSync([]byte, []byte) error
	Delete([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

//Iterator 前缀迭代器. 反向迭代时 Seek 定位到 <= key 的最大 key
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//backends
const (
	LevelDBBackendStr     = "leveldb"
	GoLevelDBBackendStr   = "goleveldb"
	MemDBBackendStr       = "memdb"
	GoBadgerDBBackendStr  = "gobadgerdb"
	GoPegasusDBBackendStr = "pegasus"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 根据 backend 名字创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %s", backend)
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}

func cloneByte(v []byte) []byte {
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
