// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"strconv"
	"sync"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB 内存数据库, 测试和 dev 节点使用
type GoMemDB struct {
	db   *memdb.DB
	lock sync.RWMutex
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: memdb.New(comparer.DefaultComparer, 0)}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	v, err := db.db.Get(key)
	if err != nil {
		return nil, ErrNotFoundInDb
	}
	return cloneByte(v), nil
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	return db.db.Put(key, value)
}

//SetSync same as Set
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete delete
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	err := db.db.Delete(key)
	if err == memdb.ErrNotFound {
		return nil
	}
	return err
}

//Close nothing to release
func (db *GoMemDB) Close() {}

//Stats key count and size
func (db *GoMemDB) Stats() map[string]string {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return map[string]string{
		"memdb.len":  strconv.Itoa(db.db.Len()),
		"memdb.size": strconv.Itoa(db.db.Size()),
	}
}

//Iterator 前缀迭代. memdb 迭代器不是并发安全的, 调用者持有执行锁
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	it := db.db.NewIterator(util.BytesPrefix(prefix))
	return &goLevelDBIt{Iterator: it, reverse: reverse}
}

//NewBatch new batch
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kvop struct {
	key, value []byte
	delete     bool
}

type memBatch struct {
	db  *GoMemDB
	ops []kvop
}

func (b *memBatch) Set(key, value []byte) {
	b.ops = append(b.ops, kvop{key: cloneByte(key), value: cloneByte(value)})
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, kvop{key: cloneByte(key), delete: true})
}

func (b *memBatch) Write() error {
	for _, op := range b.ops {
		var err error
		if op.delete {
			err = b.db.Delete(op.key)
		} else {
			err = b.db.Set(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}
