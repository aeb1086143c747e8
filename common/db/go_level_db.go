// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var llog = dlog.New("backend", "goleveldb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator(LevelDBBackendStr, dbCreator, false)
	registerDBCreator(GoLevelDBBackendStr, dbCreator, false)
}

//GoLevelDB leveldb 后端
type GoLevelDB struct {
	db *leveldb.DB
}

//NewGoLevelDB new
func NewGoLevelDB(name string, dir string, cache int) (*GoLevelDB, error) {
	dbPath := path.Join(dir, name+".db")
	if cache <= 0 {
		cache = 128
	}
	handles := cache
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
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

//Get get
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

//Set set
func (db *GoLevelDB) Set(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

//SetSync set and fsync
func (db *GoLevelDB) SetSync(key []byte, value []byte) error {
	return db.db.Put(key, value, &opt.WriteOptions{Sync: true})
}

//Delete delete
func (db *GoLevelDB) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

//Close close
func (db *GoLevelDB) Close() {
	if err := db.db.Close(); err != nil {
		llog.Error("Close", "error", err)
	}
}

//Stats leveldb properties
func (db *GoLevelDB) Stats() map[string]string {
	keys := []string{
		"leveldb.stats",
		"leveldb.sstables",
		"leveldb.blockpool",
		"leveldb.cachedblock",
		"leveldb.openedtables",
		"leveldb.alivesnaps",
		"leveldb.aliveiters",
	}
	stats := make(map[string]string)
	for _, key := range keys {
		str, err := db.db.GetProperty(key)
		if err == nil {
			stats[key] = str
		}
	}
	return stats
}

//Iterator 前缀迭代
func (db *GoLevelDB) Iterator(prefix []byte, reverse bool) Iterator {
	it := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	return &goLevelDBIt{Iterator: it, reverse: reverse}
}

//NewBatch new batch
func (db *GoLevelDB) NewBatch(sync bool) Batch {
	return &goLevelDBBatch{db: db, batch: new(leveldb.Batch), wop: &opt.WriteOptions{Sync: sync}}
}

// goLevelDBIt 同时服务 leveldb 和 memdb, 两者都实现 iterator.Iterator
type goLevelDBIt struct {
	iterator.Iterator
	reverse bool
}

func (dbit *goLevelDBIt) Rewind() bool {
	if dbit.reverse {
		return dbit.Iterator.Last()
	}
	return dbit.Iterator.First()
}

func (dbit *goLevelDBIt) Next() bool {
	if dbit.reverse {
		return dbit.Iterator.Prev()
	}
	return dbit.Iterator.Next()
}

func (dbit *goLevelDBIt) Seek(key []byte) bool {
	ok := dbit.Iterator.Seek(key)
	if !dbit.reverse {
		return ok
	}
	if !ok {
		return dbit.Iterator.Last()
	}
	if bytes.Compare(dbit.Iterator.Key(), key) > 0 {
		return dbit.Iterator.Prev()
	}
	return true
}

func (dbit *goLevelDBIt) ValueCopy() []byte {
	return cloneByte(dbit.Iterator.Value())
}

func (dbit *goLevelDBIt) Close() {
	dbit.Iterator.Release()
}

type goLevelDBBatch struct {
	db    *GoLevelDB
	batch *leveldb.Batch
	wop   *opt.WriteOptions
}

func (b *goLevelDBBatch) Set(key, value []byte) {
	b.batch.Put(key, value)
}

func (b *goLevelDBBatch) Delete(key []byte) {
	b.batch.Delete(key)
}

func (b *goLevelDBBatch) Write() error {
	return b.db.db.Write(b.batch, b.wop)
}
