// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"
	"strconv"

	"github.com/dgraph-io/badger"
	"github.com/dgraph-io/badger/options"
)

var blog = dlog.New("backend", "gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB badger 后端
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	opts.ValueLogLoadingMode = options.FileIO
	if cache > 0 {
		opts.MaxTableSize = int64(cache) << 20
	}
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

//SetSync badger syncs writes through SyncWrites option, same as Set
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

//Close close
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats lsm and vlog size
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm":  strconv.FormatInt(lsm, 10),
		"badger.vlog": strconv.FormatInt(vlog, 10),
	}
}

//Iterator 前缀迭代
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	return &goBadgerDBIt{
		Iterator: txn.NewIterator(opts),
		txn:      txn,
		prefix:   prefix,
		reverse:  reverse,
	}
}

//NewBatch new batch
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{batch: db.db.NewWriteBatch()}
}

type goBadgerDBIt struct {
	*badger.Iterator
	txn     *badger.Txn
	prefix  []byte
	reverse bool
	err     error
}

func (it *goBadgerDBIt) Rewind() bool {
	if !it.reverse || len(it.prefix) == 0 {
		if len(it.prefix) == 0 {
			it.Iterator.Rewind()
		} else {
			it.Iterator.Seek(it.prefix)
		}
		return it.Valid()
	}
	limit := bytesPrefixLimit(it.prefix)
	it.Iterator.Seek(limit)
	if it.Iterator.Valid() && bytes.Equal(it.Iterator.Item().Key(), limit) {
		it.Iterator.Next()
	}
	return it.Valid()
}

func (it *goBadgerDBIt) Next() bool {
	it.Iterator.Next()
	return it.Valid()
}

func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.Iterator.Seek(key)
	return it.Valid()
}

func (it *goBadgerDBIt) Valid() bool {
	return it.Iterator.ValidForPrefix(it.prefix)
}

func (it *goBadgerDBIt) Key() []byte {
	return it.Iterator.Item().KeyCopy(nil)
}

func (it *goBadgerDBIt) Value() []byte {
	value, err := it.Iterator.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerDBIt) ValueCopy() []byte {
	return it.Value()
}

func (it *goBadgerDBIt) Error() error {
	return it.err
}

func (it *goBadgerDBIt) Close() {
	it.Iterator.Close()
	it.txn.Discard()
}

type goBadgerDBBatch struct {
	batch *badger.WriteBatch
	err   error
}

func (b *goBadgerDBBatch) Set(key, value []byte) {
	if b.err == nil {
		b.err = b.batch.SetEntry(badger.NewEntry(cloneByte(key), cloneByte(value)))
	}
}

func (b *goBadgerDBBatch) Delete(key []byte) {
	if b.err == nil {
		b.err = b.batch.Delete(cloneByte(key))
	}
}

func (b *goBadgerDBBatch) Write() error {
	if b.err != nil {
		b.batch.Cancel()
		return b.err
	}
	return b.batch.Flush()
}

// bytesPrefixLimit 第一个不以 prefix 开头的 key
func bytesPrefixLimit(prefix []byte) []byte {
	limit := cloneByte(prefix)
	for i := len(limit) - 1; i >= 0; i-- {
		if limit[i] < 0xff {
			limit[i]++
			return limit[:i+1]
		}
	}
	return nil
}
