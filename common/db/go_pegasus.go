// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"context"
	"strings"
	"time"

	"github.com/XiaoMi/pegasus-go-client/pegasus"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var plog = dlog.New("backend", "pegasus")

// 所有 key 都放在同一个 hashKey 下, sortKey 就是原始 key, 这样 range 查询保持字节序
var pegasusHashKey = []byte("vegas")

//IteratorPageSize pegasus 每次 range 查询的最大条数
const IteratorPageSize = 1024

const pegasusTimeout = 5 * time.Second

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewPegasusDB(name, dir, cache)
	}
	registerDBCreator(GoPegasusDBBackendStr, dbCreator, false)
}

//PegasusDB 远程 pegasus 集群, name 是表名, dir 是 meta server 列表 ip:port,ip:port
type PegasusDB struct {
	name   string
	client pegasus.Client
	table  pegasus.TableConnector
}

//NewPegasusDB 连接 pegasus 并打开表
func NewPegasusDB(name string, dir string, cache int) (*PegasusDB, error) {
	cfg, err := parsePegasusNodes(dir)
	if err != nil {
		return nil, err
	}
	client := pegasus.NewClient(*cfg)
	ctx, cancel := context.WithTimeout(context.Background(), pegasusTimeout)
	defer cancel()
	table, err := client.OpenTable(ctx, name)
	if err != nil {
		plog.Error("OpenTable", "table", name, "meta", cfg.MetaServers, "err", err)
		client.Close()
		return nil, errors.Wrapf(err, "open pegasus table %s", name)
	}
	return newPegasusDB(name, client, table), nil
}

func newPegasusDB(name string, client pegasus.Client, table pegasus.TableConnector) *PegasusDB {
	return &PegasusDB{name: name, client: client, table: table}
}

// url: ip:port,ip:port
func parsePegasusNodes(url string) (*pegasus.Config, error) {
	var hosts []string
	for _, host := range strings.Split(url, ",") {
		if host = strings.TrimSpace(host); host != "" {
			hosts = append(hosts, host)
		}
	}
	if len(hosts) == 0 {
		return nil, errors.Errorf("invalid pegasus meta servers %q", url)
	}
	return &pegasus.Config{MetaServers: hosts}, nil
}

func pegasusContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), pegasusTimeout)
}

//Get get
func (db *PegasusDB) Get(key []byte) ([]byte, error) {
	ctx, cancel := pegasusContext()
	defer cancel()
	value, err := db.table.Get(ctx, pegasusHashKey, key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, ErrNotFoundInDb
	}
	return value, nil
}

//Set set
func (db *PegasusDB) Set(key []byte, value []byte) error {
	ctx, cancel := pegasusContext()
	defer cancel()
	if err := db.table.Set(ctx, pegasusHashKey, key, value); err != nil {
		plog.Error("Set", "err", err)
		return err
	}
	return nil
}

//SetSync pegasus 写入总是同步的
func (db *PegasusDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete delete
func (db *PegasusDB) Delete(key []byte) error {
	ctx, cancel := pegasusContext()
	defer cancel()
	if err := db.table.Del(ctx, pegasusHashKey, key); err != nil {
		plog.Error("Delete", "err", err)
		return err
	}
	return nil
}

//Close close table and client
func (db *PegasusDB) Close() {
	if err := db.table.Close(); err != nil {
		plog.Error("Close table", "err", err)
	}
	if db.client != nil {
		if err := db.client.Close(); err != nil {
			plog.Error("Close client", "err", err)
		}
	}
}

//Stats table name only
func (db *PegasusDB) Stats() map[string]string {
	return map[string]string{"pegasus.table": db.name}
}

//Iterator 分页取出前缀下所有数据, 放进内存表后迭代.
//前缀范围内的数据量由调用者控制 (localdb 索引按轮次或账户分前缀)
func (db *PegasusDB) Iterator(prefix []byte, reverse bool) Iterator {
	cache := memdb.New(comparer.DefaultComparer, 0)
	limit := util.BytesPrefix(prefix).Limit
	start := prefix
	opts := &pegasus.MultiGetOptions{StartInclusive: true, StopInclusive: false, MaxFetchCount: IteratorPageSize}
	for {
		ctx, cancel := pegasusContext()
		kvs, allFetched, err := db.table.MultiGetRangeOpt(ctx, pegasusHashKey, start, limit, opts)
		cancel()
		if err != nil {
			plog.Error("Iterator", "prefix", string(prefix), "err", err)
			return &pegasusIt{goLevelDBIt: goLevelDBIt{Iterator: cache.NewIterator(nil), reverse: reverse}, err: err}
		}
		for _, kv := range kvs {
			if err := cache.Put(kv.SortKey, kv.Value); err != nil {
				return &pegasusIt{goLevelDBIt: goLevelDBIt{Iterator: cache.NewIterator(nil), reverse: reverse}, err: err}
			}
		}
		if allFetched || len(kvs) == 0 {
			break
		}
		start = kvs[len(kvs)-1].SortKey
		opts = &pegasus.MultiGetOptions{StartInclusive: false, StopInclusive: false, MaxFetchCount: IteratorPageSize}
	}
	return &pegasusIt{goLevelDBIt: goLevelDBIt{Iterator: cache.NewIterator(nil), reverse: reverse}}
}

type pegasusIt struct {
	goLevelDBIt
	err error
}

func (dbit *pegasusIt) Error() error {
	if dbit.err != nil {
		return dbit.err
	}
	return dbit.goLevelDBIt.Error()
}

//NewBatch new batch
func (db *PegasusDB) NewBatch(sync bool) Batch {
	return &pegasusBatch{table: db.table, sets: make(map[string][]byte), dels: make(map[string]bool)}
}

type pegasusBatch struct {
	table pegasus.TableConnector
	sets  map[string][]byte
	dels  map[string]bool
}

func (b *pegasusBatch) Set(key, value []byte) {
	b.sets[string(key)] = cloneByte(value)
	delete(b.dels, string(key))
}

func (b *pegasusBatch) Delete(key []byte) {
	b.dels[string(key)] = true
	delete(b.sets, string(key))
}

// Write 先写后删, 两次请求之间失败时已写入的部分不会回滚
func (b *pegasusBatch) Write() error {
	ctx, cancel := pegasusContext()
	defer cancel()
	if len(b.sets) > 0 {
		keys := make([][]byte, 0, len(b.sets))
		values := make([][]byte, 0, len(b.sets))
		for k, v := range b.sets {
			keys = append(keys, []byte(k))
			values = append(values, v)
		}
		if err := b.table.MultiSet(ctx, pegasusHashKey, keys, values); err != nil {
			plog.Error("Write multi set", "err", err)
			return err
		}
	}
	if len(b.dels) > 0 {
		keys := make([][]byte, 0, len(b.dels))
		for k := range b.dels {
			keys = append(keys, []byte(k))
		}
		if err := b.table.MultiDel(ctx, pegasusHashKey, keys); err != nil {
			plog.Error("Write multi del", "err", err)
			return err
		}
	}
	b.sets = make(map[string][]byte)
	b.dels = make(map[string]bool)
	return nil
}
