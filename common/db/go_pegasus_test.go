// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/XiaoMi/pegasus-go-client/pegasus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memTable 内存里的单 hashKey 表, pageCap 模拟服务端每次最多返回的条数
type memTable struct {
	pegasus.TableConnector
	data    map[string][]byte
	pageCap int
}

func newMemTable(pageCap int) *memTable {
	return &memTable{data: make(map[string][]byte), pageCap: pageCap}
}

func (tbl *memTable) Get(ctx context.Context, hashKey []byte, sortKey []byte) ([]byte, error) {
	v, ok := tbl.data[string(sortKey)]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (tbl *memTable) Set(ctx context.Context, hashKey []byte, sortKey []byte, value []byte) error {
	tbl.data[string(sortKey)] = value
	return nil
}

func (tbl *memTable) Del(ctx context.Context, hashKey []byte, sortKey []byte) error {
	delete(tbl.data, string(sortKey))
	return nil
}

func (tbl *memTable) MultiSet(ctx context.Context, hashKey []byte, sortKeys [][]byte, values [][]byte) error {
	for i, k := range sortKeys {
		tbl.data[string(k)] = values[i]
	}
	return nil
}

func (tbl *memTable) MultiDel(ctx context.Context, hashKey []byte, sortKeys [][]byte) error {
	for _, k := range sortKeys {
		delete(tbl.data, string(k))
	}
	return nil
}

func (tbl *memTable) MultiGetRangeOpt(ctx context.Context, hashKey []byte, start []byte, stop []byte, opts *pegasus.MultiGetOptions) ([]*pegasus.KeyValue, bool, error) {
	keys := make([]string, 0, len(tbl.data))
	for k := range tbl.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	limit := opts.MaxFetchCount
	if tbl.pageCap > 0 && tbl.pageCap < limit {
		limit = tbl.pageCap
	}
	var kvs []*pegasus.KeyValue
	for i, k := range keys {
		c := bytes.Compare([]byte(k), start)
		if c < 0 || (c == 0 && !opts.StartInclusive) {
			continue
		}
		if len(stop) > 0 && bytes.Compare([]byte(k), stop) >= 0 {
			break
		}
		if len(kvs) == limit {
			return kvs, false, nil
		}
		kvs = append(kvs, &pegasus.KeyValue{SortKey: []byte(keys[i]), Value: tbl.data[k]})
	}
	return kvs, true, nil
}

func (tbl *memTable) Close() error { return nil }

func TestPegasusBackend(t *testing.T) {
	db := newPegasusDB("vegas", nil, newMemTable(2))
	defer db.Close()

	_, err := db.Get([]byte("missing"))
	assert.Equal(t, ErrNotFoundInDb, err)
	require.NoError(t, db.Set([]byte("k1"), []byte("v1")))
	v, err := db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	require.NoError(t, db.Delete([]byte("k1")))
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)

	batch := db.NewBatch(true)
	for i := 0; i < 5; i++ {
		batch.Set([]byte(fmt.Sprintf("p-%d", i)), []byte(fmt.Sprintf("%d", i)))
	}
	batch.Set([]byte("q-0"), []byte("q"))
	batch.Set([]byte("o-9"), []byte("o"))
	batch.Delete([]byte("q-0"))
	require.NoError(t, batch.Write())
	_, err = db.Get([]byte("q-0"))
	assert.Equal(t, ErrNotFoundInDb, err)

	// 每页两条, 需要翻三页才能取完 p- 前缀
	h := NewListHelper(db)
	assert.Equal(t, [][]byte{[]byte("0"), []byte("1")}, h.List([]byte("p-"), nil, 2, ListASC))
	assert.Equal(t, [][]byte{[]byte("4"), []byte("3")}, h.List([]byte("p-"), nil, 2, ListDESC))
	assert.Equal(t, [][]byte{[]byte("3"), []byte("4")}, h.List([]byte("p-"), []byte("p-2"), 10, ListASC))
	assert.Equal(t, [][]byte{[]byte("2"), []byte("1")}, h.List([]byte("p-"), []byte("p-25"), 2, ListDESC))
	assert.Equal(t, int64(5), h.PrefixCount([]byte("p-")))
	assert.Nil(t, h.List([]byte("z-"), nil, 10, ListDESC))
}

func TestParsePegasusNodes(t *testing.T) {
	cfg, err := parsePegasusNodes("127.0.0.1:34601, 127.0.0.1:34602,")
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1:34601", "127.0.0.1:34602"}, cfg.MetaServers)
	_, err = parsePegasusNodes(" , ")
	assert.Error(t, err)
}

type mockTable struct {
	pegasus.TableConnector
	mock.Mock
}

func (tbl *mockTable) MultiGetRangeOpt(ctx context.Context, hashKey []byte, start []byte, stop []byte, opts *pegasus.MultiGetOptions) ([]*pegasus.KeyValue, bool, error) {
	args := tbl.Called(hashKey, start, stop)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*pegasus.KeyValue), args.Bool(1), args.Error(2)
}

func TestPegasusIteratorError(t *testing.T) {
	errDown := errors.New("meta server down")
	tbl := new(mockTable)
	tbl.On("MultiGetRangeOpt", pegasusHashKey, []byte("p-"), []byte("p.")).Return(nil, false, errDown)
	db := newPegasusDB("vegas", nil, tbl)

	it := db.Iterator([]byte("p-"), false)
	defer it.Close()
	assert.False(t, it.Rewind())
	assert.Equal(t, errDown, it.Error())
	tbl.AssertExpectations(t)
}
