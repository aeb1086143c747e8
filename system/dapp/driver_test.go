// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"testing"

	dbm "github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errReadOnly = errors.New("read only")

// kvdb 内存 kv, readOnly 时所有写入失败
type kvdb struct {
	data     map[string][]byte
	readOnly bool
}

func (db *kvdb) Get(key []byte) ([]byte, error) {
	v, ok := db.data[string(key)]
	if !ok || v == nil {
		return nil, dbm.ErrNotFoundInDb
	}
	return v, nil
}

func (db *kvdb) Set(key []byte, value []byte) error {
	if db.readOnly {
		return errReadOnly
	}
	db.data[string(key)] = value
	return nil
}

func (db *kvdb) Begin()        {}
func (db *kvdb) Rollback()     {}
func (db *kvdb) Commit() error { return nil }

func TestSetState(t *testing.T) {
	db := &kvdb{data: make(map[string][]byte)}
	kv, err := SetState(db, []byte("k"), &types.Uint64{Data: 7})
	require.NoError(t, err)
	assert.Equal(t, []byte("k"), kv.Key)

	var v types.Uint64
	require.NoError(t, GetState(db, []byte("k"), &v))
	assert.Equal(t, uint64(7), v.Data)

	kv, err = DelState(db, []byte("k"))
	require.NoError(t, err)
	assert.Nil(t, kv.Value)
	assert.Equal(t, types.ErrNotFound, GetState(db, []byte("k"), &v))

	db.readOnly = true
	kv, err = SetState(db, []byte("k"), &types.Uint64{Data: 8})
	assert.Nil(t, kv)
	assert.True(t, errors.Is(err, errReadOnly))
	_, err = DelState(db, []byte("k"))
	assert.True(t, errors.Is(err, errReadOnly))
}
