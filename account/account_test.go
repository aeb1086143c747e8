// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"math"
	"testing"

	dbm "github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV map[string][]byte

func (m memKV) Get(key []byte) ([]byte, error) {
	if v, ok := m[string(key)]; ok {
		return v, nil
	}
	return nil, dbm.ErrNotFoundInDb
}

func (m memKV) Set(key []byte, value []byte) error {
	m[string(key)] = value
	return nil
}

func (m memKV) Begin()        {}
func (m memKV) Rollback()     {}
func (m memKV) Commit() error { return nil }

func TestNewBankAccount(t *testing.T) {
	_, err := NewBankAccount("u-usd", memKV{})
	assert.Equal(t, ErrNameNotAllow, err)
	_, err = NewAccountDB("market", "a-ust", memKV{})
	assert.Equal(t, ErrNameNotAllow, err)

	acc, err := NewBankAccount("uusd", memKV{})
	require.NoError(t, err)
	assert.Equal(t, "mavl-bank-uusd-addr", string(acc.AccountKey("addr")))
}

func TestTransfer(t *testing.T) {
	acc, err := NewBankAccount("uusd", memKV{})
	require.NoError(t, err)

	_, err = acc.Mint("alice", 100)
	require.NoError(t, err)

	receipt, err := acc.Transfer("alice", "bob", 30)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.Logs, 2)

	var log types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &log))
	assert.Equal(t, uint64(100), log.Prev.Balance)
	assert.Equal(t, uint64(70), log.Current.Balance)

	b, err := acc.GetBalance("bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(30), b)

	_, err = acc.Transfer("alice", "bob", 71)
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))

	_, err = acc.Transfer("alice", "bob", 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestMintBurn(t *testing.T) {
	acc, err := NewAccountDB("market", "aust", memKV{})
	require.NoError(t, err)

	_, err = acc.Mint("alice", math.MaxUint64)
	require.NoError(t, err)
	_, err = acc.Mint("alice", 1)
	assert.Equal(t, types.ErrOverflow, err)

	_, err = acc.Burn("alice", math.MaxUint64)
	require.NoError(t, err)
	_, err = acc.Burn("alice", 1)
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
}

func TestMergeReceipt(t *testing.T) {
	r1 := &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: []byte("a")}}}
	r2 := &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: []byte("b")}}, Msgs: []*types.SubMsg{{}}}
	r := MergeReceipt(r1, r2)
	assert.Len(t, r.KV, 2)
	assert.Len(t, r.Msgs, 1)
	assert.Equal(t, r1, MergeReceipt(r1, nil))
	assert.Equal(t, r2, MergeReceipt(nil, r2))
}
