// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/vegas/account"
	"github.com/33cn/vegas/common/address"
	dbm "github.com/33cn/vegas/common/db"
	cty "github.com/33cn/vegas/system/dapp/coins/types"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	data map[string][]byte
}

func (m *memKV) Get(key []byte) ([]byte, error) {
	v, ok := m.data[string(key)]
	if !ok {
		return nil, types.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(key []byte, value []byte) error {
	m.data[string(key)] = value
	return nil
}

func (m *memKV) Begin()        {}
func (m *memKV) Rollback()     {}
func (m *memKV) Commit() error { return nil }

var _ dbm.KV = &memKV{}

func TestCoinsTransfer(t *testing.T) {
	kv := &memKV{data: make(map[string][]byte)}
	alice := address.FromSeed("alice")
	bob := address.FromSeed("bob")
	bank, err := account.NewBankAccount(types.DefaultDenom, kv)
	require.NoError(t, err)
	_, err = bank.Mint(alice, 100)
	require.NoError(t, err)

	c := newCoins().(*Coins)
	c.SetName(driverName)
	c.SetStateDB(kv)

	tx := cty.NewTransfer(alice, bob, types.NewCoin(types.DefaultDenom, 40))
	receipt, err := c.Exec(tx, 0)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	bal, _ := bank.GetBalance(bob)
	assert.Equal(t, uint64(40), bal)

	tx = cty.NewTransfer(alice, bob, types.NewCoin(types.DefaultDenom, 61))
	_, err = c.Exec(tx, 0)
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))

	tx = cty.NewTransfer(alice, "bad", types.NewCoin(types.DefaultDenom, 1))
	_, err = c.Exec(tx, 0)
	assert.Equal(t, types.ErrInvalidAddress, err)

	reply, err := c.Query("GetBalance", types.Encode(&types.ReqBalance{Addr: alice, Denom: types.DefaultDenom}))
	require.NoError(t, err)
	assert.Equal(t, uint64(60), reply.(*types.Account).Balance)
}
