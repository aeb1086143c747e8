// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxHash(t *testing.T) {
	tx := CreateTx("coinflip", &ReqString{Data: "x"}, "addr", NewCoin("uusd", 10))
	h1 := tx.Hash()
	tx.Nonce = 1
	assert.NotEqual(t, h1, tx.Hash())
	assert.Len(t, h1, 32)

	var tx2 Transaction
	require.NoError(t, Decode(Encode(tx), &tx2))
	assert.Equal(t, tx.Hash(), tx2.Hash())
	assert.Equal(t, "coinflip", tx2.ExecerName())
}

func TestJSON(t *testing.T) {
	coin := NewCoin("uusd", 42)
	data, err := PBToJSON(coin)
	require.NoError(t, err)
	var back Coin
	require.NoError(t, JSONToPB(data, &back))
	assert.Equal(t, uint64(42), back.Amount)
}

func TestMustPay(t *testing.T) {
	_, err := MustPay(nil, "uusd")
	assert.Equal(t, ErrNoFunds, err)

	_, err = MustPay([]*Coin{NewCoin("uusd", 1), NewCoin("uluna", 1)}, "uusd")
	assert.Equal(t, ErrMultipleDenoms, err)

	_, err = MustPay([]*Coin{NewCoin("uluna", 1)}, "uusd")
	assert.Equal(t, ErrMissingDenom, errors.Cause(err))

	_, err = MustPay([]*Coin{NewCoin("uusd", 0)}, "uusd")
	assert.Equal(t, ErrNoFunds, err)

	amount, err := MustPay([]*Coin{NewCoin("uusd", 7)}, "uusd")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), amount)

	assert.Equal(t, ErrNonPayable, Nonpayable([]*Coin{NewCoin("uusd", 7)}))
	assert.NoError(t, Nonpayable(nil))
}

func TestDecimal(t *testing.T) {
	d, err := ParseDec("0.1234567890123456789999")
	require.NoError(t, err)
	assert.Equal(t, "0.123456789012345678", FormatDec(d))

	_, err = ParseDec("-1")
	assert.Equal(t, ErrInvalidDecimal, errors.Cause(err))
	_, err = ParseDec("abc")
	assert.Equal(t, ErrInvalidDecimal, errors.Cause(err))

	v, err := MulFloor(1000, MustParseDec("0.188"))
	require.NoError(t, err)
	assert.Equal(t, uint64(188), v)

	v, err = MulFloor(188, MustParseDec("0.99"))
	require.NoError(t, err)
	assert.Equal(t, uint64(186), v)

	v, err = QuoFloor(101, MustParseDec("1.01"))
	require.NoError(t, err)
	assert.Equal(t, uint64(100), v)

	_, err = QuoFloor(1, DecZero)
	assert.Equal(t, ErrDivByZero, err)

	q, err := QuoDec(MustParseDec("35.64"), MustParseDec("35"))
	require.NoError(t, err)
	assert.Equal(t, "1.018285714285714285", FormatDec(q))

	_, err = MulFloor(^uint64(0), MustParseDec("2"))
	assert.Equal(t, ErrOverflow, err)
}

func TestInitCfgString(t *testing.T) {
	cfg, sub, err := InitCfgString(`
Title="local"
[log]
loglevel="debug"
[store]
driver="memdb"
[consensus]
blockInterval=1
[genesis]
owner="owner"
[[genesis.accounts]]
addr="a"
denom="uusd"
amount=100
[exec.sub.coinflip]
randomnessGracePeriod=15
`)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "localhost:8801", cfg.RPC.JrpcBindAddr)
	assert.Equal(t, int64(1), cfg.Consensus.BlockInterval)
	require.Len(t, cfg.Genesis.Accounts, 1)
	assert.Equal(t, uint64(100), cfg.Genesis.Accounts[0].Amount)
	assert.JSONEq(t, `{"randomnessGracePeriod":15}`, string(sub["coinflip"]))
}

func TestReplyGetId(t *testing.T) {
	var r *Reply
	assert.Equal(t, uint64(0), r.GetId())
	r = &Reply{Id: 3}
	assert.Equal(t, uint64(3), r.GetId())
}
