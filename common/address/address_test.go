// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	farm "github.com/dgryski/go-farm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	a1 := ExecAddress("coinflip")
	a2 := ExecAddress("dice")
	assert.NotEqual(t, a1, a2)
	assert.Equal(t, a1, ExecAddress("coinflip"))
	require.NoError(t, CheckAddress(a1))
}

func TestExecAddressCache(t *testing.T) {
	addr := ExecAddress("market")
	key := execKey(farm.Hash64([]byte("market")))
	value, ok := addressCache.Get(key)
	require.True(t, ok)
	assert.Equal(t, &execEntry{name: "market", addr: addr}, value)

	// 同一个 key 下放一个别的名字, 不能返回错误的地址
	addressCache.Add(key, &execEntry{name: "reserve", addr: ExecAddress("reserve")})
	assert.Equal(t, PubKeyToAddress(ExecPubKey("market")).String(), ExecAddress("market"))
	value, _ = addressCache.Get(key)
	assert.Equal(t, "market", value.(*execEntry).name)
}

func TestCheckAddress(t *testing.T) {
	addr := FromSeed("alice")
	require.NoError(t, CheckAddress(addr))

	a, err := NewAddrFromString(addr)
	require.NoError(t, err)
	assert.Equal(t, addr, a.String())

	err = CheckAddress("not-an-address")
	assert.Error(t, err)

	// flip the last character to break the checksum
	b := []byte(addr)
	if b[len(b)-1] == '2' {
		b[len(b)-1] = '3'
	} else {
		b[len(b)-1] = '2'
	}
	_, err = NewAddrFromString(string(b))
	require.Error(t, err)
	cause := errors.Cause(err)
	assert.True(t, cause == ErrChecksum || cause == ErrLength)
}
