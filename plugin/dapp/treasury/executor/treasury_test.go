// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"errors"
	"testing"

	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	"github.com/33cn/vegas/types"
	"github.com/33cn/vegas/util/testnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreasuryConfig(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()

	_, err := mock.Query(tty.TreasuryX, "TaxRate", &types.ReqNil{})
	assert.True(t, errors.Is(err, types.ErrNotInstantiated))

	_, err = mock.SendTx(tty.NewInstantiateTx("gov", "1"))
	assert.True(t, errors.Is(err, tty.ErrTaxRate))
	_, err = mock.SendTx(tty.NewInstantiateTx("gov", "0.01"))
	require.NoError(t, err)
	_, err = mock.SendTx(tty.NewInstantiateTx("gov", "0.02"))
	assert.True(t, errors.Is(err, types.ErrAlreadyInstantiated))

	msg, err := mock.Query(tty.TreasuryX, "TaxRate", &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, "0.01", msg.(*tty.TaxRate).Rate)

	_, err = mock.SendTx(tty.NewSetTaxRateTx("mallory", "0.05"))
	assert.True(t, errors.Is(err, types.ErrUnauthorized))
	_, err = mock.SendTx(tty.NewSetTaxRateTx("gov", "0.005"))
	require.NoError(t, err)
	msg, err = mock.Query(tty.TreasuryX, "TaxRate", &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, "0.005", msg.(*tty.TaxRate).Rate)

	msg, err = mock.Query(tty.TreasuryX, "TaxCap", &types.ReqString{Data: types.DefaultDenom})
	require.NoError(t, err)
	assert.False(t, msg.(*tty.TaxCap).Capped)

	_, err = mock.SendTx(tty.NewSetTaxCapTx("gov", types.DefaultDenom, 1000))
	require.NoError(t, err)
	msg, err = mock.Query(tty.TreasuryX, "TaxCap", &types.ReqString{Data: types.DefaultDenom})
	require.NoError(t, err)
	capacity := msg.(*tty.TaxCap)
	assert.True(t, capacity.Capped)
	assert.Equal(t, uint64(1000), capacity.Cap)

	_, err = mock.SendTx(tty.NewSetTaxCapTx("gov", "", 1000))
	assert.True(t, errors.Is(err, types.ErrInvalidParam))
}
