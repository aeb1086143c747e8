// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/33cn/vegas/common/address"
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	"github.com/33cn/vegas/types"
	"github.com/33cn/vegas/util/testnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	beacon = address.FromSeed("beacon")
	other  = address.FromSeed("other")
)

func TestPublish(t *testing.T) {
	node := testnode.New()
	defer node.Close()

	_, err := node.Query(oty.OracleX, "LatestRandomness", &types.ReqNil{})
	assert.True(t, errors.Is(err, oty.ErrNoRandomness))
	_, err = node.SendTx(oty.NewPublishTx(beacon, 1, make([]byte, 32)))
	assert.True(t, errors.Is(err, types.ErrNotInstantiated))

	_, err = node.SendTx(oty.NewInstantiateTx(beacon))
	require.NoError(t, err)
	_, err = node.SendTx(oty.NewInstantiateTx(other))
	assert.True(t, errors.Is(err, types.ErrAlreadyInstantiated))

	r1 := bytes.Repeat([]byte{1}, 32)
	require.NoError(t, node.PublishRandomness(beacon, 5, r1))
	err = node.PublishRandomness(other, 6, r1)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))
	err = node.PublishRandomness(beacon, 5, r1)
	assert.True(t, errors.Is(err, oty.ErrRoundNotIncrease))
	err = node.PublishRandomness(beacon, 6, r1[:31])
	assert.True(t, errors.Is(err, oty.ErrRandomnessLength))

	r2 := bytes.Repeat([]byte{2}, 32)
	require.NoError(t, node.PublishRandomness(beacon, 8, r2))
	reply, err := node.Query(oty.OracleX, "LatestRandomness", &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, uint64(8), reply.(*oty.Randomness).Round)
	assert.Equal(t, r2, reply.(*oty.Randomness).Randomness)

	reply, err = node.Query(oty.OracleX, "GetRandomness", &oty.ReqRound{Round: 5})
	require.NoError(t, err)
	assert.Equal(t, r1, reply.(*oty.Randomness).Randomness)
	_, err = node.Query(oty.OracleX, "GetRandomness", &oty.ReqRound{Round: 6})
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestTransferOwner(t *testing.T) {
	node := testnode.New()
	defer node.Close()
	_, err := node.SendTx(oty.NewInstantiateTx(beacon))
	require.NoError(t, err)

	transfer := func(from, to string) error {
		_, err := node.SendTx(types.CreateTx(oty.OracleX, &oty.OracleAction{Ty: oty.OracleActionTransferOwner, TransferOwner: to}, from))
		return err
	}
	assert.True(t, errors.Is(transfer(other, other), types.ErrUnauthorized))
	assert.True(t, errors.Is(transfer(beacon, "bad"), types.ErrInvalidAddress))
	require.NoError(t, transfer(beacon, other))

	reply, err := node.Query(oty.OracleX, "GetOwner", &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, other, reply.(*types.ReqString).Data)
	require.NoError(t, node.PublishRandomness(other, 1, make([]byte, 32)))
}
