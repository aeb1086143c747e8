// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"errors"
	"testing"

	"github.com/33cn/vegas/common"
	"github.com/33cn/vegas/common/address"
	mty "github.com/33cn/vegas/plugin/dapp/market/types"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/33cn/vegas/util/testnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner = address.FromSeed("owner")
	alice = address.FromSeed("alice")
	denom = types.DefaultDenom
)

func newMarket(t *testing.T, rate string) *testnode.VegasMock {
	node := testnode.New(
		&types.GenesisAccount{Addr: owner, Denom: denom, Amount: 100000},
		&types.GenesisAccount{Addr: alice, Denom: denom, Amount: 100000},
	)
	t.Cleanup(node.Close)
	_, err := node.SendTx(mty.NewInstantiateTx(owner, denom, rate))
	require.NoError(t, err)
	return node
}

func aToken(t *testing.T, node *testnode.VegasMock, addr string) uint64 {
	reply, err := node.Query(mty.MarketX, "Balance", &types.ReqString{Data: addr})
	require.NoError(t, err)
	return reply.(*types.Account).Balance
}

func redeem(node *testnode.VegasMock, from string, amount uint64) error {
	_, err := node.SendTx(types.CreateTx(mty.MarketX, mty.NewRedeemStableAction(amount), from))
	return err
}

func TestDepositAndRedeem(t *testing.T) {
	node := newMarket(t, "1.01")
	_, err := node.SendTx(mty.NewDepositStableTx(alice, types.NewCoin(denom, 1010)))
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), aToken(t, node, alice))
	assert.Equal(t, uint64(100000-1010), node.GetBalance(alice, denom))

	_, err = node.SendTx(mty.NewDepositStableTx(alice, types.NewCoin(denom, 1)))
	assert.True(t, errors.Is(err, mty.ErrZeroMint))
	_, err = node.SendTx(mty.NewDepositStableTx(alice, types.NewCoin("uluna", 1)))
	assert.Error(t, err)

	require.NoError(t, redeem(node, alice, 100))
	assert.Equal(t, uint64(900), aToken(t, node, alice))
	assert.Equal(t, uint64(100000-1010+101), node.GetBalance(alice, denom))
	assert.True(t, errors.Is(redeem(node, alice, 901), types.ErrNoBalance))

	reply, err := node.Query(mty.MarketX, "State", &types.ReqNil{})
	require.NoError(t, err)
	state := reply.(*mty.MarketState)
	assert.Equal(t, uint64(900), state.TotalSupply)
	assert.Equal(t, "1.01", state.ExchangeRate)
}

func TestRedeemTaxed(t *testing.T) {
	node := newMarket(t, "1")
	_, err := node.SendTx(tty.NewInstantiateTx(owner, "0.01"))
	require.NoError(t, err)
	_, err = node.SendTx(tty.NewSetTaxCapTx(owner, denom, 1000))
	require.NoError(t, err)
	_, err = node.SendTx(mty.NewDepositStableTx(alice, types.NewCoin(denom, 1010)))
	require.NoError(t, err)

	// 1010 扣税 10 后发出 1000, 市场另外支付 10 的税
	require.NoError(t, redeem(node, alice, 1010))
	assert.Equal(t, uint64(100000-1010+1000), node.GetBalance(alice, denom))
	assert.Equal(t, uint64(0), node.GetBalance(drivers.ExecAddress(mty.MarketX), denom))
}

func TestExchangeRate(t *testing.T) {
	node := newMarket(t, "1")
	_, err := node.SendTx(mty.NewSetExchangeRateTx(alice, "2"))
	assert.True(t, errors.Is(err, types.ErrUnauthorized))
	_, err = node.SendTx(mty.NewSetExchangeRateTx(owner, "0"))
	assert.True(t, errors.Is(err, mty.ErrExchangeRate))
	_, err = node.SendTx(mty.NewSetExchangeRateTx(owner, "2"))
	require.NoError(t, err)

	_, err = node.SendTx(mty.NewDepositStableTx(alice, types.NewCoin(denom, 100)))
	require.NoError(t, err)
	assert.Equal(t, uint64(50), aToken(t, node, alice))

	_, err = node.SendTx(types.CreateTx(mty.MarketX, &mty.MarketAction{
		Ty:       mty.MarketActionTransferToken,
		Transfer: &mty.TransferToken{To: owner, Amount: 20},
	}, alice))
	require.NoError(t, err)
	assert.Equal(t, uint64(30), aToken(t, node, alice))
	assert.Equal(t, uint64(20), aToken(t, node, owner))
}

func TestTotalSupplyOverflow(t *testing.T) {
	// 100000 铸造 1e19, 两次超过 uint64
	node := newMarket(t, "0.00000000000001")
	_, err := node.SendTx(mty.NewDepositStableTx(owner, types.NewCoin(denom, 100000)))
	require.NoError(t, err)
	assert.Equal(t, uint64(1e19), aToken(t, node, owner))

	_, err = node.SendTx(mty.NewDepositStableTx(alice, types.NewCoin(denom, 100000)))
	assert.True(t, errors.Is(err, common.ErrOverflow))
	assert.Equal(t, uint64(0), aToken(t, node, alice))
	assert.Equal(t, uint64(100000), node.GetBalance(alice, denom))

	reply, err := node.Query(mty.MarketX, "State", &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1e19), reply.(*mty.MarketState).TotalSupply)
}
