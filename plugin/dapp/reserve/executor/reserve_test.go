// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/33cn/vegas/common/address"
	mty "github.com/33cn/vegas/plugin/dapp/market/types"
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	drivers "github.com/33cn/vegas/system/dapp"
	coinsty "github.com/33cn/vegas/system/dapp/coins/types"
	"github.com/33cn/vegas/types"
	"github.com/33cn/vegas/util/testnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fakeGame   = "fakegame"
	fakeMarket = "fakemarket"
)

var (
	owner  = address.FromSeed("owner")
	player = address.FromSeed("player")
	denom  = types.DefaultDenom
)

// fakeGame 执行器: "request:<n>" 向 reserve 请求资金, "deposit:<n>" 把 n 存入 reserve
type game struct {
	drivers.DriverBase
}

func newGame() drivers.Driver {
	g := &game{}
	g.SetChild(g)
	return g
}

func (g *game) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var cmd types.ReqString
	if err := drivers.GetPayload(tx, &cmd); err != nil {
		return nil, err
	}
	args := strings.Split(cmd.Data, ":")
	n, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return nil, err
	}
	var msg *types.SubMsg
	switch args[0] {
	case "request":
		msg = types.NewExecMsg(rty.ReserveX, rty.NewRequestFundsAction(n))
	case "deposit":
		msg = types.NewExecMsg(rty.ReserveX, rty.NewDepositFundsAction(), types.NewCoin(denom, n))
	default:
		return nil, types.ErrActionNotSupport
	}
	return &types.Receipt{Ty: types.ExecOk, Msgs: []*types.SubMsg{msg}}, nil
}

// fakeMarket 执行器: 汇率固定为 1, 赎回时反过来向 reserve 请求资金
type market struct {
	drivers.DriverBase
}

func newMarket() drivers.Driver {
	m := &market{}
	m.SetChild(m)
	return m
}

func (m *market) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action mty.MarketAction
	if err := drivers.GetPayload(tx, &action); err != nil {
		return nil, err
	}
	if action.Ty != mty.MarketActionRedeemStable {
		return nil, types.ErrActionNotSupport
	}
	msg := types.NewExecMsg(rty.ReserveX, rty.NewRequestFundsAction(action.Redeem.Amount))
	return &types.Receipt{Ty: types.ExecOk, Msgs: []*types.SubMsg{msg}}, nil
}

func (m *market) Query(funcName string, params []byte) (types.Message, error) {
	if funcName == "State" {
		return &mty.MarketState{ExchangeRate: "1"}, nil
	}
	return nil, types.ErrQueryNotSupport
}

func init() {
	drivers.Register(fakeGame, newGame, 0)
	drivers.Register(fakeMarket, newMarket, 0)
}

type reserveEnv struct {
	t    *testing.T
	node *testnode.VegasMock
}

// newReserveEnv reserve 原生币余额 funds, market 汇率 rate
func newReserveEnv(t *testing.T, funds uint64, threshold uint64, rate string) *reserveEnv {
	node := testnode.New(
		&types.GenesisAccount{Addr: owner, Denom: denom, Amount: 1000000},
		&types.GenesisAccount{Addr: player, Denom: denom, Amount: 1000000},
	)
	t.Cleanup(node.Close)
	env := &reserveEnv{t: t, node: node}
	env.mustSend(mty.NewInstantiateTx(owner, denom, rate))
	env.mustSend(rty.NewInstantiateTx(owner, &rty.ReserveConfig{Market: mty.MarketX, NativeDenom: denom, Threshold: threshold}))
	env.mustSend(rty.NewAddGameTx(owner, gameAddr()))
	if funds > 0 {
		env.mustSend(coinsty.NewTransfer(owner, reserveAddr(), types.NewCoin(denom, funds)))
	}
	return env
}

func gameAddr() string {
	return drivers.ExecAddress(fakeGame)
}

func reserveAddr() string {
	return drivers.ExecAddress(rty.ReserveX)
}

func (env *reserveEnv) send(tx *types.Transaction) error {
	_, err := env.node.SendTx(tx)
	return err
}

func (env *reserveEnv) mustSend(tx *types.Transaction) {
	require.NoError(env.t, env.send(tx))
}

func (env *reserveEnv) gameCmd(cmd string, funds ...*types.Coin) error {
	return env.send(types.CreateTx(fakeGame, &types.ReqString{Data: cmd}, player, funds...))
}

func (env *reserveEnv) balance(addr string) uint64 {
	return env.node.GetBalance(addr, denom)
}

func (env *reserveEnv) aToken(addr string) uint64 {
	reply, err := env.node.Query(mty.MarketX, "Balance", &types.ReqString{Data: addr})
	require.NoError(env.t, err)
	return reply.(*types.Account).Balance
}

func (env *reserveEnv) currentBalance() uint64 {
	reply, err := env.node.Query(rty.ReserveX, "CurrentBalance", &types.ReqNil{})
	require.NoError(env.t, err)
	return reply.(*rty.CurrentBalance).Balance
}

func TestGames(t *testing.T) {
	env := newReserveEnv(t, 0, 0, "1")
	reply, err := env.node.Query(rty.ReserveX, "ListGames", &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, []string{gameAddr()}, reply.(*types.ReplyStrings).Datas)

	err = env.send(rty.NewAddGameTx(player, "dice"))
	assert.True(t, errors.Is(err, types.ErrUnauthorized))
	env.mustSend(rty.NewAddGameTx(owner, "dice"))
	env.mustSend(rty.NewAddGameTx(owner, "dice"))
	reply, err = env.node.Query(rty.ReserveX, "ListGames", &types.ReqNil{})
	require.NoError(t, err)
	assert.Len(t, reply.(*types.ReplyStrings).Datas, 2)

	env.mustSend(rty.NewRemoveGameTx(owner, "dice"))
	err = env.send(rty.NewRemoveGameTx(owner, "dice"))
	assert.True(t, errors.Is(err, rty.ErrGameNotFound))
	err = env.send(rty.NewAddGameTx(owner, "not-an-address"))
	assert.True(t, errors.Is(err, types.ErrInvalidAddress))

	// 没有授权的调用方
	err = env.send(types.CreateTx(rty.ReserveX, rty.NewRequestFundsAction(1), player))
	assert.True(t, errors.Is(err, types.ErrUnauthorized))
}

func TestRequestFromNative(t *testing.T) {
	env := newReserveEnv(t, 100, 0, "1.01")
	require.NoError(t, env.gameCmd("request:69"))
	assert.Equal(t, uint64(69), env.balance(gameAddr()))
	assert.Equal(t, uint64(31), env.balance(reserveAddr()))
}

func TestRequestFromMarket(t *testing.T) {
	env := newReserveEnv(t, 100, 0, "1.01")
	// owner 存入 1010, 得到 1000 aToken, 转 100 给 reserve
	env.mustSend(mty.NewDepositStableTx(owner, types.NewCoin(denom, 1010)))
	assert.Equal(t, uint64(1000), env.aToken(owner))
	env.mustSend(types.CreateTx(mty.MarketX, &mty.MarketAction{
		Ty:       mty.MarketActionTransferToken,
		Transfer: &mty.TransferToken{To: reserveAddr(), Amount: 100},
	}, owner))
	assert.Equal(t, uint64(100+101), env.currentBalance())

	// 需要 200 - 100 + 1 = 101, 赎回 floor(101 / 1.01) = 100 aToken
	require.NoError(t, env.gameCmd("request:200"))
	assert.Equal(t, uint64(200), env.balance(gameAddr()))
	assert.Equal(t, uint64(1), env.balance(reserveAddr()))
	assert.Equal(t, uint64(0), env.aToken(reserveAddr()))

	reply, err := env.node.Query(rty.ReserveX, "PendingRequest", &types.ReqNil{})
	require.NoError(t, err)
	pending := reply.(*rty.PendingRequest)
	assert.Equal(t, int32(rty.RequestSettled), pending.State)
	assert.Equal(t, gameAddr(), pending.Requester)
	assert.Equal(t, uint64(200), pending.Amount)
	assert.NotEmpty(t, pending.Correlation)
}

func TestRequestInsufficient(t *testing.T) {
	env := newReserveEnv(t, 100, 0, "1")
	// reserve 没有 aToken, 赎回失败, 整笔交易回滚
	err := env.gameCmd("request:200")
	assert.Error(t, err)
	assert.Equal(t, uint64(100), env.balance(reserveAddr()))
	_, err = env.node.Query(rty.ReserveX, "PendingRequest", &types.ReqNil{})
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestRequestPending(t *testing.T) {
	node := testnode.New(
		&types.GenesisAccount{Addr: owner, Denom: denom, Amount: 1000000},
		&types.GenesisAccount{Addr: player, Denom: denom, Amount: 1000000},
	)
	t.Cleanup(node.Close)
	env := &reserveEnv{t: t, node: node}
	env.mustSend(rty.NewInstantiateTx(owner, &rty.ReserveConfig{Market: fakeMarket, NativeDenom: denom}))
	env.mustSend(rty.NewAddGameTx(owner, gameAddr()))
	env.mustSend(rty.NewAddGameTx(owner, drivers.ExecAddress(fakeMarket)))
	env.mustSend(coinsty.NewTransfer(owner, reserveAddr(), types.NewCoin(denom, 100)))

	// 第一个请求等待赎回时收到第二个请求, 拒绝并回滚整笔交易
	err := env.gameCmd("request:200")
	assert.True(t, errors.Is(err, rty.ErrRequestPending))
	assert.Equal(t, uint64(100), env.balance(reserveAddr()))
	assert.Equal(t, uint64(0), env.balance(gameAddr()))
	_, err = env.node.Query(rty.ReserveX, "PendingRequest", &types.ReqNil{})
	assert.True(t, errors.Is(err, types.ErrNotFound))

	// 余额足够时直接转账, 不经过市场
	require.NoError(t, env.gameCmd("request:60"))
	assert.Equal(t, uint64(60), env.balance(gameAddr()))
}

func TestDepositToMarket(t *testing.T) {
	env := newReserveEnv(t, 1000, 1000, "1")
	require.NoError(t, env.gameCmd("deposit:0"))

	// 游戏存入 1100, 余额 2100 超过阈值 1000, 多出的 1100 存入市场
	env.mustSend(coinsty.NewTransfer(player, gameAddr(), types.NewCoin(denom, 1100)))
	require.NoError(t, env.gameCmd("deposit:1100"))
	assert.Equal(t, uint64(1000), env.balance(reserveAddr()))
	assert.Equal(t, uint64(1100), env.aToken(reserveAddr()))
	assert.Equal(t, uint64(2100), env.currentBalance())

	reply, err := env.node.Query(rty.ReserveX, "BalanceHistory", &rty.ReqHistory{})
	require.NoError(t, err)
	points := reply.(*rty.BalanceHistory).Points
	require.Len(t, points, 1)
	assert.Equal(t, uint64(1000), points[0].Balance)
}

func TestBalanceHistoryPaging(t *testing.T) {
	env := newReserveEnv(t, 10, 1000000, "1")
	for i := 0; i < 3; i++ {
		env.node.WaitSeconds(5)
		require.NoError(t, env.gameCmd("deposit:0"))
	}
	reply, err := env.node.Query(rty.ReserveX, "BalanceHistory", &rty.ReqHistory{Limit: 2})
	require.NoError(t, err)
	points := reply.(*rty.BalanceHistory).Points
	require.Len(t, points, 2)
	assert.True(t, points[0].Height < points[1].Height)

	reply, err = env.node.Query(rty.ReserveX, "BalanceHistory", &rty.ReqHistory{StartAfter: points[1].Height})
	require.NoError(t, err)
	require.Len(t, reply.(*rty.BalanceHistory).Points, 1)
}

func TestThreshold(t *testing.T) {
	env := newReserveEnv(t, 0, 10, "1")
	err := env.send(rty.NewChangeThresholdTx(player, 20))
	assert.True(t, errors.Is(err, types.ErrUnauthorized))
	env.mustSend(rty.NewChangeThresholdTx(owner, 20))
	reply, err := env.node.Query(rty.ReserveX, "GetThreshold", &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, uint64(20), reply.(*types.Uint64).Data)

	err = env.send(types.CreateTx(rty.ReserveX, &rty.ReserveAction{Ty: rty.ReserveActionChangeThreshold, Threshold: 1}, owner, types.NewCoin(denom, 1)))
	assert.True(t, errors.Is(err, types.ErrNonPayable))
}
