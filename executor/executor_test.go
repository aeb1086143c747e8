// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strconv"
	"strings"
	"testing"

	"github.com/33cn/vegas/common/address"
	dbm "github.com/33cn/vegas/common/db"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demo 执行器: payload 是一条指令, 用来驱动宿主的各个分支
type demo struct {
	drivers.DriverBase
	replies []uint64
}

func newDemo() drivers.Driver {
	d := &demo{}
	d.SetChild(d)
	return d
}

func (d *demo) key(k string) []byte {
	return []byte("mavl-" + d.GetName() + "-" + k)
}

func (d *demo) set(k, v string) *types.KeyValue {
	kv := &types.KeyValue{Key: d.key(k), Value: []byte(v)}
	d.GetStateDB().Set(kv.Key, kv.Value)
	return kv
}

func (d *demo) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var cmd types.ReqString
	if err := drivers.GetPayload(tx, &cmd); err != nil {
		return nil, err
	}
	args := strings.Split(cmd.Data, ":")
	receipt := &types.Receipt{Ty: types.ExecOk}
	switch args[0] {
	case "set":
		receipt.KV = append(receipt.KV, d.set(args[1], args[2]))
	case "fail":
		d.set(args[1], args[2])
		return nil, types.ErrInvalidParam
	case "hidden":
		d.set(args[1], args[2])
	case "foreign":
		kv := &types.KeyValue{Key: []byte("mavl-other-x"), Value: []byte("1")}
		d.GetStateDB().Set(kv.Key, kv.Value)
		receipt.KV = append(receipt.KV, kv)
	case "send":
		amount, _ := strconv.ParseUint(args[2], 10, 64)
		receipt.Msgs = append(receipt.Msgs, types.NewBankSend(args[1], types.NewCoin(types.DefaultDenom, amount)))
	case "call":
		next := &types.ReqString{Data: strings.Join(args[2:], ":")}
		receipt.KV = append(receipt.KV, d.set("caller", tx.From))
		receipt.Msgs = append(receipt.Msgs, types.NewExecMsg(args[1], next).ReplyOnSuccess(7))
	case "loop":
		receipt.Msgs = append(receipt.Msgs, types.NewExecMsg(d.GetName(), &cmd))
	case "empty":
		receipt.Msgs = append(receipt.Msgs, &types.SubMsg{})
	case "query":
		reply, err := d.GetAPI().QueryChain(args[1], "Get", &types.ReqString{Data: args[2]})
		if err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, d.set("seen", reply.(*types.ReqString).Data))
	default:
		return nil, types.ErrActionNotSupport
	}
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: 100, Log: []byte(cmd.Data)})
	return receipt, nil
}

func (d *demo) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, l := range receipt.Logs {
		set.KV = append(set.KV, &types.KeyValue{Key: []byte("LODB-" + d.GetName() + "-" + string(l.Log)), Value: []byte{1}})
	}
	return set, nil
}

func (d *demo) Reply(reply *types.Reply) (*types.Receipt, error) {
	if reply.Id != 7 {
		return nil, types.ErrInvalidReplyID
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{d.set("reply", strconv.Itoa(len(reply.Result.Logs)))}}, nil
}

func (d *demo) Query(funcName string, params []byte) (types.Message, error) {
	var req types.ReqString
	if err := types.Decode(params, &req); err != nil {
		return nil, err
	}
	v, err := d.GetStateDB().Get(d.key(req.Data))
	if err != nil {
		return nil, err
	}
	return &types.ReqString{Data: string(v)}, nil
}

type flatTax struct {
	amount    uint64
	collector string
}

func (t *flatTax) ComputeTax(api drivers.API, coin *types.Coin) (uint64, error) {
	return t.amount, nil
}

func (t *flatTax) Collector() string { return t.collector }

func init() {
	drivers.Register("demo", newDemo, 0)
	drivers.Register("demo2", newDemo, 0)
}

var (
	alice = address.FromSeed("alice")
	bob   = address.FromSeed("bob")
)

func newTestExecutor(t *testing.T) *Executor {
	db, err := dbm.NewDB("exec", dbm.MemDBBackendStr, "", 0)
	require.NoError(t, err)
	e := New(db)
	err = e.Genesis(&types.Genesis{Accounts: []*types.GenesisAccount{
		{Addr: alice, Denom: types.DefaultDenom, Amount: 10000},
	}}, 1000)
	require.NoError(t, err)
	return e
}

func cmdTx(execer, cmd string, funds ...*types.Coin) *types.Transaction {
	return types.CreateTx(execer, &types.ReqString{Data: cmd}, alice, funds...)
}

func getString(t *testing.T, e *Executor, execer, key string) (string, error) {
	reply, err := e.Query(execer, "Get", types.Encode(&types.ReqString{Data: key}))
	if err != nil {
		return "", err
	}
	return reply.(*types.ReqString).Data, nil
}

func TestGenesisAndHeader(t *testing.T) {
	e := newTestExecutor(t)
	h := e.Header()
	assert.Equal(t, int64(1), h.Height)
	assert.Equal(t, int64(1000), h.Blocktime)
	bal, err := e.GetBalance(alice, types.DefaultDenom)
	require.NoError(t, err)
	assert.Equal(t, uint64(10000), bal)

	_, err = e.NextBlock(999)
	assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))
	h, err = e.NextBlock(1005)
	require.NoError(t, err)
	assert.Equal(t, int64(2), h.Height)

	// header survives a restart
	e2 := New(e.db)
	assert.Equal(t, int64(2), e2.Header().Height)
}

func TestExecSetAndFunds(t *testing.T) {
	e := newTestExecutor(t)
	var results []*types.TxResult
	e.Subscribe(func(r *types.TxResult) { results = append(results, r) })

	result, err := e.ExecTx(cmdTx("demo", "set:k:v", types.NewCoin(types.DefaultDenom, 300)))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), result.Receipt.Ty)
	v, err := getString(t, e, "demo", "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	bal, _ := e.GetBalance(drivers.ExecAddress("demo"), types.DefaultDenom)
	assert.Equal(t, uint64(300), bal)
	bal, _ = e.GetBalance(alice, types.DefaultDenom)
	assert.Equal(t, uint64(9700), bal)

	require.Len(t, results, 1)
	assert.Equal(t, "demo", results[0].Execer)

	// local index written after commit
	value, err := e.localDB.Get([]byte("LODB-demo-set:k:v"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, value)
}

func TestExecByAddress(t *testing.T) {
	e := newTestExecutor(t)
	_, err := e.ExecTx(cmdTx(drivers.ExecAddress("demo"), "set:a:1"))
	require.NoError(t, err)
	v, err := getString(t, e, "demo", "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestExecFailRollback(t *testing.T) {
	e := newTestExecutor(t)
	result, err := e.ExecTx(cmdTx("demo", "fail:k:v", types.NewCoin(types.DefaultDenom, 300)))
	assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))
	assert.Equal(t, int32(types.ExecErr), result.Receipt.Ty)
	assert.NotEmpty(t, result.Error)

	_, err = getString(t, e, "demo", "k")
	assert.Equal(t, types.ErrNotFound, err)
	bal, _ := e.GetBalance(alice, types.DefaultDenom)
	assert.Equal(t, uint64(10000), bal)
}

func TestExecKeyChecks(t *testing.T) {
	e := newTestExecutor(t)
	_, err := e.ExecTx(cmdTx("demo", "hidden:k:v"))
	assert.Equal(t, types.ErrNotAllowMemSetKey, err)
	_, err = e.ExecTx(cmdTx("demo", "foreign"))
	assert.Equal(t, types.ErrNotAllowMemSetKey, err)
	_, err = e.ExecTx(cmdTx("nosuch", "set:k:v"))
	assert.Equal(t, types.ErrUnRegistedDriver, errors.Cause(err))
}

func TestBankSendTaxed(t *testing.T) {
	e := newTestExecutor(t)
	collector := address.FromSeed("treasury")
	e.SetTaxPolicy(&flatTax{amount: 2, collector: collector})

	_, err := e.ExecTx(cmdTx("demo", "set:k:v", types.NewCoin(types.DefaultDenom, 100)))
	require.NoError(t, err)
	// user funds are not taxed
	bal, _ := e.GetBalance(collector, types.DefaultDenom)
	assert.Equal(t, uint64(0), bal)

	_, err = e.ExecTx(cmdTx("demo", "send:"+bob+":50"))
	require.NoError(t, err)
	bal, _ = e.GetBalance(bob, types.DefaultDenom)
	assert.Equal(t, uint64(50), bal)
	bal, _ = e.GetBalance(collector, types.DefaultDenom)
	assert.Equal(t, uint64(2), bal)
	bal, _ = e.GetBalance(drivers.ExecAddress("demo"), types.DefaultDenom)
	assert.Equal(t, uint64(48), bal)

	// 48 < 47 + 2
	_, err = e.ExecTx(cmdTx("demo", "send:"+bob+":47"))
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
	bal, _ = e.GetBalance(bob, types.DefaultDenom)
	assert.Equal(t, uint64(50), bal)
}

func TestExecMsgAndReply(t *testing.T) {
	e := newTestExecutor(t)
	_, err := e.ExecTx(cmdTx("demo", "call:demo2:set:x:y"))
	require.NoError(t, err)

	v, err := getString(t, e, "demo2", "x")
	require.NoError(t, err)
	assert.Equal(t, "y", v)
	v, err = getString(t, e, "demo", "reply")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	v, err = getString(t, e, "demo", "caller")
	require.NoError(t, err)
	assert.Equal(t, alice, v)

	// nested failure rolls back the caller too
	_, err = e.ExecTx(cmdTx("demo", "call:demo2:fail:z:1"))
	assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))
	_, err = getString(t, e, "demo2", "z")
	assert.Equal(t, types.ErrNotFound, err)
}

func TestExecDepthAndEmpty(t *testing.T) {
	e := newTestExecutor(t)
	_, err := e.ExecTx(cmdTx("demo", "loop"))
	assert.Equal(t, types.ErrExecDepth, errors.Cause(err))
	_, err = e.ExecTx(cmdTx("demo", "empty"))
	assert.Equal(t, types.ErrEmptySubMsg, errors.Cause(err))
}

func TestQueryChainSeesPending(t *testing.T) {
	e := newTestExecutor(t)
	_, err := e.ExecTx(cmdTx("demo2", "set:p:q"))
	require.NoError(t, err)
	_, err = e.ExecTx(cmdTx("demo", "query:demo2:p"))
	require.NoError(t, err)
	v, err := getString(t, e, "demo", "seen")
	require.NoError(t, err)
	assert.Equal(t, "q", v)
}
