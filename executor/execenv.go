// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/vegas/account"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
)

// localCall 提交成功后需要执行 ExecLocal 的调用
type localCall struct {
	driver  drivers.Driver
	tx      *types.Transaction
	receipt *types.ReceiptData
	index   int
}

// execEnv 一笔外部交易的执行环境, 包含它触发的所有子消息
type execEnv struct {
	e      *Executor
	txhash []byte
	logs   []*types.ReceiptLog
	locals []*localCall
	index  int
}

func newExecEnv(e *Executor, tx *types.Transaction) *execEnv {
	return &execEnv{e: e, txhash: tx.Hash()}
}

// execTx 执行一笔交易, depth > 0 表示由合约发起
func (env *execEnv) execTx(tx *types.Transaction, depth int) (*types.ReceiptData, error) {
	if depth > types.MaxExecDepth {
		return nil, types.ErrExecDepth
	}
	d, err := env.e.loadDriver(tx.ExecerName(), env.txhash)
	if err != nil {
		return nil, err
	}
	execaddr := d.GetExecAddress()
	for _, coin := range tx.GetFunds() {
		if coin.GetAmount() == 0 {
			continue
		}
		if err := env.send(tx.From, execaddr, coin, depth > 0); err != nil {
			return nil, errors.Wrapf(err, "send funds to %s", d.GetName())
		}
	}
	index := env.index
	env.index++
	env.e.stateDB.StartTx()
	receipt, err := d.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	data, err := env.checkReceipt(d, receipt)
	if err != nil {
		return nil, err
	}
	env.locals = append(env.locals, &localCall{driver: d, tx: tx, receipt: data, index: index})
	for _, msg := range receipt.GetMsgs() {
		if err := env.dispatch(d, tx, msg, depth); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// checkReceipt 检查合约只修改了自己的状态, 并记录日志
func (env *execEnv) checkReceipt(d drivers.Driver, receipt *types.Receipt) (*types.ReceiptData, error) {
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	if err := checkKV(env.e.stateDB.GetSetKeys(), receipt.KV); err != nil {
		return nil, err
	}
	if err := checkPrefix(d.GetName(), receipt.KV); err != nil {
		return nil, err
	}
	env.logs = append(env.logs, receipt.Logs...)
	return &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, nil
}

// dispatch 按顺序处理合约返回的子消息, 任何一个失败整笔交易失败
func (env *execEnv) dispatch(d drivers.Driver, tx *types.Transaction, msg *types.SubMsg, depth int) error {
	var result *types.ReceiptData
	var err error
	execaddr := d.GetExecAddress()
	switch {
	case msg.Bank != nil:
		result = &types.ReceiptData{Ty: types.ExecOk}
		for _, coin := range msg.Bank.Amount {
			if coin.GetAmount() == 0 {
				continue
			}
			if err = env.send(execaddr, msg.Bank.To, coin, true); err != nil {
				return errors.Wrapf(err, "bank send from %s", d.GetName())
			}
		}
	case msg.Exec != nil:
		sub := &types.Transaction{
			Execer:  []byte(drivers.GetExecName(msg.Exec.Contract)),
			Payload: msg.Exec.Payload,
			From:    execaddr,
			Funds:   msg.Exec.Funds,
		}
		result, err = env.execTx(sub, depth+1)
		if err != nil {
			return err
		}
	default:
		return types.ErrEmptySubMsg
	}
	if msg.ReplyOn != types.ReplySuccess {
		return nil
	}
	env.e.stateDB.StartTx()
	receipt, err := d.Reply(&types.Reply{Id: msg.Id, Result: result})
	if err != nil {
		return err
	}
	data, err := env.checkReceipt(d, receipt)
	if err != nil {
		return err
	}
	env.locals = append(env.locals, &localCall{driver: d, tx: tx, receipt: data, index: env.index})
	env.index++
	for _, m := range receipt.GetMsgs() {
		if err := env.dispatch(d, tx, m, depth); err != nil {
			return err
		}
	}
	return nil
}

// send 原生币转账. 合约转出时发送方额外支付税
func (env *execEnv) send(from, to string, coin *types.Coin, taxed bool) error {
	bank, err := account.NewBankAccount(coin.GetDenom(), env.e.stateDB)
	if err != nil {
		return err
	}
	receipt, err := bank.Transfer(from, to, coin.GetAmount())
	if err != nil {
		return err
	}
	env.logs = append(env.logs, receipt.Logs...)
	if !taxed || env.e.tax == nil {
		return nil
	}
	tax, err := env.e.tax.ComputeTax(&execAPI{e: env.e}, coin)
	if err != nil {
		return err
	}
	if tax == 0 {
		return nil
	}
	receipt, err = bank.Transfer(from, env.e.tax.Collector(), tax)
	if err != nil {
		return errors.Wrapf(err, "pay tax %d%s", tax, coin.GetDenom())
	}
	env.logs = append(env.logs, receipt.Logs...)
	return nil
}

// execLocal 状态提交之后建立本地索引, 失败不影响交易结果
func (env *execEnv) execLocal() error {
	ldb := env.e.localDB
	for _, call := range env.locals {
		ldb.Begin()
		set, err := call.driver.ExecLocal(call.tx, call.receipt, call.index)
		if err == nil {
			for _, kv := range set.GetKV() {
				if !isAllowLocalKey(kv.GetKey(), call.driver.GetName()) {
					err = errors.Wrapf(types.ErrNotAllowMemSetKey, "local key %s", string(kv.GetKey()))
					break
				}
				if err = ldb.Set(kv.GetKey(), kv.GetValue()); err != nil {
					break
				}
			}
		}
		if err != nil {
			ldb.Rollback()
			return err
		}
		if err := ldb.Commit(); err != nil {
			return err
		}
	}
	return nil
}
