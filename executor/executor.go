// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 执行交易的宿主环境: 资金划转, 合约执行, 子消息, 原子提交
package executor

import (
	"sync"
	"time"

	"github.com/33cn/vegas/account"
	dbm "github.com/33cn/vegas/common/db"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

var headerKey = []byte("vegas-header")

// TaxPolicy 合约转出原生币时收取的税, 由发送方在金额之外额外支付
type TaxPolicy interface {
	ComputeTax(api drivers.API, coin *types.Coin) (uint64, error)
	Collector() string
}

// Executor 交易执行器. 所有交易和查询串行执行
type Executor struct {
	mu        sync.Mutex
	db        dbm.DB
	stateDB   *StateDB
	localDB   *LocalDB
	header    *types.Header
	tax       TaxPolicy
	listeners []func(*types.TxResult)

	txTimer   gometrics.Timer
	txFail    gometrics.Counter
	txSuccess gometrics.Counter
}

// New 创建执行器, 从数据库恢复区块头
func New(db dbm.DB) *Executor {
	e := &Executor{
		db:        db,
		stateDB:   NewStateDB(db),
		localDB:   NewLocalDB(db),
		header:    &types.Header{},
		txTimer:   gometrics.GetOrRegisterTimer("exec.tx", nil),
		txFail:    gometrics.GetOrRegisterCounter("exec.tx.fail", nil),
		txSuccess: gometrics.GetOrRegisterCounter("exec.tx.ok", nil),
	}
	if value, err := db.Get(headerKey); err == nil {
		if err := types.Decode(value, e.header); err != nil {
			panic(err)
		}
	}
	return e
}

// SetTaxPolicy 设置税收策略, nil 表示不收税
func (e *Executor) SetTaxPolicy(tax TaxPolicy) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tax = tax
}

// Subscribe 每笔交易执行后回调, 在执行锁内调用
func (e *Executor) Subscribe(fn func(*types.TxResult)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// Header 当前区块头
func (e *Executor) Header() *types.Header {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &types.Header{Height: e.header.Height, Blocktime: e.header.Blocktime}
}

// NextBlock 进入下一个区块
func (e *Executor) NextBlock(blocktime int64) (*types.Header, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if blocktime < e.header.Blocktime {
		return nil, errors.Wrapf(types.ErrInvalidParam, "blocktime %d before %d", blocktime, e.header.Blocktime)
	}
	e.header.Height++
	e.header.Blocktime = blocktime
	if err := e.db.SetSync(headerKey, types.Encode(e.header)); err != nil {
		return nil, err
	}
	return &types.Header{Height: e.header.Height, Blocktime: e.header.Blocktime}, nil
}

// Genesis 创世分配, 只在高度 0 执行一次
func (e *Executor) Genesis(genesis *types.Genesis, blocktime int64) error {
	e.mu.Lock()
	if e.header.Height > 0 {
		e.mu.Unlock()
		return nil
	}
	e.stateDB.Begin()
	for _, acc := range genesis.Accounts {
		bank, err := account.NewBankAccount(acc.Denom, e.stateDB)
		if err == nil {
			_, err = bank.Mint(acc.Addr, acc.Amount)
		}
		if err != nil {
			e.stateDB.Rollback()
			e.mu.Unlock()
			return errors.Wrapf(err, "genesis %s", acc.Addr)
		}
		elog.Info("genesis", "addr", acc.Addr, "denom", acc.Denom, "amount", acc.Amount)
	}
	err := e.stateDB.Commit()
	e.mu.Unlock()
	if err != nil {
		return err
	}
	_, err = e.NextBlock(blocktime)
	return err
}

// ExecTx 执行一笔交易. 出错时交易的所有修改都会回滚
func (e *Executor) ExecTx(tx *types.Transaction) (*types.TxResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	start := time.Now()
	defer e.txTimer.UpdateSince(start)

	env := newExecEnv(e, tx)
	result := &types.TxResult{
		Hash:      env.txhash,
		Height:    e.header.Height,
		Blocktime: e.header.Blocktime,
		Execer:    tx.ExecerName(),
	}
	e.stateDB.Begin()
	receipt, err := env.execTx(tx, 0)
	if err == nil {
		err = e.stateDB.Commit()
	} else {
		e.stateDB.Rollback()
	}
	if err != nil {
		e.txFail.Inc(1)
		elog.Error("exec tx error", "execer", tx.ExecerName(), "from", tx.From, "err", err)
		result.Error = err.Error()
		result.Receipt = &types.ReceiptData{Ty: types.ExecErr}
		e.notify(result)
		return result, err
	}
	e.txSuccess.Inc(1)
	receipt.Logs = env.logs
	result.Receipt = receipt
	if err := env.execLocal(); err != nil {
		elog.Error("exec local error", "execer", tx.ExecerName(), "err", err)
	}
	elog.Debug("exec tx", "execer", tx.ExecerName(), "from", tx.From, "height", e.header.Height, "logs", len(env.logs))
	e.notify(result)
	return result, nil
}

func (e *Executor) notify(result *types.TxResult) {
	for _, fn := range e.listeners {
		fn(result)
	}
}

// Query 查询合约状态
func (e *Executor) Query(execer string, funcName string, params []byte) (types.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query(execer, funcName, params)
}

// query 不加锁, 合约执行期间的跨合约查询会读到本交易未提交的修改
func (e *Executor) query(execer string, funcName string, params []byte) (types.Message, error) {
	d, err := e.loadDriver(execer, nil)
	if err != nil {
		return nil, err
	}
	return d.Query(funcName, params)
}

// GetBalance 原生币余额
func (e *Executor) GetBalance(addr, denom string) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.getBalance(addr, denom)
}

func (e *Executor) getBalance(addr, denom string) (uint64, error) {
	bank, err := account.NewBankAccount(denom, e.stateDB)
	if err != nil {
		return 0, err
	}
	return bank.GetBalance(addr)
}

func (e *Executor) loadDriver(execer string, txhash []byte) (drivers.Driver, error) {
	d, err := drivers.LoadDriver(execer, e.header.Height)
	if err != nil {
		return nil, errors.Wrapf(err, "execer %s", execer)
	}
	d.SetName(drivers.GetExecName(execer))
	d.SetStateDB(e.stateDB)
	d.SetLocalDB(e.localDB)
	d.SetAPI(&execAPI{e: e})
	d.SetEnv(e.header.Height, e.header.Blocktime)
	d.SetTxHash(txhash)
	return d, nil
}

type execAPI struct {
	e *Executor
}

func (api *execAPI) QueryChain(execer string, funcName string, param types.Message) (types.Message, error) {
	return api.e.query(execer, funcName, types.Encode(param))
}

func (api *execAPI) GetBalance(addr, denom string) (uint64, error) {
	return api.e.getBalance(addr, denom)
}
