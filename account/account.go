// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package account 资产账户: 原生币按 denom 记账, 合约发行的资产按 execer+symbol 记账
package account

import (
	"strings"

	"github.com/33cn/vegas/common"
	dbm "github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var alog = log.New("module", "account")

//ErrNameNotAllow denom/execer/symbol 不能包含 "-"
var ErrNameNotAllow = errors.New("ErrAccountNameNotAllow")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	denom            string
}

//NewBankAccount 原生币账户
func NewBankAccount(denom string, db dbm.KV) (*DB, error) {
	if denom == "" || strings.ContainsRune(denom, '-') {
		return nil, ErrNameNotAllow
	}
	acc := newAccountDB("mavl-bank-" + denom + "-")
	acc.denom = denom
	return acc.SetDB(db), nil
}

//NewAccountDB 合约资产账户, 例如 market 发行的 aToken
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	if strings.ContainsRune(execer, '-') || strings.ContainsRune(symbol, '-') {
		return nil, ErrNameNotAllow
	}
	acc := newAccountDB(SymbolPrefix(execer, symbol))
	acc.denom = symbol
	return acc.SetDB(db), nil
}

func newAccountDB(prefix string) *DB {
	return &DB{accountKeyPerfix: []byte(prefix)}
}

//SetDB 设置状态数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

//Denom 币种
func (acc *DB) Denom() string {
	return acc.denom
}

//LoadAccount 读取账户, 不存在时返回 0 余额
func (acc *DB) LoadAccount(addr string) (*types.Account, error) {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err == dbm.ErrNotFoundInDb || err == types.ErrNotFound {
		return &types.Account{Denom: acc.denom, Addr: addr}, nil
	}
	if err != nil {
		return nil, err
	}
	var acc1 types.Account
	if err := types.Decode(value, &acc1); err != nil {
		alog.Error("LoadAccount decode", "addr", addr, "err", err)
		return nil, errors.Wrap(types.ErrDecode, err.Error())
	}
	return &acc1, nil
}

//GetBalance 余额
func (acc *DB) GetBalance(addr string) (uint64, error) {
	a, err := acc.LoadAccount(addr)
	if err != nil {
		return 0, err
	}
	return a.Balance, nil
}

//Transfer from -> to
func (acc *DB) Transfer(from, to string, amount uint64) (*types.Receipt, error) {
	if amount == 0 {
		return nil, types.ErrAmount
	}
	if from == to {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return nil, err
	}
	accTo, err := acc.LoadAccount(to)
	if err != nil {
		return nil, err
	}
	if accFrom.Balance < amount {
		return nil, errors.Wrapf(types.ErrNoBalance, "%s has %d%s, need %d", from, accFrom.Balance, acc.denom, amount)
	}
	copyfrom := *accFrom
	copyto := *accTo
	accFrom.Balance -= amount
	accTo.Balance, err = common.SafeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo,
		&types.ReceiptAccountTransfer{Prev: &copyfrom, Current: accFrom},
		&types.ReceiptAccountTransfer{Prev: &copyto, Current: accTo}), nil
}

//Mint 增发到 addr, 用于创世分配和合约资产发行
func (acc *DB) Mint(addr string, amount uint64) (*types.Receipt, error) {
	return acc.adjust(addr, amount, true)
}

//Burn 从 addr 销毁
func (acc *DB) Burn(addr string, amount uint64) (*types.Receipt, error) {
	return acc.adjust(addr, amount, false)
}

func (acc *DB) adjust(addr string, amount uint64, add bool) (*types.Receipt, error) {
	if amount == 0 {
		return nil, types.ErrAmount
	}
	acc1, err := acc.LoadAccount(addr)
	if err != nil {
		return nil, err
	}
	copyacc := *acc1
	if add {
		acc1.Balance, err = common.SafeAdd(acc1.Balance, amount)
	} else {
		acc1.Balance, err = common.SafeSub(acc1.Balance, amount)
		if err != nil {
			err = errors.Wrapf(types.ErrNoBalance, "%s has %d%s, burn %d", addr, copyacc.Balance, acc.denom, amount)
		}
	}
	if err != nil {
		return nil, err
	}
	acc.SaveAccount(acc1)
	log1 := types.GetReceiptLog(types.TyLogGenesis, &types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1})
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	log1 := types.GetReceiptLog(types.TyLogTransfer, receiptFrom)
	log2 := types.GetReceiptLog(types.TyLogTransfer, receiptTo)
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

//SaveAccount 写入状态
func (acc *DB) SaveAccount(acc1 *types.Account) {
	for _, kv := range acc.GetKVSet(acc1) {
		if err := acc.db.Set(kv.GetKey(), kv.GetValue()); err != nil {
			alog.Error("SaveAccount", "addr", acc1.Addr, "err", err)
		}
	}
}

//GetKVSet 账户的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	acc1.Denom = acc.denom
	value := types.Encode(acc1)
	return append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
}

//AccountKey 账户 key
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

//SymbolPrefix 合约资产 key 前缀
func SymbolPrefix(execer string, symbol string) string {
	return "mavl-" + execer + "-" + symbol + "-"
}

//MergeReceipt 合并 receipt
func MergeReceipt(receipt1, receipt2 *types.Receipt) *types.Receipt {
	if receipt2 == nil {
		return receipt1
	}
	if receipt1 == nil {
		return receipt2
	}
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	receipt1.Msgs = append(receipt1.Msgs, receipt2.Msgs...)
	return receipt1
}
