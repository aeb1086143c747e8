// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是原生币的执行器, 只有它可以直接修改 mavl-bank- 下的余额

主要提供的操作：
EventTransfer -> 转移资产
*/

import (
	"github.com/33cn/vegas/account"
	"github.com/33cn/vegas/common/address"
	drivers "github.com/33cn/vegas/system/dapp"
	cty "github.com/33cn/vegas/system/dapp/coins/types"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

//Init 注册执行器
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins, 0)
}

//GetName 执行器名
func GetName() string {
	return driverName
}

//Coins 原生币执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	return c
}

//Exec 执行转账
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action cty.CoinsAction
	if err := drivers.GetPayload(tx, &action); err != nil {
		return nil, err
	}
	if action.Ty != cty.CoinsActionTransfer || action.Transfer == nil {
		return nil, types.ErrActionNotSupport
	}
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	transfer := action.Transfer
	if err := address.CheckAddress(transfer.To); err != nil {
		clog.Debug("Exec transfer", "to", transfer.To, "err", err)
		return nil, types.ErrInvalidAddress
	}
	if transfer.Amount == nil {
		return nil, types.ErrAmount
	}
	bank, err := account.NewBankAccount(transfer.Amount.Denom, c.GetStateDB())
	if err != nil {
		return nil, err
	}
	return bank.Transfer(tx.From, transfer.To, transfer.Amount.Amount)
}

//Query GetBalance
func (c *Coins) Query(funcName string, params []byte) (types.Message, error) {
	if funcName != "GetBalance" {
		return nil, types.ErrQueryNotSupport
	}
	var req types.ReqBalance
	if err := types.Decode(params, &req); err != nil {
		return nil, err
	}
	bank, err := account.NewBankAccount(req.Denom, c.GetStateDB())
	if err != nil {
		return nil, err
	}
	return bank.LoadAccount(req.Addr)
}
