// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
treasury 保存税率和每个币种的税收上限, 宿主在合约转出原生币时查询它收税
*/

import (
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var tlog = log.New("module", "execs.treasury")

var (
	configKey    = []byte("mavl-treasury-config")
	capKeyPrefix = "mavl-treasury-cap-"
)

func calcCapKey(denom string) []byte {
	return []byte(capKeyPrefix + denom)
}

//Init 注册执行器
func Init(name string, sub []byte) {
	drivers.Register(GetName(), newTreasury, 0)
}

//GetName 执行器名
func GetName() string {
	return tty.TreasuryX
}

//Treasury 税收执行器
type Treasury struct {
	drivers.DriverBase
}

func newTreasury() drivers.Driver {
	t := &Treasury{}
	t.SetChild(t)
	return t
}

func (t *Treasury) getConfig() (*tty.TreasuryConfig, error) {
	var cfg tty.TreasuryConfig
	if err := drivers.GetState(t.GetStateDB(), configKey, &cfg); err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrNotInstantiated
		}
		return nil, err
	}
	return &cfg, nil
}

func checkRate(rate string) (string, error) {
	d, err := types.ParseDec(rate)
	if err != nil {
		return "", err
	}
	if d.GreaterThanOrEqual(types.DecOne) {
		return "", errors.Wrapf(tty.ErrTaxRate, "rate %s", rate)
	}
	return types.FormatDec(d), nil
}

//Exec 执行 treasury 交易
func (t *Treasury) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action tty.TreasuryAction
	if err := drivers.GetPayload(tx, &action); err != nil {
		return nil, err
	}
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	if action.Ty == tty.TreasuryActionInstantiate {
		if _, err := t.getConfig(); err == nil {
			return nil, types.ErrAlreadyInstantiated
		}
		rate, err := checkRate(action.Rate.GetRate())
		if err != nil {
			return nil, err
		}
		return t.saveConfig(&tty.TreasuryConfig{Owner: tx.From, Rate: rate})
	}
	cfg, err := t.getConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Owner != tx.From {
		return nil, types.ErrUnauthorized
	}
	switch action.Ty {
	case tty.TreasuryActionSetTaxRate:
		rate, err := checkRate(action.Rate.GetRate())
		if err != nil {
			return nil, err
		}
		cfg.Rate = rate
		tlog.Info("set tax rate", "rate", rate)
		return t.saveConfig(cfg)
	case tty.TreasuryActionSetTaxCap:
		if action.Cap == nil || action.Cap.Denom == "" {
			return nil, types.ErrInvalidParam
		}
		capacity := &tty.TaxCap{Denom: action.Cap.Denom, Cap: action.Cap.Cap, Capped: true}
		kv, err := drivers.SetState(t.GetStateDB(), calcCapKey(capacity.Denom), capacity)
		if err != nil {
			return nil, err
		}
		tlog.Info("set tax cap", "denom", capacity.Denom, "cap", capacity.Cap)
		return &types.Receipt{
			Ty:   types.ExecOk,
			KV:   []*types.KeyValue{kv},
			Logs: []*types.ReceiptLog{types.GetReceiptLog(tty.TyLogTreasuryConfig, capacity)},
		}, nil
	}
	return nil, types.ErrActionNotSupport
}

func (t *Treasury) saveConfig(cfg *tty.TreasuryConfig) (*types.Receipt, error) {
	kv, err := drivers.SetState(t.GetStateDB(), configKey, cfg)
	if err != nil {
		return nil, err
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{types.GetReceiptLog(tty.TyLogTreasuryConfig, cfg)},
	}, nil
}

//Query TaxRate, TaxCap, GetConfig
func (t *Treasury) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case "TaxRate":
		cfg, err := t.getConfig()
		if err != nil {
			return nil, err
		}
		return &tty.TaxRate{Rate: cfg.Rate}, nil
	case "TaxCap":
		var req types.ReqString
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		var capacity tty.TaxCap
		err := drivers.GetState(t.GetStateDB(), calcCapKey(req.Data), &capacity)
		if err == types.ErrNotFound {
			return &tty.TaxCap{Denom: req.Data}, nil
		}
		if err != nil {
			return nil, err
		}
		return &capacity, nil
	case "GetConfig":
		return t.getConfig()
	}
	return nil, types.ErrQueryNotSupport
}

