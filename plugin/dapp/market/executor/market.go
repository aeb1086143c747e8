// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
market 计息货币市场:
DepositStable -> 存入稳定币, 按汇率铸造 aToken
RedeemStable  -> 销毁 aToken, 按汇率取回稳定币(扣税)
*/

import (
	"github.com/33cn/vegas/account"
	"github.com/33cn/vegas/common"
	mty "github.com/33cn/vegas/plugin/dapp/market/types"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var mlog = log.New("module", "execs.market")

var stateKey = []byte("mavl-market-state")

//Init 注册执行器
func Init(name string, sub []byte) {
	drivers.Register(GetName(), newMarket, 0)
}

//GetName 执行器名
func GetName() string {
	return mty.MarketX
}

//Market 货币市场执行器
type Market struct {
	drivers.DriverBase
}

func newMarket() drivers.Driver {
	m := &Market{}
	m.SetChild(m)
	return m
}

func (m *Market) getState() (*mty.MarketState, error) {
	var state mty.MarketState
	if err := drivers.GetState(m.GetStateDB(), stateKey, &state); err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrNotInstantiated
		}
		return nil, err
	}
	return &state, nil
}

func (m *Market) aToken() (*account.DB, error) {
	return account.NewAccountDB(mty.MarketX, mty.ATokenSymbol, m.GetStateDB())
}

func parseRate(rate string) (decimal.Decimal, error) {
	d, err := types.ParseDec(rate)
	if err != nil {
		return types.DecZero, err
	}
	if !d.IsPositive() {
		return types.DecZero, errors.Wrapf(mty.ErrExchangeRate, "rate %s", rate)
	}
	return d, nil
}

//Exec 执行 market 交易
func (m *Market) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action mty.MarketAction
	if err := drivers.GetPayload(tx, &action); err != nil {
		return nil, err
	}
	if action.Ty == mty.MarketActionInstantiate {
		return m.instantiate(tx, action.Instantiate)
	}
	state, err := m.getState()
	if err != nil {
		return nil, err
	}
	switch action.Ty {
	case mty.MarketActionDepositStable:
		return m.depositStable(tx, state)
	case mty.MarketActionRedeemStable:
		if action.Redeem == nil {
			return nil, types.ErrInvalidParam
		}
		return m.redeemStable(tx, state, action.Redeem.Amount)
	case mty.MarketActionSetExchangeRate:
		return m.setExchangeRate(tx, state, action.ExchangeRate)
	case mty.MarketActionTransferToken:
		if action.Transfer == nil {
			return nil, types.ErrInvalidParam
		}
		if err := types.Nonpayable(tx.Funds); err != nil {
			return nil, err
		}
		acc, err := m.aToken()
		if err != nil {
			return nil, err
		}
		return acc.Transfer(tx.From, action.Transfer.To, action.Transfer.Amount)
	}
	return nil, types.ErrActionNotSupport
}

func (m *Market) instantiate(tx *types.Transaction, init *mty.MarketState) (*types.Receipt, error) {
	if _, err := m.getState(); err == nil {
		return nil, types.ErrAlreadyInstantiated
	}
	if init == nil || init.StableDenom == "" {
		return nil, types.ErrInvalidParam
	}
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	rate, err := parseRate(init.ExchangeRate)
	if err != nil {
		return nil, err
	}
	state := &mty.MarketState{Owner: tx.From, StableDenom: init.StableDenom, ExchangeRate: types.FormatDec(rate)}
	return m.saveState(state, nil)
}

func (m *Market) saveState(state *mty.MarketState, receipt *types.Receipt) (*types.Receipt, error) {
	kv, err := drivers.SetState(m.GetStateDB(), stateKey, state)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	receipt.KV = append(receipt.KV, kv)
	return receipt, nil
}

func (m *Market) depositStable(tx *types.Transaction, state *mty.MarketState) (*types.Receipt, error) {
	amount, err := types.MustPay(tx.Funds, state.StableDenom)
	if err != nil {
		return nil, err
	}
	rate, err := parseRate(state.ExchangeRate)
	if err != nil {
		return nil, err
	}
	minted, err := types.QuoFloor(amount, rate)
	if err != nil {
		return nil, err
	}
	if minted == 0 {
		return nil, mty.ErrZeroMint
	}
	supply, err := common.SafeAdd(state.TotalSupply, minted)
	if err != nil {
		return nil, errors.Wrapf(err, "total supply %d, mint %d", state.TotalSupply, minted)
	}
	acc, err := m.aToken()
	if err != nil {
		return nil, err
	}
	receipt, err := acc.Mint(tx.From, minted)
	if err != nil {
		return nil, err
	}
	state.TotalSupply = supply
	mlog.Debug("deposit stable", "addr", tx.From, "stable", amount, "aToken", minted)
	receipt.Logs = append(receipt.Logs, types.GetReceiptLog(mty.TyLogMarketDeposit,
		&mty.ReceiptMarket{Addr: tx.From, Stable: amount, AToken: minted, Rate: state.ExchangeRate}))
	return m.saveState(state, receipt)
}

func (m *Market) redeemStable(tx *types.Transaction, state *mty.MarketState, amount uint64) (*types.Receipt, error) {
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	rate, err := parseRate(state.ExchangeRate)
	if err != nil {
		return nil, err
	}
	acc, err := m.aToken()
	if err != nil {
		return nil, err
	}
	receipt, err := acc.Burn(tx.From, amount)
	if err != nil {
		return nil, err
	}
	stable, err := types.MulFloor(amount, rate)
	if err != nil {
		return nil, err
	}
	coin, err := tty.DeductTax(m.GetAPI(), types.NewCoin(state.StableDenom, stable))
	if err != nil {
		return nil, err
	}
	if state.TotalSupply, err = common.SafeSub(state.TotalSupply, amount); err != nil {
		return nil, err
	}
	mlog.Debug("redeem stable", "addr", tx.From, "aToken", amount, "stable", coin.Amount)
	receipt.Logs = append(receipt.Logs, types.GetReceiptLog(mty.TyLogMarketRedeem,
		&mty.ReceiptMarket{Addr: tx.From, Stable: coin.Amount, AToken: amount, Rate: state.ExchangeRate}))
	receipt.Msgs = append(receipt.Msgs, types.NewBankSend(tx.From, coin))
	return m.saveState(state, receipt)
}

func (m *Market) setExchangeRate(tx *types.Transaction, state *mty.MarketState, rate string) (*types.Receipt, error) {
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	if tx.From != state.Owner {
		return nil, types.ErrUnauthorized
	}
	d, err := parseRate(rate)
	if err != nil {
		return nil, err
	}
	state.ExchangeRate = types.FormatDec(d)
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.Logs = append(receipt.Logs, types.GetReceiptLog(mty.TyLogMarketRate, &mty.ReceiptMarket{Rate: state.ExchangeRate}))
	return m.saveState(state, receipt)
}

//Query State, Balance
func (m *Market) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case "State":
		return m.getState()
	case "Balance":
		var req types.ReqString
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		acc, err := m.aToken()
		if err != nil {
			return nil, err
		}
		return acc.LoadAccount(req.Data)
	}
	return nil, types.ErrQueryNotSupport
}
