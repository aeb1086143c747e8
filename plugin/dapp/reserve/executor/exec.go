// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	"github.com/33cn/vegas/common"
	mty "github.com/33cn/vegas/plugin/dapp/market/types"
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//Exec 执行 reserve 交易
func (r *Reserve) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action rty.ReserveAction
	if err := drivers.GetPayload(tx, &action); err != nil {
		return nil, err
	}
	if action.Ty == rty.ReserveActionInstantiate {
		return r.instantiate(tx, action.Instantiate)
	}
	config, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	// DepositFunds 附带游戏的盈余, 其他操作都不接受资金
	if action.Ty != rty.ReserveActionDepositFunds {
		if err := types.Nonpayable(tx.Funds); err != nil {
			return nil, err
		}
	}
	switch action.Ty {
	case rty.ReserveActionChangeThreshold:
		if err := checkOwner(config, tx.From); err != nil {
			return nil, err
		}
		config.Threshold = action.Threshold
		return r.saveConfig(config)
	case rty.ReserveActionAddGame:
		if err := checkOwner(config, tx.From); err != nil {
			return nil, err
		}
		return r.addGame(action.Game)
	case rty.ReserveActionRemoveGame:
		if err := checkOwner(config, tx.From); err != nil {
			return nil, err
		}
		return r.removeGame(action.Game)
	case rty.ReserveActionRequestFunds:
		if err := r.checkGame(tx.From); err != nil {
			return nil, err
		}
		return r.requestFunds(tx, config, action.Amount)
	case rty.ReserveActionDepositFunds:
		if err := r.checkGame(tx.From); err != nil {
			return nil, err
		}
		return r.depositFunds(config)
	}
	return nil, types.ErrActionNotSupport
}

func (r *Reserve) instantiate(tx *types.Transaction, init *rty.ReserveConfig) (*types.Receipt, error) {
	if _, err := r.getConfig(); err == nil {
		return nil, types.ErrAlreadyInstantiated
	}
	if init == nil || init.NativeDenom == "" || init.Market == "" {
		return nil, types.ErrInvalidParam
	}
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	config := &rty.ReserveConfig{
		Owner:       tx.From,
		Gov:         init.Gov,
		Market:      init.Market,
		NativeDenom: init.NativeDenom,
		Threshold:   init.Threshold,
	}
	return r.saveConfig(config)
}

func (r *Reserve) saveConfig(config *rty.ReserveConfig) (*types.Receipt, error) {
	kv, err := drivers.SetState(r.GetStateDB(), configKey, config)
	if err != nil {
		return nil, err
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{types.GetReceiptLog(rty.TyLogReserveConfig, config)},
	}, nil
}

func (r *Reserve) saveGames(games []string) (*types.Receipt, error) {
	kv, err := drivers.SetState(r.GetStateDB(), gamesKey, &types.ReplyStrings{Datas: games})
	if err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}}, nil
}

func (r *Reserve) addGame(game string) (*types.Receipt, error) {
	addr, err := normalizeAddr(game)
	if err != nil {
		return nil, err
	}
	games, err := r.getGames()
	if err != nil {
		return nil, err
	}
	i := sort.SearchStrings(games, addr)
	if i < len(games) && games[i] == addr {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	games = append(games, "")
	copy(games[i+1:], games[i:])
	games[i] = addr
	rlog.Debug("add game", "addr", addr)
	return r.saveGames(games)
}

func (r *Reserve) removeGame(game string) (*types.Receipt, error) {
	addr, err := normalizeAddr(game)
	if err != nil {
		return nil, err
	}
	games, err := r.getGames()
	if err != nil {
		return nil, err
	}
	i := sort.SearchStrings(games, addr)
	if i == len(games) || games[i] != addr {
		return nil, errors.Wrapf(rty.ErrGameNotFound, "game %s", addr)
	}
	games = append(games[:i], games[i+1:]...)
	rlog.Debug("remove game", "addr", addr)
	return r.saveGames(games)
}

func (r *Reserve) requestFunds(tx *types.Transaction, config *rty.ReserveConfig, amount uint64) (*types.Receipt, error) {
	if amount == 0 {
		return nil, types.ErrAmount
	}
	api := r.GetAPI()
	coin := types.NewCoin(config.NativeDenom, amount)
	balance, err := api.GetBalance(r.GetExecAddress(), config.NativeDenom)
	if err != nil {
		return nil, err
	}
	tax, err := tty.ComputeTax(api, coin)
	if err != nil {
		return nil, err
	}
	withTax, err := common.SafeAdd(amount, tax)
	if err != nil {
		return nil, err
	}
	if balance >= withTax {
		rlog.Debug("send to game", "game", tx.From, "amount", amount)
		return &types.Receipt{Ty: types.ExecOk, Msgs: []*types.SubMsg{types.NewBankSend(tx.From, coin)}}, nil
	}

	pending, err := r.getPending()
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	if pending != nil && pending.State == rty.RequestPending {
		return nil, errors.Wrapf(rty.ErrRequestPending, "correlation %s", pending.Correlation)
	}
	// 从市场赎回再转出还要再付一次税, 多赎回 1 抵消换算成 aToken 时的截断
	request, err := common.SafeAdd(withTax, tax+1)
	if err != nil {
		return nil, err
	}
	request -= balance
	rate, err := mty.QueryExchangeRate(api, config.Market)
	if err != nil {
		return nil, err
	}
	redeem, err := types.QuoFloor(request, rate)
	if err != nil {
		return nil, err
	}
	pending = &rty.PendingRequest{
		Correlation: uuid.NewSHA1(uuid.NameSpaceOID, r.GetTxHash()).String(),
		Requester:   tx.From,
		Amount:      amount,
		State:       rty.RequestPending,
	}
	rlog.Info("request from market", "game", tx.From, "amount", amount, "redeem", redeem, "correlation", pending.Correlation)
	kv, err := drivers.SetState(r.GetStateDB(), pendingKey, pending)
	if err != nil {
		return nil, err
	}
	msg := types.NewExecMsg(config.Market, mty.NewRedeemStableAction(redeem)).ReplyOnSuccess(rty.ReplyRedeem)
	log := &rty.ReceiptRequest{Correlation: pending.Correlation, Requester: tx.From, Amount: amount, Redeem: redeem}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{types.GetReceiptLog(rty.TyLogReserveRequest, log)},
		Msgs: []*types.SubMsg{msg},
	}, nil
}

//Reply 货币市场赎回完成, 把暂存的数量转给请求的游戏
func (r *Reserve) Reply(reply *types.Reply) (*types.Receipt, error) {
	if reply.GetId() != rty.ReplyRedeem {
		return nil, errors.Wrapf(types.ErrInvalidReplyID, "reply id %d", reply.GetId())
	}
	config, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	pending, err := r.getPending()
	if err == types.ErrNotFound || (err == nil && pending.State != rty.RequestPending) {
		return nil, rty.ErrNoPendingRequest
	}
	if err != nil {
		return nil, err
	}
	pending.State = rty.RequestSettled
	kv, err := drivers.SetState(r.GetStateDB(), pendingKey, pending)
	if err != nil {
		return nil, err
	}
	rlog.Info("request settled", "game", pending.Requester, "amount", pending.Amount, "correlation", pending.Correlation)
	log := &rty.ReceiptRequest{Correlation: pending.Correlation, Requester: pending.Requester, Amount: pending.Amount}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{types.GetReceiptLog(rty.TyLogReserveSettled, log)},
		Msgs: []*types.SubMsg{types.NewBankSend(pending.Requester, types.NewCoin(config.NativeDenom, pending.Amount))},
	}, nil
}

func (r *Reserve) depositFunds(config *rty.ReserveConfig) (*types.Receipt, error) {
	api := r.GetAPI()
	balance, err := api.GetBalance(r.GetExecAddress(), config.NativeDenom)
	if err != nil {
		return nil, err
	}
	if balance > config.Threshold {
		coin, err := tty.DeductTax(api, types.NewCoin(config.NativeDenom, balance-config.Threshold))
		if err != nil {
			return nil, err
		}
		rlog.Debug("send to market", "amount", coin.Amount)
		msg := types.NewExecMsg(config.Market, &mty.MarketAction{Ty: mty.MarketActionDepositStable}, coin)
		return &types.Receipt{Ty: types.ExecOk, Msgs: []*types.SubMsg{msg}}, nil
	}
	total, err := r.currentBalance(config)
	if err != nil {
		return nil, err
	}
	point := &rty.BalancePoint{Height: r.GetHeight(), Balance: total}
	kv, err := drivers.SetState(r.GetStateDB(), calcHistoryKey(point.Height), point)
	if err != nil {
		return nil, err
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{types.GetReceiptLog(rty.TyLogReserveBalance, point)},
	}, nil
}

//ExecLocal 余额快照按高度建立索引
func (r *Reserve) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, item := range receipt.Logs {
		if item.Ty != rty.TyLogReserveBalance {
			continue
		}
		var point rty.BalancePoint
		if err := types.Decode(item.Log, &point); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{Key: calcLocalHistoryKey(point.Height), Value: item.Log})
	}
	return set, nil
}
