// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	"github.com/33cn/vegas/common"
	"github.com/33cn/vegas/plugin/dapp/casino/games"
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
)

//Exec 执行 casino 交易
func (c *Casino) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action cty.CasinoAction
	if err := drivers.GetPayload(tx, &action); err != nil {
		return nil, err
	}
	if action.Ty == cty.CasinoActionInstantiate {
		return c.instantiate(tx, action.Instantiate)
	}
	config, err := c.getConfig()
	if err != nil {
		return nil, err
	}
	if action.Ty == cty.CasinoActionBet {
		return c.bet(tx, config, action.Outcome)
	}
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	if action.Ty == cty.CasinoActionReceiveRewards {
		return c.receiveRewards(tx, config)
	}
	if err := checkOwner(config, tx.From); err != nil {
		return nil, err
	}
	return c.admin(config, &action)
}

func (c *Casino) instantiate(tx *types.Transaction, init *cty.CasinoInit) (*types.Receipt, error) {
	if _, err := c.getConfig(); err == nil {
		return nil, types.ErrAlreadyInstantiated
	}
	if init == nil || init.NativeDenom == "" || init.Oracle == "" || init.Reserve == "" {
		return nil, types.ErrInvalidParam
	}
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	if init.MaxBettingRatio == 0 {
		return nil, cty.ErrBettingRatio
	}
	if !cty.ValidRoundDuration(init.RoundDuration) {
		return nil, cty.ErrRoundDuration
	}
	config := &cty.CasinoConfig{
		Owner:           tx.From,
		NativeDenom:     init.NativeDenom,
		MaxBets:         init.MaxBets,
		MaxBettingRatio: init.MaxBettingRatio,
		MaxCashflow:     init.MaxCashflow,
		Oracle:          init.Oracle,
		Reserve:         init.Reserve,
		Gov:             init.Gov,
	}
	if err := c.setAdvantage(config, init.Advantage); err != nil {
		return nil, err
	}
	if err := setWinTax(config, init.WinTax); err != nil {
		return nil, err
	}
	name := c.GetName()
	timer := cty.NewRoundTimer(init.RoundDuration, c.GetBlockTime())
	receipt := &types.Receipt{Ty: types.ExecOk}
	if err := c.save(receipt, configKey(name), config); err != nil {
		return nil, err
	}
	if err := c.save(receipt, timerKey(name), timer); err != nil {
		return nil, err
	}
	if err := c.saveUint64(receipt, totalRewardsKey(name), 0); err != nil {
		return nil, err
	}
	if err := c.saveUint64(receipt, lastRandomnessKey(name), 0); err != nil {
		return nil, err
	}
	clog.Info("instantiate", "game", name, "owner", tx.From, "duration", init.RoundDuration)
	receipt.Logs = append(receipt.Logs, types.GetReceiptLog(cty.TyLogConfig, config))
	return receipt, nil
}

func (c *Casino) bet(tx *types.Transaction, config *cty.CasinoConfig, outcome uint32) (*types.Receipt, error) {
	if err := games.CheckOutcome(c.game, outcome); err != nil {
		return nil, err
	}
	timer, err := c.getTimer()
	if err != nil {
		return nil, err
	}
	status, latest, last, err := c.roundStatus(config, timer)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	switch status {
	case cty.RoundReady:
		settle, err := c.endRound(config, timer, latest, last)
		if err != nil {
			return nil, err
		}
		mergeReceipt(receipt, settle)
	case cty.RoundWaitingOnRandomness:
		return nil, cty.ErrNewRandomnessNotYetAvailable
	case cty.RoundStopped:
		return nil, cty.ErrGameStopped
	}
	amount, err := types.MustPay(tx.Funds, config.NativeDenom)
	if err != nil {
		return nil, err
	}
	limit, err := c.bettingLimit(config)
	if err != nil {
		return nil, err
	}

	name := c.GetName()
	round := timer.CurrentRound
	player := tx.From
	bets, err := c.getPlayerBets(round, player)
	if err != nil {
		return nil, err
	}
	if uint64(len(bets.Bets)) >= config.MaxBets {
		return nil, &cty.MaxBetsError{BetsThisRound: uint64(len(bets.Bets)), MaxBetsPerRound: config.MaxBets}
	}
	roundBets, err := c.getRoundBets(round)
	if err != nil {
		return nil, err
	}
	var committed uint64
	if c.game.LimitScope() == games.LimitPerRound {
		committed = roundBets.Total
	} else {
		for _, b := range bets.Bets {
			if committed, err = common.SafeAdd(committed, b.Amount); err != nil {
				return nil, err
			}
		}
	}
	total, err := common.SafeAdd(committed, amount)
	if err != nil {
		return nil, err
	}
	if total > limit {
		return nil, &cty.BetLimitError{CurrentBet: amount, TotalBet: committed, TotalBetLimit: limit}
	}

	bets.Bets = append(bets.Bets, &cty.Bet{Outcome: outcome, Amount: amount})
	if roundBets.Total, err = common.SafeAdd(roundBets.Total, amount); err != nil {
		return nil, err
	}
	roundBets.Players = insertSorted(roundBets.Players, player)
	rounds, err := c.getPlayerRounds(player)
	if err != nil {
		return nil, err
	}
	rounds.Rounds = insertRound(rounds.Rounds, round)

	if err := c.save(receipt, betsKey(name, round, player), bets); err != nil {
		return nil, err
	}
	if err := c.save(receipt, roundKey(name, round), roundBets); err != nil {
		return nil, err
	}
	if err := c.save(receipt, playerRoundsKey(name, player), rounds); err != nil {
		return nil, err
	}
	// 绑定下注时信标的最新轮次, 之前发布的随机数不能用来结算这一轮
	if latest != nil {
		if err := c.saveUint64(receipt, lastRandomnessKey(name), latest.Round); err != nil {
			return nil, err
		}
	}
	receipt.Logs = append(receipt.Logs, types.GetReceiptLog(cty.TyLogBet,
		&cty.ReceiptBet{Round: round, Player: player, Outcome: outcome, Amount: amount}))
	betCounter.Inc(1)
	clog.Debug("bet", "game", name, "round", round, "player", player, "outcome", outcome, "amount", amount)
	return receipt, nil
}

// bettingLimit reserve 余额 / max_betting_ratio, 每次都重新查询
func (c *Casino) bettingLimit(config *cty.CasinoConfig) (uint64, error) {
	if config.MaxBettingRatio == 0 {
		return 0, cty.ErrBettingRatio
	}
	balance, err := rty.QueryCurrentBalance(c.GetAPI(), config.Reserve)
	if err != nil {
		return 0, errors.Wrap(err, "reserve balance")
	}
	return balance / config.MaxBettingRatio, nil
}

func (c *Casino) receiveRewards(tx *types.Transaction, config *cty.CasinoConfig) (*types.Receipt, error) {
	name := c.GetName()
	reward, err := c.getUint64(rewardsKey(name, tx.From))
	if err != nil {
		return nil, err
	}
	if reward == 0 {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	total, err := c.getUint64(totalRewardsKey(name))
	if err != nil {
		return nil, err
	}
	total, err = common.SafeSub(total, reward)
	if err != nil {
		return nil, err
	}
	coin, err := tty.DeductTax(c.GetAPI(), types.NewCoin(config.NativeDenom, reward))
	if err != nil {
		return nil, err
	}
	clog.Debug("receive rewards", "game", name, "player", tx.From, "reward", reward, "send", coin.Amount)
	receipt := &types.Receipt{Ty: types.ExecOk}
	if err := c.saveUint64(receipt, rewardsKey(name, tx.From), 0); err != nil {
		return nil, err
	}
	if err := c.saveUint64(receipt, totalRewardsKey(name), total); err != nil {
		return nil, err
	}
	receipt.Logs = append(receipt.Logs, types.GetReceiptLog(cty.TyLogRewards, &cty.Reward{Player: tx.From, Amount: reward}))
	receipt.Msgs = append(receipt.Msgs, types.NewBankSend(tx.From, coin))
	return receipt, nil
}

func insertSorted(list []string, s string) []string {
	i := sort.SearchStrings(list, s)
	if i < len(list) && list[i] == s {
		return list
	}
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = s
	return list
}

func insertRound(list []uint64, round uint64) []uint64 {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= round })
	if i < len(list) && list[i] == round {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = round
	return list
}
