// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/vegas/common"
	"github.com/33cn/vegas/plugin/dapp/casino/games"
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
)

// endRound 结算当前轮次. 任何错误都会让整个交易回滚, 不会出现部分记账
func (c *Casino) endRound(config *cty.CasinoConfig, timer *cty.RoundTimer, latest *oty.Randomness, last uint64) (*types.Receipt, error) {
	if latest == nil || latest.Round <= last {
		return nil, cty.ErrNewRandomnessNotYetAvailable
	}
	name := c.GetName()
	db := c.GetStateDB()
	round := timer.CurrentRound

	rolled, err := c.game.Outcome(latest.Randomness)
	if err != nil {
		return nil, err
	}
	if _, err := db.Get(outcomeKey(name, round)); err == nil {
		return nil, errors.Wrapf(cty.ErrOutcomeExists, "round %d", round)
	}
	outcome := &cty.Outcome{Round: round, Outcome: rolled, DrandRound: latest.Round}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if err := c.save(receipt, outcomeKey(name, round), outcome); err != nil {
		return nil, err
	}

	coefs, err := games.ParseCoefficients(config.WinCoefficients)
	if err != nil {
		return nil, err
	}
	multiplier, err := types.ParseDec(config.WinMultiplier)
	if err != nil {
		return nil, err
	}
	roundBets, err := c.getRoundBets(round)
	if err != nil {
		return nil, err
	}
	var payout uint64
	var winners []*cty.Reward
	// Players 按地址升序
	for _, player := range roundBets.Players {
		bets, err := c.getPlayerBets(round, player)
		if err != nil {
			return nil, err
		}
		var win uint64
		for _, b := range bets.Bets {
			if !c.game.Wins(b.Outcome, rolled) {
				continue
			}
			idx := c.game.CoefficientIndex(b.Outcome)
			if idx < 0 || idx >= len(coefs) {
				return nil, errors.Wrapf(cty.ErrInvalidBetPosition, "no coefficient for %d", b.Outcome)
			}
			amount, err := games.Payout(b.Amount, coefs[idx], multiplier)
			if err != nil {
				return nil, err
			}
			if win, err = common.SafeAdd(win, amount); err != nil {
				return nil, err
			}
		}
		if win == 0 {
			continue
		}
		reward, err := c.getUint64(rewardsKey(name, player))
		if err != nil {
			return nil, err
		}
		if reward, err = common.SafeAdd(reward, win); err != nil {
			return nil, err
		}
		if err := c.saveUint64(receipt, rewardsKey(name, player), reward); err != nil {
			return nil, err
		}
		winners = append(winners, &cty.Reward{Player: player, Amount: win})
		if payout, err = common.SafeAdd(payout, win); err != nil {
			return nil, err
		}
	}
	total, err := c.getUint64(totalRewardsKey(name))
	if err != nil {
		return nil, err
	}
	if total, err = common.SafeAdd(total, payout); err != nil {
		return nil, err
	}
	if err := c.saveUint64(receipt, totalRewardsKey(name), total); err != nil {
		return nil, err
	}

	timer.NextRound(c.GetBlockTime())
	timer.UpdateDrand(latest.Round)
	if err := c.save(receipt, timerKey(name), timer); err != nil {
		return nil, err
	}
	if err := c.saveUint64(receipt, lastRandomnessKey(name), latest.Round); err != nil {
		return nil, err
	}

	msg, err := c.rebalance(config, total)
	if err != nil {
		return nil, err
	}
	if msg != nil {
		receipt.Msgs = append(receipt.Msgs, msg)
	}
	receipt.Logs = append(receipt.Logs, types.GetReceiptLog(cty.TyLogSettle, &cty.ReceiptSettle{
		Round:        round,
		Outcome:      rolled,
		DrandRound:   latest.Round,
		Winners:      winners,
		Payout:       payout,
		TotalRewards: total,
	}))
	settleCounter.Inc(1)
	payoutCounter.Inc(int64(payout))
	clog.Info("settle round", "game", name, "round", round, "outcome", rolled, "drand", latest.Round,
		"winners", len(winners), "payout", payout, "totalRewards", total)
	return receipt, nil
}

// rebalance 奖励超过余额时向 reserve 请求差额, 盈余超过 max_cashflow 时存入 reserve, 最多一条消息
func (c *Casino) rebalance(config *cty.CasinoConfig, total uint64) (*types.SubMsg, error) {
	api := c.GetAPI()
	balance, err := api.GetBalance(c.GetExecAddress(), config.NativeDenom)
	if err != nil {
		return nil, err
	}
	if total > balance {
		clog.Info("request funds", "game", c.GetName(), "amount", total-balance)
		return types.NewExecMsg(config.Reserve, rty.NewRequestFundsAction(total-balance)), nil
	}
	surplus := balance - total
	if surplus <= config.MaxCashflow {
		return nil, nil
	}
	coin, err := tty.DeductTax(api, types.NewCoin(config.NativeDenom, surplus))
	if err != nil {
		return nil, err
	}
	clog.Info("deposit funds", "game", c.GetName(), "surplus", surplus, "send", coin.Amount)
	return types.NewExecMsg(config.Reserve, rty.NewDepositFundsAction(), coin), nil
}
