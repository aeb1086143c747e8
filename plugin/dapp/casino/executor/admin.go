// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/vegas/plugin/dapp/casino/games"
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
)

// setAdvantage 赔率表整体重算
func (c *Casino) setAdvantage(config *cty.CasinoConfig, value string) error {
	advantage, err := types.ParseDec(value)
	if err != nil {
		return errors.Wrapf(cty.ErrAdvantageValueOutOfRange, "advantage %s", value)
	}
	coefs, err := c.game.Coefficients(advantage)
	if err != nil {
		return err
	}
	config.Advantage = types.FormatDec(advantage)
	config.WinCoefficients = games.FormatCoefficients(coefs)
	return nil
}

func setWinTax(config *cty.CasinoConfig, value string) error {
	winTax, err := types.ParseDec(value)
	if err != nil {
		return errors.Wrapf(cty.ErrWinTaxOutOfRange, "win tax %s", value)
	}
	multiplier, ok := games.WinMultiplier(winTax)
	if !ok {
		return errors.Wrapf(cty.ErrWinTaxOutOfRange, "win tax %s", value)
	}
	config.WinTax = types.FormatDec(winTax)
	config.WinMultiplier = types.FormatDec(multiplier)
	return nil
}

// admin owner 或 gov 的管理操作
func (c *Casino) admin(config *cty.CasinoConfig, action *cty.CasinoAction) (*types.Receipt, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	switch action.Ty {
	case cty.CasinoActionChangeAdvantageValue:
		if err := c.setAdvantage(config, action.Value); err != nil {
			return nil, err
		}
	case cty.CasinoActionChangeWinTax:
		if err := setWinTax(config, action.Value); err != nil {
			return nil, err
		}
	case cty.CasinoActionChangeMaxNumberOfBets:
		config.MaxBets = action.Number
	case cty.CasinoActionChangeMaxBettingRatio:
		if action.Number == 0 {
			return nil, cty.ErrBettingRatio
		}
		config.MaxBettingRatio = action.Number
	case cty.CasinoActionChangeMaxCashflow:
		config.MaxCashflow = action.Number
	case cty.CasinoActionChangeRoundDuration:
		return c.changeRoundDuration(config, action.Number)
	case cty.CasinoActionStopGame:
		return c.stopGame()
	case cty.CasinoActionDrainGame:
		return c.drainGame(config)
	default:
		return nil, types.ErrActionNotSupport
	}
	clog.Debug("change config", "game", c.GetName(), "ty", action.Ty)
	if err := c.save(receipt, configKey(c.GetName()), config); err != nil {
		return nil, err
	}
	receipt.Logs = append(receipt.Logs, types.GetReceiptLog(cty.TyLogConfig, config))
	return receipt, nil
}

// changeRoundDuration 先结算进行中的轮次, 新的时长从下一轮开始
func (c *Casino) changeRoundDuration(config *cty.CasinoConfig, duration uint64) (*types.Receipt, error) {
	if duration > cty.MaxRoundDuration || !cty.ValidRoundDuration(int64(duration)) {
		return nil, cty.ErrRoundDuration
	}
	timer, err := c.getTimer()
	if err != nil {
		return nil, err
	}
	latest, err := c.latestRandomness(config)
	if err != nil {
		return nil, err
	}
	last, err := c.getUint64(lastRandomnessKey(c.GetName()))
	if err != nil {
		return nil, err
	}
	receipt, err := c.endRound(config, timer, latest, last)
	if err != nil {
		return nil, err
	}
	if err := timer.UpdateDuration(int64(duration)); err != nil {
		return nil, err
	}
	if err := c.save(receipt, timerKey(c.GetName()), timer); err != nil {
		return nil, err
	}
	clog.Info("change round duration", "game", c.GetName(), "duration", duration)
	return receipt, nil
}

func (c *Casino) stopGame() (*types.Receipt, error) {
	timer, err := c.getTimer()
	if err != nil {
		return nil, err
	}
	timer.Stop()
	clog.Info("stop game", "game", c.GetName(), "round", timer.CurrentRound)
	receipt := &types.Receipt{Ty: types.ExecOk}
	if err := c.save(receipt, timerKey(c.GetName()), timer); err != nil {
		return nil, err
	}
	return receipt, nil
}

// drainGame 全部余额(扣税后)存入 reserve
func (c *Casino) drainGame(config *cty.CasinoConfig) (*types.Receipt, error) {
	api := c.GetAPI()
	balance, err := api.GetBalance(c.GetExecAddress(), config.NativeDenom)
	if err != nil {
		return nil, err
	}
	coin, err := tty.DeductTax(api, types.NewCoin(config.NativeDenom, balance))
	if err != nil {
		return nil, err
	}
	clog.Info("drain game", "game", c.GetName(), "balance", balance, "send", coin.Amount)
	msg := types.NewExecMsg(config.Reserve, rty.NewDepositFundsAction(), coin)
	return &types.Receipt{Ty: types.ExecOk, Msgs: []*types.SubMsg{msg}}, nil
}
