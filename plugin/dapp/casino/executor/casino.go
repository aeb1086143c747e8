// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
casino 按轮次下注的游戏, coinflip 和 dice 共用这个执行器:

Bet: 轮次状态
  Live                -> 直接记录下注
  Ready               -> 先结算上一轮, 再记录下注
  WaitingOnRandomness -> 等待信标发布新的随机数
  Stopped             -> 拒绝
结算: 用信标最新的随机数开奖, 给赢家记账, 进入下一轮,
      然后根据余额向 reserve 请求资金或者存入盈余(最多一条消息)
*/

import (
	"github.com/33cn/vegas/plugin/dapp/casino/games"
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
)

var clog = log.New("module", "execs.casino")

var (
	betCounter    = gometrics.GetOrRegisterCounter("casino.bets", nil)
	settleCounter = gometrics.GetOrRegisterCounter("casino.settlements", nil)
	payoutCounter = gometrics.GetOrRegisterCounter("casino.payout", nil)
)

//Init 注册执行器, name 为 coinflip 或 dice
func Init(name string, sub []byte) {
	game, err := games.Load(name)
	if err != nil {
		panic(err)
	}
	drivers.Register(name, func() drivers.Driver {
		return newCasino(game)
	}, 0)
}

//Casino 执行器
type Casino struct {
	drivers.DriverBase
	game games.Game
}

func newCasino(game games.Game) drivers.Driver {
	c := &Casino{game: game}
	c.SetChild(c)
	return c
}

func (c *Casino) getConfig() (*cty.CasinoConfig, error) {
	var config cty.CasinoConfig
	if err := drivers.GetState(c.GetStateDB(), configKey(c.GetName()), &config); err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrNotInstantiated
		}
		return nil, err
	}
	return &config, nil
}

func (c *Casino) getTimer() (*cty.RoundTimer, error) {
	var timer cty.RoundTimer
	if err := drivers.GetState(c.GetStateDB(), timerKey(c.GetName()), &timer); err != nil {
		return nil, err
	}
	return &timer, nil
}

// getUint64 不存在时为 0
func (c *Casino) getUint64(key []byte) (uint64, error) {
	var v types.Uint64
	err := drivers.GetState(c.GetStateDB(), key, &v)
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v.Data, nil
}

// save 写入状态, kv 加入 receipt
func (c *Casino) save(receipt *types.Receipt, key []byte, msg types.Message) error {
	kv, err := drivers.SetState(c.GetStateDB(), key, msg)
	if err != nil {
		return err
	}
	receipt.KV = append(receipt.KV, kv)
	return nil
}

func (c *Casino) saveUint64(receipt *types.Receipt, key []byte, v uint64) error {
	return c.save(receipt, key, &types.Uint64{Data: v})
}

func (c *Casino) getPlayerBets(round uint64, player string) (*cty.PlayerRoundBets, error) {
	var bets cty.PlayerRoundBets
	err := drivers.GetState(c.GetStateDB(), betsKey(c.GetName(), round, player), &bets)
	if err == types.ErrNotFound {
		return &cty.PlayerRoundBets{Round: round, Player: player}, nil
	}
	if err != nil {
		return nil, err
	}
	return &bets, nil
}

func (c *Casino) getRoundBets(round uint64) (*cty.RoundBets, error) {
	var bets cty.RoundBets
	err := drivers.GetState(c.GetStateDB(), roundKey(c.GetName(), round), &bets)
	if err == types.ErrNotFound {
		return &bets, nil
	}
	if err != nil {
		return nil, err
	}
	return &bets, nil
}

func (c *Casino) getPlayerRounds(player string) (*cty.PlayerRounds, error) {
	var rounds cty.PlayerRounds
	err := drivers.GetState(c.GetStateDB(), playerRoundsKey(c.GetName(), player), &rounds)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	return &rounds, nil
}

// latestRandomness 信标还没有发布时返回 nil
func (c *Casino) latestRandomness(config *cty.CasinoConfig) (*oty.Randomness, error) {
	msg, err := c.GetAPI().QueryChain(config.Oracle, "LatestRandomness", &types.ReqNil{})
	if err != nil {
		if errors.Cause(err) == oty.ErrNoRandomness {
			return nil, nil
		}
		return nil, err
	}
	return msg.(*oty.Randomness), nil
}

// roundStatus 当前状态, 同时返回信标最新的随机数和上次绑定的信标轮次
func (c *Casino) roundStatus(config *cty.CasinoConfig, timer *cty.RoundTimer) (int32, *oty.Randomness, uint64, error) {
	latest, err := c.latestRandomness(config)
	if err != nil {
		return 0, nil, 0, err
	}
	last, err := c.getUint64(lastRandomnessKey(c.GetName()))
	if err != nil {
		return 0, nil, 0, err
	}
	fresh := latest != nil && latest.Round > last
	return timer.Status(c.GetBlockTime(), fresh), latest, last, nil
}

// owner 或者 gov
func checkOwner(config *cty.CasinoConfig, from string) error {
	if from == config.Owner || (config.Gov != "" && from == config.Gov) {
		return nil
	}
	return errors.Wrapf(types.ErrUnauthorized, "casino owner is %s", config.Owner)
}

func mergeReceipt(dst, src *types.Receipt) {
	if src == nil {
		return
	}
	dst.KV = append(dst.KV, src.KV...)
	dst.Logs = append(dst.Logs, src.Logs...)
	dst.Msgs = append(dst.Msgs, src.Msgs...)
}
