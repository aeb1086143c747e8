// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types casino 游戏(coinflip, dice)共用的消息, 常量和轮次状态机
package types

import (
	"github.com/33cn/vegas/types"
)

//casino op
const (
	CasinoActionInstantiate = 1 + iota
	CasinoActionBet
	CasinoActionReceiveRewards
	CasinoActionChangeAdvantageValue
	CasinoActionChangeWinTax
	CasinoActionChangeMaxNumberOfBets
	CasinoActionChangeMaxBettingRatio
	CasinoActionChangeRoundDuration
	CasinoActionChangeMaxCashflow
	CasinoActionDrainGame
	CasinoActionStopGame
)

//log for casino
const (
	TyLogBet     = 1401
	TyLogSettle  = 1402
	TyLogRewards = 1403
	TyLogConfig  = 1404
)

const (
	//CoinflipX 猜正反
	CoinflipX             = "coinflip"
	//DiceX 双骰子
	DiceX                 = "dice"
	//RandomnessGracePeriod 信标发布周期(秒), 轮次结束后等待新随机数的时间
	RandomnessGracePeriod = 30
	//MaxRoundDuration 轮次时长上限(秒), 一年
	MaxRoundDuration = 365 * 24 * 3600
)

//query page
const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

//GameNames 所有游戏执行器
var GameNames = []string{CoinflipX, DiceX}

func init() {
	for _, name := range GameNames {
		types.RegistorExecutor(name, &types.ExecTypeBase{
			Name:    name,
			Payload: func() types.Message { return &CasinoAction{} },
			Queries: map[string]func() types.Message{
				"WinCoefficients":       func() types.Message { return &types.ReqNil{} },
				"PlayerRewards":         func() types.Message { return &ReqPlayer{} },
				"CurrentRound":          func() types.Message { return &types.ReqNil{} },
				"PlayerBetsForRound":    func() types.Message { return &ReqPlayerRound{} },
				"PlayerBetsAllRounds":   func() types.Message { return &ReqPlayer{} },
				"AllBets":               func() types.Message { return &ReqAllBets{} },
				"OutcomeHistory":        func() types.Message { return &ReqOutcomes{} },
				"GetConfig":             func() types.Message { return &types.ReqNil{} },
				"GetBettingLimit":       func() types.Message { return &types.ReqNil{} },
				"GetActiveBettingLimit": func() types.Message { return &ReqPlayer{} },
				"GetTotalRewards":       func() types.Message { return &types.ReqNil{} },
			},
		})
	}
}

//NewInstantiateTx 初始化游戏, 发送方成为 owner
func NewInstantiateTx(game, from string, init *CasinoInit) *types.Transaction {
	return types.CreateTx(game, &CasinoAction{Ty: CasinoActionInstantiate, Instantiate: init}, from)
}

//NewBetTx 下注, coin 为押注金额
func NewBetTx(game, from string, outcome uint32, coin *types.Coin) *types.Transaction {
	return types.CreateTx(game, &CasinoAction{Ty: CasinoActionBet, Outcome: outcome}, from, coin)
}

//NewReceiveRewardsTx 领取奖励
func NewReceiveRewardsTx(game, from string) *types.Transaction {
	return types.CreateTx(game, &CasinoAction{Ty: CasinoActionReceiveRewards}, from)
}

//NewChangeDecTx 修改定点数参数(advantage, win tax)
func NewChangeDecTx(game, from string, ty int32, value string) *types.Transaction {
	return types.CreateTx(game, &CasinoAction{Ty: ty, Value: value}, from)
}

//NewChangeNumberTx 修改整数参数(max bets, ratio, duration, cashflow)
func NewChangeNumberTx(game, from string, ty int32, number uint64) *types.Transaction {
	return types.CreateTx(game, &CasinoAction{Ty: ty, Number: number}, from)
}

//NewAdminTx DrainGame, StopGame
func NewAdminTx(game, from string, ty int32) *types.Transaction {
	return types.CreateTx(game, &CasinoAction{Ty: ty}, from)
}
