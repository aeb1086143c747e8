// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package games 两种游戏的结果空间, 开奖和赔率
package games

import (
	"math/big"

	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//LimitScope 下注上限按玩家还是按整轮计算
type LimitScope int

//limit scope
const (
	LimitPerPlayer LimitScope = iota
	LimitPerRound
)

//Game 游戏规则, 轮次和结算逻辑由执行器共用
type Game interface {
	Name() string
	MinOutcome() uint32
	MaxOutcome() uint32
	// Outcome 从 32 字节随机数计算本轮结果
	Outcome(randomness []byte) (uint32, error)
	// Wins 押注 bet 在结果为 rolled 时是否赢
	Wins(bet, rolled uint32) bool
	// Coefficients advantage 对应的赔率表
	Coefficients(advantage decimal.Decimal) ([]decimal.Decimal, error)
	// CoefficientIndex 押注结果在赔率表中的位置
	CoefficientIndex(outcome uint32) int
	LimitScope() LimitScope
}

var registry = map[string]Game{
	cty.CoinflipX: coinflip{},
	cty.DiceX:     dice{},
}

//Load 按执行器名加载游戏
func Load(name string) (Game, error) {
	g, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(cty.ErrUnknownGame, "game %s", name)
	}
	return g, nil
}

//CheckOutcome 押注位置必须在 [min, max]
func CheckOutcome(g Game, outcome uint32) error {
	if outcome < g.MinOutcome() || outcome > g.MaxOutcome() {
		return &cty.InvalidBetPositionError{Current: outcome, Min: g.MinOutcome(), Max: g.MaxOutcome()}
	}
	return nil
}

var six = big.NewInt(6)

//Faces 前后 16 字节按大端整数对 6 取模加 1, 得到两个骰子点数
func Faces(randomness []byte) (uint32, uint32, error) {
	if len(randomness) != oty.RandomnessLength {
		return 0, 0, oty.ErrRandomnessLength
	}
	return face(randomness[:16]), face(randomness[16:]), nil
}

func face(b []byte) uint32 {
	m := new(big.Int).Mod(new(big.Int).SetBytes(b), six)
	return uint32(m.Uint64()) + 1
}

//CheckAdvantage advantage 必须在 [0, 1)
func CheckAdvantage(advantage decimal.Decimal) error {
	if advantage.IsNegative() || advantage.GreaterThanOrEqual(types.DecOne) {
		return errors.Wrapf(cty.ErrAdvantageValueOutOfRange, "advantage %s", advantage)
	}
	return nil
}
