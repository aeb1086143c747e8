// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package games

import (
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	"github.com/33cn/vegas/types"
	"github.com/shopspring/decimal"
)

const (
	diceMin uint32 = 3
	diceMax uint32 = 12
)

// 押注 n 时, 两个骰子点数和 >= n 的组合数(共 36 种), n = 3..12
var diceWays = []int64{35, 33, 30, 26, 21, 15, 10, 6, 3, 1}

var thirtySix = decimal.New(36, 0)

// 押注 n 表示点数和不小于 n 时赢
type dice struct{}

func (dice) Name() string       { return cty.DiceX }
func (dice) MinOutcome() uint32 { return diceMin }
func (dice) MaxOutcome() uint32 { return diceMax }

func (dice) Outcome(randomness []byte) (uint32, error) {
	a, b, err := Faces(randomness)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

func (dice) Wins(bet, rolled uint32) bool {
	return bet <= rolled
}

// coef = 36(1-a)/ways - 1
func (dice) Coefficients(advantage decimal.Decimal) ([]decimal.Decimal, error) {
	if err := CheckAdvantage(advantage); err != nil {
		return nil, err
	}
	c := types.DecOne.Sub(advantage).Mul(thirtySix)
	coefs := make([]decimal.Decimal, len(diceWays))
	for i, ways := range diceWays {
		q, err := types.QuoDec(c, decimal.New(ways, 0))
		if err != nil {
			return nil, err
		}
		coefs[i] = q.Sub(types.DecOne)
	}
	return coefs, nil
}

func (dice) CoefficientIndex(outcome uint32) int {
	return int(outcome - diceMin)
}

func (dice) LimitScope() LimitScope {
	return LimitPerRound
}
