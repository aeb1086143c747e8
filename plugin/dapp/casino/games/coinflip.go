// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package games

import (
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	"github.com/33cn/vegas/types"
	"github.com/shopspring/decimal"
)

//coinflip outcome
const (
	Head uint32 = 0
	Tail uint32 = 1
)

var two = decimal.New(2, 0)

// 0 正面, 1 反面. 两个点数相等时算正面
type coinflip struct{}

func (coinflip) Name() string       { return cty.CoinflipX }
func (coinflip) MinOutcome() uint32 { return Head }
func (coinflip) MaxOutcome() uint32 { return Tail }

func (coinflip) Outcome(randomness []byte) (uint32, error) {
	head, tail, err := Faces(randomness)
	if err != nil {
		return 0, err
	}
	if head < tail {
		return Tail, nil
	}
	return Head, nil
}

func (coinflip) Wins(bet, rolled uint32) bool {
	return bet == rolled
}

// 赢的概率 1/2: coef = 2(1-a) - 1
func (coinflip) Coefficients(advantage decimal.Decimal) ([]decimal.Decimal, error) {
	if err := CheckAdvantage(advantage); err != nil {
		return nil, err
	}
	c := types.DecOne.Sub(advantage).Mul(two).Truncate(types.DecimalPlaces)
	return []decimal.Decimal{c.Sub(types.DecOne)}, nil
}

func (coinflip) CoefficientIndex(outcome uint32) int {
	return 0
}

func (coinflip) LimitScope() LimitScope {
	return LimitPerPlayer
}
