// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package games

import (
	"github.com/33cn/vegas/common"
	"github.com/33cn/vegas/types"
	"github.com/shopspring/decimal"
)

//WinMultiplier 1 - winTax, winTax 必须在 [0, 1]
func WinMultiplier(winTax decimal.Decimal) (decimal.Decimal, bool) {
	if winTax.IsNegative() || winTax.GreaterThan(types.DecOne) {
		return types.DecZero, false
	}
	return types.DecOne.Sub(winTax), true
}

//Payout amount + floor(floor(amount * coef) * multiplier)
func Payout(amount uint64, coef, multiplier decimal.Decimal) (uint64, error) {
	won, err := types.MulFloor(amount, coef)
	if err != nil {
		return 0, err
	}
	taxed, err := types.MulFloor(won, multiplier)
	if err != nil {
		return 0, err
	}
	return common.SafeAdd(amount, taxed)
}

//FormatCoefficients 保存到配置中的字符串形式
func FormatCoefficients(coefs []decimal.Decimal) []string {
	out := make([]string, len(coefs))
	for i, c := range coefs {
		out[i] = types.FormatDec(c)
	}
	return out
}

//ParseCoefficients 从配置中恢复
func ParseCoefficients(coefs []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(coefs))
	for i, s := range coefs {
		d, err := types.ParseDec(s)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
