// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//DecimalPlaces 定点数精度, 超出部分截断
const DecimalPlaces = 18

var (
	//DecOne 1
	DecOne = decimal.New(1, 0)
	//DecZero 0
	DecZero = decimal.Zero
)

//ParseDec 解析非负定点数, 截断到 18 位小数
func ParseDec(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return DecZero, errors.Wrapf(ErrInvalidDecimal, "%s: %v", s, err)
	}
	if d.IsNegative() {
		return DecZero, errors.Wrapf(ErrInvalidDecimal, "negative %s", s)
	}
	return d.Truncate(DecimalPlaces), nil
}

//MustParseDec 常量和测试使用
func MustParseDec(s string) decimal.Decimal {
	d, err := ParseDec(s)
	if err != nil {
		panic(err)
	}
	return d
}

//FormatDec 18 位精度的字符串, 去掉末尾的 0
func FormatDec(d decimal.Decimal) string {
	return d.Truncate(DecimalPlaces).String()
}

//DecFromUint64 uint64 -> decimal
func DecFromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

//QuoDec a / b 截断到 18 位小数
func QuoDec(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return DecZero, ErrDivByZero
	}
	q, _ := a.QuoRem(b, DecimalPlaces)
	return q, nil
}

//MulFloor floor(amount * d)
func MulFloor(amount uint64, d decimal.Decimal) (uint64, error) {
	return toUint64(DecFromUint64(amount).Mul(d).Floor())
}

//QuoFloor floor(amount / d)
func QuoFloor(amount uint64, d decimal.Decimal) (uint64, error) {
	if d.IsZero() {
		return 0, ErrDivByZero
	}
	q, _ := DecFromUint64(amount).QuoRem(d, 0)
	return toUint64(q)
}

func toUint64(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() {
		return 0, ErrOverflow
	}
	b := d.BigInt()
	if !b.IsUint64() {
		return 0, ErrOverflow
	}
	return b.Uint64(), nil
}
