// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math"

	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// TaxPolicy 宿主在合约转出原生币时按 treasury 的配置收税, 税进入 treasury 合约地址
type TaxPolicy struct{}

// ComputeTax implements executor.TaxPolicy
func (TaxPolicy) ComputeTax(api drivers.API, coin *types.Coin) (uint64, error) {
	return ComputeTax(api, coin)
}

// Collector 税收归集地址
func (TaxPolicy) Collector() string {
	return drivers.ExecAddress(TreasuryX)
}

// QueryTaxRate 当前税率, treasury 没有部署或没有初始化时为 0
func QueryTaxRate(api drivers.API) (decimal.Decimal, error) {
	msg, err := api.QueryChain(TreasuryX, "TaxRate", &types.ReqNil{})
	if err != nil {
		cause := errors.Cause(err)
		if cause == types.ErrNotInstantiated || cause == types.ErrUnRegistedDriver {
			return types.DecZero, nil
		}
		return types.DecZero, err
	}
	return types.ParseDec(msg.(*TaxRate).Rate)
}

// QueryTaxCap denom 的税收上限, 没有设置时不限
func QueryTaxCap(api drivers.API, denom string) (uint64, error) {
	msg, err := api.QueryChain(TreasuryX, "TaxCap", &types.ReqString{Data: denom})
	if err != nil {
		cause := errors.Cause(err)
		if cause == types.ErrNotInstantiated || cause == types.ErrUnRegistedDriver {
			return math.MaxUint64, nil
		}
		return 0, err
	}
	capacity := msg.(*TaxCap)
	if !capacity.Capped {
		return math.MaxUint64, nil
	}
	return capacity.Cap, nil
}

// CalcTax min(amount - floor(amount / (1 + rate)), cap)
func CalcTax(amount uint64, rate decimal.Decimal, capacity uint64) (uint64, error) {
	net, err := types.QuoFloor(amount, types.DecOne.Add(rate))
	if err != nil {
		return 0, err
	}
	tax := amount - net
	if tax > capacity {
		tax = capacity
	}
	return tax, nil
}

// ComputeTax coin 转出时需要额外支付的税
func ComputeTax(api drivers.API, coin *types.Coin) (uint64, error) {
	rate, err := QueryTaxRate(api)
	if err != nil {
		return 0, err
	}
	if rate.IsZero() {
		return 0, nil
	}
	capacity, err := QueryTaxCap(api, coin.Denom)
	if err != nil {
		return 0, err
	}
	return CalcTax(coin.Amount, rate, capacity)
}

// DeductTax 扣除税之后的金额, 使 amount + tax 不超过 coin.Amount
func DeductTax(api drivers.API, coin *types.Coin) (*types.Coin, error) {
	tax, err := ComputeTax(api, coin)
	if err != nil {
		return nil, err
	}
	return types.NewCoin(coin.Denom, coin.Amount-tax), nil
}
