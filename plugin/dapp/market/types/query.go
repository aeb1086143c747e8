// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/shopspring/decimal"
)

//QueryExchangeRate 市场当前汇率, stable = aToken * rate
func QueryExchangeRate(api drivers.API, market string) (decimal.Decimal, error) {
	msg, err := api.QueryChain(market, "State", &types.ReqNil{})
	if err != nil {
		return types.DecZero, err
	}
	return types.ParseDec(msg.(*MarketState).ExchangeRate)
}

//QueryATokenBalance addr 持有的 aToken
func QueryATokenBalance(api drivers.API, market string, addr string) (uint64, error) {
	msg, err := api.QueryChain(market, "Balance", &types.ReqString{Data: addr})
	if err != nil {
		return 0, err
	}
	return msg.(*types.Account).Balance, nil
}
