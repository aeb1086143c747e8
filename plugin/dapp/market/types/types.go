// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types market 货币市场: 存入稳定币获得计息的 aToken
package types

import (
	"github.com/33cn/vegas/types"
)

//market op
const (
	MarketActionInstantiate = 1 + iota
	MarketActionDepositStable
	MarketActionRedeemStable
	MarketActionSetExchangeRate
	MarketActionTransferToken

	//log for market
	TyLogMarketDeposit = 1201
	TyLogMarketRedeem  = 1202
	TyLogMarketRate    = 1203
)

const (
	//MarketX 执行器名
	MarketX = "market"
	//ATokenSymbol aToken 记账符号
	ATokenSymbol = "aust"
)

func init() {
	types.RegistorExecutor(MarketX, &types.ExecTypeBase{
		Name:    MarketX,
		Payload: func() types.Message { return &MarketAction{} },
		Queries: map[string]func() types.Message{
			"State":   func() types.Message { return &types.ReqNil{} },
			"Balance": func() types.Message { return &types.ReqString{} },
		},
	})
}

//NewInstantiateTx 初始化
func NewInstantiateTx(from, stableDenom, rate string) *types.Transaction {
	action := &MarketAction{Ty: MarketActionInstantiate, Instantiate: &MarketState{StableDenom: stableDenom, ExchangeRate: rate}}
	return types.CreateTx(MarketX, action, from)
}

//NewDepositStableTx 存入稳定币
func NewDepositStableTx(from string, coin *types.Coin) *types.Transaction {
	return types.CreateTx(MarketX, &MarketAction{Ty: MarketActionDepositStable}, from, coin)
}

//NewRedeemStableAction 赎回 amount 个 aToken
func NewRedeemStableAction(amount uint64) *MarketAction {
	return &MarketAction{Ty: MarketActionRedeemStable, Redeem: &RedeemStable{Amount: amount}}
}

//NewSetExchangeRateTx 设置汇率
func NewSetExchangeRateTx(from, rate string) *types.Transaction {
	return types.CreateTx(MarketX, &MarketAction{Ty: MarketActionSetExchangeRate, ExchangeRate: rate}, from)
}
