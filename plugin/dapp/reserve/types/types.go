// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types reserve 公共资金池: 为游戏补足赔付, 吸收游戏的盈余并存入货币市场
package types

import (
	"github.com/33cn/vegas/types"
)

//reserve op
const (
	ReserveActionInstantiate = 1 + iota
	ReserveActionChangeThreshold
	ReserveActionAddGame
	ReserveActionRemoveGame
	ReserveActionRequestFunds
	ReserveActionDepositFunds

	//log for reserve
	TyLogReserveConfig  = 1301
	TyLogReserveRequest = 1302
	TyLogReserveSettled = 1303
	TyLogReserveBalance = 1304
)

//saga state
const (
	RequestPending = 1 + iota
	RequestSettled
)

const (
	//ReserveX 执行器名
	ReserveX = "reserve"
	//ReplyRedeem 从货币市场赎回的回调 id
	ReplyRedeem = 1
)

func init() {
	types.RegistorExecutor(ReserveX, &types.ExecTypeBase{
		Name:    ReserveX,
		Payload: func() types.Message { return &ReserveAction{} },
		Queries: map[string]func() types.Message{
			"CurrentBalance": func() types.Message { return &types.ReqNil{} },
			"GetThreshold":   func() types.Message { return &types.ReqNil{} },
			"ListGames":      func() types.Message { return &types.ReqNil{} },
			"BalanceHistory": func() types.Message { return &ReqHistory{} },
			"PendingRequest": func() types.Message { return &types.ReqNil{} },
			"GetConfig":      func() types.Message { return &types.ReqNil{} },
		},
	})
}

//NewInstantiateTx 初始化, 发送方成为 owner
func NewInstantiateTx(from string, config *ReserveConfig) *types.Transaction {
	return types.CreateTx(ReserveX, &ReserveAction{Ty: ReserveActionInstantiate, Instantiate: config}, from)
}

//NewAddGameTx 授权游戏
func NewAddGameTx(from, game string) *types.Transaction {
	return types.CreateTx(ReserveX, &ReserveAction{Ty: ReserveActionAddGame, Game: game}, from)
}

//NewRemoveGameTx 取消授权
func NewRemoveGameTx(from, game string) *types.Transaction {
	return types.CreateTx(ReserveX, &ReserveAction{Ty: ReserveActionRemoveGame, Game: game}, from)
}

//NewChangeThresholdTx 修改留存阈值
func NewChangeThresholdTx(from string, threshold uint64) *types.Transaction {
	return types.CreateTx(ReserveX, &ReserveAction{Ty: ReserveActionChangeThreshold, Threshold: threshold}, from)
}

//NewRequestFundsAction 游戏请求资金
func NewRequestFundsAction(amount uint64) *ReserveAction {
	return &ReserveAction{Ty: ReserveActionRequestFunds, Amount: amount}
}

//NewDepositFundsAction 游戏存入盈余, 资金随消息附带
func NewDepositFundsAction() *ReserveAction {
	return &ReserveAction{Ty: ReserveActionDepositFunds}
}
