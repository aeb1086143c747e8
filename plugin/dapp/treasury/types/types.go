// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types treasury 税率和税收上限
package types

import (
	"github.com/33cn/vegas/types"
)

//treasury op
const (
	TreasuryActionInstantiate = 1 + iota
	TreasuryActionSetTaxRate
	TreasuryActionSetTaxCap

	//log for treasury
	TyLogTreasuryConfig = 1101
)

//TreasuryX 执行器名
const TreasuryX = "treasury"

func init() {
	types.RegistorExecutor(TreasuryX, &types.ExecTypeBase{
		Name:    TreasuryX,
		Payload: func() types.Message { return &TreasuryAction{} },
		Queries: map[string]func() types.Message{
			"TaxRate":   func() types.Message { return &types.ReqNil{} },
			"TaxCap":    func() types.Message { return &types.ReqString{} },
			"GetConfig": func() types.Message { return &types.ReqNil{} },
		},
	})
}

//NewInstantiateTx 初始化, 发送方成为 owner
func NewInstantiateTx(from string, rate string) *types.Transaction {
	action := &TreasuryAction{Ty: TreasuryActionInstantiate, Rate: &TaxRate{Rate: rate}}
	return types.CreateTx(TreasuryX, action, from)
}

//NewSetTaxRateTx 设置税率
func NewSetTaxRateTx(from string, rate string) *types.Transaction {
	action := &TreasuryAction{Ty: TreasuryActionSetTaxRate, Rate: &TaxRate{Rate: rate}}
	return types.CreateTx(TreasuryX, action, from)
}

//NewSetTaxCapTx 设置某个币种的税收上限
func NewSetTaxCapTx(from string, denom string, cap uint64) *types.Transaction {
	action := &TreasuryAction{Ty: TreasuryActionSetTaxCap, Cap: &TaxCap{Denom: denom, Cap: cap}}
	return types.CreateTx(TreasuryX, action, from)
}
