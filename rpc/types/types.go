// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rpc 请求和返回的 json 结构
package types

import (
	"encoding/json"

	"github.com/33cn/vegas/common"
	"github.com/33cn/vegas/types"
)

// SendTx 发送交易, Payload 是执行器 action 的 json
type SendTx struct {
	Execer  string          `json:"execer"`
	Payload json.RawMessage `json:"payload"`
	From    string          `json:"from"`
	Funds   []*types.Coin   `json:"funds,omitempty"`
	Nonce   int64           `json:"nonce,omitempty"`
}

// Query 查询合约, Payload 是查询参数的 json
type Query struct {
	Execer   string          `json:"execer"`
	FuncName string          `json:"funcName"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// ReceiptLog 日志, Log 为十六进制
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log string `json:"log"`
}

// TxResult 交易执行结果
type TxResult struct {
	Hash      string        `json:"hash"`
	Execer    string        `json:"execer"`
	Height    int64         `json:"height"`
	Blocktime int64         `json:"blocktime"`
	Ty        int32         `json:"ty"`
	Logs      []*ReceiptLog `json:"logs,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// Header 区块头
type Header struct {
	Height    int64 `json:"height"`
	Blocktime int64 `json:"blocktime"`
}

// Account 余额
type Account struct {
	Addr    string `json:"addr"`
	Denom   string `json:"denom"`
	Balance uint64 `json:"balance"`
}

// ConvertTxResult 转换成 json 结构
func ConvertTxResult(r *types.TxResult) *TxResult {
	res := &TxResult{
		Hash:      common.ToHex(r.Hash),
		Execer:    r.Execer,
		Height:    r.Height,
		Blocktime: r.Blocktime,
		Error:     r.Error,
	}
	if r.Receipt != nil {
		res.Ty = r.Receipt.Ty
		for _, l := range r.Receipt.Logs {
			res.Logs = append(res.Logs, &ReceiptLog{Ty: l.Ty, Log: common.ToHex(l.Log)})
		}
	}
	return res
}
