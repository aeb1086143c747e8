// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的消息和常量
package types

import (
	"github.com/33cn/vegas/types"
	proto "github.com/golang/protobuf/proto"
)

//coins op
const (
	CoinsActionTransfer = 1
)

var (
	//CoinsX 执行器名
	CoinsX = "coins"
	//ExecerCoins []byte
	ExecerCoins = []byte(CoinsX)
)

func init() {
	types.RegistorExecutor(CoinsX, &types.ExecTypeBase{
		Name:    CoinsX,
		Payload: func() types.Message { return &CoinsAction{} },
		Queries: map[string]func() types.Message{
			"GetBalance": func() types.Message { return &types.ReqBalance{} },
		},
	})
}

//CoinsAction coins 交易
type CoinsAction struct {
	Ty       int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer *CoinsTransfer `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

//CoinsTransfer 原生币转账
type CoinsTransfer struct {
	To     string      `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount *types.Coin `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CoinsTransfer) Reset()         { *m = CoinsTransfer{} }
func (m *CoinsTransfer) String() string { return proto.CompactTextString(m) }
func (*CoinsTransfer) ProtoMessage()    {}

//NewTransfer 构造转账交易
func NewTransfer(from, to string, coin *types.Coin) *types.Transaction {
	action := &CoinsAction{Ty: CoinsActionTransfer, Transfer: &CoinsTransfer{To: to, Amount: coin}}
	return types.CreateTx(CoinsX, action, from)
}
