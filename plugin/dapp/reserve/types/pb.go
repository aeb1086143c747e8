// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//ReserveAction reserve 交易
type ReserveAction struct {
	Ty          int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Instantiate *ReserveConfig `protobuf:"bytes,2,opt,name=instantiate,proto3" json:"instantiate,omitempty"`
	Threshold   uint64         `protobuf:"varint,3,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Game        string         `protobuf:"bytes,4,opt,name=game,proto3" json:"game,omitempty"`
	Amount      uint64         `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReserveAction) Reset()         { *m = ReserveAction{} }
func (m *ReserveAction) String() string { return proto.CompactTextString(m) }
func (*ReserveAction) ProtoMessage()    {}

//ReserveConfig 配置
type ReserveConfig struct {
	Owner       string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Gov         string `protobuf:"bytes,2,opt,name=gov,proto3" json:"gov,omitempty"`
	Market      string `protobuf:"bytes,3,opt,name=market,proto3" json:"market,omitempty"`
	NativeDenom string `protobuf:"bytes,4,opt,name=nativeDenom,proto3" json:"nativeDenom,omitempty"`
	Threshold   uint64 `protobuf:"varint,5,opt,name=threshold,proto3" json:"threshold,omitempty"`
}

func (m *ReserveConfig) Reset()         { *m = ReserveConfig{} }
func (m *ReserveConfig) String() string { return proto.CompactTextString(m) }
func (*ReserveConfig) ProtoMessage()    {}

//PendingRequest 等待货币市场赎回完成的资金请求
type PendingRequest struct {
	Correlation string `protobuf:"bytes,1,opt,name=correlation,proto3" json:"correlation,omitempty"`
	Requester   string `protobuf:"bytes,2,opt,name=requester,proto3" json:"requester,omitempty"`
	Amount      uint64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	State       int32  `protobuf:"varint,4,opt,name=state,proto3" json:"state,omitempty"`
}

func (m *PendingRequest) Reset()         { *m = PendingRequest{} }
func (m *PendingRequest) String() string { return proto.CompactTextString(m) }
func (*PendingRequest) ProtoMessage()    {}

//CurrentBalance 原生币加上 aToken 折算的总余额
type CurrentBalance struct {
	Balance uint64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *CurrentBalance) Reset()         { *m = CurrentBalance{} }
func (m *CurrentBalance) String() string { return proto.CompactTextString(m) }
func (*CurrentBalance) ProtoMessage()    {}

//BalancePoint 某个高度的总余额
type BalancePoint struct {
	Height  int64  `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	Balance uint64 `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *BalancePoint) Reset()         { *m = BalancePoint{} }
func (m *BalancePoint) String() string { return proto.CompactTextString(m) }
func (*BalancePoint) ProtoMessage()    {}

//ReqHistory 余额历史分页, StartAfter 为 0 时从头开始
type ReqHistory struct {
	StartAfter int64 `protobuf:"varint,1,opt,name=startAfter,proto3" json:"startAfter,omitempty"`
	Limit      int32 `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *ReqHistory) Reset()         { *m = ReqHistory{} }
func (m *ReqHistory) String() string { return proto.CompactTextString(m) }
func (*ReqHistory) ProtoMessage()    {}

//BalanceHistory 余额历史, 高度升序
type BalanceHistory struct {
	Points []*BalancePoint `protobuf:"bytes,1,rep,name=points,proto3" json:"points,omitempty"`
}

func (m *BalanceHistory) Reset()         { *m = BalanceHistory{} }
func (m *BalanceHistory) String() string { return proto.CompactTextString(m) }
func (*BalanceHistory) ProtoMessage()    {}

//ReceiptRequest 资金请求日志
type ReceiptRequest struct {
	Correlation string `protobuf:"bytes,1,opt,name=correlation,proto3" json:"correlation,omitempty"`
	Requester   string `protobuf:"bytes,2,opt,name=requester,proto3" json:"requester,omitempty"`
	Amount      uint64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Redeem      uint64 `protobuf:"varint,4,opt,name=redeem,proto3" json:"redeem,omitempty"`
}

func (m *ReceiptRequest) Reset()         { *m = ReceiptRequest{} }
func (m *ReceiptRequest) String() string { return proto.CompactTextString(m) }
func (*ReceiptRequest) ProtoMessage()    {}
