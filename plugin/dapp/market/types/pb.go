// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//MarketAction market 交易
type MarketAction struct {
	Ty           int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Instantiate  *MarketState   `protobuf:"bytes,2,opt,name=instantiate,proto3" json:"instantiate,omitempty"`
	Redeem       *RedeemStable  `protobuf:"bytes,3,opt,name=redeem,proto3" json:"redeem,omitempty"`
	ExchangeRate string         `protobuf:"bytes,4,opt,name=exchangeRate,proto3" json:"exchangeRate,omitempty"`
	Transfer     *TransferToken `protobuf:"bytes,5,opt,name=transfer,proto3" json:"transfer,omitempty"`
}

func (m *MarketAction) Reset()         { *m = MarketAction{} }
func (m *MarketAction) String() string { return proto.CompactTextString(m) }
func (*MarketAction) ProtoMessage()    {}

//MarketState 市场状态
type MarketState struct {
	Owner        string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	StableDenom  string `protobuf:"bytes,2,opt,name=stableDenom,proto3" json:"stableDenom,omitempty"`
	ExchangeRate string `protobuf:"bytes,3,opt,name=exchangeRate,proto3" json:"exchangeRate,omitempty"`
	TotalSupply  uint64 `protobuf:"varint,4,opt,name=totalSupply,proto3" json:"totalSupply,omitempty"`
}

func (m *MarketState) Reset()         { *m = MarketState{} }
func (m *MarketState) String() string { return proto.CompactTextString(m) }
func (*MarketState) ProtoMessage()    {}

//RedeemStable 赎回
type RedeemStable struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *RedeemStable) Reset()         { *m = RedeemStable{} }
func (m *RedeemStable) String() string { return proto.CompactTextString(m) }
func (*RedeemStable) ProtoMessage()    {}

//TransferToken aToken 转账
type TransferToken struct {
	To     string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferToken) Reset()         { *m = TransferToken{} }
func (m *TransferToken) String() string { return proto.CompactTextString(m) }
func (*TransferToken) ProtoMessage()    {}

//ReceiptMarket 存取日志
type ReceiptMarket struct {
	Addr   string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Stable uint64 `protobuf:"varint,2,opt,name=stable,proto3" json:"stable,omitempty"`
	AToken uint64 `protobuf:"varint,3,opt,name=aToken,proto3" json:"aToken,omitempty"`
	Rate   string `protobuf:"bytes,4,opt,name=rate,proto3" json:"rate,omitempty"`
}

func (m *ReceiptMarket) Reset()         { *m = ReceiptMarket{} }
func (m *ReceiptMarket) String() string { return proto.CompactTextString(m) }
func (*ReceiptMarket) ProtoMessage()    {}
