// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//TreasuryAction treasury 交易
type TreasuryAction struct {
	Ty   int32    `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Rate *TaxRate `protobuf:"bytes,2,opt,name=rate,proto3" json:"rate,omitempty"`
	Cap  *TaxCap  `protobuf:"bytes,3,opt,name=cap,proto3" json:"cap,omitempty"`
}

func (m *TreasuryAction) Reset()         { *m = TreasuryAction{} }
func (m *TreasuryAction) String() string { return proto.CompactTextString(m) }
func (*TreasuryAction) ProtoMessage()    {}

//TaxRate 税率, 18 位定点小数字符串
type TaxRate struct {
	Rate string `protobuf:"bytes,1,opt,name=rate,proto3" json:"rate,omitempty"`
}

func (m *TaxRate) Reset()         { *m = TaxRate{} }
func (m *TaxRate) String() string { return proto.CompactTextString(m) }
func (*TaxRate) ProtoMessage()    {}

//GetRate rate
func (m *TaxRate) GetRate() string {
	if m != nil {
		return m.Rate
	}
	return ""
}

//TaxCap 单笔税收上限, Capped 为 false 表示不设上限
type TaxCap struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Cap    uint64 `protobuf:"varint,2,opt,name=cap,proto3" json:"cap,omitempty"`
	Capped bool   `protobuf:"varint,3,opt,name=capped,proto3" json:"capped,omitempty"`
}

func (m *TaxCap) Reset()         { *m = TaxCap{} }
func (m *TaxCap) String() string { return proto.CompactTextString(m) }
func (*TaxCap) ProtoMessage()    {}

//TreasuryConfig 配置
type TreasuryConfig struct {
	Owner string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Rate  string `protobuf:"bytes,2,opt,name=rate,proto3" json:"rate,omitempty"`
}

func (m *TreasuryConfig) Reset()         { *m = TreasuryConfig{} }
func (m *TreasuryConfig) String() string { return proto.CompactTextString(m) }
func (*TreasuryConfig) ProtoMessage()    {}
