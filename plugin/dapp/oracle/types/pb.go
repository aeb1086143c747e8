// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//OracleAction oracle 交易
type OracleAction struct {
	Ty            int32       `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Publish       *Randomness `protobuf:"bytes,2,opt,name=publish,proto3" json:"publish,omitempty"`
	TransferOwner string      `protobuf:"bytes,3,opt,name=transferOwner,proto3" json:"transferOwner,omitempty"`
}

func (m *OracleAction) Reset()         { *m = OracleAction{} }
func (m *OracleAction) String() string { return proto.CompactTextString(m) }
func (*OracleAction) ProtoMessage()    {}

//Randomness 一轮信标
type Randomness struct {
	Round      uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Randomness []byte `protobuf:"bytes,2,opt,name=randomness,proto3" json:"randomness,omitempty"`
}

func (m *Randomness) Reset()         { *m = Randomness{} }
func (m *Randomness) String() string { return proto.CompactTextString(m) }
func (*Randomness) ProtoMessage()    {}

//GetRound round
func (m *Randomness) GetRound() uint64 {
	if m != nil {
		return m.Round
	}
	return 0
}

//ReqRound 按轮次查询
type ReqRound struct {
	Round uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *ReqRound) Reset()         { *m = ReqRound{} }
func (m *ReqRound) String() string { return proto.CompactTextString(m) }
func (*ReqRound) ProtoMessage()    {}
