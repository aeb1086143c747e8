// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 基础结构体, 编解码, 错误以及配置
package types

import (
	"bytes"

	"github.com/33cn/vegas/common"
	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")

// Message 声明proto.Message
type Message proto.Message

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//Clone 深拷贝
func Clone(msg proto.Message) proto.Message {
	return proto.Clone(msg)
}

//JSONToPB  JSON格式转换成protobuffer格式
func JSONToPB(data []byte, msg proto.Message) error {
	decode := &jsonpb.Unmarshaler{AllowUnknownFields: false}
	return decode.Unmarshal(bytes.NewReader(data), msg)
}

//PBToJSON 消息类型转换为json
func PBToJSON(r Message) ([]byte, error) {
	encode := &jsonpb.Marshaler{EmitDefaults: true}
	var buf bytes.Buffer
	if err := encode.Marshal(&buf, r); err != nil {
		tlog.Error("PBToJSON", "err", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

//Hash 交易哈希
func (tx *Transaction) Hash() []byte {
	return common.Sha256(Encode(tx))
}

//ExecerName execer as string
func (tx *Transaction) ExecerName() string {
	return string(tx.Execer)
}

//CreateTx 构造交易, payload 为 action 的编码
func CreateTx(execer string, action Message, from string, funds ...*Coin) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(action),
		From:    from,
		Funds:   funds,
	}
}

//NewCoin new coin
func NewCoin(denom string, amount uint64) *Coin {
	return &Coin{Denom: denom, Amount: amount}
}

//NewBankSend 合约向 to 转账的子消息
func NewBankSend(to string, coins ...*Coin) *SubMsg {
	return &SubMsg{Bank: &BankSend{To: to, Amount: coins}}
}

//NewExecMsg 合约调用合约的子消息
func NewExecMsg(contract string, action Message, funds ...*Coin) *SubMsg {
	return &SubMsg{Exec: &ExecMsg{Contract: contract, Payload: Encode(action), Funds: funds}}
}

//ReplyOnSuccess 子消息成功后回调
func (m *SubMsg) ReplyOnSuccess(id uint64) *SubMsg {
	m.Id = id
	m.ReplyOn = ReplySuccess
	return m
}

//GetReceiptLog 构造日志
func GetReceiptLog(ty int32, msg Message) *ReceiptLog {
	return &ReceiptLog{Ty: ty, Log: Encode(msg)}
}
