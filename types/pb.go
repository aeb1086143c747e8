// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// messages below mirror proto/common.proto and proto/transaction.proto

//KeyValue 状态数据
type KeyValue struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return proto.CompactTextString(m) }
func (*KeyValue) ProtoMessage()    {}

//GetKey key
func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

//GetValue value
func (m *KeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

//ReceiptLog 执行日志
type ReceiptLog struct {
	Ty  int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Log []byte `protobuf:"bytes,2,opt,name=log,proto3" json:"log,omitempty"`
}

func (m *ReceiptLog) Reset()         { *m = ReceiptLog{} }
func (m *ReceiptLog) String() string { return proto.CompactTextString(m) }
func (*ReceiptLog) ProtoMessage()    {}

//Receipt 执行器返回的结果: 状态修改, 日志, 以及需要继续执行的子消息
type Receipt struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	KV   []*KeyValue   `protobuf:"bytes,2,rep,name=KV,proto3" json:"KV,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
	Msgs []*SubMsg     `protobuf:"bytes,4,rep,name=msgs,proto3" json:"msgs,omitempty"`
}

func (m *Receipt) Reset()         { *m = Receipt{} }
func (m *Receipt) String() string { return proto.CompactTextString(m) }
func (*Receipt) ProtoMessage()    {}

//GetKV kv
func (m *Receipt) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

//GetLogs logs
func (m *Receipt) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

//GetMsgs sub messages
func (m *Receipt) GetMsgs() []*SubMsg {
	if m != nil {
		return m.Msgs
	}
	return nil
}

//ReceiptData 保存到 localdb / 返回给客户端的执行结果
type ReceiptData struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *ReceiptData) Reset()         { *m = ReceiptData{} }
func (m *ReceiptData) String() string { return proto.CompactTextString(m) }
func (*ReceiptData) ProtoMessage()    {}

//LocalDBSet ExecLocal 返回的本地索引
type LocalDBSet struct {
	KV []*KeyValue `protobuf:"bytes,2,rep,name=KV,proto3" json:"KV,omitempty"`
}

func (m *LocalDBSet) Reset()         { *m = LocalDBSet{} }
func (m *LocalDBSet) String() string { return proto.CompactTextString(m) }
func (*LocalDBSet) ProtoMessage()    {}

//GetKV kv
func (m *LocalDBSet) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

//Coin 某种币的数量
type Coin struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Coin) Reset()         { *m = Coin{} }
func (m *Coin) String() string { return proto.CompactTextString(m) }
func (*Coin) ProtoMessage()    {}

//GetDenom denom
func (m *Coin) GetDenom() string {
	if m != nil {
		return m.Denom
	}
	return ""
}

//GetAmount amount
func (m *Coin) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//Account 账户余额
type Account struct {
	Denom   string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Balance uint64 `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

//ReceiptAccountTransfer 转账日志
type ReceiptAccountTransfer struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountTransfer) Reset()         { *m = ReceiptAccountTransfer{} }
func (m *ReceiptAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptAccountTransfer) ProtoMessage()    {}

//Transaction 交易. 签名不在这里处理, From 由接入层认证
type Transaction struct {
	Execer  []byte  `protobuf:"bytes,1,opt,name=execer,proto3" json:"execer,omitempty"`
	Payload []byte  `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	From    string  `protobuf:"bytes,3,opt,name=from,proto3" json:"from,omitempty"`
	Funds   []*Coin `protobuf:"bytes,4,rep,name=funds,proto3" json:"funds,omitempty"`
	Nonce   int64   `protobuf:"varint,5,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

//GetFunds attached funds
func (m *Transaction) GetFunds() []*Coin {
	if m != nil {
		return m.Funds
	}
	return nil
}

//BankSend 合约转出
type BankSend struct {
	To     string  `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount []*Coin `protobuf:"bytes,2,rep,name=amount,proto3" json:"amount,omitempty"`
}

func (m *BankSend) Reset()         { *m = BankSend{} }
func (m *BankSend) String() string { return proto.CompactTextString(m) }
func (*BankSend) ProtoMessage()    {}

//ExecMsg 合约调用合约
type ExecMsg struct {
	Contract string  `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Payload  []byte  `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Funds    []*Coin `protobuf:"bytes,3,rep,name=funds,proto3" json:"funds,omitempty"`
}

func (m *ExecMsg) Reset()         { *m = ExecMsg{} }
func (m *ExecMsg) String() string { return proto.CompactTextString(m) }
func (*ExecMsg) ProtoMessage()    {}

//SubMsg 执行完成后由宿主继续处理的消息, Bank 和 Exec 二选一
type SubMsg struct {
	Id      uint64    `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	ReplyOn int32     `protobuf:"varint,2,opt,name=replyOn,proto3" json:"replyOn,omitempty"`
	Bank    *BankSend `protobuf:"bytes,3,opt,name=bank,proto3" json:"bank,omitempty"`
	Exec    *ExecMsg  `protobuf:"bytes,4,opt,name=exec,proto3" json:"exec,omitempty"`
}

func (m *SubMsg) Reset()         { *m = SubMsg{} }
func (m *SubMsg) String() string { return proto.CompactTextString(m) }
func (*SubMsg) ProtoMessage()    {}

//Reply 子消息成功后回调给发起合约
type Reply struct {
	Id     uint64       `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Result *ReceiptData `protobuf:"bytes,2,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *Reply) Reset()         { *m = Reply{} }
func (m *Reply) String() string { return proto.CompactTextString(m) }
func (*Reply) ProtoMessage()    {}

//GetId reply id
func (m *Reply) GetId() uint64 {
	if m != nil {
		return m.Id
	}
	return 0
}

//TxResult 交易执行结果
type TxResult struct {
	Hash      []byte       `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
	Height    int64        `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	Blocktime int64        `protobuf:"varint,3,opt,name=blocktime,proto3" json:"blocktime,omitempty"`
	Receipt   *ReceiptData `protobuf:"bytes,4,opt,name=receipt,proto3" json:"receipt,omitempty"`
	Error     string       `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	Execer    string       `protobuf:"bytes,6,opt,name=execer,proto3" json:"execer,omitempty"`
}

func (m *TxResult) Reset()         { *m = TxResult{} }
func (m *TxResult) String() string { return proto.CompactTextString(m) }
func (*TxResult) ProtoMessage()    {}

//Header 当前区块高度和时间
type Header struct {
	Height    int64 `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	Blocktime int64 `protobuf:"varint,2,opt,name=blocktime,proto3" json:"blocktime,omitempty"`
}

func (m *Header) Reset()         { *m = Header{} }
func (m *Header) String() string { return proto.CompactTextString(m) }
func (*Header) ProtoMessage()    {}

//ReqNil 空请求
type ReqNil struct{}

func (m *ReqNil) Reset()         { *m = ReqNil{} }
func (m *ReqNil) String() string { return proto.CompactTextString(m) }
func (*ReqNil) ProtoMessage()    {}

//ReqString 字符串请求
type ReqString struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReqString) Reset()         { *m = ReqString{} }
func (m *ReqString) String() string { return proto.CompactTextString(m) }
func (*ReqString) ProtoMessage()    {}

//ReqBalance 查询余额
type ReqBalance struct {
	Addr  string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Denom string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *ReqBalance) Reset()         { *m = ReqBalance{} }
func (m *ReqBalance) String() string { return proto.CompactTextString(m) }
func (*ReqBalance) ProtoMessage()    {}

//Uint64 数值返回
type Uint64 struct {
	Data uint64 `protobuf:"varint,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Uint64) Reset()         { *m = Uint64{} }
func (m *Uint64) String() string { return proto.CompactTextString(m) }
func (*Uint64) ProtoMessage()    {}

//ReplyStrings 字符串列表返回
type ReplyStrings struct {
	Datas []string `protobuf:"bytes,1,rep,name=datas,proto3" json:"datas,omitempty"`
}

func (m *ReplyStrings) Reset()         { *m = ReplyStrings{} }
func (m *ReplyStrings) String() string { return proto.CompactTextString(m) }
func (*ReplyStrings) ProtoMessage()    {}
