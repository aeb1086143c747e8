// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 系统基础dapp包: 执行器接口, 基础实现和注册表
package dapp

import (
	dbm "github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var blog = log.New("module", "execs.base")

// API 执行器可以调用的宿主服务
type API interface {
	// QueryChain 查询其他合约, execer 可以是名字或者合约地址
	QueryChain(execer string, funcName string, param types.Message) (types.Message, error)
	// GetBalance 原生币余额
	GetBalance(addr, denom string) (uint64, error)
}

// Driver 执行器
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	SetAPI(API)
	GetAPI() API
	SetEnv(height, blocktime int64)
	SetTxHash(hash []byte)
	GetName() string
	SetName(string)
	GetExecAddress() string
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Reply(reply *types.Reply) (*types.Receipt, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 执行器基础实现, 具体执行器内嵌它
type DriverBase struct {
	statedb   dbm.KV
	localdb   dbm.KVDB
	api       API
	height    int64
	blocktime int64
	txhash    []byte
	name      string
	child     Driver
}

//SetChild 设置具体执行器
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

//SetAPI set api
func (d *DriverBase) SetAPI(api API) {
	d.api = api
}

//GetAPI get api
func (d *DriverBase) GetAPI() API {
	return d.api
}

//SetEnv 设置区块环境
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

//SetTxHash 当前交易哈希
func (d *DriverBase) SetTxHash(hash []byte) {
	d.txhash = hash
}

//GetTxHash 当前交易哈希
func (d *DriverBase) GetTxHash() []byte {
	return d.txhash
}

//GetHeight 区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime 区块时间, 单位秒
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//SetStateDB set statedb
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
}

//GetStateDB get statedb
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//SetLocalDB set localdb
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

//GetLocalDB get localdb
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

//GetName 执行器名
func (d *DriverBase) GetName() string {
	return d.name
}

//SetName set name
func (d *DriverBase) SetName(name string) {
	d.name = name
}

//GetExecAddress 合约地址
func (d *DriverBase) GetExecAddress() string {
	return ExecAddress(d.name)
}

//ExecLocal 默认不建索引
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

//Reply 默认不支持回调
func (d *DriverBase) Reply(reply *types.Reply) (*types.Receipt, error) {
	blog.Error("Reply not support", "execer", d.name, "id", reply.GetId())
	return nil, types.ErrReplyNotSupport
}

//Query 默认不支持查询
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}

//GetPayload 解码交易 payload
func GetPayload(tx *types.Transaction, action types.Message) error {
	if err := types.Decode(tx.Payload, action); err != nil {
		blog.Debug("GetPayload", "execer", string(tx.Execer), "err", err)
		return types.ErrDecode
	}
	return nil
}

//SetState 写入状态并返回对应的 kv, 由执行器放入 receipt. 写入失败时整笔交易回滚
func SetState(db dbm.KV, key []byte, msg types.Message) (*types.KeyValue, error) {
	value := types.Encode(msg)
	if err := db.Set(key, value); err != nil {
		blog.Error("SetState", "key", string(key), "err", err)
		return nil, errors.Wrapf(err, "SetState %s", string(key))
	}
	return &types.KeyValue{Key: key, Value: value}, nil
}

//DelState 删除状态
func DelState(db dbm.KV, key []byte) (*types.KeyValue, error) {
	if err := db.Set(key, nil); err != nil {
		blog.Error("DelState", "key", string(key), "err", err)
		return nil, errors.Wrapf(err, "DelState %s", string(key))
	}
	return &types.KeyValue{Key: key}, nil
}

//GetState 读取状态, 不存在时返回 types.ErrNotFound
func GetState(db dbm.KV, key []byte, msg types.Message) error {
	value, err := db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return types.ErrNotFound
	}
	if err != nil {
		return err
	}
	return types.Decode(value, msg)
}
