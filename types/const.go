// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//receipt ty
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//系统日志类型, dapp 自己的日志从 100 以后编号
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogTransfer = 3
	TyLogGenesis  = 4
)

//reply on
const (
	ReplyNever   = int32(0)
	ReplySuccess = int32(1)
)

//key prefix
var (
	//StatePrefix 状态数据前缀
	StatePrefix = []byte("mavl-")
	//LocalPrefix 本地索引前缀
	LocalPrefix = []byte("LODB-")
)

//DefaultDenom 默认的结算币种
const DefaultDenom = "uusd"

//MaxExecDepth 子消息嵌套层数上限
const MaxExecDepth = 10
