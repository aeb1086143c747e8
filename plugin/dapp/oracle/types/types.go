// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types oracle 随机数信标的消息和常量
package types

import (
	"github.com/33cn/vegas/types"
)

//oracle op
const (
	OracleActionInstantiate = 1 + iota
	OracleActionPublish
	OracleActionTransferOwner

	//log for oracle
	TyLogOraclePublish = 1001
)

const (
	//OracleX 执行器名
	OracleX = "oracle"
	//RandomnessLength 随机数长度
	RandomnessLength = 32
)

func init() {
	types.RegistorExecutor(OracleX, &types.ExecTypeBase{
		Name:    OracleX,
		Payload: func() types.Message { return &OracleAction{} },
		Queries: map[string]func() types.Message{
			"LatestRandomness": func() types.Message { return &types.ReqNil{} },
			"GetRandomness":    func() types.Message { return &ReqRound{} },
			"GetOwner":         func() types.Message { return &types.ReqNil{} },
		},
	})
}

//NewPublishTx 发布随机数
func NewPublishTx(from string, round uint64, randomness []byte) *types.Transaction {
	action := &OracleAction{Ty: OracleActionPublish, Publish: &Randomness{Round: round, Randomness: randomness}}
	return types.CreateTx(OracleX, action, from)
}

//NewInstantiateTx 初始化, 发送方成为 owner
func NewInstantiateTx(from string) *types.Transaction {
	return types.CreateTx(OracleX, &OracleAction{Ty: OracleActionInstantiate}, from)
}
