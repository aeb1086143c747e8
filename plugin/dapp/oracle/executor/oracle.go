// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
oracle 随机数信标: owner 按轮次发布 32 字节随机数, 轮次严格递增
信标本身的密码学验证不在这里处理
*/

import (
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
)

var olog = log.New("module", "execs.oracle")

var driverName = oty.OracleX

//Init 注册执行器
func Init(name string, sub []byte) {
	olog.Debug("register oracle execer")
	drivers.Register(GetName(), newOracle, 0)
}

//GetName 执行器名
func GetName() string {
	return driverName
}

//Oracle 信标执行器
type Oracle struct {
	drivers.DriverBase
}

func newOracle() drivers.Driver {
	o := &Oracle{}
	o.SetChild(o)
	return o
}

func (o *Oracle) getOwner() (string, error) {
	var owner types.ReqString
	if err := drivers.GetState(o.GetStateDB(), ownerKey, &owner); err != nil {
		if err == types.ErrNotFound {
			return "", types.ErrNotInstantiated
		}
		return "", err
	}
	return owner.Data, nil
}

func (o *Oracle) getLatest() (*oty.Randomness, error) {
	var latest oty.Randomness
	if err := drivers.GetState(o.GetStateDB(), latestKey, &latest); err != nil {
		if err == types.ErrNotFound {
			return nil, oty.ErrNoRandomness
		}
		return nil, err
	}
	return &latest, nil
}
