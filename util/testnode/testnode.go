// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testnode 提供一个进程内的测试节点: 内存数据库, 所有执行器, 可控的区块时间
package testnode

import (
	"math/rand"

	dbm "github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/common/log"
	"github.com/33cn/vegas/executor"
	_ "github.com/33cn/vegas/plugin" //register plugins
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	"github.com/33cn/vegas/pluginmgr"
	_ "github.com/33cn/vegas/system" //register system dapps
	"github.com/33cn/vegas/types"
	"github.com/inconshreveable/log15"
)

var chainlog = log15.New("module", "testnode")

//StartTime 创世区块时间
const StartTime = int64(1600000000)

func init() {
	log.SetLogLevel("error")
}

//VegasMock 测试节点
type VegasMock struct {
	random *rand.Rand
	exec   *executor.Executor
	db     dbm.DB
}

//New 创建测试节点, accounts 为创世分配
func New(accounts ...*types.GenesisAccount) *VegasMock {
	pluginmgr.InitExec(nil)
	db, err := dbm.NewDB("testnode", dbm.MemDBBackendStr, "", 0)
	if err != nil {
		panic(err)
	}
	exec := executor.New(db)
	exec.SetTaxPolicy(tty.TaxPolicy{})
	if err := exec.Genesis(&types.Genesis{Accounts: accounts}, StartTime); err != nil {
		panic(err)
	}
	return &VegasMock{
		random: rand.New(rand.NewSource(StartTime)),
		exec:   exec,
		db:     db,
	}
}

//GetExec 执行器
func (m *VegasMock) GetExec() *executor.Executor {
	return m.exec
}

//Close 关闭数据库
func (m *VegasMock) Close() {
	m.db.Close()
}

//SendTx 在当前区块执行交易, 随机 nonce 保证相同内容的交易 hash 不同
func (m *VegasMock) SendTx(tx *types.Transaction) (*types.TxResult, error) {
	tx.Nonce = m.random.Int63()
	return m.exec.ExecTx(tx)
}

//Query 查询合约
func (m *VegasMock) Query(execer, funcName string, param types.Message) (types.Message, error) {
	return m.exec.Query(execer, funcName, types.Encode(param))
}

//GetBalance 原生币余额
func (m *VegasMock) GetBalance(addr, denom string) uint64 {
	balance, err := m.exec.GetBalance(addr, denom)
	if err != nil {
		panic(err)
	}
	return balance
}

//BlockTime 当前区块时间
func (m *VegasMock) BlockTime() int64 {
	return m.exec.Header().Blocktime
}

//WaitSeconds 出一个新块, 区块时间前进 seconds 秒
func (m *VegasMock) WaitSeconds(seconds int64) {
	header, err := m.exec.NextBlock(m.BlockTime() + seconds)
	if err != nil {
		panic(err)
	}
	chainlog.Debug("next block", "height", header.Height, "blocktime", header.Blocktime)
}

//PublishRandomness oracle owner 发布一轮随机数
func (m *VegasMock) PublishRandomness(owner string, round uint64, randomness []byte) error {
	_, err := m.SendTx(oty.NewPublishTx(owner, round, randomness))
	return err
}
