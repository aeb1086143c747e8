// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
reserve 资金池:
RequestFunds  -> 余额足够直接转给游戏, 否则从货币市场赎回, 回调(id=1)里再转给游戏
DepositFunds  -> 原生币超过阈值的部分存入货币市场, 否则记录一次余额快照

同一时间只允许一个等待回调的请求, 用 PendingRequest 记录
*/

import (
	"sort"

	"github.com/33cn/vegas/common"
	"github.com/33cn/vegas/common/address"
	mty "github.com/33cn/vegas/plugin/dapp/market/types"
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var rlog = log.New("module", "execs.reserve")

//Init 注册执行器
func Init(name string, sub []byte) {
	drivers.Register(GetName(), newReserve, 0)
}

//GetName 执行器名
func GetName() string {
	return rty.ReserveX
}

//Reserve 资金池执行器
type Reserve struct {
	drivers.DriverBase
}

func newReserve() drivers.Driver {
	r := &Reserve{}
	r.SetChild(r)
	return r
}

func (r *Reserve) getConfig() (*rty.ReserveConfig, error) {
	var config rty.ReserveConfig
	if err := drivers.GetState(r.GetStateDB(), configKey, &config); err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrNotInstantiated
		}
		return nil, err
	}
	return &config, nil
}

func (r *Reserve) getGames() ([]string, error) {
	var games types.ReplyStrings
	err := drivers.GetState(r.GetStateDB(), gamesKey, &games)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	return games.Datas, nil
}

func (r *Reserve) getPending() (*rty.PendingRequest, error) {
	var pending rty.PendingRequest
	if err := drivers.GetState(r.GetStateDB(), pendingKey, &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *Reserve) isGame(addr string) (bool, error) {
	games, err := r.getGames()
	if err != nil {
		return false, err
	}
	i := sort.SearchStrings(games, addr)
	return i < len(games) && games[i] == addr, nil
}

// owner 或者 gov
func checkOwner(config *rty.ReserveConfig, from string) error {
	if from == config.Owner || (config.Gov != "" && from == config.Gov) {
		return nil
	}
	return errors.Wrapf(types.ErrUnauthorized, "reserve owner is %s", config.Owner)
}

func (r *Reserve) checkGame(from string) error {
	ok, err := r.isGame(from)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(types.ErrUnauthorized, "%s is not a game", from)
	}
	return nil
}

// 执行器名字转换成合约地址, 其他情况必须是合法地址
func normalizeAddr(addr string) (string, error) {
	if types.LoadExecutorType(addr) != nil {
		return drivers.ExecAddress(addr), nil
	}
	if err := address.CheckAddress(addr); err != nil {
		return "", types.ErrInvalidAddress
	}
	return addr, nil
}

// currentBalance 原生币 + floor(aToken * rate)
func (r *Reserve) currentBalance(config *rty.ReserveConfig) (uint64, error) {
	api := r.GetAPI()
	self := r.GetExecAddress()
	native, err := api.GetBalance(self, config.NativeDenom)
	if err != nil {
		return 0, err
	}
	aToken, err := mty.QueryATokenBalance(api, config.Market, self)
	if err != nil {
		return 0, err
	}
	if aToken == 0 {
		return native, nil
	}
	rate, err := mty.QueryExchangeRate(api, config.Market)
	if err != nil {
		return 0, err
	}
	converted, err := types.MulFloor(aToken, rate)
	if err != nil {
		return 0, err
	}
	return common.SafeAdd(native, converted)
}
