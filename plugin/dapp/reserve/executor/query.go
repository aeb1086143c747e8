// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/vegas/common/db"
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	"github.com/33cn/vegas/types"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

//Query CurrentBalance, GetThreshold, ListGames, BalanceHistory, PendingRequest, GetConfig
func (r *Reserve) Query(funcName string, params []byte) (types.Message, error) {
	config, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	switch funcName {
	case "CurrentBalance":
		balance, err := r.currentBalance(config)
		if err != nil {
			return nil, err
		}
		return &rty.CurrentBalance{Balance: balance}, nil
	case "GetThreshold":
		return &types.Uint64{Data: config.Threshold}, nil
	case "GetConfig":
		return config, nil
	case "ListGames":
		games, err := r.getGames()
		if err != nil {
			return nil, err
		}
		return &types.ReplyStrings{Datas: games}, nil
	case "PendingRequest":
		return r.getPending()
	case "BalanceHistory":
		var req rty.ReqHistory
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return r.balanceHistory(&req)
	}
	return nil, types.ErrQueryNotSupport
}

func (r *Reserve) balanceHistory(req *rty.ReqHistory) (*rty.BalanceHistory, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	var start []byte
	if req.StartAfter > 0 {
		start = calcLocalHistoryKey(req.StartAfter)
	}
	values, err := r.GetLocalDB().List(localHistoryPrefix, start, limit, dbm.ListASC)
	if err == types.ErrNotFound {
		return &rty.BalanceHistory{}, nil
	}
	if err != nil {
		return nil, err
	}
	history := &rty.BalanceHistory{}
	for _, value := range values {
		var point rty.BalancePoint
		if err := types.Decode(value, &point); err != nil {
			return nil, err
		}
		history.Points = append(history.Points, &point)
	}
	return history, nil
}
