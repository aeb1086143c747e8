// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/vegas/common"
	dbm "github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/plugin/dapp/casino/games"
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	"github.com/33cn/vegas/types"
)

//Query casino 查询
func (c *Casino) Query(funcName string, params []byte) (types.Message, error) {
	config, err := c.getConfig()
	if err != nil {
		return nil, err
	}
	switch funcName {
	case "WinCoefficients":
		return &cty.WinCoefficients{Coefficients: config.WinCoefficients}, nil
	case "PlayerRewards":
		var req cty.ReqPlayer
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		reward, err := c.getUint64(rewardsKey(c.GetName(), req.Player))
		if err != nil {
			return nil, err
		}
		return &types.Uint64{Data: reward}, nil
	case "GetTotalRewards":
		total, err := c.getUint64(totalRewardsKey(c.GetName()))
		if err != nil {
			return nil, err
		}
		return &types.Uint64{Data: total}, nil
	case "CurrentRound":
		timer, err := c.getTimer()
		if err != nil {
			return nil, err
		}
		status, _, _, err := c.roundStatus(config, timer)
		if err != nil {
			return nil, err
		}
		return &cty.CurrentRound{
			Round:      timer.CurrentRound,
			Status:     status,
			StatusName: cty.StatusName(status),
			DrandRound: timer.DrandRound,
		}, nil
	case "PlayerBetsForRound":
		var req cty.ReqPlayerRound
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return c.getPlayerBets(req.Round, req.Player)
	case "PlayerBetsAllRounds":
		var req cty.ReqPlayer
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return c.playerBetsAllRounds(req.Player)
	case "AllBets":
		var req cty.ReqAllBets
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return c.allBets(&req)
	case "OutcomeHistory":
		var req cty.ReqOutcomes
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return c.outcomeHistory(&req)
	case "GetConfig":
		timer, err := c.getTimer()
		if err != nil {
			return nil, err
		}
		return &cty.ReplyConfig{Config: config, Timer: timer}, nil
	case "GetBettingLimit":
		limit, err := c.bettingLimit(config)
		if err != nil {
			return nil, err
		}
		return &types.Uint64{Data: limit}, nil
	case "GetActiveBettingLimit":
		var req cty.ReqPlayer
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return c.activeBettingLimit(config, req.Player)
	}
	return nil, types.ErrQueryNotSupport
}

func pageSize(limit int32) int32 {
	if limit <= 0 {
		return cty.DefaultPageSize
	}
	if limit > cty.MaxPageSize {
		return cty.MaxPageSize
	}
	return limit
}

func (c *Casino) playerBetsAllRounds(player string) (*cty.ReplyPlayerBets, error) {
	rounds, err := c.getPlayerRounds(player)
	if err != nil {
		return nil, err
	}
	reply := &cty.ReplyPlayerBets{}
	for _, round := range rounds.Rounds {
		bets, err := c.getPlayerBets(round, player)
		if err != nil {
			return nil, err
		}
		reply.Items = append(reply.Items, bets)
	}
	return reply, nil
}

// allBets 按 (round, player) 降序, StartAfter 本身不包含在结果里
func (c *Casino) allBets(req *cty.ReqAllBets) (*cty.ReplyPlayerBets, error) {
	var start []byte
	if key := req.GetStartAfter(); key != nil {
		start = localBetsKey(c.GetName(), key.Round, key.Player)
	}
	values, err := c.GetLocalDB().List(localBetsPrefix(c.GetName()), start, pageSize(req.Limit), dbm.ListDESC)
	if err == types.ErrNotFound {
		return &cty.ReplyPlayerBets{}, nil
	}
	if err != nil {
		return nil, err
	}
	reply := &cty.ReplyPlayerBets{}
	for _, value := range values {
		var bets cty.PlayerRoundBets
		if err := types.Decode(value, &bets); err != nil {
			return nil, err
		}
		reply.Items = append(reply.Items, &bets)
	}
	return reply, nil
}

// outcomeHistory 按轮次升序
func (c *Casino) outcomeHistory(req *cty.ReqOutcomes) (*cty.OutcomeHistory, error) {
	var start []byte
	if req.StartAfter != nil {
		start = localOutcomeKey(c.GetName(), req.StartAfter.Data)
	}
	values, err := c.GetLocalDB().List(localOutcomePrefix(c.GetName()), start, pageSize(req.Limit), dbm.ListASC)
	if err == types.ErrNotFound {
		return &cty.OutcomeHistory{}, nil
	}
	if err != nil {
		return nil, err
	}
	reply := &cty.OutcomeHistory{}
	for _, value := range values {
		var outcome cty.Outcome
		if err := types.Decode(value, &outcome); err != nil {
			return nil, err
		}
		reply.Outcomes = append(reply.Outcomes, &outcome)
	}
	return reply, nil
}

// activeBettingLimit 本轮还能下注的数量. 轮次已经结束时下一次下注会先结算, 返回完整上限.
// 按轮次限额的游戏减去本轮总下注, 按玩家限额的游戏只减去 player 自己的下注.
// 余额下降导致已下注超过上限时返回 0
func (c *Casino) activeBettingLimit(config *cty.CasinoConfig, player string) (*types.Uint64, error) {
	limit, err := c.bettingLimit(config)
	if err != nil {
		return nil, err
	}
	timer, err := c.getTimer()
	if err != nil {
		return nil, err
	}
	status, _, _, err := c.roundStatus(config, timer)
	if err != nil {
		return nil, err
	}
	if status != cty.RoundLive {
		return &types.Uint64{Data: limit}, nil
	}
	var committed uint64
	if c.game.LimitScope() == games.LimitPerRound {
		roundBets, err := c.getRoundBets(timer.CurrentRound)
		if err != nil {
			return nil, err
		}
		committed = roundBets.Total
	} else if player != "" {
		bets, err := c.getPlayerBets(timer.CurrentRound, player)
		if err != nil {
			return nil, err
		}
		for _, b := range bets.Bets {
			if committed, err = common.SafeAdd(committed, b.Amount); err != nil {
				return nil, err
			}
		}
	}
	if committed >= limit {
		return &types.Uint64{}, nil
	}
	return &types.Uint64{Data: limit - committed}, nil
}
