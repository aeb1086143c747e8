// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	"github.com/33cn/vegas/types"
)

//ExecLocal 建立 AllBets 和 OutcomeHistory 的本地索引
func (c *Casino) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	name := c.GetName()
	set := &types.LocalDBSet{}
	// 同一个收据里可能有同一个 key 的多条记录, 先在内存中合并
	cache := make(map[string]*cty.PlayerRoundBets)
	var order []string
	for _, item := range receipt.Logs {
		switch item.Ty {
		case cty.TyLogBet:
			var bet cty.ReceiptBet
			if err := types.Decode(item.Log, &bet); err != nil {
				return nil, err
			}
			key := string(localBetsKey(name, bet.Round, bet.Player))
			bets, ok := cache[key]
			if !ok {
				var err error
				if bets, err = c.loadLocalBets(key, bet.Round, bet.Player); err != nil {
					return nil, err
				}
				cache[key] = bets
				order = append(order, key)
			}
			bets.Bets = append(bets.Bets, &cty.Bet{Outcome: bet.Outcome, Amount: bet.Amount})
		case cty.TyLogSettle:
			var settle cty.ReceiptSettle
			if err := types.Decode(item.Log, &settle); err != nil {
				return nil, err
			}
			outcome := &cty.Outcome{Round: settle.Round, Outcome: settle.Outcome, DrandRound: settle.DrandRound}
			set.KV = append(set.KV, &types.KeyValue{Key: localOutcomeKey(name, settle.Round), Value: types.Encode(outcome)})
		}
	}
	for _, key := range order {
		set.KV = append(set.KV, &types.KeyValue{Key: []byte(key), Value: types.Encode(cache[key])})
	}
	return set, nil
}

func (c *Casino) loadLocalBets(key string, round uint64, player string) (*cty.PlayerRoundBets, error) {
	value, err := c.GetLocalDB().Get([]byte(key))
	if err == types.ErrNotFound {
		return &cty.PlayerRoundBets{Round: round, Player: player}, nil
	}
	if err != nil {
		return nil, err
	}
	var bets cty.PlayerRoundBets
	if err := types.Decode(value, &bets); err != nil {
		return nil, err
	}
	return &bets, nil
}
