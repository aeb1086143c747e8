// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统级命令行和各插件共用的交易/查询辅助函数
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/33cn/vegas/rpc/jsonclient"
	rpctypes "github.com/33cn/vegas/rpc/types"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// AddFromFlag 交易发送方
func AddFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender address")
	cmd.MarkFlagRequired("from")
}

// AddFundsFlag 附带资金, 例如 1000uusd
func AddFundsFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("funds", "m", "", "attached funds, e.g. 1000uusd")
}

// ParseCoins 解析 "1000uusd,20uluna"
func ParseCoins(s string) ([]*types.Coin, error) {
	var coins []*types.Coin
	if strings.TrimSpace(s) == "" {
		return coins, nil
	}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		i := 0
		for i < len(item) && item[i] >= '0' && item[i] <= '9' {
			i++
		}
		if i == 0 || i == len(item) {
			return nil, errors.Wrapf(types.ErrInvalidParam, "coin %q", item)
		}
		amount, err := strconv.ParseUint(item[:i], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(types.ErrInvalidParam, "coin %q", item)
		}
		coins = append(coins, types.NewCoin(item[i:], amount))
	}
	return coins, nil
}

// SendTx 构造并发送交易, 打印执行结果
func SendTx(cmd *cobra.Command, execer string, action types.Message) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	from, _ := cmd.Flags().GetString("from")
	fundsStr, _ := cmd.Flags().GetString("funds")
	funds, err := ParseCoins(fundsStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload, err := types.PBToJSON(action)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := &rpctypes.SendTx{Execer: execer, Payload: payload, From: from, Funds: funds}
	var res rpctypes.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Vegas.SendTransaction", params, &res)
	ctx.Run()
}

// Query 查询合约状态并打印
func Query(cmd *cobra.Command, execer, funcName string, param types.Message) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	payload, err := types.PBToJSON(param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := &rpctypes.Query{Execer: execer, FuncName: funcName, Payload: payload}
	var res json.RawMessage
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Vegas.Query", params, &res)
	ctx.Run()
}
