// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package casino coinflip 和 dice 两个游戏插件, 共用同一个执行器实现
package casino

import (
	"github.com/33cn/vegas/plugin/dapp/casino/commands"
	"github.com/33cn/vegas/plugin/dapp/casino/executor"
	"github.com/33cn/vegas/plugin/dapp/casino/rpc"
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	"github.com/33cn/vegas/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     cty.CoinflipX,
		ExecName: cty.CoinflipX,
		Exec:     executor.Init,
		Cmd:      commands.CoinflipCmd,
		RPC:      rpc.Init,
	})
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     cty.DiceX,
		ExecName: cty.DiceX,
		Exec:     executor.Init,
		Cmd:      commands.DiceCmd,
		RPC:      rpc.Init,
	})
}
