// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package market 货币市场插件
package market

import (
	"github.com/33cn/vegas/plugin/dapp/market/commands"
	"github.com/33cn/vegas/plugin/dapp/market/executor"
	mty "github.com/33cn/vegas/plugin/dapp/market/types"
	"github.com/33cn/vegas/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     mty.MarketX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.MarketCmd,
	})
}
