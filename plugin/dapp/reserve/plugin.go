// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reserve 公共资金池插件
package reserve

import (
	"github.com/33cn/vegas/plugin/dapp/reserve/commands"
	"github.com/33cn/vegas/plugin/dapp/reserve/executor"
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	"github.com/33cn/vegas/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rty.ReserveX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.ReserveCmd,
	})
}
