// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treasury 税收插件
package treasury

import (
	"github.com/33cn/vegas/plugin/dapp/treasury/commands"
	"github.com/33cn/vegas/plugin/dapp/treasury/executor"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	"github.com/33cn/vegas/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     tty.TreasuryX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.TreasuryCmd,
	})
}
