// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle 随机数信标插件
package oracle

import (
	"github.com/33cn/vegas/plugin/dapp/oracle/commands"
	"github.com/33cn/vegas/plugin/dapp/oracle/executor"
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	"github.com/33cn/vegas/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     oty.OracleX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.OracleCmd,
	})
}
