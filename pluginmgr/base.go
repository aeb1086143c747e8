// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/spf13/cobra"
)

// PluginBase 插件的通用实现
type PluginBase struct {
	Name     string
	ExecName string
	RPC      func(name string, s RPCServer)
	Exec     func(name string, sub []byte)
	Cmd      func() *cobra.Command
}

// GetName 插件名
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec 用 [exec.sub.<execname>] 初始化执行器
func (p *PluginBase) InitExec(sub map[string][]byte) {
	if p.Exec == nil {
		return
	}
	subcfg, ok := sub[p.ExecName]
	if !ok {
		subcfg = nil
	}
	p.Exec(p.ExecName, subcfg)
}

// AddCmd 添加命令行
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}

// AddRPC 添加 rpc 路由
func (p *PluginBase) AddRPC(c RPCServer) {
	if p.RPC != nil {
		p.RPC(p.GetExecutorName(), c)
	}
}
