// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 插件注册: 执行器初始化, 命令行, rpc 扩展
package pluginmgr

import (
	"github.com/33cn/vegas/types"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// RPCServer 插件可以扩展的 rpc 服务
type RPCServer interface {
	// Group 插件自己的路由分组 /<name>
	Group(name string) *gin.RouterGroup
	// Query 查询合约状态
	Query(execer string, funcName string, param types.Message) (types.Message, error)
}

// Plugin 插件接口
type Plugin interface {
	// 获取整个插件的包名，用以计算唯一值、做前缀等
	GetName() string
	// 获取插件中执行器名
	GetExecutorName() string
	// 初始化执行器时会调用该接口
	InitExec(sub map[string][]byte)
	AddCmd(rootCmd *cobra.Command)
	AddRPC(s RPCServer)
}
