// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/vegas/common/log"
	"github.com/33cn/vegas/pluginmgr"
	"github.com/33cn/vegas/system/dapp/commands"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// DefaultRPCAddr 没有 VEGAS_RPC_LADDR 时使用
const DefaultRPCAddr = "http://localhost:8801"

var rootCmd = &cobra.Command{
	Use:   "vegas-cli",
	Short: "vegas client tools",
}

func init() {
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.BlockCmd(),
		commands.ExecsCmd(),
	)
}

// rpcAddr 优先级: 参数, 环境变量 (可以写在 .env 里), 默认值
func rpcAddr(addr string) string {
	if addr != "" {
		return addr
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "load .env:", err)
	}
	if env := os.Getenv("VEGAS_RPC_LADDR"); env != "" {
		return env
	}
	return DefaultRPCAddr
}

//Run : 运行命令行, 各插件的命令通过 pluginmgr 加入
func Run(RPCAddr string) {
	pluginmgr.AddCmd(rootCmd)
	log.SetLogLevel("error")
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr(RPCAddr), "http url")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
