// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/vegas/rpc/jsonclient"
	rpctypes "github.com/33cn/vegas/rpc/types"
	"github.com/33cn/vegas/types"
	"github.com/spf13/cobra"
)

// BlockCmd block command
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Get block header info",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(GetLastHeaderCmd())
	return cmd
}

// GetLastHeaderCmd get last header
func GetLastHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last_header",
		Short: "View last block header",
		Run:   lastHeader,
	}
	return cmd
}

func lastHeader(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var res rpctypes.Header
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Vegas.GetLastHeader", &types.ReqNil{}, &res)
	ctx.Run()
}

// ExecsCmd 已注册的执行器
func ExecsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execs",
		Short: "List registered executors",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			var res types.ReplyStrings
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Vegas.ListExecs", &types.ReqNil{}, &res)
			ctx.Run()
		},
	}
	return cmd
}
