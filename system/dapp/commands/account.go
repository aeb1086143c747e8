// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/33cn/vegas/common/address"
	"github.com/33cn/vegas/rpc/jsonclient"
	rpctypes "github.com/33cn/vegas/rpc/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetBalanceCmd(),
		SeedAddrCmd(),
		ExecAddrCmd(),
	)
	return cmd
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get native balance of an address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("denom", "d", types.DefaultDenom, "denom")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	denom, _ := cmd.Flags().GetString("denom")
	params := &types.ReqBalance{Addr: addr, Denom: denom}
	var res rpctypes.Account
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Vegas.GetBalance", params, &res)
	ctx.Run()
}

// SeedAddrCmd 开发用的确定性地址
func SeedAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed_addr",
		Short: "Derive a dev address from a seed phrase",
		Run: func(cmd *cobra.Command, args []string) {
			seed, _ := cmd.Flags().GetString("seed")
			fmt.Println(address.FromSeed(seed))
		},
	}
	cmd.Flags().StringP("seed", "s", "", "seed phrase")
	cmd.MarkFlagRequired("seed")
	return cmd
}

// ExecAddrCmd 执行器地址
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec_addr",
		Short: "Get address of an executor",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("exec")
			fmt.Println(drivers.ExecAddress(name))
		},
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}
