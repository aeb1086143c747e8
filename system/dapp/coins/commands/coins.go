// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coins 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/vegas/system/dapp/commands"
	cty "github.com/33cn/vegas/system/dapp/coins/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Native coin transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		TransferCmd(),
	)
	return cmd
}

// TransferCmd create transfer tx
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer native coins",
		Run:   transfer,
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "amount with denom, e.g. 1000uusd")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, _ := cmd.Flags().GetString("amount")
	coins, err := commands.ParseCoins(amount)
	if err != nil || len(coins) != 1 {
		fmt.Fprintln(os.Stderr, "amount must be a single coin", err)
		return
	}
	action := &cty.CoinsAction{Ty: cty.CoinsActionTransfer, Transfer: &cty.CoinsTransfer{To: to, Amount: coins[0]}}
	commands.SendTx(cmd, cty.CoinsX, action)
}

