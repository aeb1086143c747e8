// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands reserve 命令行
package commands

import (
	rty "github.com/33cn/vegas/plugin/dapp/reserve/types"
	"github.com/33cn/vegas/system/dapp/commands"
	"github.com/33cn/vegas/types"
	"github.com/spf13/cobra"
)

//ReserveCmd reserve 命令
func ReserveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Shared reserve of the games",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		instantiateCmd(),
		thresholdCmd(),
		gameCmd("add_game", "Authorize a game", rty.ReserveActionAddGame),
		gameCmd("remove_game", "Remove a game", rty.ReserveActionRemoveGame),
		queryCmd("balance", "Native plus aToken balance", "CurrentBalance"),
		queryCmd("threshold", "Threshold kept in native denom", "GetThreshold"),
		queryCmd("games", "Authorized games", "ListGames"),
		queryCmd("pending", "Pending fund request", "PendingRequest"),
		queryCmd("config", "Reserve config", "GetConfig"),
		historyCmd(),
	)
	return cmd
}

func instantiateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Instantiate the reserve, sender becomes owner",
		Run: func(cmd *cobra.Command, args []string) {
			gov, _ := cmd.Flags().GetString("gov")
			market, _ := cmd.Flags().GetString("market")
			denom, _ := cmd.Flags().GetString("denom")
			threshold, _ := cmd.Flags().GetUint64("threshold")
			config := &rty.ReserveConfig{Gov: gov, Market: market, NativeDenom: denom, Threshold: threshold}
			commands.SendTx(cmd, rty.ReserveX, &rty.ReserveAction{Ty: rty.ReserveActionInstantiate, Instantiate: config})
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("gov", "g", "", "governance address")
	cmd.Flags().StringP("market", "k", "market", "money market execer or address")
	cmd.Flags().StringP("denom", "d", types.DefaultDenom, "native denom")
	cmd.Flags().Uint64P("threshold", "t", 0, "amount kept in native denom")
	return cmd
}

func thresholdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_threshold",
		Short: "Change threshold",
		Run: func(cmd *cobra.Command, args []string) {
			threshold, _ := cmd.Flags().GetUint64("threshold")
			commands.SendTx(cmd, rty.ReserveX, &rty.ReserveAction{Ty: rty.ReserveActionChangeThreshold, Threshold: threshold})
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().Uint64P("threshold", "t", 0, "amount kept in native denom")
	cmd.MarkFlagRequired("threshold")
	return cmd
}

func gameCmd(use, short string, ty int32) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			game, _ := cmd.Flags().GetString("game")
			commands.SendTx(cmd, rty.ReserveX, &rty.ReserveAction{Ty: ty, Game: game})
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("game", "g", "", "game execer or address")
	cmd.MarkFlagRequired("game")
	return cmd
}

func queryCmd(use, short, funcName string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			commands.Query(cmd, rty.ReserveX, funcName, &types.ReqNil{})
		},
	}
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Balance snapshots by height",
		Run: func(cmd *cobra.Command, args []string) {
			after, _ := cmd.Flags().GetInt64("start_after")
			limit, _ := cmd.Flags().GetInt32("limit")
			commands.Query(cmd, rty.ReserveX, "BalanceHistory", &rty.ReqHistory{StartAfter: after, Limit: limit})
		},
	}
	cmd.Flags().Int64P("start_after", "s", 0, "exclusive start height")
	cmd.Flags().Int32P("limit", "l", 0, "page size")
	return cmd
}
