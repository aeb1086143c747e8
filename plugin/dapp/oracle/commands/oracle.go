// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands oracle 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/vegas/common"
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	"github.com/33cn/vegas/system/dapp/commands"
	"github.com/33cn/vegas/types"
	"github.com/spf13/cobra"
)

//OracleCmd oracle 命令
func OracleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle",
		Short: "Randomness beacon",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		instantiateCmd(),
		publishCmd(),
		latestCmd(),
		getRandomnessCmd(),
	)
	return cmd
}

func instantiateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Instantiate the oracle, sender becomes owner",
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendTx(cmd, oty.OracleX, &oty.OracleAction{Ty: oty.OracleActionInstantiate})
		},
	}
	commands.AddFromFlag(cmd)
	return cmd
}

func publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish randomness for a round",
		Run:   publish,
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().Uint64P("round", "r", 0, "beacon round")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("randomness", "x", "", "32 bytes hex")
	cmd.MarkFlagRequired("randomness")
	return cmd
}

func publish(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	hex, _ := cmd.Flags().GetString("randomness")
	randomness, err := common.FromHex(hex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &oty.OracleAction{Ty: oty.OracleActionPublish, Publish: &oty.Randomness{Round: round, Randomness: randomness}}
	commands.SendTx(cmd, oty.OracleX, action)
}

func latestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Latest randomness",
		Run: func(cmd *cobra.Command, args []string) {
			commands.Query(cmd, oty.OracleX, "LatestRandomness", &types.ReqNil{})
		},
	}
}

func getRandomnessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Randomness of a round",
		Run: func(cmd *cobra.Command, args []string) {
			round, _ := cmd.Flags().GetUint64("round")
			commands.Query(cmd, oty.OracleX, "GetRandomness", &oty.ReqRound{Round: round})
		},
	}
	cmd.Flags().Uint64P("round", "r", 0, "beacon round")
	cmd.MarkFlagRequired("round")
	return cmd
}
