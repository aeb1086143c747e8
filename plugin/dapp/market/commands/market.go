// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands market 命令行
package commands

import (
	mty "github.com/33cn/vegas/plugin/dapp/market/types"
	"github.com/33cn/vegas/system/dapp/commands"
	"github.com/33cn/vegas/types"
	"github.com/spf13/cobra"
)

//MarketCmd market 命令
func MarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Money market deposits and aToken",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		instantiateCmd(),
		depositCmd(),
		redeemCmd(),
		setRateCmd(),
		transferCmd(),
		stateCmd(),
		balanceCmd(),
	)
	return cmd
}

func instantiateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Instantiate the market",
		Run: func(cmd *cobra.Command, args []string) {
			denom, _ := cmd.Flags().GetString("denom")
			rate, _ := cmd.Flags().GetString("rate")
			action := &mty.MarketAction{Ty: mty.MarketActionInstantiate, Instantiate: &mty.MarketState{StableDenom: denom, ExchangeRate: rate}}
			commands.SendTx(cmd, mty.MarketX, action)
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("denom", "d", types.DefaultDenom, "stable denom")
	cmd.Flags().StringP("rate", "r", "1", "exchange rate")
	return cmd
}

func depositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit stable coins, funds carry the amount",
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendTx(cmd, mty.MarketX, &mty.MarketAction{Ty: mty.MarketActionDepositStable})
		},
	}
	commands.AddFromFlag(cmd)
	commands.AddFundsFlag(cmd)
	return cmd
}

func redeemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem",
		Short: "Redeem aToken for stable coins",
		Run: func(cmd *cobra.Command, args []string) {
			amount, _ := cmd.Flags().GetUint64("amount")
			commands.SendTx(cmd, mty.MarketX, mty.NewRedeemStableAction(amount))
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().Uint64P("amount", "a", 0, "aToken amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func setRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_rate",
		Short: "Set exchange rate",
		Run: func(cmd *cobra.Command, args []string) {
			rate, _ := cmd.Flags().GetString("rate")
			commands.SendTx(cmd, mty.MarketX, &mty.MarketAction{Ty: mty.MarketActionSetExchangeRate, ExchangeRate: rate})
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("rate", "r", "", "exchange rate")
	cmd.MarkFlagRequired("rate")
	return cmd
}

func transferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer aToken",
		Run: func(cmd *cobra.Command, args []string) {
			to, _ := cmd.Flags().GetString("to")
			amount, _ := cmd.Flags().GetUint64("amount")
			action := &mty.MarketAction{Ty: mty.MarketActionTransferToken, Transfer: &mty.TransferToken{To: to, Amount: amount}}
			commands.SendTx(cmd, mty.MarketX, action)
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver")
	cmd.MarkFlagRequired("to")
	cmd.Flags().Uint64P("amount", "a", 0, "aToken amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Market state",
		Run: func(cmd *cobra.Command, args []string) {
			commands.Query(cmd, mty.MarketX, "State", &types.ReqNil{})
		},
	}
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "aToken balance",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			commands.Query(cmd, mty.MarketX, "Balance", &types.ReqString{Data: addr})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}
