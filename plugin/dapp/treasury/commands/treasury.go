// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands treasury 命令行
package commands

import (
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	"github.com/33cn/vegas/system/dapp/commands"
	"github.com/33cn/vegas/types"
	"github.com/spf13/cobra"
)

//TreasuryCmd treasury 命令
func TreasuryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Tax rate and caps",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		instantiateCmd(),
		setRateCmd(),
		setCapCmd(),
		rateCmd(),
		capCmd(),
	)
	return cmd
}

func instantiateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Instantiate treasury with a tax rate",
		Run: func(cmd *cobra.Command, args []string) {
			rate, _ := cmd.Flags().GetString("rate")
			action := &tty.TreasuryAction{Ty: tty.TreasuryActionInstantiate, Rate: &tty.TaxRate{Rate: rate}}
			commands.SendTx(cmd, tty.TreasuryX, action)
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("rate", "r", "0", "tax rate, e.g. 0.005")
	return cmd
}

func setRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_rate",
		Short: "Set tax rate",
		Run: func(cmd *cobra.Command, args []string) {
			rate, _ := cmd.Flags().GetString("rate")
			action := &tty.TreasuryAction{Ty: tty.TreasuryActionSetTaxRate, Rate: &tty.TaxRate{Rate: rate}}
			commands.SendTx(cmd, tty.TreasuryX, action)
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("rate", "r", "", "tax rate")
	cmd.MarkFlagRequired("rate")
	return cmd
}

func setCapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_cap",
		Short: "Set tax cap of a denom",
		Run: func(cmd *cobra.Command, args []string) {
			denom, _ := cmd.Flags().GetString("denom")
			capacity, _ := cmd.Flags().GetUint64("cap")
			action := &tty.TreasuryAction{Ty: tty.TreasuryActionSetTaxCap, Cap: &tty.TaxCap{Denom: denom, Cap: capacity}}
			commands.SendTx(cmd, tty.TreasuryX, action)
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("denom", "d", types.DefaultDenom, "denom")
	cmd.Flags().Uint64P("cap", "c", 0, "tax cap")
	cmd.MarkFlagRequired("cap")
	return cmd
}

func rateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate",
		Short: "Query tax rate",
		Run: func(cmd *cobra.Command, args []string) {
			commands.Query(cmd, tty.TreasuryX, "TaxRate", &types.ReqNil{})
		},
	}
}

func capCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cap",
		Short: "Query tax cap of a denom",
		Run: func(cmd *cobra.Command, args []string) {
			denom, _ := cmd.Flags().GetString("denom")
			commands.Query(cmd, tty.TreasuryX, "TaxCap", &types.ReqString{Data: denom})
		},
	}
	cmd.Flags().StringP("denom", "d", types.DefaultDenom, "denom")
	return cmd
}
