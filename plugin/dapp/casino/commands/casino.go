// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coinflip 和 dice 的命令行
package commands

import (
	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	"github.com/33cn/vegas/system/dapp/commands"
	"github.com/33cn/vegas/types"
	"github.com/spf13/cobra"
)

//CoinflipCmd coinflip 命令
func CoinflipCmd() *cobra.Command {
	return CasinoCmd(cty.CoinflipX, "Coinflip game: 0 head, 1 tail")
}

//DiceCmd dice 命令
func DiceCmd() *cobra.Command {
	return CasinoCmd(cty.DiceX, "Double dice game: bet on a sum in [3, 12]")
}

//CasinoCmd 单个游戏的命令
func CasinoCmd(game, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   game,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		instantiateCmd(game),
		betCmd(game),
		adminCmd(game, "receive_rewards", "Withdraw accumulated rewards", cty.CasinoActionReceiveRewards),
		decCmd(game, "set_advantage", "Change house advantage", cty.CasinoActionChangeAdvantageValue),
		decCmd(game, "set_win_tax", "Change win tax", cty.CasinoActionChangeWinTax),
		numberCmd(game, "set_max_bets", "Change max number of bets per round", cty.CasinoActionChangeMaxNumberOfBets),
		numberCmd(game, "set_ratio", "Change max betting ratio", cty.CasinoActionChangeMaxBettingRatio),
		numberCmd(game, "set_duration", "Change round duration in seconds", cty.CasinoActionChangeRoundDuration),
		numberCmd(game, "set_cashflow", "Change max cashflow", cty.CasinoActionChangeMaxCashflow),
		adminCmd(game, "drain", "Send the whole game balance to the reserve", cty.CasinoActionDrainGame),
		adminCmd(game, "stop", "Stop the game", cty.CasinoActionStopGame),
		queryCmd(game, "coefficients", "Win coefficients", "WinCoefficients"),
		queryCmd(game, "round", "Current round and status", "CurrentRound"),
		queryCmd(game, "config", "Game config and round timer", "GetConfig"),
		queryCmd(game, "limit", "Betting limit", "GetBettingLimit"),
		activeLimitCmd(game),
		queryCmd(game, "total_rewards", "Unclaimed rewards of all players", "GetTotalRewards"),
		rewardsCmd(game),
		betsCmd(game),
		allBetsCmd(game),
		outcomesCmd(game),
	)
	return cmd
}

func instantiateCmd(game string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Instantiate the game, sender becomes owner",
		Run: func(cmd *cobra.Command, args []string) {
			init := &cty.CasinoInit{}
			init.NativeDenom, _ = cmd.Flags().GetString("denom")
			init.Advantage, _ = cmd.Flags().GetString("advantage")
			init.WinTax, _ = cmd.Flags().GetString("win_tax")
			init.MaxBets, _ = cmd.Flags().GetUint64("max_bets")
			init.MaxBettingRatio, _ = cmd.Flags().GetUint64("ratio")
			init.MaxCashflow, _ = cmd.Flags().GetUint64("cashflow")
			init.RoundDuration, _ = cmd.Flags().GetInt64("duration")
			init.Oracle, _ = cmd.Flags().GetString("oracle")
			init.Reserve, _ = cmd.Flags().GetString("reserve")
			init.Gov, _ = cmd.Flags().GetString("gov")
			commands.SendTx(cmd, game, &cty.CasinoAction{Ty: cty.CasinoActionInstantiate, Instantiate: init})
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("denom", "d", types.DefaultDenom, "native denom")
	cmd.Flags().StringP("advantage", "a", "0.01", "house advantage in [0, 1)")
	cmd.Flags().StringP("win_tax", "w", "0", "win tax in [0, 1]")
	cmd.Flags().Uint64P("max_bets", "n", 100, "max number of bets per round")
	cmd.Flags().Uint64P("ratio", "r", 100, "max betting ratio, limit is reserve balance / ratio")
	cmd.Flags().Uint64P("cashflow", "c", 0, "surplus kept before sending back to the reserve")
	cmd.Flags().Int64P("duration", "t", 60, "round duration in seconds")
	cmd.Flags().StringP("oracle", "o", "oracle", "randomness oracle execer or address")
	cmd.Flags().StringP("reserve", "s", "reserve", "reserve execer or address")
	cmd.Flags().StringP("gov", "g", "", "governance address")
	return cmd
}

func betCmd(game string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Place a bet, attach the stake with --funds",
		Run: func(cmd *cobra.Command, args []string) {
			outcome, _ := cmd.Flags().GetUint32("outcome")
			commands.SendTx(cmd, game, &cty.CasinoAction{Ty: cty.CasinoActionBet, Outcome: outcome})
		},
	}
	commands.AddFromFlag(cmd)
	commands.AddFundsFlag(cmd)
	cmd.MarkFlagRequired("funds")
	cmd.Flags().Uint32P("outcome", "o", 0, "bet position")
	cmd.MarkFlagRequired("outcome")
	return cmd
}

func adminCmd(game, use, short string, ty int32) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendTx(cmd, game, &cty.CasinoAction{Ty: ty})
		},
	}
	commands.AddFromFlag(cmd)
	return cmd
}

func decCmd(game, use, short string, ty int32) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			value, _ := cmd.Flags().GetString("value")
			commands.SendTx(cmd, game, &cty.CasinoAction{Ty: ty, Value: value})
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().StringP("value", "v", "", "decimal value, e.g. 0.01")
	cmd.MarkFlagRequired("value")
	return cmd
}

func numberCmd(game, use, short string, ty int32) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			number, _ := cmd.Flags().GetUint64("number")
			commands.SendTx(cmd, game, &cty.CasinoAction{Ty: ty, Number: number})
		},
	}
	commands.AddFromFlag(cmd)
	cmd.Flags().Uint64P("number", "n", 0, "new value")
	cmd.MarkFlagRequired("number")
	return cmd
}

func queryCmd(game, use, short, funcName string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			commands.Query(cmd, game, funcName, &types.ReqNil{})
		},
	}
}

func activeLimitCmd(game string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "active_limit",
		Short: "Betting limit left this round, per player for coinflip",
		Run: func(cmd *cobra.Command, args []string) {
			player, _ := cmd.Flags().GetString("player")
			commands.Query(cmd, game, "GetActiveBettingLimit", &cty.ReqPlayer{Player: player})
		},
	}
	cmd.Flags().StringP("player", "p", "", "player address")
	return cmd
}

func rewardsCmd(game string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "Unclaimed rewards of a player",
		Run: func(cmd *cobra.Command, args []string) {
			player, _ := cmd.Flags().GetString("player")
			commands.Query(cmd, game, "PlayerRewards", &cty.ReqPlayer{Player: player})
		},
	}
	cmd.Flags().StringP("player", "p", "", "player address")
	cmd.MarkFlagRequired("player")
	return cmd
}

func betsCmd(game string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bets",
		Short: "Bets of a player, all active rounds unless --round is set",
		Run: func(cmd *cobra.Command, args []string) {
			player, _ := cmd.Flags().GetString("player")
			round, _ := cmd.Flags().GetUint64("round")
			if round == 0 {
				commands.Query(cmd, game, "PlayerBetsAllRounds", &cty.ReqPlayer{Player: player})
				return
			}
			commands.Query(cmd, game, "PlayerBetsForRound", &cty.ReqPlayerRound{Player: player, Round: round})
		},
	}
	cmd.Flags().StringP("player", "p", "", "player address")
	cmd.MarkFlagRequired("player")
	cmd.Flags().Uint64P("round", "r", 0, "round")
	return cmd
}

func allBetsCmd(game string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all_bets",
		Short: "Bets of all players, newest round first",
		Run: func(cmd *cobra.Command, args []string) {
			round, _ := cmd.Flags().GetUint64("round")
			player, _ := cmd.Flags().GetString("player")
			limit, _ := cmd.Flags().GetInt32("limit")
			req := &cty.ReqAllBets{Limit: limit}
			if round > 0 {
				req.StartAfter = &cty.BetKey{Round: round, Player: player}
			}
			commands.Query(cmd, game, "AllBets", req)
		},
	}
	cmd.Flags().Uint64P("round", "r", 0, "exclusive start round")
	cmd.Flags().StringP("player", "p", "", "exclusive start player")
	cmd.Flags().Int32P("limit", "l", 0, "page size")
	return cmd
}

func outcomesCmd(game string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outcomes",
		Short: "Settled rounds, oldest first",
		Run: func(cmd *cobra.Command, args []string) {
			after, _ := cmd.Flags().GetUint64("start_after")
			limit, _ := cmd.Flags().GetInt32("limit")
			req := &cty.ReqOutcomes{Limit: limit}
			if after > 0 {
				req.StartAfter = &types.Uint64{Data: after}
			}
			commands.Query(cmd, game, "OutcomeHistory", req)
		},
	}
	cmd.Flags().Uint64P("start_after", "s", 0, "exclusive start round")
	cmd.Flags().Int32P("limit", "l", 0, "page size")
	return cmd
}
