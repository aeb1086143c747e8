// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"fmt"
)

var (
	//ErrInvalidBetPosition 押注结果不在游戏范围内
	ErrInvalidBetPosition = errors.New("ErrInvalidBetPosition")
	//ErrMaxAmountOfBetsThisRound 本轮下注次数已满
	ErrMaxAmountOfBetsThisRound = errors.New("ErrMaxAmountOfBetsThisRound")
	//ErrBetAmountExceedsLimit 超过 reserve 余额决定的上限
	ErrBetAmountExceedsLimit = errors.New("ErrBetAmountExceedsLimit")
	//ErrNewRandomnessNotYetAvailable 信标还没有发布新的轮次
	ErrNewRandomnessNotYetAvailable = errors.New("ErrNewRandomnessNotYetAvailable")
	//ErrGameStopped 游戏已经停止
	ErrGameStopped = errors.New("ErrGameStopped")
	//ErrAdvantageValueOutOfRange advantage 必须在 [0, 1)
	ErrAdvantageValueOutOfRange = errors.New("ErrAdvantageValueOutOfRange")
	//ErrWinTaxOutOfRange win tax 必须在 [0, 1]
	ErrWinTaxOutOfRange = errors.New("ErrWinTaxOutOfRange")
	//ErrBettingRatio ratio 不能为 0
	ErrBettingRatio = errors.New("ErrBettingRatio")
	//ErrRoundDuration 轮次时长必须在 (0, MaxRoundDuration] 之内
	ErrRoundDuration = errors.New("ErrRoundDuration")
	//ErrOutcomeExists 结果只能写一次
	ErrOutcomeExists = errors.New("ErrOutcomeExists")
	//ErrUnknownGame 没有这个游戏
	ErrUnknownGame = errors.New("ErrUnknownGame")
)

//InvalidBetPositionError 押注位置错误
type InvalidBetPositionError struct {
	Current uint32
	Min     uint32
	Max     uint32
}

func (e *InvalidBetPositionError) Error() string {
	return fmt.Sprintf("%s: position %d not in [%d, %d]", ErrInvalidBetPosition, e.Current, e.Min, e.Max)
}

//Unwrap sentinel
func (e *InvalidBetPositionError) Unwrap() error { return ErrInvalidBetPosition }

//MaxBetsError 本轮下注次数已满
type MaxBetsError struct {
	BetsThisRound   uint64
	MaxBetsPerRound uint64
}

func (e *MaxBetsError) Error() string {
	return fmt.Sprintf("%s: %d bets, max %d", ErrMaxAmountOfBetsThisRound, e.BetsThisRound, e.MaxBetsPerRound)
}

//Unwrap sentinel
func (e *MaxBetsError) Unwrap() error { return ErrMaxAmountOfBetsThisRound }

//BetLimitError 下注金额超过上限
type BetLimitError struct {
	CurrentBet    uint64
	TotalBet      uint64
	TotalBetLimit uint64
}

func (e *BetLimitError) Error() string {
	return fmt.Sprintf("%s: current %d, total %d, limit %d", ErrBetAmountExceedsLimit, e.CurrentBet, e.TotalBet, e.TotalBetLimit)
}

//Unwrap sentinel
func (e *BetLimitError) Unwrap() error { return ErrBetAmountExceedsLimit }
