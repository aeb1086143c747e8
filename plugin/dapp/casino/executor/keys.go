// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

// 状态 key 都以 mavl-<game>- 开头, 本地索引以 LODB-<game>- 开头

func configKey(game string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-config", game))
}

func timerKey(game string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-timer", game))
}

func lastRandomnessKey(game string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-last-randomness", game))
}

func totalRewardsKey(game string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-total-rewards", game))
}

func rewardsKey(game, player string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-rewards-%s", game, player))
}

func betsKey(game string, round uint64, player string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-bets-%020d-%s", game, round, player))
}

func roundKey(game string, round uint64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-round-%020d", game, round))
}

func playerRoundsKey(game, player string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-player-rounds-%s", game, player))
}

func outcomeKey(game string, round uint64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-outcome-%020d", game, round))
}

func localBetsPrefix(game string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-bets-", game))
}

func localBetsKey(game string, round uint64, player string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-bets-%020d-%s", game, round, player))
}

func localOutcomePrefix(game string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-outcome-", game))
}

func localOutcomeKey(game string, round uint64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-outcome-%020d", game, round))
}
