// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//round status
const (
	RoundLive = 1 + iota
	RoundWaitingOnRandomness
	RoundReady
	RoundStopped
)

var statusName = map[int32]string{
	RoundLive:                "Live",
	RoundWaitingOnRandomness: "WaitingOnRandomness",
	RoundReady:               "Ready",
	RoundStopped:             "Stopped",
}

//StatusName 状态名
func StatusName(status int32) string {
	if name, ok := statusName[status]; ok {
		return name
	}
	return "Unknown"
}

//NewRoundTimer 第 0 轮从 now 开始
func NewRoundTimer(duration, now int64) *RoundTimer {
	return &RoundTimer{RoundDuration: duration, CurrentRoundStart: now}
}

//Status 当前轮次状态, fresh 表示信标有没有发布新的轮次
func (m *RoundTimer) Status(now int64, fresh bool) int32 {
	if m.Stopped {
		return RoundStopped
	}
	if now-m.CurrentRoundStart >= m.RoundDuration+RandomnessGracePeriod {
		if !fresh {
			return RoundWaitingOnRandomness
		}
		return RoundReady
	}
	return RoundLive
}

//NextRound 结算后开始下一轮
func (m *RoundTimer) NextRound(now int64) {
	m.CurrentRoundStart = now
	m.CurrentRound++
}

//UpdateDrand 记录结算使用的信标轮次
func (m *RoundTimer) UpdateDrand(round uint64) {
	m.DrandRound = round
}

//ValidRoundDuration 轮次时长必须大于 0 且不超过 MaxRoundDuration
func ValidRoundDuration(duration int64) bool {
	return duration > 0 && duration <= MaxRoundDuration
}

//UpdateDuration 修改轮次时长
func (m *RoundTimer) UpdateDuration(duration int64) error {
	if !ValidRoundDuration(duration) {
		return ErrRoundDuration
	}
	m.RoundDuration = duration
	return nil
}

//Stop 停止游戏, 不会自动恢复
func (m *RoundTimer) Stop() {
	m.Stopped = true
}
