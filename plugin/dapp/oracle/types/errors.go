// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	//ErrRandomnessLength 随机数必须是 32 字节
	ErrRandomnessLength = errors.New("ErrRandomnessLength")
	//ErrRoundNotIncrease 轮次必须递增
	ErrRoundNotIncrease = errors.New("ErrRoundNotIncrease")
	//ErrNoRandomness 还没有发布过随机数
	ErrNoRandomness = errors.New("ErrNoRandomness")
)
