// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	//ErrRequestPending 上一个资金请求还没有完成
	ErrRequestPending = errors.New("ErrRequestPending")
	//ErrNoPendingRequest 回调时没有等待中的请求
	ErrNoPendingRequest = errors.New("ErrNoPendingRequest")
	//ErrGameNotFound 游戏没有授权
	ErrGameNotFound = errors.New("ErrGameNotFound")
)
