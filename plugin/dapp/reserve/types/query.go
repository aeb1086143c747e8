// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
)

//QueryCurrentBalance reserve 的总余额, 游戏用来计算下注上限
func QueryCurrentBalance(api drivers.API, reserve string) (uint64, error) {
	msg, err := api.QueryChain(reserve, "CurrentBalance", &types.ReqNil{})
	if err != nil {
		return 0, err
	}
	return msg.(*CurrentBalance).Balance, nil
}
