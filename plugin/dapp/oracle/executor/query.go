// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
)

//Query LatestRandomness, GetRandomness, GetOwner
func (o *Oracle) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case "LatestRandomness":
		return o.getLatest()
	case "GetRandomness":
		var req oty.ReqRound
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		var r oty.Randomness
		if err := drivers.GetState(o.GetStateDB(), calcRoundKey(req.Round), &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "GetOwner":
		owner, err := o.getOwner()
		if err != nil {
			return nil, err
		}
		return &types.ReqString{Data: owner}, nil
	}
	return nil, types.ErrQueryNotSupport
}
