// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"

	"github.com/33cn/vegas/executor"
	rpctypes "github.com/33cn/vegas/rpc/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
)

// Vegas json rpc 服务, 方法名为 Vegas.<Method>
type Vegas struct {
	exec *executor.Executor
}

// SendTransaction 执行交易. 执行失败时返回的结果里带有错误信息
func (v *Vegas) SendTransaction(in *rpctypes.SendTx, result *interface{}) error {
	res, err := sendTx(v.exec, in)
	if err != nil && res == nil {
		return err
	}
	*result = res
	return nil
}

// Query 查询合约
func (v *Vegas) Query(in *rpctypes.Query, result *interface{}) error {
	reply, err := query(v.exec, in)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetBalance 余额
func (v *Vegas) GetBalance(in *types.ReqBalance, result *interface{}) error {
	denom := in.Denom
	if denom == "" {
		denom = types.DefaultDenom
	}
	balance, err := v.exec.GetBalance(in.Addr, denom)
	if err != nil {
		return err
	}
	*result = &rpctypes.Account{Addr: in.Addr, Denom: denom, Balance: balance}
	return nil
}

// GetLastHeader 当前区块头
func (v *Vegas) GetLastHeader(in *types.ReqNil, result *interface{}) error {
	h := v.exec.Header()
	*result = &rpctypes.Header{Height: h.Height, Blocktime: h.Blocktime}
	return nil
}

// ListExecs 已注册的执行器
func (v *Vegas) ListExecs(in *types.ReqNil, result *interface{}) error {
	*result = &types.ReplyStrings{Datas: drivers.RegisteredNames()}
	return nil
}

// sendTx json 交易转换成交易并执行
func sendTx(exec *executor.Executor, in *rpctypes.SendTx) (*rpctypes.TxResult, error) {
	payload, err := types.DecodePayload(in.Execer, in.Payload)
	if err != nil {
		return nil, err
	}
	tx := &types.Transaction{
		Execer:  []byte(in.Execer),
		Payload: payload,
		From:    in.From,
		Funds:   in.Funds,
		Nonce:   in.Nonce,
	}
	res, err := exec.ExecTx(tx)
	if res == nil {
		return nil, err
	}
	return rpctypes.ConvertTxResult(res), err
}

// query 返回查询结果的 json
func query(exec *executor.Executor, in *rpctypes.Query) (json.RawMessage, error) {
	param, err := types.DecodeQuery(in.Execer, in.FuncName, in.Payload)
	if err != nil {
		return nil, err
	}
	reply, err := exec.Query(in.Execer, in.FuncName, types.Encode(param))
	if err != nil {
		return nil, err
	}
	data, err := types.PBToJSON(reply)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
