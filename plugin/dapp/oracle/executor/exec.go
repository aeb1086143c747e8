// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/vegas/common/address"
	oty "github.com/33cn/vegas/plugin/dapp/oracle/types"
	drivers "github.com/33cn/vegas/system/dapp"
	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
)

//Exec 执行 oracle 交易
func (o *Oracle) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action oty.OracleAction
	if err := drivers.GetPayload(tx, &action); err != nil {
		return nil, err
	}
	if err := types.Nonpayable(tx.Funds); err != nil {
		return nil, err
	}
	switch action.Ty {
	case oty.OracleActionInstantiate:
		return o.instantiate(tx)
	case oty.OracleActionPublish:
		if action.Publish == nil {
			return nil, types.ErrInvalidParam
		}
		return o.publish(tx, action.Publish)
	case oty.OracleActionTransferOwner:
		return o.transferOwner(tx, action.TransferOwner)
	}
	return nil, types.ErrActionNotSupport
}

func (o *Oracle) instantiate(tx *types.Transaction) (*types.Receipt, error) {
	if _, err := o.getOwner(); err == nil {
		return nil, types.ErrAlreadyInstantiated
	}
	kv, err := drivers.SetState(o.GetStateDB(), ownerKey, &types.ReqString{Data: tx.From})
	if err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}}, nil
}

func (o *Oracle) checkOwner(tx *types.Transaction) error {
	owner, err := o.getOwner()
	if err != nil {
		return err
	}
	if owner != tx.From {
		return errors.Wrapf(types.ErrUnauthorized, "oracle owner is %s", owner)
	}
	return nil
}

func (o *Oracle) publish(tx *types.Transaction, r *oty.Randomness) (*types.Receipt, error) {
	if err := o.checkOwner(tx); err != nil {
		return nil, err
	}
	if len(r.Randomness) != oty.RandomnessLength {
		return nil, oty.ErrRandomnessLength
	}
	latest, err := o.getLatest()
	if err != nil && err != oty.ErrNoRandomness {
		return nil, err
	}
	if latest != nil && r.Round <= latest.Round {
		return nil, errors.Wrapf(oty.ErrRoundNotIncrease, "latest %d, got %d", latest.Round, r.Round)
	}
	db := o.GetStateDB()
	var kvs []*types.KeyValue
	for _, key := range [][]byte{latestKey, calcRoundKey(r.Round)} {
		kv, err := drivers.SetState(db, key, r)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, kv)
	}
	olog.Debug("publish", "round", r.Round)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kvs,
		Logs: []*types.ReceiptLog{types.GetReceiptLog(oty.TyLogOraclePublish, r)},
	}, nil
}

func (o *Oracle) transferOwner(tx *types.Transaction, newOwner string) (*types.Receipt, error) {
	if err := o.checkOwner(tx); err != nil {
		return nil, err
	}
	if err := address.CheckAddress(newOwner); err != nil {
		return nil, types.ErrInvalidAddress
	}
	kv, err := drivers.SetState(o.GetStateDB(), ownerKey, &types.ReqString{Data: newOwner})
	if err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}}, nil
}
