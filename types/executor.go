// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"sync"

	"github.com/pkg/errors"
)

// ExecutorType 执行器的类型信息, rpc 和命令行用它把 json 转换成交易和查询参数
type ExecutorType interface {
	GetName() string
	// GetPayload 交易 payload 的空消息
	GetPayload() Message
	// GetQueryParam 查询参数的空消息
	GetQueryParam(funcName string) (Message, error)
}

// ExecTypeBase 按表实现 ExecutorType
type ExecTypeBase struct {
	Name    string
	Payload func() Message
	Queries map[string]func() Message
}

//GetName name
func (base *ExecTypeBase) GetName() string {
	return base.Name
}

//GetPayload payload
func (base *ExecTypeBase) GetPayload() Message {
	return base.Payload()
}

//GetQueryParam query param
func (base *ExecTypeBase) GetQueryParam(funcName string) (Message, error) {
	create, ok := base.Queries[funcName]
	if !ok {
		return nil, errors.Wrapf(ErrQueryNotSupport, "%s.%s", base.Name, funcName)
	}
	return create(), nil
}

var (
	execTypeMu sync.RWMutex
	execTypes  = make(map[string]ExecutorType)
)

//RegistorExecutor 注册执行器类型
func RegistorExecutor(name string, ty ExecutorType) {
	execTypeMu.Lock()
	defer execTypeMu.Unlock()
	if _, ok := execTypes[name]; ok {
		panic("RegistorExecutor dup name " + name)
	}
	execTypes[name] = ty
}

//LoadExecutorType 加载执行器类型
func LoadExecutorType(name string) ExecutorType {
	execTypeMu.RLock()
	defer execTypeMu.RUnlock()
	return execTypes[name]
}

//DecodeQuery json 参数解码成查询消息
func DecodeQuery(execer, funcName string, data []byte) (Message, error) {
	ty := LoadExecutorType(execer)
	if ty == nil {
		return nil, errors.Wrap(ErrUnRegistedDriver, execer)
	}
	param, err := ty.GetQueryParam(funcName)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := JSONToPB(data, param); err != nil {
			return nil, errors.Wrap(ErrInvalidParam, err.Error())
		}
	}
	return param, nil
}

//DecodePayload json 交易内容解码并编码成 payload
func DecodePayload(execer string, data []byte) ([]byte, error) {
	ty := LoadExecutorType(execer)
	if ty == nil {
		return nil, errors.Wrap(ErrUnRegistedDriver, execer)
	}
	action := ty.GetPayload()
	if err := JSONToPB(data, action); err != nil {
		return nil, errors.Wrap(ErrInvalidParam, err.Error())
	}
	return Encode(action), nil
}
