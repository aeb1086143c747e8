// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/vegas/common/address"
	"github.com/33cn/vegas/types"
)

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
)

// Register 注册执行器, height 之后才可以使用
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = &driverWithHeight{create: create, height: height}
	execAddressNameMap[address.ExecAddress(name)] = name
}

// LoadDriver 加载执行器, height == -1 时不检查高度
func LoadDriver(name string, height int64) (Driver, error) {
	mu.RLock()
	c, ok := registedExecDriver[GetExecName(name)]
	mu.RUnlock()
	if !ok {
		blog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrUnRegistedDriver
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// GetExecName 地址转执行器名, 不是执行器地址时原样返回
func GetExecName(nameOrAddr string) string {
	mu.RLock()
	defer mu.RUnlock()
	if name, ok := execAddressNameMap[nameOrAddr]; ok {
		return name
	}
	return nameOrAddr
}

// IsDriverAddress 是否是执行器地址
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// RegisteredNames 已注册的执行器
func RegisteredNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
