// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/vegas/types"
)

// 执行器只能修改执行器自己内部的数据: mavl-<exec>-
// coins 执行器负责原生币转账, 可以修改 mavl-bank-
func isAllowKeyWrite(key []byte, execer string) bool {
	if bytes.HasPrefix(key, execPrefix(types.StatePrefix, execer)) {
		return true
	}
	if execer == "coins" && bytes.HasPrefix(key, bankPrefix) {
		return true
	}
	return false
}

func isAllowLocalKey(key []byte, execer string) bool {
	return bytes.HasPrefix(key, execPrefix(types.LocalPrefix, execer))
}

var bankPrefix = []byte("mavl-bank-")

func execPrefix(prefix []byte, execer string) []byte {
	p := make([]byte, 0, len(prefix)+len(execer)+1)
	p = append(p, prefix...)
	p = append(p, execer...)
	return append(p, '-')
}

// statedb 中 Set 的 key 必须出现在 receipt.KV 中
func checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.GetKey())] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			return types.ErrNotAllowMemSetKey
		}
	}
	return nil
}

func checkPrefix(execer string, kvs []*types.KeyValue) error {
	for _, kv := range kvs {
		if !isAllowKeyWrite(kv.GetKey(), execer) {
			elog.Error("key not allowed", "execer", execer, "key", string(kv.GetKey()))
			return types.ErrNotAllowMemSetKey
		}
	}
	return nil
}
