// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/types"
)

//LocalDB 本地数据库，不加入状态, 只用于查询索引
//list 只读取已经落盘的数据
type LocalDB struct {
	*StateDB
	list *dbm.ListHelper
}

//NewLocalDB 创建一个新的LocalDB
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{
		StateDB: NewStateDB(db),
		list:    dbm.NewListHelper(db),
	}
}

//List 从数据库中查询数据列表
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := l.list.List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}
