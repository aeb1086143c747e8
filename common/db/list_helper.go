// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
)

//ListHelper 前缀列表查询
type ListHelper struct {
	db IteratorDB
}

var listlog = dlog.New("helper", "ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//List prefix 下的列表. key 非空时从 key 之后开始 (不包含 key 本身)
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, direction == ListDESC)
	defer it.Close()
	var ok bool
	if len(key) == 0 {
		ok = it.Rewind()
	} else {
		ok = it.Seek(key)
		if ok && bytes.Equal(it.Key(), key) {
			ok = it.Next()
		}
	}
	var i int32
	for ; ok; ok = it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("List it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return values
}

//PrefixCount 前缀数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, false)
	defer it.Close()
	for ok := it.Rewind(); ok; ok = it.Next() {
		count++
	}
	return
}
