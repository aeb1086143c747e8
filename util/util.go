// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
)

var ulog = log.New("module", "util")

//ResetDatadir 重写datadir, 日志和数据库路径都放到 datadir 下面
func ResetDatadir(cfg *types.Config, datadir string) string {
	// Check in case of paths like "/something/~/something/"
	if len(datadir) >= 2 && datadir[:2] == "~/" {
		usr, err := user.Current()
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(usr.HomeDir, datadir[2:])
	}
	if len(datadir) >= 6 && datadir[:6] == "$TEMP/" {
		dir, err := os.MkdirTemp("", "vegasdatadir-")
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(dir, datadir[6:])
	}
	ulog.Info("current user data dir is ", "dir", datadir)
	if cfg.Log != nil && cfg.Log.LogFile != "" {
		cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	}
	cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
	return datadir
}

//CreateTestDB 创建一个测试数据库
func CreateTestDB(backend string) (string, db.DB) {
	dir, err := os.MkdirTemp("", backend)
	if err != nil {
		panic(err)
	}
	d, err := db.NewDB("testdb", backend, dir, 16)
	if err != nil {
		panic(err)
	}
	return dir, d
}

//CloseTestDB 关闭并删除测试数据库
func CloseTestDB(dir string, dbm db.DB) {
	dbm.Close()
	if err := os.RemoveAll(dir); err != nil {
		ulog.Info("RemoveAll ", "dir", dir, "err", err)
	}
}

// CheckPathExists 检查文件夹是否存在
func CheckPathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

//MakeDir 创建目录
func MakeDir(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}

//Pwd 可执行文件所在目录
func Pwd() string {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		panic(err)
	}
	return dir
}
