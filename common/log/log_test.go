// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/vegas/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlError, getLevel("nonsense"))
}

func TestSetFileLog(t *testing.T) {
	dir, err := os.MkdirTemp("", "vegaslog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := &types.Log{Loglevel: "info", LogConsoleLevel: "crit", LogFile: filepath.Join(dir, "vegas.log")}
	SetFileLog(cfg)
	New("module", "test").Info("hello", "k", 1)
	_, err = os.Stat(cfg.LogFile)
	assert.NoError(t, err)

	jsonCfg := &types.Log{Loglevel: "info", LogConsoleLevel: "crit", LogFile: filepath.Join(dir, "vegas.json"), LogFormat: "json"}
	SetFileLog(jsonCfg)
	New("module", "test").Info("hello", "k", 1)
	log15.Root().SetHandler(log15.DiscardHandler())
	data, err := os.ReadFile(jsonCfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	empty := &types.Log{}
	SetFileLog(empty)
	assert.Equal(t, "eror", empty.Loglevel)
	log15.Root().SetHandler(log15.DiscardHandler())
}
