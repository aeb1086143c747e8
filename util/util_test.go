// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"path/filepath"
	"testing"

	"github.com/33cn/vegas/common/db"
	"github.com/33cn/vegas/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetDatadir(t *testing.T) {
	cfg, _, err := types.InitCfgString(`
[log]
logFile = "logs/vegas.log"
[store]
dbPath = "datadir"
`)
	require.NoError(t, err)
	datadir := ResetDatadir(cfg, "/data/vegas")
	assert.Equal(t, "/data/vegas", datadir)
	assert.Equal(t, filepath.Join("/data/vegas", "logs/vegas.log"), cfg.Log.LogFile)
	assert.Equal(t, filepath.Join("/data/vegas", "datadir"), cfg.Store.DbPath)

	cfg, _, err = types.InitCfgString("")
	require.NoError(t, err)
	datadir = ResetDatadir(cfg, "$TEMP/vegas")
	assert.Equal(t, "vegas", filepath.Base(datadir))
	assert.Equal(t, "", cfg.Log.LogFile)
	assert.Equal(t, filepath.Join(datadir, "datadir"), cfg.Store.DbPath)
}

func TestCreateTestDB(t *testing.T) {
	dir, d := CreateTestDB(db.GoLevelDBBackendStr)
	assert.True(t, CheckPathExists(dir))
	require.NoError(t, d.Set([]byte("k"), []byte("v")))
	v, err := d.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
	CloseTestDB(dir, d)
	assert.False(t, CheckPathExists(dir))
}
