// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRPCAddr(t *testing.T) {
	os.Unsetenv("VEGAS_RPC_LADDR")
	assert.Equal(t, "http://127.0.0.1:9000", rpcAddr("http://127.0.0.1:9000"))
	assert.Equal(t, DefaultRPCAddr, rpcAddr(""))

	t.Setenv("VEGAS_RPC_LADDR", "http://10.0.0.1:8801")
	assert.Equal(t, "http://10.0.0.1:8801", rpcAddr(""))
}
