// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/33cn/vegas/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoins(t *testing.T) {
	coins, err := ParseCoins("1000uusd, 20uluna")
	require.NoError(t, err)
	assert.Equal(t, []*types.Coin{types.NewCoin("uusd", 1000), types.NewCoin("uluna", 20)}, coins)

	coins, err = ParseCoins("")
	require.NoError(t, err)
	assert.Empty(t, coins)

	for _, bad := range []string{"uusd", "100", "99999999999999999999999uusd"} {
		_, err = ParseCoins(bad)
		assert.Equal(t, types.ErrInvalidParam, errors.Cause(err), bad)
	}
}
