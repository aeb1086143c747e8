// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	b, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)
	assert.Equal(t, "0x0102ff", ToHex(b))
	assert.Equal(t, "", ToHex(nil))

	b, err = FromHex("0x102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
}

func TestSafeMath(t *testing.T) {
	v, err := SafeAdd(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v)

	_, err = SafeAdd(math.MaxUint64, 1)
	assert.Equal(t, ErrOverflow, err)

	_, err = SafeSub(1, 2)
	assert.Equal(t, ErrOverflow, err)

	_, err = SafeMul(math.MaxUint64, 2)
	assert.Equal(t, ErrOverflow, err)
}

func TestHashLength(t *testing.T) {
	assert.Len(t, Sha256([]byte("vegas")), 32)
	h := Rimp160AfterSha256([]byte("vegas"))
	assert.Len(t, h[:], 20)
	assert.NotEqual(t, Sha2Sum([]byte("a")), Sha2Sum([]byte("b")))
}
