// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"errors"

	"github.com/ethereum/go-ethereum/common/math"
)

// ErrOverflow returned when a checked u64 operation wraps
var ErrOverflow = errors.New("ErrOverflow")

// SafeAdd x + y, error on overflow
func SafeAdd(x, y uint64) (uint64, error) {
	sum, overflow := math.SafeAdd(x, y)
	if overflow {
		return 0, ErrOverflow
	}
	return sum, nil
}

// SafeSub x - y, error on underflow
func SafeSub(x, y uint64) (uint64, error) {
	diff, overflow := math.SafeSub(x, y)
	if overflow {
		return 0, ErrOverflow
	}
	return diff, nil
}

// SafeMul x * y, error on overflow
func SafeMul(x, y uint64) (uint64, error) {
	prod, overflow := math.SafeMul(x, y)
	if overflow {
		return 0, ErrOverflow
	}
	return prod, nil
}
