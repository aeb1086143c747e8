// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	//ErrExchangeRate 汇率必须大于 0
	ErrExchangeRate = errors.New("ErrExchangeRate")
	//ErrZeroMint 存入金额太小
	ErrZeroMint = errors.New("ErrZeroMint")
)
