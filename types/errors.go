// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"

	"github.com/33cn/vegas/common"
)

//通用错误
var (
	ErrNotFound            = errors.New("ErrNotFound")
	ErrActionNotSupport    = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport     = errors.New("ErrQueryNotSupport")
	ErrUnRegistedDriver    = errors.New("ErrUnRegistedDriver")
	ErrExecNameNotAllow    = errors.New("ErrExecNameNotAllow")
	ErrInvalidParam        = errors.New("ErrInvalidParam")
	ErrInvalidAddress      = errors.New("ErrInvalidAddress")
	ErrDecode              = errors.New("ErrDecode")
	ErrNoBalance           = errors.New("ErrNoBalance")
	ErrAmount              = errors.New("ErrAmount")
	ErrNotAllowMemSetKey   = errors.New("ErrNotAllowMemSetKey")
	ErrExecDepth           = errors.New("ErrExecDepth")
	ErrReplyNotSupport     = errors.New("ErrReplyNotSupport")
	ErrInvalidReplyID      = errors.New("ErrInvalidReplyID")
	ErrEmptySubMsg         = errors.New("ErrEmptySubMsg")
	ErrUnauthorized        = errors.New("ErrUnauthorized")
	ErrAlreadyInstantiated = errors.New("ErrAlreadyInstantiated")
	ErrNotInstantiated     = errors.New("ErrNotInstantiated")
	ErrDivByZero           = errors.New("ErrDivByZero")
	ErrInvalidDecimal      = errors.New("ErrInvalidDecimal")

	//payment
	ErrNoFunds        = errors.New("ErrNoFunds")
	ErrMissingDenom   = errors.New("ErrMissingDenom")
	ErrMultipleDenoms = errors.New("ErrMultipleDenoms")
	ErrNonPayable     = errors.New("ErrNonPayable")

	//ErrOverflow checked arithmetic
	ErrOverflow = common.ErrOverflow
)
