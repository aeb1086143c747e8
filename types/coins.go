// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
)

//MustPay 交易必须附带且只附带 denom 一种币, 返回数量
func MustPay(funds []*Coin, denom string) (uint64, error) {
	if len(funds) == 0 {
		return 0, ErrNoFunds
	}
	if len(funds) > 1 {
		return 0, ErrMultipleDenoms
	}
	coin := funds[0]
	if coin.GetAmount() == 0 {
		return 0, ErrNoFunds
	}
	if coin.GetDenom() != denom {
		return 0, errors.Wrapf(ErrMissingDenom, "want %s got %s", denom, coin.GetDenom())
	}
	return coin.GetAmount(), nil
}

//Nonpayable 不接受附带资金
func Nonpayable(funds []*Coin) error {
	for _, c := range funds {
		if c.GetAmount() > 0 {
			return ErrNonPayable
		}
	}
	return nil
}
