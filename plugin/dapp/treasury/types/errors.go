// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

//ErrTaxRate 税率必须小于 1
var ErrTaxRate = errors.New("ErrTaxRate")
