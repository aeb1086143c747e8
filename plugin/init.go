// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin 注册所有插件
package plugin

import (
	_ "github.com/33cn/vegas/plugin/dapp/casino"   //register coinflip, dice
	_ "github.com/33cn/vegas/plugin/dapp/market"   //register market
	_ "github.com/33cn/vegas/plugin/dapp/oracle"   //register oracle
	_ "github.com/33cn/vegas/plugin/dapp/reserve"  //register reserve
	_ "github.com/33cn/vegas/plugin/dapp/treasury" //register treasury
)
