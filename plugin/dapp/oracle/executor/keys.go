// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

var (
	ownerKey  = []byte("mavl-oracle-owner")
	latestKey = []byte("mavl-oracle-latest")
)

func calcRoundKey(round uint64) []byte {
	return []byte(fmt.Sprintf("mavl-oracle-round-%020d", round))
}
