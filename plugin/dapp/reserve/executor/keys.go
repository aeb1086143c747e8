// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

var (
	configKey  = []byte("mavl-reserve-config")
	gamesKey   = []byte("mavl-reserve-games")
	pendingKey = []byte("mavl-reserve-pending")

	localHistoryPrefix = []byte("LODB-reserve-history-")
)

func calcHistoryKey(height int64) []byte {
	return []byte(fmt.Sprintf("mavl-reserve-history-%020d", height))
}

func calcLocalHistoryKey(height int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", localHistoryPrefix, height))
}
