// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package influxdb

import (
	"testing"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	counter := gometrics.NewCounter()
	counter.Inc(3)
	assert.Equal(t, map[string]interface{}{"count": int64(3)}, Fields(counter))

	gauge := gometrics.NewGauge()
	gauge.Update(7)
	assert.Equal(t, int64(7), Fields(gauge)["value"])

	timer := gometrics.NewTimer()
	timer.Update(time.Second)
	fields := Fields(timer)
	assert.Equal(t, int64(1), fields["count"])
	assert.Equal(t, int64(time.Second), fields["max"])

	assert.Nil(t, Fields("not a metric"))
}
