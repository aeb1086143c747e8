// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 按配置启动指标上报
package metrics

import (
	"context"
	"time"

	"github.com/33cn/vegas/metrics/influxdb"
	"github.com/33cn/vegas/types"
	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "vegas metrics")

//Namespace 默认的指标前缀
const Namespace = "vegas."

//StartMetrics 根据配置文件相关参数启动上报, ctx 取消后停止
func StartMetrics(ctx context.Context, cfg *types.Metrics) {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	switch cfg.DataEmitMode {
	case "influxdb":
		namespace := cfg.Namespace
		if namespace == "" {
			namespace = Namespace
		}
		duration := time.Duration(cfg.Duration) * time.Second
		if duration <= 0 {
			duration = 10 * time.Second
		}
		mlog.Info("StartMetrics with influxdb", "duration", duration, "url", cfg.URL,
			"database", cfg.DatabaseName, "username", cfg.Username, "namespace", namespace)
		go influxdb.InfluxDB(ctx, gometrics.DefaultRegistry, duration, cfg.URL, cfg.DatabaseName, cfg.Username, cfg.Password, namespace)
	default:
		mlog.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
	}
}
