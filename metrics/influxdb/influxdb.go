// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package influxdb 定时把 go-metrics 注册表写入 influxdb
package influxdb

import (
	"context"
	"time"

	client "github.com/influxdata/influxdb/client/v2"
	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var ilog = log.New("module", "metrics.influxdb")

type reporter struct {
	reg       gometrics.Registry
	interval  time.Duration
	url       string
	database  string
	username  string
	password  string
	namespace string
	tags      map[string]string
	client    client.Client
}

// InfluxDB 每 d 上报一次, ctx 取消后退出
func InfluxDB(ctx context.Context, r gometrics.Registry, d time.Duration, url, database, username, password, namespace string) {
	InfluxDBWithTags(ctx, r, d, url, database, username, password, namespace, nil)
}

// InfluxDBWithTags 每个点都带上 tags
func InfluxDBWithTags(ctx context.Context, r gometrics.Registry, d time.Duration, url, database, username, password, namespace string, tags map[string]string) {
	rep := &reporter{
		reg:       r,
		interval:  d,
		url:       url,
		database:  database,
		username:  username,
		password:  password,
		namespace: namespace,
		tags:      tags,
	}
	if err := rep.makeClient(); err != nil {
		ilog.Error("unable to make InfluxDB client", "err", err)
		return
	}
	rep.run(ctx)
}

func (r *reporter) makeClient() (err error) {
	r.client, err = client.NewHTTPClient(client.HTTPConfig{
		Addr:     r.url,
		Username: r.username,
		Password: r.password,
		Timeout:  10 * time.Second,
	})
	return
}

func (r *reporter) run(ctx context.Context) {
	intervalTicker := time.NewTicker(r.interval)
	pingTicker := time.NewTicker(5 * time.Second)
	defer intervalTicker.Stop()
	defer pingTicker.Stop()
	defer r.client.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-intervalTicker.C:
			if err := r.send(); err != nil {
				ilog.Warn("unable to send to InfluxDB", "err", err)
			}
		case <-pingTicker.C:
			if _, _, err := r.client.Ping(5 * time.Second); err != nil {
				ilog.Warn("got error while sending a ping to InfluxDB, trying to recreate client", "err", err)
				r.client.Close()
				if err = r.makeClient(); err != nil {
					ilog.Error("unable to make InfluxDB client", "err", err)
				}
			}
		}
	}
}

func (r *reporter) send() error {
	bp, err := client.NewBatchPoints(client.BatchPointsConfig{Database: r.database, Precision: "s"})
	if err != nil {
		return err
	}
	now := time.Now()
	var perr error
	r.reg.Each(func(name string, i interface{}) {
		fields := Fields(i)
		if fields == nil {
			return
		}
		point, err := client.NewPoint(r.namespace+name, r.tags, fields, now)
		if err != nil {
			perr = err
			return
		}
		bp.AddPoint(point)
	})
	if perr != nil {
		return perr
	}
	return r.client.Write(bp)
}

// Fields 一个指标的 influx 字段, 不认识的类型返回 nil
func Fields(i interface{}) map[string]interface{} {
	switch metric := i.(type) {
	case gometrics.Counter:
		return map[string]interface{}{"count": metric.Count()}
	case gometrics.Gauge:
		return map[string]interface{}{"value": metric.Snapshot().Value()}
	case gometrics.GaugeFloat64:
		return map[string]interface{}{"value": metric.Snapshot().Value()}
	case gometrics.Meter:
		ms := metric.Snapshot()
		return map[string]interface{}{
			"count": ms.Count(),
			"m1":    ms.Rate1(),
			"m5":    ms.Rate5(),
			"m15":   ms.Rate15(),
			"mean":  ms.RateMean(),
		}
	case gometrics.Timer:
		ms := metric.Snapshot()
		ps := ms.Percentiles([]float64{0.5, 0.95, 0.99})
		return map[string]interface{}{
			"count": ms.Count(),
			"max":   ms.Max(),
			"mean":  ms.Mean(),
			"min":   ms.Min(),
			"p50":   ps[0],
			"p95":   ps[1],
			"p99":   ps[2],
			"m1":    ms.Rate1(),
		}
	case gometrics.Histogram:
		ms := metric.Snapshot()
		ps := ms.Percentiles([]float64{0.5, 0.95, 0.99})
		return map[string]interface{}{
			"count": ms.Count(),
			"max":   ms.Max(),
			"mean":  ms.Mean(),
			"min":   ms.Min(),
			"p50":   ps[0],
			"p95":   ps[1],
			"p99":   ps[2],
		}
	}
	return nil
}
