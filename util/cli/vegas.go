// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunVegas 加载各个模块, 组合成节点程序; Run 是命令行客户端的入口
package cli

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	dbm "github.com/33cn/vegas/common/db"
	clog "github.com/33cn/vegas/common/log"
	"github.com/33cn/vegas/executor"
	"github.com/33cn/vegas/metrics"
	tty "github.com/33cn/vegas/plugin/dapp/treasury/types"
	"github.com/33cn/vegas/pluginmgr"
	"github.com/33cn/vegas/rpc"
	"github.com/33cn/vegas/types"
	"github.com/33cn/vegas/util"
	log "github.com/inconshreveable/log15"
)

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of vegas, include logs and datas")
)

//RunVegas : run vegas node, name 为配置文件名 (不带 .toml)
func RunVegas(name string) {
	flag.Parse()
	if *configPath == "" {
		if name == "" {
			*configPath = "vegas.toml"
		} else {
			*configPath = name + ".toml"
		}
	}
	cfg, sub, err := types.InitCfg(*configPath)
	if err != nil {
		panic(err)
	}
	if *datadir != "" {
		util.ResetDatadir(cfg, *datadir)
	}
	clog.SetFileLog(cfg.Log)
	log.Info("loading config", "title", cfg.Title, "config", *configPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watching(ctx)
	metrics.StartMetrics(ctx, cfg.Metrics)

	log.Info("loading db", "driver", cfg.Store.Driver, "path", cfg.Store.DbPath)
	db, err := dbm.NewDB("vegas", cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	log.Info("loading execs module")
	pluginmgr.InitExec(sub)
	exec := executor.New(db)
	exec.SetTaxPolicy(tty.TaxPolicy{})
	if err := exec.Genesis(cfg.Genesis, time.Now().Unix()); err != nil {
		panic(err)
	}

	log.Info("loading rpc module")
	rpcapi := rpc.New(cfg.RPC, exec)
	if _, err := rpcapi.Listen(); err != nil {
		panic(err)
	}
	defer func() {
		log.Info("begin close rpc module")
		rpcapi.Close()
	}()

	go produceBlocks(ctx, exec, time.Duration(cfg.Consensus.BlockInterval)*time.Second)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info("receive signal, exit", "signal", s)
}

// produceBlocks 按固定间隔出块, 区块时间取本地时间
func produceBlocks(ctx context.Context, exec *executor.Executor, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			header, err := exec.NextBlock(now.Unix())
			if err != nil {
				log.Error("produceBlocks", "err", err)
				continue
			}
			log.Debug("new block", "height", header.Height, "blocktime", header.Blocktime)
		}
	}
}

func watching(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			log.Info("info:", "NumGoroutine:", runtime.NumGoroutine(), "Mem:", m.Sys/(1024*1024), "HeapAlloc:", m.HeapAlloc/(1024*1024))
		}
	}
}
