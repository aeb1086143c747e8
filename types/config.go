// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 节点配置
type Config struct {
	Title     string                 `toml:"Title"`
	Log       *Log                   `toml:"log"`
	Store     *Store                 `toml:"store"`
	RPC       *RPC                   `toml:"rpc"`
	Metrics   *Metrics               `toml:"metrics"`
	Consensus *Consensus             `toml:"consensus"`
	Genesis   *Genesis               `toml:"genesis"`
	Exec      map[string]interface{} `toml:"exec"`
}

//Log 日志配置
type Log struct {
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	LogFile         string `toml:"logFile"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
	CallerFile      bool   `toml:"callerFile"`
	CallerFunction  bool   `toml:"callerFunction"`
	LogFormat       string `toml:"logFormat"`
}

//Store 存储配置
type Store struct {
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

//RPC rpc 配置
type RPC struct {
	JrpcBindAddr string   `toml:"jrpcBindAddr"`
	Whitelist    []string `toml:"whitelist"`
	EnableWS     bool     `toml:"enableWS"`
	// 每个 ip 每秒允许的请求数和突发容量, 任意一个为 0 时不限速
	IPLimit float64 `toml:"ipLimit"`
	IPBurst int64   `toml:"ipBurst"`
	// 同时处理的最大连接数, 0 不限制
	MaxConnections int `toml:"maxConnections"`
}

//Metrics metrics 配置
type Metrics struct {
	EnableMetrics bool   `toml:"enableMetrics"`
	DataEmitMode  string `toml:"dataEmitMode"`
	Duration      int64  `toml:"duration"`
	URL           string `toml:"url"`
	DatabaseName  string `toml:"databaseName"`
	Username      string `toml:"username"`
	Password      string `toml:"password"`
	Namespace     string `toml:"namespace"`
}

//Consensus 出块配置
type Consensus struct {
	BlockInterval int64 `toml:"blockInterval"`
}

//Genesis 创世账户
type Genesis struct {
	Owner    string            `toml:"owner"`
	Accounts []*GenesisAccount `toml:"accounts"`
}

//GenesisAccount 创世分配
type GenesisAccount struct {
	Addr   string `toml:"addr"`
	Denom  string `toml:"denom"`
	Amount uint64 `toml:"amount"`
}

//InitCfg 读取配置文件
func InitCfg(path string) (*Config, map[string][]byte, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, nil, errors.Wrapf(err, "InitCfg %s", path)
	}
	return initCfg(&cfg)
}

//InitCfgString 从字符串读取配置
func InitCfgString(s string) (*Config, map[string][]byte, error) {
	var cfg Config
	if _, err := toml.Decode(s, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "InitCfgString")
	}
	return initCfg(&cfg)
}

func initCfg(cfg *Config) (*Config, map[string][]byte, error) {
	fillDefault(cfg)
	sub, err := parseSubConfig(cfg.Exec)
	if err != nil {
		return nil, nil, err
	}
	return cfg, sub, nil
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "vegas"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Consensus == nil {
		cfg.Consensus = &Consensus{}
	}
	if cfg.Consensus.BlockInterval <= 0 {
		cfg.Consensus.BlockInterval = 5
	}
	if cfg.Genesis == nil {
		cfg.Genesis = &Genesis{}
	}
}

// [exec.sub.<name>] 每个执行器的子配置, 以 json 形式传给插件
func parseSubConfig(exec map[string]interface{}) (map[string][]byte, error) {
	subcfg := make(map[string][]byte)
	sub, ok := exec["sub"].(map[string]interface{})
	if !ok {
		return subcfg, nil
	}
	for name, v := range sub {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "sub config %s", name)
		}
		subcfg[name] = data
	}
	return subcfg, nil
}
