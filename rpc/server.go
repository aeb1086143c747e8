// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 节点的对外接口: POST / 上的 json rpc, rest 查询, websocket 交易推送
package rpc

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/33cn/vegas/executor"
	"github.com/33cn/vegas/pluginmgr"
	"github.com/33cn/vegas/types"
	"github.com/gin-gonic/gin"
	log "github.com/inconshreveable/log15"
	"github.com/kevinms/leakybucket-go"
	"github.com/rs/cors"
	"golang.org/x/net/netutil"
)

var rlog = log.New("module", "rpc")

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error)  { return c.in.Read(p) }
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close nop
func (c *HTTPConn) Close() error { return nil }

// RPC http 服务
type RPC struct {
	cfg    *types.RPC
	exec   *executor.Executor
	engine *gin.Engine
	jrpc   *rpc.Server
	hub    *wsHub
	server *http.Server
	l      net.Listener

	ipLimiter *leakybucket.Collector
}

// New 创建服务, 注册所有插件的路由
func New(cfg *types.RPC, exec *executor.Executor) *RPC {
	gin.SetMode(gin.ReleaseMode)
	s := &RPC{
		cfg:    cfg,
		exec:   exec,
		engine: gin.New(),
		jrpc:   rpc.NewServer(),
	}
	if err := s.jrpc.RegisterName("Vegas", &Vegas{exec: exec}); err != nil {
		panic(err)
	}
	// 不信任任何代理头, 白名单只按 tcp 对端地址判断
	if err := s.engine.SetTrustedProxies(nil); err != nil {
		rlog.Error("SetTrustedProxies", "err", err)
	}
	s.engine.Use(gin.Recovery(), s.checkWhitelist)
	if cfg.IPLimit > 0 && cfg.IPBurst > 0 {
		s.ipLimiter = leakybucket.NewCollector(cfg.IPLimit, cfg.IPBurst, true)
		s.engine.Use(s.checkRateLimit)
	}
	s.engine.POST("/", s.serveJSONRPC)
	s.engine.POST("/tx", s.postTx)
	s.engine.POST("/query", s.postQuery)
	s.engine.GET("/balance/:addr", s.getBalance)
	s.engine.GET("/header", s.getHeader)
	if cfg.EnableWS {
		s.hub = newHub()
		go s.hub.run()
		exec.Subscribe(s.hub.publish)
		s.engine.GET("/ws", s.hub.serveWS)
	}
	pluginmgr.AddRPC(s)
	return s
}

// Group 插件路由分组 /<name>
func (s *RPC) Group(name string) *gin.RouterGroup {
	return s.engine.Group("/" + name)
}

// Query 插件查询合约
func (s *RPC) Query(execer string, funcName string, param types.Message) (types.Message, error) {
	return s.exec.Query(execer, funcName, types.Encode(param))
}

// Handler 包含 cors 的 http handler
func (s *RPC) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.engine)
}

// Listen 开始监听, 返回实际端口
func (s *RPC) Listen() (int, error) {
	l, err := net.Listen("tcp", s.cfg.JrpcBindAddr)
	if err != nil {
		return 0, err
	}
	if s.cfg.MaxConnections > 0 {
		l = netutil.LimitListener(l, s.cfg.MaxConnections)
	}
	s.l = l
	s.server = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := s.server.Serve(l); err != nil && err != http.ErrServerClosed {
			rlog.Error("rpc serve", "err", err)
		}
	}()
	rlog.Info("rpc listen", "addr", l.Addr().String())
	return l.Addr().(*net.TCPAddr).Port, nil
}

// Close 关闭服务
func (s *RPC) Close() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			rlog.Error("rpc close", "err", err)
		}
	}
	if s.hub != nil {
		s.hub.close()
	}
}

func (s *RPC) serveJSONRPC(c *gin.Context) {
	codec := jsonrpc.NewServerCodec(&HTTPConn{in: c.Request.Body, out: c.Writer})
	c.Header("Content-type", "application/json")
	c.Status(http.StatusOK)
	if err := s.jrpc.ServeRequest(codec); err != nil {
		rlog.Error("Error while serving JSON request", "err", err)
	}
}

// checkWhitelist 回环地址总是允许, 白名单为空时只允许回环地址, 包含 0.0.0.0 或 * 时允许所有地址
func (s *RPC) checkWhitelist(c *gin.Context) {
	ip := c.RemoteIP()
	if !checkIPWhitelist(s.cfg.Whitelist, ip) {
		rlog.Warn("reject request", "ip", ip)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "reject"})
		return
	}
	c.Next()
}

// checkRateLimit 每个 ip 一个漏桶, 桶满时拒绝
func (s *RPC) checkRateLimit(c *gin.Context) {
	ip := c.RemoteIP()
	if s.ipLimiter.Remaining(ip) <= 0 {
		rlog.Debug("rate limited", "ip", ip)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}
	s.ipLimiter.Add(ip, 1)
	c.Next()
}

func checkIPWhitelist(whitelist []string, addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	for _, item := range whitelist {
		if item == "0.0.0.0" || item == "*" || item == addr {
			return true
		}
	}
	return false
}
