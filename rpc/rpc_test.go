// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/33cn/vegas/common/address"
	"github.com/33cn/vegas/rpc/jsonclient"
	rpctypes "github.com/33cn/vegas/rpc/types"
	cty "github.com/33cn/vegas/system/dapp/coins/types"
	"github.com/33cn/vegas/types"
	"github.com/33cn/vegas/util/testnode"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = address.FromSeed("alice")
	bob   = address.FromSeed("bob")
	carol = address.FromSeed("carol")
)

func newTestServer(t *testing.T, enableWS bool) (*testnode.VegasMock, *RPC, *httptest.Server) {
	mock := testnode.New(&types.GenesisAccount{Addr: alice, Denom: types.DefaultDenom, Amount: 1000})
	s := New(&types.RPC{EnableWS: enableWS}, mock.GetExec())
	server := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		server.Close()
		s.Close()
		mock.Close()
	})
	return mock, s, server
}

func transferPayload(t *testing.T, to string, amount uint64) json.RawMessage {
	action := &cty.CoinsAction{
		Ty:       cty.CoinsActionTransfer,
		Transfer: &cty.CoinsTransfer{To: to, Amount: types.NewCoin(types.DefaultDenom, amount)},
	}
	data, err := types.PBToJSON(action)
	require.NoError(t, err)
	return data
}

func TestJSONRPC(t *testing.T) {
	_, _, server := newTestServer(t, false)
	client, err := jsonclient.NewJSONClient(server.URL)
	require.NoError(t, err)

	var header rpctypes.Header
	require.NoError(t, client.Call("GetLastHeader", &types.ReqNil{}, &header))
	assert.Equal(t, int64(1), header.Height)
	assert.Equal(t, testnode.StartTime, header.Blocktime)

	var execs types.ReplyStrings
	require.NoError(t, client.Call("ListExecs", &types.ReqNil{}, &execs))
	assert.Contains(t, execs.Datas, "coins")
	assert.Contains(t, execs.Datas, "dice")
	assert.Contains(t, execs.Datas, "reserve")

	var res rpctypes.TxResult
	err = client.Call("SendTransaction", &rpctypes.SendTx{
		Execer:  cty.CoinsX,
		Payload: transferPayload(t, bob, 100),
		From:    alice,
		Nonce:   1,
	}, &res)
	require.NoError(t, err)
	assert.Equal(t, "", res.Error)
	assert.Equal(t, cty.CoinsX, res.Execer)
	assert.NotEmpty(t, res.Hash)

	var acc rpctypes.Account
	require.NoError(t, client.Call("GetBalance", &types.ReqBalance{Addr: bob}, &acc))
	assert.Equal(t, uint64(100), acc.Balance)
	assert.Equal(t, types.DefaultDenom, acc.Denom)

	var reply json.RawMessage
	err = client.Call("Query", &rpctypes.Query{
		Execer:   cty.CoinsX,
		FuncName: "GetBalance",
		Payload:  json.RawMessage(`{"addr":"` + alice + `","denom":"uusd"}`),
	}, &reply)
	require.NoError(t, err)
	assert.Contains(t, string(reply), "900")

	// 余额不足: 返回带错误的结果, 状态不变
	res = rpctypes.TxResult{}
	err = client.Call("SendTransaction", &rpctypes.SendTx{
		Execer:  cty.CoinsX,
		Payload: transferPayload(t, bob, 10000),
		From:    alice,
		Nonce:   2,
	}, &res)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Error)
	require.NoError(t, client.Call("GetBalance", &types.ReqBalance{Addr: bob}, &acc))
	assert.Equal(t, uint64(100), acc.Balance)

	err = client.Call("Query", &rpctypes.Query{Execer: "nosuchexec", FuncName: "x"}, &reply)
	assert.Error(t, err)
}

func TestREST(t *testing.T) {
	mock, _, server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/header")
	require.NoError(t, err)
	var header rpctypes.Header
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&header))
	resp.Body.Close()
	assert.Equal(t, mock.BlockTime(), header.Blocktime)

	body, err := json.Marshal(&rpctypes.SendTx{Execer: cty.CoinsX, Payload: transferPayload(t, carol, 7), From: alice})
	require.NoError(t, err)
	resp, err = http.Post(server.URL+"/tx", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/balance/"+carol+"?denom=uusd")
	require.NoError(t, err)
	var acc rpctypes.Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&acc))
	resp.Body.Close()
	assert.Equal(t, uint64(7), acc.Balance)

	resp, err = http.Post(server.URL+"/tx", "application/json", strings.NewReader(`{"execer":"nosuchexec","payload":{}}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// 游戏没有初始化
	resp, err = http.Get(server.URL + "/dice/round")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Post(server.URL+"/query", "application/json",
		strings.NewReader(`{"execer":"coins","funcName":"GetBalance","payload":{"addr":"`+carol+`","denom":"uusd"}}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestWebsocketFeed(t *testing.T) {
	mock, s, server := newTestServer(t, true)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg wsMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "HELLO", msg.Type)
	assert.Eventually(t, func() bool { return s.hub.count() == 1 }, time.Second, 10*time.Millisecond)

	_, err = mock.SendTx(cty.NewTransfer(alice, bob, types.NewCoin(types.DefaultDenom, 10)))
	require.NoError(t, err)

	var feed struct {
		Type   string            `json:"type"`
		Execer string            `json:"execer"`
		Data   rpctypes.TxResult `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&feed))
	assert.Equal(t, "TX", feed.Type)
	assert.Equal(t, cty.CoinsX, feed.Execer)
	assert.Equal(t, "", feed.Data.Error)
}

func TestCheckIPWhitelist(t *testing.T) {
	assert.False(t, checkIPWhitelist(nil, "10.0.0.1"))
	assert.True(t, checkIPWhitelist(nil, "127.0.0.1"))
	assert.True(t, checkIPWhitelist([]string{"*"}, "10.0.0.1"))
	assert.True(t, checkIPWhitelist([]string{"192.168.1.2"}, "127.0.0.1"))
	assert.True(t, checkIPWhitelist([]string{"192.168.1.2"}, "192.168.1.2"))
	assert.False(t, checkIPWhitelist([]string{"192.168.1.2"}, "192.168.1.3"))
	assert.True(t, checkIPWhitelist([]string{"0.0.0.0"}, "192.168.1.3"))
	assert.True(t, checkIPWhitelist([]string{"192.168.1.2"}, "::ffff:192.168.1.2"))
	assert.False(t, checkIPWhitelist([]string{"0.0.0.0"}, "not an ip"))
}

func TestWhitelistRemoteAddr(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()
	do := func(s *RPC, remote string, forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/header", nil)
		req.RemoteAddr = remote
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
			req.Header.Set("X-Real-IP", forwarded)
		}
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		return w.Code
	}

	// 空白名单只允许回环地址
	s := New(&types.RPC{}, mock.GetExec())
	assert.Equal(t, http.StatusForbidden, do(s, "203.0.113.9:1234", ""))
	assert.Equal(t, http.StatusOK, do(s, "127.0.0.1:1234", ""))
	// 代理头不能冒充回环地址
	assert.Equal(t, http.StatusForbidden, do(s, "203.0.113.9:1234", "127.0.0.1"))

	s = New(&types.RPC{Whitelist: []string{"192.168.1.2"}}, mock.GetExec())
	assert.Equal(t, http.StatusOK, do(s, "192.168.1.2:1234", ""))
	assert.Equal(t, http.StatusForbidden, do(s, "203.0.113.9:1234", "192.168.1.2"))
}

func TestWebsocketHubClose(t *testing.T) {
	hub := newHub()
	go hub.run()
	engine := gin.New()
	engine.GET("/ws", hub.serveWS)
	server := httptest.NewServer(engine)
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg wsMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "HELLO", msg.Type)

	// 连接和关闭并发, hub 关闭 send 之后不能再有写入
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, _, err := websocket.DefaultDialer.Dial(url, nil)
			if err != nil {
				return
			}
			defer c.Close()
			c.SetReadDeadline(time.Now().Add(2 * time.Second))
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
	hub.close()
	hub.close()
	wg.Wait()

	// 已有连接被关闭
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
	}
	assert.Equal(t, 0, hub.count())
}

func TestRateLimit(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()
	s := New(&types.RPC{Whitelist: []string{"*"}, IPLimit: 0.001, IPBurst: 2}, mock.GetExec())
	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/header", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		return w.Code
	}
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1002"))
	// 每个 ip 单独计数
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000"))
}

func TestListenMaxConnections(t *testing.T) {
	mock := testnode.New()
	defer mock.Close()
	s := New(&types.RPC{JrpcBindAddr: "127.0.0.1:0", MaxConnections: 1}, mock.GetExec())
	port, err := s.Listen()
	require.NoError(t, err)
	defer s.Close()
	require.NotZero(t, port)

	for i := 0; i < 3; i++ {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/header", port))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}
