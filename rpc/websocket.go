// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"
	"sync"
	"time"

	rpctypes "github.com/33cn/vegas/rpc/types"
	"github.com/33cn/vegas/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	writeWait  = 10 * time.Second
	sendBuffer = 64
)

// wsMessage 客户端消息: {"type":"SUBSCRIBE","execer":"dice"}
type wsMessage struct {
	Type   string      `json:"type"`
	Execer string      `json:"execer,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

type wsClient struct {
	id     string
	conn   *websocket.Conn
	send   chan *wsMessage
	mu     sync.Mutex
	execer map[string]bool
}

// wants 没有订阅任何执行器时接收所有交易
func (c *wsClient) wants(execer string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.execer) == 0 || c.execer[execer]
}

func (c *wsClient) subscribe(execer string, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on {
		c.execer[execer] = true
	} else {
		delete(c.execer, execer)
	}
}

// wsHub 把执行结果推送给所有连接
type wsHub struct {
	mu         sync.Mutex
	clients    map[string]*wsClient
	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan *rpctypes.TxResult
	quit       chan struct{}
	once       sync.Once
}

func newHub() *wsHub {
	return &wsHub{
		clients:    make(map[string]*wsClient),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan *rpctypes.TxResult, 256),
		quit:       make(chan struct{}),
	}
}

// publish 在执行锁内被调用, 不能阻塞, 队列满时丢弃
func (h *wsHub) publish(res *types.TxResult) {
	select {
	case h.broadcast <- rpctypes.ConvertTxResult(res):
	default:
		rlog.Warn("ws broadcast queue full, drop", "execer", res.Execer)
	}
}

func (h *wsHub) run() {
	for {
		select {
		case <-h.quit:
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.id] = c
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c.id]; ok {
				delete(h.clients, c.id)
				close(c.send)
			}
			h.mu.Unlock()
		case res := <-h.broadcast:
			msg := &wsMessage{Type: "TX", Execer: res.Execer, Data: res}
			h.mu.Lock()
			for id, c := range h.clients {
				if !c.wants(res.Execer) {
					continue
				}
				select {
				case c.send <- msg:
				default:
					// 客户端太慢, 断开
					delete(h.clients, id)
					close(c.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *wsHub) close() {
	h.once.Do(func() { close(h.quit) })
}

func (h *wsHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *wsHub) serveWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rlog.Error("Failed to upgrade to WebSocket", "err", err)
		return
	}
	client := &wsClient{
		id:     uuid.New().String(),
		conn:   conn,
		send:   make(chan *wsMessage, sendBuffer),
		execer: make(map[string]bool),
	}
	// 注册之前 send 只属于当前连接, 注册之后 hub 可能随时关闭它
	client.send <- &wsMessage{Type: "HELLO", Data: client.id}
	select {
	case h.register <- client:
	case <-h.quit:
		conn.Close()
		return
	}
	go client.writeLoop()

	defer func() {
		select {
		case h.unregister <- client:
		case <-h.quit:
		}
	}()
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				rlog.Debug("WebSocket error", "id", client.id, "err", err)
			}
			return
		}
		switch msg.Type {
		case "SUBSCRIBE":
			client.subscribe(msg.Execer, true)
		case "UNSUBSCRIBE":
			client.subscribe(msg.Execer, false)
		}
	}
}

func (c *wsClient) writeLoop() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(msg); err != nil {
			rlog.Debug("ws write", "id", c.id, "err", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
