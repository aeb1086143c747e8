// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 游戏的 rest 查询接口
package rpc

import (
	"net/http"

	cty "github.com/33cn/vegas/plugin/dapp/casino/types"
	"github.com/33cn/vegas/pluginmgr"
	"github.com/33cn/vegas/types"
	"github.com/gin-gonic/gin"
)

//Init 注册 /<game>/round, /<game>/bets/:player, /<game>/rewards/:player
func Init(name string, s pluginmgr.RPCServer) {
	g := s.Group(name)
	g.GET("/round", func(c *gin.Context) {
		reply(c, s, name, "CurrentRound", &types.ReqNil{})
	})
	g.GET("/coefficients", func(c *gin.Context) {
		reply(c, s, name, "WinCoefficients", &types.ReqNil{})
	})
	g.GET("/bets/:player", func(c *gin.Context) {
		reply(c, s, name, "PlayerBetsAllRounds", &cty.ReqPlayer{Player: c.Param("player")})
	})
	g.GET("/rewards/:player", func(c *gin.Context) {
		reply(c, s, name, "PlayerRewards", &cty.ReqPlayer{Player: c.Param("player")})
	})
}

func reply(c *gin.Context, s pluginmgr.RPCServer, name, funcName string, param types.Message) {
	res, err := s.Query(name, funcName, param)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
