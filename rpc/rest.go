// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"

	rpctypes "github.com/33cn/vegas/rpc/types"
	"github.com/33cn/vegas/types"
	"github.com/gin-gonic/gin"
)

func (s *RPC) postTx(c *gin.Context) {
	var in rpctypes.SendTx
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := sendTx(s.exec, &in)
	if res == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *RPC) postQuery(c *gin.Context) {
	var in rpctypes.Query
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply, err := query(s.exec, &in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", reply)
}

func (s *RPC) getBalance(c *gin.Context) {
	addr := c.Param("addr")
	denom := c.DefaultQuery("denom", types.DefaultDenom)
	balance, err := s.exec.GetBalance(addr, denom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, &rpctypes.Account{Addr: addr, Denom: denom, Balance: balance})
}

func (s *RPC) getHeader(c *gin.Context) {
	h := s.exec.Header()
	c.JSON(http.StatusOK, &rpctypes.Header{Height: h.Height, Blocktime: h.Blocktime})
}
