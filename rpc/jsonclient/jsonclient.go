// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient 实现 json rpc 客户端请求功能
package jsonclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// JSONClient a object of jsonclient
type JSONClient struct {
	url    string
	prefix string
	client *http.Client
}

// NewJSONClient produce a json object
func NewJSONClient(url string) (*JSONClient, error) {
	return NewJSONClientWithPrefix("Vegas", url)
}

// NewJSONClientWithPrefix 方法名前缀, 例如 Vegas.Query
func NewJSONClientWithPrefix(prefix, url string) (*JSONClient, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return &JSONClient{url: url, prefix: prefix, client: &http.Client{Timeout: 30 * time.Second}}, nil
}

type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	ID     string         `json:"id"`
}

type clientResponse struct {
	ID     string           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  interface{}      `json:"error"`
}

// Call jrpc call, method 不带前缀时自动加上
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	if !strings.Contains(method, ".") {
		method = client.prefix + "." + method
	}
	req := &clientRequest{Method: method, ID: uuid.New().String()}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer postresp.Body.Close()
	b, err := io.ReadAll(postresp.Body)
	if err != nil {
		return err
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(b, cresp); err != nil {
		return errors.Wrapf(err, "decode response %s", string(b))
	}
	if cresp.Error != nil {
		switch e := cresp.Error.(type) {
		case string:
			return errors.New(e)
		default:
			x, _ := json.Marshal(e)
			return errors.New(string(x))
		}
	}
	if cresp.Result == nil {
		return errors.New("empty result")
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal(*cresp.Result, resp)
}
