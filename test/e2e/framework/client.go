// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package framework provides a small caseflow API client for end to end
// tests running against a live server.
package framework

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Envelope mirrors the API response wrapper.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

// listPayload mirrors the API list payload.
type listPayload struct {
	Items      json.RawMessage `json:"items"`
	TotalCount int             `json:"total_count"`
}

// Client talks to a running caseflow-api instance.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates an anonymous client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// WithToken returns a copy of the client that sends the bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Do sends a JSON request and decodes the response envelope. body may be nil.
func (c *Client) Do(method, path string, body any) (int, Envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, Envelope{}, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return 0, Envelope{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// PostForm sends form-encoded fields, used by the token endpoint.
func (c *Client) PostForm(path string, form url.Values) (int, Envelope, error) {
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, Envelope{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req)
}

// Raw sends a request and returns the body undecoded, for endpoints that do
// not speak the envelope.
func (c *Client) Raw(method, path string) (int, string, error) {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return 0, "", err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(raw), nil
}

func (c *Client) send(req *http.Request) (int, Envelope, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, Envelope{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, Envelope{}, err
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return resp.StatusCode, Envelope{}, fmt.Errorf("undecodable response %q: %w", raw, err)
	}
	return resp.StatusCode, env, nil
}

// DataAs decodes the envelope payload into out.
func DataAs(env Envelope, out any) error {
	return json.Unmarshal(env.Data, out)
}

// ItemsAs decodes a list payload's items into out.
func ItemsAs(env Envelope, out any) error {
	var list listPayload
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return err
	}
	return json.Unmarshal(list.Items, out)
}
