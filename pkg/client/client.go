// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package client implements the HTTP session against the NetFabric Cloud
// Manager API: request signing, token refresh, retries and error mapping.
// Resource services drive it through the service.Transport interface.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/netfabric/netfabric-sdk-go/pkg/api"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultRetryAttempts = 3
	retryBaseDelay       = 500 * time.Millisecond
)

// Config carries the connection and credential settings for a session.
type Config struct {
	// BaseURL is the API root, e.g. https://api.netfabric.io.
	BaseURL string
	// TokenURL is the OAuth2 token endpoint. Leave empty together with
	// Token for unauthenticated use.
	TokenURL     string
	ClientID     string
	ClientSecret string
	// Scope restricts the issued token, e.g. "tsg_id:1234".
	Scope string
	// Token is a static bearer token. When set, no OAuth2 flow runs.
	Token string

	Timeout       time.Duration
	RetryAttempts uint
	// Logger receives request/response debug lines. Nop when nil.
	Logger *zerolog.Logger
}

// Client is the HTTP session used by all resource services.
type Client struct {
	rest *resty.Client
	cfg  Config
	log  zerolog.Logger

	mu          sync.RWMutex
	accessToken string
	tokenExpiry time.Time
}

// New builds a session from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: BaseURL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{rest: rest, cfg: cfg, log: log}, nil
}

// Get performs a GET request and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, "GET", path, query, nil)
}

// Post performs a POST request with a JSON body and returns the raw
// response body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, "POST", path, nil, body)
}

// Put performs a PUT request with a JSON body and returns the raw response
// body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, "PUT", path, nil, body)
}

// Delete performs a DELETE request and returns the raw response body.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, "DELETE", path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var out []byte

	err := retry.Do(
		func() error {
			token, err := c.ensureToken(ctx)
			if err != nil {
				return err
			}

			req := c.rest.R().SetContext(ctx)
			if token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
			if body != nil {
				req.SetHeader("Content-Type", "application/json").SetBody(body)
			}
			if len(query) > 0 {
				req.SetQueryParamsFromValues(query)
			}

			resp, err := req.Execute(method, path)
			if err != nil {
				return fmt.Errorf("%s %s: %w", method, path, err)
			}

			c.log.Debug().
				Str("method", method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Msg("api request")

			if resp.StatusCode() >= 400 {
				return api.FromResponse(resp.StatusCode(), resp.Body())
			}

			out = resp.Body()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.RetryAttempts),
		retry.Delay(retryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// isRetryable reports whether a request should be attempted again. Only
// transport failures, throttling and server-side errors qualify.
func isRetryable(err error) bool {
	var coded interface{ Status() int }
	if errors.As(err, &coded) {
		status := coded.Status()
		return status == 429 || status >= 500
	}
	// No mapped status: transport-level failure.
	var authErr *api.AuthenticationError
	return !errors.As(err, &authErr)
}
