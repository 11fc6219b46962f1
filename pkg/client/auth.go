// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/netfabric/netfabric-sdk-go/pkg/api"
)

// expirySkew renews the token this long before it actually expires so
// in-flight requests never carry a token that dies mid-request.
const expirySkew = 30 * time.Second

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ensureToken returns a bearer token for the next request, refreshing the
// cached OAuth2 token when it is close to expiry. A statically configured
// token is returned as-is; with no credentials at all the session runs
// unauthenticated.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	if c.cfg.Token != "" {
		return c.cfg.Token, nil
	}
	if c.cfg.TokenURL == "" {
		return "", nil
	}

	c.mu.RLock()
	token, expiry := c.accessToken, c.tokenExpiry
	c.mu.RUnlock()
	if token != "" && time.Until(expiry) > expirySkew {
		return token, nil
	}

	return c.refreshToken(ctx)
}

func (c *Client) refreshToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have refreshed while we waited on the lock.
	if c.accessToken != "" && time.Until(c.tokenExpiry) > expirySkew {
		return c.accessToken, nil
	}

	form := map[string]string{"grant_type": "client_credentials"}
	if c.cfg.Scope != "" {
		form["scope"] = c.cfg.Scope
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetFormData(form).
		Post(c.cfg.TokenURL)
	if err != nil {
		return "", api.NewAuthenticationError(fmt.Sprintf("token request: %v", err))
	}
	if resp.StatusCode() >= 400 {
		return "", api.NewAuthenticationError(
			fmt.Sprintf("token request failed with status %d: %s", resp.StatusCode(), resp.Body()))
	}

	var tr tokenResponse
	if err := json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", api.NewAuthenticationError(fmt.Sprintf("decoding token response: %v", err))
	}
	if tr.AccessToken == "" {
		return "", api.NewAuthenticationError("token response contains no access_token")
	}

	c.accessToken = tr.AccessToken
	c.tokenExpiry = tokenExpiry(tr)

	c.log.Debug().Time("expiry", c.tokenExpiry).Msg("access token refreshed")
	return c.accessToken, nil
}

// tokenExpiry derives the token lifetime from the JWT exp claim when the
// token is a parseable JWT, falling back to the advertised expires_in.
func tokenExpiry(tr tokenResponse) time.Time {
	if token, _, err := jwt.NewParser().ParseUnverified(tr.AccessToken, jwt.MapClaims{}); err == nil {
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if tr.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	// Unknown lifetime: force a refresh on the next request.
	return time.Now()
}
