// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package netconf

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfabric/netfabric-sdk-go/pkg/api"
	model "github.com/netfabric/netfabric-sdk-go/pkg/api/model/netconf"
)

// fakeTransport records requests and serves scripted responses.
type fakeTransport struct {
	getFn    func(path string, query url.Values) ([]byte, error)
	postFn   func(path string, body any) ([]byte, error)
	putFn    func(path string, body any) ([]byte, error)
	deleteFn func(path string) ([]byte, error)
}

func (f *fakeTransport) Get(_ context.Context, path string, query url.Values) ([]byte, error) {
	return f.getFn(path, query)
}

func (f *fakeTransport) Post(_ context.Context, path string, body any) ([]byte, error) {
	return f.postFn(path, body)
}

func (f *fakeTransport) Put(_ context.Context, path string, body any) ([]byte, error) {
	return f.putFn(path, body)
}

func (f *fakeTransport) Delete(_ context.Context, path string) ([]byte, error) {
	return f.deleteFn(path)
}

func TestResolveSettings(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		wantLimit int
		wantErr   string
	}{
		{
			name:      "default",
			wantLimit: 2500,
		},
		{
			name:      "explicit limit",
			opts:      []Option{WithMaxLimit(100)},
			wantLimit: 100,
		},
		{
			name:      "absolute maximum",
			opts:      []Option{WithMaxLimit(5000)},
			wantLimit: 5000,
		},
		{
			name:    "below minimum",
			opts:    []Option{WithMaxLimit(-1)},
			wantErr: "Invalid max_limit value",
		},
		{
			name:    "above maximum",
			opts:    []Option{WithMaxLimit(5001)},
			wantErr: "max_limit exceeds maximum allowed value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := resolveSettings(tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				var invalidErr *api.InvalidObjectError
				assert.ErrorAs(t, err, &invalidErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, settings.maxLimit)
		})
	}
}

func TestListOptions_Container(t *testing.T) {
	tests := []struct {
		name      string
		opts      ListOptions
		wantField string
		wantValue string
		wantErr   error
	}{
		{
			name:      "folder",
			opts:      ListOptions{Folder: model.String("Texas")},
			wantField: "folder",
			wantValue: "Texas",
		},
		{
			name:      "snippet",
			opts:      ListOptions{Snippet: model.String("shared")},
			wantField: "snippet",
			wantValue: "shared",
		},
		{
			name:      "device",
			opts:      ListOptions{Device: model.String("fw-01")},
			wantField: "device",
			wantValue: "fw-01",
		},
		{
			name:    "none provided",
			opts:    ListOptions{},
			wantErr: &api.InvalidObjectError{},
		},
		{
			name: "multiple provided",
			opts: ListOptions{
				Folder:  model.String("Texas"),
				Snippet: model.String("shared"),
			},
			wantErr: &api.InvalidObjectError{},
		},
		{
			name:    "empty value",
			opts:    ListOptions{Folder: model.String("")},
			wantErr: &api.MissingQueryParameterError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, value, err := tt.opts.container()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestListOptions_ContainerErrorMessages(t *testing.T) {
	_, _, err := ListOptions{}.container()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid container parameters")

	_, _, err = ListOptions{Folder: model.String("")}.container()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"folder" is not allowed to be empty`)
}

func TestDecodeListPage_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "not json",
			body:    `<html></html>`,
			wantErr: "Response is not a dictionary",
		},
		{
			name:    "not an object",
			body:    `[1, 2, 3]`,
			wantErr: "Response is not a dictionary",
		},
		{
			name:    "missing data field",
			body:    `{"limit": 200}`,
			wantErr: "Response missing 'data' field",
		},
		{
			name:    "data is not a list",
			body:    `{"data": "everything"}`,
			wantErr: "'data' field is not a list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeListPage[model.EthernetInterface]([]byte(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecodeFetchResponse(t *testing.T) {
	t.Run("data array with match", func(t *testing.T) {
		body := `{"data": [{"id": "123e4567-e89b-12d3-a456-426655440000", "name": "eth1", "folder": "Texas"}]}`
		iface, err := decodeFetchResponse[model.EthernetInterface]([]byte(body), "eth1")
		require.NoError(t, err)
		assert.Equal(t, "eth1", iface.Name)
	})

	t.Run("data array empty", func(t *testing.T) {
		body := `{"data": []}`
		_, err := decodeFetchResponse[model.EthernetInterface]([]byte(body), "eth1")
		require.Error(t, err)
		var notPresent *api.ObjectNotPresentError
		require.ErrorAs(t, err, &notPresent)
		assert.Contains(t, err.Error(), `object with name "eth1" not found`)
	})

	t.Run("direct object", func(t *testing.T) {
		body := `{"id": "123e4567-e89b-12d3-a456-426655440000", "name": "eth1", "folder": "Texas"}`
		iface, err := decodeFetchResponse[model.EthernetInterface]([]byte(body), "eth1")
		require.NoError(t, err)
		assert.Equal(t, "eth1", iface.Name)
	})

	t.Run("unrecognized shape", func(t *testing.T) {
		body := `{"name": "eth1"}`
		_, err := decodeFetchResponse[model.EthernetInterface]([]byte(body), "eth1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid response format")
	})
}
