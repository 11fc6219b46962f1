// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package netconf implements the resource services for network
// configuration objects: validation, CRUD calls, list pagination and
// fetch-by-name lookup.
package netconf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/samber/lo"

	"github.com/netfabric/netfabric-sdk-go/pkg/api"
)

const (
	defaultMaxLimit  = 2500
	absoluteMaxLimit = 5000
)

// Transport is the HTTP session the services drive. *client.Client
// satisfies it.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Put(ctx context.Context, path string, body any) ([]byte, error)
	Delete(ctx context.Context, path string) ([]byte, error)
}

// Option adjusts service construction.
type Option func(*serviceSettings)

type serviceSettings struct {
	maxLimit int
}

// WithMaxLimit overrides the page size used when listing objects. Values
// must be between 1 and 5000.
func WithMaxLimit(limit int) Option {
	return func(s *serviceSettings) { s.maxLimit = limit }
}

func resolveSettings(opts []Option) (serviceSettings, error) {
	s := serviceSettings{}
	for _, opt := range opts {
		opt(&s)
	}
	switch {
	case s.maxLimit == 0:
		s.maxLimit = defaultMaxLimit
	case s.maxLimit < 1:
		return s, api.NewInvalidObjectError("Invalid max_limit value",
			map[string]any{"error": "max_limit must be at least 1"})
	case s.maxLimit > absoluteMaxLimit:
		return s, api.NewInvalidObjectError("max_limit exceeds maximum allowed value",
			map[string]any{"error": fmt.Sprintf("max_limit cannot exceed %d", absoluteMaxLimit)})
	}
	return s, nil
}

// ListOptions selects the placement scope to list and the client-side
// post-filters applied to the result. Exactly one container must be set;
// use netconf.String from the model package for the pointer fields.
type ListOptions struct {
	Folder  *string
	Snippet *string
	Device  *string

	// ExactMatch keeps only objects whose container value equals the
	// requested one, dropping objects inherited from parent scopes.
	ExactMatch      bool
	ExcludeFolders  []string
	ExcludeSnippets []string
	ExcludeDevices  []string

	// Filters holds extra server-side query parameters.
	Filters url.Values
}

// container resolves the single requested placement scope.
func (o ListOptions) container() (field, value string, err error) {
	type candidate struct {
		name  string
		value *string
	}
	var provided []candidate
	for _, c := range []candidate{
		{"folder", o.Folder},
		{"snippet", o.Snippet},
		{"device", o.Device},
	} {
		if c.value != nil {
			provided = append(provided, c)
		}
	}

	if len(provided) != 1 {
		return "", "", api.NewInvalidObjectError("Invalid container parameters",
			map[string]any{"error": "exactly one of 'folder', 'snippet', or 'device' must be provided"})
	}
	if *provided[0].value == "" {
		return "", "", api.NewMissingQueryParameterError(provided[0].name)
	}
	return provided[0].name, *provided[0].value, nil
}

func (o ListOptions) baseQuery(field, value string) url.Values {
	q := url.Values{}
	for k, vs := range o.Filters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set(field, value)
	return q
}

// containerScoped is implemented by response models that carry placement
// containers, enabling the shared post-filters.
type containerScoped interface {
	Containers() (folder, snippet, device string)
}

// applyPostFilters runs the client-side exact-match and exclusion filters
// over a listed page set.
func applyPostFilters[T containerScoped](items []T, field, value string, o ListOptions) []T {
	if o.ExactMatch {
		items = lo.Filter(items, func(it T, _ int) bool {
			folder, snippet, device := it.Containers()
			switch field {
			case "folder":
				return folder == value
			case "snippet":
				return snippet == value
			default:
				return device == value
			}
		})
	}
	if len(o.ExcludeFolders) > 0 {
		items = lo.Filter(items, func(it T, _ int) bool {
			folder, _, _ := it.Containers()
			return !lo.Contains(o.ExcludeFolders, folder)
		})
	}
	if len(o.ExcludeSnippets) > 0 {
		items = lo.Filter(items, func(it T, _ int) bool {
			_, snippet, _ := it.Containers()
			return !lo.Contains(o.ExcludeSnippets, snippet)
		})
	}
	if len(o.ExcludeDevices) > 0 {
		items = lo.Filter(items, func(it T, _ int) bool {
			_, _, device := it.Containers()
			return !lo.Contains(o.ExcludeDevices, device)
		})
	}
	return items
}

// decodeListPage validates the paginated envelope shape and decodes its
// data entries.
func decodeListPage[T any](raw []byte) ([]T, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, api.NewInvalidObjectError("Response is not a dictionary", nil)
	}
	obj, ok := probe.(map[string]any)
	if !ok {
		return nil, api.NewInvalidObjectError("Response is not a dictionary", nil)
	}
	dataVal, ok := obj["data"]
	if !ok {
		return nil, api.NewInvalidObjectError("Response missing 'data' field", nil)
	}
	if _, ok := dataVal.([]any); !ok {
		return nil, api.NewInvalidObjectError("'data' field is not a list", nil)
	}

	encoded, err := json.Marshal(dataVal)
	if err != nil {
		return nil, api.NewInvalidObjectError(fmt.Sprintf("re-encoding 'data' field: %v", err), nil)
	}
	var items []T
	if err := json.Unmarshal(encoded, &items); err != nil {
		return nil, api.NewInvalidObjectError(fmt.Sprintf("decoding 'data' entries: %v", err), nil)
	}
	return items, nil
}

// listPaginated walks the limit/offset pages until a short page signals
// the end of the collection.
func listPaginated[T any](ctx context.Context, tr Transport, endpoint string, params url.Values, limit int) ([]T, error) {
	var all []T
	offset := 0
	for {
		q := url.Values{}
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		q.Set("limit", strconv.Itoa(limit))
		q.Set("offset", strconv.Itoa(offset))

		raw, err := tr.Get(ctx, endpoint, q)
		if err != nil {
			return nil, err
		}
		page, err := decodeListPage[T](raw)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < limit {
			return all, nil
		}
		offset += limit
	}
}

// decodeSingle decodes a single-object response body.
func decodeSingle[T any](raw []byte) (*T, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, api.NewInvalidObjectError(fmt.Sprintf("decoding response object: %v", err), nil)
	}
	return &item, nil
}

// decodeFetchResponse handles the two response shapes of a fetch-by-name
// lookup: a data array with the matches, or the object itself.
func decodeFetchResponse[T any](raw []byte, name string) (*T, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, api.NewInvalidObjectError("Response is not a dictionary", nil)
	}
	obj, ok := probe.(map[string]any)
	if !ok {
		return nil, api.NewInvalidObjectError("Response is not a dictionary", nil)
	}

	if _, hasData := obj["data"]; hasData {
		items, err := decodeListPage[T](raw)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, api.NewObjectNotPresentError(fmt.Sprintf("object with name %q not found", name))
		}
		return &items[0], nil
	}

	if _, hasID := obj["id"]; hasID {
		return decodeSingle[T](raw)
	}

	return nil, api.NewInvalidObjectError(
		"Invalid response format: expected a 'data' list or an object with 'id'", nil)
}
