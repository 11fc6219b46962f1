// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package netconf

import (
	"context"
	"fmt"

	"github.com/netfabric/netfabric-sdk-go/pkg/api"
	model "github.com/netfabric/netfabric-sdk-go/pkg/api/model/netconf"
)

// NATRuleEndpoint is the collection path for NAT rules.
const NATRuleEndpoint = "/config/network/v1/nat-rules"

// NATRuleService manages NAT rule configuration objects.
type NATRuleService struct {
	tr       Transport
	maxLimit int
}

// NewNATRuleService builds a NAT rule service on top of the given
// transport.
func NewNATRuleService(tr Transport, opts ...Option) (*NATRuleService, error) {
	settings, err := resolveSettings(opts)
	if err != nil {
		return nil, err
	}
	return &NATRuleService{tr: tr, maxLimit: settings.maxLimit}, nil
}

// MaxLimit returns the page size used by List.
func (s *NATRuleService) MaxLimit() int { return s.maxLimit }

// Create validates and creates a new NAT rule.
func (s *NATRuleService) Create(ctx context.Context, in *model.NATRuleCreate) (*model.NATRule, error) {
	if err := in.Validate(); err != nil {
		return nil, api.NewInvalidObjectError(err.Error(), nil)
	}

	raw, err := s.tr.Post(ctx, NATRuleEndpoint, in)
	if err != nil {
		return nil, err
	}
	return decodeSingle[model.NATRule](raw)
}

// GetByID returns the NAT rule with the given ID.
func (s *NATRuleService) GetByID(ctx context.Context, id string) (*model.NATRule, error) {
	if id == "" {
		return nil, api.NewMissingQueryParameterError("id")
	}

	raw, err := s.tr.Get(ctx, fmt.Sprintf("%s/%s", NATRuleEndpoint, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeSingle[model.NATRule](raw)
}

// Update validates and updates an existing NAT rule. The object ID
// addresses the resource in the path and is not part of the payload.
func (s *NATRuleService) Update(ctx context.Context, in *model.NATRuleUpdate) (*model.NATRule, error) {
	if err := in.Validate(); err != nil {
		return nil, api.NewInvalidObjectError(err.Error(), nil)
	}

	raw, err := s.tr.Put(ctx, fmt.Sprintf("%s/%s", NATRuleEndpoint, in.ID), in)
	if err != nil {
		return nil, err
	}
	return decodeSingle[model.NATRule](raw)
}

// Delete removes the NAT rule with the given ID.
func (s *NATRuleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return api.NewMissingQueryParameterError("id")
	}

	_, err := s.tr.Delete(ctx, fmt.Sprintf("%s/%s", NATRuleEndpoint, id))
	return err
}

// List returns all NAT rules in the requested container, walking every
// result page and applying the client-side filters.
func (s *NATRuleService) List(ctx context.Context, opts ListOptions) ([]model.NATRule, error) {
	field, value, err := opts.container()
	if err != nil {
		return nil, err
	}

	items, err := listPaginated[model.NATRule](
		ctx, s.tr, NATRuleEndpoint, opts.baseQuery(field, value), s.maxLimit)
	if err != nil {
		return nil, err
	}
	return applyPostFilters(items, field, value, opts), nil
}

// Fetch looks up a single NAT rule by name within the requested container.
func (s *NATRuleService) Fetch(ctx context.Context, name string, opts ListOptions) (*model.NATRule, error) {
	if name == "" {
		return nil, api.NewMissingQueryParameterError("name")
	}
	field, value, err := opts.container()
	if err != nil {
		return nil, err
	}

	q := opts.baseQuery(field, value)
	q.Set("name", name)

	raw, err := s.tr.Get(ctx, NATRuleEndpoint, q)
	if err != nil {
		return nil, err
	}
	return decodeFetchResponse[model.NATRule](raw, name)
}

// Move repositions a NAT rule within its rulebase.
func (s *NATRuleService) Move(ctx context.Context, id string, in *model.NATRuleMove) error {
	if id == "" {
		return api.NewMissingQueryParameterError("id")
	}
	if err := in.Validate(); err != nil {
		return api.NewInvalidObjectError(err.Error(), nil)
	}

	_, err := s.tr.Post(ctx, fmt.Sprintf("%s/%s:move", NATRuleEndpoint, id), in)
	return err
}
