// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package netconf

import (
	"context"
	"fmt"

	"github.com/netfabric/netfabric-sdk-go/pkg/api"
	model "github.com/netfabric/netfabric-sdk-go/pkg/api/model/netconf"
)

// EthernetInterfaceEndpoint is the collection path for Ethernet interfaces.
const EthernetInterfaceEndpoint = "/config/network/v1/ethernet-interfaces"

// EthernetInterfaceService manages Ethernet interface configuration
// objects.
type EthernetInterfaceService struct {
	tr       Transport
	maxLimit int
}

// NewEthernetInterfaceService builds an Ethernet interface service on top
// of the given transport.
func NewEthernetInterfaceService(tr Transport, opts ...Option) (*EthernetInterfaceService, error) {
	settings, err := resolveSettings(opts)
	if err != nil {
		return nil, err
	}
	return &EthernetInterfaceService{tr: tr, maxLimit: settings.maxLimit}, nil
}

// MaxLimit returns the page size used by List.
func (s *EthernetInterfaceService) MaxLimit() int { return s.maxLimit }

// Create validates and creates a new Ethernet interface.
func (s *EthernetInterfaceService) Create(ctx context.Context, in *model.EthernetInterfaceCreate) (*model.EthernetInterface, error) {
	if err := in.Validate(); err != nil {
		return nil, api.NewInvalidObjectError(err.Error(), nil)
	}

	raw, err := s.tr.Post(ctx, EthernetInterfaceEndpoint, in)
	if err != nil {
		return nil, err
	}
	return decodeSingle[model.EthernetInterface](raw)
}

// GetByID returns the Ethernet interface with the given ID.
func (s *EthernetInterfaceService) GetByID(ctx context.Context, id string) (*model.EthernetInterface, error) {
	if id == "" {
		return nil, api.NewMissingQueryParameterError("id")
	}

	raw, err := s.tr.Get(ctx, fmt.Sprintf("%s/%s", EthernetInterfaceEndpoint, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeSingle[model.EthernetInterface](raw)
}

// Update validates and updates an existing Ethernet interface. The object
// ID addresses the resource in the path and is not part of the payload.
func (s *EthernetInterfaceService) Update(ctx context.Context, in *model.EthernetInterfaceUpdate) (*model.EthernetInterface, error) {
	if err := in.Validate(); err != nil {
		return nil, api.NewInvalidObjectError(err.Error(), nil)
	}

	raw, err := s.tr.Put(ctx, fmt.Sprintf("%s/%s", EthernetInterfaceEndpoint, in.ID), in)
	if err != nil {
		return nil, err
	}
	return decodeSingle[model.EthernetInterface](raw)
}

// Delete removes the Ethernet interface with the given ID.
func (s *EthernetInterfaceService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return api.NewMissingQueryParameterError("id")
	}

	_, err := s.tr.Delete(ctx, fmt.Sprintf("%s/%s", EthernetInterfaceEndpoint, id))
	return err
}

// List returns all Ethernet interfaces in the requested container,
// walking every result page and applying the client-side filters.
func (s *EthernetInterfaceService) List(ctx context.Context, opts ListOptions) ([]model.EthernetInterface, error) {
	field, value, err := opts.container()
	if err != nil {
		return nil, err
	}

	items, err := listPaginated[model.EthernetInterface](
		ctx, s.tr, EthernetInterfaceEndpoint, opts.baseQuery(field, value), s.maxLimit)
	if err != nil {
		return nil, err
	}
	return applyPostFilters(items, field, value, opts), nil
}

// Fetch looks up a single Ethernet interface by name within the requested
// container.
func (s *EthernetInterfaceService) Fetch(ctx context.Context, name string, opts ListOptions) (*model.EthernetInterface, error) {
	if name == "" {
		return nil, api.NewMissingQueryParameterError("name")
	}
	field, value, err := opts.container()
	if err != nil {
		return nil, err
	}

	q := opts.baseQuery(field, value)
	q.Set("name", name)

	raw, err := s.tr.Get(ctx, EthernetInterfaceEndpoint, q)
	if err != nil {
		return nil, err
	}
	return decodeFetchResponse[model.EthernetInterface](raw, name)
}
