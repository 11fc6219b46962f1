// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package netconf

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ========== NAT enums ==========

// NATType is the address translation family of a NAT rule.
type NATType string

// NAT types accepted by the API.
const (
	NATTypeIPv4  NATType = "ipv4"
	NATTypeNAT64 NATType = "nat64"
	NATTypeNPTv6 NATType = "nptv6"
)

// ValidNATTypes defines the valid NAT types.
var ValidNATTypes = []NATType{NATTypeIPv4, NATTypeNAT64, NATTypeNPTv6}

var validNATTypesAny = func() []interface{} {
	result := make([]interface{}, len(ValidNATTypes))
	for i, t := range ValidNATTypes {
		result[i] = t
	}
	return result
}()

// MoveDestination positions a NAT rule within its rulebase.
type MoveDestination string

// Move destinations accepted by the API.
const (
	MoveDestinationTop    MoveDestination = "top"
	MoveDestinationBottom MoveDestination = "bottom"
	MoveDestinationBefore MoveDestination = "before"
	MoveDestinationAfter  MoveDestination = "after"
)

// ValidMoveDestinations defines the valid move destinations.
var ValidMoveDestinations = []MoveDestination{
	MoveDestinationTop, MoveDestinationBottom, MoveDestinationBefore, MoveDestinationAfter,
}

var validMoveDestinationsAny = func() []interface{} {
	result := make([]interface{}, len(ValidMoveDestinations))
	for i, d := range ValidMoveDestinations {
		result[i] = d
	}
	return result
}()

// ========== Source translation ==========

// DynamicIPAndPort translates the source to a pool of addresses with port
// rewriting.
type DynamicIPAndPort struct {
	TranslatedAddress []string `json:"translated-address,omitempty"`
}

// Validate checks the dynamic IP-and-port translation.
func (d *DynamicIPAndPort) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.TranslatedAddress,
			validation.Required.Error(validationErrorValueRequired)),
	)
}

// DynamicIP translates the source to a pool of addresses without port
// rewriting.
type DynamicIP struct {
	TranslatedAddress []string `json:"translated-address,omitempty"`
}

// Validate checks the dynamic IP translation.
func (d *DynamicIP) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.TranslatedAddress,
			validation.Required.Error(validationErrorValueRequired)),
	)
}

// StaticIP translates the source one-to-one to a fixed address.
type StaticIP struct {
	TranslatedAddress string `json:"translated-address"`
	BiDirectional     *bool  `json:"bi-directional,omitempty"`
}

// Validate checks the static IP translation.
func (s *StaticIP) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.TranslatedAddress,
			validation.Required.Error(validationErrorValueRequired)),
	)
}

// SourceTranslation selects exactly one source translation strategy.
type SourceTranslation struct {
	DynamicIPAndPort *DynamicIPAndPort `json:"dynamic-ip-and-port,omitempty"`
	DynamicIP        *DynamicIP        `json:"dynamic-ip,omitempty"`
	StaticIP         *StaticIP         `json:"static-ip,omitempty"`
}

// Validate checks the source translation, including the strategy
// exclusivity rule.
func (s *SourceTranslation) Validate() error {
	var strategies []string
	if s.DynamicIPAndPort != nil {
		strategies = append(strategies, "dynamic-ip-and-port")
	}
	if s.DynamicIP != nil {
		strategies = append(strategies, "dynamic-ip")
	}
	if s.StaticIP != nil {
		strategies = append(strategies, "static-ip")
	}
	if err := exactlyOne("source translation type",
		"source translation requires exactly one of: dynamic-ip-and-port, dynamic-ip, or static-ip",
		strategies); err != nil {
		return err
	}

	return validation.ValidateStruct(s,
		validation.Field(&s.DynamicIPAndPort),
		validation.Field(&s.DynamicIP),
		validation.Field(&s.StaticIP),
	)
}

// DestinationTranslation rewrites the destination address and optionally
// the destination port of matching traffic.
type DestinationTranslation struct {
	TranslatedAddress *string `json:"translated-address,omitempty"`
	// TranslatedPort rewrites the destination port (1-65535).
	TranslatedPort *int `json:"translated-port,omitempty"`
}

// Validate checks the destination translation.
func (d *DestinationTranslation) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.TranslatedPort, validation.Min(1), validation.Max(65535)),
	)
}

// ========== NAT rule models ==========

// NATRuleSpec holds the fields shared by the create, update and response
// representations of a NAT rule.
type NATRuleSpec struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tag,omitempty"`
	Disabled    *bool    `json:"disabled,omitempty"`
	NATType     *NATType `json:"nat-type,omitempty"`

	From        []string `json:"from,omitempty"`
	To          []string `json:"to,omitempty"`
	ToInterface *string  `json:"to-interface,omitempty"`
	Source      []string `json:"source,omitempty"`
	Destination []string `json:"destination,omitempty"`
	Service     *string  `json:"service,omitempty"`

	SourceTranslation      *SourceTranslation      `json:"source-translation,omitempty"`
	DestinationTranslation *DestinationTranslation `json:"destination-translation,omitempty"`

	Folder  *string `json:"folder,omitempty"`
	Snippet *string `json:"snippet,omitempty"`
	Device  *string `json:"device,omitempty"`
}

// Validate checks the field constraints common to all NAT rule
// representations. Tags must be unique ignoring case.
func (n *NATRuleSpec) Validate() error {
	if dupes := lo.FindDuplicatesBy(n.Tags, strings.ToLower); len(dupes) > 0 {
		return fmt.Errorf("tags must be unique, duplicated: %s", strings.Join(dupes, ", "))
	}

	return validation.ValidateStruct(n,
		validation.Field(&n.Name, validation.Required.Error(validationErrorValueRequired),
			validation.Length(0, 63)),
		validation.Field(&n.Description, validation.Length(0, 1023)),
		validation.Field(&n.NATType, validation.In(validNATTypesAny...).Error(
			fmt.Sprintf("must be one of %v", ValidNATTypes))),
		validation.Field(&n.SourceTranslation),
		validation.Field(&n.DestinationTranslation),
		validation.Field(&n.Folder, validation.Length(0, 64),
			validation.Match(containerNamePattern).Error(validationErrorContainerName)),
		validation.Field(&n.Snippet, validation.Length(0, 64),
			validation.Match(containerNamePattern).Error(validationErrorContainerName)),
		validation.Field(&n.Device, validation.Length(0, 64),
			validation.Match(containerNamePattern).Error(validationErrorContainerName)),
	)
}

// Containers returns the folder, snippet and device placement values,
// empty when unset.
func (n NATRuleSpec) Containers() (folder, snippet, device string) {
	if n.Folder != nil {
		folder = *n.Folder
	}
	if n.Snippet != nil {
		snippet = *n.Snippet
	}
	if n.Device != nil {
		device = *n.Device
	}
	return folder, snippet, device
}

func (n *NATRuleSpec) validateContainer() error {
	provided := 0
	for _, c := range []*string{n.Folder, n.Snippet, n.Device} {
		if c != nil {
			provided++
		}
	}
	if provided != 1 {
		return fmt.Errorf("exactly one of 'folder', 'snippet', or 'device' must be provided")
	}
	return nil
}

// NATRuleCreate is the request model for creating a NAT rule. Exactly one
// placement container must be provided.
type NATRuleCreate struct {
	NATRuleSpec
}

// Validate checks the create request, including the container rule.
func (n *NATRuleCreate) Validate() error {
	if err := n.NATRuleSpec.Validate(); err != nil {
		return err
	}
	return n.validateContainer()
}

// NATRuleUpdate is the request model for updating a NAT rule. The ID
// travels in the request path, not the body.
type NATRuleUpdate struct {
	ID uuid.UUID `json:"-"`
	NATRuleSpec
}

// Validate checks the update request.
func (n *NATRuleUpdate) Validate() error {
	if n.ID == uuid.Nil {
		return fmt.Errorf("id: %s", validationErrorValueRequired)
	}
	return n.NATRuleSpec.Validate()
}

// NATRule is the response representation of a NAT rule.
type NATRule struct {
	ID uuid.UUID `json:"id"`
	NATRuleSpec
}

// NATRuleMove positions a rule within the rulebase. Before and after moves
// must name the anchor rule.
type NATRuleMove struct {
	Destination MoveDestination `json:"destination"`
	Rulebase    string          `json:"rulebase"`
	// DestinationRule anchors before/after moves.
	DestinationRule *string `json:"destination_rule,omitempty"`
}

// Validate checks the move request, including the conditional anchor rule.
func (m *NATRuleMove) Validate() error {
	if err := validation.ValidateStruct(m,
		validation.Field(&m.Destination,
			validation.Required.Error(validationErrorValueRequired),
			validation.In(validMoveDestinationsAny...).Error(
				fmt.Sprintf("must be one of %v", ValidMoveDestinations))),
		validation.Field(&m.Rulebase,
			validation.Required.Error(validationErrorValueRequired)),
	); err != nil {
		return err
	}

	anchored := m.Destination == MoveDestinationBefore || m.Destination == MoveDestinationAfter
	if anchored && (m.DestinationRule == nil || *m.DestinationRule == "") {
		return fmt.Errorf("destination_rule is required when destination is %q", m.Destination)
	}
	if !anchored && m.DestinationRule != nil {
		return fmt.Errorf("destination_rule is only allowed when destination is 'before' or 'after'")
	}
	return nil
}
