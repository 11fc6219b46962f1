// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package netconf

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ========== Link settings ==========

// LinkSpeed is the negotiated or forced link speed of an Ethernet interface.
type LinkSpeed string

// Link speed settings accepted by the API.
const (
	LinkSpeedAuto          LinkSpeed = "auto"
	LinkSpeedTen           LinkSpeed = "10"
	LinkSpeedHundred       LinkSpeed = "100"
	LinkSpeedThousand      LinkSpeed = "1000"
	LinkSpeedTenThousand   LinkSpeed = "10000"
	LinkSpeedFortyThousand LinkSpeed = "40000"
	LinkSpeedHundredThou   LinkSpeed = "100000"
)

// ValidLinkSpeeds defines the valid link speed settings.
var ValidLinkSpeeds = []LinkSpeed{
	LinkSpeedAuto, LinkSpeedTen, LinkSpeedHundred, LinkSpeedThousand,
	LinkSpeedTenThousand, LinkSpeedFortyThousand, LinkSpeedHundredThou,
}

var validLinkSpeedsAny = func() []interface{} {
	result := make([]interface{}, len(ValidLinkSpeeds))
	for i, s := range ValidLinkSpeeds {
		result[i] = s
	}
	return result
}()

// LinkDuplex is the duplex setting of an Ethernet interface.
type LinkDuplex string

// Link duplex settings accepted by the API.
const (
	LinkDuplexAuto LinkDuplex = "auto"
	LinkDuplexHalf LinkDuplex = "half"
	LinkDuplexFull LinkDuplex = "full"
)

// ValidLinkDuplexes defines the valid link duplex settings.
var ValidLinkDuplexes = []LinkDuplex{LinkDuplexAuto, LinkDuplexHalf, LinkDuplexFull}

var validLinkDuplexesAny = func() []interface{} {
	result := make([]interface{}, len(ValidLinkDuplexes))
	for i, d := range ValidLinkDuplexes {
		result[i] = d
	}
	return result
}()

// LinkState is the administrative link state of an Ethernet interface.
type LinkState string

// Link state settings accepted by the API.
const (
	LinkStateAuto LinkState = "auto"
	LinkStateUp   LinkState = "up"
	LinkStateDown LinkState = "down"
)

// ValidLinkStates defines the valid link state settings.
var ValidLinkStates = []LinkState{LinkStateAuto, LinkStateUp, LinkStateDown}

var validLinkStatesAny = func() []interface{} {
	result := make([]interface{}, len(ValidLinkStates))
	for i, s := range ValidLinkStates {
		result[i] = s
	}
	return result
}()

// ========== PoE ==========

// PoE is the Power over Ethernet configuration of an interface.
type PoE struct {
	// PoEEnabled enables PoE on the interface.
	PoEEnabled *bool `json:"poe-enabled,omitempty"`
	// PoEReservedPower is the reserved power in watts (0-90).
	PoEReservedPower *int `json:"poe-rsvd-pwr,omitempty"`
}

// Validate checks the PoE configuration.
func (p *PoE) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.PoEReservedPower, validation.Min(0), validation.Max(90)),
	)
}

// ========== DHCP client ==========

// SendHostname controls whether the DHCP client sends a hostname.
type SendHostname struct {
	Enable *bool `json:"enable,omitempty"`
	// Hostname to send to the DHCP server. Defaults to the system hostname
	// when unset.
	Hostname *string `json:"hostname,omitempty"`
}

// Validate checks the send-hostname configuration.
func (s *SendHostname) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Hostname,
			validation.Length(1, 64),
			validation.Match(hostnamePattern).Error(validationErrorHostnamePattern)),
	)
}

// DHCPClient is the DHCP client configuration of a layer3 interface.
type DHCPClient struct {
	Enable             *bool         `json:"enable,omitempty"`
	CreateDefaultRoute *bool         `json:"create-default-route,omitempty"`
	SendHostname       *SendHostname `json:"send-hostname,omitempty"`
	// DefaultRouteMetric is the metric of the route created from the DHCP
	// gateway (1-65535).
	DefaultRouteMetric *int `json:"default-route-metric,omitempty"`
}

// Validate checks the DHCP client configuration.
func (d *DHCPClient) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.SendHostname),
		validation.Field(&d.DefaultRouteMetric, validation.Min(1), validation.Max(65535)),
	)
}

// ========== PPPoE ==========

// PPPoEAuthentication is the PPPoE authentication protocol.
type PPPoEAuthentication string

// PPPoE authentication protocols accepted by the API.
const (
	PPPoEAuthenticationCHAP PPPoEAuthentication = "CHAP"
	PPPoEAuthenticationPAP  PPPoEAuthentication = "PAP"
	PPPoEAuthenticationAuto PPPoEAuthentication = "auto"
)

// ValidPPPoEAuthentications defines the valid PPPoE authentication protocols.
var ValidPPPoEAuthentications = []PPPoEAuthentication{
	PPPoEAuthenticationCHAP, PPPoEAuthenticationPAP, PPPoEAuthenticationAuto,
}

var validPPPoEAuthenticationsAny = func() []interface{} {
	result := make([]interface{}, len(ValidPPPoEAuthentications))
	for i, a := range ValidPPPoEAuthentications {
		result[i] = a
	}
	return result
}()

// StaticAddress is the static IP assignment inside a PPPoE configuration.
type StaticAddress struct {
	IP string `json:"ip"`
}

// Validate checks the static address.
func (s *StaticAddress) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.IP,
			validation.Required.Error(validationErrorValueRequired),
			validation.Length(0, 63)),
	)
}

// PPPoE is the PPPoE configuration of a layer3 interface.
type PPPoE struct {
	Enable         *bool                `json:"enable,omitempty"`
	Username       string               `json:"username"`
	Password       string               `json:"password"`
	Authentication *PPPoEAuthentication `json:"authentication,omitempty"`
	StaticAddress  *StaticAddress       `json:"static-address,omitempty"`
	// DefaultRouteMetric is the metric of the PPPoE default route (1-65535).
	DefaultRouteMetric *int    `json:"default-route-metric,omitempty"`
	AccessConcentrator *string `json:"access-concentrator,omitempty"`
	Service            *string `json:"service,omitempty"`
	Passive            *bool   `json:"passive,omitempty"`
}

// Validate checks the PPPoE configuration. Username and password are always
// required when PPPoE is configured.
func (p *PPPoE) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Username,
			validation.Required.Error(validationErrorValueRequired),
			validation.Length(1, 255)),
		validation.Field(&p.Password,
			validation.Required.Error(validationErrorValueRequired),
			validation.Length(0, 255)),
		validation.Field(&p.Authentication, validation.In(validPPPoEAuthenticationsAny...).Error(
			fmt.Sprintf("must be one of %v", ValidPPPoEAuthentications))),
		validation.Field(&p.StaticAddress),
		validation.Field(&p.DefaultRouteMetric, validation.Min(1), validation.Max(65535)),
		validation.Field(&p.AccessConcentrator, validation.Length(1, 255)),
		validation.Field(&p.Service, validation.Length(1, 255)),
	)
}

// ========== ARP and DDNS ==========

// ARPEntry is a static ARP table entry.
type ARPEntry struct {
	// Name is the IP address of the entry.
	Name *string `json:"name,omitempty"`
	// HWAddress is the MAC address of the entry.
	HWAddress *string `json:"hw-address,omitempty"`
}

// DDNSConfig is the dynamic DNS configuration of a layer3 interface.
type DDNSConfig struct {
	DDNSEnabled *bool   `json:"ddns-enabled,omitempty"`
	DDNSVendor  *string `json:"ddns-vendor,omitempty"`
	// DDNSUpdateInterval is the registration refresh interval in days (1-30).
	DDNSUpdateInterval *int    `json:"ddns-update-interval,omitempty"`
	DDNSCertProfile    *string `json:"ddns-cert-profile,omitempty"`
	DDNSHostname       *string `json:"ddns-hostname,omitempty"`
	// DDNSIP is the address to register. Static addressing only.
	DDNSIP           *string `json:"ddns-ip,omitempty"`
	DDNSVendorConfig *string `json:"ddns-vendor-config,omitempty"`
}

// Validate checks the DDNS configuration. When DDNS is enabled the vendor,
// certificate profile, hostname and vendor configuration become required.
func (d *DDNSConfig) Validate() error {
	if d.DDNSEnabled != nil && *d.DDNSEnabled {
		required := []struct {
			field string
			value *string
		}{
			{"ddns-vendor", d.DDNSVendor},
			{"ddns-cert-profile", d.DDNSCertProfile},
			{"ddns-hostname", d.DDNSHostname},
			{"ddns-vendor-config", d.DDNSVendorConfig},
		}
		var missing []string
		for _, r := range required {
			if r.value == nil || *r.value == "" {
				missing = append(missing, r.field)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("when DDNS is enabled, the following fields are required: %s",
				strings.Join(missing, ", "))
		}
	}

	return validation.ValidateStruct(d,
		validation.Field(&d.DDNSVendor, validation.Length(0, 127)),
		validation.Field(&d.DDNSUpdateInterval, validation.Min(1), validation.Max(30)),
		validation.Field(&d.DDNSHostname,
			validation.Length(0, 255),
			validation.Match(ddnsHostnamePattern).Error(validationErrorHostnamePattern)),
		validation.Field(&d.DDNSVendorConfig, validation.Length(0, 255)),
	)
}

// ========== Interface modes ==========

// Tap marks an interface as a traffic mirror target. It carries no
// configuration of its own.
type Tap struct{}

// Layer2 is the switching configuration of an interface.
type Layer2 struct {
	// VLANTag is the VLAN assignment (1-9999).
	VLANTag *int `json:"vlan-tag,omitempty"`
}

// Validate checks the layer2 configuration.
func (l *Layer2) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.VLANTag, validation.Min(1), validation.Max(9999)),
	)
}

// Layer3 is the routed configuration of an interface. Exactly one IP
// assignment method must be set: static addresses, DHCP client, or PPPoE.
type Layer3 struct {
	// IP holds static IP addresses in CIDR notation.
	IP         []string    `json:"ip,omitempty"`
	DHCPClient *DHCPClient `json:"dhcp-client,omitempty"`
	PPPoE      *PPPoE      `json:"pppoe,omitempty"`

	InterfaceManagementProfile *string `json:"interface-management-profile,omitempty"`
	// MTU in bytes (576-9216).
	MTU        *int        `json:"mtu,omitempty"`
	ARP        []ARPEntry  `json:"arp,omitempty"`
	DDNSConfig *DDNSConfig `json:"ddns-config,omitempty"`
}

// Validate checks the layer3 configuration, including the IP method
// exclusivity rule.
func (l *Layer3) Validate() error {
	var methods []string
	if l.IP != nil {
		methods = append(methods, "ip (static)")
	}
	if l.DHCPClient != nil {
		methods = append(methods, "dhcp-client")
	}
	if l.PPPoE != nil {
		methods = append(methods, "pppoe")
	}
	if err := exactlyOne("IP configuration method",
		"layer3 requires exactly one IP configuration method: ip (static), dhcp-client, or pppoe",
		methods); err != nil {
		return err
	}

	return validation.ValidateStruct(l,
		validation.Field(&l.DHCPClient),
		validation.Field(&l.PPPoE),
		validation.Field(&l.InterfaceManagementProfile, validation.Length(0, 31)),
		validation.Field(&l.MTU, validation.Min(576), validation.Max(9216)),
		validation.Field(&l.DDNSConfig),
	)
}

// ========== Ethernet interface models ==========

// EthernetInterfaceSpec holds the fields shared by the create, update and
// response representations of an Ethernet interface.
type EthernetInterfaceSpec struct {
	Name         string  `json:"name"`
	DefaultValue *string `json:"default-value,omitempty"`
	Comment      *string `json:"comment,omitempty"`

	LinkSpeed  *LinkSpeed  `json:"link-speed,omitempty"`
	LinkDuplex *LinkDuplex `json:"link-duplex,omitempty"`
	LinkState  *LinkState  `json:"link-state,omitempty"`
	PoE        *PoE        `json:"poe,omitempty"`

	// Interface mode. Exactly one of Tap, Layer2 or Layer3 must be set.
	Tap    *Tap    `json:"tap,omitempty"`
	Layer2 *Layer2 `json:"layer2,omitempty"`
	Layer3 *Layer3 `json:"layer3,omitempty"`

	// Placement scope. At most one of Folder, Snippet or Device; create
	// requests require exactly one.
	Folder  *string `json:"folder,omitempty"`
	Snippet *string `json:"snippet,omitempty"`
	Device  *string `json:"device,omitempty"`
}

// Validate checks the field constraints and the interface mode exclusivity
// rule common to all Ethernet interface representations.
func (e *EthernetInterfaceSpec) Validate() error {
	var modes []string
	if e.Tap != nil {
		modes = append(modes, "tap")
	}
	if e.Layer2 != nil {
		modes = append(modes, "layer2")
	}
	if e.Layer3 != nil {
		modes = append(modes, "layer3")
	}
	if err := exactlyOne("interface mode",
		"exactly one interface mode must be specified: tap, layer2, or layer3",
		modes); err != nil {
		return err
	}

	return validation.ValidateStruct(e,
		validation.Field(&e.Name, validation.Required.Error(validationErrorValueRequired)),
		validation.Field(&e.Comment, validation.Length(0, 1023).Error(validationErrorCommentLength)),
		validation.Field(&e.LinkSpeed, validation.In(validLinkSpeedsAny...).Error(
			fmt.Sprintf("must be one of %v", ValidLinkSpeeds))),
		validation.Field(&e.LinkDuplex, validation.In(validLinkDuplexesAny...).Error(
			fmt.Sprintf("must be one of %v", ValidLinkDuplexes))),
		validation.Field(&e.LinkState, validation.In(validLinkStatesAny...).Error(
			fmt.Sprintf("must be one of %v", ValidLinkStates))),
		validation.Field(&e.PoE),
		validation.Field(&e.Layer2),
		validation.Field(&e.Layer3),
		validation.Field(&e.Folder, validation.Length(0, 64),
			validation.Match(containerNamePattern).Error(validationErrorContainerName)),
		validation.Field(&e.Snippet, validation.Length(0, 64),
			validation.Match(containerNamePattern).Error(validationErrorContainerName)),
		validation.Field(&e.Device, validation.Length(0, 64),
			validation.Match(containerNamePattern).Error(validationErrorContainerName)),
	)
}

// Containers returns the folder, snippet and device placement values,
// empty when unset.
func (e EthernetInterfaceSpec) Containers() (folder, snippet, device string) {
	if e.Folder != nil {
		folder = *e.Folder
	}
	if e.Snippet != nil {
		snippet = *e.Snippet
	}
	if e.Device != nil {
		device = *e.Device
	}
	return folder, snippet, device
}

func (e *EthernetInterfaceSpec) validateContainer() error {
	provided := 0
	for _, c := range []*string{e.Folder, e.Snippet, e.Device} {
		if c != nil {
			provided++
		}
	}
	if provided != 1 {
		return fmt.Errorf("exactly one of 'folder', 'snippet', or 'device' must be provided")
	}
	return nil
}

// EthernetInterfaceCreate is the request model for creating an Ethernet
// interface. Exactly one placement container must be provided.
type EthernetInterfaceCreate struct {
	EthernetInterfaceSpec
}

// Validate checks the create request, including the container rule.
func (e *EthernetInterfaceCreate) Validate() error {
	if err := e.EthernetInterfaceSpec.Validate(); err != nil {
		return err
	}
	return e.validateContainer()
}

// EthernetInterfaceUpdate is the request model for updating an Ethernet
// interface. The ID travels in the request path, not the body.
type EthernetInterfaceUpdate struct {
	ID uuid.UUID `json:"-"`
	EthernetInterfaceSpec
}

// Validate checks the update request.
func (e *EthernetInterfaceUpdate) Validate() error {
	if e.ID == uuid.Nil {
		return fmt.Errorf("id: %s", validationErrorValueRequired)
	}
	return e.EthernetInterfaceSpec.Validate()
}

// EthernetInterface is the response representation of an Ethernet interface.
// Responses are accepted as-is; the server owns their invariants.
type EthernetInterface struct {
	ID uuid.UUID `json:"id"`
	EthernetInterfaceSpec
}
