// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package netconf contains the typed API models for network configuration
// resources. Request models validate the full cross-field contract before
// anything is sent; response models only carry shape.
package netconf

import (
	"fmt"
	"regexp"
	"strings"
)

// common validation errors
const (
	validationErrorValueRequired   = "a value is required"
	validationErrorContainerName   = "must contain only letters, digits, hyphens, underscores, dots and spaces"
	validationErrorCommentLength   = "maximum 1023 characters are allowed in comment"
	validationErrorHostnamePattern = "must contain only letters, digits, dots, hyphens and underscores"
)

var (
	containerNamePattern = regexp.MustCompile(`^[a-zA-Z\d\-_. ]+$`)
	hostnamePattern      = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	ddnsHostnamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)
)

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

func exactlyOne(label string, zeroMsg string, set []string) error {
	switch {
	case len(set) == 0:
		return fmt.Errorf("%s", zeroMsg)
	case len(set) > 1:
		return fmt.Errorf("only one %s can be specified, found: %s", label, strings.Join(set, ", "))
	}
	return nil
}
