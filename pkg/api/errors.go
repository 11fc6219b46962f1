// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package api defines the error contract shared by the transport client and
// the resource services.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorDetail is a single entry in the API error envelope.
type ErrorDetail struct {
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the error envelope returned by the management API.
type ErrorResponse struct {
	Errors    []ErrorDetail `json:"_errors,omitempty"`
	RequestID string        `json:"_request_id,omitempty"`
}

// Error is the base type for all SDK errors. Concrete error types embed it
// so callers can match with errors.As on either the concrete type or *Error.
type Error struct {
	Message        string
	ErrorCode      string
	HTTPStatusCode int
	Details        map[string]any
}

func (e *Error) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s (code: %s, status: %d)", e.Message, e.ErrorCode, e.HTTPStatusCode)
	}
	return fmt.Sprintf("%s (status: %d)", e.Message, e.HTTPStatusCode)
}

// Status returns the HTTP status associated with the error.
func (e *Error) Status() int { return e.HTTPStatusCode }

// apiError aliases Error so concrete types can embed it under a field name
// that does not shadow the promoted Error method.
type apiError = Error

// InvalidObjectError reports a request or response object that does not
// satisfy the API shape contract.
type InvalidObjectError struct{ apiError }

// MissingQueryParameterError reports a query parameter that was provided
// empty where a value is required.
type MissingQueryParameterError struct{ apiError }

// ObjectNotPresentError reports a fetch-by-name lookup that matched nothing.
type ObjectNotPresentError struct{ apiError }

// AuthenticationError reports a failed token acquisition or a rejected
// credential.
type AuthenticationError struct{ apiError }

// ServerError reports a 5xx response from the API.
type ServerError struct{ apiError }

// NewInvalidObjectError builds an InvalidObjectError with HTTP status 400.
func NewInvalidObjectError(message string, details map[string]any) *InvalidObjectError {
	return &InvalidObjectError{Error{
		Message:        message,
		ErrorCode:      "E003",
		HTTPStatusCode: http.StatusBadRequest,
		Details:        details,
	}}
}

// NewMissingQueryParameterError builds a MissingQueryParameterError naming
// the offending parameter.
func NewMissingQueryParameterError(param string) *MissingQueryParameterError {
	return &MissingQueryParameterError{Error{
		Message:        fmt.Sprintf("%q is not allowed to be empty", param),
		ErrorCode:      "E003",
		HTTPStatusCode: http.StatusBadRequest,
		Details:        map[string]any{"field": param},
	}}
}

// NewObjectNotPresentError builds an ObjectNotPresentError with HTTP
// status 404.
func NewObjectNotPresentError(message string) *ObjectNotPresentError {
	return &ObjectNotPresentError{Error{
		Message:        message,
		ErrorCode:      "API_I00013",
		HTTPStatusCode: http.StatusNotFound,
	}}
}

// NewAuthenticationError builds an AuthenticationError with HTTP status 401.
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Error{
		Message:        message,
		HTTPStatusCode: http.StatusUnauthorized,
	}}
}

// FromResponse maps a non-2xx HTTP response to a typed SDK error. The body
// is decoded as the API error envelope when possible; a bare message or
// error field is accepted as a fallback.
func FromResponse(statusCode int, body []byte) error {
	msg := extractMessage(body)
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	base := Error{
		Message:        msg,
		HTTPStatusCode: statusCode,
	}

	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		base.ErrorCode = envelope.Errors[0].Code
		base.Details = envelope.Errors[0].Details
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthenticationError{base}
	case statusCode == http.StatusNotFound:
		return &ObjectNotPresentError{base}
	case statusCode >= http.StatusInternalServerError:
		return &ServerError{base}
	default:
		return &InvalidObjectError{base}
	}
}

func extractMessage(body []byte) string {
	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		return envelope.Errors[0].Message
	}

	var flat struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &flat); err == nil {
		if flat.Message != "" {
			return flat.Message
		}
		if flat.Error != "" {
			return flat.Error
		}
	}
	return ""
}
