// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// APIError represents a non-2xx response from the back-office API. The
// backend returns structured JSON error bodies with a message and, on
// 422 Unprocessable Entity, per-field validation errors.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the top-level error description from the server,
	// surfaced verbatim for business-rule rejections.
	Message string

	// Errors contains field-level validation failures, keyed by field
	// name. Present only on 422 responses.
	Errors map[string][]string
}

func (err *APIError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "api: HTTP %d: %s", err.StatusCode, err.Message)
	for _, field := range sortedFields(err.Errors) {
		for _, message := range err.Errors[field] {
			fmt.Fprintf(&builder, "; %s: %s", field, message)
		}
	}
	return builder.String()
}

// Flatten returns the user-facing error text: the server message
// followed by each field error. The client never re-validates — this
// is the server's wording, concatenated.
func (err *APIError) Flatten() string {
	parts := []string{err.Message}
	for _, field := range sortedFields(err.Errors) {
		for _, message := range err.Errors[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, message))
		}
	}
	return strings.Join(parts, "; ")
}

// IsNotFound reports whether err is an API 404 Not Found response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsValidation reports whether err is an API 422 response carrying
// field-level validation errors.
func IsValidation(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 422
}

// IsConflict reports whether err is an API 409 Conflict response.
func IsConflict(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 409
}

func sortedFields(fieldErrors map[string][]string) []string {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// parseAPIError parses a structured error from a status code and
// response body. A body that is not the conventional error shape is
// kept verbatim as the message.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		apiError.Errors = wireError.Errors
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}
	return apiError
}
