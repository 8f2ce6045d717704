// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the typed client for the Gestia back-office REST API.
//
// A single Client carries the base URL, the bearer token, and the HTTP
// transport; every resource service is a set of methods on it
// (ListTickets, ApproveQuote, MarkInvoicePaid, ...). Each method
// returns the unwrapped data payload of the backend's response envelope
// {data, message}. List methods normalize both server shapes — a
// paginated {items, meta} object and a bare array — into
// listing.Page[T], so callers never branch on shape.
//
// The client does not retry, cache, or validate payloads: input
// validation is the backend's responsibility, and non-2xx responses
// surface as *APIError with the server's message and any field-level
// validation errors (HTTP 422).
package api
