// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package listing

// Meta is the pagination metadata attached to a list result. Field
// names mirror the backend's paginator wire format.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Page is a normalized list result. Services produce exactly this shape
// regardless of whether the backend paginated server-side or returned
// the whole collection as a bare array.
type Page[T any] struct {
	Items []T
	Meta  Meta

	// Unpaginated is true when the backend returned a bare array.
	// Items then holds the complete collection and Meta is zero; the
	// controller takes over filtering and slicing locally.
	Unpaginated bool
}

// Filters is the active filter set for a list request: filter name to
// already-stringified scalar value. A filter that is unset is an absent
// key, never an empty value — absent keys are excluded from outgoing
// requests.
type Filters map[string]string

// Clone returns an independent copy. Clone of nil is nil.
func (filters Filters) Clone() Filters {
	if filters == nil {
		return nil
	}
	copied := make(Filters, len(filters))
	for key, value := range filters {
		copied[key] = value
	}
	return copied
}

// Query carries the combined list parameters for one fetch.
type Query struct {
	Page    int
	PerPage int
	Search  string
	Filters Filters
}

// localMeta computes pagination metadata for a locally filtered set of
// total items sliced into perPage-sized pages. LastPage follows
// ceil(total/perPage) exactly: an empty filtered set has LastPage 0.
func localMeta(page, perPage, total int) Meta {
	return Meta{
		CurrentPage: page,
		LastPage:    (total + perPage - 1) / perPage,
		PerPage:     perPage,
		Total:       total,
	}
}
