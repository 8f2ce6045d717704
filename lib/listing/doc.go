// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

// Package listing implements the list-state controller that every
// resource screen in the back-office console is built on.
//
// A Controller owns the full client-side state of one remote
// collection: the current page, the search term, the active filter set,
// the fetched items with their pagination metadata, independent loading
// flags for the list and the stats panel, and the last fetch error.
// Parameter changes (SetPage, ApplySearch, ApplyFilters) invalidate any
// in-flight response via a generation counter, so rapid successive
// changes can never let a stale response overwrite a newer one:
// last-request-wins.
//
// Two pagination modes are supported transparently. When the backend
// paginates (the fetch returns server Meta), the controller stores the
// page as-is. When the backend returns the whole collection as a bare
// array, the controller switches to local mode: it filters the full set
// by the search term and the active filters, slices it into fixed-size
// pages, and computes Meta from the filtered count.
//
// Write operations go through Mutate, which applies an optimistic patch
// to the identified item only after the remote call succeeds, then
// refreshes the stats snapshot in the background. A failed mutation
// leaves local state untouched and returns the error to the caller.
package listing
