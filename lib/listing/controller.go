// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package listing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// FetchFunc retrieves one page of a remote collection. Implementations
// are the resource services in lib/api.
type FetchFunc[T any] func(ctx context.Context, query Query) (Page[T], error)

// StatsFunc retrieves the resource's aggregate stats snapshot. The
// snapshot reflects global backend state, not the currently filtered
// view.
type StatsFunc[S any] func(ctx context.Context) (S, error)

// Config holds the construction parameters for a Controller.
type Config[T, S any] struct {
	// Fetch is the list endpoint. Required.
	Fetch FetchFunc[T]

	// Stats is the aggregate stats endpoint. Optional; when nil,
	// FetchStats is a no-op and mutations skip the stats refresh.
	Stats StatsFunc[S]

	// ID extracts the stable identifier of an item. Required —
	// optimistic patches are keyed by it.
	ID func(item T) string

	// SearchText returns the item's human-readable string fields for
	// local-mode search. Case-insensitive substring matching is
	// applied to each field. Required only for resources whose list
	// endpoint returns a bare array.
	SearchText func(item T) []string

	// FilterMatch reports whether the item satisfies one active
	// filter in local mode (exact match per filter name). When nil,
	// filters are ignored in local mode.
	FilterMatch func(item T, name, value string) bool

	// PageSize is the page size sent to the backend and used for
	// local-mode slicing. Defaults to 10.
	PageSize int

	// Logger is used for non-fatal failures (stats fetches).
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Controller owns the client-side list state of one remote collection.
// All methods are safe for concurrent use; reads taken between a
// parameter change and the following Fetch observe the new parameters
// with the previous items (stale-but-valid data is preferred over
// blanking the view).
type Controller[T, S any] struct {
	config   Config[T, S]
	pageSize int
	logger   *slog.Logger

	mutex   sync.Mutex
	page    int
	search  string
	filters Filters

	items []T
	meta  Meta
	all   []T // full collection in local mode, nil in server mode

	loading      bool
	statsLoading bool
	err          error
	stats        *S

	// generation invalidates in-flight responses: bumped by every
	// parameter change and fetch start. fetchGeneration remembers the
	// most recently started fetch so a stale completion can still
	// clear the loading flag it set.
	generation      uint64
	fetchGeneration uint64
}

// NewController validates the configuration and returns a Controller
// positioned on page 1 with no search or filters.
func NewController[T, S any](config Config[T, S]) (*Controller[T, S], error) {
	if config.Fetch == nil {
		return nil, fmt.Errorf("listing: Fetch is required")
	}
	if config.ID == nil {
		return nil, fmt.Errorf("listing: ID is required")
	}

	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller[T, S]{
		config:   config,
		pageSize: pageSize,
		logger:   logger,
		page:     1,
	}, nil
}

// SetPage moves to page p (clamped to 1 at the low end) and invalidates
// any in-flight response. The caller follows with Fetch; in local mode
// the visible slice is recomputed immediately.
func (controller *Controller[T, S]) SetPage(p int) {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()

	if p < 1 {
		p = 1
	}
	controller.page = p
	controller.generation++
	if controller.all != nil {
		controller.repaginateLocked()
	}
}

// ApplySearch sets the search term and resets the page to 1.
func (controller *Controller[T, S]) ApplySearch(search string) {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()

	controller.search = search
	controller.page = 1
	controller.generation++
	if controller.all != nil {
		controller.repaginateLocked()
	}
}

// ApplyFilters replaces the filter set wholly — no keys from the
// previous set survive — and resets the page to 1.
func (controller *Controller[T, S]) ApplyFilters(filters Filters) {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()

	controller.filters = filters.Clone()
	controller.page = 1
	controller.generation++
	if controller.all != nil {
		controller.repaginateLocked()
	}
}

// Fetch retrieves the list with the current combined parameters. On
// success it replaces items and meta and clears the error; on failure
// it records the error and leaves the previous items untouched. A
// response that completes after a newer parameter change or fetch is
// discarded. In local mode Fetch recomputes the visible slice without
// touching the network.
func (controller *Controller[T, S]) Fetch(ctx context.Context) error {
	controller.mutex.Lock()
	if controller.all != nil {
		controller.repaginateLocked()
		controller.mutex.Unlock()
		return nil
	}

	controller.generation++
	generation := controller.generation
	controller.fetchGeneration = generation
	controller.loading = true
	query := Query{
		Page:    controller.page,
		PerPage: controller.pageSize,
		Search:  controller.search,
		Filters: controller.filters.Clone(),
	}
	controller.mutex.Unlock()

	page, err := controller.config.Fetch(ctx, query)

	controller.mutex.Lock()
	defer controller.mutex.Unlock()

	if generation == controller.fetchGeneration {
		controller.loading = false
	}
	if generation != controller.generation {
		// A newer parameter change or fetch owns the state now.
		return nil
	}

	if err != nil {
		controller.err = err
		return err
	}
	controller.err = nil

	if page.Unpaginated {
		controller.all = page.Items
		controller.repaginateLocked()
	} else {
		controller.items = page.Items
		controller.meta = page.Meta
	}
	return nil
}

// Refresh drops the local-mode cache (if any) and fetches from the
// backend again. Use after mutations that change collection membership.
func (controller *Controller[T, S]) Refresh(ctx context.Context) error {
	controller.mutex.Lock()
	controller.all = nil
	controller.mutex.Unlock()
	return controller.Fetch(ctx)
}

// FetchStats retrieves the aggregate stats snapshot. Failures are
// logged and returned but never touch the list error — stats are
// decorative, not load-blocking.
func (controller *Controller[T, S]) FetchStats(ctx context.Context) error {
	if controller.config.Stats == nil {
		return nil
	}

	controller.mutex.Lock()
	controller.statsLoading = true
	controller.mutex.Unlock()

	snapshot, err := controller.config.Stats(ctx)

	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	controller.statsLoading = false
	if err != nil {
		controller.logger.Warn("stats fetch failed", "error", err)
		return err
	}
	controller.stats = &snapshot
	return nil
}

// Mutate performs a write operation against the remote resource. On
// success the identified item receives the optimistic patch — only the
// fields the action is known to change — and the stats snapshot is
// refreshed in the background. On failure local state is left unchanged
// and the error is returned to the caller.
func (controller *Controller[T, S]) Mutate(ctx context.Context, id string, call func(context.Context) error, patch func(item *T)) error {
	if err := call(ctx); err != nil {
		return err
	}

	controller.Patch(id, patch)

	if controller.config.Stats != nil {
		background := context.WithoutCancel(ctx)
		go func() {
			_ = controller.FetchStats(background)
		}()
	}
	return nil
}

// Patch applies an in-place update to the item with the given id,
// preserving all other items. Reports whether the item was found.
func (controller *Controller[T, S]) Patch(id string, patch func(item *T)) bool {
	if patch == nil {
		return false
	}

	controller.mutex.Lock()
	defer controller.mutex.Unlock()

	found := false
	for index := range controller.items {
		if controller.config.ID(controller.items[index]) == id {
			patch(&controller.items[index])
			found = true
			break
		}
	}
	for index := range controller.all {
		if controller.config.ID(controller.all[index]) == id {
			patch(&controller.all[index])
			found = true
			break
		}
	}
	return found
}

// Items returns a copy of the current visible page.
func (controller *Controller[T, S]) Items() []T {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return append([]T(nil), controller.items...)
}

// Meta returns the current pagination metadata.
func (controller *Controller[T, S]) Meta() Meta {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.meta
}

// Page returns the current 1-based page cursor.
func (controller *Controller[T, S]) Page() int {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.page
}

// Search returns the current search term.
func (controller *Controller[T, S]) Search() string {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.search
}

// Filters returns a copy of the active filter set.
func (controller *Controller[T, S]) Filters() Filters {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.filters.Clone()
}

// Loading reports whether a list fetch is in flight.
func (controller *Controller[T, S]) Loading() bool {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.loading
}

// StatsLoading reports whether a stats fetch is in flight. It never
// blocks — and is never blocked by — the list loading flag.
func (controller *Controller[T, S]) StatsLoading() bool {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.statsLoading
}

// Err returns the last list fetch error, or nil after a successful
// fetch.
func (controller *Controller[T, S]) Err() error {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.err
}

// Stats returns the latest stats snapshot and whether one has been
// fetched.
func (controller *Controller[T, S]) Stats() (S, bool) {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	if controller.stats == nil {
		var zero S
		return zero, false
	}
	return *controller.stats, true
}

// LocalMode reports whether the controller is filtering and slicing a
// full unpaginated collection locally.
func (controller *Controller[T, S]) LocalMode() bool {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.all != nil
}

// repaginateLocked recomputes the visible slice and meta from the full
// local collection. Meta is computed from the filtered count, never
// from the unfiltered total. Callers hold the mutex.
func (controller *Controller[T, S]) repaginateLocked() {
	filtered := make([]T, 0, len(controller.all))
	for _, item := range controller.all {
		if controller.matchesSearch(item) && controller.matchesFilters(item) {
			filtered = append(filtered, item)
		}
	}

	total := len(filtered)
	controller.meta = localMeta(controller.page, controller.pageSize, total)

	start := (controller.page - 1) * controller.pageSize
	if start > total {
		start = total
	}
	end := start + controller.pageSize
	if end > total {
		end = total
	}
	controller.items = append([]T(nil), filtered[start:end]...)
}

func (controller *Controller[T, S]) matchesSearch(item T) bool {
	if controller.search == "" {
		return true
	}
	if controller.config.SearchText == nil {
		return true
	}
	query := strings.ToLower(controller.search)
	for _, field := range controller.config.SearchText(item) {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (controller *Controller[T, S]) matchesFilters(item T) bool {
	if len(controller.filters) == 0 || controller.config.FilterMatch == nil {
		return true
	}
	for name, value := range controller.filters {
		if !controller.config.FilterMatch(item, name, value) {
			return false
		}
	}
	return true
}
