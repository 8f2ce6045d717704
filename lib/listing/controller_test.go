// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package listing

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/gestia-ops/gestia/lib/testutil"
)

type testItem struct {
	ID     string
	Name   string
	Status string
	Reason string
	Amount int
}

type testStats struct {
	Pending  int
	Rejected int
}

func testConfig(fetch FetchFunc[testItem]) Config[testItem, testStats] {
	return Config[testItem, testStats]{
		Fetch: fetch,
		ID:    func(item testItem) string { return item.ID },
		SearchText: func(item testItem) []string {
			return []string{item.Name, item.Status}
		},
		FilterMatch: func(item testItem, name, value string) bool {
			switch name {
			case "status":
				return item.Status == value
			case "name":
				return item.Name == value
			}
			return false
		},
		Logger: slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError})),
	}
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestController(t *testing.T, fetch FetchFunc[testItem]) *Controller[testItem, testStats] {
	t.Helper()
	controller, err := NewController(testConfig(fetch))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return controller
}

// recordingFetch returns a fetch that records every query and serves a
// fixed server-paginated page.
func recordingFetch(queries *[]Query) FetchFunc[testItem] {
	return func(ctx context.Context, query Query) (Page[testItem], error) {
		*queries = append(*queries, query)
		return Page[testItem]{
			Items: []testItem{{ID: "1", Name: "one"}},
			Meta:  Meta{CurrentPage: query.Page, LastPage: 5, PerPage: query.PerPage, Total: 42},
		}, nil
	}
}

func TestSearchAndFiltersResetPage(t *testing.T) {
	var queries []Query
	controller := newTestController(t, recordingFetch(&queries))
	ctx := context.Background()

	controller.SetPage(3)
	controller.Fetch(ctx)
	controller.ApplySearch("pump")
	controller.Fetch(ctx)
	controller.SetPage(2)
	controller.Fetch(ctx)
	controller.ApplyFilters(Filters{"status": "open"})
	controller.Fetch(ctx)

	wantPages := []int{3, 1, 2, 1}
	if len(queries) != len(wantPages) {
		t.Fatalf("issued %d queries, want %d", len(queries), len(wantPages))
	}
	for index, want := range wantPages {
		if queries[index].Page != want {
			t.Errorf("query %d: page = %d, want %d", index, queries[index].Page, want)
		}
	}
	if queries[3].Search != "pump" {
		t.Errorf("filter change dropped the search term: %q", queries[3].Search)
	}
}

func TestApplyFiltersReplacesWholly(t *testing.T) {
	var queries []Query
	controller := newTestController(t, recordingFetch(&queries))

	controller.ApplyFilters(Filters{"status": "pending", "site_id": "4"})
	controller.ApplyFilters(Filters{"provider_id": "9"})

	got := controller.Filters()
	want := Filters{"provider_id": "9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filters = %v, want %v (no stale keys)", got, want)
	}
}

func TestUnsetFiltersAreAbsentFromQuery(t *testing.T) {
	var queries []Query
	controller := newTestController(t, recordingFetch(&queries))

	controller.ApplyFilters(Filters{"status": "open"})
	controller.Fetch(context.Background())

	if _, ok := queries[0].Filters["site_id"]; ok {
		t.Error("unset filter key present in outgoing query")
	}
	if len(queries[0].Filters) != 1 {
		t.Errorf("outgoing filters = %v, want exactly the one set key", queries[0].Filters)
	}
}

func TestFetchIdempotent(t *testing.T) {
	var queries []Query
	controller := newTestController(t, recordingFetch(&queries))
	ctx := context.Background()

	controller.Fetch(ctx)
	first, firstMeta := controller.Items(), controller.Meta()
	controller.Fetch(ctx)
	second, secondMeta := controller.Items(), controller.Meta()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("items changed across identical fetches: %v vs %v", first, second)
	}
	if firstMeta != secondMeta {
		t.Errorf("meta changed across identical fetches: %+v vs %+v", firstMeta, secondMeta)
	}
}

func TestFetchFailureKeepsStaleItems(t *testing.T) {
	fail := false
	fetch := func(ctx context.Context, query Query) (Page[testItem], error) {
		if fail {
			return Page[testItem]{}, fmt.Errorf("backend unreachable")
		}
		return Page[testItem]{
			Items: []testItem{{ID: "1", Name: "boiler"}},
			Meta:  Meta{CurrentPage: 1, LastPage: 1, PerPage: 10, Total: 1},
		}, nil
	}
	controller := newTestController(t, fetch)
	ctx := context.Background()

	controller.Fetch(ctx)
	if controller.Err() != nil {
		t.Fatalf("unexpected error: %v", controller.Err())
	}

	fail = true
	if err := controller.Fetch(ctx); err == nil {
		t.Fatal("expected fetch error")
	}
	if controller.Err() == nil {
		t.Error("error not recorded")
	}
	if len(controller.Items()) != 1 {
		t.Error("failed fetch blanked the previous items")
	}
	if controller.Loading() {
		t.Error("loading flag not cleared after failure")
	}

	fail = false
	controller.Fetch(ctx)
	if controller.Err() != nil {
		t.Errorf("error not cleared after successful fetch: %v", controller.Err())
	}
}

func TestStatsFailureDoesNotTouchListError(t *testing.T) {
	config := testConfig(recordingFetch(&[]Query{}))
	statsCalls := 0
	config.Stats = func(ctx context.Context) (testStats, error) {
		statsCalls++
		if statsCalls == 1 {
			return testStats{}, fmt.Errorf("stats endpoint down")
		}
		return testStats{Pending: 7}, nil
	}
	controller, err := NewController(config)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctx := context.Background()

	if err := controller.FetchStats(ctx); err == nil {
		t.Fatal("expected stats error")
	}
	if controller.Err() != nil {
		t.Errorf("stats failure leaked into list error: %v", controller.Err())
	}
	if _, ok := controller.Stats(); ok {
		t.Error("failed stats fetch stored a snapshot")
	}

	controller.FetchStats(ctx)
	stats, ok := controller.Stats()
	if !ok || stats.Pending != 7 {
		t.Errorf("stats = %+v (ok=%v), want Pending=7", stats, ok)
	}
	if controller.StatsLoading() {
		t.Error("statsLoading not cleared")
	}
}

func serverPage(items ...testItem) FetchFunc[testItem] {
	return func(ctx context.Context, query Query) (Page[testItem], error) {
		return Page[testItem]{
			Items: append([]testItem(nil), items...),
			Meta:  Meta{CurrentPage: query.Page, LastPage: 1, PerPage: query.PerPage, Total: len(items)},
		}, nil
	}
}

func TestMutatePatchesOnlyTargetItem(t *testing.T) {
	before := []testItem{
		{ID: "6", Name: "roof quote", Status: "pending", Amount: 1200},
		{ID: "7", Name: "hvac quote", Status: "pending", Amount: 840},
		{ID: "8", Name: "door quote", Status: "approved", Amount: 300},
	}
	controller := newTestController(t, serverPage(before...))
	ctx := context.Background()
	controller.Fetch(ctx)

	err := controller.Mutate(ctx, "7",
		func(context.Context) error { return nil },
		func(item *testItem) {
			item.Status = "rejected"
			item.Reason = "incomplete documentation"
		})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	items := controller.Items()
	if items[1].Status != "rejected" || items[1].Reason != "incomplete documentation" {
		t.Errorf("target item not patched: %+v", items[1])
	}
	if items[1].Name != "hvac quote" || items[1].Amount != 840 {
		t.Errorf("patch touched unrelated fields: %+v", items[1])
	}
	if !reflect.DeepEqual(items[0], before[0]) || !reflect.DeepEqual(items[2], before[2]) {
		t.Errorf("patch touched other items: %+v", items)
	}
}

func TestMutateFailureLeavesItemsUnchanged(t *testing.T) {
	controller := newTestController(t, serverPage(
		testItem{ID: "1", Name: "a", Status: "pending"},
	))
	ctx := context.Background()
	controller.Fetch(ctx)
	before := controller.Items()

	err := controller.Mutate(ctx, "1",
		func(context.Context) error { return fmt.Errorf("rejection requires a reason") },
		func(item *testItem) { item.Status = "rejected" })
	if err == nil {
		t.Fatal("expected mutation error")
	}
	if !reflect.DeepEqual(controller.Items(), before) {
		t.Error("failed mutation changed local items")
	}
}

func TestMutateRefreshesStatsInBackground(t *testing.T) {
	config := testConfig(serverPage(testItem{ID: "7", Status: "pending"}))
	statsFetched := make(chan testStats, 1)
	config.Stats = func(ctx context.Context) (testStats, error) {
		stats := testStats{Pending: 3, Rejected: 2}
		statsFetched <- stats
		return stats, nil
	}
	controller, err := NewController(config)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctx := context.Background()
	controller.Fetch(ctx)

	if err := controller.Mutate(ctx, "7",
		func(context.Context) error { return nil },
		func(item *testItem) { item.Status = "rejected" }); err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	testutil.RequireReceive(t, statsFetched, 5*time.Second, "stats refresh after mutation")
	testutil.RequireEventually(t, 5*time.Second, func() bool {
		stats, ok := controller.Stats()
		return ok && stats.Pending == 3 && stats.Rejected == 2
	}, "stats snapshot stored")
}

// unpaginated returns a fetch that serves the whole collection as a
// bare array, forcing the controller into local mode.
func unpaginated(items []testItem) FetchFunc[testItem] {
	return func(ctx context.Context, query Query) (Page[testItem], error) {
		return Page[testItem]{Items: append([]testItem(nil), items...), Unpaginated: true}, nil
	}
}

func rawItems(n int) []testItem {
	items := make([]testItem, n)
	for index := range items {
		status := "open"
		if index%6 == 0 {
			status = "pending" // items 0, 6, 12, 18 — four of 23.
		}
		items[index] = testItem{
			ID:     fmt.Sprintf("%d", index+1),
			Name:   fmt.Sprintf("Asset %02d", index+1),
			Status: status,
		}
	}
	return items
}

func TestLocalModePagination(t *testing.T) {
	controller := newTestController(t, unpaginated(rawItems(23)))
	ctx := context.Background()

	controller.Fetch(ctx)
	if !controller.LocalMode() {
		t.Fatal("controller did not enter local mode")
	}

	want := Meta{CurrentPage: 1, LastPage: 3, PerPage: 10, Total: 23}
	if got := controller.Meta(); got != want {
		t.Errorf("meta = %+v, want %+v", got, want)
	}
	if got := len(controller.Items()); got != 10 {
		t.Errorf("page 1 length = %d, want 10", got)
	}

	controller.SetPage(3)
	controller.Fetch(ctx)
	if got := len(controller.Items()); got != 3 {
		t.Errorf("page 3 length = %d, want 3", got)
	}
	if got := controller.Meta().CurrentPage; got != 3 {
		t.Errorf("current_page = %d, want 3", got)
	}
}

func TestLocalModeFilterMetaFromFilteredSet(t *testing.T) {
	controller := newTestController(t, unpaginated(rawItems(23)))
	ctx := context.Background()
	controller.Fetch(ctx)

	controller.ApplyFilters(Filters{"status": "pending"})

	meta := controller.Meta()
	if meta.Total != 4 {
		t.Errorf("total = %d, want 4 (filtered count, not unfiltered 23)", meta.Total)
	}
	if meta.LastPage != 1 {
		t.Errorf("last_page = %d, want 1", meta.LastPage)
	}
	if controller.Page() != 1 {
		t.Errorf("page = %d, want 1 after filter change", controller.Page())
	}
	if got := len(controller.Items()); got != 4 {
		t.Errorf("items length = %d, want 4", got)
	}
}

func TestLocalModeSearchCaseInsensitive(t *testing.T) {
	controller := newTestController(t, unpaginated([]testItem{
		{ID: "1", Name: "Chaudière Nord", Status: "open"},
		{ID: "2", Name: "Pompe Sud", Status: "open"},
	}))
	ctx := context.Background()
	controller.Fetch(ctx)

	controller.ApplySearch("chaud")
	items := controller.Items()
	if len(items) != 1 || items[0].ID != "1" {
		t.Errorf("search result = %+v, want only item 1", items)
	}
	if controller.Meta().Total != 1 {
		t.Errorf("total = %d, want 1", controller.Meta().Total)
	}
}

func TestLocalModeEmptyFilteredSet(t *testing.T) {
	controller := newTestController(t, unpaginated(rawItems(5)))
	ctx := context.Background()
	controller.Fetch(ctx)

	controller.ApplyFilters(Filters{"status": "archived"})

	meta := controller.Meta()
	if meta.Total != 0 || meta.LastPage != 0 {
		t.Errorf("meta = %+v, want Total=0 LastPage=0", meta)
	}
	if len(controller.Items()) != 0 {
		t.Errorf("items = %v, want empty", controller.Items())
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	type pending struct {
		query   Query
		release chan struct{}
	}
	started := make(chan pending, 2)
	fetch := func(ctx context.Context, query Query) (Page[testItem], error) {
		request := pending{query: query, release: make(chan struct{})}
		started <- request
		<-request.release
		return Page[testItem]{
			Items: []testItem{{ID: fmt.Sprintf("page-%d", query.Page)}},
			Meta:  Meta{CurrentPage: query.Page, LastPage: 2, PerPage: 10, Total: 15},
		}, nil
	}
	controller := newTestController(t, fetch)
	ctx := context.Background()

	doneA := make(chan error, 1)
	go func() { doneA <- controller.Fetch(ctx) }()
	requestA := testutil.RequireReceive(t, started, 5*time.Second, "request A issued")

	controller.SetPage(2)
	doneB := make(chan error, 1)
	go func() { doneB <- controller.Fetch(ctx) }()
	requestB := testutil.RequireReceive(t, started, 5*time.Second, "request B issued")
	if requestB.query.Page != 2 {
		t.Fatalf("request B page = %d, want 2", requestB.query.Page)
	}

	// B resolves first, then A resolves late.
	close(requestB.release)
	testutil.RequireReceive(t, doneB, 5*time.Second, "fetch B completion")
	close(requestA.release)
	testutil.RequireReceive(t, doneA, 5*time.Second, "fetch A completion")

	items := controller.Items()
	if len(items) != 1 || items[0].ID != "page-2" {
		t.Errorf("items = %+v, want B's result (page-2)", items)
	}
	if got := controller.Meta().CurrentPage; got != 2 {
		t.Errorf("current_page = %d, want 2", got)
	}
	if controller.Loading() {
		t.Error("loading flag stuck after stale completion")
	}
}
