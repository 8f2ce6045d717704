// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gestia-ops/gestia/lib/api"
	"github.com/gestia-ops/gestia/lib/clock"
	"github.com/gestia-ops/gestia/lib/prefstore"
)

// testBackend is a minimal in-memory API for driving the model. It
// records the query string of the last list request per path.
type testBackend struct {
	mutex       sync.Mutex
	lastQueries map[string]string
	rejected    map[string]string // quote id -> reason
}

func newTestServer(t *testing.T) (*httptest.Server, *testBackend) {
	t.Helper()
	backend := &testBackend{
		lastQueries: make(map[string]string),
		rejected:    make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tickets", func(w http.ResponseWriter, r *http.Request) {
		backend.record("/tickets", r)
		writeJSON(w, map[string]any{
			"items": []map[string]any{
				{"id": 1, "code": "TKT-2026-0001", "title": "Fuite d'eau sous-sol", "status": "open", "site_name": "Tour Nord"},
				{"id": 2, "code": "TKT-2026-0002", "title": "Chaudière en panne", "status": "in_progress", "site_name": "Annexe B"},
			},
			"meta": map[string]int{"current_page": 1, "last_page": 3, "per_page": 10, "total": 23},
		})
	})
	mux.HandleFunc("GET /tickets/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{"open": 5, "in_progress": 3, "resolved": 10, "closed": 5, "total": 23})
	})
	mux.HandleFunc("GET /quotes", func(w http.ResponseWriter, r *http.Request) {
		backend.record("/quotes", r)
		writeJSON(w, map[string]any{
			"items": []map[string]any{
				{"id": 7, "code": "QUO-2026-0007", "ticket_title": "Chaudière en panne", "provider_name": "ThermiPro", "amount_cents": 124050, "status": "pending", "description": "Remplacement du **brûleur**."},
			},
			"meta": map[string]int{"current_page": 1, "last_page": 1, "per_page": 10, "total": 1},
		})
	})
	mux.HandleFunc("GET /quotes/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{"pending": 1, "approved": 0, "rejected": 0, "total": 1})
	})
	mux.HandleFunc("POST /quotes/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Reason string `json:"reason"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		backend.mutex.Lock()
		backend.rejected[r.PathValue("id")] = body.Reason
		backend.mutex.Unlock()
		writeJSON(w, map[string]any{
			"id": 7, "status": "rejected", "rejection_reason": body.Reason,
		})
	})
	mux.HandleFunc("GET /managers", func(w http.ResponseWriter, r *http.Request) {
		backend.record("/managers", r)
		writeJSON(w, []map[string]any{
			{"id": 1, "first_name": "Claire", "last_name": "Morel", "email": "claire@example.com", "role": "admin", "active": true},
			{"id": 2, "first_name": "Yanis", "last_name": "Petit", "email": "yanis@example.com", "role": "manager", "active": true},
		})
	})
	mux.HandleFunc("GET /planning", func(w http.ResponseWriter, r *http.Request) {
		backend.record("/planning", r)
		writeJSON(w, []map[string]any{
			{"id": 1, "title": "Inspection ascenseurs", "site_name": "Tour Nord", "kind": "inspection", "starts_at": "2026-03-12T09:00:00Z", "status": "pending"},
		})
	})
	// Everything the model fetches eagerly but the tests don't assert on.
	empty := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"items": []any{},
			"meta":  map[string]int{"current_page": 1, "last_page": 0, "per_page": 10, "total": 0},
		})
	}
	for _, path := range []string{"/invoices", "/assets", "/providers", "/sites", "/reports"} {
		mux.HandleFunc("GET "+path, empty)
	}
	for _, path := range []string{"/invoices/stats", "/assets/stats", "/providers/stats", "/sites/stats"} {
		mux.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]int{})
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, backend
}

func (backend *testBackend) record(path string, r *http.Request) {
	backend.mutex.Lock()
	defer backend.mutex.Unlock()
	backend.lastQueries[path] = r.URL.RawQuery
}

func (backend *testBackend) lastQuery(path string) string {
	backend.mutex.Lock()
	defer backend.mutex.Unlock()
	return backend.lastQueries[path]
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(value)
}

func newTestModel(t *testing.T) (Model, *testBackend, *prefstore.MemStore, *clock.FakeClock) {
	t.Helper()
	server, backend := newTestServer(t)

	client, err := api.NewClient(api.Config{BaseURL: server.URL, Token: "test-token"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	store := prefstore.Memory()
	fakeClock := clock.Fake()
	model, err := NewModel(Options{
		Client:   client,
		Store:    store,
		Clock:    fakeClock,
		KeyMap:   DefaultKeyMap,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	resized, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return resized.(Model), backend, store, fakeClock
}

// step runs a command and feeds the resulting message back into the
// model, like the bubbletea runtime would. Commands that park on the
// fake clock (flash expiry, heat ticks) are left pending: their
// messages belong to tests that advance the clock explicitly.
func step(t *testing.T, model Model, command tea.Cmd) Model {
	t.Helper()
	if command == nil {
		return model
	}
	results := make(chan tea.Msg, 1)
	go func() { results <- command() }()

	var message tea.Msg
	select {
	case message = <-results:
	case <-time.After(200 * time.Millisecond):
		return model
	}
	if message == nil {
		return model
	}
	if batch, ok := message.(tea.BatchMsg); ok {
		for _, sub := range batch {
			model = step(t, model, sub)
		}
		return model
	}
	updated, next := model.Update(message)
	return step(t, updated.(Model), next)
}

func pressKey(t *testing.T, model Model, k rune) Model {
	t.Helper()
	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k}})
	return step(t, updated.(Model), command)
}

func pressSpecial(t *testing.T, model Model, keyType tea.KeyType) Model {
	t.Helper()
	updated, command := model.Update(tea.KeyMsg{Type: keyType})
	return step(t, updated.(Model), command)
}

func TestTicketsTabRendersFetchedRows(t *testing.T) {
	model, _, _, _ := newTestModel(t)

	model = pressKey(t, model, '1') // tickets tab
	pane := model.panes[TabTickets]
	model = step(t, model, model.fetchCmd(TabTickets, pane))
	model = step(t, model, model.statsCmd(TabTickets, pane))

	view := model.View()
	if !strings.Contains(view, "Fuite d'eau sous-sol") {
		t.Errorf("view missing first ticket:\n%s", view)
	}
	if !strings.Contains(view, "TKT-2026-0002") {
		t.Errorf("view missing second ticket code")
	}
	if !strings.Contains(view, "page 1/3 · 23 items") {
		t.Errorf("view missing pagination line:\n%s", view)
	}
}

func TestSearchAppliesAndResetsCursor(t *testing.T) {
	model, backend, _, _ := newTestModel(t)

	model = pressKey(t, model, '1')
	model = step(t, model, model.fetchCmd(TabTickets, model.panes[TabTickets]))
	model.cursors[TabTickets] = 1

	model = pressKey(t, model, '/')
	if model.focus != FocusSearch {
		t.Fatalf("focus = %v, want FocusSearch", model.focus)
	}
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("chaud")})
	model = updated.(Model)
	model = pressSpecial(t, model, tea.KeyEnter)

	if model.focus != FocusList {
		t.Errorf("focus after enter = %v, want FocusList", model.focus)
	}
	if model.cursors[TabTickets] != 0 {
		t.Errorf("cursor = %d, want reset to 0", model.cursors[TabTickets])
	}
	query := backend.lastQuery("/tickets")
	if !strings.Contains(query, "search=chaud") {
		t.Errorf("query = %q, want search=chaud", query)
	}
	if !strings.Contains(query, "page=1") && strings.Contains(query, "page=") {
		t.Errorf("query = %q, search must reset to page 1", query)
	}
}

func TestStatusFilterDropdown(t *testing.T) {
	model, backend, _, _ := newTestModel(t)

	model = pressKey(t, model, '1')
	model = step(t, model, model.fetchCmd(TabTickets, model.panes[TabTickets]))

	model = pressKey(t, model, 'f')
	if model.focus != FocusDropdown {
		t.Fatalf("focus = %v, want FocusDropdown", model.focus)
	}

	// Options: All, Open, In progress, ... — pick "Open".
	model = pressSpecial(t, model, tea.KeyDown)
	model = pressSpecial(t, model, tea.KeyEnter)

	if got := model.panes[TabTickets].Filters()["status"]; got != "open" {
		t.Errorf("filter status = %q, want open", got)
	}
	query := backend.lastQuery("/tickets")
	if !strings.Contains(query, "status=open") {
		t.Errorf("query = %q, want status=open", query)
	}
}

func TestStatusFilterDropdownMouseClick(t *testing.T) {
	model, backend, _, _ := newTestModel(t)

	model = pressKey(t, model, '1')
	model = step(t, model, model.fetchCmd(TabTickets, model.panes[TabTickets]))
	model = pressKey(t, model, 'f')

	// The dropdown anchors at (2,3); row 1 is "Open".
	updated, command := model.Update(tea.MouseMsg{
		X: 3, Y: 4,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	model = step(t, updated.(Model), command)

	if model.focus != FocusList {
		t.Fatalf("focus = %v, want FocusList after click", model.focus)
	}
	if got := model.panes[TabTickets].Filters()["status"]; got != "open" {
		t.Errorf("filter status = %q, want open", got)
	}
	if query := backend.lastQuery("/tickets"); !strings.Contains(query, "status=open") {
		t.Errorf("query = %q, want status=open", query)
	}
}

func TestDropdownDismissedByOutsideClick(t *testing.T) {
	model, _, _, _ := newTestModel(t)

	model = pressKey(t, model, '1')
	model = step(t, model, model.fetchCmd(TabTickets, model.panes[TabTickets]))
	model = pressKey(t, model, 'f')

	updated, command := model.Update(tea.MouseMsg{
		X: 60, Y: 20,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	model = step(t, updated.(Model), command)

	if model.focus != FocusList || model.dropdown != nil {
		t.Errorf("outside click should dismiss the dropdown, focus = %v", model.focus)
	}
	if got := model.panes[TabTickets].Filters()["status"]; got != "" {
		t.Errorf("filter status = %q, want unset", got)
	}
}

func TestRejectQuoteFlow(t *testing.T) {
	model, backend, store, _ := newTestModel(t)

	model = pressKey(t, model, '2') // quotes tab
	model = step(t, model, model.fetchCmd(TabQuotes, model.panes[TabQuotes]))

	model = pressKey(t, model, 'a')
	if model.focus != FocusDropdown {
		t.Fatalf("focus = %v, want FocusDropdown", model.focus)
	}
	model = pressSpecial(t, model, tea.KeyDown) // Approve -> Reject…
	model = pressSpecial(t, model, tea.KeyEnter)

	if model.focus != FocusReason {
		t.Fatalf("focus = %v, want FocusReason", model.focus)
	}
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("documentation incomplète")})
	model = updated.(Model)
	model = pressSpecial(t, model, tea.KeyCtrlD)

	if got := backend.rejected["7"]; got != "documentation incomplète" {
		t.Errorf("rejected reason = %q", got)
	}

	// Optimistic patch applied through the controller.
	rows := model.panes[TabQuotes].Rows()
	if len(rows) != 1 || rows[0].Status != "rejected" {
		t.Errorf("rows after reject = %+v, want status rejected", rows)
	}

	// Success flash and persisted notification.
	if model.flash.text == "" || model.flash.isError {
		t.Errorf("flash = %+v, want success text", model.flash)
	}
	notifications := store.Notifications()
	if len(notifications) != 1 || !strings.Contains(notifications[0].Body, "#7") {
		t.Errorf("notifications = %+v", notifications)
	}
	if store.UnreadCount() != 1 {
		t.Errorf("unread = %d, want 1", store.UnreadCount())
	}
}

func TestBlankReasonRejectedLocally(t *testing.T) {
	model, backend, _, _ := newTestModel(t)

	model = pressKey(t, model, '2')
	model = step(t, model, model.fetchCmd(TabQuotes, model.panes[TabQuotes]))
	model = pressKey(t, model, 'a')
	model = pressSpecial(t, model, tea.KeyDown)
	model = pressSpecial(t, model, tea.KeyEnter)

	model = pressSpecial(t, model, tea.KeyCtrlD)

	if model.focus != FocusReason {
		t.Errorf("focus = %v, modal should stay open", model.focus)
	}
	if !model.flash.isError {
		t.Errorf("expected error flash for blank reason")
	}
	if len(backend.rejected) != 0 {
		t.Errorf("no request should have been sent, got %v", backend.rejected)
	}
}

func TestManagersLocalModeSearch(t *testing.T) {
	model, backend, _, _ := newTestModel(t)

	model = pressKey(t, model, '7') // managers tab
	model = step(t, model, model.fetchCmd(TabManagers, model.panes[TabManagers]))

	pane := model.panes[TabManagers]
	if !pane.LocalMode() {
		t.Fatal("managers pane should be in local mode after a bare-array response")
	}
	if len(pane.Rows()) != 2 {
		t.Fatalf("rows = %d, want 2", len(pane.Rows()))
	}

	firstQuery := backend.lastQuery("/managers")

	model = pressKey(t, model, '/')
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("claire")})
	model = updated.(Model)
	model = pressSpecial(t, model, tea.KeyEnter)

	pane = model.panes[TabManagers]
	rows := pane.Rows()
	if len(rows) != 1 || !strings.Contains(rows[0].Cells[0], "Claire") {
		t.Errorf("local search rows = %+v, want only Claire", rows)
	}
	if meta := pane.Meta(); meta.Total != 1 || meta.LastPage != 1 {
		t.Errorf("meta = %+v, want total 1 from filtered set", meta)
	}
	if backend.lastQuery("/managers") != firstQuery {
		t.Error("local-mode search must not hit the network")
	}
}

func TestDetailViewRendersMarkdown(t *testing.T) {
	model, _, _, _ := newTestModel(t)

	model = pressKey(t, model, '2')
	model = step(t, model, model.fetchCmd(TabQuotes, model.panes[TabQuotes]))
	model = pressSpecial(t, model, tea.KeyEnter)

	if model.focus != FocusDetail {
		t.Fatalf("focus = %v, want FocusDetail", model.focus)
	}
	view := model.View()
	if !strings.Contains(view, "QUO-2026-0007") {
		t.Errorf("detail view missing quote title:\n%s", view)
	}
	// The markdown renderer styles **brûleur** but keeps the text.
	if !strings.Contains(view, "brûleur") {
		t.Errorf("detail view missing rendered description")
	}

	model = pressSpecial(t, model, tea.KeyEsc)
	if model.focus != FocusList {
		t.Errorf("focus after esc = %v, want FocusList", model.focus)
	}
}

func TestNotificationOverlayMarksRead(t *testing.T) {
	model, _, store, fakeClock := newTestModel(t)

	store.Add(prefstore.Notification{
		ID: "n1", Title: "Approve", Body: "Approve Quotes #7",
		CreatedAt: fakeClock.Now().Format("2006-01-02T15:04:05Z07:00"),
	})

	model = pressKey(t, model, 'N')
	if model.focus != FocusNotifications {
		t.Fatalf("focus = %v, want FocusNotifications", model.focus)
	}
	view := model.View()
	if !strings.Contains(view, "Approve Quotes #7") {
		t.Errorf("overlay missing notification:\n%s", view)
	}

	model = pressSpecial(t, model, tea.KeyEsc)
	if model.focus != FocusList {
		t.Errorf("focus = %v, want FocusList", model.focus)
	}
	if store.UnreadCount() != 0 {
		t.Errorf("unread = %d, want 0 after closing overlay", store.UnreadCount())
	}
}

func TestPlanningMonthNavigation(t *testing.T) {
	model, backend, _, _ := newTestModel(t)

	model = pressKey(t, model, '9') // planning tab
	startMonth := model.planningMonth

	model = pressKey(t, model, 'n')
	if model.planningMonth == startMonth {
		t.Error("next month key should advance planningMonth")
	}
	if !strings.Contains(backend.lastQuery("/planning"), "month="+model.planningMonth) {
		t.Errorf("planning query = %q, want month=%s", backend.lastQuery("/planning"), model.planningMonth)
	}
}
