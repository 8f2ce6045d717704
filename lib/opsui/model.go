// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/junegunn/fzf/src/util"

	"github.com/gestia-ops/gestia/lib/api"
	"github.com/gestia-ops/gestia/lib/clock"
	"github.com/gestia-ops/gestia/lib/listing"
	"github.com/gestia-ops/gestia/lib/prefstore"
	"github.com/gestia-ops/gestia/lib/tui"
)

// Tab identifies which view is active.
type Tab int

const (
	TabDashboard Tab = iota
	TabTickets
	TabQuotes
	TabInvoices
	TabAssets
	TabProviders
	TabSites
	TabManagers
	TabReports
	TabPlanning
	tabCount
)

var tabTitles = [tabCount]string{
	"Dashboard", "Tickets", "Quotes", "Invoices", "Assets",
	"Providers", "Sites", "Managers", "Reports", "Planning",
}

// TabByName resolves a tab from its title, case-insensitively. Used
// for the --resource startup flag.
func TabByName(name string) (Tab, bool) {
	for index, title := range tabTitles {
		if strings.EqualFold(title, name) {
			return Tab(index), true
		}
	}
	return TabDashboard, false
}

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusList means navigation keys move the table cursor.
	FocusList FocusRegion = iota
	// FocusSearch means keystrokes go to the search input.
	FocusSearch
	// FocusDropdown means a dropdown overlay (status filter or row
	// actions) captures all input.
	FocusDropdown
	// FocusReason means the rejection-reason modal captures all input.
	FocusReason
	// FocusDetail means the detail viewport is open and scrolling.
	FocusDetail
	// FocusNotifications means the notification overlay is open.
	FocusNotifications
)

// flashDuration is how long success/error banners stay visible.
const flashDuration = 4 * time.Second

// Messages delivered through the bubbletea loop. Every network call
// happens inside a command; these carry its outcome back.
type (
	fetchDoneMsg struct {
		tab Tab
		err error
	}
	statsDoneMsg struct {
		tab Tab
		err error
	}
	mutationDoneMsg struct {
		tab   Tab
		id    string
		label string
		err   error
	}
	planningDoneMsg struct {
		month  string
		events []api.PlanningEvent
		err    error
	}
	exportDoneMsg struct {
		result api.ExportResult
		err    error
	}
	flashExpiredMsg struct {
		seq int
	}
	heatTickMsg struct{}
)

// flashState is the transient banner shown after mutations and
// exports. seq invalidates the expiry timer of an overwritten flash.
type flashState struct {
	text    string
	isError bool
	seq     int
}

// Options configures NewModel.
type Options struct {
	Client    *api.Client
	Store     prefstore.Store
	Clock     clock.Clock
	KeyMap    KeyMap
	PageSize  int
	ExportDir string
	Logger    *slog.Logger

	// InitialTab selects the tab shown at startup. Zero value is the
	// dashboard.
	InitialTab Tab
}

// Model is the top-level bubbletea model for the console.
type Model struct {
	panes  map[Tab]Pane
	client *api.Client
	store  prefstore.Store
	prefs  prefstore.Preferences
	clk    clock.Clock
	keys   KeyMap
	theme  tui.Theme
	logger *slog.Logger

	width  int
	height int
	ready  bool

	activeTab Tab
	cursors   map[Tab]int
	focus     FocusRegion

	searchInput textinput.Model

	dropdown       *tui.DropdownOverlay
	dropdownIsMenu bool // true: row actions, false: status filter

	reasonModal   *tui.TextModal
	pendingAction *Action
	pendingID     string

	detail     viewport.Model
	detailRow  Row
	detailOpen bool

	flash flashState

	heat        *tui.HeatTracker
	tickRunning bool

	// Scratch arena reused across fuzzy-highlight calls in the table
	// renderer.
	fuzzySlab *util.Slab

	planningMonth  string
	planningEvents []api.PlanningEvent
	planningErr    error

	exportDir string
}

// NewModel creates the console model. The clock drives flash expiry
// and heat decay so tests can use a fake.
func NewModel(options Options) (Model, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clk := options.Clock
	if clk == nil {
		clk = clock.Real()
	}
	store := options.Store
	if store == nil {
		store = prefstore.Memory()
	}

	// Stored preferences win over the configured defaults: the state
	// file is the operator's own override layer.
	prefs := store.Preferences()
	pageSize := prefs.PageSize
	if pageSize <= 0 {
		pageSize = options.PageSize
	}

	panes, err := NewPanes(options.Client, pageSize, logger)
	if err != nil {
		return Model{}, err
	}

	searchInput := textinput.New()
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 120

	keyMap := options.KeyMap
	if keyMap.Quit.Keys() == nil {
		keyMap = DefaultKeyMap
	}

	return Model{
		panes:         panes,
		client:        options.Client,
		store:         store,
		prefs:         prefs,
		clk:           clk,
		keys:          keyMap,
		theme:         tui.ThemeByName(prefs.Theme),
		logger:        logger,
		activeTab:     options.InitialTab,
		cursors:       make(map[Tab]int),
		searchInput:   searchInput,
		heat:          tui.NewHeatTracker(),
		fuzzySlab:     tui.NewFuzzySlab(),
		planningMonth: clk.Now().Format("2006-01"),
		exportDir:     options.ExportDir,
	}, nil
}

// Init implements tea.Model: load the first page of every pane and
// every stats snapshot so the dashboard fills in as results arrive.
func (model Model) Init() tea.Cmd {
	commands := []tea.Cmd{model.planningCmd(model.planningMonth)}
	for tab, pane := range model.panes {
		commands = append(commands, model.fetchCmd(tab, pane), model.statsCmd(tab, pane))
	}
	return tea.Batch(commands...)
}

// fetchCmd runs the pane's list fetch off the event loop. The
// controller discards stale completions itself, so commands from
// superseded pages are safe to let finish.
func (model Model) fetchCmd(tab Tab, pane Pane) tea.Cmd {
	return func() tea.Msg {
		err := pane.Fetch(context.Background())
		return fetchDoneMsg{tab: tab, err: err}
	}
}

func (model Model) statsCmd(tab Tab, pane Pane) tea.Cmd {
	return func() tea.Msg {
		err := pane.FetchStats(context.Background())
		return statsDoneMsg{tab: tab, err: err}
	}
}

func (model Model) refreshCmd(tab Tab, pane Pane) tea.Cmd {
	return func() tea.Msg {
		err := pane.Refresh(context.Background())
		return fetchDoneMsg{tab: tab, err: err}
	}
}

func (model Model) mutateCmd(tab Tab, action Action, id, reason string) tea.Cmd {
	return func() tea.Msg {
		err := action.Run(context.Background(), id, reason)
		return mutationDoneMsg{tab: tab, id: id, label: action.Label, err: err}
	}
}

func (model Model) planningCmd(month string) tea.Cmd {
	return func() tea.Msg {
		events, err := model.client.ListPlanning(context.Background(), month)
		return planningDoneMsg{month: month, events: events, err: err}
	}
}

func (model Model) exportCmd(pane Pane) tea.Cmd {
	destDir := model.exportDir
	query := listingQueryFor(pane)
	return func() tea.Msg {
		result, err := model.client.ExportInvoices(context.Background(), destDir, query)
		return exportDoneMsg{result: result, err: err}
	}
}

// flashExpireCmd schedules the flash banner's dismissal on the
// injected clock.
func (model Model) flashExpireCmd(seq int) tea.Cmd {
	after := model.clk.After(flashDuration)
	return func() tea.Msg {
		<-after
		return flashExpiredMsg{seq: seq}
	}
}

// heatTickCmd drives the mutation glow decay.
func (model Model) heatTickCmd() tea.Cmd {
	after := model.clk.After(tui.HeatTickInterval)
	return func() tea.Msg {
		<-after
		return heatTickMsg{}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.detail = viewport.New(message.Width-4, message.Height-6)
		if model.detailOpen {
			model.openDetail(model.detailRow)
		}
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		return model.handleMouse(message)

	case fetchDoneMsg:
		// The controller already holds the outcome (items or Err);
		// fetch errors additionally reach the log for operators
		// tailing --log-output.
		if message.err != nil {
			model.logger.Warn("list fetch failed",
				"tab", tabTitles[message.tab], "error", message.err)
		}
		return model, nil

	case statsDoneMsg:
		if message.err != nil {
			model.logger.Warn("stats fetch failed",
				"tab", tabTitles[message.tab], "error", message.err)
		}
		return model, nil

	case mutationDoneMsg:
		return model.handleMutationDone(message)

	case planningDoneMsg:
		if message.month != model.planningMonth {
			return model, nil // stale month, a newer request is in flight
		}
		model.planningErr = message.err
		if message.err == nil {
			model.planningEvents = message.events
		}
		return model, nil

	case exportDoneMsg:
		if message.err != nil {
			return model.setFlash(fmt.Sprintf("Export failed: %v", message.err), true)
		}
		return model.setFlash(
			fmt.Sprintf("Exported %s (%d bytes, blake3 %.8s)",
				message.result.Path, message.result.Size, message.result.Digest),
			false)

	case flashExpiredMsg:
		if message.seq == model.flash.seq {
			model.flash.text = ""
		}
		return model, nil

	case heatTickMsg:
		if model.heat.HasHot(model.clk.Now()) {
			return model, model.heatTickCmd()
		}
		model.tickRunning = false
		return model, nil
	}

	return model, nil
}

// handleMutationDone surfaces the mutation outcome as a flash, records
// a notification, and ignites the row glow on success. The optimistic
// patch and stats refresh already happened inside the controller.
func (model Model) handleMutationDone(message mutationDoneMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		return model.setFlash(fmt.Sprintf("%s failed: %v", message.label, message.err), true)
	}

	now := model.clk.Now()
	notification := prefstore.Notification{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Title:     message.label,
		Body:      fmt.Sprintf("%s %s #%s", message.label, tabTitles[message.tab], message.id),
		CreatedAt: now.Format(time.RFC3339),
	}
	if err := model.store.Add(notification); err != nil {
		model.logger.Warn("notification persist failed", "error", err)
	}

	model.heat.Ignite(message.id, now)
	var tickCmd tea.Cmd
	if !model.tickRunning {
		model.tickRunning = true
		tickCmd = model.heatTickCmd()
	}

	updated, flashCmd := model.setFlash(fmt.Sprintf("%s: done", message.label), false)
	return updated, tea.Batch(flashCmd, tickCmd)
}

// toggleTheme flips between the dark and light palettes and persists
// the choice so the next session starts with it.
func (model Model) toggleTheme() Model {
	if model.prefs.Theme == "light" {
		model.prefs.Theme = "dark"
	} else {
		model.prefs.Theme = "light"
	}
	model.theme = tui.ThemeByName(model.prefs.Theme)
	if err := model.store.SetPreferences(model.prefs); err != nil {
		model.logger.Warn("preference persist failed", "error", err)
	}
	return model
}

// setFlash replaces the banner and schedules its expiry.
func (model Model) setFlash(text string, isError bool) (Model, tea.Cmd) {
	model.flash.seq++
	model.flash.text = text
	model.flash.isError = isError
	return model, model.flashExpireCmd(model.flash.seq)
}

// handleMouse keeps pointer support minimal: the wheel scrolls the
// detail viewport, clicks operate the open dropdown. Everything else
// stays on the keyboard.
func (model Model) handleMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch message.Button {
	case tea.MouseButtonWheelUp:
		if model.detailOpen {
			model.detail.LineUp(3)
		}

	case tea.MouseButtonWheelDown:
		if model.detailOpen {
			model.detail.LineDown(3)
		}

	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress {
			return model, nil
		}
		if model.focus != FocusDropdown || model.dropdown == nil {
			return model, nil
		}
		dropdown := model.dropdown
		if !dropdown.Contains(message.X, message.Y) {
			model.dropdown = nil
			model.focus = FocusList
			return model, nil
		}
		if index := dropdown.OptionAtY(message.Y); index >= 0 {
			dropdown.Cursor = index
			selected := dropdown.Selected()
			model.dropdown = nil
			model.focus = FocusList

			pane := model.panes[model.activeTab]
			if !model.dropdownIsMenu {
				return model.applyStatusFilter(pane, selected.Value)
			}
			return model.startAction(pane, dropdown.ItemID, selected.Value)
		}
	}
	return model, nil
}

// handleKey routes keyboard input by focus region.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch model.focus {
	case FocusSearch:
		return model.handleSearchKey(message)
	case FocusDropdown:
		return model.handleDropdownKey(message)
	case FocusReason:
		return model.handleReasonKey(message)
	case FocusDetail:
		return model.handleDetailKey(message)
	case FocusNotifications:
		return model.handleNotificationsKey(message)
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.NextTab):
		model.switchTab(Tab((int(model.activeTab) + 1) % int(tabCount)))
		return model, nil

	case key.Matches(message, model.keys.PrevTab):
		model.switchTab(Tab((int(model.activeTab) + int(tabCount) - 1) % int(tabCount)))
		return model, nil

	case key.Matches(message, model.keys.Notifications):
		model.focus = FocusNotifications
		return model, nil

	case key.Matches(message, model.keys.ThemeToggle):
		return model.toggleTheme(), nil
	}

	// Digit shortcuts jump straight to a tab.
	if len(message.Runes) == 1 && message.Runes[0] >= '0' && message.Runes[0] <= '9' {
		index := int(message.Runes[0] - '0')
		if index < int(tabCount) {
			model.switchTab(Tab(index))
			return model, nil
		}
	}

	if model.activeTab == TabPlanning {
		return model.handlePlanningKey(message)
	}

	pane, ok := model.panes[model.activeTab]
	if !ok {
		return model, nil // dashboard has no list interaction
	}
	return model.handleListKey(message, pane)
}

// handleListKey handles navigation and actions on a resource tab.
func (model Model) handleListKey(message tea.KeyMsg, pane Pane) (tea.Model, tea.Cmd) {
	rowCount := len(pane.Rows())
	cursor := model.cursors[model.activeTab]

	switch {
	case key.Matches(message, model.keys.Up):
		if cursor > 0 {
			model.cursors[model.activeTab] = cursor - 1
		}

	case key.Matches(message, model.keys.Down):
		if cursor < rowCount-1 {
			model.cursors[model.activeTab] = cursor + 1
		}

	case key.Matches(message, model.keys.Home):
		model.cursors[model.activeTab] = 0

	case key.Matches(message, model.keys.End):
		if rowCount > 0 {
			model.cursors[model.activeTab] = rowCount - 1
		}

	case key.Matches(message, model.keys.NextPage):
		meta := pane.Meta()
		if pane.Page() < meta.LastPage {
			pane.SetPage(pane.Page() + 1)
			model.cursors[model.activeTab] = 0
			return model, model.fetchCmd(model.activeTab, pane)
		}

	case key.Matches(message, model.keys.PrevPage):
		if pane.Page() > 1 {
			pane.SetPage(pane.Page() - 1)
			model.cursors[model.activeTab] = 0
			return model, model.fetchCmd(model.activeTab, pane)
		}

	case key.Matches(message, model.keys.Refresh):
		return model, tea.Batch(
			model.refreshCmd(model.activeTab, pane),
			model.statsCmd(model.activeTab, pane),
		)

	case key.Matches(message, model.keys.SearchActivate):
		model.focus = FocusSearch
		model.searchInput.SetValue(pane.Search())
		model.searchInput.Focus()

	case key.Matches(message, model.keys.SearchClear):
		if pane.Search() != "" || len(pane.Filters()) > 0 {
			pane.ApplySearch("")
			pane.ApplyFilters(nil)
			model.cursors[model.activeTab] = 0
			return model, model.fetchCmd(model.activeTab, pane)
		}

	case key.Matches(message, model.keys.FilterStatus):
		options := pane.FilterOptions()
		if len(options) > 0 {
			model.dropdown = &tui.DropdownOverlay{
				Options: options,
				AnchorX: 2,
				AnchorY: 3,
				Field:   "status",
			}
			model.dropdownIsMenu = false
			model.focus = FocusDropdown
		}

	case key.Matches(message, model.keys.Action):
		actions := pane.Actions()
		if len(actions) > 0 && cursor < rowCount {
			row := pane.Rows()[cursor]
			options := make([]tui.DropdownOption, len(actions))
			for index, action := range actions {
				options[index] = tui.DropdownOption{Label: action.Label, Value: action.Label}
			}
			model.dropdown = &tui.DropdownOverlay{
				Options: options,
				AnchorX: 2,
				AnchorY: 3,
				ItemID:  row.ID,
			}
			model.dropdownIsMenu = true
			model.focus = FocusDropdown
		}

	case key.Matches(message, model.keys.Export):
		if model.activeTab == TabInvoices {
			updated, flashCmd := model.setFlash("Exporting invoices…", false)
			return updated, tea.Batch(flashCmd, model.exportCmd(pane))
		}

	case key.Matches(message, model.keys.FocusToggle):
		if cursor < rowCount {
			model.openDetail(pane.Rows()[cursor])
			model.focus = FocusDetail
		}
	}

	return model, nil
}

// handleSearchKey routes input to the search field. Enter applies the
// search (resetting to page 1 inside the controller), escape cancels
// without applying.
func (model Model) handleSearchKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	pane := model.panes[model.activeTab]

	switch message.Type {
	case tea.KeyEnter:
		model.focus = FocusList
		model.searchInput.Blur()
		pane.ApplySearch(model.searchInput.Value())
		model.cursors[model.activeTab] = 0
		return model, model.fetchCmd(model.activeTab, pane)

	case tea.KeyEsc:
		model.focus = FocusList
		model.searchInput.Blur()
		return model, nil
	}

	var inputCmd tea.Cmd
	model.searchInput, inputCmd = model.searchInput.Update(message)
	return model, inputCmd
}

// handleDropdownKey navigates the active dropdown (status filter or
// row action menu).
func (model Model) handleDropdownKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	dropdown := model.dropdown
	if dropdown == nil {
		model.focus = FocusList
		return model, nil
	}

	switch message.Type {
	case tea.KeyEsc:
		model.dropdown = nil
		model.focus = FocusList
		return model, nil

	case tea.KeyUp:
		dropdown.MoveUp()
		return model, nil

	case tea.KeyDown:
		dropdown.MoveDown()
		return model, nil

	case tea.KeyEnter:
		selected := dropdown.Selected()
		model.dropdown = nil
		model.focus = FocusList

		pane := model.panes[model.activeTab]
		if !model.dropdownIsMenu {
			return model.applyStatusFilter(pane, selected.Value)
		}
		return model.startAction(pane, dropdown.ItemID, selected.Value)
	}

	switch {
	case key.Matches(message, model.keys.Up):
		dropdown.MoveUp()
	case key.Matches(message, model.keys.Down):
		dropdown.MoveDown()
	}
	return model, nil
}

// applyStatusFilter replaces the pane's filters with the selection.
// The empty value clears the filter.
func (model Model) applyStatusFilter(pane Pane, value string) (tea.Model, tea.Cmd) {
	if value == "" {
		pane.ApplyFilters(nil)
	} else {
		pane.ApplyFilters(map[string]string{"status": value})
	}
	model.cursors[model.activeTab] = 0
	return model, model.fetchCmd(model.activeTab, pane)
}

// startAction runs the named action, or opens the reason modal first
// when the action requires one.
func (model Model) startAction(pane Pane, id, label string) (tea.Model, tea.Cmd) {
	for _, action := range pane.Actions() {
		if action.Label != label {
			continue
		}
		if action.NeedsReason {
			modal := tui.NewTextModal(fmt.Sprintf("%s #%s — reason", action.Label, id), model.theme)
			model.reasonModal = &modal
			pending := action
			model.pendingAction = &pending
			model.pendingID = id
			model.focus = FocusReason
			return model, nil
		}
		return model, model.mutateCmd(model.activeTab, action, id, "")
	}
	return model, nil
}

// handleReasonKey routes input to the reason modal. Ctrl+D submits;
// a blank reason is rejected locally since the backend requires one.
func (model Model) handleReasonKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc:
		model.reasonModal = nil
		model.pendingAction = nil
		model.focus = FocusList
		return model, nil

	case tea.KeyCtrlD:
		reason := model.reasonModal.Value()
		if reason == "" {
			return model.setFlash("A reason is required", true)
		}
		action := *model.pendingAction
		id := model.pendingID
		model.reasonModal = nil
		model.pendingAction = nil
		model.focus = FocusList
		return model, model.mutateCmd(model.activeTab, action, id, reason)
	}

	model.reasonModal.Update(message)
	return model, nil
}

// handleDetailKey scrolls the detail viewport; escape closes it.
func (model Model) handleDetailKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc:
		model.detailOpen = false
		model.focus = FocusList
		return model, nil
	}
	if key.Matches(message, model.keys.Quit) {
		return model, tea.Quit
	}

	var viewportCmd tea.Cmd
	model.detail, viewportCmd = model.detail.Update(message)
	return model, viewportCmd
}

// handleNotificationsKey closes the overlay and marks everything read.
func (model Model) handleNotificationsKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc, tea.KeyEnter:
		if err := model.store.MarkAllRead(); err != nil {
			model.logger.Warn("mark notifications read failed", "error", err)
		}
		model.focus = FocusList
	}
	if key.Matches(message, model.keys.Notifications) {
		model.focus = FocusList
	}
	return model, nil
}

// handlePlanningKey pages the calendar month.
func (model Model) handlePlanningKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.NextPage):
		return model.shiftPlanningMonth(1)
	case key.Matches(message, model.keys.PrevPage):
		return model.shiftPlanningMonth(-1)
	case key.Matches(message, model.keys.Refresh):
		return model, model.planningCmd(model.planningMonth)
	}
	return model, nil
}

func (model Model) shiftPlanningMonth(delta int) (tea.Model, tea.Cmd) {
	current, err := time.Parse("2006-01", model.planningMonth)
	if err != nil {
		current = model.clk.Now()
	}
	model.planningMonth = current.AddDate(0, delta, 0).Format("2006-01")
	model.planningEvents = nil
	return model, model.planningCmd(model.planningMonth)
}

// switchTab changes the active tab. Pane state persists per tab, so
// coming back shows the same page, search, and cursor.
func (model *Model) switchTab(tab Tab) {
	model.activeTab = tab
	model.focus = FocusList
	model.detailOpen = false
	model.dropdown = nil
}

// openDetail fills the detail viewport with the row's rendered
// markdown description.
func (model *Model) openDetail(row Row) {
	model.detailRow = row
	model.detailOpen = true
	width := model.width - 4
	if width < 20 {
		width = 20
	}
	model.detail.SetContent(renderTerminalMarkdown(row.Description, model.theme, width))
	model.detail.GotoTop()
}

// listingQueryFor reproduces the pane's current query for export
// endpoints, which receive the active search and filters but never
// pagination.
func listingQueryFor(pane Pane) listing.Query {
	return listing.Query{
		Search:  pane.Search(),
		Filters: pane.Filters(),
	}
}
