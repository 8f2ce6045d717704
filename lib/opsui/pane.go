// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gestia-ops/gestia/lib/api"
	"github.com/gestia-ops/gestia/lib/listing"
	"github.com/gestia-ops/gestia/lib/tui"
)

// Action is one workflow operation offered in a row's action dropdown.
// Run goes through the pane's controller so the optimistic patch and
// background stats refresh happen in one place.
type Action struct {
	Label       string
	NeedsReason bool // Opens the reason modal before running.
	Run         func(ctx context.Context, id, reason string) error
}

// Pane is one resource tab's view of its list controller: typed rows
// and columns for the table, plus the controller operations the model
// drives from key handlers. Implementations are instantiations of
// listPane; the interface erases the item and stats type parameters so
// the model can hold every tab in one map.
type Pane interface {
	Title() string
	Columns() []Column
	Rows() []Row
	Meta() listing.Meta
	Page() int
	SetPage(page int)
	Search() string
	ApplySearch(search string)
	Filters() listing.Filters
	ApplyFilters(filters listing.Filters)
	Fetch(ctx context.Context) error
	Refresh(ctx context.Context) error
	FetchStats(ctx context.Context) error
	Loading() bool
	Err() error
	Tiles() []StatTile
	FilterOptions() []tui.DropdownOption // Status filter choices; empty disables the dropdown.
	Actions() []Action
	LocalMode() bool
}

// listPane adapts one typed listing.Controller to the Pane interface.
type listPane[T, S any] struct {
	title         string
	columns       []Column
	controller    *listing.Controller[T, S]
	row           func(T) Row
	tiles         func(S) []StatTile
	filterOptions []tui.DropdownOption
	actions       []Action
}

func (pane *listPane[T, S]) Title() string                       { return pane.title }
func (pane *listPane[T, S]) Columns() []Column                   { return pane.columns }
func (pane *listPane[T, S]) Meta() listing.Meta                  { return pane.controller.Meta() }
func (pane *listPane[T, S]) Page() int                           { return pane.controller.Page() }
func (pane *listPane[T, S]) SetPage(page int)                    { pane.controller.SetPage(page) }
func (pane *listPane[T, S]) Search() string                      { return pane.controller.Search() }
func (pane *listPane[T, S]) ApplySearch(search string)           { pane.controller.ApplySearch(search) }
func (pane *listPane[T, S]) Filters() listing.Filters            { return pane.controller.Filters() }
func (pane *listPane[T, S]) ApplyFilters(f listing.Filters)      { pane.controller.ApplyFilters(f) }
func (pane *listPane[T, S]) Fetch(ctx context.Context) error     { return pane.controller.Fetch(ctx) }
func (pane *listPane[T, S]) Refresh(ctx context.Context) error   { return pane.controller.Refresh(ctx) }
func (pane *listPane[T, S]) FetchStats(ctx context.Context) error {
	return pane.controller.FetchStats(ctx)
}
func (pane *listPane[T, S]) Loading() bool                       { return pane.controller.Loading() }
func (pane *listPane[T, S]) Err() error                          { return pane.controller.Err() }
func (pane *listPane[T, S]) FilterOptions() []tui.DropdownOption { return pane.filterOptions }
func (pane *listPane[T, S]) Actions() []Action                   { return pane.actions }
func (pane *listPane[T, S]) LocalMode() bool                     { return pane.controller.LocalMode() }

func (pane *listPane[T, S]) Rows() []Row {
	items := pane.controller.Items()
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, pane.row(item))
	}
	return rows
}

func (pane *listPane[T, S]) Tiles() []StatTile {
	stats, ok := pane.controller.Stats()
	if !ok || pane.tiles == nil {
		return nil
	}
	return pane.tiles(stats)
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

func parseID(id string) (int64, error) {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("opsui: bad item id %q: %w", id, err)
	}
	return parsed, nil
}

// statusFilterOptions builds the filter dropdown entries for a set of
// status values, prefixed by an "All" entry that clears the filter.
func statusFilterOptions(statuses ...string) []tui.DropdownOption {
	options := []tui.DropdownOption{{Label: "All", Value: ""}}
	for _, status := range statuses {
		label := strings.ToUpper(status[:1]) + strings.ReplaceAll(status[1:], "_", " ")
		options = append(options, tui.DropdownOption{Label: label, Value: status})
	}
	return options
}

// NewPanes builds every resource pane against the API client. The
// returned map is keyed by tab; the dashboard and planning tabs are
// not panes and are handled by the model directly.
func NewPanes(client *api.Client, pageSize int, logger *slog.Logger) (map[Tab]Pane, error) {
	panes := make(map[Tab]Pane)

	tickets, err := newTicketsPane(client, pageSize, logger)
	if err != nil {
		return nil, err
	}
	panes[TabTickets] = tickets

	quotes, err := newQuotesPane(client, pageSize, logger)
	if err != nil {
		return nil, err
	}
	panes[TabQuotes] = quotes

	invoices, err := newInvoicesPane(client, pageSize, logger)
	if err != nil {
		return nil, err
	}
	panes[TabInvoices] = invoices

	assets, err := newAssetsPane(client, pageSize, logger)
	if err != nil {
		return nil, err
	}
	panes[TabAssets] = assets

	providers, err := newProvidersPane(client, pageSize, logger)
	if err != nil {
		return nil, err
	}
	panes[TabProviders] = providers

	sites, err := newSitesPane(client, pageSize, logger)
	if err != nil {
		return nil, err
	}
	panes[TabSites] = sites

	managers, err := newManagersPane(client, pageSize, logger)
	if err != nil {
		return nil, err
	}
	panes[TabManagers] = managers

	reports, err := newReportsPane(client, pageSize, logger)
	if err != nil {
		return nil, err
	}
	panes[TabReports] = reports

	return panes, nil
}

func newTicketsPane(client *api.Client, pageSize int, logger *slog.Logger) (Pane, error) {
	controller, err := listing.NewController(listing.Config[api.Ticket, api.TicketStats]{
		Fetch:    client.ListTickets,
		Stats:    client.TicketStats,
		ID:       func(t api.Ticket) string { return formatID(t.ID) },
		PageSize: pageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	pane := &listPane[api.Ticket, api.TicketStats]{
		title:      "Tickets",
		controller: controller,
		columns: []Column{
			{Title: "CODE", Width: 13},
			{Title: "TITLE", Flex: true},
			{Title: "SITE", Width: 18},
			{Title: "PRIORITY", Width: 8},
			{Title: "STATUS", Width: 11},
			{Title: "CREATED", Width: 10},
		},
		row: func(t api.Ticket) Row {
			return Row{
				ID:          formatID(t.ID),
				Status:      string(t.Status),
				Title:       t.Code + "  " + t.Title,
				Description: t.Description,
				Cells: []string{
					t.Code, t.Title, t.SiteName, t.Priority,
					string(t.Status), formatDate(t.CreatedAt),
				},
			}
		},
		tiles: func(s api.TicketStats) []StatTile {
			return []StatTile{
				{Label: "open", Value: strconv.Itoa(s.Open), Status: "open"},
				{Label: "in progress", Value: strconv.Itoa(s.InProgress), Status: "in_progress"},
				{Label: "resolved", Value: strconv.Itoa(s.Resolved), Status: "resolved"},
				{Label: "closed", Value: strconv.Itoa(s.Closed), Status: "closed"},
				{Label: "total", Value: strconv.Itoa(s.Total)},
			}
		},
		filterOptions: statusFilterOptions("open", "in_progress", "resolved", "closed"),
	}
	pane.actions = []Action{
		{
			Label: "Resolve",
			Run: func(ctx context.Context, id, _ string) error {
				numeric, err := parseID(id)
				if err != nil {
					return err
				}
				return controller.Mutate(ctx, id,
					func(ctx context.Context) error {
						_, err := client.ResolveTicket(ctx, numeric)
						return err
					},
					func(t *api.Ticket) { t.Status = api.TicketResolved },
				)
			},
		},
	}
	return pane, nil
}

func newQuotesPane(client *api.Client, pageSize int, logger *slog.Logger) (Pane, error) {
	controller, err := listing.NewController(listing.Config[api.Quote, api.QuoteStats]{
		Fetch:    client.ListQuotes,
		Stats:    client.QuoteStats,
		ID:       func(q api.Quote) string { return formatID(q.ID) },
		PageSize: pageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	pane := &listPane[api.Quote, api.QuoteStats]{
		title:      "Quotes",
		controller: controller,
		columns: []Column{
			{Title: "CODE", Width: 13},
			{Title: "TICKET", Flex: true},
			{Title: "PROVIDER", Width: 20},
			{Title: "AMOUNT", Width: 12},
			{Title: "STATUS", Width: 9},
			{Title: "SUBMITTED", Width: 10},
		},
		row: func(q api.Quote) Row {
			description := q.Description
			if q.RejectionReason != "" {
				description += "\n\n**Rejection reason:** " + q.RejectionReason
			}
			return Row{
				ID:          formatID(q.ID),
				Status:      string(q.Status),
				Title:       q.Code + "  " + q.TicketTitle,
				Description: description,
				Cells: []string{
					q.Code, q.TicketTitle, q.ProviderName,
					formatCents(q.AmountCents), string(q.Status),
					formatDate(q.SubmittedAt),
				},
			}
		},
		tiles: func(s api.QuoteStats) []StatTile {
			return []StatTile{
				{Label: "pending", Value: strconv.Itoa(s.Pending), Status: "pending"},
				{Label: "approved", Value: strconv.Itoa(s.Approved), Status: "approved"},
				{Label: "rejected", Value: strconv.Itoa(s.Rejected), Status: "rejected"},
				{Label: "total", Value: strconv.Itoa(s.Total)},
			}
		},
		filterOptions: statusFilterOptions("pending", "approved", "rejected"),
	}
	pane.actions = []Action{
		{
			Label: "Approve",
			Run: func(ctx context.Context, id, _ string) error {
				numeric, err := parseID(id)
				if err != nil {
					return err
				}
				return controller.Mutate(ctx, id,
					func(ctx context.Context) error {
						_, err := client.ApproveQuote(ctx, numeric)
						return err
					},
					func(q *api.Quote) { q.Status = api.QuoteApproved },
				)
			},
		},
		{
			Label:       "Reject…",
			NeedsReason: true,
			Run: func(ctx context.Context, id, reason string) error {
				numeric, err := parseID(id)
				if err != nil {
					return err
				}
				return controller.Mutate(ctx, id,
					func(ctx context.Context) error {
						_, err := client.RejectQuote(ctx, numeric, reason)
						return err
					},
					func(q *api.Quote) {
						q.Status = api.QuoteRejected
						q.RejectionReason = reason
					},
				)
			},
		},
	}
	return pane, nil
}

func newInvoicesPane(client *api.Client, pageSize int, logger *slog.Logger) (Pane, error) {
	controller, err := listing.NewController(listing.Config[api.Invoice, api.InvoiceStats]{
		Fetch:    client.ListInvoices,
		Stats:    client.InvoiceStats,
		ID:       func(inv api.Invoice) string { return formatID(inv.ID) },
		PageSize: pageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	pane := &listPane[api.Invoice, api.InvoiceStats]{
		title:      "Invoices",
		controller: controller,
		columns: []Column{
			{Title: "CODE", Width: 13},
			{Title: "PROVIDER", Flex: true},
			{Title: "AMOUNT", Width: 12},
			{Title: "STATUS", Width: 8},
			{Title: "DUE", Width: 10},
			{Title: "PAID", Width: 10},
		},
		row: func(inv api.Invoice) Row {
			description := fmt.Sprintf("Amount: **%s**\n\nDue %s",
				formatCents(inv.AmountCents), formatDate(inv.DueDate))
			if inv.PDFPath != "" {
				description += "\n\nPDF: " + client.StorageURL(inv.PDFPath)
			}
			return Row{
				ID:          formatID(inv.ID),
				Status:      string(inv.Status),
				Title:       inv.Code + "  " + inv.ProviderName,
				Description: description,
				Cells: []string{
					inv.Code, inv.ProviderName, formatCents(inv.AmountCents),
					string(inv.Status), formatDate(inv.DueDate), formatDate(inv.PaidAt),
				},
			}
		},
		tiles: func(s api.InvoiceStats) []StatTile {
			return []StatTile{
				{Label: "pending", Value: strconv.Itoa(s.Pending), Status: "pending"},
				{Label: "paid", Value: strconv.Itoa(s.Paid), Status: "paid"},
				{Label: "overdue", Value: strconv.Itoa(s.Overdue), Status: "overdue"},
				{Label: "outstanding", Value: formatCents(s.TotalCents)},
			}
		},
		filterOptions: statusFilterOptions("pending", "paid", "overdue"),
	}
	pane.actions = []Action{
		{
			Label: "Mark paid",
			Run: func(ctx context.Context, id, _ string) error {
				numeric, err := parseID(id)
				if err != nil {
					return err
				}
				return controller.Mutate(ctx, id,
					func(ctx context.Context) error {
						_, err := client.MarkInvoicePaid(ctx, numeric)
						return err
					},
					func(inv *api.Invoice) { inv.Status = api.InvoicePaid },
				)
			},
		},
	}
	return pane, nil
}

func newAssetsPane(client *api.Client, pageSize int, logger *slog.Logger) (Pane, error) {
	controller, err := listing.NewController(listing.Config[api.Asset, api.AssetStats]{
		Fetch:    client.ListAssets,
		Stats:    client.AssetStats,
		ID:       func(a api.Asset) string { return formatID(a.ID) },
		PageSize: pageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &listPane[api.Asset, api.AssetStats]{
		title:      "Assets",
		controller: controller,
		columns: []Column{
			{Title: "CODE", Width: 13},
			{Title: "NAME", Flex: true},
			{Title: "CATEGORY", Width: 14},
			{Title: "SITE", Width: 18},
			{Title: "CONDITION", Width: 10},
			{Title: "WARRANTY", Width: 10},
		},
		row: func(a api.Asset) Row {
			return Row{
				ID:    formatID(a.ID),
				Title: a.Code + "  " + a.Name,
				Description: fmt.Sprintf("Category: %s\n\nCondition: %s\n\nPurchased %s, warranty until %s",
					a.Category, a.Condition, formatDate(a.PurchaseDate), formatDate(a.WarrantyEnd)),
				Cells: []string{
					a.Code, a.Name, a.Category, a.SiteName,
					a.Condition, formatDate(a.WarrantyEnd),
				},
			}
		},
		tiles: func(s api.AssetStats) []StatTile {
			return []StatTile{
				{Label: "assets", Value: strconv.Itoa(s.Total)},
				{Label: "under warranty", Value: strconv.Itoa(s.UnderWarranty), Status: "approved"},
				{Label: "degraded", Value: strconv.Itoa(s.Degraded), Status: "overdue"},
			}
		},
	}, nil
}

func newProvidersPane(client *api.Client, pageSize int, logger *slog.Logger) (Pane, error) {
	controller, err := listing.NewController(listing.Config[api.Provider, api.ProviderStats]{
		Fetch:    client.ListProviders,
		Stats:    client.ProviderStats,
		ID:       func(p api.Provider) string { return formatID(p.ID) },
		PageSize: pageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &listPane[api.Provider, api.ProviderStats]{
		title:      "Providers",
		controller: controller,
		columns: []Column{
			{Title: "CODE", Width: 13},
			{Title: "COMPANY", Flex: true},
			{Title: "CONTACT", Width: 18},
			{Title: "SPECIALTY", Width: 14},
			{Title: "RATING", Width: 6},
			{Title: "ACTIVE", Width: 6},
		},
		row: func(p api.Provider) Row {
			active := "no"
			if p.Active {
				active = "yes"
			}
			return Row{
				ID:    formatID(p.ID),
				Title: p.Code + "  " + p.CompanyName,
				Description: fmt.Sprintf("Contact: %s\n\n%s · %s\n\nSpecialty: %s",
					p.ContactName, p.Email, p.Phone, p.Specialty),
				Cells: []string{
					p.Code, p.CompanyName, p.ContactName, p.Specialty,
					fmt.Sprintf("%.1f", p.Rating), active,
				},
			}
		},
		tiles: func(s api.ProviderStats) []StatTile {
			return []StatTile{
				{Label: "active", Value: strconv.Itoa(s.Active), Status: "approved"},
				{Label: "inactive", Value: strconv.Itoa(s.Inactive), Status: "closed"},
				{Label: "avg rating", Value: fmt.Sprintf("%.1f", s.Average)},
			}
		},
	}, nil
}

func newSitesPane(client *api.Client, pageSize int, logger *slog.Logger) (Pane, error) {
	controller, err := listing.NewController(listing.Config[api.Site, api.SiteStats]{
		Fetch:    client.ListSites,
		Stats:    client.SiteStats,
		ID:       func(s api.Site) string { return formatID(s.ID) },
		PageSize: pageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &listPane[api.Site, api.SiteStats]{
		title:      "Sites",
		controller: controller,
		columns: []Column{
			{Title: "CODE", Width: 13},
			{Title: "NAME", Flex: true},
			{Title: "CITY", Width: 16},
			{Title: "POSTAL", Width: 6},
			{Title: "ACTIVE", Width: 6},
		},
		row: func(s api.Site) Row {
			active := "no"
			if s.Active {
				active = "yes"
			}
			return Row{
				ID:          formatID(s.ID),
				Title:       s.Code + "  " + s.Name,
				Description: s.Address + "\n\n" + s.PostalCode + " " + s.City,
				Cells:       []string{s.Code, s.Name, s.City, s.PostalCode, active},
			}
		},
		tiles: func(s api.SiteStats) []StatTile {
			return []StatTile{
				{Label: "active", Value: strconv.Itoa(s.Active), Status: "approved"},
				{Label: "inactive", Value: strconv.Itoa(s.Inactive), Status: "closed"},
				{Label: "total", Value: strconv.Itoa(s.Total)},
			}
		},
	}, nil
}

// newManagersPane serves an unpaginated endpoint: the controller runs
// in local mode and pages the cached collection client-side.
func newManagersPane(client *api.Client, pageSize int, logger *slog.Logger) (Pane, error) {
	type noStats struct{}
	controller, err := listing.NewController(listing.Config[api.Manager, noStats]{
		Fetch: client.ListManagers,
		ID:    func(m api.Manager) string { return formatID(m.ID) },
		SearchText: func(m api.Manager) []string {
			return []string{m.FirstName, m.LastName, m.Email, m.Role}
		},
		FilterMatch: func(m api.Manager, name, value string) bool {
			if name == "role" {
				return m.Role == value
			}
			return false
		},
		PageSize: pageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &listPane[api.Manager, noStats]{
		title:      "Managers",
		controller: controller,
		columns: []Column{
			{Title: "NAME", Flex: true},
			{Title: "EMAIL", Width: 28},
			{Title: "PHONE", Width: 14},
			{Title: "ROLE", Width: 12},
			{Title: "ACTIVE", Width: 6},
		},
		row: func(m api.Manager) Row {
			active := "no"
			if m.Active {
				active = "yes"
			}
			name := m.FirstName + " " + m.LastName
			return Row{
				ID:          formatID(m.ID),
				Title:       name,
				Description: m.Email + "\n\n" + m.Phone + "\n\nRole: " + m.Role,
				Cells:       []string{name, m.Email, m.Phone, m.Role, active},
			}
		},
		filterOptions: []tui.DropdownOption{
			{Label: "All", Value: ""},
			{Label: "Admin", Value: "admin"},
			{Label: "Manager", Value: "manager"},
			{Label: "Viewer", Value: "viewer"},
		},
	}, nil
}

func newReportsPane(client *api.Client, pageSize int, logger *slog.Logger) (Pane, error) {
	type noStats struct{}
	controller, err := listing.NewController(listing.Config[api.Report, noStats]{
		Fetch:    client.ListReports,
		ID:       func(r api.Report) string { return formatID(r.ID) },
		PageSize: pageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	pane := &listPane[api.Report, noStats]{
		title:      "Reports",
		controller: controller,
		columns: []Column{
			{Title: "CODE", Width: 13},
			{Title: "SUMMARY", Flex: true},
			{Title: "STATUS", Width: 10},
			{Title: "SUBMITTED", Width: 10},
			{Title: "VALIDATED", Width: 10},
		},
		row: func(r api.Report) Row {
			summary := r.Summary
			if idx := strings.IndexByte(summary, '\n'); idx >= 0 {
				summary = summary[:idx]
			}
			return Row{
				ID:          formatID(r.ID),
				Status:      string(r.Status),
				Title:       r.Code,
				Description: r.Summary,
				Cells: []string{
					r.Code, summary, string(r.Status),
					formatDate(r.SubmittedAt), formatDate(r.ValidatedAt),
				},
			}
		},
		filterOptions: statusFilterOptions("draft", "submitted", "validated"),
	}
	pane.actions = []Action{
		{
			Label: "Validate",
			Run: func(ctx context.Context, id, _ string) error {
				numeric, err := parseID(id)
				if err != nil {
					return err
				}
				return controller.Mutate(ctx, id,
					func(ctx context.Context) error {
						_, err := client.ValidateReport(ctx, numeric)
						return err
					},
					func(r *api.Report) { r.Status = api.ReportValidated },
				)
			},
		},
	}
	return pane, nil
}
