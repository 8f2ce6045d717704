// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

// Timestamps are RFC 3339 strings passed through from the backend
// untouched; the client formats them for display only.

// TicketStatus is the lifecycle state of a maintenance ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// QuoteStatus is the approval state of a provider quote.
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteApproved QuoteStatus = "approved"
	QuoteRejected QuoteStatus = "rejected"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// ReportStatus is the validation state of an intervention report.
type ReportStatus string

const (
	ReportDraft     ReportStatus = "draft"
	ReportSubmitted ReportStatus = "submitted"
	ReportValidated ReportStatus = "validated"
)

// Site is a managed facility location.
type Site struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	ManagerID  int64  `json:"manager_id"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"created_at"`
}

// Ticket is a maintenance request raised against a site or asset.
type Ticket struct {
	ID          int64        `json:"id"`
	Code        string       `json:"code"` // backend-generated codification, e.g. TKT-2026-0147
	Title       string       `json:"title"`
	Description string       `json:"description"` // markdown
	Status      TicketStatus `json:"status"`
	Priority    string       `json:"priority"`
	SiteID      int64        `json:"site_id"`
	SiteName    string       `json:"site_name"`
	AssetID     int64        `json:"asset_id"`
	ProviderID  int64        `json:"provider_id"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	ResolvedAt  string       `json:"resolved_at"`
}

// Asset is a piece of managed patrimony (equipment, installation,
// building element) attached to a site.
type Asset struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	SiteID       int64  `json:"site_id"`
	SiteName     string `json:"site_name"`
	Condition    string `json:"condition"`
	PurchaseDate string `json:"purchase_date"`
	WarrantyEnd  string `json:"warranty_end"`
	CreatedAt    string `json:"created_at"`
}

// Provider is an external maintenance contractor.
type Provider struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	CompanyName string  `json:"company_name"`
	ContactName string  `json:"contact_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Specialty   string  `json:"specialty"`
	Rating      float64 `json:"rating"`
	Active      bool    `json:"active"`
}

// Quote is a provider's priced offer for a ticket. Amounts are cents.
type Quote struct {
	ID              int64       `json:"id"`
	Code            string      `json:"code"`
	TicketID        int64       `json:"ticket_id"`
	TicketTitle     string      `json:"ticket_title"`
	ProviderID      int64       `json:"provider_id"`
	ProviderName    string      `json:"provider_name"`
	AmountCents     int64       `json:"amount_cents"`
	Description     string      `json:"description"` // markdown
	Status          QuoteStatus `json:"status"`
	RejectionReason string      `json:"rejection_reason"`
	SubmittedAt     string      `json:"submitted_at"`
	DecidedAt       string      `json:"decided_at"`
}

// Invoice bills an approved quote. Amounts are cents.
type Invoice struct {
	ID           int64         `json:"id"`
	Code         string        `json:"code"`
	QuoteID      int64         `json:"quote_id"`
	ProviderID   int64         `json:"provider_id"`
	ProviderName string        `json:"provider_name"`
	AmountCents  int64         `json:"amount_cents"`
	Status       InvoiceStatus `json:"status"`
	IssuedAt     string        `json:"issued_at"`
	DueDate      string        `json:"due_date"`
	PaidAt       string        `json:"paid_at"`
	PDFPath      string        `json:"pdf_path"` // relative storage path, see Client.StorageURL
}

// Report is an intervention report filed by a provider for a ticket.
type Report struct {
	ID          int64        `json:"id"`
	Code        string       `json:"code"`
	TicketID    int64        `json:"ticket_id"`
	ProviderID  int64        `json:"provider_id"`
	Summary     string       `json:"summary"` // markdown
	Status      ReportStatus `json:"status"`
	SubmittedAt string       `json:"submitted_at"`
	ValidatedAt string       `json:"validated_at"`
}

// Manager is a back-office user with a role. The managers endpoint
// returns the full unpaginated collection.
type Manager struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
}

// ServiceDef is a catalog entry for a contractable service. The
// services endpoint returns the full unpaginated collection.
type ServiceDef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
}

// ResourceType and SubType classify assets and tickets.
type ResourceType struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	SubTypes []SubType `json:"sub_types"`
}

// SubType is a second-level classification under a ResourceType.
type SubType struct {
	ID     int64  `json:"id"`
	TypeID int64  `json:"type_id"`
	Name   string `json:"name"`
}

// PlanningEvent is a scheduled intervention on the planning calendar.
type PlanningEvent struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	SiteID     int64  `json:"site_id"`
	SiteName   string `json:"site_name"`
	ProviderID int64  `json:"provider_id"`
	Kind       string `json:"kind"` // "intervention", "inspection", "contract"
	StartsAt   string `json:"starts_at"`
	EndsAt     string `json:"ends_at"`
	Status     string `json:"status"`
}

// TicketStats is the global ticket aggregate snapshot. It reflects the
// whole backend, not the currently filtered view.
type TicketStats struct {
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
	Total      int `json:"total"`
}

// QuoteStats is the global quote aggregate snapshot.
type QuoteStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// InvoiceStats is the global invoice aggregate snapshot.
type InvoiceStats struct {
	Pending    int   `json:"pending"`
	Paid       int   `json:"paid"`
	Overdue    int   `json:"overdue"`
	TotalCents int64 `json:"total_cents"`
}

// SiteStats is the global site aggregate snapshot.
type SiteStats struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Total    int `json:"total"`
}

// AssetStats is the global asset aggregate snapshot.
type AssetStats struct {
	Total         int `json:"total"`
	UnderWarranty int `json:"under_warranty"`
	Degraded      int `json:"degraded"`
}

// ProviderStats is the global provider aggregate snapshot.
type ProviderStats struct {
	Active   int     `json:"active"`
	Inactive int     `json:"inactive"`
	Average  float64 `json:"average_rating"`
}
