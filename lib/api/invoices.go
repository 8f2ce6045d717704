// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// ListInvoices retrieves one page of invoices. Accepted filters:
// status, provider_id.
func (client *Client) ListInvoices(ctx context.Context, query listing.Query) (listing.Page[Invoice], error) {
	return fetchList[Invoice](ctx, client, "/invoices", query)
}

// GetInvoice retrieves a single invoice by id.
func (client *Client) GetInvoice(ctx context.Context, id int64) (*Invoice, error) {
	var invoice Invoice
	if err := client.get(ctx, fmt.Sprintf("/invoices/%d", id), &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// DeleteInvoice deletes an invoice.
func (client *Client) DeleteInvoice(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/invoices/%d", id))
}

// MarkInvoicePaid marks an invoice paid. Returns the updated invoice
// with the backend-set payment timestamp.
func (client *Client) MarkInvoicePaid(ctx context.Context, id int64) (*Invoice, error) {
	var invoice Invoice
	if err := client.post(ctx, fmt.Sprintf("/invoices/%d/mark-paid", id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ExportInvoices downloads the invoice export (a binary spreadsheet)
// into destDir, applying the same filters a list request would. The
// current page and page size are not sent — exports cover the whole
// filtered set.
func (client *Client) ExportInvoices(ctx context.Context, destDir string, query listing.Query) (ExportResult, error) {
	query.Page = 0
	query.PerPage = 0
	return client.download(ctx, "/invoices/export"+encodeQuery(query), destDir)
}

// InvoiceStats retrieves the global invoice aggregate snapshot.
func (client *Client) InvoiceStats(ctx context.Context) (InvoiceStats, error) {
	var stats InvoiceStats
	err := client.get(ctx, "/invoices/stats", &stats)
	return stats, err
}
