// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// QuoteInput is the create/update payload for a quote.
type QuoteInput struct {
	TicketID    int64  `json:"ticket_id"`
	ProviderID  int64  `json:"provider_id"`
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description,omitempty"`
}

// ListQuotes retrieves one page of quotes. Accepted filters: status,
// provider_id, ticket_id.
func (client *Client) ListQuotes(ctx context.Context, query listing.Query) (listing.Page[Quote], error) {
	return fetchList[Quote](ctx, client, "/quotes", query)
}

// GetQuote retrieves a single quote by id.
func (client *Client) GetQuote(ctx context.Context, id int64) (*Quote, error) {
	var quote Quote
	if err := client.get(ctx, fmt.Sprintf("/quotes/%d", id), &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// CreateQuote creates a quote.
func (client *Client) CreateQuote(ctx context.Context, input QuoteInput) (*Quote, error) {
	var quote Quote
	if err := client.post(ctx, "/quotes", input, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// UpdateQuote updates a quote.
func (client *Client) UpdateQuote(ctx context.Context, id int64, input QuoteInput) (*Quote, error) {
	var quote Quote
	if err := client.put(ctx, fmt.Sprintf("/quotes/%d", id), input, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// DeleteQuote deletes a quote.
func (client *Client) DeleteQuote(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/quotes/%d", id))
}

// ApproveQuote approves a pending quote. Returns the updated quote
// with the backend-set decision timestamp.
func (client *Client) ApproveQuote(ctx context.Context, id int64) (*Quote, error) {
	var quote Quote
	if err := client.post(ctx, fmt.Sprintf("/quotes/%d/approve", id), nil, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// RejectQuote rejects a pending quote. The backend refuses an empty
// reason with a 422; the client does not duplicate that rule.
func (client *Client) RejectQuote(ctx context.Context, id int64, reason string) (*Quote, error) {
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}

	var quote Quote
	if err := client.post(ctx, fmt.Sprintf("/quotes/%d/reject", id), body, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// QuoteStats retrieves the global quote aggregate snapshot.
func (client *Client) QuoteStats(ctx context.Context) (QuoteStats, error) {
	var stats QuoteStats
	err := client.get(ctx, "/quotes/stats", &stats)
	return stats, err
}
