// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// TicketInput is the create/update payload for a ticket. Validation is
// the backend's responsibility; the client passes fields through.
type TicketInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	SiteID      int64  `json:"site_id"`
	AssetID     int64  `json:"asset_id,omitempty"`
	ProviderID  int64  `json:"provider_id,omitempty"`
}

// ListTickets retrieves one page of tickets. Accepted filters: status,
// priority, site_id, provider_id.
func (client *Client) ListTickets(ctx context.Context, query listing.Query) (listing.Page[Ticket], error) {
	return fetchList[Ticket](ctx, client, "/tickets", query)
}

// GetTicket retrieves a single ticket by id.
func (client *Client) GetTicket(ctx context.Context, id int64) (*Ticket, error) {
	var ticket Ticket
	if err := client.get(ctx, fmt.Sprintf("/tickets/%d", id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CreateTicket creates a ticket. The backend assigns the id and the
// codification.
func (client *Client) CreateTicket(ctx context.Context, input TicketInput) (*Ticket, error) {
	var ticket Ticket
	if err := client.post(ctx, "/tickets", input, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// UpdateTicket updates a ticket.
func (client *Client) UpdateTicket(ctx context.Context, id int64, input TicketInput) (*Ticket, error) {
	var ticket Ticket
	if err := client.put(ctx, fmt.Sprintf("/tickets/%d", id), input, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// DeleteTicket deletes a ticket.
func (client *Client) DeleteTicket(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/tickets/%d", id))
}

// ResolveTicket marks a ticket resolved. Returns the updated ticket
// with the backend-set resolution timestamp.
func (client *Client) ResolveTicket(ctx context.Context, id int64) (*Ticket, error) {
	var ticket Ticket
	if err := client.post(ctx, fmt.Sprintf("/tickets/%d/resolve", id), nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// TicketStats retrieves the global ticket aggregate snapshot.
func (client *Client) TicketStats(ctx context.Context) (TicketStats, error) {
	var stats TicketStats
	err := client.get(ctx, "/tickets/stats", &stats)
	return stats, err
}
