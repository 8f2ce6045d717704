// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// ListReports retrieves one page of intervention reports. Accepted
// filters: status, provider_id, ticket_id.
func (client *Client) ListReports(ctx context.Context, query listing.Query) (listing.Page[Report], error) {
	return fetchList[Report](ctx, client, "/reports", query)
}

// GetReport retrieves a single report by id.
func (client *Client) GetReport(ctx context.Context, id int64) (*Report, error) {
	var report Report
	if err := client.get(ctx, fmt.Sprintf("/reports/%d", id), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ValidateReport marks a submitted report validated.
func (client *Client) ValidateReport(ctx context.Context, id int64) (*Report, error) {
	var report Report
	if err := client.post(ctx, fmt.Sprintf("/reports/%d/validate", id), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteReport deletes a report.
func (client *Client) DeleteReport(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/reports/%d", id))
}
