// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListPlanning retrieves the planning events overlapping a month.
// Month is "YYYY-MM". The endpoint is not paginated — a month holds a
// bounded number of events.
func (client *Client) ListPlanning(ctx context.Context, month string) ([]PlanningEvent, error) {
	var events []PlanningEvent
	path := "/planning?" + url.Values{"month": {month}}.Encode()
	if err := client.get(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetPlanningEvent retrieves a single planning event by id.
func (client *Client) GetPlanningEvent(ctx context.Context, id int64) (*PlanningEvent, error) {
	var event PlanningEvent
	if err := client.get(ctx, fmt.Sprintf("/planning/%d", id), &event); err != nil {
		return nil, err
	}
	return &event, nil
}
