// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// SiteInput is the create/update payload for a site.
type SiteInput struct {
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	ManagerID  int64  `json:"manager_id,omitempty"`
	Active     *bool  `json:"active,omitempty"`
}

// ListSites retrieves one page of sites. Accepted filters: city,
// manager_id, active.
func (client *Client) ListSites(ctx context.Context, query listing.Query) (listing.Page[Site], error) {
	return fetchList[Site](ctx, client, "/sites", query)
}

// GetSite retrieves a single site by id.
func (client *Client) GetSite(ctx context.Context, id int64) (*Site, error) {
	var site Site
	if err := client.get(ctx, fmt.Sprintf("/sites/%d", id), &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// CreateSite creates a site.
func (client *Client) CreateSite(ctx context.Context, input SiteInput) (*Site, error) {
	var site Site
	if err := client.post(ctx, "/sites", input, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// UpdateSite updates a site.
func (client *Client) UpdateSite(ctx context.Context, id int64, input SiteInput) (*Site, error) {
	var site Site
	if err := client.put(ctx, fmt.Sprintf("/sites/%d", id), input, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// DeleteSite deletes a site.
func (client *Client) DeleteSite(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/sites/%d", id))
}

// SiteStats retrieves the global site aggregate snapshot.
func (client *Client) SiteStats(ctx context.Context) (SiteStats, error) {
	var stats SiteStats
	err := client.get(ctx, "/sites/stats", &stats)
	return stats, err
}
