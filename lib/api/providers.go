// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// ProviderInput is the create/update payload for a provider.
type ProviderInput struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Specialty   string `json:"specialty,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// ListProviders retrieves one page of providers. Accepted filters:
// specialty, active.
func (client *Client) ListProviders(ctx context.Context, query listing.Query) (listing.Page[Provider], error) {
	return fetchList[Provider](ctx, client, "/providers", query)
}

// GetProvider retrieves a single provider by id.
func (client *Client) GetProvider(ctx context.Context, id int64) (*Provider, error) {
	var provider Provider
	if err := client.get(ctx, fmt.Sprintf("/providers/%d", id), &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// CreateProvider creates a provider.
func (client *Client) CreateProvider(ctx context.Context, input ProviderInput) (*Provider, error) {
	var provider Provider
	if err := client.post(ctx, "/providers", input, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// UpdateProvider updates a provider.
func (client *Client) UpdateProvider(ctx context.Context, id int64, input ProviderInput) (*Provider, error) {
	var provider Provider
	if err := client.put(ctx, fmt.Sprintf("/providers/%d", id), input, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// DeleteProvider deletes a provider.
func (client *Client) DeleteProvider(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/providers/%d", id))
}

// ProviderStats retrieves the global provider aggregate snapshot.
func (client *Client) ProviderStats(ctx context.Context) (ProviderStats, error) {
	var stats ProviderStats
	err := client.get(ctx, "/providers/stats", &stats)
	return stats, err
}
