// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// AssetInput is the create/update payload for an asset.
type AssetInput struct {
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	SiteID       int64  `json:"site_id"`
	Condition    string `json:"condition,omitempty"`
	PurchaseDate string `json:"purchase_date,omitempty"`
	WarrantyEnd  string `json:"warranty_end,omitempty"`
}

// ImportSummary reports the outcome of a bulk import.
type ImportSummary struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// ListAssets retrieves one page of assets. Accepted filters: category,
// site_id, condition.
func (client *Client) ListAssets(ctx context.Context, query listing.Query) (listing.Page[Asset], error) {
	return fetchList[Asset](ctx, client, "/assets", query)
}

// GetAsset retrieves a single asset by id.
func (client *Client) GetAsset(ctx context.Context, id int64) (*Asset, error) {
	var asset Asset
	if err := client.get(ctx, fmt.Sprintf("/assets/%d", id), &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// CreateAsset creates an asset.
func (client *Client) CreateAsset(ctx context.Context, input AssetInput) (*Asset, error) {
	var asset Asset
	if err := client.post(ctx, "/assets", input, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// UpdateAsset updates an asset.
func (client *Client) UpdateAsset(ctx context.Context, id int64, input AssetInput) (*Asset, error) {
	var asset Asset
	if err := client.put(ctx, fmt.Sprintf("/assets/%d", id), input, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// DeleteAsset deletes an asset.
func (client *Client) DeleteAsset(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/assets/%d", id))
}

// ImportAssets uploads a spreadsheet of assets as multipart form data.
// Extra form fields may use dotted paths for nested payloads (e.g.
// "options.dry_run"); see flattenFormFields.
func (client *Client) ImportAssets(ctx context.Context, filePath string, fields map[string]any) (*ImportSummary, error) {
	var summary ImportSummary
	if err := client.upload(ctx, "/assets/import", "file", filePath, fields, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// AssetStats retrieves the global asset aggregate snapshot.
func (client *Client) AssetStats(ctx context.Context) (AssetStats, error) {
	var stats AssetStats
	err := client.get(ctx, "/assets/stats", &stats)
	return stats, err
}
