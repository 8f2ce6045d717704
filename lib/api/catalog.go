// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// Catalog endpoints: service definitions and resource type
// classifications. Both return full unpaginated collections; list
// controllers paginate them locally.

// ListServices retrieves the service catalog.
func (client *Client) ListServices(ctx context.Context, query listing.Query) (listing.Page[ServiceDef], error) {
	query.Page = 0
	query.PerPage = 0
	return fetchList[ServiceDef](ctx, client, "/services", query)
}

// CreateService creates a service catalog entry.
func (client *Client) CreateService(ctx context.Context, input ServiceDef) (*ServiceDef, error) {
	var service ServiceDef
	if err := client.post(ctx, "/services", input, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService updates a service catalog entry.
func (client *Client) UpdateService(ctx context.Context, id int64, input ServiceDef) (*ServiceDef, error) {
	var service ServiceDef
	if err := client.put(ctx, fmt.Sprintf("/services/%d", id), input, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService deletes a service catalog entry.
func (client *Client) DeleteService(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/services/%d", id))
}

// ListResourceTypes retrieves the type classification tree (types with
// their sub-types).
func (client *Client) ListResourceTypes(ctx context.Context) ([]ResourceType, error) {
	var types []ResourceType
	if err := client.get(ctx, "/types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// CreateSubType adds a sub-type under an existing type.
func (client *Client) CreateSubType(ctx context.Context, typeID int64, name string) (*SubType, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var subType SubType
	if err := client.post(ctx, fmt.Sprintf("/types/%d/sub-types", typeID), body, &subType); err != nil {
		return nil, err
	}
	return &subType, nil
}
