// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/gestia-ops/gestia/lib/listing"
)

// ManagerInput is the create/update payload for a manager account.
// Nested account fields (e.g. the backing user record) are flattened
// by the backend from dotted keys; the JSON payload here stays flat.
type ManagerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Active    *bool  `json:"active,omitempty"`
}

// ListManagers retrieves the manager collection. The backend returns
// the full unpaginated array for this resource; the result is tagged
// accordingly and the list controller paginates locally.
func (client *Client) ListManagers(ctx context.Context, query listing.Query) (listing.Page[Manager], error) {
	// The endpoint ignores pagination parameters; skip them.
	query.Page = 0
	query.PerPage = 0
	return fetchList[Manager](ctx, client, "/managers", query)
}

// GetManager retrieves a single manager by id.
func (client *Client) GetManager(ctx context.Context, id int64) (*Manager, error) {
	var manager Manager
	if err := client.get(ctx, fmt.Sprintf("/managers/%d", id), &manager); err != nil {
		return nil, err
	}
	return &manager, nil
}

// CreateManager creates a manager account.
func (client *Client) CreateManager(ctx context.Context, input ManagerInput) (*Manager, error) {
	var manager Manager
	if err := client.post(ctx, "/managers", input, &manager); err != nil {
		return nil, err
	}
	return &manager, nil
}

// UpdateManager updates a manager account.
func (client *Client) UpdateManager(ctx context.Context, id int64, input ManagerInput) (*Manager, error) {
	var manager Manager
	if err := client.put(ctx, fmt.Sprintf("/managers/%d", id), input, &manager); err != nil {
		return nil, err
	}
	return &manager, nil
}

// DeleteManager deletes a manager account.
func (client *Client) DeleteManager(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/managers/%d", id))
}
