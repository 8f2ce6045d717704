// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gestia-ops/gestia/lib/listing"
)

// fetchList retrieves one page of a collection endpoint and normalizes
// the two server shapes — paginated {items, meta} object and bare
// array — into listing.Page. The array-or-object branch lives here and
// nowhere else.
func fetchList[T any](ctx context.Context, client *Client, path string, query listing.Query) (listing.Page[T], error) {
	body, err := client.do(ctx, "GET", path+encodeQuery(query), nil)
	if err != nil {
		return listing.Page[T]{}, err
	}
	return decodeList[T](unwrap(body))
}

func decodeList[T any](payload []byte) (listing.Page[T], error) {
	trimmed := bytes.TrimLeft(payload, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return listing.Page[T]{}, fmt.Errorf("api: decoding list payload: %w", err)
		}
		return listing.Page[T]{Items: items, Unpaginated: true}, nil
	}

	var wrapped struct {
		Items []T          `json:"items"`
		Meta  listing.Meta `json:"meta"`
	}
	if err := json.Unmarshal(payload, &wrapped); err != nil {
		return listing.Page[T]{}, fmt.Errorf("api: decoding paginated payload: %w", err)
	}
	return listing.Page[T]{Items: wrapped.Items, Meta: wrapped.Meta}, nil
}

// encodeQuery builds the query string for a list request. Page,
// per_page, and search are standard; every active filter becomes its
// own query parameter. Unset filters are absent keys by the Filters
// contract, so nothing empty is ever sent.
func encodeQuery(query listing.Query) string {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(query.PerPage))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	for name, value := range query.Filters {
		values.Set(name, value)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
