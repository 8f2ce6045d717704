// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestia-ops/gestia/lib/listing"
)

func TestListServicesIgnoresPagination(t *testing.T) {
	var receivedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedQuery = request.URL.RawQuery
		writer.Write([]byte(`{"data":[
			{"id":1,"name":"Plomberie","category":"maintenance","active":true},
			{"id":2,"name":"Ascenseurs","category":"inspection","active":true}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	page, err := client.ListServices(context.Background(), listing.Query{Page: 3, PerPage: 10})
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}

	// The catalog endpoint is unpaginated; page/per_page never go out.
	if receivedQuery != "" {
		t.Errorf("query = %q, want empty", receivedQuery)
	}
	if len(page.Items) != 2 || page.Items[0].Name != "Plomberie" {
		t.Fatalf("items = %+v", page.Items)
	}
	if !page.Unpaginated {
		t.Error("bare-array response not tagged unpaginated")
	}
}

func TestListResourceTypesWithSubTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/types" {
			t.Errorf("path = %q", request.URL.Path)
		}
		writer.Write([]byte(`{"data":[
			{"id":4,"name":"CVC","category":"equipment","sub_types":[
				{"id":11,"type_id":4,"name":"Chaudière"},
				{"id":12,"type_id":4,"name":"Climatisation"}
			]}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	types, err := client.ListResourceTypes(context.Background())
	if err != nil {
		t.Fatalf("ListResourceTypes: %v", err)
	}
	if len(types) != 1 || len(types[0].SubTypes) != 2 {
		t.Fatalf("types = %+v", types)
	}
	if types[0].SubTypes[1].Name != "Climatisation" {
		t.Errorf("sub-type = %+v", types[0].SubTypes[1])
	}
}

func TestCreateSubTypePostsUnderType(t *testing.T) {
	var receivedPath string
	var receivedBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.Path
		raw, _ := io.ReadAll(request.Body)
		json.Unmarshal(raw, &receivedBody)
		writer.Write([]byte(`{"data":{"id":13,"type_id":4,"name":"VMC"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	subType, err := client.CreateSubType(context.Background(), 4, "VMC")
	if err != nil {
		t.Fatalf("CreateSubType: %v", err)
	}

	if receivedPath != "/types/4/sub-types" {
		t.Errorf("path = %q", receivedPath)
	}
	if receivedBody["name"] != "VMC" {
		t.Errorf("body = %v", receivedBody)
	}
	if subType.ID != 13 || subType.TypeID != 4 {
		t.Errorf("sub-type = %+v", subType)
	}
}
