// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeebo/blake3"

	"github.com/gestia-ops/gestia/lib/listing"
)

func TestExportInvoicesWritesFileWithDigest(t *testing.T) {
	content := []byte("id;code;amount\n1;INV-0001;120000\n")
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if got := request.URL.Query().Get("status"); got != "pending" {
			t.Errorf("status filter = %q, want pending", got)
		}
		if request.URL.Query().Has("page") {
			t.Error("export request carried a page parameter")
		}
		writer.Header().Set("Content-Disposition", `attachment; filename="invoices-2026-08.csv"`)
		writer.Write(content)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	destDir := t.TempDir()
	result, err := client.ExportInvoices(context.Background(), destDir, listing.Query{
		Page:    3, // must be stripped: exports cover the whole filtered set
		Filters: listing.Filters{"status": "pending"},
	})
	if err != nil {
		t.Fatalf("ExportInvoices: %v", err)
	}

	if filepath.Base(result.Path) != "invoices-2026-08.csv" {
		t.Errorf("filename = %q, want name from Content-Disposition", filepath.Base(result.Path))
	}
	written, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(written) != string(content) {
		t.Error("written file differs from response body")
	}
	if result.Size != int64(len(content)) {
		t.Errorf("size = %d, want %d", result.Size, len(content))
	}

	hasher := blake3.New()
	hasher.Write(content)
	if want := hex.EncodeToString(hasher.Sum(nil)); result.Digest != want {
		t.Errorf("digest = %q, want %q", result.Digest, want)
	}
}

func TestDownloadFilenameFallsBackToPath(t *testing.T) {
	if got := downloadFilename("", "/invoices/export?status=paid"); got != "export" {
		t.Errorf("fallback filename = %q, want export", got)
	}
	if got := downloadFilename(`attachment; filename="../../etc/passwd"`, "/x"); got != "passwd" {
		t.Errorf("directory components not stripped: %q", got)
	}
}

func TestImportAssetsFlattensNestedFields(t *testing.T) {
	var receivedFields map[string][]string
	var receivedFile string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if err := request.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		receivedFields = request.MultipartForm.Value
		if files := request.MultipartForm.File["file"]; len(files) == 1 {
			receivedFile = files[0].Filename
		}
		writer.Write([]byte(`{"data":{"created":10,"updated":2,"skipped":1,"errors":[]},"message":"Import complete"}`))
	}))
	defer server.Close()

	uploadPath := filepath.Join(t.TempDir(), "assets.csv")
	if err := os.WriteFile(uploadPath, []byte("code;name\nAST-1;Boiler\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	client := newTestClient(t, server)
	summary, err := client.ImportAssets(context.Background(), uploadPath, map[string]any{
		"site_id": int64(4),
		"options": map[string]any{
			"dry_run": false,
			"notify":  map[string]any{"email": "ops@example.com"},
		},
	})
	if err != nil {
		t.Fatalf("ImportAssets: %v", err)
	}

	if receivedFile != "assets.csv" {
		t.Errorf("file part = %q, want assets.csv", receivedFile)
	}
	wantFields := map[string]string{
		"site_id":              "4",
		"options.dry_run":      "false",
		"options.notify.email": "ops@example.com",
	}
	for key, want := range wantFields {
		if got := receivedFields[key]; len(got) != 1 || got[0] != want {
			t.Errorf("field %q = %v, want %q", key, got, want)
		}
	}
	if summary.Created != 10 || summary.Updated != 2 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestFlattenFormFieldsIndexesSlices(t *testing.T) {
	flattened := flattenFormFields("", map[string]any{
		"tags": []any{"hvac", "urgent"},
	})
	if flattened["tags.0"] != "hvac" || flattened["tags.1"] != "urgent" {
		t.Errorf("flattened = %v", flattened)
	}
}
