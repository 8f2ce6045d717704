// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

// ExportResult describes a completed binary export download.
type ExportResult struct {
	// Path is the absolute path of the written file.
	Path string

	// Digest is the hex BLAKE3 hash of the file content, for
	// integrity display and deduplicating repeated exports.
	Digest string

	// Size is the file size in bytes.
	Size int64
}

// download streams a binary endpoint into destDir. The filename comes
// from the Content-Disposition header when present, otherwise from the
// last path segment. The body is streamed through the hasher — large
// exports never reside in memory.
func (client *Client) download(ctx context.Context, requestPath, destDir string) (ExportResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+requestPath, nil)
	if err != nil {
		return ExportResult{}, fmt.Errorf("api: creating request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+client.token)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return ExportResult{}, fmt.Errorf("api: GET %s: %w", requestPath, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
		return ExportResult{}, parseAPIError(response.StatusCode, body)
	}

	filename := downloadFilename(response.Header.Get("Content-Disposition"), requestPath)
	destination := filepath.Join(destDir, filename)

	file, err := os.Create(destination)
	if err != nil {
		return ExportResult{}, fmt.Errorf("api: creating export file: %w", err)
	}

	hasher := blake3.New()
	size, err := io.Copy(io.MultiWriter(file, hasher), response.Body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(destination)
		return ExportResult{}, fmt.Errorf("api: writing export file: %w", err)
	}

	client.logger.Info("export downloaded",
		"path", destination,
		"size", size,
	)
	return ExportResult{
		Path:   destination,
		Digest: hex.EncodeToString(hasher.Sum(nil)),
		Size:   size,
	}, nil
}

// downloadFilename picks a safe local filename for a download. Any
// directory components the server supplies are discarded.
func downloadFilename(contentDisposition, requestPath string) string {
	if contentDisposition != "" {
		if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
			if name := path.Base(params["filename"]); name != "" && name != "." && name != "/" {
				return name
			}
		}
	}

	trimmed := requestPath
	if index := strings.IndexByte(trimmed, '?'); index >= 0 {
		trimmed = trimmed[:index]
	}
	if name := path.Base(trimmed); name != "" && name != "." && name != "/" {
		return name
	}
	return "export"
}
