// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// upload sends a file plus extra form fields as multipart/form-data
// and decodes the unwrapped data payload into result.
func (client *Client) upload(ctx context.Context, path, fileField, filePath string, fields map[string]any, result any) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("api: opening upload file: %w", err)
	}
	defer file.Close()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	for key, value := range flattenFormFields("", fields) {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("api: writing form field %q: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("api: creating file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("api: reading upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("api: finalizing multipart body: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+path, &buffer)
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+client.token)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Type", writer.FormDataContentType())

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("api: POST %s: %w", path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("api: reading response body: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return parseAPIError(response.StatusCode, body)
	}
	if result == nil {
		return nil
	}
	return decodePayload(body, result)
}

// flattenFormFields converts a nested field map into the dotted form
// keys the backend expects: {"users": {"email": "a@b"}} becomes
// "users.email". Scalars are stringified; slices become indexed keys
// ("tags.0", "tags.1").
func flattenFormFields(prefix string, fields map[string]any) map[string]string {
	flattened := make(map[string]string)

	// Deterministic traversal keeps multipart bodies stable for tests.
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		switch value := fields[key].(type) {
		case map[string]any:
			for nestedKey, nestedValue := range flattenFormFields(fullKey, value) {
				flattened[nestedKey] = nestedValue
			}
		case []any:
			for index, element := range value {
				indexKey := fullKey + "." + strconv.Itoa(index)
				switch nested := element.(type) {
				case map[string]any:
					for nestedKey, nestedValue := range flattenFormFields(indexKey, nested) {
						flattened[nestedKey] = nestedValue
					}
				default:
					flattened[indexKey] = formatScalar(nested)
				}
			}
		default:
			flattened[fullKey] = formatScalar(value)
		}
	}
	return flattened
}

func formatScalar(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", typed)
	}
}
