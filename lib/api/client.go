// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseSize bounds JSON API response body reads: 64 MB. This
// exists solely to prevent a pathological response from exhausting
// memory; legitimate responses are orders of magnitude smaller. Binary
// export downloads are streamed with io.Copy and are not subject to it.
const maxResponseSize int64 = 64 << 20

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL of the back-office API, including any
	// path prefix (e.g., "https://api.example.com/api/v1"). Required.
	BaseURL string

	// Token is the bearer token attached to every request. Required.
	Token string

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is the typed back-office API client. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client from the given configuration. Returns an
// error if the base URL is missing or unparseable, or the token is
// empty.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	if config.Token == "" {
		return nil, fmt.Errorf("api: Token is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// StorageURL builds the absolute URL of a backend-served static file
// (invoice PDFs, report attachments) from the relative path stored on
// the entity.
func (client *Client) StorageURL(relativePath string) string {
	return client.baseURL + "/storage/" + strings.TrimLeft(relativePath, "/")
}

// do executes one API request and returns the raw response body. The
// path is relative to the base URL and may carry a query string.
// Non-2xx responses return a *APIError; transport errors propagate
// wrapped, unchanged in meaning — this layer does not retry.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+client.token)
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, body)
	}
	return body, nil
}

// envelope is the wire wrapper every successful API response uses.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// unwrap extracts the data payload from a response body. Bodies
// without an envelope (observed on a few legacy endpoints) are treated
// as the payload itself.
func unwrap(body []byte) json.RawMessage {
	var wrapped envelope
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data
	}
	return body
}

// get performs a GET request and decodes the unwrapped data payload
// into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodePayload(body, result)
}

// post performs a POST request and decodes the unwrapped data payload
// into result. Pass a nil result to discard the payload.
func (client *Client) post(ctx context.Context, path string, requestBody, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return decodePayload(body, result)
}

// put performs a PUT request and decodes the unwrapped data payload
// into result.
func (client *Client) put(ctx context.Context, path string, requestBody, result any) error {
	body, err := client.do(ctx, http.MethodPut, path, requestBody)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return decodePayload(body, result)
}

// delete performs a DELETE request, discarding any payload.
func (client *Client) delete(ctx context.Context, path string) error {
	_, err := client.do(ctx, http.MethodDelete, path, nil)
	return err
}

func decodePayload(body []byte, result any) error {
	if err := json.Unmarshal(unwrap(body), result); err != nil {
		return fmt.Errorf("api: decoding response payload: %w", err)
	}
	return nil
}
