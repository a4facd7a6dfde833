// Copyright 2026 The Nimbus Authors
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
	"time"

	"github.com/nimbus-cloud/nimbus/lib/errdefs"
	"github.com/nimbus-cloud/nimbus/lib/version"
)

// requestTimeout caps one whole request/response cycle. Exceeding it
// surfaces as a transport error (a wrapped *url.Error), distinct from
// any server-reported error.
const requestTimeout = 30 * time.Second

// maxResponseBytes bounds how much of a response body the client will
// read. The API returns bounded documents; anything larger indicates a
// misbehaving endpoint, not a legitimate payload.
const maxResponseBytes = 16 << 20

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL for API requests, without a trailing
	// slash (e.g. "https://api.nimbus.cloud"). Required.
	BaseURL string

	// Token is the bearer token attached to every request. Empty means
	// unauthenticated — only the login and signup calls work without one.
	Token string

	// HTTPClient is used for all requests. If nil, a client with a 30s
	// timeout is used.
	HTTPClient *http.Client

	// Logger is used for structured logging. If nil, slog.Default().
	Logger *slog.Logger
}

// Client is the Nimbus platform API client. Construct with NewClient;
// the zero value is not usable.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a platform API client from the given configuration.
// Returns an error if BaseURL is missing or unparsable.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
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

// do executes one authenticated request. The path is relative to the
// base URL (e.g. "/api/v1/orgs"). A non-nil requestBody is JSON-encoded.
// Returns the raw response body on 2xx; on any other status, returns
// the taxonomy error for that status. Transport failures (dial,
// timeout) pass through wrapped — they are not reclassified.
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

	if client.token != "" {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "nimbus-cli/"+version.Short())
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("api: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		client.logger.Debug("request failed",
			"method", method,
			"path", path,
			"status", response.StatusCode,
		)
		return nil, classifyStatus(response.StatusCode, body)
	}

	return body, nil
}

// classifyStatus maps one non-2xx status and its body to a member of
// the error taxonomy. The mapping is total: every status lands in
// exactly one member, with *errdefs.APIError as the catch-all.
func classifyStatus(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return errdefs.ErrUnauthorized
	case http.StatusNotFound:
		if message := serverMessage(body); message != "" {
			return &errdefs.NotFoundError{Message: message}
		}
		return &errdefs.NotFoundError{Message: "resource not found"}
	case http.StatusTooManyRequests:
		return errdefs.ErrRateLimited
	default:
		if message := serverMessage(body); message != "" {
			return &errdefs.APIError{StatusCode: statusCode, Message: message}
		}
		return &errdefs.APIError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("Request failed with status %d", statusCode),
		}
	}
}

// serverMessage extracts the message from a structured API error body,
// or returns "" when the body is not the expected shape.
func serverMessage(body []byte) string {
	var wireError struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) != nil {
		return ""
	}
	return wireError.Message
}

// get executes a GET request and decodes the JSON response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}

// post executes a POST request and decodes the JSON response into
// result when result is non-nil.
func (client *Client) post(ctx context.Context, path string, requestBody, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}

// put executes a PUT request and decodes the JSON response into result.
func (client *Client) put(ctx context.Context, path string, requestBody, result any) error {
	body, err := client.do(ctx, http.MethodPut, path, requestBody)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}

// delete executes a DELETE request. Delete-style endpoints return an
// empty body on success, so no decoding occurs.
func (client *Client) delete(ctx context.Context, path string) error {
	_, err := client.do(ctx, http.MethodDelete, path, nil)
	return err
}
