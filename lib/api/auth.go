// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// CreateSession exchanges credentials (or an existing session token)
// for a new session token.
func (client *Client) CreateSession(ctx context.Context, request CreateSessionRequest) (*CreatedSession, error) {
	var created CreatedSession
	if err := client.post(ctx, "/api/v1/auth/sessions", request, &created); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &created, nil
}

// ListSessions returns the token's active and revoked sessions.
func (client *Client) ListSessions(ctx context.Context) (*ListSessionsResponse, error) {
	var response ListSessionsResponse
	if err := client.get(ctx, "/api/v1/auth/sessions", &response); err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return &response, nil
}

// RenewSession issues a fresh session token, revoking the current one.
func (client *Client) RenewSession(ctx context.Context) (*RenewedSession, error) {
	var renewed RenewedSession
	if err := client.post(ctx, "/api/v1/auth/sessions/renew", struct{}{}, &renewed); err != nil {
		return nil, fmt.Errorf("renewing session: %w", err)
	}
	return &renewed, nil
}

// DeleteSession revokes one session by ID.
func (client *Client) DeleteSession(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/api/v1/auth/sessions/%s", sessionID)
	if err := client.delete(ctx, path); err != nil {
		return fmt.Errorf("deleting session %s: %w", sessionID, err)
	}
	return nil
}
