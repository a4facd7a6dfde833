// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CurrentUser returns the account the token belongs to. This is also
// how login validates a freshly entered API key before persisting it.
func (client *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := client.get(ctx, "/api/v1/users", &user); err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}
	return &user, nil
}

// CreateUser creates a new account.
func (client *Client) CreateUser(ctx context.Context, request CreateUserRequest) (*User, error) {
	var user User
	if err := client.post(ctx, "/api/v1/users", request, &user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &user, nil
}

// GetUser retrieves one account by ID.
func (client *Client) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	path := fmt.Sprintf("/api/v1/users/%s", id)
	if err := client.get(ctx, path, &user); err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return &user, nil
}
