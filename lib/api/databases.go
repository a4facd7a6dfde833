// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListDatabases returns an organization's managed databases.
func (client *Client) ListDatabases(ctx context.Context, orgID uuid.UUID) (*ListDatabasesResponse, error) {
	var response ListDatabasesResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/dbaas", orgID)
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("listing databases of %s: %w", orgID, err)
	}
	return &response, nil
}

// CreateDatabase provisions a managed database.
func (client *Client) CreateDatabase(ctx context.Context, orgID uuid.UUID, request CreateDatabaseRequest) (*Database, error) {
	var database Database
	path := fmt.Sprintf("/api/v1/orgs/%s/dbaas", orgID)
	if err := client.post(ctx, path, request, &database); err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}
	return &database, nil
}

// GetDatabase retrieves one managed database.
func (client *Client) GetDatabase(ctx context.Context, orgID, databaseID uuid.UUID) (*Database, error) {
	var database Database
	path := fmt.Sprintf("/api/v1/orgs/%s/dbaas/%s", orgID, databaseID)
	if err := client.get(ctx, path, &database); err != nil {
		return nil, fmt.Errorf("getting database %s: %w", databaseID, err)
	}
	return &database, nil
}

// UpdateDatabase resizes or renames a managed database.
func (client *Client) UpdateDatabase(ctx context.Context, orgID, databaseID uuid.UUID, request UpdateDatabaseRequest) (*Database, error) {
	var database Database
	path := fmt.Sprintf("/api/v1/orgs/%s/dbaas/%s", orgID, databaseID)
	if err := client.put(ctx, path, request, &database); err != nil {
		return nil, fmt.Errorf("updating database %s: %w", databaseID, err)
	}
	return &database, nil
}

// DeleteDatabase destroys a managed database and its data.
func (client *Client) DeleteDatabase(ctx context.Context, orgID, databaseID uuid.UUID) error {
	path := fmt.Sprintf("/api/v1/orgs/%s/dbaas/%s", orgID, databaseID)
	if err := client.delete(ctx, path); err != nil {
		return fmt.Errorf("deleting database %s: %w", databaseID, err)
	}
	return nil
}
