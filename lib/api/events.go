// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListEvents returns an organization's audit events, newest first.
// A limit of 0 means the server default.
func (client *Client) ListEvents(ctx context.Context, orgID uuid.UUID, limit int) (*ListEventsResponse, error) {
	var response ListEventsResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/events", orgID)
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("listing events of %s: %w", orgID, err)
	}
	return &response, nil
}
