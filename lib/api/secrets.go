// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListSecrets returns an organization's secrets. Values are omitted in
// listings; fetch a single secret to reveal its value.
func (client *Client) ListSecrets(ctx context.Context, orgID uuid.UUID) (*ListSecretsResponse, error) {
	var response ListSecretsResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/secrets", orgID)
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("listing secrets of %s: %w", orgID, err)
	}
	return &response, nil
}

// CreateSecret creates a secret.
func (client *Client) CreateSecret(ctx context.Context, orgID uuid.UUID, request CreateSecretRequest) (*Secret, error) {
	var secret Secret
	path := fmt.Sprintf("/api/v1/orgs/%s/secrets", orgID)
	if err := client.post(ctx, path, request, &secret); err != nil {
		return nil, fmt.Errorf("creating secret: %w", err)
	}
	return &secret, nil
}

// GetSecret retrieves one secret with its value revealed.
func (client *Client) GetSecret(ctx context.Context, orgID, secretID uuid.UUID) (*Secret, error) {
	var secret Secret
	path := fmt.Sprintf("/api/v1/orgs/%s/secrets/%s?reveal=true", orgID, secretID)
	if err := client.get(ctx, path, &secret); err != nil {
		return nil, fmt.Errorf("getting secret %s: %w", secretID, err)
	}
	return &secret, nil
}

// UpdateSecret updates a secret.
func (client *Client) UpdateSecret(ctx context.Context, orgID, secretID uuid.UUID, request UpdateSecretRequest) (*Secret, error) {
	var secret Secret
	path := fmt.Sprintf("/api/v1/orgs/%s/secrets/%s", orgID, secretID)
	if err := client.put(ctx, path, request, &secret); err != nil {
		return nil, fmt.Errorf("updating secret %s: %w", secretID, err)
	}
	return &secret, nil
}

// DeleteSecret deletes a secret.
func (client *Client) DeleteSecret(ctx context.Context, orgID, secretID uuid.UUID) error {
	path := fmt.Sprintf("/api/v1/orgs/%s/secrets/%s", orgID, secretID)
	if err := client.delete(ctx, path); err != nil {
		return fmt.Errorf("deleting secret %s: %w", secretID, err)
	}
	return nil
}
