// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListOrgs returns the organizations visible to the token.
func (client *Client) ListOrgs(ctx context.Context) (*ListOrgsResponse, error) {
	var response ListOrgsResponse
	if err := client.get(ctx, "/api/v1/orgs", &response); err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return &response, nil
}

// CreateOrg creates an organization.
func (client *Client) CreateOrg(ctx context.Context, request CreateOrgRequest) (*Organization, error) {
	var org Organization
	if err := client.post(ctx, "/api/v1/orgs", request, &org); err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}
	return &org, nil
}

// GetOrg retrieves one organization by ID.
func (client *Client) GetOrg(ctx context.Context, id uuid.UUID) (*Organization, error) {
	var org Organization
	path := fmt.Sprintf("/api/v1/orgs/%s", id)
	if err := client.get(ctx, path, &org); err != nil {
		return nil, fmt.Errorf("getting organization %s: %w", id, err)
	}
	return &org, nil
}

// ListOrgMembers returns an organization's members.
func (client *Client) ListOrgMembers(ctx context.Context, orgID uuid.UUID) (*ListOrgMembersResponse, error) {
	var response ListOrgMembersResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/members", orgID)
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("listing members of %s: %w", orgID, err)
	}
	return &response, nil
}

// AddOrgMember adds an existing user to an organization.
func (client *Client) AddOrgMember(ctx context.Context, orgID uuid.UUID, request AddOrgMemberRequest) (*OrgMember, error) {
	var member OrgMember
	path := fmt.Sprintf("/api/v1/orgs/%s/members", orgID)
	if err := client.post(ctx, path, request, &member); err != nil {
		return nil, fmt.Errorf("adding member to %s: %w", orgID, err)
	}
	return &member, nil
}

// ListOrgKeys returns an organization's API keys (hashes only).
func (client *Client) ListOrgKeys(ctx context.Context, orgID uuid.UUID) (*ListOrgKeysResponse, error) {
	var response ListOrgKeysResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/keys", orgID)
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("listing keys of %s: %w", orgID, err)
	}
	return &response, nil
}

// CreateOrgKey creates an API key. The response is the only time the
// plaintext key is available.
func (client *Client) CreateOrgKey(ctx context.Context, orgID uuid.UUID, request CreateOrgKeyRequest) (*CreatedOrgKey, error) {
	var created CreatedOrgKey
	path := fmt.Sprintf("/api/v1/orgs/%s/keys", orgID)
	if err := client.post(ctx, path, request, &created); err != nil {
		return nil, fmt.Errorf("creating key for %s: %w", orgID, err)
	}
	return &created, nil
}

// DeleteOrgKey revokes an API key.
func (client *Client) DeleteOrgKey(ctx context.Context, orgID, keyID uuid.UUID) error {
	path := fmt.Sprintf("/api/v1/orgs/%s/keys/%s", orgID, keyID)
	if err := client.delete(ctx, path); err != nil {
		return fmt.Errorf("deleting key %s: %w", keyID, err)
	}
	return nil
}
