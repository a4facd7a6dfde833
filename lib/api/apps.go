// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListApps returns an organization's applications.
func (client *Client) ListApps(ctx context.Context, orgID uuid.UUID) (*ListAppsResponse, error) {
	var response ListAppsResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/apps", orgID)
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("listing apps of %s: %w", orgID, err)
	}
	return &response, nil
}

// CreateApp creates an application in an organization.
func (client *Client) CreateApp(ctx context.Context, orgID uuid.UUID, request CreateAppRequest) (*App, error) {
	var app App
	path := fmt.Sprintf("/api/v1/orgs/%s/apps", orgID)
	if err := client.post(ctx, path, request, &app); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	return &app, nil
}

// GetApp retrieves one application.
func (client *Client) GetApp(ctx context.Context, orgID, appID uuid.UUID) (*App, error) {
	var app App
	path := fmt.Sprintf("/api/v1/orgs/%s/apps/%s", orgID, appID)
	if err := client.get(ctx, path, &app); err != nil {
		return nil, fmt.Errorf("getting app %s: %w", appID, err)
	}
	return &app, nil
}

// UpdateApp updates an application.
func (client *Client) UpdateApp(ctx context.Context, orgID, appID uuid.UUID, request UpdateAppRequest) (*App, error) {
	var app App
	path := fmt.Sprintf("/api/v1/orgs/%s/apps/%s", orgID, appID)
	if err := client.put(ctx, path, request, &app); err != nil {
		return nil, fmt.Errorf("updating app %s: %w", appID, err)
	}
	return &app, nil
}

// DeleteApp deletes an application and its deployments.
func (client *Client) DeleteApp(ctx context.Context, orgID, appID uuid.UUID) error {
	path := fmt.Sprintf("/api/v1/orgs/%s/apps/%s", orgID, appID)
	if err := client.delete(ctx, path); err != nil {
		return fmt.Errorf("deleting app %s: %w", appID, err)
	}
	return nil
}

// ListDeployments returns an application's deployments.
func (client *Client) ListDeployments(ctx context.Context, orgID, appID uuid.UUID) (*ListDeploymentsResponse, error) {
	var response ListDeploymentsResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/apps/%s/deployments", orgID, appID)
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("listing deployments of %s: %w", appID, err)
	}
	return &response, nil
}

// GetDeployment retrieves one deployment, including its progress events.
func (client *Client) GetDeployment(ctx context.Context, orgID, appID, deploymentID uuid.UUID) (*Deployment, error) {
	var deployment Deployment
	path := fmt.Sprintf("/api/v1/orgs/%s/apps/%s/deployments/%s", orgID, appID, deploymentID)
	if err := client.get(ctx, path, &deployment); err != nil {
		return nil, fmt.Errorf("getting deployment %s: %w", deploymentID, err)
	}
	return &deployment, nil
}

// GetLogs returns an application's recent runtime logs, newest last.
// A limit of 0 means the server default.
func (client *Client) GetLogs(ctx context.Context, orgID, appID uuid.UUID, limit int) (*ListLogsResponse, error) {
	var response ListLogsResponse
	path := fmt.Sprintf("/api/v1/orgs/%s/apps/%s/logs", orgID, appID)
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("getting logs of %s: %w", appID, err)
	}
	return &response, nil
}
