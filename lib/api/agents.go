// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// agentName is the coding agent workflow exposed by the platform.
// There is exactly one today; the path segment leaves room for more.
const agentName = "nimbus-coder"

// StartAgent starts a coding agent workflow and returns its thread ID.
func (client *Client) StartAgent(ctx context.Context, request StartAgentRequest) (*StartAgentResponse, error) {
	var started StartAgentResponse
	path := fmt.Sprintf("/api/v1/agents/%s/start", agentName)
	if err := client.post(ctx, path, request, &started); err != nil {
		return nil, fmt.Errorf("starting agent: %w", err)
	}
	return &started, nil
}

// SendAgentPrompt feeds a follow-up prompt into a running thread.
func (client *Client) SendAgentPrompt(ctx context.Context, threadID string, request SendPromptRequest) (*SendPromptResponse, error) {
	var response SendPromptResponse
	path := fmt.Sprintf("/api/v1/agents/%s/%s/prompt", agentName, threadID)
	if err := client.post(ctx, path, request, &response); err != nil {
		return nil, fmt.Errorf("prompting agent thread %s: %w", threadID, err)
	}
	return &response, nil
}

// GetAgentState fetches the current snapshot of a workflow thread.
func (client *Client) GetAgentState(ctx context.Context, threadID string) (*AgentState, error) {
	var agentState AgentState
	path := fmt.Sprintf("/api/v1/agents/%s/%s/state", agentName, threadID)
	if err := client.get(ctx, path, &agentState); err != nil {
		return nil, fmt.Errorf("getting agent thread %s: %w", threadID, err)
	}
	return &agentState, nil
}

// StopAgent asks the server to stop a workflow thread.
func (client *Client) StopAgent(ctx context.Context, threadID string) (*StopWorkflowResponse, error) {
	var response StopWorkflowResponse
	path := fmt.Sprintf("/api/v1/agents/%s/%s/stop", agentName, threadID)
	if err := client.post(ctx, path, struct{}{}, &response); err != nil {
		return nil, fmt.Errorf("stopping agent thread %s: %w", threadID, err)
	}
	return &response, nil
}

// PullAgentLatest fetches the freshest state the server is willing to
// push for the thread, if any.
func (client *Client) PullAgentLatest(ctx context.Context, threadID string) (*PullLatestResponse, error) {
	var response PullLatestResponse
	path := fmt.Sprintf("/api/v1/agents/%s/%s/pull", agentName, threadID)
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("pulling agent thread %s: %w", threadID, err)
	}
	return &response, nil
}
