// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"time"

	"github.com/google/uuid"
)

// List endpoints wrap their items in a named envelope field (e.g.
// {"apps": [...]}) rather than a bare array. The envelope names are a
// server contract and must not change.

// User is a platform account.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DefaultOrg  *uuid.UUID `json:"default_org,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	TwoFactor   *bool      `json:"two_factor,omitempty"`
}

// CreateUserRequest creates a new account.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateSessionRequest authenticates with either email/password or an
// existing session token, optionally scoped to one organization.
type CreateSessionRequest struct {
	Email          *string    `json:"email,omitempty"`
	Password       *string    `json:"password,omitempty"`
	Session        *string    `json:"session,omitempty"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
}

// CreatedSession is the opaque session token returned by login.
type CreatedSession struct {
	Session string `json:"session"`
}

// RenewedSession is a fresh session token plus the ID of the session
// it revoked.
type RenewedSession struct {
	Session   string    `json:"session"`
	RevokedID uuid.UUID `json:"revoked_id"`
}

// Session describes one authenticated session.
type Session struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	SourceIP  string     `json:"source_ip"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	OrgScope  *uuid.UUID `json:"org_scope,omitempty"`
}

// ListSessionsResponse wraps the sessions list envelope.
type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

// Organization is a billing and access boundary owning apps, secrets,
// keys, and databases.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListOrgsResponse wraps the organizations list envelope.
type ListOrgsResponse struct {
	Organizations []Organization `json:"organizations"`
}

// CreateOrgRequest creates a new organization.
type CreateOrgRequest struct {
	Name string `json:"name"`
}

// OrgMember is a user's membership in an organization.
type OrgMember struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	UserID    uuid.UUID  `json:"user_id"`
	OrgID     uuid.UUID  `json:"org_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ListOrgMembersResponse wraps the members list envelope.
type ListOrgMembersResponse struct {
	Members []OrgMember `json:"members"`
}

// AddOrgMemberRequest adds an existing user to an organization.
type AddOrgMemberRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// OrgKey is a stored API key. Only the hash is retained server-side;
// the key material itself appears once, in CreatedOrgKey.
type OrgKey struct {
	ID        uuid.UUID `json:"id"`
	OrgID     uuid.UUID `json:"org_id"`
	KeyHash   string    `json:"key_hash"`
	CreatedAt time.Time `json:"created_at"`
}

// ListOrgKeysResponse wraps the keys list envelope.
type ListOrgKeysResponse struct {
	Keys []OrgKey `json:"keys"`
}

// CreateOrgKeyRequest creates an API key, optionally expiring.
type CreateOrgKeyRequest struct {
	Expiration *time.Time `json:"expiration,omitempty"`
}

// CreatedOrgKey carries the plaintext key. It is shown to the user
// exactly once and cannot be recovered afterward.
type CreatedOrgKey struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

// App is a deployed application.
type App struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Spec           *AppSpec  `json:"spec,omitempty"`
}

// AppSpec describes what an app runs.
type AppSpec struct {
	Containers []ContainerSpec `json:"containers"`
}

// ContainerSpec is one container in an app spec.
type ContainerSpec struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Port  uint16 `json:"port"`
}

// ListAppsResponse wraps the apps list envelope.
type ListAppsResponse struct {
	Apps []App `json:"apps"`
}

// CreateAppRequest creates an application.
type CreateAppRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Spec        AppSpec `json:"spec"`
}

// UpdateAppRequest updates an application. Only non-nil fields are sent.
type UpdateAppRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Spec        *AppSpec `json:"spec,omitempty"`
}

// DeploymentStatus is the lifecycle state of a deployment.
type DeploymentStatus string

// Deployment lifecycle states.
const (
	DeploymentCreated    DeploymentStatus = "created"
	DeploymentInProgress DeploymentStatus = "in_progress"
	DeploymentDeployed   DeploymentStatus = "deployed"
	DeploymentSuccess    DeploymentStatus = "success"
	DeploymentFailed     DeploymentStatus = "failed"
)

func (s DeploymentStatus) String() string {
	return string(s)
}

// Deployment is one rollout of an app.
type Deployment struct {
	ID             uuid.UUID         `json:"id"`
	AppID          uuid.UUID         `json:"app_id"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Status         DeploymentStatus  `json:"status"`
	FailureMessage *string           `json:"failure_message,omitempty"`
	Events         []DeploymentEvent `json:"events,omitempty"`
}

// DeploymentEvent is one progress record within a deployment.
type DeploymentEvent struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}

// ListDeploymentsResponse wraps the deployments list envelope.
type ListDeploymentsResponse struct {
	Deployments []Deployment `json:"deployments"`
}

// Secret is a named value available to an org's apps. Value is only
// populated when fetching a single secret, never in listings.
type Secret struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Value          *string    `json:"value,omitempty"`
	Description    *string    `json:"description,omitempty"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ListSecretsResponse wraps the secrets list envelope.
type ListSecretsResponse struct {
	Secrets []Secret `json:"secrets"`
}

// CreateSecretRequest creates a secret.
type CreateSecretRequest struct {
	Name        string  `json:"name"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

// UpdateSecretRequest updates a secret. Only non-nil fields are sent.
type UpdateSecretRequest struct {
	Name        *string `json:"name,omitempty"`
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Event is one audit-log entry for an organization.
type Event struct {
	ID             uuid.UUID      `json:"id"`
	Type           string         `json:"type"`
	Actor          EventActor     `json:"actor"`
	Resource       EventResource  `json:"resource"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	OrganizationID uuid.UUID      `json:"organization_id"`
	CreatedAt      time.Time      `json:"created_at"`
}

// EventActor identifies who performed an event.
type EventActor struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// EventResource identifies what an event acted on.
type EventResource struct {
	Type string    `json:"type"`
	ID   uuid.UUID `json:"id"`
	Name *string   `json:"name,omitempty"`
}

// ListEventsResponse wraps the events list envelope. NextBefore, when
// set, is the cursor for fetching older events.
type ListEventsResponse struct {
	Events     []Event    `json:"events"`
	NextBefore *time.Time `json:"next_before,omitempty"`
}

// LogLevel is the severity of a log entry.
type LogLevel string

// Log severities.
const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// String returns the conventional upper-case rendering for display.
func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	}
	return string(l)
}

// LogEntry is one line of an app's runtime logs.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     LogLevel       `json:"level"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ListLogsResponse wraps the logs list envelope.
type ListLogsResponse struct {
	Logs       []LogEntry `json:"logs"`
	NextBefore *time.Time `json:"next_before,omitempty"`
}

// Database is a managed Postgres instance.
type Database struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	Compute        DatabaseCompute  `json:"compute"`
	Storage        DatabaseStorage  `json:"storage"`
	Replicas       DatabaseReplicas `json:"replicas"`
	Postgres       DatabasePostgres `json:"postgres"`
	Status         *DatabaseStatus  `json:"status,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// DatabaseCompute is the requested CPU/memory allocation.
type DatabaseCompute struct {
	Requested ComputeRequested `json:"requested"`
}

// ComputeRequested holds quantity strings (e.g. "2", "4Gi").
type ComputeRequested struct {
	VCPU   string `json:"vcpu"`
	Memory string `json:"memory"`
}

// DatabaseStorage is the requested disk allocation.
type DatabaseStorage struct {
	Requested StorageRequested `json:"requested"`
}

// StorageRequested holds the disk quantity string.
type StorageRequested struct {
	DiskSpace string `json:"disk_space"`
}

// DatabaseReplicas is the requested replica count.
type DatabaseReplicas struct {
	Requested int `json:"requested"`
}

// DatabasePostgres pins the Postgres major version.
type DatabasePostgres struct {
	MajorVersion int `json:"major_version"`
}

// DatabaseState is the provisioning state of a database.
type DatabaseState string

// Database provisioning states.
const (
	DatabaseInitializing DatabaseState = "Initializing"
	DatabaseReady        DatabaseState = "Ready"
	DatabasePaused       DatabaseState = "Paused"
	DatabaseStopping     DatabaseState = "Stopping"
	DatabaseError        DatabaseState = "Error"
)

func (s DatabaseState) String() string {
	return string(s)
}

// DatabaseStatus wraps the state field.
type DatabaseStatus struct {
	State DatabaseState `json:"state"`
}

// ListDatabasesResponse wraps the databases list envelope.
type ListDatabasesResponse struct {
	Databases []Database `json:"databases"`
}

// CreateDatabaseRequest provisions a database.
type CreateDatabaseRequest struct {
	Name     string           `json:"name"`
	Compute  DatabaseCompute  `json:"compute"`
	Storage  DatabaseStorage  `json:"storage"`
	Replicas DatabaseReplicas `json:"replicas"`
	Postgres DatabasePostgres `json:"postgres"`
}

// UpdateDatabaseRequest resizes a database. Only non-nil fields are sent.
type UpdateDatabaseRequest struct {
	Name     *string           `json:"name,omitempty"`
	Compute  *DatabaseCompute  `json:"compute,omitempty"`
	Storage  *DatabaseStorage  `json:"storage,omitempty"`
	Replicas *DatabaseReplicas `json:"replicas,omitempty"`
}

// StartAgentRequest starts a coding agent workflow from an initial
// prompt. Everything beyond the prompt is an optional hint.
type StartAgentRequest struct {
	Prompt              string            `json:"prompt"`
	ProjectName         *string           `json:"project_name,omitempty"`
	IncludeGitHub       *bool             `json:"include_github,omitempty"`
	ParallelMode        *bool             `json:"parallel_mode,omitempty"`
	AccessibilityTarget *string           `json:"accessibility_target,omitempty"`
	TechStack           *TechStack        `json:"tech_stack,omitempty"`
	ColorPreferences    *ColorPreferences `json:"color_preferences,omitempty"`
}

// TechStack constrains the stack the agent builds with.
type TechStack struct {
	Backend  *StackConfig `json:"backend,omitempty"`
	Frontend *StackConfig `json:"frontend,omitempty"`
	Database *string      `json:"database,omitempty"`
}

// StackConfig picks a framework and language for one tier.
type StackConfig struct {
	Stack    *string `json:"stack,omitempty"`
	Language *string `json:"language,omitempty"`
}

// ColorPreferences seeds the agent's visual design choices.
type ColorPreferences struct {
	Type           string  `json:"type"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
}

// StartAgentResponse identifies the workflow thread just started.
type StartAgentResponse struct {
	ThreadID string `json:"thread_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// SendPromptRequest feeds a follow-up prompt into a running thread.
type SendPromptRequest struct {
	Prompt string `json:"prompt"`
}

// SendPromptResponse acknowledges a follow-up prompt.
type SendPromptResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StopWorkflowResponse acknowledges a stop request.
type StopWorkflowResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PullLatestResponse carries the freshest agent state, when the server
// has one to give.
type PullLatestResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	State   *AgentState `json:"state,omitempty"`
}

// AgentState is the full snapshot of one workflow thread. Almost every
// field is optional: the server fills them in as the workflow
// progresses through its phases.
type AgentState struct {
	ThreadID          string            `json:"thread_id"`
	IsWorking         bool              `json:"is_working"`
	Status            *string           `json:"status,omitempty"`
	Phase             *string           `json:"phase,omitempty"`
	AppID             *uuid.UUID        `json:"app_uuid,omitempty"`
	AppDomainName     *string           `json:"app_domain_name,omitempty"`
	AppContext        *AppContext       `json:"app_context,omitempty"`
	Messages          []AgentMessage    `json:"messages,omitempty"`
	Files             map[string]string `json:"files,omitempty"`
	ContainerInfo     *ContainerInfo    `json:"container_info,omitempty"`
	Deployment        *AgentDeployment  `json:"deployment,omitempty"`
	Progress          *ProgressInfo     `json:"progress,omitempty"`
	Plan              *AgentPlan        `json:"plan,omitempty"`
	BrandKit          *BrandKit         `json:"brand_kit,omitempty"`
	GitHubRepoURL     *string           `json:"github_repo_url,omitempty"`
	GitHubRepoName    *string           `json:"github_repo_name,omitempty"`
	GitHubRepoCreated *bool             `json:"github_repo_created,omitempty"`
	TestsPassed       *int              `json:"tests_passed,omitempty"`
	TestsFailed       *int              `json:"tests_failed,omitempty"`
	TestsRan          *int              `json:"tests_ran,omitempty"`
}

// AppContext is what the agent believes the app is for.
type AppContext struct {
	Name        *string `json:"name,omitempty"`
	Goal        *string `json:"goal,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AgentMessage is one entry in the thread's transcript.
type AgentMessage struct {
	Type      string  `json:"type"`
	Content   *string `json:"content,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"`
}

// ContainerInfo describes the sandbox the agent is building in.
type ContainerInfo struct {
	ContainerID    *string `json:"container_id,omitempty"`
	SandboxID      *string `json:"sandbox_id,omitempty"`
	AppRelativeDir *string `json:"app_relative_dir,omitempty"`
	FrontendPort   *int    `json:"frontend_port,omitempty"`
	BackendPort    *int    `json:"backend_port,omitempty"`
	TestingPort    *int    `json:"testing_port,omitempty"`
	FrontendURL    *string `json:"frontend_url,omitempty"`
	BackendURL     *string `json:"backend_url,omitempty"`
	TestingURL     *string `json:"testing_url,omitempty"`
	IsHealthy      *bool   `json:"is_healthy,omitempty"`
}

// AgentDeployment describes where the agent deployed the app.
type AgentDeployment struct {
	URL       *string `json:"url,omitempty"`
	Status    *string `json:"status,omitempty"`
	FilesPath *string `json:"files_path,omitempty"`
	Port      *int    `json:"port,omitempty"`
}

// ProgressInfo is the agent's own progress estimate.
type ProgressInfo struct {
	Percentage   *float64 `json:"percentage,omitempty"`
	CurrentStage *int     `json:"current_stage,omitempty"`
	TotalStages  *int     `json:"total_stages,omitempty"`
}

// AgentPlan is the staged work plan the agent is executing.
type AgentPlan struct {
	Context      *string          `json:"context,omitempty"`
	Stages       []AgentPlanStage `json:"stages,omitempty"`
	CurrentStage *int             `json:"current_stage,omitempty"`
}

// AgentPlanStage is one stage of the plan, split into work lanes.
type AgentPlanStage struct {
	Description *string             `json:"description,omitempty"`
	Lanes       []AgentPlanWorkLane `json:"lanes,omitempty"`
}

// AgentPlanWorkLane is one independent strand of work within a stage.
type AgentPlanWorkLane struct {
	Description *string  `json:"description,omitempty"`
	Parts       []string `json:"parts,omitempty"`
	TargetFiles []string `json:"target_files,omitempty"`
	IsComplete  *bool    `json:"is_complete,omitempty"`
}

// BrandKit is the visual identity the agent settled on.
type BrandKit struct {
	Colors           map[string]string `json:"colors,omitempty"`
	FontFamily       *string           `json:"font_family,omitempty"`
	CompanyName      *string           `json:"company_name,omitempty"`
	LogoPublicURLs   []string          `json:"logo_public_urls,omitempty"`
	HeroPublicURLs   []string          `json:"hero_public_urls,omitempty"`
	PrimaryLogoIndex *int              `json:"primary_logo_index,omitempty"`
	PrimaryLogoURL   *string           `json:"primary_logo_url,omitempty"`
}
