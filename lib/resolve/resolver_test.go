// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/nimbus-cloud/nimbus/lib/errdefs"
	"github.com/nimbus-cloud/nimbus/lib/state"
)

const projectDir = "/home/dev/project"

// testResolver builds a resolver over the given state with a map-backed
// environment, so tests never touch the real process environment.
func testResolver(persisted *state.State, env map[string]string) *Resolver {
	resolver := New(persisted, projectDir)
	resolver.LookupEnv = func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
	return resolver
}

func linkedState(orgID uuid.UUID, appID *uuid.UUID) *state.State {
	persisted := state.New()
	linked := state.LinkedContext{OrgID: orgID, OrgName: "acme"}
	if appID != nil {
		linked.AppID = appID
		name := "checkout"
		linked.AppName = &name
	}
	persisted.SetLinked(projectDir, linked)
	return persisted
}

func TestTokenPrecedence(t *testing.T) {
	persisted := state.New()
	persisted.SetCredential("persisted-token", uuid.New(), "dev@example.com")

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"environment wins over persisted", map[string]string{EnvToken: "env-token"}, "env-token"},
		{"persisted when no environment", nil, "persisted-token"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			token, err := testResolver(persisted, test.env).Token()
			if err != nil {
				t.Fatalf("Token: %v", err)
			}
			if token != test.want {
				t.Errorf("token = %q, want %q", token, test.want)
			}
		})
	}
}

func TestTokenNotLoggedIn(t *testing.T) {
	_, err := testResolver(state.New(), nil).Token()
	if !errors.Is(err, errdefs.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestOrgPrecedence(t *testing.T) {
	flagID := uuid.New()
	envID := uuid.New()
	linkedID := uuid.New()

	tests := []struct {
		name     string
		explicit string
		env      map[string]string
		want     uuid.UUID
	}{
		{"flag wins over everything", flagID.String(), map[string]string{EnvOrg: envID.String()}, flagID},
		{"environment wins over linked", "", map[string]string{EnvOrg: envID.String()}, envID},
		{"linked when nothing else", "", nil, linkedID},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resolver := testResolver(linkedState(linkedID, nil), test.env)
			orgID, err := resolver.Org(test.explicit)
			if err != nil {
				t.Fatalf("Org: %v", err)
			}
			if orgID != test.want {
				t.Errorf("org = %s, want %s", orgID, test.want)
			}
		})
	}
}

func TestOrgMalformedFlagIsHardError(t *testing.T) {
	resolver := testResolver(linkedState(uuid.New(), nil), nil)

	_, err := resolver.Org("not-a-uuid")
	if !errdefs.IsInvalidInput(err) {
		t.Errorf("expected InvalidInputError, got %v", err)
	}
}

func TestOrgMalformedEnvironmentDoesNotFallThrough(t *testing.T) {
	// A linked context exists, but the bad NIMBUS_ORG must surface as an
	// error rather than being silently ignored.
	resolver := testResolver(linkedState(uuid.New(), nil), map[string]string{EnvOrg: "banana"})

	_, err := resolver.Org("")
	if !errdefs.IsInvalidInput(err) {
		t.Errorf("expected InvalidInputError, got %v", err)
	}
}

func TestOrgNoSource(t *testing.T) {
	_, err := testResolver(state.New(), nil).Org("")
	if !errors.Is(err, errdefs.ErrNoLinkedOrg) {
		t.Errorf("expected ErrNoLinkedOrg, got %v", err)
	}
}

func TestAppPrecedence(t *testing.T) {
	flagID := uuid.New()
	envID := uuid.New()
	linkedAppID := uuid.New()

	tests := []struct {
		name     string
		explicit string
		env      map[string]string
		want     uuid.UUID
	}{
		{"flag wins", flagID.String(), map[string]string{EnvApp: envID.String()}, flagID},
		{"environment wins over linked", "", map[string]string{EnvApp: envID.String()}, envID},
		{"linked app when nothing else", "", nil, linkedAppID},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resolver := testResolver(linkedState(uuid.New(), &linkedAppID), test.env)
			appID, err := resolver.App(test.explicit)
			if err != nil {
				t.Fatalf("App: %v", err)
			}
			if appID != test.want {
				t.Errorf("app = %s, want %s", appID, test.want)
			}
		})
	}
}

func TestAppLinkedOrgWithoutApp(t *testing.T) {
	// The directory is linked to an org but not to an app: App must
	// report ErrNoLinkedApp, not fall back to some zero value.
	resolver := testResolver(linkedState(uuid.New(), nil), nil)

	_, err := resolver.App("")
	if !errors.Is(err, errdefs.ErrNoLinkedApp) {
		t.Errorf("expected ErrNoLinkedApp, got %v", err)
	}
}

func TestAppMalformedEnvironment(t *testing.T) {
	appID := uuid.New()
	resolver := testResolver(linkedState(uuid.New(), &appID), map[string]string{EnvApp: "nope"})

	_, err := resolver.App("")
	if !errdefs.IsInvalidInput(err) {
		t.Errorf("expected InvalidInputError, got %v", err)
	}
}

func TestFieldsResolveIndependently(t *testing.T) {
	// Token from environment, org from the linked context: mixing tiers
	// across fields is allowed.
	linkedID := uuid.New()
	resolver := testResolver(linkedState(linkedID, nil), map[string]string{EnvToken: "env-token"})

	token, err := resolver.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "env-token" {
		t.Errorf("token = %q, want %q", token, "env-token")
	}

	orgID, err := resolver.Org("")
	if err != nil {
		t.Fatalf("Org: %v", err)
	}
	if orgID != linkedID {
		t.Errorf("org = %s, want %s", orgID, linkedID)
	}
}
