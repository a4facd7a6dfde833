// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolve derives the effective token, organization, and
// application for one CLI invocation.
//
// Each field is resolved independently under a fixed precedence:
// explicit command flag, then environment variable, then persisted
// state (the credential for the token; the linked context of the
// current directory for org and app). A field with no source at any
// tier is a taxonomy error (ErrNotLoggedIn, ErrNoLinkedOrg,
// ErrNoLinkedApp), not a zero value.
//
// All precedence decisions live here so that a future tier (say, a
// project-level default file) touches exactly one package, and so the
// precedence matrix is tested once instead of per command.
package resolve

import (
	"os"

	"github.com/google/uuid"

	"github.com/nimbus-cloud/nimbus/lib/errdefs"
	"github.com/nimbus-cloud/nimbus/lib/state"
)

// Environment variables recognized by the resolver. These exist for
// automation (CI pipelines, scripts) where no interactive login or
// linked directory is available.
const (
	// EnvToken overrides the persisted credential's token.
	EnvToken = "NIMBUS_TOKEN"
	// EnvOrg overrides the linked organization. Must be a UUID.
	EnvOrg = "NIMBUS_ORG"
	// EnvApp overrides the linked application. Must be a UUID.
	EnvApp = "NIMBUS_APP"
)

// Resolver computes effective context values from persisted state, the
// process environment, and per-command flag overrides. It holds no
// mutable state of its own; construct one per invocation.
type Resolver struct {
	// State is the persisted CLI state, loaded once at process start.
	State *state.State

	// Dir is the canonical working-directory key used to look up the
	// linked context. Computed once via state.WorkingDirectoryKey.
	Dir string

	// LookupEnv reads an environment variable. Nil means os.LookupEnv;
	// tests inject a map-backed lookup for determinism.
	LookupEnv func(key string) (value string, ok bool)
}

// New returns a Resolver over the given state and directory key,
// reading the real process environment.
func New(persisted *state.State, dir string) *Resolver {
	return &Resolver{State: persisted, Dir: dir}
}

func (r *Resolver) lookupEnv(key string) (string, bool) {
	if r.LookupEnv != nil {
		return r.LookupEnv(key)
	}
	return os.LookupEnv(key)
}

// Token resolves the API token: NIMBUS_TOKEN, then the persisted
// credential. There is no flag tier for the token — commands never
// accept a token flag, to keep secrets out of shell history.
func (r *Resolver) Token() (string, error) {
	if token, ok := r.lookupEnv(EnvToken); ok {
		return token, nil
	}
	if r.State != nil && r.State.User != nil {
		return r.State.User.Token, nil
	}
	return "", errdefs.ErrNotLoggedIn
}

// Org resolves the organization ID: the explicit flag value (empty
// string means the flag was not passed), then NIMBUS_ORG, then the
// linked context for the current directory.
//
// A malformed UUID in the flag or the environment variable is a hard
// *errdefs.InvalidInputError — it never falls through to a lower tier.
// Silently ignoring a bad NIMBUS_ORG would mask misconfiguration in
// exactly the automation contexts the variable exists for.
func (r *Resolver) Org(explicit string) (uuid.UUID, error) {
	if explicit != "" {
		id, err := uuid.Parse(explicit)
		if err != nil {
			return uuid.Nil, errdefs.InvalidInput("organization ID %q is not a valid UUID", explicit)
		}
		return id, nil
	}

	if value, ok := r.lookupEnv(EnvOrg); ok {
		id, err := uuid.Parse(value)
		if err != nil {
			return uuid.Nil, errdefs.InvalidInput("%s %q is not a valid UUID", EnvOrg, value)
		}
		return id, nil
	}

	if r.State != nil {
		if linked, ok := r.State.LinkedFor(r.Dir); ok {
			return linked.OrgID, nil
		}
	}
	return uuid.Nil, errdefs.ErrNoLinkedOrg
}

// App resolves the application ID under the same precedence and
// malformed-input policy as Org. A linked directory whose context has
// no application counts as absent.
func (r *Resolver) App(explicit string) (uuid.UUID, error) {
	if explicit != "" {
		id, err := uuid.Parse(explicit)
		if err != nil {
			return uuid.Nil, errdefs.InvalidInput("application ID %q is not a valid UUID", explicit)
		}
		return id, nil
	}

	if value, ok := r.lookupEnv(EnvApp); ok {
		id, err := uuid.Parse(value)
		if err != nil {
			return uuid.Nil, errdefs.InvalidInput("%s %q is not a valid UUID", EnvApp, value)
		}
		return id, nil
	}

	if r.State != nil {
		if linked, ok := r.State.LinkedFor(r.Dir); ok && linked.AppID != nil {
			return *linked.AppID, nil
		}
	}
	return uuid.Nil, errdefs.ErrNoLinkedApp
}
