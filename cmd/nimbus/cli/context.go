// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/lib/api"
	"github.com/nimbus-cloud/nimbus/lib/resolve"
	"github.com/nimbus-cloud/nimbus/lib/settings"
	"github.com/nimbus-cloud/nimbus/lib/state"
)

// Context bundles everything a command handler needs for one
// invocation: the persisted state (loaded once), the path it was
// loaded from, the working directory key, the precedence resolver,
// and the instance settings.
type Context struct {
	State     *state.State
	StatePath string
	Dir       string
	Resolver  *resolve.Resolver
	Settings  *settings.Settings
}

// LoadContext loads the persisted state and instance settings and
// builds the resolver for the current working directory. State
// corruption is reported as-is so the user sees the offending path.
func LoadContext() (*Context, error) {
	statePath, err := state.DefaultPath()
	if err != nil {
		return nil, err
	}

	persisted, err := state.Load(statePath)
	if err != nil {
		return nil, err
	}

	dir, err := state.WorkingDirectoryKey()
	if err != nil {
		return nil, fmt.Errorf("determining working directory: %w", err)
	}

	instanceSettings, err := settings.Load()
	if err != nil {
		return nil, err
	}

	return &Context{
		State:     persisted,
		StatePath: statePath,
		Dir:       dir,
		Resolver:  resolve.New(persisted, dir),
		Settings:  instanceSettings,
	}, nil
}

// Client builds an authenticated API client using the resolved token.
// Returns ErrNotLoggedIn (wrapped by the resolver) when no token is
// available from any source.
func (c *Context) Client() (*api.Client, error) {
	token, err := c.Resolver.Token()
	if err != nil {
		return nil, err
	}
	return api.NewClient(api.Config{
		BaseURL: c.Settings.APIURL(),
		Token:   token,
		Logger:  NewLogger(),
	})
}

// AnonymousClient builds an API client with no credential attached.
// Used by commands that authenticate (login) rather than require
// authentication.
func (c *Context) AnonymousClient() (*api.Client, error) {
	return api.NewClient(api.Config{
		BaseURL: c.Settings.APIURL(),
		Logger:  NewLogger(),
	})
}

// Save persists the state back to the path it was loaded from.
func (c *Context) Save() error {
	return c.State.Save(c.StatePath)
}

// ScopeFlags holds the flag values that override the resolved
// organization and application scope. Commands that operate on scoped
// resources register these on their flag set and pass the values
// through to the resolver.
type ScopeFlags struct {
	Org string
	App string
}

// AddOrgFlag registers the --org override on the flag set.
func (s *ScopeFlags) AddOrgFlag(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&s.Org, "org", "", "organization ID (overrides the linked organization)")
}

// AddFlags registers both the --org and --app overrides.
func (s *ScopeFlags) AddFlags(flagSet *pflag.FlagSet) {
	s.AddOrgFlag(flagSet)
	flagSet.StringVar(&s.App, "app", "", "application ID (overrides the linked application)")
}
