// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package link associates the current working directory with an
// organization (and optionally an application) so that later commands
// run in that context without flags.
package link

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/errdefs"
	"github.com/nimbus-cloud/nimbus/lib/state"
)

// LinkCommand links the current directory to an organization and
// optionally an application. The names are fetched from the API at
// link time so that listings and prompts can show them without a
// network round trip later.
func LinkCommand() *cli.Command {
	var orgFlag string
	var appFlag string

	return &cli.Command{
		Name:    "link",
		Summary: "Link this directory to an organization and app",
		Description: `Link the current directory to an organization, and optionally to an
application within it. Linked context is used by scoped commands when
no --org/--app flag or environment variable is present.

Without flags, shows the current directory's linked context.`,
		Usage: "nimbus link [--org <id> [--app <id>]]",
		Examples: []cli.Example{
			{Description: "Link to an organization", Command: "nimbus link --org 6f1b8d0e-6c1a-4f6e-9f2a-3d8c5b7a1e42"},
			{Description: "Show the current link", Command: "nimbus link"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("link", pflag.ContinueOnError)
			flagSet.StringVar(&orgFlag, "org", "", "organization ID to link")
			flagSet.StringVar(&appFlag, "app", "", "application ID to link (requires --org)")
			return flagSet
		},
		Run: func(args []string) error {
			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}

			if orgFlag == "" {
				if appFlag != "" {
					return errdefs.InvalidInput("--app requires --org")
				}
				return showLink(invocation)
			}

			orgID, err := uuid.Parse(orgFlag)
			if err != nil {
				return errdefs.InvalidInput("organization ID %q is not a valid UUID", orgFlag)
			}

			client, err := invocation.Client()
			if err != nil {
				return err
			}

			// Fetch at link time so the stored context carries display
			// names, and so a typo'd ID fails here instead of on every
			// later command.
			ctx := context.Background()
			org, err := client.GetOrg(ctx, orgID)
			if err != nil {
				return err
			}

			linked := state.LinkedContext{OrgID: org.ID, OrgName: org.Name}

			if appFlag != "" {
				appID, err := uuid.Parse(appFlag)
				if err != nil {
					return errdefs.InvalidInput("application ID %q is not a valid UUID", appFlag)
				}
				app, err := client.GetApp(ctx, org.ID, appID)
				if err != nil {
					return err
				}
				linked.AppID = &app.ID
				linked.AppName = &app.Name
			}

			invocation.State.SetLinked(invocation.Dir, linked)
			if err := invocation.Save(); err != nil {
				return err
			}

			if linked.AppName != nil {
				fmt.Printf("Linked %s to %s / %s\n", invocation.Dir, linked.OrgName, *linked.AppName)
			} else {
				fmt.Printf("Linked %s to %s\n", invocation.Dir, linked.OrgName)
			}
			return nil
		},
	}
}

func showLink(invocation *cli.Context) error {
	linked, ok := invocation.State.LinkedFor(invocation.Dir)
	if !ok {
		fmt.Printf("No linked context for %s\n", invocation.Dir)
		return nil
	}

	fmt.Printf("Organization: %s (%s)\n", linked.OrgName, linked.OrgID)
	if linked.AppID != nil {
		name := ""
		if linked.AppName != nil {
			name = *linked.AppName
		}
		fmt.Printf("Application:  %s (%s)\n", name, *linked.AppID)
	}
	return nil
}

// UnlinkCommand removes the current directory's linked context.
func UnlinkCommand() *cli.Command {
	return &cli.Command{
		Name:    "unlink",
		Summary: "Remove this directory's linked context",
		Usage:   "nimbus unlink",
		Run: func(args []string) error {
			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}

			if _, ok := invocation.State.LinkedFor(invocation.Dir); !ok {
				fmt.Printf("No linked context for %s\n", invocation.Dir)
				return nil
			}

			invocation.State.ClearLinked(invocation.Dir)
			if err := invocation.Save(); err != nil {
				return err
			}

			fmt.Printf("Unlinked %s\n", invocation.Dir)
			return nil
		},
	}
}
