// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete nimbus CLI command tree.
package commands

import (
	"fmt"

	agentcmd "github.com/nimbus-cloud/nimbus/cmd/nimbus/agent"
	appcmd "github.com/nimbus-cloud/nimbus/cmd/nimbus/app"
	authcmd "github.com/nimbus-cloud/nimbus/cmd/nimbus/auth"
	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	databasecmd "github.com/nimbus-cloud/nimbus/cmd/nimbus/database"
	eventcmd "github.com/nimbus-cloud/nimbus/cmd/nimbus/event"
	linkcmd "github.com/nimbus-cloud/nimbus/cmd/nimbus/link"
	orgcmd "github.com/nimbus-cloud/nimbus/cmd/nimbus/org"
	secretcmd "github.com/nimbus-cloud/nimbus/cmd/nimbus/secret"
	"github.com/nimbus-cloud/nimbus/lib/version"
)

// Root builds and returns the complete nimbus CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "nimbus",
		Description: `Nimbus: deploy and operate apps on the Nimbus cloud platform.

Authenticate with 'nimbus login', link a project directory with
'nimbus link', then manage apps, secrets, and databases in that
context.`,
		Subcommands: []*cli.Command{
			authcmd.LoginCommand(),
			authcmd.LogoutCommand(),
			authcmd.WhoAmICommand(),
			authcmd.SessionsCommand(),
			linkcmd.LinkCommand(),
			linkcmd.UnlinkCommand(),
			orgcmd.Command(),
			appcmd.Command(),
			secretcmd.Command(),
			databasecmd.Command(),
			eventcmd.Command(),
			agentcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("nimbus %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
