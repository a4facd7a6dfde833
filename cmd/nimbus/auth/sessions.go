// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
)

// SessionsCommand manages the account's authenticated sessions.
func SessionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "sessions",
		Summary: "Manage authenticated sessions",
		Subcommands: []*cli.Command{
			sessionsListCommand(),
			sessionsRenewCommand(),
			sessionsRevokeCommand(),
		},
	}
}

func sessionsListCommand() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List sessions for the account",
		Usage:   "nimbus sessions list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			response, err := client.ListSessions(context.Background())
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Sessions)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tCREATED\tEXPIRES\tSOURCE")
			for _, session := range response.Sessions {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
					session.ID,
					session.CreatedAt.Format("2006-01-02 15:04"),
					session.ExpiresAt.Format("2006-01-02 15:04"),
					session.SourceIP)
			}
			return writer.Flush()
		},
	}
}

func sessionsRenewCommand() *cli.Command {
	return &cli.Command{
		Name:    "renew",
		Summary: "Exchange the current session for a fresh one",
		Description: `Exchange the current session token for a fresh one. The old session
is revoked by the server. When the credential came from the state file
it is updated in place; a token supplied via environment is printed
instead, since the CLI cannot rotate it for you.`,
		Usage: "nimbus sessions renew",
		Run: func(args []string) error {
			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			resolvedToken, err := invocation.Resolver.Token()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			renewed, err := client.RenewSession(context.Background())
			if err != nil {
				return err
			}

			// Rotate in place only when the session renewed was the
			// persisted credential's. A token from NIMBUS_TOKEN can
			// belong to a different account; writing its replacement
			// into the state file would pair it with the wrong identity.
			if user := invocation.State.User; user != nil && user.Token == resolvedToken {
				user.Token = renewed.Session
				if err := invocation.Save(); err != nil {
					return err
				}
				fmt.Printf("Session renewed (revoked %s).\n", renewed.RevokedID)
				return nil
			}

			fmt.Printf("Session renewed (revoked %s). New token:\n%s\n", renewed.RevokedID, renewed.Session)
			return nil
		},
	}
}

func sessionsRevokeCommand() *cli.Command {
	return &cli.Command{
		Name:    "revoke",
		Summary: "Revoke a session by ID",
		Usage:   "nimbus sessions revoke <session-id>",
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one session ID argument")
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			if err := client.DeleteSession(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Revoked session %s.\n", args[0])
			return nil
		},
	}
}
