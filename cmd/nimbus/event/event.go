// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package event implements the audit event listing command.
package event

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
)

// Command returns the "events" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "events",
		Summary: "Inspect the organization audit log",
		Subcommands: []*cli.Command{
			listCommand(),
		},
	}
}

func listCommand() *cli.Command {
	var scope cli.ScopeFlags
	var limit int
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List recent audit events",
		Usage:   "nimbus events list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			flagSet.IntVar(&limit, "limit", 0, "maximum number of events (server default when zero)")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			orgID, err := invocation.Resolver.Org(scope.Org)
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			response, err := client.ListEvents(context.Background(), orgID, limit)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Events)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "TIME\tTYPE\tACTOR\tRESOURCE")
			for _, event := range response.Events {
				resource := event.Resource.Type
				if event.Resource.Name != nil {
					resource = fmt.Sprintf("%s %s", event.Resource.Type, *event.Resource.Name)
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
					event.CreatedAt.Format("2006-01-02 15:04"),
					event.Type, event.Actor.Email, resource)
			}
			return writer.Flush()
		},
	}
}
