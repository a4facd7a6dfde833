// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package org implements the organization commands: listing and
// creating organizations, managing members, and managing API keys.
package org

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/api"
)

// Command returns the "orgs" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "orgs",
		Summary: "Manage organizations",
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
			getCommand(),
			membersCommand(),
			keysCommand(),
		},
	}
}

func listCommand() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List organizations you belong to",
		Usage:   "nimbus orgs list [flags]",
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

			response, err := client.ListOrgs(context.Background())
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Organizations)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tCREATED")
			for _, org := range response.Organizations {
				fmt.Fprintf(writer, "%s\t%s\t%s\n",
					org.ID, org.Name, org.CreatedAt.Format("2006-01-02"))
			}
			return writer.Flush()
		},
	}
}

func createCommand() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:    "create",
		Summary: "Create an organization",
		Usage:   "nimbus orgs create <name> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one name argument")
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			org, err := client.CreateOrg(context.Background(), api.CreateOrgRequest{Name: args[0]})
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(org)
			}

			fmt.Printf("Created organization %s (%s)\n", org.Name, org.ID)
			return nil
		},
	}
}

func getCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "get",
		Summary: "Show one organization",
		Usage:   "nimbus orgs get [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("get", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
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

			org, err := client.GetOrg(context.Background(), orgID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(org)
			}

			fmt.Printf("Name:    %s\n", org.Name)
			fmt.Printf("ID:      %s\n", org.ID)
			fmt.Printf("Created: %s\n", org.CreatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}
