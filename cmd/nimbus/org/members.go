// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package org

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/api"
	"github.com/nimbus-cloud/nimbus/lib/errdefs"
)

func membersCommand() *cli.Command {
	return &cli.Command{
		Name:    "members",
		Summary: "Manage organization members",
		Subcommands: []*cli.Command{
			membersListCommand(),
			membersAddCommand(),
		},
	}
}

func membersListCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List members of the organization",
		Usage:   "nimbus orgs members list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
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

			response, err := client.ListOrgMembers(context.Background(), orgID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Members)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "USER\tSINCE")
			for _, member := range response.Members {
				fmt.Fprintf(writer, "%s\t%s\n",
					member.UserID, member.CreatedAt.Format("2006-01-02"))
			}
			return writer.Flush()
		},
	}
}

func membersAddCommand() *cli.Command {
	var scope cli.ScopeFlags

	return &cli.Command{
		Name:    "add",
		Summary: "Add a user to the organization",
		Usage:   "nimbus orgs members add <user-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("add", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one user ID argument")
			}
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return errdefs.InvalidInput("user ID %q is not a valid UUID", args[0])
			}

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

			member, err := client.AddOrgMember(context.Background(), orgID, api.AddOrgMemberRequest{UserID: userID})
			if err != nil {
				return err
			}

			fmt.Printf("Added %s to organization %s\n", member.UserID, member.OrgID)
			return nil
		},
	}
}
