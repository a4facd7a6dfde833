// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package org

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/api"
	"github.com/nimbus-cloud/nimbus/lib/errdefs"
)

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:    "keys",
		Summary: "Manage organization API keys",
		Subcommands: []*cli.Command{
			keysListCommand(),
			keysCreateCommand(),
			keysDeleteCommand(),
		},
	}
}

func keysListCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List API keys for the organization",
		Usage:   "nimbus orgs keys list [flags]",
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

			response, err := client.ListOrgKeys(context.Background(), orgID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Keys)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tCREATED")
			for _, key := range response.Keys {
				fmt.Fprintf(writer, "%s\t%s\n",
					key.ID, key.CreatedAt.Format("2006-01-02 15:04"))
			}
			return writer.Flush()
		},
	}
}

func keysCreateCommand() *cli.Command {
	var scope cli.ScopeFlags
	var expiresIn time.Duration

	return &cli.Command{
		Name:    "create",
		Summary: "Create an API key",
		Description: `Create an API key for the organization. The key material is printed
exactly once; the server stores only a hash and cannot recover it.`,
		Usage: "nimbus orgs keys create [flags]",
		Examples: []cli.Example{
			{Description: "Create a key that expires in 30 days", Command: "nimbus orgs keys create --expires-in 720h"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			flagSet.DurationVar(&expiresIn, "expires-in", 0, "key lifetime (e.g. 720h); zero means no expiration")
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

			var request api.CreateOrgKeyRequest
			if expiresIn > 0 {
				expiration := time.Now().Add(expiresIn).UTC()
				request.Expiration = &expiration
			}

			created, err := client.CreateOrgKey(context.Background(), orgID, request)
			if err != nil {
				return err
			}

			fmt.Printf("Created key %s\n", created.ID)
			fmt.Printf("Key (shown once): %s\n", created.Key)
			return nil
		},
	}
}

func keysDeleteCommand() *cli.Command {
	var scope cli.ScopeFlags

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete an API key",
		Usage:   "nimbus orgs keys delete <key-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one key ID argument")
			}
			keyID, err := uuid.Parse(args[0])
			if err != nil {
				return errdefs.InvalidInput("key ID %q is not a valid UUID", args[0])
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

			if err := client.DeleteOrgKey(context.Background(), orgID, keyID); err != nil {
				return err
			}

			fmt.Printf("Deleted key %s\n", keyID)
			return nil
		},
	}
}
