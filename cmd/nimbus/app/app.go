// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package app implements the application commands: CRUD over apps via
// YAML manifests, plus deployment inspection and runtime logs.
package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/manifest"
)

// Command returns the "apps" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "apps",
		Summary: "Manage applications",
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
			getCommand(),
			updateCommand(),
			deleteCommand(),
			deploymentsCommand(),
			logsCommand(),
		},
	}
}

func listCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List applications in the organization",
		Usage:   "nimbus apps list [flags]",
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

			response, err := client.ListApps(context.Background(), orgID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Apps)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tCREATED")
			for _, app := range response.Apps {
				fmt.Fprintf(writer, "%s\t%s\t%s\n",
					app.ID, app.Name, app.CreatedAt.Format("2006-01-02"))
			}
			return writer.Flush()
		},
	}
}

func createCommand() *cli.Command {
	var scope cli.ScopeFlags
	var manifestPath string
	var asJSON bool

	return &cli.Command{
		Name:    "create",
		Summary: "Create an application from a manifest",
		Usage:   "nimbus apps create --file <manifest.yaml> [flags]",
		Examples: []cli.Example{
			{Description: "Create from a manifest file", Command: "nimbus apps create --file nimbus.yaml"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			flagSet.StringVarP(&manifestPath, "file", "f", "", "path to the app manifest (required)")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if manifestPath == "" {
				return fmt.Errorf("--file is required")
			}

			parsed, err := manifest.ReadFile(manifestPath)
			if err != nil {
				return err
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

			app, err := client.CreateApp(context.Background(), orgID, parsed.CreateRequest())
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(app)
			}

			fmt.Printf("Created app %s (%s)\n", app.Name, app.ID)
			return nil
		},
	}
}

func getCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "get",
		Summary: "Show one application",
		Usage:   "nimbus apps get [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("get", pflag.ContinueOnError)
			scope.AddFlags(flagSet)
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
			appID, err := invocation.Resolver.App(scope.App)
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			app, err := client.GetApp(context.Background(), orgID, appID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(app)
			}

			fmt.Printf("Name:    %s\n", app.Name)
			fmt.Printf("ID:      %s\n", app.ID)
			if app.Description != nil && *app.Description != "" {
				fmt.Printf("About:   %s\n", *app.Description)
			}
			fmt.Printf("Created: %s\n", app.CreatedAt.Format("2006-01-02 15:04"))
			if app.Spec != nil {
				for _, container := range app.Spec.Containers {
					fmt.Printf("Container: %s  image=%s  port=%d\n",
						container.Name, container.Image, container.Port)
				}
			}
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	var scope cli.ScopeFlags
	var manifestPath string
	var asJSON bool

	return &cli.Command{
		Name:    "update",
		Summary: "Update an application from a manifest",
		Usage:   "nimbus apps update --file <manifest.yaml> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("update", pflag.ContinueOnError)
			scope.AddFlags(flagSet)
			flagSet.StringVarP(&manifestPath, "file", "f", "", "path to the app manifest (required)")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if manifestPath == "" {
				return fmt.Errorf("--file is required")
			}

			parsed, err := manifest.ReadFile(manifestPath)
			if err != nil {
				return err
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}
			orgID, err := invocation.Resolver.Org(scope.Org)
			if err != nil {
				return err
			}
			appID, err := invocation.Resolver.App(scope.App)
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			app, err := client.UpdateApp(context.Background(), orgID, appID, parsed.UpdateRequest())
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(app)
			}

			fmt.Printf("Updated app %s (%s)\n", app.Name, app.ID)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	var scope cli.ScopeFlags

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete an application",
		Usage:   "nimbus apps delete [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			scope.AddFlags(flagSet)
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
			appID, err := invocation.Resolver.App(scope.App)
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			if err := client.DeleteApp(context.Background(), orgID, appID); err != nil {
				return err
			}

			fmt.Printf("Deleted app %s\n", appID)
			return nil
		},
	}
}
