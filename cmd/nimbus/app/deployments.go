// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/errdefs"
)

func deploymentsCommand() *cli.Command {
	return &cli.Command{
		Name:    "deployments",
		Summary: "Inspect application deployments",
		Subcommands: []*cli.Command{
			deploymentsListCommand(),
			deploymentsGetCommand(),
		},
	}
}

func deploymentsListCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List deployments for the application",
		Usage:   "nimbus apps deployments list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
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

			response, err := client.ListDeployments(context.Background(), orgID, appID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Deployments)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tSTATUS\tCREATED")
			for _, deployment := range response.Deployments {
				fmt.Fprintf(writer, "%s\t%s\t%s\n",
					deployment.ID, deployment.Status,
					deployment.CreatedAt.Format("2006-01-02 15:04"))
			}
			return writer.Flush()
		},
	}
}

func deploymentsGetCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "get",
		Summary: "Show one deployment with its progress events",
		Usage:   "nimbus apps deployments get <deployment-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("get", pflag.ContinueOnError)
			scope.AddFlags(flagSet)
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one deployment ID argument")
			}
			deploymentID, err := uuid.Parse(args[0])
			if err != nil {
				return errdefs.InvalidInput("deployment ID %q is not a valid UUID", args[0])
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

			deployment, err := client.GetDeployment(context.Background(), orgID, appID, deploymentID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(deployment)
			}

			fmt.Printf("ID:      %s\n", deployment.ID)
			fmt.Printf("Status:  %s\n", deployment.Status)
			fmt.Printf("Created: %s\n", deployment.CreatedAt.Format("2006-01-02 15:04"))
			if deployment.FailureMessage != nil {
				fmt.Printf("Failure: %s\n", *deployment.FailureMessage)
			}
			for _, event := range deployment.Events {
				fmt.Printf("  %s  %s\n",
					event.CreatedAt.Format("15:04:05"), event.Message)
			}
			return nil
		},
	}
}
