// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package database implements the managed Postgres commands.
package database

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

// Command returns the "databases" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "databases",
		Summary: "Manage managed Postgres databases",
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
			getCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}

func listCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List databases in the organization",
		Usage:   "nimbus databases list [flags]",
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

			response, err := client.ListDatabases(context.Background(), orgID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Databases)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tSTATE\tPG")
			for _, database := range response.Databases {
				state := ""
				if database.Status != nil {
					state = database.Status.State.String()
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\n",
					database.ID, database.Name, state, database.Postgres.MajorVersion)
			}
			return writer.Flush()
		},
	}
}

func createCommand() *cli.Command {
	var scope cli.ScopeFlags
	var vcpu, memory, diskSpace string
	var replicas, majorVersion int
	var asJSON bool

	return &cli.Command{
		Name:    "create",
		Summary: "Provision a database",
		Usage:   "nimbus databases create <name> [flags]",
		Examples: []cli.Example{
			{Description: "Two vCPUs, 4 GiB memory, 20 GiB disk", Command: "nimbus databases create orders --vcpu 2 --memory 4Gi --disk 20Gi"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			flagSet.StringVar(&vcpu, "vcpu", "1", "requested vCPU count")
			flagSet.StringVar(&memory, "memory", "2Gi", "requested memory")
			flagSet.StringVar(&diskSpace, "disk", "10Gi", "requested disk space")
			flagSet.IntVar(&replicas, "replicas", 1, "requested replica count")
			flagSet.IntVar(&majorVersion, "postgres-version", 16, "Postgres major version")
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
			orgID, err := invocation.Resolver.Org(scope.Org)
			if err != nil {
				return err
			}
			client, err := invocation.Client()
			if err != nil {
				return err
			}

			request := api.CreateDatabaseRequest{
				Name:     args[0],
				Compute:  api.DatabaseCompute{Requested: api.ComputeRequested{VCPU: vcpu, Memory: memory}},
				Storage:  api.DatabaseStorage{Requested: api.StorageRequested{DiskSpace: diskSpace}},
				Replicas: api.DatabaseReplicas{Requested: replicas},
				Postgres: api.DatabasePostgres{MajorVersion: majorVersion},
			}

			database, err := client.CreateDatabase(context.Background(), orgID, request)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(database)
			}

			fmt.Printf("Created database %s (%s)\n", database.Name, database.ID)
			return nil
		},
	}
}

func getCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "get",
		Summary: "Show one database",
		Usage:   "nimbus databases get <database-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("get", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one database ID argument")
			}
			databaseID, err := uuid.Parse(args[0])
			if err != nil {
				return errdefs.InvalidInput("database ID %q is not a valid UUID", args[0])
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

			database, err := client.GetDatabase(context.Background(), orgID, databaseID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(database)
			}

			fmt.Printf("Name:     %s\n", database.Name)
			fmt.Printf("ID:       %s\n", database.ID)
			if database.Status != nil {
				fmt.Printf("State:    %s\n", database.Status.State)
			}
			fmt.Printf("Postgres: %d\n", database.Postgres.MajorVersion)
			fmt.Printf("Compute:  %s vCPU, %s memory\n",
				database.Compute.Requested.VCPU, database.Compute.Requested.Memory)
			fmt.Printf("Storage:  %s\n", database.Storage.Requested.DiskSpace)
			fmt.Printf("Replicas: %d\n", database.Replicas.Requested)
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	var scope cli.ScopeFlags
	var name, vcpu, memory, diskSpace string
	var replicas int
	var asJSON bool

	return &cli.Command{
		Name:    "update",
		Summary: "Resize or rename a database",
		Usage:   "nimbus databases update <database-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("update", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			flagSet.StringVar(&name, "name", "", "new database name")
			flagSet.StringVar(&vcpu, "vcpu", "", "new requested vCPU count")
			flagSet.StringVar(&memory, "memory", "", "new requested memory")
			flagSet.StringVar(&diskSpace, "disk", "", "new requested disk space")
			flagSet.IntVar(&replicas, "replicas", 0, "new requested replica count")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one database ID argument")
			}
			databaseID, err := uuid.Parse(args[0])
			if err != nil {
				return errdefs.InvalidInput("database ID %q is not a valid UUID", args[0])
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

			// Compute resizes need both dimensions; fetch the current
			// allocation to fill whichever one was not passed.
			ctx := context.Background()

			var request api.UpdateDatabaseRequest
			if name != "" {
				request.Name = &name
			}
			if vcpu != "" || memory != "" {
				current, err := client.GetDatabase(ctx, orgID, databaseID)
				if err != nil {
					return err
				}
				requested := current.Compute.Requested
				if vcpu != "" {
					requested.VCPU = vcpu
				}
				if memory != "" {
					requested.Memory = memory
				}
				request.Compute = &api.DatabaseCompute{Requested: requested}
			}
			if diskSpace != "" {
				request.Storage = &api.DatabaseStorage{Requested: api.StorageRequested{DiskSpace: diskSpace}}
			}
			if replicas > 0 {
				request.Replicas = &api.DatabaseReplicas{Requested: replicas}
			}
			if request.Name == nil && request.Compute == nil && request.Storage == nil && request.Replicas == nil {
				return fmt.Errorf("nothing to update: pass --name, --vcpu/--memory, --disk, or --replicas")
			}

			database, err := client.UpdateDatabase(ctx, orgID, databaseID, request)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(database)
			}

			fmt.Printf("Updated database %s (%s)\n", database.Name, database.ID)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	var scope cli.ScopeFlags

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a database",
		Usage:   "nimbus databases delete <database-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one database ID argument")
			}
			databaseID, err := uuid.Parse(args[0])
			if err != nil {
				return errdefs.InvalidInput("database ID %q is not a valid UUID", args[0])
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

			if err := client.DeleteDatabase(context.Background(), orgID, databaseID); err != nil {
				return err
			}

			fmt.Printf("Deleted database %s\n", databaseID)
			return nil
		},
	}
}
