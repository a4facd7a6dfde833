// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret implements the organization secret commands. Secrets
// are addressed by name on the command line; the name is resolved to
// the server-side ID through the listing endpoint. Secret values are
// only fetched by the get subcommand; listings never carry values.
package secret

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/api"
	"github.com/nimbus-cloud/nimbus/lib/errdefs"
)

// Command returns the "secrets" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "secrets",
		Summary: "Manage organization secrets",
		Subcommands: []*cli.Command{
			listCommand(),
			getCommand(),
			setCommand(),
			deleteCommand(),
		},
	}
}

func listCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List secrets in the organization",
		Usage:   "nimbus secrets list [flags]",
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

			response, err := client.ListSecrets(context.Background(), orgID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Secrets)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tUPDATED")
			for _, secret := range response.Secrets {
				fmt.Fprintf(writer, "%s\t%s\t%s\n",
					secret.ID, secret.Name, secret.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return writer.Flush()
		},
	}
}

// findByName resolves a secret name to its listing entry. The listing
// endpoint is the only way to go from a name to an ID.
func findByName(ctx context.Context, client *api.Client, orgID uuid.UUID, name string) (*api.Secret, error) {
	response, err := client.ListSecrets(ctx, orgID)
	if err != nil {
		return nil, err
	}
	for i := range response.Secrets {
		if response.Secrets[i].Name == name {
			return &response.Secrets[i], nil
		}
	}
	return nil, &errdefs.NotFoundError{Message: fmt.Sprintf("secret %q", name)}
}

// readValue resolves the secret value from --value or --value-file.
// Reading from a file lets callers keep secrets out of shell history
// and process listings.
func readValue(value, valueFile string) (string, error) {
	if value != "" {
		return value, nil
	}
	if valueFile != "" {
		data, err := os.ReadFile(valueFile)
		if err != nil {
			return "", fmt.Errorf("reading value file: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return "", fmt.Errorf("one of --value or --value-file is required")
}

func getCommand() *cli.Command {
	var scope cli.ScopeFlags
	var asJSON bool

	return &cli.Command{
		Name:    "get",
		Summary: "Print a secret's value",
		Description: `Print the value of the named secret. Plain output is just the value,
suitable for piping; --json prints the full secret object.`,
		Usage: "nimbus secrets get <name> [flags]",
		Examples: []cli.Example{
			{Description: "Pipe a secret into another tool", Command: "nimbus secrets get DB_PASSWORD | psql ..."},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("get", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
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

			ctx := context.Background()
			found, err := findByName(ctx, client, orgID, args[0])
			if err != nil {
				return err
			}

			secret, err := client.GetSecret(ctx, orgID, found.ID)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(secret)
			}
			if secret.Value != nil {
				fmt.Println(*secret.Value)
			}
			return nil
		},
	}
}

func setCommand() *cli.Command {
	var scope cli.ScopeFlags
	var value, valueFile, description string

	return &cli.Command{
		Name:    "set",
		Summary: "Create or update a secret",
		Description: `Set the named secret to the given value, creating it if it does not
exist yet and updating it in place if it does.`,
		Usage: "nimbus secrets set <name> [flags]",
		Examples: []cli.Example{
			{Description: "Set from a file", Command: "nimbus secrets set DB_PASSWORD --value-file ./password.txt"},
			{Description: "Set inline with a description", Command: "nimbus secrets set API_KEY --value abc123 --description \"third-party API key\""},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("set", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
			flagSet.StringVar(&value, "value", "", "secret value")
			flagSet.StringVar(&valueFile, "value-file", "", "read the secret value from this file")
			flagSet.StringVar(&description, "description", "", "human-readable description")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one name argument")
			}
			name := args[0]

			secretValue, err := readValue(value, valueFile)
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

			ctx := context.Background()
			existing, err := findByName(ctx, client, orgID, name)
			if err != nil && !errdefs.IsNotFound(err) {
				return err
			}

			if existing != nil {
				request := api.UpdateSecretRequest{Value: &secretValue}
				if description != "" {
					request.Description = &description
				}
				updated, err := client.UpdateSecret(ctx, orgID, existing.ID, request)
				if err != nil {
					return err
				}
				fmt.Printf("Updated secret %s (%s)\n", updated.Name, updated.ID)
				return nil
			}

			request := api.CreateSecretRequest{Name: name, Value: secretValue}
			if description != "" {
				request.Description = &description
			}
			created, err := client.CreateSecret(ctx, orgID, request)
			if err != nil {
				return err
			}
			fmt.Printf("Created secret %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	var scope cli.ScopeFlags

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a secret",
		Usage:   "nimbus secrets delete <name> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			scope.AddOrgFlag(flagSet)
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

			ctx := context.Background()
			found, err := findByName(ctx, client, orgID, args[0])
			if err != nil {
				return err
			}

			if err := client.DeleteSecret(ctx, orgID, found.ID); err != nil {
				return err
			}

			fmt.Printf("Deleted secret %s\n", found.Name)
			return nil
		},
	}
}
