// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
)

// WhoAmICommand fetches and prints the authenticated account.
func WhoAmICommand() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the authenticated account",
		Usage:   "nimbus whoami [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
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

			user, err := client.CurrentUser(context.Background())
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(user)
			}

			fmt.Printf("%s (%s)\n", user.Email, user.ID)
			if user.Name != "" {
				fmt.Printf("Name: %s\n", user.Name)
			}
			return nil
		},
	}
}
