// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
)

func logsCommand() *cli.Command {
	var scope cli.ScopeFlags
	var limit int
	var asJSON bool

	return &cli.Command{
		Name:    "logs",
		Summary: "Show recent runtime logs for the application",
		Usage:   "nimbus apps logs [flags]",
		Examples: []cli.Example{
			{Description: "Last 50 log lines", Command: "nimbus apps logs --limit 50"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("logs", pflag.ContinueOnError)
			scope.AddFlags(flagSet)
			flagSet.IntVar(&limit, "limit", 0, "maximum number of entries (server default when zero)")
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

			response, err := client.GetLogs(context.Background(), orgID, appID, limit)
			if err != nil {
				return err
			}

			if asJSON {
				return cli.WriteJSON(response.Logs)
			}

			for _, entry := range response.Logs {
				fmt.Printf("%s %-5s %s\n",
					entry.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
					entry.Level, entry.Message)
			}
			return nil
		},
	}
}
