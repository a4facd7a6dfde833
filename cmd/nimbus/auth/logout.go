// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"fmt"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
)

// LogoutCommand discards the persisted credential. Linked directories
// are left intact so a later login resumes with the same contexts.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Discard the stored credential",
		Usage:   "nimbus logout",
		Run: func(args []string) error {
			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}

			if invocation.State.User == nil {
				fmt.Println("Not logged in.")
				return nil
			}

			invocation.State.ClearCredential()
			if err := invocation.Save(); err != nil {
				return err
			}

			fmt.Println("Logged out.")
			return nil
		},
	}
}
