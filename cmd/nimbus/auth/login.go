// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/cli"
	"github.com/nimbus-cloud/nimbus/lib/api"
)

// LoginCommand authenticates the CLI and persists the credential.
func LoginCommand() *cli.Command {
	var tokenFile string
	var email string

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and store the credential",
		Description: `Authenticate with the Nimbus platform and store the credential.

By default the command prompts for an API token (input is not echoed);
--token-file reads it from a file instead. With --email, it prompts for
the account password and exchanges it for a session token. Either way
the credential is validated against the API before anything is written
to disk.`,
		Usage: "nimbus login [flags]",
		Examples: []cli.Example{
			{Description: "Log in with a pasted token", Command: "nimbus login"},
			{Description: "Log in with email and password", Command: "nimbus login --email dev@example.com"},
			{Description: "Log in from a token file (CI)", Command: "nimbus login --token-file /run/secrets/nimbus-token"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.StringVar(&tokenFile, "token-file", "", "read the API token from this file instead of prompting")
			flagSet.StringVar(&email, "email", "", "log in with this email and a password prompt")
			return flagSet
		},
		Run: func(args []string) error {
			if email != "" && tokenFile != "" {
				return fmt.Errorf("--email and --token-file are mutually exclusive")
			}

			invocation, err := cli.LoadContext()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var token string
			if email != "" {
				token, err = sessionToken(ctx, invocation, email)
			} else {
				token, err = readToken(tokenFile)
			}
			if err != nil {
				return err
			}
			if token == "" {
				return fmt.Errorf("empty token")
			}

			// Validate before persisting: a rejected token must not
			// overwrite a working credential.
			client, err := api.NewClient(api.Config{
				BaseURL: invocation.Settings.APIURL(),
				Token:   token,
				Logger:  cli.NewLogger(),
			})
			if err != nil {
				return err
			}

			user, err := client.CurrentUser(ctx)
			if err != nil {
				return fmt.Errorf("validating credential: %w", err)
			}

			invocation.State.SetCredential(token, user.ID, user.Email)
			if err := invocation.Save(); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", user.Email)
			return nil
		},
	}
}

// sessionToken exchanges an email/password pair for a session token.
func sessionToken(ctx context.Context, invocation *cli.Context, email string) (string, error) {
	password, err := promptSecret("Password: ")
	if err != nil {
		return "", err
	}

	client, err := invocation.AnonymousClient()
	if err != nil {
		return "", err
	}

	created, err := client.CreateSession(ctx, api.CreateSessionRequest{
		Email:    &email,
		Password: &password,
	})
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return created.Session, nil
}

// readToken obtains the token from the given file, from an interactive
// no-echo prompt when stdin is a terminal, or from a line on stdin
// (piped input) otherwise.
func readToken(tokenFile string) (string, error) {
	if tokenFile != "" {
		data, err := os.ReadFile(tokenFile)
		if err != nil {
			return "", fmt.Errorf("reading token file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return promptSecret("API token: ")
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading token from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a line from the terminal without echoing it.
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
