// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/nimbus-cloud/nimbus/cmd/nimbus/commands"
)

func main() {
	err := commands.Root().Execute(os.Args[1:])
	if err == nil {
		return
	}
	// An ExitError means the command already wrote its own output and
	// only wants a specific exit code.
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		os.Exit(coder.ExitCode())
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
