// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the nimbus binary: a small
// pflag-based command tree with help rendering, typo suggestions, exit
// code handling, JSON output, and the shared per-invocation context
// (persisted state, scope flags, API client construction) that command
// handlers build on.
package cli
