// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth implements the login, logout, whoami, and session
// commands. Login validates the supplied token against the API before
// persisting it, so a bad paste fails immediately instead of on the
// next command.
package auth
