// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package state persists the CLI's local state: the logged-in user's
// credential and the map from project directory to linked
// organization/application defaults.
//
// The state lives in a single JSON file at a well-known path
// (~/.nimbus/config.json, overridable via NIMBUS_CONFIG). Loading a
// missing file yields the empty default — a fresh machine is not an
// error condition. Saving is atomic: the full record is written to a
// temporary file in the same directory and renamed over the target, so
// a concurrent reader never observes a half-written file and a crash
// mid-write leaves the previous file intact.
//
// Mutators (SetCredential, SetLinked, ...) change only the in-memory
// value; callers persist explicitly with Save. The two are deliberately
// decoupled so a flow that fails validation after mutating (for
// example, a login whose token the server rejects) can discard the
// mutation without touching disk.
package state
