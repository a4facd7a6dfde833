// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the typed client for the Nimbus platform HTTP API.
//
// The package has two layers. The transport (Client.do and the
// get/post/put/delete helpers) executes one authenticated HTTP
// request/response cycle and classifies every non-2xx status into the
// closed error taxonomy of lib/errdefs — status mapping lives in
// exactly one place. The resource methods (ListOrgs, GetSecret, ...)
// are a mechanical path/method table on top of the transport: one
// typed method per API operation, no branching logic of their own.
//
// The client performs exactly one network call per method invocation:
// no retries, no caching, no pagination state. The CLI is a short-lived
// process per command; anything stateful would outlive its usefulness.
package api
