// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package version carries build metadata for the nimbus binary,
// injected at release time:
//
//	go build -ldflags "-X github.com/nimbus-cloud/nimbus/lib/version.Version=1.4.0 \
//	                   -X github.com/nimbus-cloud/nimbus/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at build time; development builds keep the defaults.
var (
	// Version is the semantic version of the release.
	Version = "0.1.0-dev"

	// GitCommit is the short git SHA the binary was built from.
	GitCommit = "unknown"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"
)

// Short returns just the version number. The API client embeds it in
// the User-Agent header.
func Short() string {
	return Version
}

// Full returns the multi-line rendering used by "nimbus version".
func Full() string {
	return fmt.Sprintf("%s (%s, %s)\n  Go: %s\n  Platform: %s/%s",
		Version, GitCommit, BuildTime,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
