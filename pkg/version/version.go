/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package version exposes build-time version information.
package version

import "fmt"

// Overridden during build with ldflags, e.g.
//
//	-ldflags "-X github.com/my-cli/my/pkg/version.Version=v0.3.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the full version string.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
