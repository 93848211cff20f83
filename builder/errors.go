// SPDX-License-Identifier: MIT
// Package: coactgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w (see wrapf).
//   • Build never panics; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// MethodBuild is the context token prefixed to errors returned by Build.
const MethodBuild = "Build"

// ErrNegativeThreshold indicates a minimum repeat threshold below zero.
var ErrNegativeThreshold = errors.New("builder: negative threshold")

// ErrNilCounts indicates that Build received a nil counts map.
// An empty, non-nil map is valid and yields an empty graph.
var ErrNilCounts = errors.New("builder: nil counts")

// wrapf prefixes err with the method token and a formatted detail while
// keeping err reachable through errors.Is.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
