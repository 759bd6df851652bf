// Package harness provides utilities for integration testing the shed CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - SHED_HOME: Isolated per test (temp directory)
//   - SHED_DEBUG: Disabled to reduce noise
//   - SHED_OPENER: Set to a no-op so nothing is launched
package harness
