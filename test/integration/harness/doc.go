// Package harness provides utilities for integration testing the gitartist CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - GITARTIST_HOME: Isolated per test (temp directory)
//   - GITARTIST_DEBUG: Disabled to reduce noise
//   - GOOGLE_API_KEY, GITHUB_PAT: Removed so no test reaches a real service
package harness
