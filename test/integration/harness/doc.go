// Package harness provides utilities for integration testing the dhyan CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - DHYAN_HOME: Isolated per test (temp directory)
//   - DHYAN_*: Removed from the inherited environment
package harness
