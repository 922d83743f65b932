// Package cmdutil provides utilities for command execution with environment variable support.
//
// This package includes:
//   - ExecuteInput/ExecuteOutput types for command execution
//   - ExecuteCommand function for running shell commands
//   - LoadEnvFile function for loading environment variables from files
package cmdutil
