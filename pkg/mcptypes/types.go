// Package mcptypes defines the input types for SORT build tool MCP servers.
package mcptypes

// SyncInput is the input for the get-dep "sync" tool.
type SyncInput struct {
	// DepDir is the dependency directory. Defaults to "dependencies".
	DepDir string `json:"depDir,omitempty"`

	// Force discards existing dependencies and re-syncs unconditionally.
	Force bool `json:"force,omitempty"`
}

// StatusInput is the input for the get-dep "status" tool.
type StatusInput struct {
	// DepDir is the dependency directory. Defaults to "dependencies".
	DepDir string `json:"depDir,omitempty"`
}
