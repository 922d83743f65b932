package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zorrock/SORT/internal/depsync"
	"github.com/zorrock/SORT/internal/mcpserver"
	"github.com/zorrock/SORT/pkg/depstore"
	"github.com/zorrock/SORT/pkg/mcptypes"
	"github.com/zorrock/SORT/pkg/mcputil"
)

// runMCPServer starts the get-dep MCP server with stdio transport.
func runMCPServer() error {
	server := mcpserver.New(Name, Version)

	mcpserver.RegisterTool(server, &mcp.Tool{
		Name:        "sync",
		Description: "Ensure the renderer's dependency directory is populated, optionally forcing a clean re-sync",
	}, handleSyncTool)

	mcpserver.RegisterTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Report whether the renderer's dependencies are present and what the manifest records",
	}, handleStatusTool)

	return server.RunDefault()
}

// handleSyncTool handles the "sync" tool call from MCP clients.
func handleSyncTool(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input mcptypes.SyncInput,
) (*mcp.CallToolResult, any, error) {
	log.Printf("Syncing dependencies (force=%v)", input.Force)

	envs := Envs{} //nolint:exhaustruct
	if err := env.Parse(&envs); err != nil {
		return mcputil.ErrorResult(fmt.Sprintf("Sync failed: %v", err)), nil, nil
	}

	if input.DepDir != "" {
		envs.DepDir = input.DepDir
	}

	// Progress messages go to stderr to keep the JSON-RPC stream clean.
	res, err := syncDependencies(ctx, envs, input.Force, os.Stderr)
	if err != nil {
		return mcputil.ErrorResult(fmt.Sprintf("Sync failed: %v", err)), nil, nil
	}

	if !res.Synced {
		return mcputil.SuccessResult("Dependencies are up to date, no need to sync."), nil, nil
	}

	dep, err := manifestEntry(envs.DepDir)
	if err != nil {
		return mcputil.ErrorResult(fmt.Sprintf("Sync succeeded but manifest is unreadable: %v", err)), nil, nil
	}

	result, payload := mcputil.SuccessResultWithPayload(
		fmt.Sprintf("Synced dependencies into %s (purged=%v)", envs.DepDir, res.Purged),
		dep,
	)
	return result, payload, nil
}

// handleStatusTool handles the "status" tool call from MCP clients.
func handleStatusTool(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input mcptypes.StatusInput,
) (*mcp.CallToolResult, any, error) {
	depDir := input.DepDir
	if depDir == "" {
		depDir = depsync.DefaultDir
	}

	info, err := os.Stat(depDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return mcputil.SuccessResult(fmt.Sprintf("Dependency directory %s is missing; a sync is needed", depDir)), nil, nil
	case err != nil:
		return mcputil.ErrorResult(fmt.Sprintf("Status failed: %v", err)), nil, nil
	case !info.IsDir():
		return mcputil.ErrorResult(fmt.Sprintf("Status failed: %s exists but is not a directory", depDir)), nil, nil
	}

	dep, err := manifestEntry(depDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, depstore.ErrDependencyNotFound) {
			return mcputil.SuccessResult(fmt.Sprintf("Dependency directory %s is present (no manifest recorded)", depDir)), nil, nil
		}
		return mcputil.ErrorResult(fmt.Sprintf("Status failed: %v", err)), nil, nil
	}

	result, payload := mcputil.SuccessResultWithPayload(
		fmt.Sprintf("Dependency directory %s is present (%s %s synced %s)", depDir, dep.Name, dep.Kind, dep.Timestamp),
		dep,
	)
	return result, payload, nil
}

// manifestEntry reads the TSL entry from the manifest in depDir.
func manifestEntry(depDir string) (depstore.Dependency, error) {
	manifest, err := depstore.Read(depstore.Path(depDir))
	if err != nil {
		return depstore.Dependency{}, err
	}

	return depstore.Get(manifest, "tsl")
}
