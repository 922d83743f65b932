// Package mcputil provides result and validation helpers for MCP tool handlers.
package mcputil

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorResult creates a standardized MCP error result.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// SuccessResult creates a standardized MCP success result.
func SuccessResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: false,
	}
}

// SuccessResultWithPayload creates a success result that also returns a
// structured payload (e.g. a manifest entry).
//
// Example usage:
//
//	result, payload := mcputil.SuccessResultWithPayload("Synced", dep)
//	return result, payload, nil
func SuccessResultWithPayload(message string, payload any) (*mcp.CallToolResult, any) {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: false,
	}
	return result, payload
}
