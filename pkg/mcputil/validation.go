package mcputil

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ValidateRequiredWithPrefix checks required fields and uses a custom error prefix.
// Returns nil if all fields are non-empty.
//
// Example usage:
//
//	if result := mcputil.ValidateRequiredWithPrefix("Sync failed", map[string]string{
//	    "depDir": input.DepDir,
//	}); result != nil {
//	    return result, nil, nil
//	}
func ValidateRequiredWithPrefix(prefix string, fields map[string]string) *mcp.CallToolResult {
	for fieldName, fieldValue := range fields {
		if fieldValue == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{Text: fmt.Sprintf("%s: missing required field '%s'", prefix, fieldName)},
				},
				IsError: true,
			}
		}
	}
	return nil
}
