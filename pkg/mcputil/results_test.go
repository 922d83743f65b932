package mcputil

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestErrorResult(t *testing.T) {
	t.Parallel()

	result := ErrorResult("Sync failed: boom")
	assert.True(t, result.IsError)
	assert.Equal(t, "Sync failed: boom", textOf(t, result))
}

func TestSuccessResult(t *testing.T) {
	t.Parallel()

	result := SuccessResult("Dependencies synced")
	assert.False(t, result.IsError)
	assert.Equal(t, "Dependencies synced", textOf(t, result))
}

func TestSuccessResultWithPayload(t *testing.T) {
	t.Parallel()

	payload := map[string]string{"name": "tsl"}
	result, got := SuccessResultWithPayload("Synced", payload)

	assert.False(t, result.IsError)
	assert.Equal(t, payload, got)
}

func TestValidateRequiredWithPrefix(t *testing.T) {
	t.Parallel()

	t.Run("should return nil when all fields are set", func(t *testing.T) {
		t.Parallel()

		result := ValidateRequiredWithPrefix("Sync failed", map[string]string{
			"depDir": "dependencies",
		})
		assert.Nil(t, result)
	})

	t.Run("should flag the missing field", func(t *testing.T) {
		t.Parallel()

		result := ValidateRequiredWithPrefix("Sync failed", map[string]string{
			"depDir": "",
		})
		require.NotNil(t, result)
		assert.True(t, result.IsError)
		assert.Contains(t, textOf(t, result), "depDir")
		assert.Contains(t, textOf(t, result), "Sync failed")
	})
}
