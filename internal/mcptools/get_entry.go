package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/chris-regnier/ideadice/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetEntryHandler returns the handler function for the get_entry MCP tool.
func GetEntryHandler(store storage.EntryStore) func(ctx context.Context, req *mcp.CallToolRequest, input GetEntryInput) (*mcp.CallToolResult, GetEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetEntryInput) (*mcp.CallToolResult, GetEntryOutput, error) {
		entries, err := store.Load()
		if err != nil {
			return nil, GetEntryOutput{}, err
		}
		for _, e := range entries {
			if e.ID == input.ID {
				return nil, GetEntryOutput{
					Entry:   toResult(e),
					Content: e.Content,
					Created: e.CreatedAt.Format(time.RFC3339),
				}, nil
			}
		}
		return nil, GetEntryOutput{}, fmt.Errorf("entry %q not found", input.ID)
	}
}
