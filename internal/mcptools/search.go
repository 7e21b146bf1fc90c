package mcptools

import (
	"context"

	"github.com/chris-regnier/ideadice/internal/history"
	"github.com/chris-regnier/ideadice/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchHandler returns the handler function for the search_entries MCP tool.
func SearchHandler(store storage.EntryStore) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		entries, err := store.Load()
		if err != nil {
			return nil, SearchOutput{}, err
		}

		matches := history.Search(entries, input.Query)
		limit := limitOrDefault(input.Limit)
		results := []EntryResult{}
		for _, e := range matches {
			if len(results) >= limit {
				break
			}
			results = append(results, toResult(e))
		}

		return nil, SearchOutput{Entries: results}, nil
	}
}
