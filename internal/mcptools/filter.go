package mcptools

import (
	"context"
	"time"

	"github.com/chris-regnier/ideadice/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListHandler returns the handler function for the list_entries MCP tool.
// Entries come back most recent first. Unparseable dates are ignored.
func ListHandler(store storage.EntryStore) func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		entries, err := store.Load()
		if err != nil {
			return nil, ListOutput{}, err
		}

		var start, end *time.Time
		if t, err := parseDate(input.StartDate); input.StartDate != "" && err == nil {
			start = &t
		}
		if t, err := parseDate(input.EndDate); input.EndDate != "" && err == nil {
			next := t.AddDate(0, 0, 1)
			end = &next
		}

		limit := limitOrDefault(input.Limit)
		results := []EntryResult{}
		for _, e := range entries {
			if len(results) >= limit {
				break
			}
			if input.Locked != nil && e.Locked != *input.Locked {
				continue
			}
			if start != nil && e.UpdatedAt.Before(*start) {
				continue
			}
			if end != nil && !e.UpdatedAt.Before(*end) {
				continue
			}
			results = append(results, toResult(e))
		}

		return nil, ListOutput{Entries: results}, nil
	}
}
