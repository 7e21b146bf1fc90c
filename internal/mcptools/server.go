package mcptools

import (
	"context"

	"github.com/chris-regnier/ideadice/internal/prompt"
	"github.com/chris-regnier/ideadice/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewInMemoryServer creates an in-memory MCP server exposing the writing
// tools. Returns the server and a client transport for connecting to it.
func NewInMemoryServer(store storage.EntryStore, dice *prompt.Dice) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, dice)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the read-only history tools and
// the prompt dice. Every call reloads history from store so a running
// writer's autosaves are visible.
func CreateMCPServer(store storage.EntryStore, dice *prompt.Dice) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ideadice",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_entries",
		Description: "List writing sessions, most recent first, filtered by date range and lock state",
	}, ListHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_entries",
		Description: "Fuzzy search writing sessions by title and content",
	}, SearchHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_entry",
		Description: "Fetch one writing session with its full text",
	}, GetEntryHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "roll_prompt",
		Description: "Roll the dice for a noun, a verb and an emotion to write about",
	}, RollHandler(dice))

	return server
}
