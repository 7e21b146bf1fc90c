package cmd

import (
	"os"

	"github.com/chris-regnier/ideadice/internal/logging"
	"github.com/chris-regnier/ideadice/internal/mcptools"
	"github.com/chris-regnier/ideadice/internal/prompt"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes your writing
history over stdio transport. The tools are read-only and see edits made by
a running writer session.

Available tools:
  - list_entries: List sessions, filtered by date range or lock state
  - search_entries: Fuzzy text search over titles and text
  - get_entry: Fetch one session in full
  - roll_prompt: Roll a noun, verb and emotion

Example MCP client config:
  {
    "mcpServers": {
      "ideadice": {
        "command": "/path/to/ideadice",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(store, prompt.NewDice(nil))

	// stdout is reserved for the protocol.
	log := logging.New(os.Stderr, appConfig.Log.Level)
	log.Info("starting MCP server", "transport", "stdio",
		"storage", appConfig.Storage, "data_dir", appConfig.DataDir)

	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
