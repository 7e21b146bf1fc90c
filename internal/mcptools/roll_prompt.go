package mcptools

import (
	"context"

	"github.com/chris-regnier/ideadice/internal/prompt"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RollHandler returns the handler function for the roll_prompt MCP tool.
func RollHandler(dice *prompt.Dice) func(ctx context.Context, req *mcp.CallToolRequest, input RollInput) (*mcp.CallToolResult, RollOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RollInput) (*mcp.CallToolResult, RollOutput, error) {
		w := dice.Roll()
		return nil, RollOutput{
			Noun:    w.Noun,
			Verb:    w.Verb,
			Emotion: w.Emotion,
			Prompt:  w.String(),
		}, nil
	}
}
