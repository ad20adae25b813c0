package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/algo-drills/internal/executor"
	"github.com/povarna/algo-drills/internal/models"
)

type LongestUniqueInput struct {
	Text      string `json:"text" jsonschema:"text to scan"`
	Tokenize  string `json:"tokenize,omitempty" jsonschema:"rune (default) or byte"`
	Normalize *bool  `json:"normalize,omitempty" jsonschema:"true applies Unicode NFC normalization first, false scans the raw characters, absent uses the configured default"`
}

type LongestUniqueOutput struct {
	Length    int    `json:"length"`
	Left      int    `json:"left"`
	Right     int    `json:"right"`
	Substring string `json:"substring"`
}

// NewLongestUniqueHandler returns a tool handler for the longest substring
// without repeating tokens. Pass the returned function to mcp.AddTool.
func NewLongestUniqueHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, LongestUniqueInput) (*mcp.CallToolResult, LongestUniqueOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LongestUniqueInput) (*mcp.CallToolResult, LongestUniqueOutput, error) {
		return LongestUnique(ctx, exec, req, input)
	}
}

func LongestUnique(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input LongestUniqueInput,
) (*mcp.CallToolResult, LongestUniqueOutput, error) {
	in := models.Input{
		Text:      models.Text(input.Text),
		Tokenize:  models.Tokenize(input.Tokenize),
		Normalize: input.Normalize,
	}

	result, err := exec.Execute(ctx, models.SolveRequest{
		Problem: models.ProblemLongestSubstring,
		Input:   in,
	})
	if err != nil {
		return nil, LongestUniqueOutput{}, err
	}
	if result.Window == nil {
		return nil, LongestUniqueOutput{}, fmt.Errorf("no window reported for request %s", result.ID)
	}

	return nil, LongestUniqueOutput{
		Length:    result.Window.Length,
		Left:      result.Window.Left,
		Right:     result.Window.Right,
		Substring: result.Window.Substring,
	}, nil
}
