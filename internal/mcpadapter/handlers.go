package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/algo-drills/internal/executor"
	"github.com/povarna/algo-drills/internal/models"
)

// SolveInput is the MCP tool input schema (matches HTTP API field names).
type SolveInput struct {
	RequestID string       `json:"request_id,omitempty" jsonschema:"optional request identifier, generated when empty"`
	Problem   string       `json:"problem" jsonschema:"problem name: longest-substring, container-with-most-water, longest-common-prefix, valid-palindrome or unique-marker"`
	Input     models.Input `json:"input" jsonschema:"problem arguments"`
}

// SolveOutput mirrors SolveResult without the timestamp fields.
type SolveOutput struct {
	ID         string               `json:"id"`
	Problem    string               `json:"problem"`
	Answer     any                  `json:"answer"`
	Window     *models.WindowReport `json:"window,omitempty"`
	DurationNS int64                `json:"duration_ns"`
}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, SolveOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, SolveOutput, error) {
		return SolveProblem(ctx, exec, req, input)
	}
}

// SolveProblem runs one problem through the executor.
func SolveProblem(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	result, err := exec.Execute(ctx, models.SolveRequest{
		RequestID: input.RequestID,
		Problem:   models.Problem(input.Problem),
		Input:     input.Input,
	})
	if err != nil {
		return nil, SolveOutput{}, err
	}

	return nil, SolveOutput{
		ID:         result.ID,
		Problem:    string(result.Problem),
		Answer:     result.Answer,
		Window:     result.Window,
		DurationNS: result.Duration.Nanoseconds(),
	}, nil
}
