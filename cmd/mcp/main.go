package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/algo-drills/internal/mcpadapter"
	"github.com/povarna/algo-drills/internal/setup"
	"github.com/povarna/algo-drills/internal/setup/logger"
	"github.com/rs/zerolog"
)

func main() {
	// Stdout carries the MCP protocol, so logs are JSON on stderr
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load env
	_ = godotenv.Load()

	// Load Config
	cfg := setup.LoadConfig()
	lg := logger.New(cfg.LogLevel)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &lg)
	if err != nil {
		lg.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	defer deps.Close()

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			lg.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		lg.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "algo-drills",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_problem",
		Description: "Solve one drill: longest-substring, container-with-most-water, longest-common-prefix, valid-palindrome or unique-marker",
	}, mcpadapter.NewSolveHandler(deps.Executor))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "longest_unique_substring",
		Description: "Length and position of the longest substring without repeating characters",
	}, mcpadapter.NewLongestUniqueHandler(deps.Executor))
	return server
}
