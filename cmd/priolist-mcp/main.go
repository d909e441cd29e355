package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"priolist/internal/adapters/filesystem"
	mcpadapter "priolist/internal/adapters/mcp"
	"priolist/internal/adapters/sqlite"
	"priolist/internal/config"
	"priolist/internal/domain"
)

func main() {
	dirFlag := flag.String("dir", config.DirPath(), "directory indexed for search")
	flag.Parse()

	rules := domain.DefaultRules()

	index := sqlite.NewIndex(rules)
	if err := index.Open(*dirFlag); err != nil {
		log.Fatalf("priolist-mcp: %v", err)
	}
	defer index.Close()

	open := func(path string) (mcpadapter.Document, error) {
		return filesystem.Load(path)
	}

	mcpServer := server.NewMCPServer(
		"priolist-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, rules, open, index)
	mcpadapter.RegisterWriteTools(mcpServer, rules, open)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("priolist-mcp: %v", err)
	}
}
