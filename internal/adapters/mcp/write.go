package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"priolist/internal/application/commands"
	"priolist/internal/domain"
)

// RegisterWriteTools adds all document-editing tools to the MCP server.
// Every tool loads the document, applies one command, and saves.
func RegisterWriteTools(s *server.MCPServer, rules domain.Rules, open OpenDocument) {
	s.AddTool(setPriorityTool(), setPriorityHandler(rules, open))
	s.AddTool(moveItemTool(), moveItemHandler(rules, open))
	s.AddTool(sortDocumentTool(), sortDocumentHandler(rules, open))
}

// --- set_priority ---

func setPriorityTool() mcp.Tool {
	return mcp.NewTool("set_priority",
		mcp.WithDescription("Set or replace the priority tag on one item line. Checked items cannot be tagged."),
		mcp.WithString("file",
			mcp.Description("Path to the todo document"),
			mcp.Required(),
		),
		mcp.WithNumber("line",
			mcp.Description("1-based line number of the item"),
			mcp.Required(),
		),
		mcp.WithNumber("priority",
			mcp.Description("Priority from 1 (highest) to 9"),
			mcp.Required(),
		),
	)
}

func setPriorityHandler(rules domain.Rules, open OpenDocument) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := openRequired(req, open)
		if err != nil {
			return toolError(err)
		}
		line := req.GetInt("line", 0)
		priority := req.GetInt("priority", 0)

		result, err := commands.NewTagCommand(doc, rules, line, priority).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Changed {
			if err := doc.Save(); err != nil {
				return toolError(fmt.Errorf("failed to save document: %w", err))
			}
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_item ---

func moveItemTool() mcp.Tool {
	return mcp.NewTool("move_item",
		mcp.WithDescription("Move an item and its sub-items to another category. Clears the item's priority tag."),
		mcp.WithString("file",
			mcp.Description("Path to the todo document"),
			mcp.Required(),
		),
		mcp.WithNumber("line",
			mcp.Description("1-based line number of the item to move"),
			mcp.Required(),
		),
		mcp.WithString("target",
			mcp.Description("Destination category name or shortcut character"),
			mcp.Required(),
		),
	)
}

func moveItemHandler(rules domain.Rules, open OpenDocument) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := openRequired(req, open)
		if err != nil {
			return toolError(err)
		}
		line := req.GetInt("line", 0)
		target := req.GetString("target", "")

		result, err := commands.NewMoveCommand(doc, rules, line, target).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Moved > 0 {
			if err := doc.Save(); err != nil {
				return toolError(fmt.Errorf("failed to save document: %w", err))
			}
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- sort_document ---

func sortDocumentTool() mcp.Tool {
	return mcp.NewTool("sort_document",
		mcp.WithDescription("Sort items by priority within each category: tagged first ascending, then untagged, checked items last. Omit lines to sort the whole document."),
		mcp.WithString("file",
			mcp.Description("Path to the todo document"),
			mcp.Required(),
		),
		mcp.WithNumber("first",
			mcp.Description("1-based first line of the selection"),
		),
		mcp.WithNumber("last",
			mcp.Description("1-based last line of the selection, inclusive"),
		),
	)
}

func sortDocumentHandler(rules domain.Rules, open OpenDocument) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := openRequired(req, open)
		if err != nil {
			return toolError(err)
		}
		first := req.GetInt("first", 0)
		last := req.GetInt("last", 0)

		result, err := commands.NewSortCommand(doc, rules, first, last).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Changed {
			if err := doc.Save(); err != nil {
				return toolError(fmt.Errorf("failed to save document: %w", err))
			}
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
