package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"priolist/internal/application/commands"
	"priolist/internal/domain"
	"priolist/internal/ports"
)

// Document is a loadable todo document: an editable buffer that can be
// written back to its file.
type Document interface {
	ports.Buffer
	Save() error
}

// OpenDocument loads the document at path.
type OpenDocument func(path string) (Document, error)

// RegisterReadTools adds all read-only document tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, rules domain.Rules, open OpenDocument, index ports.DocIndex) {
	s.AddTool(outlineTool(), outlineHandler(rules, open))
	s.AddTool(listItemsTool(), listItemsHandler(rules, open))
	if index != nil {
		s.AddTool(searchTool(), searchHandler(index))
		s.AddTool(agendaTool(), agendaHandler(index))
	}
}

// --- outline ---

func outlineTool() mcp.Tool {
	return mcp.NewTool("outline",
		mcp.WithDescription("List the categories of a todo document with their shortcut characters and item counts."),
		mcp.WithString("file",
			mcp.Description("Path to the todo document"),
			mcp.Required(),
		),
	)
}

func outlineHandler(rules domain.Rules, open OpenDocument) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := openRequired(req, open)
		if err != nil {
			return toolError(err)
		}

		infos, err := commands.NewListCategoriesCommand(doc, rules).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(infos) == 0 {
			return mcp.NewToolResultText("No categories."), nil
		}

		var sb strings.Builder
		for _, info := range infos {
			fmt.Fprintf(&sb, "[%c] %s  (%d items, line %d)\n",
				info.Shortcut, info.Name, info.Items, info.Start+1)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_items ---

func listItemsTool() mcp.Tool {
	return mcp.NewTool("list_items",
		mcp.WithDescription("List the items of one category, each with its line number and sub-items."),
		mcp.WithString("file",
			mcp.Description("Path to the todo document"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Category name or shortcut character"),
			mcp.Required(),
		),
	)
}

func listItemsHandler(rules domain.Rules, open OpenDocument) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := openRequired(req, open)
		if err != nil {
			return toolError(err)
		}
		category := req.GetString("category", "")
		if category == "" {
			return toolError(fmt.Errorf("category is required"))
		}

		groups, err := commands.NewListItemsCommand(doc, rules, category).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(groups) == 0 {
			return mcp.NewToolResultText("No items."), nil
		}

		var sb strings.Builder
		for _, g := range groups {
			fmt.Fprintf(&sb, "%4d  %s\n", g.Pos+1, g.Parent.Raw)
			for _, sub := range g.Subtree {
				fmt.Fprintf(&sb, "      %s\n", sub)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search all indexed todo documents by keyword."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func searchHandler(index ports.DocIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		items, err := commands.NewSearchCommand(index, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(items) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		return mcp.NewToolResultText(formatItems(items)), nil
	}
}

// --- agenda ---

func agendaTool() mcp.Tool {
	return mcp.NewTool("agenda",
		mcp.WithDescription("List the highest-priority open items across all indexed documents."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return"),
		),
	)
}

func agendaHandler(index ports.DocIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 0)

		items, err := commands.NewAgendaCommand(index, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(items) == 0 {
			return mcp.NewToolResultText("No prioritized items."), nil
		}
		return mcp.NewToolResultText(formatItems(items)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func openRequired(req mcp.CallToolRequest, open OpenDocument) (Document, error) {
	file := req.GetString("file", "")
	if file == "" {
		return nil, fmt.Errorf("file is required")
	}
	return open(file)
}

func formatItems(items []domain.IndexedItem) string {
	var sb strings.Builder
	for _, it := range items {
		pri := "    "
		if it.Priority > 0 {
			pri = fmt.Sprintf("[p%d]", it.Priority)
		}
		cat := it.Category
		if cat == "" {
			cat = "-"
		}
		fmt.Fprintf(&sb, "%s:%d  %s  %s  %s\n", it.Path, it.Line+1, pri, cat, it.Text)
	}
	return sb.String()
}
