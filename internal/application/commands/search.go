package commands

import (
	"context"

	"priolist/internal/domain"
	"priolist/internal/ports"
)

// SearchCommand queries the document index for items matching a keyword.
type SearchCommand struct {
	index ports.DocIndex
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index ports.DocIndex, query string) *SearchCommand {
	return &SearchCommand{index: index, Query: query}
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.IndexedItem, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}
	return c.index.SearchItems(c.Query)
}

// AgendaCommand returns the highest-priority open items across every
// indexed document.
type AgendaCommand struct {
	index ports.DocIndex
	Limit int
}

// NewAgendaCommand creates a new AgendaCommand
func NewAgendaCommand(index ports.DocIndex, limit int) *AgendaCommand {
	return &AgendaCommand{index: index, Limit: limit}
}

// Execute runs the agenda command
func (c *AgendaCommand) Execute(ctx context.Context) ([]domain.IndexedItem, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = 20
	}
	return c.index.TopItems(limit)
}

// SyncCommand reconciles the document index with the filesystem.
type SyncCommand struct {
	index ports.DocIndex
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(index ports.DocIndex) *SyncCommand {
	return &SyncCommand{index: index}
}

// Execute runs the sync command
func (c *SyncCommand) Execute(ctx context.Context) (*domain.SyncStats, error) {
	return c.index.Sync()
}
