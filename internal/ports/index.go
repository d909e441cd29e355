package ports

import "priolist/internal/domain"

// DocIndex provides cached search access over a directory of todo
// documents. Query operations hit the cache only; Sync reconciles it with
// the filesystem.
type DocIndex interface {
	// Lifecycle
	Open(dir string) error
	Close() error

	// Sync rescans the directory, re-indexing documents whose mtime
	// changed and dropping rows for deleted files.
	Sync() (*domain.SyncStats, error)

	// SearchItems returns indexed items whose text matches the query.
	SearchItems(query string) ([]domain.IndexedItem, error)

	// TopItems returns unchecked, prioritized items ordered by priority,
	// capped at limit.
	TopItems(limit int) ([]domain.IndexedItem, error)
}
