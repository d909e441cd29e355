package domain

import "time"

// IndexedItem is a cached row of the document index: one parent item line
// from one todo document.
type IndexedItem struct {
	Path     string // document path relative to the indexed directory
	Line     int    // 0-based position of the parent line
	Category string // containing category name, empty when uncategorized
	Text     string // bare content (marker, checkbox, and priority stripped)
	Priority int    // 0 when untagged
	Checked  bool
}

// SyncStats holds statistics from one index sync.
type SyncStats struct {
	FilesScanned int
	FilesIndexed int
	FilesDeleted int
	ItemsIndexed int
	Duration     time.Duration
}
