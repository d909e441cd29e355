package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"priolist/internal/domain"
	"priolist/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.DocIndex using SQLite. One database per indexed
// directory, stored under XDG_DATA_HOME.
type Index struct {
	db    *sql.DB
	dir   string
	rules domain.Rules
}

var _ ports.DocIndex = (*Index)(nil)

// NewIndex creates a new SQLite index using the given parsing rules.
func NewIndex(rules domain.Rules) *Index {
	return &Index{rules: rules}
}

// Open initializes the index for the given document directory.
func (idx *Index) Open(dir string) error {
	if len(dir) > 0 && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	idx.dir = dir
	dbPath := databasePath(dir)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS files (
			path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS items (
			path TEXT NOT NULL,
			line INTEGER NOT NULL,
			category TEXT NOT NULL,
			text TEXT NOT NULL,
			priority INTEGER NOT NULL,
			checked INTEGER NOT NULL,
			PRIMARY KEY (path, line)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_items_priority ON items(checked, priority);
		CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.checkSchema(); err != nil {
		db.Close()
		return err
	}

	return nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// SearchItems returns indexed items whose text matches the query.
func (idx *Index) SearchItems(query string) ([]domain.IndexedItem, error) {
	rows, err := idx.db.Query(`
		SELECT path, line, category, text, priority, checked
		FROM items
		WHERE text LIKE ?
		ORDER BY path, line
	`, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// TopItems returns unchecked, prioritized items ordered by priority.
func (idx *Index) TopItems(limit int) ([]domain.IndexedItem, error) {
	rows, err := idx.db.Query(`
		SELECT path, line, category, text, priority, checked
		FROM items
		WHERE checked = 0 AND priority > 0
		ORDER BY priority, path, line
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]domain.IndexedItem, error) {
	var items []domain.IndexedItem
	for rows.Next() {
		var it domain.IndexedItem
		var checked int
		if err := rows.Scan(&it.Path, &it.Line, &it.Category, &it.Text, &it.Priority, &checked); err != nil {
			return nil, err
		}
		it.Checked = checked != 0
		items = append(items, it)
	}
	return items, rows.Err()
}

// checkSchema drops all cached rows when the schema version changed.
func (idx *Index) checkSchema() error {
	var version string
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)

	if version != schemaVersion {
		_, err := idx.db.Exec(`
			DELETE FROM files;
			DELETE FROM items;
			INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		`, schemaVersion)
		if err != nil {
			return fmt.Errorf("failed to reset index: %w", err)
		}
	}
	return nil
}

// databasePath returns the path for the SQLite database.
func databasePath(dir string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "priolist", hashDir(dir)+".db")
}

// hashDir returns a short hash of the directory path, used as the DB name.
func hashDir(dir string) string {
	h := sha256.Sum256([]byte(dir))
	return hex.EncodeToString(h[:8])
}
