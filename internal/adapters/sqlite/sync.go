package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"priolist/internal/domain"
)

// Sync reconciles the index with the document directory. Files whose mtime
// is unchanged are skipped; deleted files have their rows dropped.
func (idx *Index) Sync() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	indexed := make(map[string]int64)
	rows, err := idx.db.Query(`SELECT path, mtime FROM files`)
	if err != nil {
		return nil, fmt.Errorf("failed to read file table: %w", err)
	}
	for rows.Next() {
		var path string
		var mtime int64
		rows.Scan(&path, &mtime)
		indexed[path] = mtime
	}
	rows.Close()

	seen := make(map[string]bool)

	err = filepath.Walk(idx.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != idx.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}

		relPath, _ := filepath.Rel(idx.dir, path)
		seen[relPath] = true
		stats.FilesScanned++

		mtime := info.ModTime().Unix()
		if prev, ok := indexed[relPath]; ok && prev == mtime {
			return nil
		}

		n, err := idx.indexFile(path, relPath, mtime)
		if err != nil {
			return nil // continue on unreadable file
		}
		stats.FilesIndexed++
		stats.ItemsIndexed += n
		return nil
	})
	if err != nil {
		return stats, err
	}

	for path := range indexed {
		if !seen[path] {
			idx.db.Exec(`DELETE FROM items WHERE path = ?`, path)
			idx.db.Exec(`DELETE FROM files WHERE path = ?`, path)
			stats.FilesDeleted++
		}
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// indexFile replaces all rows for one document inside a transaction.
func (idx *Index) indexFile(fullPath, relPath string, mtime int64) (int, error) {
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return 0, err
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	cats := domain.ScanCategories(idx.rules, lines)

	tx, err := idx.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM items WHERE path = ?`, relPath); err != nil {
		return 0, err
	}

	count := 0
	for pos, raw := range lines {
		ln := domain.ParseLine(idx.rules, raw)
		if ln.IsHeading() || ln.IsSubItem() || strings.TrimSpace(raw) == "" {
			continue
		}

		category := ""
		if cat, ok := domain.CategoryAt(cats, pos); ok {
			category = cat.Name
		}

		checked := 0
		if ln.Check == domain.CheckChecked {
			checked = 1
		}

		_, err := tx.Exec(`
			INSERT INTO items (path, line, category, text, priority, checked)
			VALUES (?, ?, ?, ?, ?, ?)
		`, relPath, pos, category, ln.BareContent(), ln.Priority, checked)
		if err != nil {
			return 0, err
		}
		count++
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO files (path, mtime) VALUES (?, ?)
	`, relPath, mtime); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}
