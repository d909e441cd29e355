package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"priolist/internal/domain"
)

func newTestIndex(t *testing.T) (*Index, string) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dir := t.TempDir()
	idx := NewIndex(domain.DefaultRules())
	if err := idx.Open(dir); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx, dir
}

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
}

func TestSync(t *testing.T) {
	idx, dir := newTestIndex(t)

	writeDoc(t, dir, "todo.md", "## Work\n- [ ] [p2] Review draft\n  - [ ] notes\n- [x] Fix bug\n\n## Home\n- [ ] Buy milk\n")
	writeDoc(t, dir, "notes.txt", "not a todo document\n")

	stats, err := idx.Sync()
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if stats.FilesScanned != 1 {
		t.Errorf("FilesScanned = %d, want 1", stats.FilesScanned)
	}
	if stats.FilesIndexed != 1 {
		t.Errorf("FilesIndexed = %d, want 1", stats.FilesIndexed)
	}
	// headings, sub-items and blank lines are not items
	if stats.ItemsIndexed != 3 {
		t.Errorf("ItemsIndexed = %d, want 3", stats.ItemsIndexed)
	}
}

func TestSync_SkipsUnchanged(t *testing.T) {
	idx, dir := newTestIndex(t)
	writeDoc(t, dir, "todo.md", "- [ ] One thing\n")

	if _, err := idx.Sync(); err != nil {
		t.Fatalf("first Sync() error = %v", err)
	}
	stats, err := idx.Sync()
	if err != nil {
		t.Fatalf("second Sync() error = %v", err)
	}
	if stats.FilesIndexed != 0 {
		t.Errorf("FilesIndexed = %d, want 0 for unchanged file", stats.FilesIndexed)
	}
}

func TestSync_DropsDeleted(t *testing.T) {
	idx, dir := newTestIndex(t)
	writeDoc(t, dir, "gone.md", "- [ ] Ephemeral\n")

	if _, err := idx.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "gone.md")); err != nil {
		t.Fatalf("remove doc: %v", err)
	}

	stats, err := idx.Sync()
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if stats.FilesDeleted != 1 {
		t.Errorf("FilesDeleted = %d, want 1", stats.FilesDeleted)
	}

	items, err := idx.SearchItems("Ephemeral")
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("SearchItems() = %d items after delete, want 0", len(items))
	}
}

func TestSync_ReindexesModified(t *testing.T) {
	idx, dir := newTestIndex(t)
	path := filepath.Join(dir, "todo.md")
	writeDoc(t, dir, "todo.md", "- [ ] Old text\n")

	if _, err := idx.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	writeDoc(t, dir, "todo.md", "- [ ] New text\n")
	// mtime resolution is one second on some filesystems
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if _, err := idx.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	items, err := idx.SearchItems("Old text")
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("stale rows survived re-index: %v", items)
	}
	items, err = idx.SearchItems("New text")
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("SearchItems(new) = %d items, want 1", len(items))
	}
}

func TestSearchItems(t *testing.T) {
	idx, dir := newTestIndex(t)
	writeDoc(t, dir, "todo.md", "## Work\n- [ ] [p1] Review the draft\n- [ ] Buy milk\n")

	if _, err := idx.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	items, err := idx.SearchItems("draft")
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("SearchItems() = %d items, want 1", len(items))
	}

	it := items[0]
	if it.Path != "todo.md" {
		t.Errorf("Path = %q, want todo.md", it.Path)
	}
	if it.Line != 1 {
		t.Errorf("Line = %d, want 1", it.Line)
	}
	if it.Category != "Work" {
		t.Errorf("Category = %q, want Work", it.Category)
	}
	if it.Text != "Review the draft" {
		t.Errorf("Text = %q, want bare content", it.Text)
	}
	if it.Priority != 1 {
		t.Errorf("Priority = %d, want 1", it.Priority)
	}
}

func TestTopItems(t *testing.T) {
	idx, dir := newTestIndex(t)
	writeDoc(t, dir, "a.md", "- [ ] [p3] Third\n- [ ] [p1] First\n- [x] [p1] Done anyway\n- [ ] Untagged\n")
	writeDoc(t, dir, "b.md", "- [ ] [p2] Second\n")

	if _, err := idx.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	items, err := idx.TopItems(2)
	if err != nil {
		t.Fatalf("TopItems() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("TopItems(2) = %d items, want 2", len(items))
	}
	if items[0].Text != "First" || items[1].Text != "Second" {
		t.Errorf("TopItems order = [%q, %q], want [First, Second]", items[0].Text, items[1].Text)
	}
}
