package commands

import (
	"context"
	"strings"
	"testing"

	"priolist/internal/domain"
)

// fakeIndex is an in-memory ports.DocIndex for command tests.
type fakeIndex struct {
	items []domain.IndexedItem
	syncs int
}

func (f *fakeIndex) Open(dir string) error { return nil }
func (f *fakeIndex) Close() error          { return nil }

func (f *fakeIndex) Sync() (*domain.SyncStats, error) {
	f.syncs++
	return &domain.SyncStats{FilesScanned: len(f.items)}, nil
}

func (f *fakeIndex) SearchItems(query string) ([]domain.IndexedItem, error) {
	var out []domain.IndexedItem
	for _, it := range f.items {
		if strings.Contains(strings.ToLower(it.Text), strings.ToLower(query)) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeIndex) TopItems(limit int) ([]domain.IndexedItem, error) {
	var out []domain.IndexedItem
	for _, it := range f.items {
		if it.Checked || it.Priority == 0 {
			continue
		}
		out = append(out, it)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestSearchCommand(t *testing.T) {
	idx := &fakeIndex{items: []domain.IndexedItem{
		{Path: "home.md", Text: "Buy groceries", Priority: 2},
		{Path: "work.md", Text: "Prepare slides"},
	}}

	res, err := NewSearchCommand(idx, "groceries").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].Path != "home.md" {
		t.Errorf("results = %+v", res)
	}
}

func TestSearchCommand_ShortQuery(t *testing.T) {
	idx := &fakeIndex{items: []domain.IndexedItem{{Text: "a"}}}
	res, err := NewSearchCommand(idx, "a").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Errorf("single-character queries should return nothing, got %+v", res)
	}
}

func TestAgendaCommand(t *testing.T) {
	idx := &fakeIndex{items: []domain.IndexedItem{
		{Text: "urgent", Priority: 1},
		{Text: "done", Priority: 1, Checked: true},
		{Text: "untagged"},
	}}

	res, err := NewAgendaCommand(idx, 10).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].Text != "urgent" {
		t.Errorf("agenda = %+v", res)
	}
}

func TestSyncCommand(t *testing.T) {
	idx := &fakeIndex{}
	if _, err := NewSyncCommand(idx).Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.syncs != 1 {
		t.Errorf("syncs = %d, want 1", idx.syncs)
	}
}
