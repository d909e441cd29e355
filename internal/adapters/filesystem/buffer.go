package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Buffer implements ports.Buffer on top of a plain text file. The file is
// read once on load; edits are applied in memory and written back with Save.
type Buffer struct {
	path            string
	lines           []string
	trailingNewline bool
	dirty           bool
}

// Load reads the file at path into a Buffer. A ~ prefix is expanded to the
// user's home directory. A missing file yields an empty buffer so a first
// Save can create it.
func Load(path string) (*Buffer, error) {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}

	b := &Buffer{path: path, trailingNewline: true}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(data)
	if text == "" {
		return b, nil
	}

	b.trailingNewline = strings.HasSuffix(text, "\n")
	if b.trailingNewline {
		text = text[:len(text)-1]
	}
	b.lines = strings.Split(text, "\n")
	return b, nil
}

// Path returns the file backing this buffer.
func (b *Buffer) Path() string {
	return b.path
}

// Lines returns the current document lines. Callers must not mutate the
// returned slice.
func (b *Buffer) Lines() []string {
	return b.lines
}

// Len returns the number of lines in the document.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Dirty reports whether the buffer has unsaved edits.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// ReplaceRange splices repl into [start, end) as a single edit.
func (b *Buffer) ReplaceRange(start, end int, repl []string) error {
	if start < 0 || end < start || end > len(b.lines) {
		return fmt.Errorf("replace range [%d, %d) out of bounds for %d lines", start, end, len(b.lines))
	}

	next := make([]string, 0, len(b.lines)-(end-start)+len(repl))
	next = append(next, b.lines[:start]...)
	next = append(next, repl...)
	next = append(next, b.lines[end:]...)
	b.lines = next
	b.dirty = true
	return nil
}

// Save writes the document back to its file. The write goes through a
// temporary file in the same directory followed by a rename, so a crash
// mid-write never truncates the original.
func (b *Buffer) Save() error {
	text := strings.Join(b.lines, "\n")
	if b.trailingNewline && len(b.lines) > 0 {
		text += "\n"
	}

	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".priolist-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if info, err := os.Stat(b.path); err == nil {
		os.Chmod(tmpName, info.Mode())
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace file: %w", err)
	}

	b.dirty = false
	return nil
}
