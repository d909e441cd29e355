package ports

import "os/exec"

// EditorOpener opens a todo document in the user's external editor.
type EditorOpener interface {
	// OpenFile opens the file in the editor resolved from $EDITOR,
	// falling back to common editors.
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening the file, for integrating
	// with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
