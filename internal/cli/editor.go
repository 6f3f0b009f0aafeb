package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Editor runs an external editor command such as "vim" or "code --wait".
type Editor struct {
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// EditorFromEnv returns an Editor for $VISUAL, falling back to $EDITOR,
// attached to the process's standard streams.
func EditorFromEnv() *Editor {
	return &Editor{
		Command: getEditor(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// Edit opens content in the editor and returns the saved result.
// The suffix names the temporary file type (e.g. ".yaml") so editors
// can pick syntax highlighting.
func (e *Editor) Edit(content []byte, suffix string) ([]byte, error) {
	if strings.TrimSpace(e.Command) == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or pass field flags instead of -i")
	}

	tmpFile, err := os.CreateTemp("", "emp-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := e.run(tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return result, nil
}

// run executes the editor with the given file path.
func (e *Editor) run(path string) error {
	// Split editor into command and args (e.g., "code --wait")
	parts := strings.Fields(e.Command)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
