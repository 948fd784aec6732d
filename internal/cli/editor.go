package cli

import (
	"os"
	"os/exec"

	"github.com/ff-vivek/promptbank/internal/errors"
)

// openEditor writes initial content to a temp file, opens it in the user's
// editor ($EDITOR, then $VISUAL, then vi), and returns the edited result.
func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	tmpFile, err := os.CreateTemp("", "promptbank-*.md")
	if err != nil {
		return "", errors.StorageError("create temp file", err)
	}
	path := tmpFile.Name()
	defer os.Remove(path)

	if _, err := tmpFile.WriteString(initial); err != nil {
		tmpFile.Close()
		return "", errors.StorageError("write temp file", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", errors.StorageError("close temp file", err)
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", errors.InvalidInput("editor exited with an error: " + err.Error())
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", errors.StorageError("read temp file", err)
	}
	return string(edited), nil
}
