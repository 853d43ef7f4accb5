package library

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditor is used when neither VISUAL nor EDITOR is set.
const fallbackEditor = "vim"

// Edit opens the named quiz in the user's editor and waits for it to exit.
func (l *Library) Edit(name string) error {
	path, err := l.Resolve(name)
	if err != nil {
		return err
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = fallbackEditor
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", editor, err)
	}
	return nil
}
