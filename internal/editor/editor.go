package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/amterp/swatch/internal/model"
)

// Editor handles editor resolution and invocation.
type Editor struct {
	globalConfig *model.GlobalConfig
}

// NewEditor creates a new Editor.
func NewEditor(globalConfig *model.GlobalConfig) *Editor {
	return &Editor{globalConfig: globalConfig}
}

// Resolve returns the editor command to use.
// Order: global config > $VISUAL > $EDITOR > vi
func (e *Editor) Resolve() string {
	// 1. Global config
	if e.globalConfig != nil && e.globalConfig.Editor != "" {
		return e.globalConfig.Editor
	}

	// 2. Environment variables
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if editor := os.Getenv(key); editor != "" {
			return editor
		}
	}

	// 3. Default
	return "vi"
}

// Command builds the editor invocation for path. Editors configured with
// arguments (e.g. "code --wait") are split on whitespace.
func (e *Editor) Command(path string) (*exec.Cmd, error) {
	fields := strings.Fields(e.Resolve())
	if len(fields) == 0 {
		return nil, errors.New("no editor configured")
	}
	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// EditFile opens path in the editor and waits for it to exit.
func (e *Editor) EditFile(path string) error {
	cmd, err := e.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}
