package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptStore = (*ScriptStore)(nil)

// ScriptStore reads and writes text build scripts on the local file system.
type ScriptStore struct{}

// NewScriptStore creates a new ScriptStore.
func NewScriptStore() *ScriptStore {
	return &ScriptStore{}
}

// Read returns the script text, or exists=false when there is no file at path.
func (s *ScriptStore) Read(path string) (text string, exists bool, err error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, domain.NewIOError(path,
			zerr.With(domain.WrapCause(domain.ErrScriptReadFailed, err), "path", path))
	}
	return string(data), true, nil
}

// Write replaces the script with text, keeping the mode of an existing file.
func (s *ScriptStore) Write(path, text string) (bool, error) {
	written, err := WriteIfChanged(path, []byte(text), domain.FilePerm)
	if err != nil {
		return false, domain.NewIOError(path,
			zerr.With(domain.WrapCause(domain.ErrScriptWriteFailed, err), "path", path))
	}
	return written, nil
}
