package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// WriteFileAtomic replaces path with data. The content is staged in a temporary file in the
// same directory and renamed over the target, so readers never observe a partial write.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp file"), "dir", dir)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, "failed to write temp file"), "path", tmpPath)
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temp file"), "path", tmpPath)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace file"), "path", path)
	}
	return nil
}

// WriteIfChanged writes data to path unless the file already holds identical content.
// An existing file keeps its permissions; a new one is created with perm.
// It reports whether the file was written.
func WriteIfChanged(path string, data []byte, perm os.FileMode) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
		current, hashErr := FileFingerprint(path)
		if hashErr != nil {
			return false, hashErr
		}
		if current == Fingerprint(data) {
			return false, nil
		}
	case !errors.Is(err, iofs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	if err := WriteFileAtomic(path, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
