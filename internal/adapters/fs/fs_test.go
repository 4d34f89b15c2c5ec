package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spmlink/internal/adapters/fs"
	"go.trai.ch/spmlink/internal/core/domain"
)

func TestFingerprint(t *testing.T) {
	a := fs.Fingerprint([]byte("platform :ios, '15.1'\n"))
	b := fs.Fingerprint([]byte("platform :ios, '15.1'\n"))
	c := fs.Fingerprint([]byte("platform :ios, '16.0'\n"))

	assert.Len(t, a, 16)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFileFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Podfile")
	require.NoError(t, os.WriteFile(path, []byte("target 'example' do\nend\n"), 0o600))

	got, err := fs.FileFingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, fs.Fingerprint([]byte("target 'example' do\nend\n")), got)

	_, err = fs.FileFingerprint(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to open file")
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.pbxproj")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, fs.WriteFileAtomic(path, []byte("new"), 0o640))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "project.pbxproj")
	err := fs.WriteFileAtomic(path, []byte("x"), 0o600)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to create temp file")
}

func TestWriteIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Podfile")

	written, err := fs.WriteIfChanged(path, []byte("a\n"), 0o600)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = fs.WriteIfChanged(path, []byte("a\n"), 0o600)
	require.NoError(t, err)
	assert.False(t, written)

	require.NoError(t, os.Chmod(path, 0o640))
	written, err = fs.WriteIfChanged(path, []byte("b\n"), 0o600)
	require.NoError(t, err)
	assert.True(t, written)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm(), "existing mode is kept")
}

func TestScriptStore_Read(t *testing.T) {
	store := fs.NewScriptStore()
	dir := t.TempDir()

	text, exists, err := store.Read(filepath.Join(dir, "Podfile"))
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, text)

	path := filepath.Join(dir, "Podfile")
	require.NoError(t, os.WriteFile(path, []byte("platform :ios\n"), 0o600))
	text, exists, err = store.Read(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "platform :ios\n", text)
}

func TestScriptStore_ReadDirectory(t *testing.T) {
	store := fs.NewScriptStore()
	dir := t.TempDir()

	_, _, err := store.Read(dir)
	require.Error(t, err)
	assert.True(t, domain.IsIO(err))
	assert.ErrorIs(t, err, domain.ErrScriptReadFailed)
	assert.ErrorContains(t, err, domain.ErrScriptReadFailed.Error())

	var ioErr *domain.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, dir, ioErr.Path)
}

func TestScriptStore_Write(t *testing.T) {
	store := fs.NewScriptStore()
	path := filepath.Join(t.TempDir(), "Podfile")

	written, err := store.Write(path, "post_install do |installer|\nend\n")
	require.NoError(t, err)
	assert.True(t, written)

	written, err = store.Write(path, "post_install do |installer|\nend\n")
	require.NoError(t, err)
	assert.False(t, written)

	_, err = store.Write(filepath.Join(t.TempDir(), "missing", "Podfile"), "x")
	require.Error(t, err)
	assert.True(t, domain.IsIO(err))
	assert.ErrorIs(t, err, domain.ErrScriptWriteFailed)
}
