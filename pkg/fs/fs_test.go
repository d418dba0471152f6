//go:build integration

package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	exists, err := fs.Exists(tmpDir)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tmpDir, "missing"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_StatFollowsSymlinks(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "target")
	require.NoError(t, os.Mkdir(target, 0755))
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Symlink(target, link))

	info, err := fs.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = fs.Stat(filepath.Join(tmpDir, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestFS_ReadDirAndReadFile(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file1.txt"), []byte("content1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file2.txt"), []byte("content2"), 0644))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"file1.txt", "file2.txt"}, names)

	content, err := fs.ReadFile(filepath.Join(tmpDir, "file1.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content1"), content)

	_, err = fs.ReadDir(filepath.Join(tmpDir, "non-existing-dir"))
	assert.True(t, os.IsNotExist(err))
}

func TestFS_Open(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "hook.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))

	file, err := fs.Open(path)
	require.NoError(t, err)
	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(content))

	_, err = fs.Open(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestFS_Canonicalize(t *testing.T) {
	fs := NewFS()
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	file := filepath.Join(tmpDir, "hook.sh")
	require.NoError(t, os.WriteFile(file, []byte("#!/bin/sh\n"), 0755))
	link := filepath.Join(tmpDir, "alias.sh")
	require.NoError(t, os.Symlink(file, link))

	resolved, err := fs.Canonicalize(link)
	require.NoError(t, err)
	assert.Equal(t, file, resolved)

	_, err = fs.Canonicalize("")
	assert.ErrorIs(t, err, ErrPathResolution)

	_, err = fs.Canonicalize(filepath.Join(tmpDir, "missing"))
	assert.Error(t, err)
}

func TestFS_MkdirTemp(t *testing.T) {
	fs := NewFS()
	base := t.TempDir()

	first, err := fs.MkdirTemp(base, "fisher-")
	require.NoError(t, err)
	second, err := fs.MkdirTemp(base, "fisher-")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(filepath.Base(first), "fisher-"))

	require.NoError(t, fs.RemoveAll(first))
	exists, err := fs.Exists(first)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_CreateFileWithContent(t *testing.T) {
	fs := NewFS()
	nested := filepath.Join(t.TempDir(), "level1", "level2", "request_body")

	require.NoError(t, fs.CreateFileWithContent(nested, []byte("a body!\n"), 0600))

	content, err := fs.ReadFile(nested)
	require.NoError(t, err)
	assert.Equal(t, "a body!\n", string(content))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()
	target := filepath.Join(t.TempDir(), "config", "config.yaml")

	require.NoError(t, fs.WriteFileAtomic(target, []byte("initial"), 0644))
	require.NoError(t, fs.WriteFileAtomic(target, []byte("updated"), 0600))

	content, err := fs.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(content))

	entries, err := fs.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := fs.ExpandPath("~/hooks")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "hooks"), expanded)

	expanded, err = fs.ExpandPath("/srv/hooks")
	require.NoError(t, err)
	assert.Equal(t, "/srv/hooks", expanded)

	expanded, err = fs.ExpandPath("~other/hooks")
	require.NoError(t, err)
	assert.Equal(t, "~other/hooks", expanded)
}
