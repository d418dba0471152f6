//go:build integration

package registry

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"testing"

	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/fs"
	"github.com/fisher-hooks/fisher/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func writeHook(t *testing.T, dir, name string, perm os.FileMode, header ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	content := "#!/bin/sh\n"
	for _, line := range header {
		content += line + "\n"
	}
	content += "echo hi\n"

	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	require.NoError(t, os.Chmod(path, perm))
	return path
}

func collectNames(t *testing.T, dir string, recursive bool) []string {
	t.Helper()
	collector, err := NewCollector(fs.NewFS(), dir, recursive)
	require.NoError(t, err)

	var names []string
	for hook, err := range collector.All() {
		require.NoError(t, err)
		names = append(names, hook.Name())
	}
	sort.Strings(names)
	return names
}

func sortedNames(r *Registry) []string {
	names := slices.Collect(r.Names())
	sort.Strings(names)
	return names
}

func TestCollector_Filtering(t *testing.T) {
	dir := tempDir(t)
	writeHook(t, dir, "executable.sh", 0755)
	writeHook(t, dir, "non-executable.sh", 0644)
	writeHook(t, dir, "write-only.sh", 0311)
	writeHook(t, dir, "a-directory/hook-in-subdir.sh", 0755)

	assert.Equal(t, []string{"executable.sh"}, collectNames(t, dir, false))
	assert.Equal(t,
		[]string{filepath.Join("a-directory", "hook-in-subdir.sh"), "executable.sh"},
		collectNames(t, dir, true),
	)
}

func TestCollector_HookDetails(t *testing.T) {
	dir := tempDir(t)
	path := writeHook(t, dir, "example.sh", 0755, `## Fisher-Testing: {}`)

	collector, err := NewCollector(fs.NewFS(), dir, false)
	require.NoError(t, err)

	var found []*hooks.Hook
	for hook, err := range collector.All() {
		require.NoError(t, err)
		found = append(found, hook)
	}

	require.Len(t, found, 1)
	assert.Equal(t, "example.sh", found[0].Name())
	assert.Equal(t, path, found[0].Exec())
	require.Len(t, found[0].Providers(), 1)
	assert.Equal(t, "Testing", found[0].Providers()[0].Name())
}

func TestCollector_SymlinkCycle(t *testing.T) {
	dir := tempDir(t)
	writeHook(t, dir, "sub/hook.sh", 0755)
	require.NoError(t, os.Symlink(dir, filepath.Join(dir, "sub", "loop")))

	assert.Equal(t, []string{filepath.Join("sub", "hook.sh")}, collectNames(t, dir, true))
}

func TestCollector_MissingDirectory(t *testing.T) {
	_, err := NewCollector(fs.NewFS(), filepath.Join(tempDir(t), "missing"), false)
	assert.ErrorIs(t, err, errs.ErrIO)
}

func TestCollector_StopsAfterError(t *testing.T) {
	dir := tempDir(t)
	writeHook(t, dir, "a-invalid.sh", 0755, `## Fisher-InvalidHookDoNotUseThisNamePlease: invalid`)
	writeHook(t, dir, "b-valid.sh", 0755)

	collector, err := NewCollector(fs.NewFS(), dir, false)
	require.NoError(t, err)

	var results []error
	for hook, err := range collector.All() {
		assert.Nil(t, hook)
		results = append(results, err)
	}
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0], errs.ErrProviderNotFound)
	assert.Contains(t, results[0].Error(), "InvalidHookDoNotUseThisNamePlease")

	var annotated *errs.Error
	require.ErrorAs(t, results[0], &annotated)
	assert.Equal(t, "a-invalid.sh", annotated.Hook)
	assert.Equal(t, 2, annotated.Line)

	for range collector.All() {
		t.Fatal("collector yielded after an error")
	}
}

func TestBlueprint_ReloadFollowsDirectory(t *testing.T) {
	dir := tempDir(t)
	writeHook(t, dir, "a.sh", 0755)
	pathB := writeHook(t, dir, "b.sh", 0755)

	other := tempDir(t)
	pathC := writeHook(t, other, "c.sh", 0755)
	hookC, err := hooks.Load(fs.NewFS(), "c.sh", pathC)
	require.NoError(t, err)

	blueprint := NewBlueprint()
	registry := blueprint.Hooks()
	require.NoError(t, blueprint.Insert(hookC))
	require.NoError(t, blueprint.CollectPath(dir, false))
	assert.Equal(t, []string{"a.sh", "b.sh", "c.sh"}, sortedNames(registry))

	require.NoError(t, os.Remove(pathB))
	writeHook(t, dir, "d.sh", 0755)
	require.NoError(t, blueprint.Reload())
	assert.Equal(t, []string{"a.sh", "c.sh", "d.sh"}, sortedNames(registry))

	require.NoError(t, os.RemoveAll(dir))
	assert.ErrorIs(t, blueprint.Reload(), errs.ErrIO)
	assert.Equal(t, []string{"a.sh", "c.sh", "d.sh"}, sortedNames(registry))
}

func TestBlueprint_CollectPathProviderNotFound(t *testing.T) {
	dir := tempDir(t)
	writeHook(t, dir, "invalid.sh", 0755, `## Fisher-InvalidHookDoNotUseThisNamePlease: invalid`)

	blueprint := NewBlueprint()
	err := blueprint.CollectPath(dir, false)
	require.ErrorIs(t, err, errs.ErrProviderNotFound)
	assert.Contains(t, err.Error(), "InvalidHookDoNotUseThisNamePlease")
	assert.Equal(t, 0, blueprint.Hooks().Len())
}
