//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fisher-hooks/fisher/configs"
	"github.com/fisher-hooks/fisher/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{HooksPath: "/srv/hooks", Workers: 2},
		},
		{
			name:    "empty hooks path",
			config:  Config{Workers: 2},
			wantErr: ErrHooksPathEmpty,
		},
		{
			name:    "negative output limit",
			config:  Config{HooksPath: "/srv/hooks", Workers: 1, OutputLimit: -1},
			wantErr: ErrInvalidOutputLimit,
		},
		{
			name:    "no workers",
			config:  Config{HooksPath: "/srv/hooks"},
			wantErr: ErrInvalidWorkers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfigYAML(t *testing.T) {
	var config Config
	require.NoError(t, yaml.Unmarshal(configs.DefaultConfigYAML, &config))

	assert.Equal(t, "~/.fisher/hooks", config.HooksPath)
	assert.Equal(t, 2, config.Workers)
	assert.False(t, config.Recursive)
	assert.False(t, config.KeepFailedWorkdirs)
	assert.Empty(t, config.TempDir)
	assert.Equal(t, 1<<20, config.OutputLimit)
}

func TestRealManager_GetConfig(t *testing.T) {
	path := writeConfig(t, "hooks_path: /srv/hooks\nrecursive: true\n")

	config, err := NewManager(fs.NewFS(), path).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "/srv/hooks", config.HooksPath)
	assert.True(t, config.Recursive)
	assert.Equal(t, 2, config.Workers, "missing keys keep their default")
	assert.False(t, config.KeepFailedWorkdirs)
}

func TestRealManager_GetConfig_ExpandsTildes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, "hooks_path: ~/hooks\ntemp_dir: ~/tmp\n")

	config, err := NewManager(fs.NewFS(), path).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "hooks"), config.HooksPath)
	assert.Equal(t, filepath.Join(home, "tmp"), config.TempDir)
}

func TestRealManager_GetConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "hooks_path: /srv/hooks\nworkers: 4\n")
	t.Setenv("FISHER_HOOKS_PATH", "/opt/hooks")
	t.Setenv("FISHER_WORKERS", "8")
	t.Setenv("FISHER_KEEP_FAILED_WORKDIRS", "true")

	config, err := NewManager(fs.NewFS(), path).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "/opt/hooks", config.HooksPath)
	assert.Equal(t, 8, config.Workers)
	assert.True(t, config.KeepFailedWorkdirs)
}

func TestRealManager_GetConfig_InvalidEnv(t *testing.T) {
	path := writeConfig(t, "hooks_path: /srv/hooks\n")
	t.Setenv("FISHER_WORKERS", "many")

	_, err := NewManager(fs.NewFS(), path).GetConfig()
	assert.ErrorIs(t, err, ErrEnvOverride)
}

func TestRealManager_GetConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewManager(fs.NewFS(), filepath.Join(t.TempDir(), "missing.yaml")).GetConfig()
		assert.ErrorIs(t, err, ErrConfigNotInitialized)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := NewManager(fs.NewFS(), writeConfig(t, "hooks_path: [")).GetConfig()
		assert.ErrorIs(t, err, ErrConfigFileParse)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := NewManager(fs.NewFS(), writeConfig(t, "hooks_path: /srv/hooks\nworkers: 0\n")).GetConfig()
		assert.ErrorIs(t, err, ErrInvalidWorkers)
	})
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	config, err := NewManager(fs.NewFS(), filepath.Join(t.TempDir(), "missing.yaml")).GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".fisher", "hooks"), config.HooksPath)
	assert.Equal(t, 2, config.Workers)

	_, err = NewManager(fs.NewFS(), writeConfig(t, "hooks_path: [")).GetConfigWithFallback()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_SaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	manager := NewManager(fs.NewFS(), path)

	want := Config{HooksPath: "/srv/hooks", Recursive: true, Workers: 3}
	require.NoError(t, manager.SaveConfig(want))

	got, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, path, manager.GetConfigPath())
}
