// Package config provides configuration management functionality for the Fisher application.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fisher-hooks/fisher/configs"
	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/fs"
)

// DefaultConfigPath is used when no path is given on the command line.
const DefaultConfigPath = "~/.fisher/config.yaml"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsys fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsys,
		configPath: configPath,
	}
}

// GetConfig loads the configuration file, then applies environment overrides.
// Keys missing from the file keep their default value.
func (c *realManager) GetConfig() (Config, error) {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return Config{}, err
	}

	exists, err := c.fs.Exists(path)
	if err != nil {
		return Config{}, errs.IO(err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, path)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return Config{}, errs.WithFile(errs.IO(err), path)
	}

	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errs.WithFile(fmt.Errorf("%w: %w", ErrConfigFileParse, err), path)
	}

	return c.finalize(config)
}

// GetConfigWithFallback loads the configuration file, falling back to the
// default configuration when the file does not exist.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotInitialized) {
		return Config{}, err
	}
	return c.finalize(c.DefaultConfig())
}

// SaveConfig writes config to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return err
	}

	if err := c.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", errs.IO(err))
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", errs.IO(err))
	}
	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the embedded default configuration, paths unexpanded.
func (c *realManager) DefaultConfig() Config {
	config := Config{
		HooksPath:   "~/.fisher/hooks",
		Workers:     2,
		OutputLimit: 1 << 20,
	}
	_ = yaml.Unmarshal(configs.DefaultConfigYAML, &config)
	return config
}

func (c *realManager) finalize(config Config) (Config, error) {
	if err := config.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := config.expandTildes(c.fs); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
