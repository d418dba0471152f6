package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/fisher-hooks/fisher/pkg/fs"
)

// EnvPrefix is the prefix of the environment variables overriding the file.
const EnvPrefix = "FISHER"

// Config represents the application configuration.
type Config struct {
	HooksPath          string `yaml:"hooks_path" split_words:"true"`
	Recursive          bool   `yaml:"recursive" split_words:"true"`
	KeepFailedWorkdirs bool   `yaml:"keep_failed_workdirs" split_words:"true"`
	Workers            int    `yaml:"workers" split_words:"true"`
	TempDir            string `yaml:"temp_dir" split_words:"true"`
	OutputLimit        int    `yaml:"output_limit" split_words:"true"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.HooksPath == "" {
		return ErrHooksPathEmpty
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if c.OutputLimit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOutputLimit, c.OutputLimit)
	}
	return nil
}

// applyEnv overrides fields with FISHER_* variables that are set.
func (c *Config) applyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("%w: %w", ErrEnvOverride, err)
	}
	return nil
}

// expandTildes expands ~ in every path of the configuration.
func (c *Config) expandTildes(fsys fs.FS) error {
	for _, path := range []*string{&c.HooksPath, &c.TempDir} {
		if *path == "" {
			continue
		}
		expanded, err := fsys.ExpandPath(*path)
		if err != nil {
			return err
		}
		*path = expanded
	}
	return nil
}
