package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrEnvOverride     = errors.New("failed to apply environment overrides")
	// Configuration validation errors.
	ErrHooksPathEmpty     = errors.New("hooks_path cannot be empty")
	ErrInvalidWorkers     = errors.New("workers must be at least 1")
	ErrInvalidOutputLimit = errors.New("output_limit cannot be negative")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("fisher configuration not found. Run 'fisher init' to initialize")
)
