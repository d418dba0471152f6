// Package dependencies provides a centralized dependency container for the Fisher application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/fisher-hooks/fisher/pkg/config"
	"github.com/fisher-hooks/fisher/pkg/dispatch"
	"github.com/fisher-hooks/fisher/pkg/fs"
	"github.com/fisher-hooks/fisher/pkg/jobs"
	"github.com/fisher-hooks/fisher/pkg/logger"
	"github.com/fisher-hooks/fisher/pkg/registry"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing        = errors.New("fs dependency is required but not set")
	ErrConfigMissing    = errors.New("config dependency is required but not set")
	ErrLoggerMissing    = errors.New("logger dependency is required but not set")
	ErrBlueprintMissing = errors.New("blueprint dependency is required but not set")
	ErrExecutorMissing  = errors.New("executor dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS        fs.FS
	Config    config.Manager
	Logger    logger.Logger
	Blueprint *registry.Blueprint
	Executor  *jobs.Executor
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	fsys := fs.NewFS()
	return &Dependencies{
		FS:        fsys,
		Logger:    logger.NewNoopLogger(),
		Blueprint: registry.NewBlueprint().WithFS(fsys),
		Executor:  jobs.NewExecutor().WithFS(fsys),
		// Note: Config is left nil as it requires a config path
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fsys fs.FS) *Dependencies {
	d.FS = fsys
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(l logger.Logger) *Dependencies {
	d.Logger = l
	return d
}

// WithBlueprint sets the registry blueprint and returns the instance for chaining.
func (d *Dependencies) WithBlueprint(b *registry.Blueprint) *Dependencies {
	d.Blueprint = b
	return d
}

// WithExecutor sets the job executor and returns the instance for chaining.
func (d *Dependencies) WithExecutor(e *jobs.Executor) *Dependencies {
	d.Executor = e
	return d
}

// Apply propagates the shared filesystem and logger, and the settings of
// cfg, to the blueprint and the executor.
func (d *Dependencies) Apply(cfg config.Config) *Dependencies {
	d.Blueprint.WithFS(d.FS).WithLogger(d.Logger)
	d.Executor.
		WithFS(d.FS).
		WithLogger(d.Logger).
		WithTempDir(cfg.TempDir).
		WithKeepFailedWorkdirs(cfg.KeepFailedWorkdirs).
		WithOutputLimit(cfg.OutputLimit)
	return d
}

// NewDispatcher creates a dispatcher running jobs on the executor and
// fanning their outputs out to the blueprint's status hooks.
func (d *Dependencies) NewDispatcher(workers int) *dispatch.Dispatcher {
	return dispatch.NewDispatcher(d.Executor, d.Blueprint.Hooks(), workers).WithLogger(d.Logger)
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Blueprint == nil, ErrBlueprintMissing},
		{d.Executor == nil, ErrExecutorMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
