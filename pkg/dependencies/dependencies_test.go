//go:build unit

package dependencies

import (
	"testing"

	"github.com/fisher-hooks/fisher/pkg/config"
	"github.com/fisher-hooks/fisher/pkg/fs"
	"github.com/fisher-hooks/fisher/pkg/jobs"
	"github.com/fisher-hooks/fisher/pkg/logger"
	"github.com/fisher-hooks/fisher/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDependencies() *Dependencies {
	return New().WithConfig(config.NewManager(fs.NewFS(), "/tmp/config.yaml"))
}

func TestDependencies_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Dependencies)
		wantErr error
	}{
		{name: "complete", mutate: func(_ *Dependencies) {}},
		{name: "missing fs", mutate: func(d *Dependencies) { d.FS = nil }, wantErr: ErrFSMissing},
		{name: "missing config", mutate: func(d *Dependencies) { d.Config = nil }, wantErr: ErrConfigMissing},
		{name: "missing logger", mutate: func(d *Dependencies) { d.Logger = nil }, wantErr: ErrLoggerMissing},
		{name: "missing blueprint", mutate: func(d *Dependencies) { d.Blueprint = nil }, wantErr: ErrBlueprintMissing},
		{name: "missing executor", mutate: func(d *Dependencies) { d.Executor = nil }, wantErr: ErrExecutorMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := completeDependencies()
			tt.mutate(deps)

			err := deps.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestDependencies_Validate_AllMissing tests validation failure when all dependencies are missing
func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{}

	// Should return the first missing dependency (FS)
	assert.ErrorIs(t, deps.Validate(), ErrFSMissing)
}

// TestDependencies_New_Defaults tests that New() creates a Dependencies instance with proper defaults
func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Blueprint)
	assert.NotNil(t, deps.Executor)
	assert.Nil(t, deps.Config)
}

func TestDependencies_FluentAPI(t *testing.T) {
	fsys := fs.NewFS()
	log := logger.NewNoopLogger()
	manager := config.NewManager(fsys, "/tmp/config.yaml")
	blueprint := registry.NewBlueprint()
	executor := jobs.NewExecutor()

	deps := New().
		WithFS(fsys).
		WithLogger(log).
		WithConfig(manager).
		WithBlueprint(blueprint).
		WithExecutor(executor)

	assert.Equal(t, fsys, deps.FS)
	assert.Equal(t, log, deps.Logger)
	assert.Equal(t, manager, deps.Config)
	assert.Same(t, blueprint, deps.Blueprint)
	assert.Same(t, executor, deps.Executor)
}

func TestDependencies_NewDispatcher(t *testing.T) {
	deps := completeDependencies().Apply(config.Config{HooksPath: "/srv/hooks", Workers: 2})
	require.NoError(t, deps.Validate())

	dispatcher := deps.NewDispatcher(2)
	require.NotNil(t, dispatcher)
	dispatcher.Close()
}
