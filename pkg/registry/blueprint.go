package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fisher-hooks/fisher/pkg/fs"
	"github.com/fisher-hooks/fisher/pkg/hooks"
	"github.com/fisher-hooks/fisher/pkg/logger"
)

type source struct {
	path      string
	recursive bool
}

// Blueprint owns the sources of the registry: hooks inserted explicitly and
// directories to collect. Every change rebuilds a snapshot from scratch and
// publishes it with a single atomic store; a failed rebuild leaves the
// previous snapshot in place.
type Blueprint struct {
	// mu serializes changes to the sources and rebuilds. Readers never take it.
	mu      sync.Mutex
	added   []*hooks.Hook
	sources []source

	current atomic.Pointer[snapshot]

	fs     fs.FS
	logger logger.Logger
}

// NewBlueprint creates an empty Blueprint using the real filesystem.
func NewBlueprint() *Blueprint {
	b := &Blueprint{
		fs:     fs.NewFS(),
		logger: logger.NewNoopLogger(),
	}
	b.current.Store(newSnapshot())
	return b
}

// WithFS sets the filesystem and returns the instance for chaining.
func (b *Blueprint) WithFS(fsys fs.FS) *Blueprint {
	b.fs = fsys
	return b
}

// WithLogger sets the logger and returns the instance for chaining.
func (b *Blueprint) WithLogger(l logger.Logger) *Blueprint {
	b.logger = l
	return b
}

// Insert adds a hook to the sources and reloads.
func (b *Blueprint) Insert(hook *hooks.Hook) error {
	if hook == nil {
		return ErrNilHook
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.added = append(b.added, hook)
	return b.reload()
}

// CollectPath adds a directory to the sources and reloads.
func (b *Blueprint) CollectPath(path string, recursive bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sources = append(b.sources, source{path: path, recursive: recursive})
	return b.reload()
}

// Reload rebuilds the registry from every source.
func (b *Blueprint) Reload() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.reload()
}

// Hooks returns a read-only view that follows every future reload.
func (b *Blueprint) Hooks() *Registry {
	return &Registry{current: &b.current}
}

func (b *Blueprint) reload() error {
	next := newSnapshot()

	for _, hook := range b.added {
		next.insert(hook)
	}

	for _, src := range b.sources {
		collector, err := NewCollector(b.fs, src.path, src.recursive)
		if err != nil {
			return fmt.Errorf("failed to collect hooks from %s: %w", src.path, err)
		}
		collector.WithLogger(b.logger)

		for hook, err := range collector.All() {
			if err != nil {
				return fmt.Errorf("failed to collect hooks from %s: %w", src.path, err)
			}
			next.insert(hook)
		}
	}

	b.current.Store(next)
	b.logger.Debugf("Reloaded hooks registry: %d hooks", len(next.hooks))
	return nil
}
