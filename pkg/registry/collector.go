package registry

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/fs"
	"github.com/fisher-hooks/fisher/pkg/hooks"
	"github.com/fisher-hooks/fisher/pkg/logger"
)

// listing is a directory whose entries have not all been visited yet.
type listing struct {
	path    string
	entries []os.DirEntry
}

// Collector discovers hooks under a base directory, breadth first. A file
// is a hook when it is a regular file both executable and readable by
// someone; other files are skipped silently. A Collector is single use:
// it stops for good after the last hook or the first error.
type Collector struct {
	fs        fs.FS
	logger    logger.Logger
	base      string
	recursive bool
	queue     []listing
	visited   map[string]struct{}
	done      bool
}

// NewCollector lists base right away, so a missing directory fails here.
func NewCollector(fsys fs.FS, base string, recursive bool) (*Collector, error) {
	c := &Collector{
		fs:        fsys,
		logger:    logger.NewNoopLogger(),
		base:      base,
		recursive: recursive,
		visited:   make(map[string]struct{}),
	}
	if err := c.enqueue(base); err != nil {
		return nil, err
	}
	return c, nil
}

// WithLogger sets the logger and returns the instance for chaining.
func (c *Collector) WithLogger(l logger.Logger) *Collector {
	c.logger = l
	return c
}

// All yields every hook found, or a single error after which the sequence
// ends. Order between siblings follows directory listing order.
func (c *Collector) All() iter.Seq2[*hooks.Hook, error] {
	return func(yield func(*hooks.Hook, error) bool) {
		for {
			hook, ok, err := c.next()
			if !ok {
				return
			}
			if !yield(hook, err) {
				return
			}
		}
	}
}

func (c *Collector) next() (*hooks.Hook, bool, error) {
	for !c.done && len(c.queue) > 0 {
		head := &c.queue[0]
		if len(head.entries) == 0 {
			c.queue = c.queue[1:]
			continue
		}

		entry := head.entries[0]
		head.entries = head.entries[1:]

		hook, err := c.collect(filepath.Join(head.path, entry.Name()))
		if err != nil {
			c.done = true
			c.queue = nil
			return nil, true, err
		}
		if hook != nil {
			return hook, true, nil
		}
	}

	c.done = true
	return nil, false, nil
}

// enqueue lists dir unless it was already visited through another path.
func (c *Collector) enqueue(dir string) error {
	canonical, err := c.fs.Canonicalize(dir)
	if err != nil {
		return errs.WithFile(errs.IO(err), dir)
	}
	if _, seen := c.visited[canonical]; seen {
		c.logger.Debugf("Skipping %s: directory already visited", dir)
		return nil
	}
	c.visited[canonical] = struct{}{}

	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return errs.WithFile(errs.IO(err), dir)
	}
	c.queue = append(c.queue, listing{path: dir, entries: entries})
	return nil
}

// collect returns the hook at path, or nil when path is not a hook.
func (c *Collector) collect(path string) (*hooks.Hook, error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return nil, errs.WithFile(errs.IO(err), path)
	}

	if info.IsDir() {
		if c.recursive {
			return nil, c.enqueue(path)
		}
		return nil, nil
	}

	perm := info.Mode().Perm()
	if !info.Mode().IsRegular() || perm&0o111 == 0 || perm&0o444 == 0 {
		c.logger.Debugf("Skipping %s: not an executable and readable file", path)
		return nil, nil
	}

	name, err := filepath.Rel(c.base, path)
	if err != nil {
		name = path
	}

	exec, err := c.fs.Canonicalize(path)
	if err != nil {
		return nil, errs.WithHook(errs.WithFile(errs.IO(err), path), name)
	}

	return hooks.Load(c.fs, name, exec)
}
