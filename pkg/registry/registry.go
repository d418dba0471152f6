package registry

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/fisher-hooks/fisher/pkg/events"
	"github.com/fisher-hooks/fisher/pkg/hooks"
	"github.com/fisher-hooks/fisher/pkg/jobs"
	"github.com/fisher-hooks/fisher/pkg/requests"
)

// Registry is a read-only view over the snapshot published by a Blueprint.
// It always reflects the latest successful reload. Sequences returned by
// its methods pin the snapshot that is current when iteration starts, so a
// reload racing with a loop never mixes two snapshots.
type Registry struct {
	current *atomic.Pointer[snapshot]
}

func (r *Registry) load() *snapshot {
	return r.current.Load()
}

// GetByName returns the hook called name, or nil.
func (r *Registry) GetByName(name string) *hooks.Hook {
	return r.load().byName[name]
}

// IDExists reports whether a hook with id is registered.
func (r *Registry) IDExists(id uuid.UUID) bool {
	_, ok := r.load().byID[id]
	return ok
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	return len(r.load().hooks)
}

// All iterates over every hook in insertion order.
func (r *Registry) All() iter.Seq[*hooks.Hook] {
	return func(yield func(*hooks.Hook) bool) {
		for _, hook := range r.load().hooks {
			if !yield(hook) {
				return
			}
		}
	}
}

// Names iterates over the names of every hook in insertion order.
func (r *Registry) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for hook := range r.All() {
			if !yield(hook.Name()) {
				return
			}
		}
	}
}

// StatusHooks returns the hooks and providers subscribed to kind, in registration order.
func (r *Registry) StatusHooks(kind events.Kind) []HookProvider {
	return append([]HookProvider(nil), r.load().status[kind]...)
}

// JobFor validates req against the hook called name and builds the job when
// the request asks for the hook to be executed. The returned job is nil for
// any other request type.
func (r *Registry) JobFor(name string, req requests.Request) (*jobs.Job, requests.RequestType, error) {
	hook := r.GetByName(name)
	if hook == nil {
		return nil, requests.Invalid, fmt.Errorf("%w: %s", ErrHookNotFound, name)
	}

	result, provider := hook.Validate(req)
	if result != requests.ExecuteHook {
		return nil, result, nil
	}
	return jobs.New(hook, provider, req), result, nil
}

// JobsAfterOutput returns the jobs of the status hooks subscribed to the
// event raised by output. The boolean is false when output must not
// trigger status hooks.
func (r *Registry) JobsAfterOutput(output events.JobOutput) (iter.Seq[*jobs.Job], bool) {
	if !output.TriggerStatusHooks {
		return nil, false
	}
	return newStatusJobs(r, events.FromOutput(output)).All(), true
}
