// Package registry indexes hooks and turns requests and job outputs into jobs.
package registry

import (
	"github.com/google/uuid"

	"github.com/fisher-hooks/fisher/pkg/events"
	"github.com/fisher-hooks/fisher/pkg/hooks"
	"github.com/fisher-hooks/fisher/pkg/providers"
)

// HookProvider pairs a hook with one of its status providers.
type HookProvider struct {
	Hook     *hooks.Hook
	Provider providers.Provider
}

// snapshot is immutable once published by a Blueprint.
type snapshot struct {
	hooks  []*hooks.Hook
	byID   map[uuid.UUID]*hooks.Hook
	byName map[string]*hooks.Hook
	status map[events.Kind][]HookProvider
}

func newSnapshot() *snapshot {
	return &snapshot{
		byID:   make(map[uuid.UUID]*hooks.Hook),
		byName: make(map[string]*hooks.Hook),
		status: make(map[events.Kind][]HookProvider),
	}
}

// insert adds hook to every index. A later hook with the same name replaces
// the earlier one in the name index. A (hook, provider) pair is indexed at
// most once per kind.
func (s *snapshot) insert(hook *hooks.Hook) {
	s.hooks = append(s.hooks, hook)
	s.byID[hook.ID()] = hook
	s.byName[hook.Name()] = hook

	for _, provider := range hook.Providers() {
		subscriber, ok := provider.(providers.StatusSubscriber)
		if !ok {
			continue
		}
		indexed := make(map[events.Kind]bool)
		for _, kind := range subscriber.Events() {
			if indexed[kind] {
				continue
			}
			indexed[kind] = true
			s.status[kind] = append(s.status[kind], HookProvider{Hook: hook, Provider: provider})
		}
	}
}
