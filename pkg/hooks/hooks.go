// Package hooks defines the hook: an executable file plus the providers
// declared in its header comments.
package hooks

import (
	"github.com/google/uuid"

	"github.com/fisher-hooks/fisher/pkg/providers"
	"github.com/fisher-hooks/fisher/pkg/requests"
)

// Hook is immutable once constructed and may be shared between registry
// snapshots and running jobs.
type Hook struct {
	id        uuid.UUID
	name      string
	exec      string
	providers []providers.Provider
}

// New creates a hook with a fresh process-unique id.
func New(name, exec string, provs []providers.Provider) *Hook {
	return &Hook{
		id:        uuid.New(),
		name:      name,
		exec:      exec,
		providers: append([]providers.Provider(nil), provs...),
	}
}

// ID returns the id assigned when the hook was loaded.
func (h *Hook) ID() uuid.UUID {
	return h.id
}

// Name returns the display name, the path relative to the collected directory.
func (h *Hook) Name() string {
	return h.name
}

// Exec returns the canonical path of the executable.
func (h *Hook) Exec() string {
	return h.exec
}

// Providers returns a copy of the declared providers, in declaration order.
func (h *Hook) Providers() []providers.Provider {
	return append([]providers.Provider(nil), h.providers...)
}

// Validate returns the verdict of the first provider accepting req, together
// with that provider. A hook without providers accepts any web request.
func (h *Hook) Validate(req requests.Request) (requests.RequestType, providers.Provider) {
	if len(h.providers) == 0 {
		if _, ok := req.(*requests.WebRequest); ok {
			return requests.ExecuteHook, nil
		}
		return requests.Invalid, nil
	}

	for _, provider := range h.providers {
		if result := provider.Validate(req); result != requests.Invalid {
			return result, provider
		}
	}
	return requests.Invalid, nil
}
