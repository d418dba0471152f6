package registry

import (
	"iter"

	"github.com/fisher-hooks/fisher/pkg/events"
	"github.com/fisher-hooks/fisher/pkg/jobs"
	"github.com/fisher-hooks/fisher/pkg/requests"
)

// statusJobs fans a status event out to the hooks subscribed to its kind.
type statusJobs struct {
	registry *Registry
	event    events.Event
}

func newStatusJobs(registry *Registry, event events.Event) *statusJobs {
	return &statusJobs{registry: registry, event: event}
}

// All yields one job per subscribed (hook, provider) pair, in registration
// order. Every job gets its own request carrying the event.
func (s *statusJobs) All() iter.Seq[*jobs.Job] {
	return func(yield func(*jobs.Job) bool) {
		for _, hp := range s.registry.load().status[s.event.Kind] {
			req := &requests.StatusRequest{Event: s.event}
			if !yield(jobs.New(hp.Hook, hp.Provider, req)) {
				return
			}
		}
	}
}
