// Package jobs runs hooks as sandboxed subprocesses.
package jobs

import (
	"github.com/fisher-hooks/fisher/pkg/hooks"
	"github.com/fisher-hooks/fisher/pkg/providers"
	"github.com/fisher-hooks/fisher/pkg/requests"
)

// Job binds a hook, the provider that accepted the request (if any) and the request itself.
type Job struct {
	hook     *hooks.Hook
	provider providers.Provider
	request  requests.Request
}

// New creates a job. provider may be nil.
func New(hook *hooks.Hook, provider providers.Provider, request requests.Request) *Job {
	return &Job{
		hook:     hook,
		provider: provider,
		request:  request,
	}
}

// Hook returns the hook to execute.
func (j *Job) Hook() *hooks.Hook {
	return j.hook
}

// HookName returns the name of the hook to execute.
func (j *Job) HookName() string {
	return j.hook.Name()
}

// Provider returns the matched provider, or nil.
func (j *Job) Provider() providers.Provider {
	return j.provider
}

// Request returns the triggering request.
func (j *Job) Request() requests.Request {
	return j.request
}

// TriggerStatusHooks reports whether the outcome of this job may trigger
// status hooks. Jobs started by a status event never do.
func (j *Job) TriggerStatusHooks() bool {
	_, isStatus := j.request.(*requests.StatusRequest)
	return !isStatus
}
