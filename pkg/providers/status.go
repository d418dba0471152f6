package providers

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/events"
	"github.com/fisher-hooks/fisher/pkg/requests"
)

// Status subscribes a hook to the outcome of other jobs.
type Status struct {
	Kinds []events.Kind `json:"events"`
	Hooks []string      `json:"hooks"`
}

func newStatus(config string) (Provider, error) {
	p := &Status{}
	if err := decodeConfig(config, p); err != nil {
		return nil, err
	}
	if len(p.Kinds) == 0 {
		return nil, fmt.Errorf("%w: status provider requires at least one event", errs.ErrInvalidInput)
	}
	p.Kinds = uniqueKinds(p.Kinds)
	return p, nil
}

// uniqueKinds drops repeated kinds, keeping the first occurrence of each.
func uniqueKinds(kinds []events.Kind) []events.Kind {
	seen := make(map[events.Kind]struct{}, len(kinds))
	unique := make([]events.Kind, 0, len(kinds))
	for _, kind := range kinds {
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		unique = append(unique, kind)
	}
	return unique
}

// Name returns the provider name.
func (p *Status) Name() string {
	return "Status"
}

// Events returns the subscribed event kinds, in declaration order.
func (p *Status) Events() []events.Kind {
	return p.Kinds
}

// Validate accepts status requests for a subscribed kind, optionally
// restricted to the hooks listed in the configuration.
func (p *Status) Validate(req requests.Request) requests.RequestType {
	status, ok := req.(*requests.StatusRequest)
	if !ok {
		return requests.Invalid
	}
	if !slices.Contains(p.Kinds, status.Event.Kind) {
		return requests.Invalid
	}
	if len(p.Hooks) > 0 && !slices.Contains(p.Hooks, status.Event.Output.HookName) {
		return requests.Invalid
	}
	return requests.ExecuteHook
}

// Env describes the job that raised the event.
func (p *Status) Env(req requests.Request) []EnvVar {
	status, ok := req.(*requests.StatusRequest)
	if !ok {
		return nil
	}

	output := status.Event.Output
	env := []EnvVar{
		{Key: "EVENT", Value: string(status.Event.Kind)},
		{Key: "HOOK_NAME", Value: output.HookName},
		{Key: "SUCCESS", Value: strconv.FormatBool(output.Success)},
	}
	if output.ExitCode != nil {
		env = append(env, EnvVar{Key: "EXIT_CODE", Value: strconv.Itoa(*output.ExitCode)})
	}
	if output.Signal != nil {
		env = append(env, EnvVar{Key: "SIGNAL", Value: strconv.Itoa(*output.Signal)})
	}
	return env
}
