// Package providers implements the validators that decide whether a request
// may trigger a hook and which environment the hook receives.
package providers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/events"
	"github.com/fisher-hooks/fisher/pkg/requests"
)

// EnvVar is one environment entry contributed by a provider.
type EnvVar struct {
	Key   string
	Value string
}

// Provider validates requests for a hook and derives its environment.
type Provider interface {
	// Name is used to build FISHER_<NAME>_<KEY> variables.
	Name() string
	Validate(req requests.Request) requests.RequestType
	Env(req requests.Request) []EnvVar
}

// StatusSubscriber is implemented by providers triggered by status events.
type StatusSubscriber interface {
	Provider
	Events() []events.Kind
}

type factory func(config string) (Provider, error)

var factories = map[string]factory{
	"Testing":    newTesting,
	"Standalone": newStandalone,
	"Status":     newStatus,
	"GitHub":     newGitHub,
}

// New builds the provider called name from its raw header configuration.
func New(name, config string) (Provider, error) {
	build, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderNotFound, name)
	}
	return build(config)
}

// Names returns the names of every available provider, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// decodeConfig unmarshals a JSON header configuration. An empty config means "{}".
func decodeConfig(config string, v any) error {
	config = strings.TrimSpace(config)
	if config == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(config), v); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidInput, err)
	}
	return nil
}
