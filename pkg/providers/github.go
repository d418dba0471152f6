package providers

import (
	"slices"

	"github.com/google/go-github/v62/github"

	"github.com/fisher-hooks/fisher/pkg/requests"
)

const (
	githubEventHeader     = "X-GitHub-Event"
	githubDeliveryHeader  = "X-GitHub-Delivery"
	githubSignature256    = "X-Hub-Signature-256"
	githubSignatureLegacy = "X-Hub-Signature"
	githubPingEvent       = "ping"
)

// GitHub accepts GitHub webhook deliveries.
type GitHub struct {
	Secret string   `json:"secret"`
	Kinds  []string `json:"events"`
}

func newGitHub(config string) (Provider, error) {
	p := &GitHub{}
	if err := decodeConfig(config, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Name returns the provider name.
func (p *GitHub) Name() string {
	return "GitHub"
}

// Validate checks the event header, the payload signature when a secret is
// configured, and the event filter. Ping deliveries are never filtered.
func (p *GitHub) Validate(req requests.Request) requests.RequestType {
	web, ok := req.(*requests.WebRequest)
	if !ok {
		return requests.Invalid
	}

	event := web.Headers.Get(githubEventHeader)
	if event == "" {
		return requests.Invalid
	}

	if p.Secret != "" {
		signature := web.Headers.Get(githubSignature256)
		if signature == "" {
			signature = web.Headers.Get(githubSignatureLegacy)
		}
		if err := github.ValidateSignature(signature, []byte(web.RawBody), []byte(p.Secret)); err != nil {
			return requests.Invalid
		}
	}

	if event == githubPingEvent {
		return requests.Ping
	}
	if len(p.Kinds) > 0 && !slices.Contains(p.Kinds, event) {
		return requests.Invalid
	}
	return requests.ExecuteHook
}

// Env exposes the event name and the delivery id.
func (p *GitHub) Env(req requests.Request) []EnvVar {
	web, ok := req.(*requests.WebRequest)
	if !ok {
		return nil
	}
	return []EnvVar{
		{Key: "EVENT", Value: web.Headers.Get(githubEventHeader)},
		{Key: "DELIVERY_ID", Value: web.Headers.Get(githubDeliveryHeader)},
	}
}
