package providers

import (
	"crypto/subtle"
	"fmt"

	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/requests"
)

const (
	defaultStandaloneParam  = "secret"
	defaultStandaloneHeader = "X-Fisher-Secret"
)

// Standalone accepts web requests carrying a shared secret.
type Standalone struct {
	Secret     string `json:"secret"`
	ParamName  string `json:"param_name"`
	HeaderName string `json:"header_name"`
}

func newStandalone(config string) (Provider, error) {
	p := &Standalone{
		ParamName:  defaultStandaloneParam,
		HeaderName: defaultStandaloneHeader,
	}
	if err := decodeConfig(config, p); err != nil {
		return nil, err
	}
	if p.Secret == "" {
		return nil, fmt.Errorf("%w: standalone provider requires a secret", errs.ErrInvalidInput)
	}
	return p, nil
}

// Name returns the provider name.
func (p *Standalone) Name() string {
	return "Standalone"
}

// Validate accepts the request when the secret is in the configured parameter or header.
func (p *Standalone) Validate(req requests.Request) requests.RequestType {
	web, ok := req.(*requests.WebRequest)
	if !ok {
		return requests.Invalid
	}

	if value, ok := web.Param(p.ParamName); ok && p.matches(value) {
		return requests.ExecuteHook
	}
	if value := web.Headers.Get(p.HeaderName); value != "" && p.matches(value) {
		return requests.ExecuteHook
	}
	return requests.Invalid
}

// Env is empty for standalone hooks.
func (p *Standalone) Env(_ requests.Request) []EnvVar {
	return nil
}

func (p *Standalone) matches(value string) bool {
	return subtle.ConstantTimeCompare([]byte(value), []byte(p.Secret)) == 1
}
