package providers

import "github.com/fisher-hooks/fisher/pkg/requests"

// Testing accepts every web request without the "invalid" parameter.
// Its configuration is ignored.
type Testing struct{}

func newTesting(_ string) (Provider, error) {
	return &Testing{}, nil
}

// Name returns the provider name.
func (p *Testing) Name() string {
	return "Testing"
}

// Validate rejects status requests and requests carrying the "invalid" parameter.
func (p *Testing) Validate(req requests.Request) requests.RequestType {
	web, ok := req.(*requests.WebRequest)
	if !ok {
		return requests.Invalid
	}
	if _, invalid := web.Param("invalid"); invalid {
		return requests.Invalid
	}
	return requests.ExecuteHook
}

// Env exposes the "env" parameter as ENV.
func (p *Testing) Env(req requests.Request) []EnvVar {
	web, ok := req.(*requests.WebRequest)
	if !ok {
		return nil
	}
	if value, ok := web.Param("env"); ok {
		return []EnvVar{{Key: "ENV", Value: value}}
	}
	return nil
}
