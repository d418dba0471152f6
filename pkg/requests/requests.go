// Package requests defines the values that can trigger a hook.
package requests

import (
	"encoding/json"
	"net/http"

	"github.com/fisher-hooks/fisher/pkg/events"
)

// RequestType is the verdict of validating a request against a hook.
type RequestType int

// Request types.
const (
	Invalid RequestType = iota
	ExecuteHook
	Ping
)

func (t RequestType) String() string {
	switch t {
	case ExecuteHook:
		return "execute_hook"
	case Ping:
		return "ping"
	default:
		return "invalid"
	}
}

// Request is anything that can trigger a hook.
type Request interface {
	// Body returns the payload saved for the hook process.
	Body() string
}

// WebRequest is an incoming HTTP request, already decoded by the listener.
type WebRequest struct {
	Source  string
	Headers http.Header
	Params  map[string]string
	RawBody string
}

// NewWebRequest returns an empty WebRequest with initialized maps.
func NewWebRequest() *WebRequest {
	return &WebRequest{
		Headers: make(http.Header),
		Params:  make(map[string]string),
	}
}

// Body returns the raw request body.
func (r *WebRequest) Body() string {
	return r.RawBody
}

// Param returns a request parameter and whether it was present.
func (r *WebRequest) Param(name string) (string, bool) {
	value, ok := r.Params[name]
	return value, ok
}

// StatusRequest is synthesized from the output of a finished job.
type StatusRequest struct {
	Event events.Event
}

// Body returns the JSON encoding of the status event.
func (r *StatusRequest) Body() string {
	data, err := json.Marshal(r.Event)
	if err != nil {
		return ""
	}
	return string(data)
}
