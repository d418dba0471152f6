// Package events defines the status events emitted when a job finishes.
package events

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a status event.
type Kind string

// Status event kinds.
const (
	JobCompleted Kind = "job_completed"
	JobFailed    Kind = "job_failed"
)

// ParseKind converts the textual form used in hook headers into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case JobCompleted, JobFailed:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// UnmarshalJSON rejects unknown kinds.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// JobOutput is the outcome of one executed job.
type JobOutput struct {
	HookName string `json:"hook_name"`
	Success  bool   `json:"success"`
	ExitCode *int   `json:"exit_code,omitempty"`
	Signal   *int   `json:"signal,omitempty"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`

	// TriggerStatusHooks is false when the job was itself triggered by a status event.
	TriggerStatusHooks bool `json:"-"`
}

// Event is a status event carrying the output of the job that raised it.
type Event struct {
	Kind   Kind      `json:"event"`
	Output JobOutput `json:"output"`
}

// FromOutput classifies output as a JobCompleted or JobFailed event.
func FromOutput(output JobOutput) Event {
	kind := JobFailed
	if output.Success {
		kind = JobCompleted
	}
	return Event{Kind: kind, Output: output}
}
