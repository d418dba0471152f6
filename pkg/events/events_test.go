//go:build unit

package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("job_completed")
	require.NoError(t, err)
	assert.Equal(t, JobCompleted, kind)

	kind, err = ParseKind("job_failed")
	require.NoError(t, err)
	assert.Equal(t, JobFailed, kind)

	_, err = ParseKind("job_exploded")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKind_UnmarshalJSON(t *testing.T) {
	var kinds []Kind
	require.NoError(t, json.Unmarshal([]byte(`["job_failed","job_completed"]`), &kinds))
	assert.Equal(t, []Kind{JobFailed, JobCompleted}, kinds)

	assert.ErrorIs(t, json.Unmarshal([]byte(`["nope"]`), &kinds), ErrUnknownKind)
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &kinds))
}

func TestFromOutput(t *testing.T) {
	assert.Equal(t, JobCompleted, FromOutput(JobOutput{Success: true}).Kind)

	code := 1
	event := FromOutput(JobOutput{HookName: "a.sh", ExitCode: &code})
	assert.Equal(t, JobFailed, event.Kind)
	assert.Equal(t, "a.sh", event.Output.HookName)
}
