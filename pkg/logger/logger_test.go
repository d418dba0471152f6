//go:build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefaultLogger(&buf, false)

	log.Logf("collected %d hooks", 3)
	log.Debugf("skipping %s", "notes.txt")
	log.Errorf("hook %s failed", "a.sh")

	out := buf.String()
	assert.Contains(t, out, "collected 3 hooks")
	assert.Contains(t, out, "hook a.sh failed")
	assert.NotContains(t, out, "skipping notes.txt")
}

func TestDefaultLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefaultLogger(&buf, true)

	log.Debugf("skipping %s", "notes.txt")

	assert.Contains(t, buf.String(), "skipping notes.txt")
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	assert.NotPanics(t, func() {
		log.Logf("a %s", "b")
		log.Debugf("a %s", "b")
		log.Errorf("a %s", "b")
	})
}
