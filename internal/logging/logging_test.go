package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InfoLevelByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug().Msg("hidden")
	logger.Info().Str("analyzer", "security").Msg("Running security analysis...")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Running security analysis...")
	assert.Contains(t, out, "analyzer=security")
	assert.NotContains(t, out, "\x1b[", "no colour for non-terminals")
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.Debug().Msg("exec details")
	assert.Contains(t, buf.String(), "exec details")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
