package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelWarn)
	})
	return &buf
}

func TestLevels(t *testing.T) {
	t.Run("default level hides info", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel(LevelWarn)

		Info("hidden message")
		Warn("shown message")

		assert.NotContains(t, buf.String(), "hidden message")
		assert.Contains(t, buf.String(), "shown message")
	})

	t.Run("silent drops errors", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel(LevelSilent)

		Error("dropped")

		assert.Empty(t, buf.String())
		assert.Equal(t, LevelSilent, GetLevel())
	})
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		verbose bool
		want    Level
	}{
		{name: "defaults", want: LevelWarn},
		{name: "debug", debug: true, want: LevelInfo},
		{name: "verbose", verbose: true, want: LevelDebug},
		{name: "both", debug: true, verbose: true, want: LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { SetLevel(LevelWarn) })

			Configure(tt.debug, tt.verbose)
			assert.Equal(t, tt.want, GetLevel())
		})
	}
}

func TestComponentFields(t *testing.T) {
	buf := captureOutput(t)
	SetLevel(LevelDebug)

	SQL().WithField("rows", 200).Debug("built statement")
	WithFields(map[string]any{"path": "sql/comments.sql"}).Info("wrote file")

	out := buf.String()
	assert.Contains(t, out, "component=sql")
	assert.Contains(t, out, "rows=200")
	assert.Contains(t, out, "path=sql/comments.sql")
}
