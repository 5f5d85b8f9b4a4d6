package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("logfmt"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestJSONOutput_IncludesBaseAndCallFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "pet-api", Output: &buf})

	log.With(map[string]any{"component": "router"}).Info("started", map[string]any{
		"port": 5555,
		"":     "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "started", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pet-api", entry["app"])
	assert.Equal(t, "router", entry["component"])
	assert.EqualValues(t, 5555, entry["port"])
	assert.Contains(t, entry, "ts")
	assert.NotContains(t, entry, "")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	log.Warn("visible", map[string]any{"k": "v"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=visible")
	assert.Contains(t, out, "k=v")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestWith_EmptyFieldsReturnsSameLogger(t *testing.T) {
	log := Nop()
	assert.Same(t, log, log.With(nil))
}
