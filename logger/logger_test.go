package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := New(Options{Subsystem: "tuplegen", JSON: true, MinLevel: slog.LevelInfo, Output: &buf})

	log.Debug("hidden")
	log.Info("generated", "kinds", 12)

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "generated", record["msg"])
	assert.Equal(t, "tuplegen", record["subsystem"])
	assert.InDelta(t, 12, record["kinds"], 0)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := New(Options{MinLevel: slog.LevelDebug, Output: &buf})

	log.Debug("rendering kind", "name", "Int")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "name=Int")
	assert.NotContains(t, buf.String(), "subsystem")
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("returns the context logger", func(t *testing.T) {
		t.Parallel()

		log := slogt.New(t)
		ctx := WithLogger(context.Background(), log)

		assert.Same(t, log, Get(ctx))

		Get(ctx).Info("routed through the test logger")
	})

	t.Run("falls back to the default logger", func(t *testing.T) {
		t.Parallel()

		assert.NotNil(t, Get(context.Background()))
		assert.NotNil(t, Get(nil)) //nolint:staticcheck
	})
}

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer

	log := ConfigureLoggingWithOptions(Options{Subsystem: "test", JSON: true, Output: &buf})

	assert.Same(t, log, slog.Default())

	slog.Info("through the default")

	assert.Contains(t, buf.String(), `"msg":"through the default"`)
	assert.Contains(t, buf.String(), `"subsystem":"test"`)
}
