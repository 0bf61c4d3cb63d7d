package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "skin"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"control": "PushButton", "hints": 3})
	log.Info("theme loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "theme loaded", entry["message"])
	require.Equal(t, "PushButton", entry["control"])
	require.EqualValues(t, 3, entry["hints"])
	require.Equal(t, "skin", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "WARN", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	log.Info("nor this")
	require.Equal(t, "", strings.TrimSpace(buf.String()))

	log.Warn("invalid gradient stops")
	require.Contains(t, buf.String(), "invalid gradient stops")
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.With("path", "theme.yaml")
	log.Error(errors.New("boom"), "reload failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "reload failed", entry["message"])
	require.Equal(t, "theme.yaml", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "chatty")
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.WithFields(map[string]any{"a": 1}).Warn("ignored")
		nilLogger.With("a", 1).Error(errors.New("x"), "ignored")
		Nop().Warn("ignored")
	})
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("hello")
	require.Contains(t, buf.String(), "hello")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestZerologKeepsFieldsAndLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Writer: buf, Component: "prism"})
	require.NoError(t, err)

	base := log.With("package", "gradient").Zerolog()
	base.Info().Msg("dropped")
	require.Zero(t, buf.Len())

	base.Warn().Msg("invalid gradient stops")
	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "gradient", entry["package"])
	require.Equal(t, "prism", entry["component"])

	var nilLogger *Logger
	require.Equal(t, zerolog.Disabled, nilLogger.Zerolog().GetLevel())
}
