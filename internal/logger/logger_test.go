package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"WARNING": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_ConsoleText(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "WARN"

	log, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", "floor", 2)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "floor=2")
}

func TestNew_ConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleFormat = "json"

	log, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Info("generated", "cells", 9)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "generated", rec["msg"])
	assert.EqualValues(t, 9, rec["cells"])
}

func TestNew_FileAndConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = filepath.Join(t.TempDir(), "mazegen.log")

	log, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	log.With("run", "abc").Info("both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run=abc")
	assert.Contains(t, buf.String(), "run=abc")
}

func TestNew_NoHandlers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false

	log, closer, err := New(cfg, os.Stderr)
	require.NoError(t, err)
	defer closer.Close()
	assert.NotNil(t, log)
	log.Info("discarded")
}
