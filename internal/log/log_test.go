package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestCategoryIsRecorded(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, slog.LevelDebug)
	t.Cleanup(Close)

	Debug(CatEvent, "emitted", "type", "commit:selected")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	require.Equal(t, "event", records[0]["category"])
	require.Equal(t, "emitted", records[0]["msg"])
	require.Equal(t, "commit:selected", records[0]["type"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, slog.LevelWarn)
	t.Cleanup(Close)

	Debug(CatUI, "hidden")
	Info(CatUI, "hidden too")
	Warn(CatSlice, "refresh failed")
	Error(CatHost, "boom")

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)
	require.Equal(t, "WARN", records[0]["level"])
	require.Equal(t, "ERROR", records[1]["level"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInit_Disabled(t *testing.T) {
	path, err := Init(Options{Enabled: false})
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestInit_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gitpanes.log")
	got, err := Init(Options{Enabled: true, Level: "debug", File: path})
	require.NoError(t, err)
	t.Cleanup(Close)
	require.Equal(t, path, got)

	Info(CatConfig, "loaded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"category":"config"`)
}

func TestInit_DirRequiresDir(t *testing.T) {
	_, err := Init(Options{Enabled: true})
	require.Error(t, err)
}

func TestInit_DirCreatesUUIDFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Init(Options{Enabled: true, Dir: dir})
	require.NoError(t, err)
	t.Cleanup(Close)

	require.Equal(t, dir, filepath.Dir(path))
	require.Equal(t, ".log", filepath.Ext(path))
	require.Len(t, strings.TrimSuffix(filepath.Base(path), ".log"), 36)
}

func TestRotate_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0600))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, ts, ts))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0600))

	require.NoError(t, rotate(dir, 3))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	require.True(t, os.IsNotExist(err), "oldest log should be removed")
	_, err = os.Stat(filepath.Join(dir, "c.log"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "keep.txt"))
	require.NoError(t, err)
}

func TestRotate_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0600))

	require.NoError(t, rotate(dir, 5))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	require.NoError(t, err)
}
