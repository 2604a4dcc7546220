// Package log provides category-tagged structured logging for gitpanes.
//
// Every call names the subsystem it comes from so a single JSON log file can be
// filtered per concern:
//
//	log.Debug(log.CatEvent, "emitted", "type", e.Type, "source", e.Source)
//
// Logging is discarded until Init or SetOutput is called.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Category identifies the subsystem that produced a log record.
type Category string

const (
	CatUI     Category = "ui"
	CatConfig Category = "config"
	CatEvent  Category = "event"
	CatSlice  Category = "slice"
	CatHost   Category = "host"
	CatTool   Category = "tool"
)

// Options controls where and how much is logged.
type Options struct {
	Enabled  bool
	Level    string // debug, info, warn, error
	File     string // explicit file, no rotation
	Dir      string // directory for uuid-named files when File is empty
	MaxFiles int    // rotation limit for Dir; 0 disables rotation
}

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	output io.Closer
)

// Init configures the package logger. It returns the path of the log file in
// use, or "" when logging is disabled.
func Init(opts Options) (string, error) {
	if !opts.Enabled {
		SetOutput(io.Discard, slog.LevelError)
		return "", nil
	}

	path := opts.File
	if path == "" {
		if opts.Dir == "" {
			return "", fmt.Errorf("log directory is required when no log file is set")
		}
		if err := os.MkdirAll(opts.Dir, 0750); err != nil {
			return "", fmt.Errorf("creating log directory: %w", err)
		}
		if opts.MaxFiles > 0 {
			if err := rotate(opts.Dir, opts.MaxFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		path = filepath.Join(opts.Dir, uuid.New().String()+".log")
	} else if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return "", fmt.Errorf("opening log file: %w", err)
	}

	mu.Lock()
	closeLocked()
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: ParseLevel(opts.Level)}))
	output = f
	mu.Unlock()

	return path, nil
}

// SetOutput redirects logging to w. Tests use it to capture records.
func SetOutput(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Close releases the log file, if any, and discards further records.
func Close() {
	SetOutput(io.Discard, slog.LevelError)
}

func closeLocked() {
	if output != nil {
		_ = output.Close()
		output = nil
	}
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(cat Category, msg string, args ...any) { write(slog.LevelDebug, cat, msg, args) }
func Info(cat Category, msg string, args ...any)  { write(slog.LevelInfo, cat, msg, args) }
func Warn(cat Category, msg string, args ...any)  { write(slog.LevelWarn, cat, msg, args) }
func Error(cat Category, msg string, args ...any) { write(slog.LevelError, cat, msg, args) }

func write(level slog.Level, cat Category, msg string, args []any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.With("category", string(cat)).Log(context.Background(), level, msg, args...)
}

// rotate deletes the oldest .log files in dir so that a new file keeps the
// total at or below maxFiles.
func rotate(dir string, maxFiles int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading log directory: %w", err)
	}

	type logFile struct {
		path    string
		modTime time.Time
	}
	var files []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{path: filepath.Join(dir, entry.Name()), modTime: info.ModTime()})
	}

	if len(files) < maxFiles {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})

	for i := 0; i < len(files)-maxFiles+1; i++ {
		if err := os.Remove(files[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", files[i].path, err)
		}
	}
	return nil
}
