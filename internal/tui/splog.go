package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	warnMarker  = "⚠️  "
	errorMarker = "❌ "
	tipMarker   = "💡 "
)

// consoleHandler prints the bare message of each record, one per line.
// Debug records are dropped unless DEBUG is set.
type consoleHandler struct {
	out   io.Writer
	debug bool
	muted func() bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level > slog.LevelDebug || h.debug
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	if h.muted() {
		return nil
	}
	_, err := io.WriteString(h.out, r.Message+"\n")
	return err
}

func (h *consoleHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(string) slog.Handler { return h }

// teeHandler hands each record to every handler that accepts its level
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}

// envInt reads a non-negative integer override, keeping def when unset or invalid
func envInt(name string, def int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil || v < 0 {
		return def
	}
	return v
}

// rotatingLogFile opens the debug log, rotated by size.
// CODE_LOG_MAX_SIZE (MB), CODE_LOG_MAX_BACKUPS and CODE_LOG_MAX_AGE (days) override the limits.
func rotatingLogFile(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    max(envInt("CODE_LOG_MAX_SIZE", 1), 1),
		MaxBackups: envInt("CODE_LOG_MAX_BACKUPS", 2),
		MaxAge:     max(envInt("CODE_LOG_MAX_AGE", 30), 1),
	}, nil
}

// Splog prints user-facing output and mirrors it, with debug detail, to a log file
type Splog struct {
	out     io.Writer
	logger  *slog.Logger
	file    *slog.Logger
	logFile io.Closer
	quiet   bool
}

// NewSplog creates a console-only Splog on stdout
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig(os.Stdout, "")
	return splog
}

// NewSplogWithConfig creates a Splog writing to w. When logFilePath is set,
// every record, debug included, is also written to that rotating file.
func NewSplogWithConfig(w io.Writer, logFilePath string) (*Splog, error) {
	s := &Splog{out: w}
	handlers := teeHandler{&consoleHandler{
		out:   w,
		debug: os.Getenv("DEBUG") != "",
		muted: s.IsQuiet,
	}}

	if logFilePath != "" {
		f, err := rotatingLogFile(logFilePath)
		if err != nil {
			return nil, err
		}
		fileHandler := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
		s.file = slog.New(fileHandler)
		s.logFile = f
	}

	s.logger = slog.New(handlers)
	return s, nil
}

// SetQuiet mutes console output; the log file still receives everything
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet reports whether console output is muted
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

func (s *Splog) log(level slog.Level, marker, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, marker+msg)
}

// Info prints a message
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "", format, args)
}

// Warn prints a message with a warning marker
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, warnMarker, format, args)
}

// Error prints a message with an error marker
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, errorMarker, format, args)
}

// Debug logs to the file, and to the console when DEBUG is set
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, "", format, args)
}

// Tip prints a hint for the next step
func (s *Splog) Tip(format string, args ...interface{}) {
	s.log(slog.LevelInfo, tipMarker, format, args)
}

// Command echoes a git command that is about to run, in green
func (s *Splog) Command(args []string) {
	line := "git " + strings.Join(args, " ")
	if s.file != nil {
		s.file.Debug("exec", "command", line)
	}
	if !s.quiet {
		_, _ = fmt.Fprintln(s.out, ColorGreen(line))
	}
}

// Close flushes and closes the log file, if any
func (s *Splog) Close() error {
	if s.logFile == nil {
		return nil
	}
	return s.logFile.Close()
}
