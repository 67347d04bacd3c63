// Package xlog provides structured logging handler construction for use
// with [log/slog].
//
// It supports multiple output formats ([FormatJSON], [FormatLogfmt], and
// [FormatText]) and severity levels ([LevelDebug] through [LevelError]).
// Use [NewHandler] to create a handler directly, or use [Config] with CLI
// flag integration via [github.com/spf13/pflag] and shell completion
// support via [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := xlog.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	_ = cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// A [Publisher] fans out log output to multiple subscribers, which is
// useful for displaying logs inside a Bubble Tea TUI:
//
//	pub := xlog.NewPublisher()
//	handler := xlog.NewHandler(pub, xlog.LevelInfo, xlog.FormatJSON)
//	logger := slog.New(handler)
//
//	sub := pub.Subscribe()
//	go func() {
//		for entry := range sub.C() {
//			// Deliver entry to the TUI.
//		}
//	}()
package xlog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Handler is the [slog.Handler] type this package constructs.
type Handler = slog.Handler

// Level is the severity threshold for a [Handler].
type Level = slog.Level

// Severity levels, re-exported from [log/slog] for callers that don't want
// to import it directly.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt (key=value) format with source
	// locations attached.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs logs in the same key=value shape as FormatLogfmt
	// but without source locations, for quieter human-facing output.
	FormatText Format = "text"
)

// Sentinel errors returned while parsing log configuration.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewHandlerFromStrings creates a [Handler] from level and format strings,
// wrapping parse failures in [ErrInvalidArgument].
func NewHandlerFromStrings(w io.Writer, levelStr, formatStr string) (Handler, error) {
	level, err := GetLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := GetFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, level, format), nil
}

// NewHandler creates a [Handler] with the specified level and format.
func NewHandler(w io.Writer, level Level, format Format) Handler {
	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		})

	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		})

	case FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}

	return nil
}

// GetLevel parses a log level string and returns the corresponding [Level].
func GetLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// GetFormat parses a log format string and returns the corresponding
// [Format].
func GetFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains(GetAllFormats(), f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// GetAllFormats returns every supported [Format].
func GetAllFormats() []Format {
	return []Format{FormatJSON, FormatLogfmt, FormatText}
}

// GetAllFormatStrings returns every supported format as a string, for use
// in flag help text and shell completions.
func GetAllFormatStrings() []string {
	formats := GetAllFormats()
	out := make([]string, len(formats))

	for i, f := range formats {
		out[i] = string(f)
	}

	return out
}

// GetAllLevelStrings returns every supported level string, for use in flag
// help text and shell completions.
func GetAllLevelStrings() []string {
	return []string{"debug", "info", "warn", "error"}
}
