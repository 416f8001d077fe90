// Package logger builds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"net"
	"os"
	"strings"
)

// Logger is the logging surface packages depend on. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// New returns a JSON logger writing to stdout, tagged with service and hostname.
func New(service, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, service, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, service, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("hostname", hostname()),
	)
}

// ParseLevel maps debug/info/warn/error to a slog level. Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Nop discards everything. Handy as a default and in tests.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func hostname() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	// fall back to the first interface address
	addrs, _ := net.InterfaceAddrs()
	if len(addrs) > 0 {
		return addrs[0].String()
	}
	return "unknown-host"
}
