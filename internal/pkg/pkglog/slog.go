package pkglog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const serviceName = "csvboard"

// Options tunes the default logger. The zero value logs JSON at info level to stdout.
type Options struct {
	// Level is one of debug, info, warn or error. Unknown values fall back to info.
	Level string
	// Format is "json" or "text". Text is meant for local runs.
	Format string
	Output io.Writer
}

// InitLogging installs the application logger as the slog default.
//
// Records carry "ts", "severity", the "file" they were logged from (relative
// to internal/), the service name and the request correlation ID.
func InitLogging(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	hopts := &slog.HandlerOptions{
		Level:       parseLevel(opts.Level),
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	}

	var base slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "text") {
		base = slog.NewTextHandler(out, hopts)
	} else {
		base = slog.NewJSONHandler(out, hopts)
	}

	slog.SetDefault(slog.New(&contextHandler{Handler: base}))
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		src, ok := a.Value.Any().(*slog.Source)
		if !ok {
			return a
		}
		if rel := internalPath(src.File); rel != "" {
			return slog.String("file", fmt.Sprintf("%s:%d", rel, src.Line))
		}
		return slog.Attr{}
	}
	return a
}

// internalPath returns file relative to the module's internal/ directory, or
// "" for files outside it.
func internalPath(file string) string {
	_, rest, found := strings.Cut(file, "/internal/")
	if !found {
		return ""
	}
	return filepath.Join("internal", rest)
}

// contextHandler stamps every record with the service name and, when present,
// the correlation ID stored in the context.
type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if cID := GetCorrelationID(ctx); cID != "" && cID != invalidCorrelationID {
		r.AddAttrs(slog.String("_cID", cID))
	}
	r.AddAttrs(slog.String("service", serviceName))

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}
