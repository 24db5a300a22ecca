package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

type HandlerConfig struct {
	Level         slog.Level
	Service       ServiceInfo
	Environment   Environment
	GCPProjectID  string
	DefaultModule Module
}

// ContextHandler decorates records with the request ID, module and trace
// correlation found in the record's context.
type ContextHandler struct {
	inner         slog.Handler
	projectID     string
	defaultModule Module
}

func NewHandler(w io.Writer, cfg HandlerConfig) *ContextHandler {
	inner := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       cfg.Level,
		ReplaceAttr: replaceAttr,
	})

	attrs := []slog.Attr{}
	if cfg.Service.Name != "" {
		attrs = append(attrs, slog.Group("service",
			slog.String("name", cfg.Service.Name),
			slog.String("version", cfg.Service.Version),
			slog.String("revision", cfg.Service.Revision),
		))
	}

	if cfg.Environment != "" {
		attrs = append(attrs, slog.String("env", string(cfg.Environment)))
	}

	return &ContextHandler{
		inner:         inner.WithAttrs(attrs),
		projectID:     cfg.GCPProjectID,
		defaultModule: cfg.DefaultModule,
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if id := RequestIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}

	module := ModuleFromContext(ctx)
	if module == "" {
		module = h.defaultModule
	}

	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}

	r.AddAttrs(traceAttrs(ctx, h.projectID)...)

	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{
		inner:         h.inner.WithAttrs(attrs),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{
		inner:         h.inner.WithGroup(name),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}

// Cloud Logging reads severity instead of level.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		a.Key = "severity"
	}

	return a
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func plainTraceAttrs(sc trace.SpanContext) []slog.Attr {
	return []slog.Attr{
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	}
}
