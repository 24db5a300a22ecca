package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/logging"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/tracing"
)

const (
	RequestIDHeader = "X-Request-ID"
	// CallerHeader carries the user ID set by the auth gateway. It is only
	// logged here; handlers enforce it.
	CallerHeader = "X-User-ID"
)

type GinConfig struct {
	// SkipPaths bypass logging, tracing and metrics.
	SkipPaths []string
	Module    logging.Module
	// ModuleResolver overrides Module per request.
	ModuleResolver func(*gin.Context) logging.Module
	// Worker switches to job-style start/finish logging, used for the
	// scheduler-triggered scan endpoint.
	Worker          bool
	JobNameResolver func(*gin.Context) string
	TracerName      string
	HTTPMetrics     *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skipSet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := skipSet[c.Request.URL.Path]; skip {
			c.Next()

			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.Request.Header.Get(RequestIDHeader))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)

		module := cfg.Module
		if cfg.ModuleResolver != nil {
			module = cfg.ModuleResolver(c)
		}

		if module != "" {
			ctx = logging.WithModule(ctx, module)
		}

		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := otel.Tracer(cfg.TracerName).Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", route),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)
		c.Request.Header.Set(RequestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.String("path", c.Request.URL.Path),
			slog.String("remote_addr", c.ClientIP()),
		}

		if caller := c.Request.Header.Get(CallerHeader); caller != "" {
			attrs = append(attrs, slog.String("user_id", caller))
		}

		finishEvent := "http.request.finish"
		finishMessage := "request completed"

		if cfg.Worker {
			finishEvent = "job.finish"
			finishMessage = "job finished"

			jobName := ""
			if cfg.JobNameResolver != nil {
				jobName = cfg.JobNameResolver(c)
			}

			if jobName == "" {
				jobName = c.Request.URL.Path
			}

			attrs = append(attrs,
				slog.String("job.name", jobName),
				slog.String("job.id", requestID),
			)
			span.SetAttributes(attribute.String("job.name", jobName))

			slog.LogAttrs(ctx, slog.LevelInfo, "job started",
				append([]slog.Attr{slog.String("event", "job.start")}, attrs...)...)
		}

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(attribute.Int("http.response.status_code", status))

		level := slog.LevelInfo

		switch {
		case status >= 500:
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))

			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.Record(ctx, c.Request.Method, route, status, duration)
		}

		attrs = append(attrs,
			slog.String("event", finishEvent),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)

		slog.LogAttrs(ctx, level, finishMessage, attrs...)
	}
}
