package logging

import (
	"context"

	"github.com/google/uuid"
)

// Module names the part of the service a log line comes from.
type Module string

const (
	ModuleReminder  Module = "reminder"
	ModuleScheduler Module = "scheduler"
	ModuleJob       Module = "job"
	ModuleDB        Module = "db"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type ctxKey int

const (
	requestIDKey ctxKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	m, _ := ctx.Value(moduleKey).(Module)
	return m
}

// ValidateAndExtractRequestID keeps a caller-supplied UUID and mints a new
// UUIDv7 for anything else.
func ValidateAndExtractRequestID(header string) string {
	if id, err := uuid.Parse(header); err == nil && id != uuid.Nil {
		return id.String()
	}

	return uuid.Must(uuid.NewV7()).String()
}
