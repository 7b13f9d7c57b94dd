package logging

import (
	"context"

	"go.uber.org/zap"
)

type scopeKey struct{}

// scope is what RequestLogger attaches to a request context.
type scope struct {
	logger        *zap.Logger
	correlationID string
}

func withScope(ctx context.Context, s scope) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, scopeKey{}, s)
}

func scopeFrom(ctx context.Context) (scope, bool) {
	if ctx == nil {
		return scope{}, false
	}
	s, ok := ctx.Value(scopeKey{}).(scope)
	return s, ok
}

// LoggerFromContext returns the request-scoped logger, or the process logger outside a request.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if s, ok := scopeFrom(ctx); ok && s.logger != nil {
		return s.logger
	}
	return Logger()
}

// CorrelationID returns the Cloud Trace resource for the request, falling back
// to the request ID. It is empty outside a request.
func CorrelationID(ctx context.Context) string {
	s, _ := scopeFrom(ctx)
	return s.correlationID
}

func LogInfo(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Info(msg, fields...)
}

func LogWarn(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Warn(msg, fields...)
}

// LogError logs msg at error level, with err attached when non-nil.
func LogError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	LoggerFromContext(ctx).Error(msg, fields...)
}
