package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotedesk/logging"
)

type contextKey string

// RequestIDKey stores the request id in the request context.
const RequestIDKey contextKey = "requestId"

// RequestIDHeader is echoed on every API response.
const RequestIDHeader = "X-Request-Id"

// GetRequestID extracts the request id from the request context.
func GetRequestID(e *core.RequestEvent) string {
	if val, ok := e.Request.Context().Value(RequestIDKey).(string); ok {
		return val
	}
	return ""
}

// RequestLogger returns the global logger tagged with the request id, method
// and path of e.
func RequestLogger(e *core.RequestEvent) *zap.Logger {
	fields := []zap.Field{
		zap.String("method", e.Request.Method),
		zap.String("path", e.Request.URL.Path),
	}
	if id := GetRequestID(e); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return logging.With(fields...)
}

// RequestIDMiddleware reuses an incoming X-Request-Id or generates one,
// stores it in the request context, stamps it on the response and logs the
// request once the handler chain returns.
func RequestIDMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(e.Request.Context(), RequestIDKey, id)
		e.Request = e.Request.WithContext(ctx)
		e.Response.Header().Set(RequestIDHeader, id)

		start := time.Now()
		err := e.Next()

		RequestLogger(e).Debug("request",
			zap.Int("status", e.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("failed", err != nil))
		return err
	}
}
