package middleware

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/uuid"
)

type requestIDKey struct{}

// LogConfig configures logging behavior
type LogConfig struct {
	// Logger receives the request and completion entries
	Logger logrus.FieldLogger

	// LogRequests logs incoming interactions at debug level
	LogRequests bool

	// RequestFilter filters which requests to log
	RequestFilter func(*core.InteractionContext) bool
}

// LoggingMiddleware logs each interaction and how long it took. Errors are left
// to the error reporter so each one is logged once.
func LoggingMiddleware(config *LogConfig) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if config.RequestFilter != nil && !config.RequestFilter(ctx) {
				return next.Handle(ctx)
			}

			fields := InteractionFields(ctx)
			if requestID := RequestID(ctx); requestID != "" {
				fields["request_id"] = requestID
			}
			entry := config.Logger.WithFields(fields)

			if config.LogRequests {
				entry.Debug("interaction received")
			}

			start := time.Now()
			result, err := next.Handle(ctx)

			entry.WithFields(logrus.Fields{
				"duration_ms": time.Since(start).Milliseconds(),
				"status":      resultStatus(result, err),
			}).Info("interaction completed")

			return result, err
		})
	}
}

func resultStatus(result *core.HandlerResult, err error) string {
	switch {
	case err != nil:
		return "error"
	case result == nil || result.Response == nil:
		return "no_response"
	case result.Response.Ephemeral:
		return "ephemeral"
	default:
		return "success"
	}
}

// RequestIDMiddleware tags every interaction with a generated request id
func RequestIDMiddleware(generator uuid.Generator) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			ctx.WithValue(requestIDKey{}, generator.New())
			return next.Handle(ctx)
		})
	}
}

// RequestID returns the id assigned by RequestIDMiddleware, if any
func RequestID(ctx *core.InteractionContext) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
