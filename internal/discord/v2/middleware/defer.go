package middleware

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
)

// DeferConfig configures the defer middleware
type DeferConfig struct {
	// Logger receives defer failures
	Logger logrus.FieldLogger

	// AlwaysDefer forces deferred response for all interactions
	AlwaysDefer bool

	// EphemeralByDefault makes deferred responses ephemeral by default
	EphemeralByDefault bool

	// DeferAfter defers if handler doesn't respond within this duration.
	// Set to 0 to disable auto-defer
	DeferAfter time.Duration
}

// DefaultDeferAfter stays under Discord's three second acknowledgement window
const DefaultDeferAfter = 2 * time.Second

// DeferMiddleware acknowledges slow interactions before Discord gives up on them.
// Commands get a "thinking" deferral; components get a deferred update so the
// pager message is edited in place.
func DeferMiddleware(config *DeferConfig) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			responder := ctx.Responder()
			if responder == nil {
				return next.Handle(ctx)
			}

			if config.AlwaysDefer {
				deferInteraction(ctx, responder, config)
				result, err := next.Handle(ctx)
				if result != nil {
					result.Deferred = responder.IsDeferred()
				}
				return result, err
			}

			if config.DeferAfter <= 0 {
				return next.Handle(ctx)
			}

			type handlerResponse struct {
				result *core.HandlerResult
				err    error
			}
			responseChan := make(chan handlerResponse, 1)

			go func() {
				result, err := next.Handle(ctx)
				responseChan <- handlerResponse{result, err}
			}()

			timer := time.NewTimer(config.DeferAfter)
			defer timer.Stop()

			select {
			case resp := <-responseChan:
				return resp.result, resp.err

			case <-timer.C:
				deferInteraction(ctx, responder, config)

				resp := <-responseChan
				if resp.result != nil {
					resp.result.Deferred = responder.IsDeferred()
				}
				return resp.result, resp.err
			}
		})
	}
}

func deferInteraction(ctx *core.InteractionContext, responder core.InteractionResponder, config *DeferConfig) {
	var err error
	if ctx.IsComponent() {
		err = responder.DeferUpdate()
	} else {
		err = responder.Defer(config.EphemeralByDefault)
	}

	if err != nil && config.Logger != nil {
		config.Logger.WithFields(InteractionFields(ctx)).WithError(err).Warn("failed to defer interaction")
	}
}

// SmartDeferMiddleware defers after DefaultDeferAfter if the handler hasn't returned
func SmartDeferMiddleware(logger logrus.FieldLogger) core.Middleware {
	return DeferMiddleware(&DeferConfig{
		Logger:     logger,
		DeferAfter: DefaultDeferAfter,
	})
}
