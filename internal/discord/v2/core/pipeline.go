package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Error handler for uncaught errors
	errorHandler ErrorHandler

	// Whether to stop on first handler that can handle
	stopOnFirst bool

	logger logrus.FieldLogger

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline(logger logrus.FieldLogger) *Pipeline {
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
		stopOnFirst:  true,
		logger:       logger,
	}
}

// Register adds handlers to the pipeline; middleware added later does not apply to them
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, &middlewareHandler{route: h, chain: wrapped})
	}
}

// middlewareHandler routes on the registered handler and runs the middleware chain.
// Middleware are HandlerFuncs and would otherwise claim every interaction.
type middlewareHandler struct {
	route Handler
	chain Handler
}

func (h *middlewareHandler) CanHandle(ctx *InteractionContext) bool {
	return h.route.CanHandle(ctx)
}

func (h *middlewareHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return h.chain.Handle(ctx)
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// SetStopOnFirst configures whether to stop after the first handler that can handle
func (p *Pipeline) SetStopOnFirst(stop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopOnFirst = stop
}

// Execute runs the pipeline for an interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return p.Dispatch(NewInteractionContext(ctx, s, i), NewDiscordResponder(s, i))
}

// Dispatch runs the handlers for an already built context, answering through responder
func (p *Pipeline) Dispatch(interactionCtx *InteractionContext, responder InteractionResponder) error {
	interactionCtx.WithResponder(responder)

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	stopOnFirst := p.stopOnFirst
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	handled := false
	for _, handler := range handlers {
		if !handler.CanHandle(interactionCtx) {
			continue
		}

		result, err := handler.Handle(interactionCtx)
		if err != nil {
			result = errorHandler(interactionCtx, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result); err != nil {
				return err
			}
		}

		handled = true

		if stopOnFirst || (result != nil && result.StopPropagation) {
			break
		}
	}

	if !handled && !responder.HasResponded() {
		p.logger.WithFields(logrus.Fields{
			"command":   interactionCtx.GetCommandName(),
			"custom_id": interactionCtx.GetCustomID(),
		}).Warn("no handler for interaction")

		return sendResponse(responder, &HandlerResult{
			Response: NewEphemeralResponse("I don't know how to handle that command."),
		})
	}

	return nil
}

// sendResponse sends a response using the responder
func sendResponse(responder InteractionResponder, result *HandlerResult) error {
	if result.Deferred || responder.IsDeferred() {
		return responder.Edit(result.Response)
	}

	return responder.Respond(result.Response)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// defaultErrorHandler shows the error's user message, or the generic one
func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	return &HandlerResult{
		Response: NewEphemeralResponse(UserMessage(err)),
	}
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
