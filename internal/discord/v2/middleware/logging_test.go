package middleware

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/uuid"
)

func TestLoggingMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	chain := core.MiddlewareChain(
		RequestIDMiddleware(uuid.NewSequenceGenerator("req")),
		LoggingMiddleware(&LogConfig{Logger: logger, LogRequests: true}),
	)
	handler := chain(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return &core.HandlerResult{Response: core.NewResponse("ok")}, nil
	}))

	ctx := core.NewTestInteractionContext().AsCommand("operator", "audio").WithParam("name", "Amiya")
	_, err := handler.Handle(ctx.InteractionContext)
	require.NoError(t, err)

	require.Len(t, hook.Entries, 2)
	assert.Equal(t, logrus.DebugLevel, hook.Entries[0].Level)
	completed := hook.Entries[1]
	assert.Equal(t, "interaction completed", completed.Message)
	assert.Equal(t, "success", completed.Data["status"])
	assert.Equal(t, "req-1", completed.Data["request_id"])
	assert.Equal(t, "Amiya", completed.Data["operator"])
	assert.Equal(t, "audio", completed.Data["subcommand"])
	assert.Equal(t, "req-1", RequestID(ctx.InteractionContext))
}

func TestLoggingMiddleware_DoesNotLogErrorText(t *testing.T) {
	logger, hook := test.NewNullLogger()

	handler := LoggingMiddleware(&LogConfig{Logger: logger})(failingHandler(errors.New("boom")))
	_, err := handler.Handle(core.NewTestInteractionContext().AsCommand("operator", "file").InteractionContext)

	assert.EqualError(t, err, "boom")
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "error", hook.LastEntry().Data["status"])
	assert.NotContains(t, hook.LastEntry().Data, logrus.ErrorKey)
}

func TestLoggingMiddleware_Filter(t *testing.T) {
	logger, hook := test.NewNullLogger()

	handler := LoggingMiddleware(&LogConfig{
		Logger:        logger,
		RequestFilter: func(ctx *core.InteractionContext) bool { return ctx.IsCommand() },
	})(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return nil, nil
	}))

	_, err := handler.Handle(core.NewTestInteractionContext().AsComponent("pager:next:abc").InteractionContext)
	require.NoError(t, err)
	assert.Empty(t, hook.Entries)
}
