package routers

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/pager"
	"github.com/KirkDiggler/arknights-bot-discord/internal/repositories/pagers"
	"github.com/KirkDiggler/arknights-bot-discord/internal/uuid"
)

func newPagerRouter(t *testing.T) (*core.Pipeline, *pager.Pager) {
	t.Helper()
	logger, _ := test.NewNullLogger()

	p, err := pager.New(&pager.Config{
		Repository:  pagers.NewInMemory(pagers.RealTimeProvider{}, time.Minute),
		IDGenerator: uuid.NewSequenceGenerator("session"),
		Logger:      logger,
	})
	require.NoError(t, err)

	pipeline := core.NewPipeline(logger)
	_, err = NewPagerRouter(pipeline, p, logger)
	require.NoError(t, err)

	return pipeline, p
}

func TestPagerRouter_Next(t *testing.T) {
	pipeline, p := newPagerRouter(t)

	_, err := p.Start(context.Background(), "doctor", []*discordgo.MessageEmbed{{Title: "one"}, {Title: "two"}})
	require.NoError(t, err)

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().WithUserID("doctor").AsComponent("pager:next:session-1")
	require.NoError(t, pipeline.Dispatch(ctx.InteractionContext, responder))

	response := responder.LastResponse()
	require.NotNil(t, response)
	assert.True(t, response.Update)
	assert.Equal(t, "two", response.Embeds[0].Title)
}

func TestPagerRouter_Expired(t *testing.T) {
	pipeline, _ := newPagerRouter(t)

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().AsComponent("pager:next:gone")
	require.NoError(t, pipeline.Dispatch(ctx.InteractionContext, responder))

	response := responder.LastResponse()
	require.NotNil(t, response)
	assert.True(t, response.Ephemeral)
	assert.Equal(t, pager.ExpiredMessage, response.Content)
}

func TestPagerRouter_IgnoresOtherDomains(t *testing.T) {
	pipeline, _ := newPagerRouter(t)

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().AsComponent("recruit:next:session-1")
	require.NoError(t, pipeline.Dispatch(ctx.InteractionContext, responder))

	assert.Equal(t, "I don't know how to handle that command.", responder.LastResponse().Content)
}

func TestNewPagerRouter_RequiresPager(t *testing.T) {
	logger, _ := test.NewNullLogger()

	_, err := NewPagerRouter(core.NewPipeline(logger), nil, logger)
	assert.Error(t, err)
}
