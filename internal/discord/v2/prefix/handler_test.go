package prefix

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/pager"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/routers"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
	mockgamedata "github.com/KirkDiggler/arknights-bot-discord/internal/gamedata/mock"
	"github.com/KirkDiggler/arknights-bot-discord/internal/repositories/pagers"
	"github.com/KirkDiggler/arknights-bot-discord/internal/uuid"
)

type sentMessage struct {
	channelID string
	data      *discordgo.MessageSend
}

type fakeSender struct {
	sent []sentMessage
	err  error
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, sentMessage{channelID: channelID, data: data})
	if f.err != nil {
		return nil, f.err
	}
	return &discordgo.Message{ChannelID: channelID}, nil
}

func message(content string) *discordgo.Message {
	return &discordgo.Message{
		ChannelID: "channel-1",
		GuildID:   "guild-1",
		Content:   content,
		Author:    &discordgo.User{ID: "doctor"},
	}
}

func newTestHandler(t *testing.T) (*Handler, *mockgamedata.MockClient, *test.Hook) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockgamedata.NewMockClient(ctrl)
	logger, hook := test.NewNullLogger()

	p, err := pager.New(&pager.Config{
		Repository:  pagers.NewInMemory(pagers.RealTimeProvider{}, time.Minute),
		IDGenerator: uuid.NewSequenceGenerator("session"),
		Logger:      logger,
	})
	require.NoError(t, err)

	operators, err := routers.NewOperatorRouter(nil, &routers.OperatorRouterConfig{
		Client: client,
		Pager:  p,
		Logger: logger,
	})
	require.NoError(t, err)

	handler, err := NewHandler(&Config{Operators: operators, Logger: logger})
	require.NoError(t, err)

	return handler, client, hook
}

func TestHandle_IgnoresOtherMessages(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	sender := &fakeSender{}

	bot := message(";operator file Angelina")
	bot.Author.Bot = true

	for _, msg := range []*discordgo.Message{
		message("hello doctor"),
		message("!operator file Angelina"),
		message(";recruit"),
		message(";"),
		bot,
		nil,
	} {
		require.NoError(t, handler.Handle(context.Background(), sender, msg))
	}

	assert.Empty(t, sender.sent)
}

func TestHandle_Help(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	for _, content := range []string{";operator", ";operator recruit Angelina"} {
		sender := &fakeSender{}
		require.NoError(t, handler.Handle(context.Background(), sender, message(content)))

		require.Len(t, sender.sent, 1, content)
		require.Len(t, sender.sent[0].data.Embeds, 1)
		assert.Contains(t, sender.sent[0].data.Embeds[0].Description, "`;operator file <name>`")
	}
}

func TestHandle_MissingName(t *testing.T) {
	handler, _, hook := newTestHandler(t)
	sender := &fakeSender{}

	require.NoError(t, handler.Handle(context.Background(), sender, message(";operator skins")))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].data.Embeds[0].Description, routers.MissingNameMessage)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestHandle_File(t *testing.T) {
	handler, client, _ := newTestHandler(t)
	sender := &fakeSender{}

	client.EXPECT().GetOperatorFile(gomock.Any(), "Lappland the Decadenza").Return(&gamedata.OperatorFile{
		Name:     "Lappland the Decadenza",
		CharID:   "char_1038_whitw2",
		DrawName: "Skade",
		InfoName: "Asami Seto",
		Stories: []*gamedata.Story{
			{Title: "Basic Info", Segments: []string{"[Code Name] Lappland"}},
			{Title: "Physical Exam", Segments: []string{"[Physical Strength] Excellent"}},
		},
	}, nil)

	require.NoError(t, handler.Handle(context.Background(), sender, message("  ;operator file Lappland the Decadenza")))

	require.Len(t, sender.sent, 1)
	sent := sender.sent[0]
	assert.Equal(t, "channel-1", sent.channelID)
	assert.Equal(t, "Lappland the Decadenza", sent.data.Embeds[0].Title)
	assert.Equal(t, "Page 1/2", sent.data.Embeds[0].Footer.Text)
	assert.NotEmpty(t, sent.data.Components)
}

func TestHandle_NotFound(t *testing.T) {
	handler, client, hook := newTestHandler(t)
	sender := &fakeSender{}

	client.EXPECT().GetOperatorInfo(gomock.Any(), "Nobody").Return(nil, apperr.NotFoundf("operator Nobody not found"))

	require.NoError(t, handler.Handle(context.Background(), sender, message(";operator info Nobody")))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, core.GenericErrorMessage, sender.sent[0].data.Content)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "Nobody", hook.LastEntry().Data["operator"])
}

func TestHandle_SendFailure(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	sender := &fakeSender{err: errors.New("missing access")}

	err := handler.Handle(context.Background(), sender, message(";operator"))
	assert.True(t, apperr.IsTransport(err))
}

func TestHandle_CustomPrefix(t *testing.T) {
	_, client, _ := newTestHandler(t)
	logger, _ := test.NewNullLogger()

	operators, err := routers.NewOperatorRouter(nil, &routers.OperatorRouterConfig{Client: client, Logger: logger})
	require.NoError(t, err)
	handler, err := NewHandler(&Config{Prefix: "!", Operators: operators, Logger: logger})
	require.NoError(t, err)

	sender := &fakeSender{}
	require.NoError(t, handler.Handle(context.Background(), sender, message("!operator")))
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].data.Embeds[0].Description, "`!operator info <name>`")
}

func TestNewHandler_RequiresDependencies(t *testing.T) {
	_, err := NewHandler(nil)
	assert.Error(t, err)

	_, err = NewHandler(&Config{})
	assert.Error(t, err)
}
