// Package prefix answers the operator commands typed as plain messages, e.g. ";operator file Angelina"
package prefix

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/routers"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

// DefaultPrefix starts every message command
const DefaultPrefix = ";"

// MessageSender posts a message to a channel
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the prefix handler dependencies
type Config struct {
	Prefix    string
	Operators *routers.OperatorRouter
	Logger    logrus.FieldLogger
}

// Handler parses prefix commands and runs them through the operator router
type Handler struct {
	prefix    string
	operators *routers.OperatorRouter
	logger    logrus.FieldLogger
}

// NewHandler creates a prefix command handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil || cfg.Operators == nil {
		return nil, apperr.Internalf("prefix handler requires the operator router")
	}
	if cfg.Logger == nil {
		return nil, apperr.Internalf("prefix handler requires a logger")
	}

	h := &Handler{
		prefix:    cfg.Prefix,
		operators: cfg.Operators,
		logger:    cfg.Logger.WithField("component", "prefix"),
	}
	if h.prefix == "" {
		h.prefix = DefaultPrefix
	}

	return h, nil
}

// OnMessageCreate is the discordgo event handler
func (h *Handler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := h.Handle(context.Background(), s, m.Message); err != nil {
		h.logger.WithError(err).WithField("channel_id", m.ChannelID).Error("failed to answer message command")
	}
}

// Handle answers msg when it is an operator command and ignores it otherwise
func (h *Handler) Handle(ctx context.Context, sender MessageSender, msg *discordgo.Message) error {
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return nil
	}

	args, ok := h.parse(msg.Content)
	if !ok {
		return nil
	}

	if len(args) < 2 || !routers.IsSubcommand(args[1]) {
		help := routers.HelpEmbed(h.prefix + routers.OperatorCommand)
		return h.send(sender, msg.ChannelID, core.NewEmbedResponse(help))
	}

	sub := args[1]
	name := strings.Join(args[2:], " ")

	response, err := h.run(ctx, msg.Author.ID, sub, name)
	if err != nil {
		fields := logrus.Fields{
			"source":     "prefix",
			"user_id":    msg.Author.ID,
			"guild_id":   msg.GuildID,
			"channel_id": msg.ChannelID,
			"command":    routers.OperatorCommand,
			"subcommand": sub,
		}
		if name != "" {
			fields["operator"] = name
		}

		response = middleware.ReportError(h.logger, fields, err)
		if response == nil {
			response = core.NewResponse(core.UserMessage(err))
		}
	}

	return h.send(sender, msg.ChannelID, response)
}

func (h *Handler) run(ctx context.Context, ownerID, sub, name string) (*core.Response, error) {
	pages, err := h.operators.Dispatch(ctx, sub, name)
	if err != nil {
		return nil, err
	}
	return h.operators.Present(ctx, ownerID, pages)
}

// parse splits a prefixed operator command into its words
func (h *Handler) parse(content string) ([]string, bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, h.prefix) {
		return nil, false
	}

	args := strings.Fields(strings.TrimPrefix(content, h.prefix))
	if len(args) == 0 || args[0] != routers.OperatorCommand {
		return nil, false
	}

	return args, true
}

func (h *Handler) send(sender MessageSender, channelID string, response *core.Response) error {
	if _, err := sender.ChannelMessageSendComplex(channelID, response.MessageSend()); err != nil {
		return apperr.Transport(err, "failed to send message")
	}
	return nil
}
