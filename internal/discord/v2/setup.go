package v2

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/formatters"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/pager"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/prefix"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/routers"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
	"github.com/KirkDiggler/arknights-bot-discord/internal/repositories/pagers"
	"github.com/KirkDiggler/arknights-bot-discord/internal/uuid"
)

const (
	// UserRateLimit is how many interactions one user may send per UserRateLimitWindow
	UserRateLimit       = 30
	UserRateLimitWindow = time.Minute
)

// SetupConfig holds everything the bot handlers are built from
type SetupConfig struct {
	Logger         logrus.FieldLogger
	Client         gamedata.Client
	Assets         formatters.Assets
	PagerSessions  pagers.Repository
	RateLimitStore middleware.RateLimitStore
	IDGenerator    uuid.Generator
	CommandPrefix  string
}

// Handlers are the wired interaction pipeline and prefix command handler
type Handlers struct {
	Pipeline  *core.Pipeline
	Operators *routers.OperatorRouter
	Pager     *pager.Pager
	Prefix    *prefix.Handler

	logger logrus.FieldLogger
}

// SetupHandlers builds the pipeline with its middleware and registers the
// operator and pager routers on it
func SetupHandlers(cfg *SetupConfig) (*Handlers, error) {
	if cfg == nil || cfg.Logger == nil {
		return nil, apperr.Internalf("setup requires a logger")
	}
	if cfg.PagerSessions == nil {
		return nil, apperr.Internalf("setup requires a pager session repository")
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = uuid.NewRandomGenerator()
	}

	pipeline := core.NewPipeline(cfg.Logger)

	// Middleware must be in place before routers register
	pipeline.Use(
		middleware.RecoveryMiddleware(cfg.Logger),
		middleware.RequestIDMiddleware(ids),
		middleware.LoggingMiddleware(&middleware.LogConfig{Logger: cfg.Logger, LogRequests: true}),
		middleware.SmartDeferMiddleware(cfg.Logger),
		middleware.UserRateLimitMiddleware(UserRateLimit, UserRateLimitWindow, cfg.RateLimitStore, cfg.Logger),
	)

	p, err := pager.New(&pager.Config{
		Repository:  cfg.PagerSessions,
		IDGenerator: ids,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	operators, err := routers.NewOperatorRouter(pipeline, &routers.OperatorRouterConfig{
		Client:    cfg.Client,
		Formatter: formatters.New(cfg.Assets),
		Pager:     p,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	if _, err := routers.NewPagerRouter(pipeline, p, cfg.Logger); err != nil {
		return nil, err
	}

	prefixHandler, err := prefix.NewHandler(&prefix.Config{
		Prefix:    cfg.CommandPrefix,
		Operators: operators,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Pipeline:  pipeline,
		Operators: operators,
		Pager:     p,
		Prefix:    prefixHandler,
		logger:    cfg.Logger,
	}, nil
}

// Attach subscribes the handlers to the session's interaction and message events
func (h *Handlers) Attach(dg *discordgo.Session) {
	dg.AddHandler(h.OnInteractionCreate)
	dg.AddHandler(h.Prefix.OnMessageCreate)
}

// OnInteractionCreate runs an interaction through the pipeline
func (h *Handlers) OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.Pipeline.Execute(context.Background(), s, i); err != nil {
		h.logger.WithError(err).WithField("interaction_id", i.ID).Error("failed to answer interaction")
	}
}

// RegisterCommands registers the slash commands, globally when guildID is empty
func RegisterCommands(dg *discordgo.Session, appID, guildID string) error {
	if _, err := dg.ApplicationCommandCreate(appID, guildID, routers.OperatorCommandDefinition()); err != nil {
		return apperr.Transport(err, "failed to register operator command")
	}
	return nil
}
