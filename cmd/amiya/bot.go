package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	v2 "github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/formatters"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
	applog "github.com/KirkDiggler/arknights-bot-discord/internal/log"
	"github.com/KirkDiggler/arknights-bot-discord/internal/repositories/pagers"
)

func newBotCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Connect to Discord and answer operator commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
			defer stop()
			return a.runBot(ctx)
		},
	}
}

// stores are the shared state backends, Redis when configured and in memory otherwise
type stores struct {
	tables    gamedata.TableStore
	sessions  pagers.Repository
	rateLimit middleware.RateLimitStore
	close     func() error
}

func (a *app) openStores(ctx context.Context) (*stores, error) {
	if a.cfg.Redis.URL == "" {
		a.logger.Info("no REDIS_URL set, using in-memory stores")
		return &stores{
			tables:    gamedata.NewInMemoryTableStore(),
			sessions:  pagers.NewInMemory(pagers.RealTimeProvider{}, a.cfg.Pager.TTL),
			rateLimit: middleware.NewMemoryRateLimitStore(),
			close:     func() error { return nil },
		}, nil
	}

	opts, err := redis.ParseURL(a.cfg.Redis.URL)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse REDIS_URL")
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, eris.Wrap(err, "failed to connect to redis")
	}

	a.logger.WithField("addr", opts.Addr).Info("connected to redis")
	return &stores{
		tables:    gamedata.NewRedisTableStore(client),
		sessions:  pagers.NewRedis(client, pagers.RealTimeProvider{}, a.cfg.Pager.TTL),
		rateLimit: middleware.NewRedisRateLimitStore(client),
		close:     client.Close,
	}, nil
}

func (a *app) runBot(ctx context.Context) error {
	if err := a.cfg.ValidateBot(); err != nil {
		return err
	}

	flush, err := applog.InitSentry(a.logger, applog.SentrySettings{
		DSN:         a.cfg.Sentry.DSN,
		Environment: a.cfg.Sentry.Environment,
	})
	if err != nil {
		return err
	}
	defer flush()

	st, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.close(); closeErr != nil {
			a.logger.WithError(closeErr).Warn("failed to close redis connection")
		}
	}()

	client, err := a.gamedataClient(st.tables)
	if err != nil {
		return err
	}

	handlers, err := v2.SetupHandlers(&v2.SetupConfig{
		Logger: a.logger,
		Client: client,
		Assets: formatters.Assets{
			ImageBaseURL: a.cfg.Assets.ImageBaseURL,
			AudioBaseURL: a.cfg.Assets.AudioBaseURL,
		},
		PagerSessions:  st.sessions,
		RateLimitStore: st.rateLimit,
		CommandPrefix:  a.cfg.Discord.CommandPrefix,
	})
	if err != nil {
		return err
	}

	dg, err := discordgo.New("Bot " + a.cfg.Discord.Token)
	if err != nil {
		return eris.Wrap(err, "failed to create discord session")
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
	handlers.Attach(dg)

	if err := dg.Open(); err != nil {
		return eris.Wrap(err, "failed to open discord connection")
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			a.logger.WithError(closeErr).Warn("failed to close discord connection")
		}
	}()

	if err := v2.RegisterCommands(dg, a.cfg.Discord.AppID, a.cfg.Discord.GuildID); err != nil {
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"guild_id": a.cfg.Discord.GuildID,
		"prefix":   a.cfg.Discord.CommandPrefix,
	}).Info("bot is running")

	<-ctx.Done()
	a.logger.Info("shutting down")
	return nil
}
