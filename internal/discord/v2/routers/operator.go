package routers

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/formatters"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/pager"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
)

// OperatorCommand is the command group every operator subcommand lives under
const OperatorCommand = "operator"

// NameOption is the free-text operator name taken by each subcommand
const NameOption = "name"

const (
	SubInfo   = "info"
	SubFile   = "file"
	SubAudio  = "audio"
	SubSkins  = "skins"
	SubSkills = "skills"
)

// MissingNameMessage is shown when a subcommand is used without an operator name
const MissingNameMessage = "You need to provide an operator name!"

var subcommands = []struct {
	name        string
	description string
}{
	{SubInfo, "Show an operator's profile"},
	{SubFile, "Read an operator's file"},
	{SubAudio, "List an operator's voice lines"},
	{SubSkins, "Browse an operator's skins"},
	{SubSkills, "Show an operator's skills"},
}

// IsSubcommand reports whether sub is one of the operator subcommands
func IsSubcommand(sub string) bool {
	for _, s := range subcommands {
		if s.name == sub {
			return true
		}
	}
	return false
}

// OperatorRouterConfig holds the operator router dependencies
type OperatorRouterConfig struct {
	Client    gamedata.Client
	Formatter *formatters.Formatter
	Pager     *pager.Pager
	Logger    logrus.FieldLogger
}

// OperatorRouter answers the operator command group
type OperatorRouter struct {
	router    *core.Router
	client    gamedata.Client
	formatter *formatters.Formatter
	pager     *pager.Pager
	logger    logrus.FieldLogger
}

// NewOperatorRouter creates the operator router. A nil pipeline gives a router
// usable only through Dispatch.
func NewOperatorRouter(pipeline *core.Pipeline, cfg *OperatorRouterConfig) (*OperatorRouter, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, apperr.Internalf("operator router requires a gamedata client")
	}
	if cfg.Logger == nil {
		return nil, apperr.Internalf("operator router requires a logger")
	}

	r := &OperatorRouter{
		router:    core.NewRouter(OperatorCommand, pipeline),
		client:    cfg.Client,
		formatter: cfg.Formatter,
		pager:     cfg.Pager,
		logger:    cfg.Logger,
	}
	if r.formatter == nil {
		r.formatter = formatters.New(formatters.DefaultAssets())
	}

	r.router.Use(middleware.OperatorErrorMiddleware(r.logger))
	r.registerRoutes()
	r.router.Register()

	return r, nil
}

func (r *OperatorRouter) registerRoutes() {
	for _, sub := range subcommands {
		r.router.SubcommandFunc(OperatorCommand, sub.name, r.handleSubcommand)
	}

	// bare group and unknown subcommands
	r.router.HandleFunc("cmd:"+OperatorCommand+":*", r.handleHelp)
}

func (r *OperatorRouter) handleSubcommand(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	pages, err := r.Dispatch(ctx.Context, ctx.GetSubcommand(), ctx.GetStringParam(NameOption))
	if err != nil {
		return nil, err
	}

	response, err := r.Present(ctx.Context, ctx.UserID, pages)
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{Response: response}, nil
}

func (r *OperatorRouter) handleHelp(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return &core.HandlerResult{
		Response: core.NewEmbedResponse(HelpEmbed("/" + OperatorCommand)),
	}, nil
}

// Present hands pages to the pager, or returns the lone page when no pager is configured
func (r *OperatorRouter) Present(ctx context.Context, ownerID string, pages []*discordgo.MessageEmbed) (*core.Response, error) {
	if len(pages) == 0 {
		return nil, apperr.NotFoundf("nothing to show")
	}
	if r.pager == nil {
		return core.NewEmbedResponse(pages[0]), nil
	}
	return r.pager.Start(ctx, ownerID, pages)
}

// Dispatch fetches the records for one subcommand and formats them into pages.
// A blank name fails with a validation error before any data is requested.
func (r *OperatorRouter) Dispatch(ctx context.Context, sub, name string) ([]*discordgo.MessageEmbed, error) {
	if !IsSubcommand(sub) {
		return nil, apperr.Validationf("Unknown subcommand %q", sub)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(MissingNameMessage)
	}

	r.logger.WithFields(logrus.Fields{
		"subcommand": sub,
		"operator":   name,
	}).Debug("dispatching operator command")

	switch sub {
	case SubInfo:
		if _, err := r.client.GetOperatorInfo(ctx, name); err != nil {
			return nil, err
		}
		return formatters.UnderConstruction(), nil

	case SubFile:
		file, err := r.client.GetOperatorFile(ctx, name)
		if err != nil {
			return nil, err
		}
		return r.formatter.FileEmbeds(file)

	case SubAudio:
		return r.audio(ctx, name)

	case SubSkins:
		skins, err := r.client.GetOperatorSkins(ctx, name)
		if err != nil {
			return nil, err
		}
		if len(skins) == 0 {
			return nil, apperr.NotFoundf("no skins found for operator %s", name).WithMeta("name", name)
		}
		return r.formatter.SkinEmbeds(skins)

	default:
		if _, err := r.client.GetOperatorSkills(ctx, name); err != nil {
			return nil, err
		}
		return formatters.UnderConstruction(), nil
	}
}

// audio needs the voice lines and the file credits; both are fetched together
func (r *OperatorRouter) audio(ctx context.Context, name string) ([]*discordgo.MessageEmbed, error) {
	var (
		audio *gamedata.OperatorAudio
		file  *gamedata.OperatorFile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		audio, err = r.client.GetOperatorAudio(gctx, name)
		return err
	})
	g.Go(func() error {
		var err error
		file, err = r.client.GetOperatorFile(gctx, name)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return r.formatter.AudioEmbeds(audio, file)
}

// HelpEmbed lists the operator subcommands as typed after invocation
func HelpEmbed(invocation string) *discordgo.MessageEmbed {
	var usage strings.Builder
	for _, sub := range subcommands {
		fmt.Fprintf(&usage, "`%s %s <name>` %s\n", invocation, sub.name, sub.description)
	}

	return builders.NewEmbed().
		Title("Operator commands").
		Description(usage.String()).
		Color(builders.ColorInfo).
		Build()
}

// OperatorCommandDefinition is the slash command registered with Discord
func OperatorCommandDefinition() *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(subcommands))
	for _, sub := range subcommands {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        sub.name,
			Description: sub.description,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        NameOption,
					Description: "Operator name",
					Required:    false,
				},
			},
		})
	}

	return &discordgo.ApplicationCommand{
		Name:        OperatorCommand,
		Description: "Look up Arknights operators",
		Options:     options,
	}
}
