// Package pager turns a list of embed pages into one message navigated with buttons
package pager

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/repositories/pagers"
	"github.com/KirkDiggler/arknights-bot-discord/internal/uuid"
)

// Domain prefixes every pager custom id
const Domain = "pager"

const (
	ExpiredMessage  = "This pager has expired."
	NotOwnerMessage = "Only the person who ran this command can turn these pages."
)

// Config holds the pager dependencies
type Config struct {
	Repository  pagers.Repository
	IDGenerator uuid.Generator
	Logger      logrus.FieldLogger
}

// Pager stores multi-page results and answers their navigation buttons
type Pager struct {
	repository pagers.Repository
	ids        uuid.Generator
	logger     logrus.FieldLogger
	customIDs  *core.CustomIDBuilder
}

// New creates a pager
func New(cfg *Config) (*Pager, error) {
	if cfg == nil || cfg.Repository == nil {
		return nil, apperr.Internalf("pager requires a session repository")
	}

	p := &Pager{
		repository: cfg.Repository,
		ids:        cfg.IDGenerator,
		logger:     cfg.Logger,
		customIDs:  core.NewCustomIDBuilder(Domain),
	}
	if p.ids == nil {
		p.ids = uuid.NewRandomGenerator()
	}
	if p.logger == nil {
		p.logger = logrus.StandardLogger()
	}

	return p, nil
}

// Start returns the first page. A single page is sent as is; more pages get a
// stored session and navigation buttons.
func (p *Pager) Start(ctx context.Context, ownerID string, pages []*discordgo.MessageEmbed) (*core.Response, error) {
	if len(pages) == 0 {
		return nil, apperr.Internalf("pager needs at least one page")
	}
	if len(pages) == 1 {
		return core.NewEmbedResponse(pages[0]), nil
	}

	session := &entities.PagerSession{
		ID:      p.ids.New(),
		OwnerID: ownerID,
		Pages:   pages,
	}
	if err := p.repository.Save(ctx, session); err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"session_id": session.ID,
		"user_id":    ownerID,
		"pages":      len(pages),
	}).Debug("pager started")

	return p.render(session), nil
}

// Navigate applies a button press to a stored session
func (p *Pager) Navigate(ctx context.Context, sessionID, action, userID string) (*core.Response, error) {
	session, err := p.repository.Get(ctx, sessionID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return core.NewEphemeralResponse(ExpiredMessage), nil
		}
		return nil, err
	}

	if !session.IsOwner(userID) {
		return core.NewEphemeralResponse(NotOwnerMessage), nil
	}

	switch action {
	case builders.PagerFirst:
		session.Goto(0)
	case builders.PagerPrev:
		session.Goto(session.Index - 1)
	case builders.PagerNext:
		session.Goto(session.Index + 1)
	case builders.PagerLast:
		session.Goto(session.PageCount() - 1)
	case builders.PagerPage:
		// the counter button is disabled; a stale client can still send it
	case builders.PagerStop:
		if err := p.repository.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
		return core.NewEmbedResponse(decorate(session)).AsUpdate(), nil
	default:
		return nil, apperr.Validationf("unknown pager action %q", action)
	}

	if err := p.repository.Save(ctx, session); err != nil {
		return nil, err
	}

	return p.render(session).AsUpdate(), nil
}

func (p *Pager) render(session *entities.PagerSession) *core.Response {
	components := builders.NewComponentBuilder(p.customIDs).
		PagerButtons(session.ID, session.Index, session.PageCount()).
		Build()

	return core.NewEmbedResponse(decorate(session)).WithComponents(components...)
}

// decorate copies the current page and appends the page counter to its footer
func decorate(session *entities.PagerSession) *discordgo.MessageEmbed {
	page := builders.CopyEmbed(session.Current())
	counter := fmt.Sprintf("Page %d/%d", session.Index+1, session.PageCount())

	if page.Footer == nil {
		page.Footer = &discordgo.MessageEmbedFooter{Text: counter}
	} else if page.Footer.Text == "" {
		page.Footer.Text = counter
	} else {
		page.Footer.Text += " • " + counter
	}

	return page
}
