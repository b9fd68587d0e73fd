package routers

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/pager"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

// PagerRouter routes pager button presses to the pager
type PagerRouter struct {
	router *core.Router
	pager  *pager.Pager
}

// NewPagerRouter creates and registers the pager router
func NewPagerRouter(pipeline *core.Pipeline, p *pager.Pager, logger logrus.FieldLogger) (*PagerRouter, error) {
	if p == nil {
		return nil, apperr.Internalf("pager router requires a pager")
	}
	if logger == nil {
		return nil, apperr.Internalf("pager router requires a logger")
	}

	r := &PagerRouter{
		router: core.NewRouter(pager.Domain, pipeline),
		pager:  p,
	}

	r.router.Use(middleware.OperatorErrorMiddleware(logger))
	r.router.ComponentFunc("*", r.handleButton)
	r.router.Register()

	return r, nil
}

func (r *PagerRouter) handleButton(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil {
		return nil, err
	}

	response, err := r.pager.Navigate(ctx.Context, customID.Target, customID.Action, ctx.UserID)
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{Response: response}, nil
}
