package middleware

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

// ReportError logs err once and decides whether the user gets a notice for it.
// Validation errors are logged at warn level and returned as an info notice; every
// other error is logged at error level and nil is returned so the caller's default
// error path runs.
func ReportError(logger logrus.FieldLogger, fields logrus.Fields, err error) *core.Response {
	entry := logger.WithFields(fields).WithField("error_code", string(apperr.GetCode(err)))
	if meta := apperr.GetMeta(err); len(meta) > 0 {
		entry = entry.WithField("error_meta", meta)
	}

	if apperr.IsValidation(err) {
		entry.WithError(err).Warn("command rejected")
		return core.NewEmbedResponse(builders.InfoEmbed(apperr.GetMessage(err)).Build())
	}

	entry.WithError(err).Error("command failed")
	return nil
}

// OperatorErrorMiddleware reports handler errors with ReportError; validation
// errors become a notice and every other error continues to the pipeline
func OperatorErrorMiddleware(logger logrus.FieldLogger) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			if notice := ReportError(logger, InteractionFields(ctx), err); notice != nil {
				return &core.HandlerResult{Response: notice}, nil
			}

			return result, err
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware(logger logrus.FieldLogger) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.WithFields(InteractionFields(ctx)).
						WithField("panic", fmt.Sprint(r)).
						Error("panic recovered in handler")

					result = &core.HandlerResult{
						Response: core.NewEphemeralResponse("An unexpected error occurred. Please try again later."),
					}
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}

// InteractionFields builds the log context for an interaction
func InteractionFields(ctx *core.InteractionContext) logrus.Fields {
	fields := logrus.Fields{
		"user_id":    ctx.UserID,
		"guild_id":   ctx.GuildID,
		"channel_id": ctx.ChannelID,
	}

	switch {
	case ctx.IsCommand():
		fields["command"] = ctx.GetCommandName()
		fields["subcommand"] = ctx.GetSubcommand()
		if name := ctx.GetStringParam("name"); name != "" {
			fields["operator"] = name
		}
	case ctx.IsComponent():
		if customID, parseErr := core.ParseCustomID(ctx.GetCustomID()); parseErr == nil {
			fields["domain"] = customID.Domain
			fields["action"] = customID.Action
		}
	}

	return fields
}
