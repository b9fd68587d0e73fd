package pagers

import (
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

// NewSessionNotFoundError reports a pager session that is missing or expired
func NewSessionNotFoundError(id string) error {
	return apperr.NotFoundf("pager session %s not found", id).WithMeta("session_id", id)
}
