package pagers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"github.com/KirkDiggler/arknights-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

// Data is the stored form of a pager session
type Data struct {
	ID        string                    `json:"id"`
	OwnerID   string                    `json:"owner_id"`
	Pages     []*discordgo.MessageEmbed `json:"pages"`
	Index     int                       `json:"index"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
	ExpiresAt time.Time                 `json:"expires_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedis creates a repository whose sessions expire in Redis after ttl
func NewRedis(client redis.UniversalClient, timeProvider TimeProvider, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
		ttl:          ttl,
	}
}

func sessionKey(id string) string {
	return "pager:" + id
}

func (r *redisRepo) Save(ctx context.Context, session *entities.PagerSession) error {
	if session == nil {
		return apperr.Internalf("pager session cannot be nil")
	}
	if session.ID == "" {
		return apperr.Internalf("pager session ID cannot be empty")
	}

	stamp(session, r.timeProvider.Now(), r.ttl)

	jsonData, err := json.Marshal(toData(session))
	if err != nil {
		return eris.Wrap(err, "failed to marshal pager session")
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), string(jsonData), r.ttl).Err(); err != nil {
		return eris.Wrapf(err, "failed to save pager session %s", session.ID)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.PagerSession, error) {
	jsonData, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, NewSessionNotFoundError(id)
		}
		return nil, eris.Wrapf(err, "failed to get pager session %s", id)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, eris.Wrapf(err, "failed to unmarshal pager session %s", id)
	}

	return fromData(&data), nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return eris.Wrapf(err, "failed to delete pager session %s", id)
	}
	return nil
}

func toData(session *entities.PagerSession) *Data {
	return &Data{
		ID:        session.ID,
		OwnerID:   session.OwnerID,
		Pages:     session.Pages,
		Index:     session.Index,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}

func fromData(data *Data) *entities.PagerSession {
	return &entities.PagerSession{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Pages:     data.Pages,
		Index:     data.Index,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
