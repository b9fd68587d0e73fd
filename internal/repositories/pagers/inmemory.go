package pagers

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/arknights-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

// inMemoryRepository implements Repository for a single bot process
type inMemoryRepository struct {
	mu           sync.Mutex
	sessions     map[string]*entities.PagerSession
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewInMemory creates a repository that keeps sessions in memory for ttl
func NewInMemory(timeProvider TimeProvider, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &inMemoryRepository{
		sessions:     make(map[string]*entities.PagerSession),
		timeProvider: timeProvider,
		ttl:          ttl,
	}
}

func (r *inMemoryRepository) Save(ctx context.Context, session *entities.PagerSession) error {
	if session == nil {
		return apperr.Internalf("pager session cannot be nil")
	}
	if session.ID == "" {
		return apperr.Internalf("pager session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	stamp(session, now, r.ttl)

	for id, stored := range r.sessions {
		if stored.Expired(now) {
			delete(r.sessions, id)
		}
	}

	r.sessions[session.ID] = copySession(session)
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*entities.PagerSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, NewSessionNotFoundError(id)
	}
	if session.Expired(r.timeProvider.Now()) {
		delete(r.sessions, id)
		return nil, NewSessionNotFoundError(id)
	}

	return copySession(session), nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// stamp sets the bookkeeping times for a save at now
func stamp(session *entities.PagerSession, now time.Time, ttl time.Duration) {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(ttl)
}

// copySession copies the session and its page list; pages themselves are never mutated
func copySession(session *entities.PagerSession) *entities.PagerSession {
	copied := *session
	copied.Pages = append([]*discordgo.MessageEmbed(nil), session.Pages...)
	return &copied
}
