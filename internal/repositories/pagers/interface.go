package pagers

import (
	"context"
	"time"

	"github.com/KirkDiggler/arknights-bot-discord/internal/entities"
)

// DefaultTTL is how long an idle pager keeps answering its buttons
const DefaultTTL = 15 * time.Minute

// Repository stores pager sessions until they expire
type Repository interface {
	// Save stores the session, stamping its timestamps and pushing its expiry out
	Save(ctx context.Context, session *entities.PagerSession) error

	// Get returns the session, or a not found error once it is gone or expired
	Get(ctx context.Context, id string) (*entities.PagerSession, error)

	// Delete removes the session; deleting a missing session is not an error
	Delete(ctx context.Context, id string) error
}
