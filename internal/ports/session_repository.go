package ports

import (
	"context"

	"github.com/zlarouche/deck-of-cards/internal/domain"
)

// SessionRepository persists the client session between CLI invocations.
type SessionRepository interface {
	Load(ctx context.Context) (domain.SessionState, error)
	Save(ctx context.Context, state domain.SessionState) error
}
