package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

// ActorRepository defines persistence operations for actors.
type ActorRepository interface {
	// Create assigns a.ID. A duplicate name yields domain.ErrActorExists.
	Create(ctx context.Context, a *domain.Actor) error
	FindByID(ctx context.Context, id string) (*domain.Actor, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Actor, error)
	List(ctx context.Context) ([]*domain.Actor, error)
	Update(ctx context.Context, a *domain.Actor) error
	Delete(ctx context.Context, id string) error
}
