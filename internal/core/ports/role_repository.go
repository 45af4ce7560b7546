package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

// RoleRepository persists the production/actor join records.
type RoleRepository interface {
	Create(ctx context.Context, r *domain.Role) error
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	ListByProduction(ctx context.Context, productionID string) ([]*domain.Role, error)
	ListByActor(ctx context.Context, actorID string) ([]*domain.Role, error)
	Delete(ctx context.Context, id string) error
	// DeleteByProduction and DeleteByActor remove every role that references
	// the given entity and return how many were removed.
	DeleteByProduction(ctx context.Context, productionID string) (int64, error)
	DeleteByActor(ctx context.Context, actorID string) (int64, error)
}
