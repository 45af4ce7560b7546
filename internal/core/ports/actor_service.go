package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

type CreateActorInput struct {
	Name        string
	Image       string
	Age         *int
	Country     string
	RequestedBy string
}

type UpdateActorInput struct {
	ID          string
	Name        *string
	Image       *string
	Age         *int
	Country     *string
	RequestedBy string
}

// Credit is a role of an actor seen from the actor side.
type Credit struct {
	RoleID     string
	RoleName   string
	Production *domain.Production
}

// ActorDetail is an actor with its roles and the productions derived from them.
type ActorDetail struct {
	Actor       *domain.Actor
	Roles       []Credit
	Productions []*domain.Production
}

// ActorService defines use-case operations for actors.
type ActorService interface {
	Create(ctx context.Context, input CreateActorInput) (*domain.Actor, error)
	Get(ctx context.Context, id string) (*ActorDetail, error)
	List(ctx context.Context) ([]*domain.Actor, error)
	Update(ctx context.Context, input UpdateActorInput) (*domain.Actor, error)
	Delete(ctx context.Context, input DeleteInput) error
}
