package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

// CreateProductionInput carries all data needed to create a production.
type CreateProductionInput struct {
	Title       string
	Genre       string
	Length      *int
	Year        *int
	Image       string
	Language    string
	Director    string
	Description string
	Composer    string
	RequestedBy string
}

// UpdateProductionInput carries a partial update. Nil fields are untouched.
type UpdateProductionInput struct {
	ID          string
	Title       *string
	Genre       *string
	Length      *int
	Year        *int
	Image       *string
	Language    *string
	Director    *string
	Description *string
	Composer    *string
	RequestedBy string
}

// DeleteInput identifies the record to remove and who asked for it.
type DeleteInput struct {
	ID          string
	RequestedBy string
}

type ListProductionsInput struct {
	Genre string
}

// CastMember is a role of a production seen from the production side.
type CastMember struct {
	RoleID   string
	RoleName string
	Actor    *domain.Actor
}

// ProductionDetail is a production with its roles and the actors derived
// from them. Actors holds each actor once even if cast in several roles.
type ProductionDetail struct {
	Production *domain.Production
	Roles      []CastMember
	Actors     []*domain.Actor
}

// ProductionService defines use-case operations for productions.
type ProductionService interface {
	Create(ctx context.Context, input CreateProductionInput) (*domain.Production, error)
	Get(ctx context.Context, id string) (*ProductionDetail, error)
	GetByTitle(ctx context.Context, title string) (*ProductionDetail, error)
	List(ctx context.Context, input ListProductionsInput) ([]*domain.Production, error)
	Longest(ctx context.Context, limit int) ([]*domain.Production, error)
	Update(ctx context.Context, input UpdateProductionInput) (*domain.Production, error)
	Delete(ctx context.Context, input DeleteInput) error
}
