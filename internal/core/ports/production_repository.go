package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

// ListProductionsFilter carries the query parameters for listing productions.
type ListProductionsFilter struct {
	Genre        string // optional exact match
	SortByLength bool   // longest first when true, otherwise by title
	Limit        int    // 0 = no limit
}

// ProductionRepository defines persistence operations for productions.
type ProductionRepository interface {
	// Create assigns p.ID. A duplicate title yields domain.ErrProductionExists.
	Create(ctx context.Context, p *domain.Production) error
	FindByID(ctx context.Context, id string) (*domain.Production, error)
	FindByTitle(ctx context.Context, title string) (*domain.Production, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Production, error)
	List(ctx context.Context, filter ListProductionsFilter) ([]*domain.Production, error)
	Update(ctx context.Context, p *domain.Production) error
	Delete(ctx context.Context, id string) error
}
