package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create assigns user.ID. A duplicate username yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
