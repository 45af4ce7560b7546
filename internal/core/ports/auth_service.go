package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

type SignupInput struct {
	Name     string
	Username string
	Password string
	// Admin is only honoured when GrantedByAdmin is set, i.e. an existing
	// admin made the request.
	Admin          bool
	GrantedByAdmin bool
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login returns a signed token for the user whose password matches.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}
