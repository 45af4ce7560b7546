package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

type CreateRoleInput struct {
	RoleName     string
	ProductionID string
	ActorID      string
	RequestedBy  string
}

// RoleDetail is a role with both sides of the join resolved.
type RoleDetail struct {
	Role       *domain.Role
	Production *domain.Production
	Actor      *domain.Actor
}

// RoleService defines use-case operations for roles.
type RoleService interface {
	Create(ctx context.Context, input CreateRoleInput) (*RoleDetail, error)
	Get(ctx context.Context, id string) (*RoleDetail, error)
	Delete(ctx context.Context, input DeleteInput) error
}
