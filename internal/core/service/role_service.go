package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

type RoleService struct {
	repo        ports.RoleRepository
	productions ports.ProductionRepository
	actors      ports.ActorRepository
	writes      writeRecorder
	logger      zerolog.Logger
}

func NewRoleService(
	repo ports.RoleRepository,
	productions ports.ProductionRepository,
	actors ports.ActorRepository,
	audit ports.AuditPublisher,
	logger zerolog.Logger,
) *RoleService {
	return &RoleService{
		repo:        repo,
		productions: productions,
		actors:      actors,
		writes:      newWriteRecorder(audit),
		logger:      logger,
	}
}

// Create casts an existing actor in an existing production.
func (s *RoleService) Create(ctx context.Context, input ports.CreateRoleInput) (*ports.RoleDetail, error) {
	r, err := domain.NewRole(input.RoleName, input.ProductionID, input.ActorID, s.writes.now())
	if err != nil {
		return nil, err
	}

	p, err := s.productions.FindByID(ctx, r.ProductionID)
	if err != nil {
		return nil, err
	}
	a, err := s.actors.FindByID(ctx, r.ActorID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}

	s.writes.recordWrite(domain.EntityRole, r.ID, domain.AuditCreated, input.RequestedBy)
	s.logger.Info().
		Str("role_id", r.ID).
		Str("production_id", p.ID).
		Str("actor_id", a.ID).
		Msg("role created")
	return &ports.RoleDetail{Role: r, Production: p, Actor: a}, nil
}

func (s *RoleService) Get(ctx context.Context, id string) (*ports.RoleDetail, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.productions.FindByID(ctx, r.ProductionID)
	if err != nil {
		return nil, fmt.Errorf("role %s: %w", r.ID, err)
	}
	a, err := s.actors.FindByID(ctx, r.ActorID)
	if err != nil {
		return nil, fmt.Errorf("role %s: %w", r.ID, err)
	}
	return &ports.RoleDetail{Role: r, Production: p, Actor: a}, nil
}

func (s *RoleService) Delete(ctx context.Context, input ports.DeleteInput) error {
	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}

	s.writes.recordWrite(domain.EntityRole, input.ID, domain.AuditDeleted, input.RequestedBy)
	s.logger.Info().Str("role_id", input.ID).Msg("role deleted")
	return nil
}
