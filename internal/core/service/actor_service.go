package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

type ActorService struct {
	repo        ports.ActorRepository
	roles       ports.RoleRepository
	productions ports.ProductionRepository
	writes      writeRecorder
	logger      zerolog.Logger
}

func NewActorService(
	repo ports.ActorRepository,
	roles ports.RoleRepository,
	productions ports.ProductionRepository,
	audit ports.AuditPublisher,
	logger zerolog.Logger,
) *ActorService {
	return &ActorService{
		repo:        repo,
		roles:       roles,
		productions: productions,
		writes:      newWriteRecorder(audit),
		logger:      logger,
	}
}

func (s *ActorService) Create(ctx context.Context, input ports.CreateActorInput) (*domain.Actor, error) {
	a, err := domain.NewActor(domain.ActorFields{
		Name:    input.Name,
		Image:   input.Image,
		Age:     input.Age,
		Country: input.Country,
	}, s.writes.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.writes.recordWrite(domain.EntityActor, a.ID, domain.AuditCreated, input.RequestedBy)
	s.logger.Info().Str("actor_id", a.ID).Str("name", a.Name).Msg("actor created")
	return a, nil
}

// Get returns the actor with its credits and the productions derived from them.
func (s *ActorService) Get(ctx context.Context, id string) (*ports.ActorDetail, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.ListByActor(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	ids := make([]string, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ProductionID)
	}
	productions, err := s.productions.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("load productions: %w", err)
	}
	byID := make(map[string]*domain.Production, len(productions))
	for _, p := range productions {
		byID[p.ID] = p
	}

	detail := &ports.ActorDetail{
		Actor:       a,
		Roles:       make([]ports.Credit, 0, len(roles)),
		Productions: make([]*domain.Production, 0, len(byID)),
	}
	seen := make(map[string]bool, len(byID))
	for _, r := range roles {
		p, ok := byID[r.ProductionID]
		if !ok {
			s.logger.Warn().Str("role_id", r.ID).Str("production_id", r.ProductionID).Msg("role references missing production")
			continue
		}
		detail.Roles = append(detail.Roles, ports.Credit{RoleID: r.ID, RoleName: r.RoleName, Production: p})
		if !seen[p.ID] {
			seen[p.ID] = true
			detail.Productions = append(detail.Productions, p)
		}
	}
	return detail, nil
}

func (s *ActorService) List(ctx context.Context) ([]*domain.Actor, error) {
	actors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	return actors, nil
}

func (s *ActorService) Update(ctx context.Context, input ports.UpdateActorInput) (*domain.Actor, error) {
	a, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	patch := domain.ActorPatch{
		Name:    input.Name,
		Image:   input.Image,
		Age:     input.Age,
		Country: input.Country,
	}
	if err := a.Apply(patch, s.writes.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update actor: %w", err)
	}

	s.writes.recordWrite(domain.EntityActor, a.ID, domain.AuditUpdated, input.RequestedBy)
	s.logger.Info().Str("actor_id", a.ID).Msg("actor updated")
	return a, nil
}

// Delete removes the actor together with every role the actor plays.
func (s *ActorService) Delete(ctx context.Context, input ports.DeleteInput) error {
	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	removed, err := s.roles.DeleteByActor(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("delete actor roles: %w", err)
	}
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}

	s.writes.recordWrite(domain.EntityActor, input.ID, domain.AuditDeleted, input.RequestedBy)
	s.logger.Info().Str("actor_id", input.ID).Int64("roles_removed", removed).Msg("actor deleted")
	return nil
}
