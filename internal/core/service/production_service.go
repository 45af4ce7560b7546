package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

const (
	defaultLongestLimit = 5
	maxLongestLimit     = 50
)

type ProductionService struct {
	repo   ports.ProductionRepository
	roles  ports.RoleRepository
	actors ports.ActorRepository
	cache  ports.CatalogCache
	writes writeRecorder
	logger zerolog.Logger
}

// NewProductionService wires the production use cases. cache and audit may be
// nil, in which case reads go straight to the repository and audit events are
// dropped.
func NewProductionService(
	repo ports.ProductionRepository,
	roles ports.RoleRepository,
	actors ports.ActorRepository,
	cache ports.CatalogCache,
	audit ports.AuditPublisher,
	logger zerolog.Logger,
) *ProductionService {
	if cache == nil {
		cache = noCache{}
	}
	return &ProductionService{
		repo:   repo,
		roles:  roles,
		actors: actors,
		cache:  cache,
		writes: newWriteRecorder(audit),
		logger: logger,
	}
}

// Create validates the input, stores the production and drops cached lists.
func (s *ProductionService) Create(ctx context.Context, input ports.CreateProductionInput) (*domain.Production, error) {
	p, err := domain.NewProduction(domain.ProductionFields{
		Title:       input.Title,
		Genre:       input.Genre,
		Length:      input.Length,
		Year:        input.Year,
		Image:       input.Image,
		Language:    input.Language,
		Director:    input.Director,
		Description: input.Description,
		Composer:    input.Composer,
	}, s.writes.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create production: %w", err)
	}

	s.invalidate(ctx)
	s.writes.recordWrite(domain.EntityProduction, p.ID, domain.AuditCreated, input.RequestedBy)
	s.logger.Info().Str("production_id", p.ID).Str("title", p.Title).Msg("production created")
	return p, nil
}

func (s *ProductionService) Get(ctx context.Context, id string) (*ports.ProductionDetail, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, p)
}

func (s *ProductionService) GetByTitle(ctx context.Context, title string) (*ports.ProductionDetail, error) {
	p, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, p)
}

// List returns productions ordered by title, optionally restricted to a genre.
func (s *ProductionService) List(ctx context.Context, input ports.ListProductionsInput) ([]*domain.Production, error) {
	key := "productions:genre=" + input.Genre
	return s.cachedList(ctx, key, ports.ListProductionsFilter{Genre: input.Genre})
}

// Longest returns up to limit productions, longest first. A non-positive limit
// falls back to 5; limits above 50 are capped.
func (s *ProductionService) Longest(ctx context.Context, limit int) ([]*domain.Production, error) {
	if limit <= 0 {
		limit = defaultLongestLimit
	}
	if limit > maxLongestLimit {
		limit = maxLongestLimit
	}
	key := fmt.Sprintf("productions:longest:%d", limit)
	return s.cachedList(ctx, key, ports.ListProductionsFilter{SortByLength: true, Limit: limit})
}

// Update applies the patch atomically: on a validation failure nothing is stored.
func (s *ProductionService) Update(ctx context.Context, input ports.UpdateProductionInput) (*domain.Production, error) {
	p, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	patch := domain.ProductionPatch{
		Title:       input.Title,
		Genre:       input.Genre,
		Length:      input.Length,
		Year:        input.Year,
		Image:       input.Image,
		Language:    input.Language,
		Director:    input.Director,
		Description: input.Description,
		Composer:    input.Composer,
	}
	if err := p.Apply(patch, s.writes.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update production: %w", err)
	}

	s.invalidate(ctx)
	s.writes.recordWrite(domain.EntityProduction, p.ID, domain.AuditUpdated, input.RequestedBy)
	s.logger.Info().Str("production_id", p.ID).Msg("production updated")
	return p, nil
}

// Delete removes the production together with every role that casts it.
func (s *ProductionService) Delete(ctx context.Context, input ports.DeleteInput) error {
	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	removed, err := s.roles.DeleteByProduction(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("delete production roles: %w", err)
	}
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete production: %w", err)
	}

	s.invalidate(ctx)
	s.writes.recordWrite(domain.EntityProduction, input.ID, domain.AuditDeleted, input.RequestedBy)
	s.logger.Info().Str("production_id", input.ID).Int64("roles_removed", removed).Msg("production deleted")
	return nil
}

func (s *ProductionService) cachedList(ctx context.Context, key string, filter ports.ListProductionsFilter) ([]*domain.Production, error) {
	var cached []*domain.Production
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, querying repository")
	} else if hit {
		return cached, nil
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}

	if err := s.cache.Set(ctx, key, list); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return list, nil
}

func (s *ProductionService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}

// detail resolves the production's roles and, through them, its actors.
func (s *ProductionService) detail(ctx context.Context, p *domain.Production) (*ports.ProductionDetail, error) {
	roles, err := s.roles.ListByProduction(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	ids := make([]string, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ActorID)
	}
	actors, err := s.actors.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("load cast: %w", err)
	}
	byID := make(map[string]*domain.Actor, len(actors))
	for _, a := range actors {
		byID[a.ID] = a
	}

	detail := &ports.ProductionDetail{
		Production: p,
		Roles:      make([]ports.CastMember, 0, len(roles)),
		Actors:     make([]*domain.Actor, 0, len(byID)),
	}
	seen := make(map[string]bool, len(byID))
	for _, r := range roles {
		a, ok := byID[r.ActorID]
		if !ok {
			s.logger.Warn().Str("role_id", r.ID).Str("actor_id", r.ActorID).Msg("role references missing actor")
			continue
		}
		detail.Roles = append(detail.Roles, ports.CastMember{RoleID: r.ID, RoleName: r.RoleName, Actor: a})
		if !seen[a.ID] {
			seen[a.ID] = true
			detail.Actors = append(detail.Actors, a)
		}
	}
	return detail, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
