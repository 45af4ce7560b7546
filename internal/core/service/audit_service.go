package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists one audit entry.
func (s *auditService) Record(ctx context.Context, in ports.AuditEventInput) error {
	event := &domain.AuditEvent{
		Entity:     in.Entity,
		EntityID:   in.EntityID,
		Action:     domain.AuditAction(in.Action),
		Username:   in.Username,
		OccurredAt: in.OccurredAt,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	s.log.Debug().
		Str("entity", in.Entity).
		Str("entity_id", in.EntityID).
		Str("action", in.Action).
		Msg("audit event recorded")
	return nil
}
