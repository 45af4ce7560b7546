package ports

import (
	"context"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

// AuditRepository appends entries to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
