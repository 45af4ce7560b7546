package ports

import (
	"context"
	"time"
)

// AuditEventInput is the DTO handed from the write paths to the audit trail.
type AuditEventInput struct {
	Entity     string
	EntityID   string
	Action     string
	Username   string
	OccurredAt time.Time
}

// AuditService persists audit entries.
type AuditService interface {
	Record(ctx context.Context, event AuditEventInput) error
}

// AuditPublisher hands audit events off for asynchronous recording.
type AuditPublisher interface {
	Enqueue(event AuditEventInput)
}
