package domain

import "time"

// AuditAction is the kind of write recorded in the audit trail.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

// Entity names used in audit entries.
const (
	EntityProduction = "production"
	EntityActor      = "actor"
	EntityRole       = "role"
	EntityUser       = "user"
)

// AuditEvent records one write against a catalog or account entity.
type AuditEvent struct {
	Entity     string
	EntityID   string
	Action     AuditAction
	Username   string // empty when the write was anonymous
	OccurredAt time.Time
}
