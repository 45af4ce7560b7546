package service

import (
	"context"
	"time"

	"github.com/theater-demo/theater-api/internal/api/metrics"
	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

// writeRecorder is embedded by the catalog services to report a successful
// write to metrics and the audit trail.
type writeRecorder struct {
	audit ports.AuditPublisher
	now   func() time.Time
}

func newWriteRecorder(audit ports.AuditPublisher) writeRecorder {
	if audit == nil {
		audit = discardPublisher{}
	}
	return writeRecorder{audit: audit, now: func() time.Time { return time.Now().UTC() }}
}

func (w writeRecorder) recordWrite(entity, id string, action domain.AuditAction, requestedBy string) {
	metrics.CatalogWritesTotal.WithLabelValues(entity, string(action)).Inc()
	w.audit.Enqueue(ports.AuditEventInput{
		Entity:     entity,
		EntityID:   id,
		Action:     string(action),
		Username:   requestedBy,
		OccurredAt: w.now(),
	})
}

type discardPublisher struct{}

func (discardPublisher) Enqueue(ports.AuditEventInput) {}

type noCache struct{}

func (noCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noCache) Set(context.Context, string, any) error         { return nil }
func (noCache) Invalidate(context.Context) error               { return nil }
