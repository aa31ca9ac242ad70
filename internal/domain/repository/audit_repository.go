package repository

import (
	"context"

	"github.com/building-identifier/internal/domain"
)

// AuditRepository stores identification events
type AuditRepository interface {
	// SaveEvent persists an event. Saving an already stored event_id is a no-op
	// and reports inserted=false.
	SaveEvent(ctx context.Context, event *domain.IdentificationEvent) (inserted bool, err error)

	// Stats aggregates all stored events
	Stats(ctx context.Context) (*domain.AuditStats, error)
}
