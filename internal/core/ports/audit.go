package ports

import (
	"context"

	"github.com/taskvault/taskvault-api/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence. Record
// must not block the caller's auth decision.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}
