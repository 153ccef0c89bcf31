package ports

import (
	"context"
	"time"
)

// Audit actions.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditEntry records a single successful mutation on a resource.
type AuditEntry struct {
	Resource   string    // "region", "walk", "difficulty"
	ResourceID string
	Action     string    // create, update, delete
	Actor      string    // authenticated username
	Timestamp  time.Time
}

// AuditRecorder accepts entries for asynchronous recording. Record must not
// block the request path beyond queue admission.
type AuditRecorder interface {
	Record(entry AuditEntry)
}

// AuditService persists a single audit entry.
type AuditService interface {
	Process(ctx context.Context, entry AuditEntry) error
}

// AuditRepository is the audit trail store.
type AuditRepository interface {
	Insert(ctx context.Context, entry *AuditEntry) error
}
